package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PayType defines how an employee's rate is interpreted.
type PayType string

const (
	DailyWage     PayType = "DAILY_WAGE"
	MonthlySalary PayType = "MONTHLY_SALARY"
	Hourly        PayType = "HOURLY"
)

// ParsePayType validates a pay type coming from the API boundary.
func ParsePayType(s string) (PayType, error) {
	switch p := PayType(strings.ToUpper(strings.TrimSpace(s))); p {
	case DailyWage, MonthlySalary, Hourly:
		return p, nil
	}
	return "", apperrors.NewInvalidInput("payType", "unknown pay type %q", s)
}

// EmployeeStatus marks whether an employee counts towards attendance totals.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "ACTIVE"
	EmployeeInactive EmployeeStatus = "INACTIVE"
)

// ParseEmployeeStatus validates an employee status.
func ParseEmployeeStatus(s string) (EmployeeStatus, error) {
	switch st := EmployeeStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case EmployeeActive, EmployeeInactive:
		return st, nil
	}
	return "", apperrors.NewInvalidInput("status", "unknown employee status %q", s)
}

// Employee is a factory worker with a pay configuration.
type Employee struct {
	EmployeeID  string           `json:"employeeID"` // EMP<YY><seq>, immutable
	Name        string           `json:"name"`
	Designation string           `json:"designation"`
	NIC         string           `json:"nic"`
	Phone       string           `json:"phone"`
	PayType     PayType          `json:"payType"`
	Rate        decimal.Decimal  `json:"rate"`
	OTRate      *decimal.Decimal `json:"otRate,omitempty"`
	Status      EmployeeStatus   `json:"status"`
	JoinedDate  *time.Time       `json:"joinedDate,omitempty"`
	AuditFields
}

// IsActive reports whether the employee is counted as part of the workforce.
func (e Employee) IsActive() bool {
	return e.Status == EmployeeActive
}

// OvertimeRate returns the overtime rate or zero when none is configured.
func (e Employee) OvertimeRate() decimal.Decimal {
	if e.OTRate == nil {
		return decimal.Zero
	}
	return *e.OTRate
}

// EmployeeSequenceName is the counter used for ids issued in the given year.
func EmployeeSequenceName(year int) string {
	return fmt.Sprintf("employee:%02d", year%100)
}

// FormatEmployeeID renders EMP<YY><4-digit sequence>.
func FormatEmployeeID(year int, seq int64) string {
	return fmt.Sprintf("EMP%02d%04d", year%100, seq)
}
