package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a row of the employees table.
type Employee struct {
	EmployeeID  string           `db:"employee_id"`
	Name        string           `db:"name"`
	Designation string           `db:"designation"`
	NIC         string           `db:"nic"`
	Phone       string           `db:"phone"`
	PayType     string           `db:"pay_type"`
	Rate        decimal.Decimal  `db:"rate"`
	OTRate      *decimal.Decimal `db:"ot_rate"`     // Nullable
	Status      string           `db:"status"`      // ACTIVE or INACTIVE
	JoinedDate  *time.Time       `db:"joined_date"` // Nullable
	AuditFields
}

// AttendanceRecord is a row of the attendance_records table. The
// (employee_id, date, shift) triple is unique.
type AttendanceRecord struct {
	AttendanceID   string          `db:"attendance_id"`
	EmployeeID     string          `db:"employee_id"`
	Date           time.Time       `db:"date"`
	Shift          string          `db:"shift"`
	Status         string          `db:"status"`
	OTHours        decimal.Decimal `db:"ot_hours"`
	CalculatedWage decimal.Decimal `db:"calculated_wage"`
	Remarks        string          `db:"remarks"`
	AuditFields
}
