package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Grade is a made tea classification code. Each grade has its own stock row.
type Grade string

const (
	GradeOP1    Grade = "OP1"
	GradeOPA    Grade = "OPA"
	GradeOP     Grade = "OP"
	GradeBOP1   Grade = "BOP1"
	GradeBOP    Grade = "BOP"
	GradeBOPF   Grade = "BOPF"
	GradeFBOP   Grade = "FBOP"
	GradeFBOPF  Grade = "FBOPF"
	GradeFBOPF1 Grade = "FBOPF1"
	GradePEKOE  Grade = "PEKOE"
	GradePEKOE1 Grade = "PEKOE1"
	GradeFF     Grade = "FF"
	GradeFF1    Grade = "FF1"
	GradeBOPSP  Grade = "BOPSP"
	GradeDUST   Grade = "DUST"
	GradeDUST1  Grade = "DUST1"
)

var grades = []Grade{
	GradeOP1, GradeOPA, GradeOP, GradeBOP1, GradeBOP, GradeBOPF, GradeFBOP, GradeFBOPF,
	GradeFBOPF1, GradePEKOE, GradePEKOE1, GradeFF, GradeFF1, GradeBOPSP, GradeDUST, GradeDUST1,
}

// Grades returns the fixed grade list in display order.
func Grades() []Grade {
	out := make([]Grade, len(grades))
	copy(out, grades)
	return out
}

// ParseGrade validates a grade code.
func ParseGrade(s string) (Grade, error) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range grades {
		if g == known {
			return g, nil
		}
	}
	return "", apperrors.NewInvalidInput("grade", "unknown grade %q", s)
}

// StockStatus is derived from a grade's quantity and never stored.
type StockStatus string

const (
	StockLow         StockStatus = "Low Stock"
	StockNormal      StockStatus = "Normal"
	StockOverstocked StockStatus = "Overstocked"
)

// MadeTeaStock is the running total for one grade. Quantity may go negative.
type MadeTeaStock struct {
	Grade         Grade           `json:"grade"`
	Quantity      decimal.Decimal `json:"quantity"`
	StockStatus   StockStatus     `json:"stockStatus"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// MadeTeaTxnType is the source of a made tea stock movement.
type MadeTeaTxnType string

const (
	MadeTeaProduction MadeTeaTxnType = "PRODUCTION"
	MadeTeaDispatch   MadeTeaTxnType = "DISPATCH"
)

// MadeTeaTransaction records one stock movement. Balance is the grade quantity
// after the movement was applied.
type MadeTeaTransaction struct {
	TransactionID string             `json:"transactionID"`
	Date          time.Time          `json:"date"`
	Grade         Grade              `json:"grade"`
	Type          MadeTeaTxnType     `json:"type"`
	Direction     InventoryDirection `json:"direction"`
	Quantity      decimal.Decimal    `json:"quantity"`
	Balance       decimal.Decimal    `json:"balance"`
	Reference     string             `json:"reference"`
	AuditFields
}

// DispatchRecord is an outbound shipment of one grade.
type DispatchRecord struct {
	DispatchID     string           `json:"dispatchID"`
	DispatchNumber string           `json:"dispatchNumber"`
	Date           time.Time        `json:"date"`
	Grade          Grade            `json:"grade"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Destination    string           `json:"destination"`
	VehicleNumber  string           `json:"vehicleNumber"`
	UnitPrice      *decimal.Decimal `json:"unitPrice,omitempty"`
	Remarks        string           `json:"remarks"`
	AuditFields
}
