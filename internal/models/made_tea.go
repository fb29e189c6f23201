package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MadeTeaStock is a row of made_tea_stock, one per grade.
type MadeTeaStock struct {
	Grade         string          `db:"grade"`
	Quantity      decimal.Decimal `db:"quantity"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}

// MadeTeaTransaction is a row of made_tea_transactions.
type MadeTeaTransaction struct {
	TransactionID string          `db:"transaction_id"`
	Date          time.Time       `db:"date"`
	Grade         string          `db:"grade"`
	Type          string          `db:"type"`      // PRODUCTION or DISPATCH
	Direction     string          `db:"direction"` // INFLOW or OUTFLOW
	Quantity      decimal.Decimal `db:"quantity"`
	Balance       decimal.Decimal `db:"balance"` // Grade stock after this movement
	Reference     string          `db:"reference"`
	AuditFields
}

// DispatchRecord is a row of dispatch_records.
type DispatchRecord struct {
	DispatchID     string           `db:"dispatch_id"`
	DispatchNumber string           `db:"dispatch_number"` // Unique
	Date           time.Time        `db:"date"`
	Grade          string           `db:"grade"`
	Quantity       decimal.Decimal  `db:"quantity"`
	Destination    string           `db:"destination"`
	VehicleNumber  string           `db:"vehicle_number"`
	UnitPrice      *decimal.Decimal `db:"unit_price"` // Nullable
	Remarks        string           `db:"remarks"`
	AuditFields
}
