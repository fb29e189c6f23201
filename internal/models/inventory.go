package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryTransaction is a row of inventory_transactions, shared by the
// firewood and packing materials streams.
type InventoryTransaction struct {
	TransactionID  string           `db:"transaction_id"`
	Stream         string           `db:"stream"`
	Date           time.Time        `db:"date"`
	Time           string           `db:"time"` // HH:MM, selected through to_char
	Type           string           `db:"type"` // INFLOW or OUTFLOW
	Quantity       decimal.Decimal  `db:"quantity"`
	RunningBalance decimal.Decimal  `db:"running_balance"`
	ItemName       string           `db:"item_name"`
	UnitCost       *decimal.Decimal `db:"unit_cost"` // Nullable
	Supplier       string           `db:"supplier"`
	Remarks        string           `db:"remarks"`
	AuditFields
}
