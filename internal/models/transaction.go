package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the income/expense ledger.
type Transaction struct {
	TransactionID string          `db:"transaction_id"` // TXN000001 style
	Date          time.Time       `db:"date"`
	Type          string          `db:"type"` // INCOME or EXPENSE
	Category      string          `db:"category"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"` // Always positive
	PaymentType   string          `db:"payment_type"`
	Reference     string          `db:"reference"`
	AuditFields
}
