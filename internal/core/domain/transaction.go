package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

const (
	Expense TransactionType = "EXPENSE"
	Income  TransactionType = "INCOME"
)

// ParseTransactionType validates a transaction type.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case Expense, Income:
		return t, nil
	}
	return "", apperrors.NewInvalidInput("type", "unknown transaction type %q", s)
}

// PaymentType is how a transaction was settled.
type PaymentType string

const (
	Cash   PaymentType = "CASH"
	Bank   PaymentType = "BANK"
	Credit PaymentType = "CREDIT"
)

// ParsePaymentType validates a payment type.
func ParsePaymentType(s string) (PaymentType, error) {
	switch p := PaymentType(strings.ToUpper(strings.TrimSpace(s))); p {
	case Cash, Bank, Credit:
		return p, nil
	}
	return "", apperrors.NewInvalidInput("paymentType", "unknown payment type %q", s)
}

// Category is the ledger category of a transaction. Values are matched exactly.
type Category string

const (
	CategoryMadeTeaSales          Category = "Made Tea Sales"
	CategoryOtherIncome           Category = "Other Income"
	CategoryGreenLeafCost         Category = "Green Leaf Cost"
	CategoryLaborCost             Category = "Labor Cost"
	CategoryFuelPower             Category = "Fuel & Power"
	CategoryPackingMaterials      Category = "Packing Materials"
	CategoryFactoryOverheads      Category = "Factory Overheads"
	CategoryMaintenanceRepairs    Category = "Maintenance & Repairs"
	CategoryTransportHandling     Category = "Transport & Handling"
	CategoryAdministrativeExpense Category = "Administrative Expenses"
	CategoryFinancialExpenses     Category = "Financial Expenses"
	CategoryMiscellaneous         Category = "Miscellaneous"
)

var (
	incomeCategories = []Category{
		CategoryMadeTeaSales,
		CategoryOtherIncome,
	}
	expenseCategories = []Category{
		CategoryGreenLeafCost,
		CategoryLaborCost,
		CategoryFuelPower,
		CategoryPackingMaterials,
		CategoryFactoryOverheads,
		CategoryMaintenanceRepairs,
		CategoryTransportHandling,
		CategoryAdministrativeExpense,
		CategoryFinancialExpenses,
		CategoryMiscellaneous,
	}
)

// CategoriesFor returns a copy of the allowed categories for a transaction type.
func CategoriesFor(t TransactionType) []Category {
	var src []Category
	switch t {
	case Income:
		src = incomeCategories
	case Expense:
		src = expenseCategories
	}
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

// ParseCategory validates that s is one of the categories allowed for t.
func ParseCategory(t TransactionType, s string) (Category, error) {
	for _, c := range CategoriesFor(t) {
		if string(c) == s {
			return c, nil
		}
	}
	return "", apperrors.NewInvalidInput("category", "%q is not a valid %s category", s, strings.ToLower(string(t)))
}

// TransactionSequenceName is the global counter backing transaction ids.
const TransactionSequenceName = "transaction"

// FormatTransactionID renders TXN<6-digit sequence>.
func FormatTransactionID(seq int64) string {
	return fmt.Sprintf("TXN%06d", seq)
}

// Transaction is a single income or expense entry in the factory ledger.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Type          TransactionType `json:"type"`
	Category      Category        `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // always > 0
	PaymentType   PaymentType     `json:"paymentType"`
	Reference     string          `json:"reference"`
	AuditFields
}
