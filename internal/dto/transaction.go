package dto

import (
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record income or expense.
type CreateTransactionRequest struct {
	Date        string          `json:"date" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"paymentType" binding:"required"`
	Reference   string          `json:"reference"`
}

// UpdateTransactionRequest defines the editable fields of a transaction.
type UpdateTransactionRequest struct {
	Date        *string          `json:"date"`
	Type        *string          `json:"type"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	PaymentType *string          `json:"paymentType"`
	Reference   *string          `json:"reference"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
	Type      string `form:"type"`
	Category  string `form:"category"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions.
type ListTransactionsResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
	NextToken    *string              `json:"nextToken,omitempty"`
}

// DateRangeParams defines an optional inclusive date range.
type DateRangeParams struct {
	DateFrom string `form:"dateFrom"`
	DateTo   string `form:"dateTo"`
}

// CategoriesResponse lists the allowed categories per transaction type.
type CategoriesResponse struct {
	Income  []domain.Category `json:"income"`
	Expense []domain.Category `json:"expense"`
}
