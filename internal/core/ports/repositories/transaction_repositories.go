package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
)

// TransactionFilter narrows ledger listings. Nil fields are ignored; dates are inclusive.
type TransactionFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Type     *domain.TransactionType
	Category *domain.Category
}

// TransactionReader defines read operations for the income/expense ledger
type TransactionReader interface {
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page ordered by date desc, created_at desc,
	// and a token for the next page when one exists.
	ListTransactions(ctx context.Context, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindTransactionsInRange returns every transaction dated in [from, to].
	FindTransactionsInRange(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for the income/expense ledger
type TransactionWriter interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
