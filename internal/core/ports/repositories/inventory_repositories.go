package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceRule derives the running balance of a new movement from the stream's
// previous balance.
type BalanceRule func(previous decimal.Decimal) decimal.Decimal

// InventoryReader defines read operations for firewood and packing materials streams
type InventoryReader interface {
	// FindLatestInventoryTransaction returns the newest movement by date, time and
	// insertion order. Returns apperrors.ErrNotFound for an empty stream.
	FindLatestInventoryTransaction(ctx context.Context, stream domain.InventoryStream) (*domain.InventoryTransaction, error)

	// ListInventoryTransactions returns movements dated in [from, to], newest first.
	ListInventoryTransactions(ctx context.Context, stream domain.InventoryStream, from, to time.Time) ([]domain.InventoryTransaction, error)
}

// InventoryWriter defines write operations for inventory streams
type InventoryWriter interface {
	// AppendInventoryTransaction serialises appends per stream: it reads the latest
	// balance, applies rule and inserts txn with the result, all in one DB transaction.
	AppendInventoryTransaction(ctx context.Context, txn domain.InventoryTransaction, rule BalanceRule) (*domain.InventoryTransaction, error)
}

// InventoryRepositoryFacade combines all inventory repository interfaces
type InventoryRepositoryFacade interface {
	InventoryReader
	InventoryWriter
}

// InventoryRepositoryWithTx extends InventoryRepositoryFacade with transaction capabilities
type InventoryRepositoryWithTx interface {
	InventoryRepositoryFacade
	TransactionManager
}
