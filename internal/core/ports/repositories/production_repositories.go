package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
)

// GreenLeafRepositoryFacade persists green leaf intakes
type GreenLeafRepositoryFacade interface {
	SaveGreenLeafIntake(ctx context.Context, intake domain.GreenLeafIntake) error
	// ListGreenLeafIntakes returns intakes dated in [from, to], newest first.
	ListGreenLeafIntakes(ctx context.Context, from, to time.Time) ([]domain.GreenLeafIntake, error)
}

// ProductionRepositoryFacade persists production batches
type ProductionRepositoryFacade interface {
	// SaveProductionBatch inserts the batch and, for every movement, increments the
	// grade stock and records the movement with its post-increment balance. It is
	// atomic and returns the movements as stored.
	SaveProductionBatch(ctx context.Context, batch domain.ProductionBatch, movements []domain.MadeTeaTransaction) ([]domain.MadeTeaTransaction, error)

	FindProductionBatchByID(ctx context.Context, batchID string) (*domain.ProductionBatch, error)
	ListProductionBatches(ctx context.Context, from, to time.Time) ([]domain.ProductionBatch, error)
}

// ProductionRepositoryWithTx extends ProductionRepositoryFacade with transaction capabilities
type ProductionRepositoryWithTx interface {
	ProductionRepositoryFacade
	TransactionManager
}

// MadeTeaRepositoryFacade reads made tea stock and records dispatches
type MadeTeaRepositoryFacade interface {
	// ListMadeTeaStock returns one row per grade.
	ListMadeTeaStock(ctx context.Context) ([]domain.MadeTeaStock, error)

	// ListMadeTeaTransactions returns movements dated in [from, to], newest first,
	// optionally for a single grade.
	ListMadeTeaTransactions(ctx context.Context, from, to time.Time, grade *domain.Grade) ([]domain.MadeTeaTransaction, error)

	// SaveDispatch decrements the grade stock, inserts the dispatch and inserts
	// movement with the post-decrement balance, atomically.
	SaveDispatch(ctx context.Context, dispatch domain.DispatchRecord, movement domain.MadeTeaTransaction) (*domain.MadeTeaTransaction, error)

	ListDispatchRecords(ctx context.Context, from, to time.Time) ([]domain.DispatchRecord, error)
}

// MadeTeaRepositoryWithTx extends MadeTeaRepositoryFacade with transaction capabilities
type MadeTeaRepositoryWithTx interface {
	MadeTeaRepositoryFacade
	TransactionManager
}
