package services

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/dto"
)

// GreenLeafSvcFacade defines operations on green leaf intake
type GreenLeafSvcFacade interface {
	CreateGreenLeafIntake(ctx context.Context, req dto.CreateGreenLeafIntakeRequest, userID string) (*domain.GreenLeafIntake, error)
	ListGreenLeafIntakes(ctx context.Context, params dto.DateRangeParams) ([]domain.GreenLeafIntake, error)
	GreenLeafSummary(ctx context.Context, today time.Time) (*domain.GreenLeafSummary, error)
}

// ProductionSvcFacade defines operations on production batches
type ProductionSvcFacade interface {
	CreateProductionBatch(ctx context.Context, req dto.CreateProductionBatchRequest, userID string) (*domain.ProductionBatch, error)
	ListProductionBatches(ctx context.Context, params dto.DateRangeParams) ([]domain.ProductionBatch, error)
}

// MadeTeaSvcFacade defines operations on made tea stock and dispatch
type MadeTeaSvcFacade interface {
	CreateDispatchRecord(ctx context.Context, req dto.CreateDispatchRequest, userID string) (*domain.DispatchRecord, error)
	ListDispatchRecords(ctx context.Context, params dto.DateRangeParams) ([]domain.DispatchRecord, error)
	MadeTeaStock(ctx context.Context) ([]domain.MadeTeaStock, error)
	ListMadeTeaTransactions(ctx context.Context, params dto.ListMadeTeaTransactionsParams) ([]domain.MadeTeaTransaction, error)
	MadeTeaSummary(ctx context.Context, today time.Time) (*domain.MadeTeaSummary, error)
}
