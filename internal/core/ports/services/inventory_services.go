package services

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/dto"
)

// InventorySvcFacade serves one inventory stream. Firewood and packing materials
// each get their own instance.
type InventorySvcFacade interface {
	Stream() domain.InventoryStream

	// CreateInventoryTransaction appends a movement with its running balance.
	CreateInventoryTransaction(ctx context.Context, req dto.CreateInventoryTransactionRequest, userID string) (*domain.InventoryTransaction, error)
	ListInventoryTransactions(ctx context.Context, params dto.DateRangeParams) ([]domain.InventoryTransaction, error)
	InventorySummary(ctx context.Context, today time.Time) (*domain.InventorySummary, error)
}
