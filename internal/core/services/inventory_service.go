package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/SscSPs/tea_factory_app/internal/utils/accounting"
	"github.com/SscSPs/tea_factory_app/internal/utils/aggregation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// thresholdSettings maps each stream to the setting holding its low stock threshold.
var thresholdSettings = map[domain.InventoryStream]string{
	domain.FirewoodStream:         domain.SettingFirewoodLowStockThreshold,
	domain.PackingMaterialsStream: domain.SettingPackingLowStockThreshold,
}

type inventoryService struct {
	BaseService
	stream        domain.InventoryStream
	inventoryRepo portsrepo.InventoryRepositoryFacade
	settings      portssvc.SettingsSvcFacade
}

// InventoryServiceOption is a functional option for configuring an inventory service
type InventoryServiceOption func(*inventoryService)

// WithInventoryClock overrides the clock used to stamp audit fields.
func WithInventoryClock(clock func() time.Time) InventoryServiceOption {
	return func(s *inventoryService) {
		s.Clock = clock
	}
}

// NewInventoryService creates the service for one inventory stream.
func NewInventoryService(stream domain.InventoryStream, repo portsrepo.InventoryRepositoryFacade, settings portssvc.SettingsSvcFacade, options ...InventoryServiceOption) portssvc.InventorySvcFacade {
	svc := &inventoryService{
		stream:        stream,
		inventoryRepo: repo,
		settings:      settings,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) Stream() domain.InventoryStream {
	return s.stream
}

func (s *inventoryService) CreateInventoryTransaction(ctx context.Context, req dto.CreateInventoryTransactionRequest, userID string) (*domain.InventoryTransaction, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	timeOfDay, err := domain.ParseTimeOfDay(req.Time)
	if err != nil {
		return nil, err
	}
	direction, err := domain.ParseInventoryDirection(req.Type)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("quantity", req.Quantity); err != nil {
		return nil, err
	}
	if req.UnitCost != nil {
		if err := requireNonNegative("unitCost", *req.UnitCost); err != nil {
			return nil, err
		}
	}

	txn := domain.InventoryTransaction{
		TransactionID: uuid.NewString(),
		Stream:        s.stream,
		Date:          date,
		Time:          timeOfDay,
		Type:          direction,
		Quantity:      req.Quantity,
		ItemName:      req.ItemName,
		UnitCost:      req.UnitCost,
		Supplier:      req.Supplier,
		Remarks:       req.Remarks,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}

	stored, err := s.inventoryRepo.AppendInventoryTransaction(ctx, txn, func(previous decimal.Decimal) decimal.Decimal {
		return accounting.NextRunningBalance(previous, direction, req.Quantity)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to append inventory transaction", slog.String("stream", string(s.stream)))
		return nil, fmt.Errorf("failed to record %s transaction: %w", s.stream, err)
	}

	if stored.RunningBalance.IsNegative() {
		s.LogWarn(ctx, "Inventory running balance is negative",
			slog.String("stream", string(s.stream)),
			slog.String("balance", stored.RunningBalance.String()))
	}
	s.LogInfo(ctx, "Inventory transaction recorded",
		slog.String("stream", string(s.stream)),
		slog.String("transaction_id", stored.TransactionID),
		slog.String("running_balance", stored.RunningBalance.String()))
	return stored, nil
}

func (s *inventoryService) ListInventoryTransactions(ctx context.Context, params dto.DateRangeParams) ([]domain.InventoryTransaction, error) {
	from, to, err := resolveRange(params.DateFrom, params.DateTo, s.Today())
	if err != nil {
		return nil, err
	}
	txns, err := s.inventoryRepo.ListInventoryTransactions(ctx, s.stream, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory transactions", slog.String("stream", string(s.stream)))
		return nil, fmt.Errorf("failed to list %s transactions: %w", s.stream, err)
	}
	return txns, nil
}

func (s *inventoryService) InventorySummary(ctx context.Context, today time.Time) (*domain.InventorySummary, error) {
	today = domain.DateOf(today)

	latest, err := s.inventoryRepo.FindLatestInventoryTransaction(ctx, s.stream)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load latest inventory transaction", slog.String("stream", string(s.stream)))
			return nil, fmt.Errorf("failed to load current %s stock: %w", s.stream, err)
		}
		latest = nil
	}

	from, to := aggregation.ConsumptionWindow(today)
	txns, err := s.inventoryRepo.ListInventoryTransactions(ctx, s.stream, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load inventory window", slog.String("stream", string(s.stream)))
		return nil, fmt.Errorf("failed to load %s transactions: %w", s.stream, err)
	}

	settings, err := s.settings.ResolvedSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	threshold := settings.Decimal(thresholdSettings[s.stream])

	summary := aggregation.SummarizeInventory(s.stream, today, latest, txns, threshold)
	return &summary, nil
}
