package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/SscSPs/tea_factory_app/internal/utils/aggregation"
	"github.com/google/uuid"
)

type madeTeaService struct {
	BaseService
	madeTeaRepo portsrepo.MadeTeaRepositoryFacade
	settings    portssvc.SettingsSvcFacade
}

// MadeTeaServiceOption is a functional option for configuring the made tea service
type MadeTeaServiceOption func(*madeTeaService)

// WithMadeTeaActivity records dispatches in the audit log.
func WithMadeTeaActivity(activity portssvc.ActivitySvcFacade) MadeTeaServiceOption {
	return func(s *madeTeaService) {
		s.Activity = activity
	}
}

// WithMadeTeaClock overrides the clock used to resolve "today".
func WithMadeTeaClock(clock func() time.Time) MadeTeaServiceOption {
	return func(s *madeTeaService) {
		s.Clock = clock
	}
}

// NewMadeTeaService creates a new made tea service with the provided options
func NewMadeTeaService(repo portsrepo.MadeTeaRepositoryFacade, settings portssvc.SettingsSvcFacade, options ...MadeTeaServiceOption) portssvc.MadeTeaSvcFacade {
	svc := &madeTeaService{
		madeTeaRepo: repo,
		settings:    settings,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MadeTeaSvcFacade = (*madeTeaService)(nil)

func (s *madeTeaService) CreateDispatchRecord(ctx context.Context, req dto.CreateDispatchRequest, userID string) (*domain.DispatchRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	grade, err := domain.ParseGrade(req.Grade)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("quantity", req.Quantity); err != nil {
		return nil, err
	}
	if req.UnitPrice != nil {
		if err := requireNonNegative("unitPrice", *req.UnitPrice); err != nil {
			return nil, err
		}
	}

	audit := domain.NewAuditFields(userID, s.Now())
	dispatch := domain.DispatchRecord{
		DispatchID:     uuid.NewString(),
		DispatchNumber: req.DispatchNumber,
		Date:           date,
		Grade:          grade,
		Quantity:       req.Quantity,
		Destination:    req.Destination,
		VehicleNumber:  req.VehicleNumber,
		UnitPrice:      req.UnitPrice,
		Remarks:        req.Remarks,
		AuditFields:    audit,
	}
	movement := domain.MadeTeaTransaction{
		TransactionID: uuid.NewString(),
		Date:          date,
		Grade:         grade,
		Type:          domain.MadeTeaDispatch,
		Direction:     domain.Outflow,
		Quantity:      req.Quantity,
		Reference:     req.DispatchNumber,
		AuditFields:   audit,
	}

	stored, err := s.madeTeaRepo.SaveDispatch(ctx, dispatch, movement)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save dispatch", slog.String("dispatch_number", req.DispatchNumber))
		return nil, fmt.Errorf("failed to save dispatch %s: %w", req.DispatchNumber, err)
	}
	if stored.Balance.IsNegative() {
		s.LogWarn(ctx, "Made tea stock is negative after dispatch",
			slog.String("grade", string(grade)),
			slog.String("balance", stored.Balance.String()))
	}

	s.RecordActivity(ctx, domain.ActivityDispatchCreated,
		fmt.Sprintf("Dispatch %s of %s kg %s to %s", dispatch.DispatchNumber, dispatch.Quantity.String(), grade, dispatch.Destination),
		dispatch.DispatchID, userID)
	s.LogInfo(ctx, "Dispatch recorded",
		slog.String("dispatch_id", dispatch.DispatchID),
		slog.String("grade", string(grade)))
	return &dispatch, nil
}

func (s *madeTeaService) ListDispatchRecords(ctx context.Context, params dto.DateRangeParams) ([]domain.DispatchRecord, error) {
	from, to, err := resolveRange(params.DateFrom, params.DateTo, s.Today())
	if err != nil {
		return nil, err
	}
	records, err := s.madeTeaRepo.ListDispatchRecords(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list dispatch records")
		return nil, fmt.Errorf("failed to list dispatch records: %w", err)
	}
	return records, nil
}

func (s *madeTeaService) MadeTeaStock(ctx context.Context) ([]domain.MadeTeaStock, error) {
	stock, err := s.madeTeaRepo.ListMadeTeaStock(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list made tea stock")
		return nil, fmt.Errorf("failed to list made tea stock: %w", err)
	}
	return aggregation.WithStockStatus(stock), nil
}

func (s *madeTeaService) ListMadeTeaTransactions(ctx context.Context, params dto.ListMadeTeaTransactionsParams) ([]domain.MadeTeaTransaction, error) {
	from, to, err := resolveRange(params.DateFrom, params.DateTo, s.Today())
	if err != nil {
		return nil, err
	}
	var grade *domain.Grade
	if params.Grade != "" {
		g, err := domain.ParseGrade(params.Grade)
		if err != nil {
			return nil, err
		}
		grade = &g
	}
	txns, err := s.madeTeaRepo.ListMadeTeaTransactions(ctx, from, to, grade)
	if err != nil {
		s.LogError(ctx, err, "Failed to list made tea transactions")
		return nil, fmt.Errorf("failed to list made tea transactions: %w", err)
	}
	return txns, nil
}

func (s *madeTeaService) MadeTeaSummary(ctx context.Context, today time.Time) (*domain.MadeTeaSummary, error) {
	today = domain.DateOf(today)
	stock, err := s.madeTeaRepo.ListMadeTeaStock(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load made tea stock for summary")
		return nil, fmt.Errorf("failed to load made tea stock: %w", err)
	}
	from, to := aggregation.MonthWindow(today)
	txns, err := s.madeTeaRepo.ListMadeTeaTransactions(ctx, from, to, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load made tea transactions for summary")
		return nil, fmt.Errorf("failed to load made tea transactions: %w", err)
	}
	settings, err := s.settings.ResolvedSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	summary := aggregation.SummarizeMadeTea(today, stock, txns, settings.Decimal(domain.SettingMadeTeaUnitValue))
	return &summary, nil
}
