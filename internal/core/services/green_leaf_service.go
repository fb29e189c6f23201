package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/SscSPs/tea_factory_app/internal/utils/aggregation"
	"github.com/google/uuid"
)

type greenLeafService struct {
	BaseService
	greenLeafRepo  portsrepo.GreenLeafRepositoryFacade
	productionRepo portsrepo.ProductionRepositoryFacade
	settings       portssvc.SettingsSvcFacade
}

// GreenLeafServiceOption is a functional option for configuring the green leaf service
type GreenLeafServiceOption func(*greenLeafService)

// WithGreenLeafClock overrides the clock used to resolve "today".
func WithGreenLeafClock(clock func() time.Time) GreenLeafServiceOption {
	return func(s *greenLeafService) {
		s.Clock = clock
	}
}

// NewGreenLeafService creates a new green leaf service with the provided options
func NewGreenLeafService(repo portsrepo.GreenLeafRepositoryFacade, production portsrepo.ProductionRepositoryFacade, settings portssvc.SettingsSvcFacade, options ...GreenLeafServiceOption) portssvc.GreenLeafSvcFacade {
	svc := &greenLeafService{
		greenLeafRepo:  repo,
		productionRepo: production,
		settings:       settings,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.GreenLeafSvcFacade = (*greenLeafService)(nil)

func (s *greenLeafService) CreateGreenLeafIntake(ctx context.Context, req dto.CreateGreenLeafIntakeRequest, userID string) (*domain.GreenLeafIntake, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("grossWeight", req.GrossWeight); err != nil {
		return nil, err
	}
	if err := requireNonNegative("tareWeight", req.TareWeight); err != nil {
		return nil, err
	}
	if req.TareWeight.GreaterThan(req.GrossWeight) {
		return nil, apperrors.NewInvalidInput("tareWeight", "must not exceed grossWeight")
	}
	if req.RatePerKg != nil {
		if err := requireNonNegative("ratePerKg", *req.RatePerKg); err != nil {
			return nil, err
		}
	}

	intake := domain.GreenLeafIntake{
		IntakeID:     uuid.NewString(),
		Date:         date,
		SupplierName: req.SupplierName,
		Route:        req.Route,
		GrossWeight:  req.GrossWeight,
		TareWeight:   req.TareWeight,
		NetWeight:    req.GrossWeight.Sub(req.TareWeight),
		RatePerKg:    req.RatePerKg,
		Remarks:      req.Remarks,
		AuditFields:  domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.greenLeafRepo.SaveGreenLeafIntake(ctx, intake); err != nil {
		s.LogError(ctx, err, "Failed to save green leaf intake", slog.String("supplier", req.SupplierName))
		return nil, fmt.Errorf("failed to save green leaf intake: %w", err)
	}
	s.LogInfo(ctx, "Green leaf intake recorded",
		slog.String("intake_id", intake.IntakeID),
		slog.String("net_weight", intake.NetWeight.String()))
	return &intake, nil
}

func (s *greenLeafService) ListGreenLeafIntakes(ctx context.Context, params dto.DateRangeParams) ([]domain.GreenLeafIntake, error) {
	from, to, err := resolveRange(params.DateFrom, params.DateTo, s.Today())
	if err != nil {
		return nil, err
	}
	intakes, err := s.greenLeafRepo.ListGreenLeafIntakes(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list green leaf intakes")
		return nil, fmt.Errorf("failed to list green leaf intakes: %w", err)
	}
	return intakes, nil
}

func (s *greenLeafService) GreenLeafSummary(ctx context.Context, today time.Time) (*domain.GreenLeafSummary, error) {
	today = domain.DateOf(today)
	from, to := aggregation.MonthWindow(today)

	intakes, err := s.greenLeafRepo.ListGreenLeafIntakes(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load green leaf intakes for summary")
		return nil, fmt.Errorf("failed to load green leaf intakes: %w", err)
	}
	batches, err := s.productionRepo.ListProductionBatches(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load production batches for summary")
		return nil, fmt.Errorf("failed to load production batches: %w", err)
	}
	settings, err := s.settings.ResolvedSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	summary := aggregation.SummarizeGreenLeaf(today, intakes, batches, settings.Decimal(domain.SettingConversionRatio))
	return &summary, nil
}
