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
	"github.com/SscSPs/tea_factory_app/internal/utils/accounting"
	"github.com/google/uuid"
)

type productionService struct {
	BaseService
	productionRepo portsrepo.ProductionRepositoryFacade
}

// ProductionServiceOption is a functional option for configuring the production service
type ProductionServiceOption func(*productionService)

// WithProductionActivity records batch creation in the audit log.
func WithProductionActivity(activity portssvc.ActivitySvcFacade) ProductionServiceOption {
	return func(s *productionService) {
		s.Activity = activity
	}
}

// WithProductionClock overrides the clock used to stamp audit fields.
func WithProductionClock(clock func() time.Time) ProductionServiceOption {
	return func(s *productionService) {
		s.Clock = clock
	}
}

// NewProductionService creates a new production service with the provided options
func NewProductionService(repo portsrepo.ProductionRepositoryFacade, options ...ProductionServiceOption) portssvc.ProductionSvcFacade {
	svc := &productionService{productionRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProductionSvcFacade = (*productionService)(nil)

func (s *productionService) CreateProductionBatch(ctx context.Context, req dto.CreateProductionBatchRequest, userID string) (*domain.ProductionBatch, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	if err := requireNonNegative("madeTeaProduced", req.MadeTeaProduced); err != nil {
		return nil, err
	}
	yield, err := accounting.YieldPercentage(req.GreenLeafUsed, req.MadeTeaProduced)
	if err != nil {
		return nil, err
	}

	outputs := make([]domain.GradeOutput, 0, len(req.GradeOutputs))
	seen := make(map[domain.Grade]bool, len(req.GradeOutputs))
	for _, o := range req.GradeOutputs {
		grade, err := domain.ParseGrade(o.Grade)
		if err != nil {
			return nil, err
		}
		if seen[grade] {
			return nil, apperrors.NewInvalidInput("gradeOutputs", "grade %s listed more than once", grade)
		}
		seen[grade] = true
		if err := requirePositive("gradeOutputs.quantity", o.Quantity); err != nil {
			return nil, err
		}
		outputs = append(outputs, domain.GradeOutput{Grade: grade, Quantity: o.Quantity})
	}

	audit := domain.NewAuditFields(userID, s.Now())
	batch := domain.ProductionBatch{
		BatchID:         uuid.NewString(),
		BatchNumber:     req.BatchNumber,
		Date:            date,
		GreenLeafUsed:   req.GreenLeafUsed,
		MadeTeaProduced: req.MadeTeaProduced,
		YieldPercentage: yield,
		GradeOutputs:    outputs,
		Remarks:         req.Remarks,
		AuditFields:     audit,
	}

	movements := make([]domain.MadeTeaTransaction, 0, len(outputs))
	for _, o := range outputs {
		movements = append(movements, domain.MadeTeaTransaction{
			TransactionID: uuid.NewString(),
			Date:          date,
			Grade:         o.Grade,
			Type:          domain.MadeTeaProduction,
			Direction:     domain.Inflow,
			Quantity:      o.Quantity,
			Reference:     batch.BatchNumber,
			AuditFields:   audit,
		})
	}

	if _, err := s.productionRepo.SaveProductionBatch(ctx, batch, movements); err != nil {
		s.LogFailure(ctx, err, "Failed to save production batch", slog.String("batch_number", batch.BatchNumber))
		return nil, fmt.Errorf("failed to save production batch %s: %w", batch.BatchNumber, err)
	}

	s.RecordActivity(ctx, domain.ActivityProductionCreated,
		fmt.Sprintf("Batch %s produced %s kg made tea from %s kg green leaf (%s%%)",
			batch.BatchNumber, batch.MadeTeaProduced.String(), batch.GreenLeafUsed.String(), batch.YieldPercentage.StringFixed(2)),
		batch.BatchID, userID)
	s.LogInfo(ctx, "Production batch created",
		slog.String("batch_id", batch.BatchID),
		slog.String("yield", batch.YieldPercentage.String()),
		slog.Int("grade_outputs", len(outputs)))
	return &batch, nil
}

func (s *productionService) ListProductionBatches(ctx context.Context, params dto.DateRangeParams) ([]domain.ProductionBatch, error) {
	from, to, err := resolveRange(params.DateFrom, params.DateTo, s.Today())
	if err != nil {
		return nil, err
	}
	batches, err := s.productionRepo.ListProductionBatches(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list production batches")
		return nil, fmt.Errorf("failed to list production batches: %w", err)
	}
	return batches, nil
}
