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
	"github.com/SscSPs/tea_factory_app/internal/utils/accounting"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.TransactionReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		transactionRepo: repo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ProfitLossStatement maps the period's transactions onto the fixed statement
// lines. Categories without a line are returned separately and never totalled.
func (s *reportingService) ProfitLossStatement(ctx context.Context, from, to time.Time) (*domain.ProfitLossStatement, error) {
	from, to = domain.DateOf(from), domain.DateOf(to)
	if from.After(to) {
		return nil, apperrors.NewInvalidInput("dateFrom", "must not be after dateTo")
	}

	txns, err := s.transactionRepo.FindTransactionsInRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for profit and loss",
			slog.String("from", from.Format(domain.DateLayout)),
			slog.String("to", to.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	statement := accounting.BuildProfitLoss(txns, from, to)
	for _, u := range statement.UnmappedCategories {
		s.LogWarn(ctx, "Category has no profit and loss line, excluded from totals",
			slog.String("category", string(u.Category)),
			slog.String("total", u.Total.String()),
			slog.Int("count", u.Count))
	}

	s.LogDebug(ctx, "Profit and loss generated",
		slog.Int("transactions", len(txns)),
		slog.String("net_profit", statement.NetProfit.String()))
	return &statement, nil
}
