package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/SscSPs/tea_factory_app/internal/utils/aggregation"
)

const defaultTransactionPageSize = 20

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	sequenceRepo    portsrepo.SequenceRepository
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionActivity records transaction creation in the audit log.
func WithTransactionActivity(activity portssvc.ActivitySvcFacade) TransactionServiceOption {
	return func(s *transactionService) {
		s.Activity = activity
	}
}

// WithTransactionClock overrides the clock used to resolve "today".
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Clock = clock
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, sequences portsrepo.SequenceRepository, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		sequenceRepo:    sequences,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	txnType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, err
	}
	category, err := domain.ParseCategory(txnType, req.Category)
	if err != nil {
		return nil, err
	}
	paymentType, err := domain.ParsePaymentType(req.PaymentType)
	if err != nil {
		return nil, err
	}
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}

	seq, err := s.sequenceRepo.NextValue(ctx, domain.TransactionSequenceName)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate transaction id")
		return nil, fmt.Errorf("failed to allocate transaction id: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: domain.FormatTransactionID(seq),
		Date:          date,
		Type:          txnType,
		Category:      category,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentType:   paymentType,
		Reference:     req.Reference,
		AuditFields:   domain.NewAuditFields(userID, s.Now()),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.RecordActivity(ctx, domain.ActivityTransactionCreated,
		fmt.Sprintf("%s %s of %s recorded under %s", txn.TransactionID, strings.ToLower(string(txn.Type)), txn.Amount.StringFixed(2), txn.Category),
		txn.TransactionID, userID)
	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		if txn.Date, err = domain.ParseDate("date", *req.Date); err != nil {
			return nil, err
		}
	}
	if req.Type != nil {
		if txn.Type, err = domain.ParseTransactionType(*req.Type); err != nil {
			return nil, err
		}
	}
	category := string(txn.Category)
	if req.Category != nil {
		category = *req.Category
	}
	// re-checked against the possibly changed type
	if txn.Category, err = domain.ParseCategory(txn.Type, category); err != nil {
		return nil, err
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.Amount != nil {
		if err := requirePositive("amount", *req.Amount); err != nil {
			return nil, err
		}
		txn.Amount = *req.Amount
	}
	if req.PaymentType != nil {
		if txn.PaymentType, err = domain.ParsePaymentType(*req.PaymentType); err != nil {
			return nil, err
		}
	}
	if req.Reference != nil {
		txn.Reference = *req.Reference
	}
	txn.LastUpdatedAt = s.Now()
	txn.LastUpdatedBy = userID

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogFailure(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	var filter portsrepo.TransactionFilter
	var err error
	if filter.DateFrom, err = domain.ParseOptionalDate("dateFrom", params.DateFrom); err != nil {
		return nil, err
	}
	if filter.DateTo, err = domain.ParseOptionalDate("dateTo", params.DateTo); err != nil {
		return nil, err
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(*filter.DateTo) {
		return nil, apperrors.NewInvalidInput("dateFrom", "must not be after dateTo")
	}
	if strings.TrimSpace(params.Type) != "" {
		t, err := domain.ParseTransactionType(params.Type)
		if err != nil {
			return nil, err
		}
		filter.Type = &t
	}
	if params.Category != "" {
		c := domain.Category(params.Category)
		filter.Category = &c
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}

	txns, next, err := s.transactionRepo.ListTransactions(ctx, filter, limit, nextToken)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &dto.ListTransactionsResponse{Transactions: txns, NextToken: next}, nil
}

func (s *transactionService) TransactionSummary(ctx context.Context, dateFrom, dateTo *time.Time) (*domain.TransactionSummary, error) {
	if dateFrom != nil && dateTo != nil && dateFrom.After(*dateTo) {
		return nil, apperrors.NewInvalidInput("dateFrom", "must not be after dateTo")
	}
	today, from, to := aggregation.TransactionWindow(s.Now(), dateFrom, dateTo)

	txns, err := s.transactionRepo.FindTransactionsInRange(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary",
			slog.String("from", from.Format(domain.DateLayout)),
			slog.String("to", to.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := aggregation.SummarizeTransactions(today, from, to, txns)
	return &summary, nil
}

func (s *transactionService) ListCategories(ctx context.Context) dto.CategoriesResponse {
	return dto.CategoriesResponse{
		Income:  domain.CategoriesFor(domain.Income),
		Expense: domain.CategoriesFor(domain.Expense),
	}
}
