package services

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/dto"
)

// TransactionReaderSvc defines read operations for the income/expense ledger
type TransactionReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// TransactionSummary sums today and the month of today. When both bounds are
	// given they replace the month and dateTo becomes today.
	TransactionSummary(ctx context.Context, dateFrom, dateTo *time.Time) (*domain.TransactionSummary, error)

	ListCategories(ctx context.Context) dto.CategoriesResponse
}

// TransactionWriterSvc defines write operations for the income/expense ledger
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all ledger service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
