package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfitLossStatement(t *testing.T) {
	ctx := context.Background()
	repo := new(MockTransactionRepository)
	svc := services.NewReportingService(repo)
	from, to := day("2025-03-01"), day("2025-03-31")

	repo.On("FindTransactionsInRange", ctx, sameDate(from), sameDate(to)).Return([]domain.Transaction{
		{Type: domain.Income, Category: domain.CategoryMadeTeaSales, Amount: dec("100000")},
		{Type: domain.Expense, Category: domain.CategoryGreenLeafCost, Amount: dec("40000")},
		{Type: domain.Expense, Category: domain.CategoryFactoryOverheads, Amount: dec("10000")},
		{Type: domain.Expense, Category: domain.CategoryFinancialExpenses, Amount: dec("5000")},
		{Type: domain.Expense, Category: domain.CategoryMiscellaneous, Amount: dec("999")},
	}, nil).Once()

	pl, err := svc.ProfitLossStatement(ctx, from, to)

	require.NoError(t, err)
	assert.True(t, dec("60000").Equal(pl.GrossProfit))
	assert.True(t, dec("50000").Equal(pl.OperatingProfit))
	assert.True(t, dec("45000").Equal(pl.NetProfit), "miscellaneous stays out of the totals")
	assert.True(t, dec("45").Equal(pl.NetProfitMargin))
	require.Len(t, pl.UnmappedCategories, 1)
	assert.Equal(t, domain.CategoryMiscellaneous, pl.UnmappedCategories[0].Category)
}

func TestProfitLossStatement_RejectsInvertedRange(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewReportingService(repo)

	_, err := svc.ProfitLossStatement(context.Background(), day("2025-03-31"), day("2025-03-01"))

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "FindTransactionsInRange", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfitLossStatement_RepositoryError(t *testing.T) {
	repo := new(MockTransactionRepository)
	svc := services.NewReportingService(repo)
	repo.On("FindTransactionsInRange", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	_, err := svc.ProfitLossStatement(context.Background(), day("2025-03-01"), day("2025-03-31"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load transactions")
}
