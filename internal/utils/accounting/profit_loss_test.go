package accounting

import (
	"testing"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(category domain.Category, amount string) domain.Transaction {
	typ := domain.Expense
	if category == domain.CategoryMadeTeaSales || category == domain.CategoryOtherIncome {
		typ = domain.Income
	}
	return domain.Transaction{Type: typ, Category: category, Amount: dec(amount)}
}

func TestBuildProfitLoss_Scenario(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		txn(domain.CategoryMadeTeaSales, "600000"),
		txn(domain.CategoryMadeTeaSales, "300000"),
		txn(domain.CategoryGreenLeafCost, "300000"),
		txn(domain.CategoryLaborCost, "250000"),
		txn(domain.CategoryFuelPower, "50000"),
		txn(domain.CategoryPackingMaterials, "40000"),
		txn(domain.CategoryFactoryOverheads, "20000"),
		txn(domain.CategoryTransportHandling, "15000"),
		txn(domain.CategoryAdministrativeExpense, "10000"),
		txn(domain.CategoryFinancialExpenses, "5000"),
	}

	pl := BuildProfitLoss(txns, from, to)

	assert.Equal(t, from, pl.DateFrom)
	assert.Equal(t, to, pl.DateTo)
	assert.True(t, dec("900000").Equal(pl.TotalIncome))
	assert.True(t, dec("640000").Equal(pl.TotalCostOfProduction))
	assert.True(t, dec("260000").Equal(pl.GrossProfit))
	assert.True(t, dec("28.89").Equal(pl.GrossProfitMargin), "got %s", pl.GrossProfitMargin)
	assert.True(t, dec("45000").Equal(pl.TotalOperatingExpenses))
	assert.True(t, dec("215000").Equal(pl.OperatingProfit))
	assert.True(t, dec("210000").Equal(pl.NetProfit))
	assert.True(t, dec("23.33").Equal(pl.NetProfitMargin), "got %s", pl.NetProfitMargin)
	assert.Empty(t, pl.UnmappedCategories)
}

func TestBuildProfitLoss_IdentityHoldsExactly(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.CategoryMadeTeaSales, "1234.567"),
		txn(domain.CategoryOtherIncome, "0.333"),
		txn(domain.CategoryGreenLeafCost, "99.999"),
		txn(domain.CategoryLaborCost, "0.001"),
		txn(domain.CategoryMaintenanceRepairs, "12.12"),
		txn(domain.CategoryFinancialExpenses, "7.77"),
	}

	pl := BuildProfitLoss(txns, time.Time{}, time.Time{})

	want := pl.TotalIncome.Sub(pl.TotalCostOfProduction).Sub(pl.TotalOperatingExpenses).Sub(pl.FinancialExpenses)
	assert.True(t, want.Equal(pl.NetProfit), "want %s, got %s", want, pl.NetProfit)
}

func TestBuildProfitLoss_NoIncomeHasZeroMargins(t *testing.T) {
	pl := BuildProfitLoss([]domain.Transaction{txn(domain.CategoryLaborCost, "100")}, time.Time{}, time.Time{})

	assert.True(t, dec("-100").Equal(pl.NetProfit))
	assert.True(t, pl.GrossProfitMargin.IsZero())
	assert.True(t, pl.OperatingProfitMargin.IsZero())
	assert.True(t, pl.NetProfitMargin.IsZero())
}

func TestBuildProfitLoss_UnmappedCategoriesExcluded(t *testing.T) {
	txns := []domain.Transaction{
		txn(domain.CategoryMadeTeaSales, "1000"),
		txn(domain.CategoryMiscellaneous, "40"),
		txn(domain.CategoryMiscellaneous, "60"),
		txn("made tea sales", "500"),
	}

	pl := BuildProfitLoss(txns, time.Time{}, time.Time{})

	assert.True(t, dec("1000").Equal(pl.TotalIncome))
	assert.True(t, dec("1000").Equal(pl.NetProfit))
	require.Len(t, pl.UnmappedCategories, 2)
	assert.Equal(t, domain.CategoryMiscellaneous, pl.UnmappedCategories[0].Category)
	assert.True(t, dec("100").Equal(pl.UnmappedCategories[0].Total))
	assert.Equal(t, 2, pl.UnmappedCategories[0].Count)
	assert.Equal(t, domain.Category("made tea sales"), pl.UnmappedCategories[1].Category)
}

func TestLineItemFor(t *testing.T) {
	line, ok := LineItemFor(domain.CategoryAdministrativeExpense)
	assert.True(t, ok)
	assert.Equal(t, LineAdministrative, line)

	_, ok = LineItemFor(domain.CategoryMiscellaneous)
	assert.False(t, ok)
}
