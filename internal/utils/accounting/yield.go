package accounting

import (
	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// YieldPercentage is made tea output as a percentage of green leaf input,
// rounded to two decimal places.
func YieldPercentage(greenLeafUsed, madeTeaProduced decimal.Decimal) (decimal.Decimal, error) {
	if !greenLeafUsed.IsPositive() {
		return decimal.Zero, apperrors.NewInvalidInput("greenLeafUsed", "must be greater than zero, got %s", greenLeafUsed)
	}
	return madeTeaProduced.Div(greenLeafUsed).Mul(hundred).Round(2), nil
}

// AggregateConversionRatio is the period-wide yield over a set of batches. When
// no green leaf was used it returns fallback.
func AggregateConversionRatio(batches []domain.ProductionBatch, fallback decimal.Decimal) decimal.Decimal {
	used, produced := decimal.Zero, decimal.Zero
	for _, b := range batches {
		used = used.Add(b.GreenLeafUsed)
		produced = produced.Add(b.MadeTeaProduced)
	}
	if used.IsZero() {
		return fallback
	}
	return produced.Div(used).Mul(hundred).Round(2)
}

// UnprocessedLeaf approximates green leaf on hand as intake minus usage for the
// period, floored at zero. It is not a FIFO stock count.
func UnprocessedLeaf(intakeTotal, usedTotal decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, intakeTotal.Sub(usedTotal))
}
