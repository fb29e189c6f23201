package accounting

import (
	"testing"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYieldPercentage(t *testing.T) {
	got, err := YieldPercentage(dec("1000"), dec("220"))
	require.NoError(t, err)
	assert.True(t, dec("22").Equal(got), "got %s", got)

	got, err = YieldPercentage(dec("3"), dec("1"))
	require.NoError(t, err)
	assert.True(t, dec("33.33").Equal(got), "got %s", got)
}

func TestYieldPercentage_RejectsZeroGreenLeaf(t *testing.T) {
	_, err := YieldPercentage(dec("0"), dec("10"))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	field, _ := apperrors.FieldOf(err)
	assert.Equal(t, "greenLeafUsed", field)
}

func TestAggregateConversionRatio(t *testing.T) {
	batches := []domain.ProductionBatch{
		{GreenLeafUsed: dec("1000"), MadeTeaProduced: dec("200")},
		{GreenLeafUsed: dec("1000"), MadeTeaProduced: dec("240")},
	}
	assert.True(t, dec("22").Equal(AggregateConversionRatio(batches, dec("18"))))
	assert.True(t, dec("18").Equal(AggregateConversionRatio(nil, dec("18"))), "falls back when nothing was processed")
}

func TestUnprocessedLeaf(t *testing.T) {
	assert.True(t, dec("150").Equal(UnprocessedLeaf(dec("1150"), dec("1000"))))
	assert.True(t, dec("0").Equal(UnprocessedLeaf(dec("900"), dec("1000"))), "floored at zero")
}
