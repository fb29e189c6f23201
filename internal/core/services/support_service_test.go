package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/core/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityRecord_SwallowsRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockActivityRepository)
	svc := services.NewActivityService(repo)
	repo.On("SaveActivity", ctx, mock.MatchedBy(func(e domain.ActivityLog) bool {
		return e.Type == domain.ActivityDispatchCreated && e.EntityID == "d-1" && e.ActivityID != ""
	})).Return(errors.New("insert failed")).Once()

	assert.NotPanics(t, func() {
		svc.Record(ctx, domain.ActivityDispatchCreated, "Dispatch D-1", "d-1", "user-1")
	})
	repo.AssertExpectations(t)
}

func TestRecentActivity_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	repo := new(MockActivityRepository)
	svc := services.NewActivityService(repo)
	repo.On("ListRecentActivity", ctx, 10).Return([]domain.ActivityLog{}, nil).Once()

	_, err := svc.RecentActivity(ctx, 0)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestResolvedSettings_AppliesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo)
	repo.On("ListSettings", ctx).Return([]domain.SystemSetting{
		{Key: domain.SettingCurrency, Value: "USD"},
	}, nil).Once()

	resolved, err := svc.ResolvedSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, "USD", resolved.String(domain.SettingCurrency))
	assert.True(t, dec("22").Equal(resolved.Decimal(domain.SettingConversionRatio)))
}

func TestUpsertSetting_ValidatesNumericKeys(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo)

	_, err := svc.UpsertSetting(ctx, domain.SettingFirewoodLowStockThreshold, dto.UpsertSettingRequest{Value: "lots"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.UpsertSetting(ctx, domain.SettingMadeTeaUnitValue, dto.UpsertSettingRequest{Value: "-1"}, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.On("UpsertSetting", ctx, mock.MatchedBy(func(s domain.SystemSetting) bool {
		return s.Key == domain.SettingCurrency && s.Value == "USD" && s.LastUpdatedBy == "user-1"
	})).Return(nil).Once()

	setting, err := svc.UpsertSetting(ctx, domain.SettingCurrency, dto.UpsertSettingRequest{Value: " USD "}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "USD", setting.Value)
	repo.AssertExpectations(t)
}
