package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/shopspring/decimal"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates the system settings service.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: repo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// numericSettings must parse as non-negative decimals.
var numericSettings = map[string]bool{
	domain.SettingFirewoodLowStockThreshold: true,
	domain.SettingPackingLowStockThreshold:  true,
	domain.SettingConversionRatio:           true,
	domain.SettingMadeTeaUnitValue:          true,
}

func (s *settingsService) ListSettings(ctx context.Context) ([]domain.SystemSetting, error) {
	settings, err := s.settingsRepo.ListSettings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list settings")
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) ResolvedSettings(ctx context.Context) (domain.Settings, error) {
	stored, err := s.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	resolved := make(domain.Settings, len(stored))
	for _, st := range stored {
		resolved[st.Key] = st.Value
	}
	return resolved, nil
}

func (s *settingsService) UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest, userID string) (*domain.SystemSetting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, apperrors.NewInvalidInput("key", "must not be empty")
	}
	value := strings.TrimSpace(req.Value)
	if value == "" {
		return nil, apperrors.NewInvalidInput("value", "must not be empty")
	}
	if numericSettings[key] {
		d, err := decimal.NewFromString(value)
		if err != nil {
			return nil, apperrors.NewInvalidInput("value", "%s must be a number, got %q", key, value)
		}
		if err := requireNonNegative("value", d); err != nil {
			return nil, err
		}
	}

	setting := domain.SystemSetting{
		Key:           key,
		Value:         value,
		Description:   req.Description,
		LastUpdatedAt: s.Now(),
		LastUpdatedBy: userID,
	}
	if err := s.settingsRepo.UpsertSetting(ctx, setting); err != nil {
		s.LogError(ctx, err, "Failed to upsert setting", slog.String("key", key))
		return nil, fmt.Errorf("failed to save setting %s: %w", key, err)
	}

	s.LogInfo(ctx, "Setting updated", slog.String("key", key), slog.String("user_id", userID))
	return &setting, nil
}
