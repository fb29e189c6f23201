package services

import (
	"context"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/dto"
)

// ActivitySvcFacade records and lists audit entries
type ActivitySvcFacade interface {
	// Record appends an entry. Failures are logged and never fail the caller.
	Record(ctx context.Context, activityType domain.ActivityType, description, entityID, userID string)
	RecentActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

// SettingsSvcFacade reads and writes system settings
type SettingsSvcFacade interface {
	ListSettings(ctx context.Context) ([]domain.SystemSetting, error)

	// ResolvedSettings returns stored values with defaults applied for missing keys.
	ResolvedSettings(ctx context.Context) (domain.Settings, error)
	UpsertSetting(ctx context.Context, key string, req dto.UpsertSettingRequest, userID string) (*domain.SystemSetting, error)
}
