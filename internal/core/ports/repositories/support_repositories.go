package repositories

import (
	"context"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
)

// SequenceRepository hands out gap-tolerant, strictly increasing numbers per name.
type SequenceRepository interface {
	// NextValue atomically increments the named counter, creating it at 1.
	NextValue(ctx context.Context, name string) (int64, error)
}

// ActivityRepositoryFacade persists the audit log
type ActivityRepositoryFacade interface {
	SaveActivity(ctx context.Context, entry domain.ActivityLog) error
	// ListRecentActivity returns the newest entries first.
	ListRecentActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error)
}

// SettingsRepositoryFacade persists key/value system settings
type SettingsRepositoryFacade interface {
	ListSettings(ctx context.Context) ([]domain.SystemSetting, error)
	FindSettingByKey(ctx context.Context, key string) (*domain.SystemSetting, error)
	UpsertSetting(ctx context.Context, setting domain.SystemSetting) error
}
