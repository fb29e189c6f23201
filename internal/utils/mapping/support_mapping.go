package mapping

import (
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/models"
)

// ToModelActivityLog converts a domain ActivityLog to its model
func ToModelActivityLog(d domain.ActivityLog) models.ActivityLog {
	return models.ActivityLog{
		ActivityID:  d.ActivityID,
		Type:        string(d.Type),
		Description: d.Description,
		EntityID:    d.EntityID,
		UserID:      d.UserID,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainActivityLog converts an activity row to its domain form
func ToDomainActivityLog(m models.ActivityLog) domain.ActivityLog {
	return domain.ActivityLog{
		ActivityID:  m.ActivityID,
		Type:        domain.ActivityType(m.Type),
		Description: m.Description,
		EntityID:    m.EntityID,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainActivityLogSlice converts activity rows to domain entries
func ToDomainActivityLogSlice(ms []models.ActivityLog) []domain.ActivityLog {
	return mapSlice(ms, ToDomainActivityLog)
}

// ToModelSystemSetting converts a domain SystemSetting to its model
func ToModelSystemSetting(d domain.SystemSetting) models.SystemSetting {
	return models.SystemSetting(d)
}

// ToDomainSystemSetting converts a settings row to its domain form
func ToDomainSystemSetting(m models.SystemSetting) domain.SystemSetting {
	return domain.SystemSetting(m)
}

// ToDomainSystemSettingSlice converts settings rows to domain settings
func ToDomainSystemSettingSlice(ms []models.SystemSetting) []domain.SystemSetting {
	return mapSlice(ms, ToDomainSystemSetting)
}
