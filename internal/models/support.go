package models

import "time"

// ActivityLog is a row of activity_logs.
type ActivityLog struct {
	ActivityID  string    `db:"activity_id"`
	Type        string    `db:"type"`
	Description string    `db:"description"`
	EntityID    string    `db:"entity_id"`
	UserID      string    `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
}

// SystemSetting is a row of system_settings.
type SystemSetting struct {
	Key           string    `db:"key"`
	Value         string    `db:"value"`
	Description   string    `db:"description"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
