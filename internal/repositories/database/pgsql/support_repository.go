package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	"github.com/SscSPs/tea_factory_app/internal/models"
	"github.com/SscSPs/tea_factory_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityRepository struct {
	BaseRepository
}

func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepositoryFacade {
	return &PgxActivityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

func (r *PgxActivityRepository) SaveActivity(ctx context.Context, entry domain.ActivityLog) error {
	m := mapping.ToModelActivityLog(entry)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO activity_logs (activity_id, type, description, entity_id, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		m.ActivityID, m.Type, m.Description, m.EntityID, m.UserID, m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert activity "+m.ActivityID, err)
	}
	return nil
}

func (r *PgxActivityRepository) ListRecentActivity(ctx context.Context, limit int) ([]domain.ActivityLog, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT activity_id, type, description, entity_id, user_id, created_at
		FROM activity_logs
		ORDER BY created_at DESC, seq DESC
		LIMIT $1;`, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list activity", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ActivityLog])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan activity", err)
	}
	return mapping.ToDomainActivityLogSlice(ms), nil
}

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

const settingColumns = `key, value, description, last_updated_at, last_updated_by`

func (r *PgxSettingsRepository) ListSettings(ctx context.Context) ([]domain.SystemSetting, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+settingColumns+` FROM system_settings ORDER BY key;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list settings", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SystemSetting])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan settings", err)
	}
	return mapping.ToDomainSystemSettingSlice(ms), nil
}

func (r *PgxSettingsRepository) FindSettingByKey(ctx context.Context, key string) (*domain.SystemSetting, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+settingColumns+` FROM system_settings WHERE key = $1;`, key)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query setting "+key, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SystemSetting])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan setting "+key, err)
	}
	d := mapping.ToDomainSystemSetting(m)
	return &d, nil
}

// UpsertSetting writes the value for key. An empty description keeps the stored one.
func (r *PgxSettingsRepository) UpsertSetting(ctx context.Context, setting domain.SystemSetting) error {
	m := mapping.ToModelSystemSetting(setting)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO system_settings (`+settingColumns+`) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    description = COALESCE(NULLIF(EXCLUDED.description, ''), system_settings.description),
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;`,
		m.Key, m.Value, m.Description, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to upsert setting "+m.Key, err)
	}
	return nil
}
