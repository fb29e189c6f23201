package pgsql

import (
	"context"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextValue increments the named counter in a single statement so concurrent
// callers never receive the same value.
func (r *PgxSequenceRepository) NextValue(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO sequences (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value;`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, apperrors.NewAppError(500, "failed to advance sequence "+name, err)
	}
	return value, nil
}
