package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	"github.com/SscSPs/tea_factory_app/internal/models"
	"github.com/SscSPs/tea_factory_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const greenLeafColumns = `intake_id, date, supplier_name, route, gross_weight, tare_weight, net_weight, rate_per_kg, remarks,
	created_at, created_by, last_updated_at, last_updated_by`

const productionBatchColumns = `batch_id, batch_number, date, green_leaf_used, made_tea_produced, yield_percentage, remarks,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxGreenLeafRepository struct {
	BaseRepository
}

func newPgxGreenLeafRepository(pool *pgxpool.Pool) portsrepo.GreenLeafRepositoryFacade {
	return &PgxGreenLeafRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GreenLeafRepositoryFacade = (*PgxGreenLeafRepository)(nil)

// SaveGreenLeafIntake inserts a supplier delivery.
func (r *PgxGreenLeafRepository) SaveGreenLeafIntake(ctx context.Context, intake domain.GreenLeafIntake) error {
	m := mapping.ToModelGreenLeafIntake(intake)
	_, err := r.Pool.Exec(ctx, `INSERT INTO green_leaf_intakes (`+greenLeafColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		m.IntakeID, m.Date, m.SupplierName, m.Route, m.GrossWeight, m.TareWeight, m.NetWeight, m.RatePerKg, m.Remarks,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "insert", "green leaf intake "+m.IntakeID, "intakeID")
	}
	return nil
}

// ListGreenLeafIntakes returns intakes dated in [from, to], newest first.
func (r *PgxGreenLeafRepository) ListGreenLeafIntakes(ctx context.Context, from, to time.Time) ([]domain.GreenLeafIntake, error) {
	query := `SELECT ` + greenLeafColumns + ` FROM green_leaf_intakes
		WHERE date BETWEEN $1::date AND $2::date
		ORDER BY date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list green leaf intakes", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.GreenLeafIntake])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan green leaf intakes", err)
	}
	return mapping.ToDomainGreenLeafIntakeSlice(ms), nil
}

type PgxProductionRepository struct {
	BaseRepository
}

func newPgxProductionRepository(pool *pgxpool.Pool) portsrepo.ProductionRepositoryWithTx {
	return &PgxProductionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductionRepositoryWithTx = (*PgxProductionRepository)(nil)

// SaveProductionBatch inserts the batch with its grade outputs and applies one
// stock inflow per movement, all in one DB transaction.
func (r *PgxProductionRepository) SaveProductionBatch(ctx context.Context, batch domain.ProductionBatch, movements []domain.MadeTeaTransaction) ([]domain.MadeTeaTransaction, error) {
	stored := make([]domain.MadeTeaTransaction, 0, len(movements))
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		m, outputs := mapping.ToModelProductionBatch(batch)
		_, err := tx.Exec(ctx, `INSERT INTO production_batches (`+productionBatchColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`,
			m.BatchID, m.BatchNumber, m.Date, m.GreenLeafUsed, m.MadeTeaProduced, m.YieldPercentage, m.Remarks,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "insert", "batch number "+m.BatchNumber, "batchNumber")
		}

		if len(outputs) > 0 {
			batchQ := &pgx.Batch{}
			for _, o := range outputs {
				batchQ.Queue(`INSERT INTO production_grade_outputs (batch_id, grade, quantity) VALUES ($1, $2, $3);`,
					o.BatchID, o.Grade, o.Quantity)
			}
			// Close surfaces the first failed insert
			if err := tx.SendBatch(ctx, batchQ).Close(); err != nil {
				return mapWriteError(err, "insert", "grade outputs of batch "+m.BatchNumber, "gradeOutputs")
			}
		}

		for _, movement := range movements {
			s, err := applyMadeTeaMovement(ctx, tx, movement)
			if err != nil {
				return err
			}
			stored = append(stored, *s)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// FindProductionBatchByID retrieves a batch with its grade outputs.
func (r *PgxProductionRepository) FindProductionBatchByID(ctx context.Context, batchID string) (*domain.ProductionBatch, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+productionBatchColumns+` FROM production_batches WHERE batch_id = $1;`, batchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query production batch "+batchID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.ProductionBatch])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan production batch "+batchID, err)
	}
	batches, err := r.withOutputs(ctx, []models.ProductionBatch{m})
	if err != nil {
		return nil, err
	}
	return &batches[0], nil
}

// ListProductionBatches returns batches dated in [from, to], newest first.
func (r *PgxProductionRepository) ListProductionBatches(ctx context.Context, from, to time.Time) ([]domain.ProductionBatch, error) {
	query := `SELECT ` + productionBatchColumns + ` FROM production_batches
		WHERE date BETWEEN $1::date AND $2::date
		ORDER BY date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list production batches", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ProductionBatch])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan production batches", err)
	}
	return r.withOutputs(ctx, ms)
}

// withOutputs loads the grade outputs of every batch in one query.
func (r *PgxProductionRepository) withOutputs(ctx context.Context, batches []models.ProductionBatch) ([]domain.ProductionBatch, error) {
	if len(batches) == 0 {
		return []domain.ProductionBatch{}, nil
	}
	ids := make([]string, len(batches))
	for i, b := range batches {
		ids[i] = b.BatchID
	}
	rows, err := r.Pool.Query(ctx, `SELECT batch_id, grade, quantity FROM production_grade_outputs
		WHERE batch_id = ANY($1) ORDER BY grade;`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query grade outputs", err)
	}
	outputs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.GradeOutput])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan grade outputs", err)
	}
	byBatch := make(map[string][]models.GradeOutput, len(batches))
	for _, o := range outputs {
		byBatch[o.BatchID] = append(byBatch[o.BatchID], o)
	}

	result := make([]domain.ProductionBatch, len(batches))
	for i, b := range batches {
		result[i] = mapping.ToDomainProductionBatch(b, byBatch[b.BatchID])
	}
	return result, nil
}
