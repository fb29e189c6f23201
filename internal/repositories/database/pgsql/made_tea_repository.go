package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	"github.com/SscSPs/tea_factory_app/internal/models"
	"github.com/SscSPs/tea_factory_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const madeTeaTxnColumns = `transaction_id, date, grade, type, direction, quantity, balance, reference,
	created_at, created_by, last_updated_at, last_updated_by`

const dispatchColumns = `dispatch_id, dispatch_number, date, grade, quantity, destination, vehicle_number, unit_price, remarks,
	created_at, created_by, last_updated_at, last_updated_by`

// applyMadeTeaMovement adjusts the grade's stock row by the signed movement
// quantity and records the movement with the resulting balance. The row lock
// taken by the UPDATE serialises concurrent movements of the same grade.
func applyMadeTeaMovement(ctx context.Context, tx pgx.Tx, movement domain.MadeTeaTransaction) (*domain.MadeTeaTransaction, error) {
	delta := movement.Quantity
	if movement.Direction == domain.Outflow {
		delta = delta.Neg()
	}

	var balance decimal.Decimal
	err := tx.QueryRow(ctx, `
		INSERT INTO made_tea_stock (grade, quantity, last_updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (grade) DO UPDATE
		SET quantity = made_tea_stock.quantity + EXCLUDED.quantity, last_updated_at = EXCLUDED.last_updated_at
		RETURNING quantity;`,
		string(movement.Grade), delta, movement.LastUpdatedAt,
	).Scan(&balance)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to adjust "+string(movement.Grade)+" stock", err)
	}
	movement.Balance = balance

	m := mapping.ToModelMadeTeaTransaction(movement)
	_, err = tx.Exec(ctx, `INSERT INTO made_tea_transactions (`+madeTeaTxnColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.TransactionID, m.Date, m.Grade, m.Type, m.Direction, m.Quantity, m.Balance, m.Reference,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapWriteError(err, "insert", "made tea movement "+m.TransactionID, "transactionID")
	}
	return &movement, nil
}

type PgxMadeTeaRepository struct {
	BaseRepository
}

func newPgxMadeTeaRepository(pool *pgxpool.Pool) portsrepo.MadeTeaRepositoryWithTx {
	return &PgxMadeTeaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MadeTeaRepositoryWithTx = (*PgxMadeTeaRepository)(nil)

// ListMadeTeaStock returns one row per grade, alphabetically.
func (r *PgxMadeTeaRepository) ListMadeTeaStock(ctx context.Context) ([]domain.MadeTeaStock, error) {
	rows, err := r.Pool.Query(ctx, `SELECT grade, quantity, last_updated_at FROM made_tea_stock ORDER BY grade;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list made tea stock", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MadeTeaStock])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan made tea stock", err)
	}
	return mapping.ToDomainMadeTeaStockSlice(ms), nil
}

// ListMadeTeaTransactions returns movements dated in [from, to], newest first.
func (r *PgxMadeTeaRepository) ListMadeTeaTransactions(ctx context.Context, from, to time.Time, grade *domain.Grade) ([]domain.MadeTeaTransaction, error) {
	query := `SELECT ` + madeTeaTxnColumns + ` FROM made_tea_transactions
		WHERE date BETWEEN $1::date AND $2::date
		  AND ($3::text IS NULL OR grade = $3)
		ORDER BY date DESC, seq DESC;`
	var gradeArg *string
	if grade != nil {
		g := string(*grade)
		gradeArg = &g
	}
	rows, err := r.Pool.Query(ctx, query, from, to, gradeArg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list made tea transactions", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.MadeTeaTransaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan made tea transactions", err)
	}
	return mapping.ToDomainMadeTeaTransactionSlice(ms), nil
}

// SaveDispatch inserts the dispatch and applies its outflow in one DB transaction.
func (r *PgxMadeTeaRepository) SaveDispatch(ctx context.Context, dispatch domain.DispatchRecord, movement domain.MadeTeaTransaction) (*domain.MadeTeaTransaction, error) {
	var stored *domain.MadeTeaTransaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		m := mapping.ToModelDispatchRecord(dispatch)
		_, err := tx.Exec(ctx, `INSERT INTO dispatch_records (`+dispatchColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
			m.DispatchID, m.DispatchNumber, m.Date, m.Grade, m.Quantity, m.Destination, m.VehicleNumber, m.UnitPrice, m.Remarks,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "insert", "dispatch number "+m.DispatchNumber, "dispatchNumber")
		}
		stored, err = applyMadeTeaMovement(ctx, tx, movement)
		return err
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

// ListDispatchRecords returns dispatches dated in [from, to], newest first.
func (r *PgxMadeTeaRepository) ListDispatchRecords(ctx context.Context, from, to time.Time) ([]domain.DispatchRecord, error) {
	query := `SELECT ` + dispatchColumns + ` FROM dispatch_records
		WHERE date BETWEEN $1::date AND $2::date
		ORDER BY date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list dispatch records", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DispatchRecord])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan dispatch records", err)
	}
	return mapping.ToDomainDispatchRecordSlice(ms), nil
}
