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
	"github.com/shopspring/decimal"
)

const inventorySelect = `SELECT transaction_id, stream, date, to_char(time, 'HH24:MI') AS time, type, quantity,
	running_balance, item_name, unit_cost, supplier, remarks,
	created_at, created_by, last_updated_at, last_updated_by
	FROM inventory_transactions`

// Newest movement wins on date, then time of day, then insertion order.
const latestInventoryQuery = inventorySelect + `
	WHERE stream = $1
	ORDER BY date DESC, time DESC, seq DESC
	LIMIT 1;`

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryWithTx {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryWithTx = (*PgxInventoryRepository)(nil)

func (r *PgxInventoryRepository) findLatest(ctx context.Context, q querier, stream domain.InventoryStream) (*domain.InventoryTransaction, error) {
	rows, err := q.Query(ctx, latestInventoryQuery, string(stream))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query latest "+string(stream)+" transaction", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.InventoryTransaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan latest "+string(stream)+" transaction", err)
	}
	d := mapping.ToDomainInventoryTransaction(m)
	return &d, nil
}

// FindLatestInventoryTransaction returns the newest movement of stream.
func (r *PgxInventoryRepository) FindLatestInventoryTransaction(ctx context.Context, stream domain.InventoryStream) (*domain.InventoryTransaction, error) {
	return r.findLatest(ctx, r.Pool, stream)
}

// AppendInventoryTransaction takes a per-stream advisory lock so that reading the
// previous balance and inserting the new movement cannot interleave with another append.
func (r *PgxInventoryRepository) AppendInventoryTransaction(ctx context.Context, txn domain.InventoryTransaction, rule portsrepo.BalanceRule) (*domain.InventoryTransaction, error) {
	var stored domain.InventoryTransaction
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('inventory:' || $1::text));`, string(txn.Stream)); err != nil {
			return apperrors.NewAppError(500, "failed to lock "+string(txn.Stream)+" stream", err)
		}

		previous := decimal.Zero
		latest, err := r.findLatest(ctx, tx, txn.Stream)
		switch {
		case err == nil:
			previous = latest.RunningBalance
		case !errors.Is(err, apperrors.ErrNotFound):
			return err
		}
		txn.RunningBalance = rule(previous)

		m := mapping.ToModelInventoryTransaction(txn)
		query := `INSERT INTO inventory_transactions (
				transaction_id, stream, date, time, type, quantity, running_balance, item_name, unit_cost,
				supplier, remarks, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4::time, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
		_, err = tx.Exec(ctx, query,
			m.TransactionID, m.Stream, m.Date, m.Time, m.Type, m.Quantity, m.RunningBalance, m.ItemName, m.UnitCost,
			m.Supplier, m.Remarks, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "insert", string(txn.Stream)+" transaction "+m.TransactionID, "transactionID")
		}
		stored = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListInventoryTransactions returns movements of stream dated in [from, to], newest first.
func (r *PgxInventoryRepository) ListInventoryTransactions(ctx context.Context, stream domain.InventoryStream, from, to time.Time) ([]domain.InventoryTransaction, error) {
	query := inventorySelect + `
		WHERE stream = $1 AND date BETWEEN $2::date AND $3::date
		ORDER BY date DESC, time DESC, seq DESC;`
	rows, err := r.Pool.Query(ctx, query, string(stream), from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list "+string(stream)+" transactions", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InventoryTransaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan "+string(stream)+" transactions", err)
	}
	return mapping.ToDomainInventoryTransactionSlice(ms), nil
}
