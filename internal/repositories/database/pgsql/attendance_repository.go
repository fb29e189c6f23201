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

const attendanceColumns = `attendance_id, employee_id, date, shift, status, ot_hours, calculated_wage, remarks,
	created_at, created_by, last_updated_at, last_updated_by`

// The existing row keeps its id and creation audit on conflict.
const upsertAttendanceQuery = `
	INSERT INTO attendance_records (` + attendanceColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (employee_id, date, shift) DO UPDATE
	SET status = EXCLUDED.status,
	    ot_hours = EXCLUDED.ot_hours,
	    calculated_wage = EXCLUDED.calculated_wage,
	    remarks = EXCLUDED.remarks,
	    last_updated_at = EXCLUDED.last_updated_at,
	    last_updated_by = EXCLUDED.last_updated_by
	RETURNING ` + attendanceColumns + `;`

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryWithTx {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepositoryWithTx = (*PgxAttendanceRepository)(nil)

func (r *PgxAttendanceRepository) upsert(ctx context.Context, q querier, record domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	m := mapping.ToModelAttendanceRecord(record)
	rows, err := q.Query(ctx, upsertAttendanceQuery,
		m.AttendanceID, m.EmployeeID, m.Date, m.Shift, m.Status, m.OTHours, m.CalculatedWage, m.Remarks,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapWriteError(err, "upsert", "attendance for "+m.EmployeeID, "employeeID")
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AttendanceRecord])
	if err != nil {
		return nil, mapWriteError(err, "upsert", "attendance for "+m.EmployeeID, "employeeID")
	}
	d := mapping.ToDomainAttendanceRecord(stored)
	return &d, nil
}

// UpsertAttendance inserts or overwrites the record for (employee, date, shift).
func (r *PgxAttendanceRepository) UpsertAttendance(ctx context.Context, record domain.AttendanceRecord) (*domain.AttendanceRecord, error) {
	return r.upsert(ctx, r.Pool, record)
}

// UpsertAttendanceBatch upserts every record in a single DB transaction.
func (r *PgxAttendanceRepository) UpsertAttendanceBatch(ctx context.Context, records []domain.AttendanceRecord) ([]domain.AttendanceRecord, error) {
	stored := make([]domain.AttendanceRecord, 0, len(records))
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		for _, record := range records {
			s, err := r.upsert(ctx, tx, record)
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

// UpdateAttendance overwrites status, overtime, wage and remarks of an existing record.
func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, record domain.AttendanceRecord) error {
	m := mapping.ToModelAttendanceRecord(record)
	query := `UPDATE attendance_records
		SET status = $2, ot_hours = $3, calculated_wage = $4, remarks = $5, last_updated_at = $6, last_updated_by = $7
		WHERE attendance_id = $1;`
	tag, err := r.Pool.Exec(ctx, query,
		m.AttendanceID, m.Status, m.OTHours, m.CalculatedWage, m.Remarks, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update attendance "+m.AttendanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAttendanceByID retrieves one attendance record.
func (r *PgxAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.AttendanceRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+attendanceColumns+` FROM attendance_records WHERE attendance_id = $1;`, attendanceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attendance "+attendanceID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.AttendanceRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan attendance "+attendanceID, err)
	}
	d := mapping.ToDomainAttendanceRecord(m)
	return &d, nil
}

// ListAttendance returns records matching filter ordered by date desc, then employee.
func (r *PgxAttendanceRepository) ListAttendance(ctx context.Context, filter portsrepo.AttendanceFilter) ([]domain.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records
		WHERE ($1::date IS NULL OR date = $1)
		  AND ($2::text IS NULL OR shift = $2)
		  AND ($3::text IS NULL OR employee_id = $3)
		ORDER BY date DESC, employee_id, shift;`
	var shift *string
	if filter.Shift != nil {
		s := string(*filter.Shift)
		shift = &s
	}
	rows, err := r.Pool.Query(ctx, query, filter.Date, shift, filter.EmployeeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list attendance", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AttendanceRecord])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan attendance", err)
	}
	return mapping.ToDomainAttendanceRecordSlice(ms), nil
}
