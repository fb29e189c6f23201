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

const employeeColumns = `employee_id, name, designation, nic, phone, pay_type, rate, ot_rate, status, joined_date,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.Name, m.Designation, m.NIC, m.Phone, m.PayType, m.Rate, m.OTRate, m.Status, m.JoinedDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "insert", "employee "+m.EmployeeID, "employeeID")
	}
	return nil
}

// FindEmployeeByID retrieves an employee by id.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employee "+employeeID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan employee "+employeeID, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

// ListEmployees returns employees ordered by id, optionally restricted to a status.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, status *domain.EmployeeStatus) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY employee_id;`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	rows, err := r.Pool.Query(ctx, query, statusArg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list employees", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan employees", err)
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

// UpdateEmployee overwrites the mutable columns of an employee.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `UPDATE employees
		SET name = $2, designation = $3, nic = $4, phone = $5, pay_type = $6, rate = $7, ot_rate = $8,
		    status = $9, joined_date = $10, last_updated_at = $11, last_updated_by = $12
		WHERE employee_id = $1;`
	tag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.Name, m.Designation, m.NIC, m.Phone, m.PayType, m.Rate, m.OTRate,
		m.Status, m.JoinedDate, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapWriteError(err, "update", "employee "+m.EmployeeID, "employeeID")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEmployee removes the employee; attendance rows go with it via ON DELETE CASCADE.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete employee "+employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
