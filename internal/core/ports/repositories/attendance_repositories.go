package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
)

// AttendanceFilter narrows attendance listings. Nil fields are ignored.
type AttendanceFilter struct {
	Date       *time.Time
	Shift      *domain.Shift
	EmployeeID *string
}

// AttendanceReader defines read operations for attendance data
type AttendanceReader interface {
	FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.AttendanceRecord, error)
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]domain.AttendanceRecord, error)
}

// AttendanceWriter defines write operations for attendance data
type AttendanceWriter interface {
	// UpsertAttendance inserts the record or overwrites the one sharing its
	// (employee, date, shift) key. The stored row is returned.
	UpsertAttendance(ctx context.Context, record domain.AttendanceRecord) (*domain.AttendanceRecord, error)

	// UpsertAttendanceBatch applies UpsertAttendance to every record in one DB transaction.
	UpsertAttendanceBatch(ctx context.Context, records []domain.AttendanceRecord) ([]domain.AttendanceRecord, error)

	UpdateAttendance(ctx context.Context, record domain.AttendanceRecord) error
}

// AttendanceRepositoryFacade combines all attendance-related repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}

// AttendanceRepositoryWithTx extends AttendanceRepositoryFacade with transaction capabilities
type AttendanceRepositoryWithTx interface {
	AttendanceRepositoryFacade
	TransactionManager
}
