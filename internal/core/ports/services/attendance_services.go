package services

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/dto"
)

// AttendanceReaderSvc defines read operations for attendance
type AttendanceReaderSvc interface {
	ListAttendance(ctx context.Context, params dto.ListAttendanceParams) ([]domain.AttendanceRecord, error)

	// AttendanceSummary reduces the records of one date against the active roster.
	AttendanceSummary(ctx context.Context, date time.Time) (*domain.AttendanceSummary, error)
}

// AttendanceWriterSvc defines write operations for attendance. Wages are
// recomputed on every write.
type AttendanceWriterSvc interface {
	CreateAttendanceRecord(ctx context.Context, req dto.CreateAttendanceRequest, userID string) (*domain.AttendanceRecord, error)
	CreateBulkAttendance(ctx context.Context, req dto.BulkAttendanceRequest, userID string) ([]domain.AttendanceRecord, error)
	UpdateAttendanceRecord(ctx context.Context, attendanceID string, req dto.UpdateAttendanceRequest, userID string) (*domain.AttendanceRecord, error)
}

// AttendanceSvcFacade combines all attendance-related service interfaces
type AttendanceSvcFacade interface {
	AttendanceReaderSvc
	AttendanceWriterSvc
}
