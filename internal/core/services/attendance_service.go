package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
	"github.com/SscSPs/tea_factory_app/internal/utils/accounting"
	"github.com/SscSPs/tea_factory_app/internal/utils/aggregation"
	"github.com/google/uuid"
)

type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	employeeRepo   portsrepo.EmployeeReader
}

// AttendanceServiceOption is a functional option for configuring the attendance service
type AttendanceServiceOption func(*attendanceService)

// WithAttendanceActivity records bulk attendance entry in the audit log.
func WithAttendanceActivity(activity portssvc.ActivitySvcFacade) AttendanceServiceOption {
	return func(s *attendanceService) {
		s.Activity = activity
	}
}

// NewAttendanceService creates a new attendance service with the provided options
func NewAttendanceService(repo portsrepo.AttendanceRepositoryFacade, employees portsrepo.EmployeeReader, options ...AttendanceServiceOption) portssvc.AttendanceSvcFacade {
	svc := &attendanceService{
		attendanceRepo: repo,
		employeeRepo:   employees,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// lookupEmployee returns nil for an unknown employee so the wage falls back to zero.
func (s *attendanceService) lookupEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Employee not found for wage calculation, using zero wage", slog.String("employee_id", employeeID))
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load employee for wage calculation", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to load employee %s: %w", employeeID, err)
	}
	return employee, nil
}

func (s *attendanceService) CreateAttendanceRecord(ctx context.Context, req dto.CreateAttendanceRequest, userID string) (*domain.AttendanceRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	shift, err := domain.ParseShift(req.Shift)
	if err != nil {
		return nil, err
	}
	status, err := domain.ParseAttendanceStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := requireNonNegative("otHours", req.OTHours); err != nil {
		return nil, err
	}

	employee, err := s.lookupEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	record := domain.AttendanceRecord{
		AttendanceID:   uuid.NewString(),
		EmployeeID:     req.EmployeeID,
		Date:           date,
		Shift:          shift,
		Status:         status,
		OTHours:        req.OTHours,
		CalculatedWage: accounting.AttendanceWage(employee, status, req.OTHours),
		Remarks:        req.Remarks,
		AuditFields:    domain.NewAuditFields(userID, s.Now()),
	}

	stored, err := s.attendanceRepo.UpsertAttendance(ctx, record)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save attendance record",
			slog.String("employee_id", req.EmployeeID), slog.String("date", req.Date))
		return nil, fmt.Errorf("failed to save attendance record: %w", err)
	}
	s.LogInfo(ctx, "Attendance record saved",
		slog.String("attendance_id", stored.AttendanceID),
		slog.String("employee_id", stored.EmployeeID),
		slog.String("wage", stored.CalculatedWage.String()))
	return stored, nil
}

func (s *attendanceService) CreateBulkAttendance(ctx context.Context, req dto.BulkAttendanceRequest, userID string) ([]domain.AttendanceRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	date, err := domain.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	shift, err := domain.ParseShift(req.Shift)
	if err != nil {
		return nil, err
	}

	roster, err := s.employeeRepo.ListEmployees(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for bulk attendance")
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	byID := make(map[string]*domain.Employee, len(roster))
	for i := range roster {
		byID[roster[i].EmployeeID] = &roster[i]
	}

	now := s.Now()
	records := make([]domain.AttendanceRecord, 0, len(req.Records))
	for i, entry := range req.Records {
		status, err := domain.ParseAttendanceStatus(entry.Status)
		if err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		if err := requireNonNegative("otHours", entry.OTHours); err != nil {
			return nil, fmt.Errorf("records[%d]: %w", i, err)
		}
		employee := byID[entry.EmployeeID]
		if employee == nil {
			s.LogWarn(ctx, "Employee not found for wage calculation, using zero wage", slog.String("employee_id", entry.EmployeeID))
		}
		records = append(records, domain.AttendanceRecord{
			AttendanceID:   uuid.NewString(),
			EmployeeID:     entry.EmployeeID,
			Date:           date,
			Shift:          shift,
			Status:         status,
			OTHours:        entry.OTHours,
			CalculatedWage: accounting.AttendanceWage(employee, status, entry.OTHours),
			Remarks:        entry.Remarks,
			AuditFields:    domain.NewAuditFields(userID, now),
		})
	}

	stored, err := s.attendanceRepo.UpsertAttendanceBatch(ctx, records)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to save bulk attendance", slog.String("date", req.Date), slog.Int("count", len(records)))
		return nil, fmt.Errorf("failed to save bulk attendance: %w", err)
	}

	s.RecordActivity(ctx, domain.ActivityBulkAttendance,
		fmt.Sprintf("Attendance marked for %d employee(s) on %s (%s shift)", len(stored), date.Format(domain.DateLayout), strings.ToLower(string(shift))),
		"", userID)
	s.LogInfo(ctx, "Bulk attendance saved", slog.String("date", req.Date), slog.Int("count", len(stored)))
	return stored, nil
}

func (s *attendanceService) UpdateAttendanceRecord(ctx context.Context, attendanceID string, req dto.UpdateAttendanceRequest, userID string) (*domain.AttendanceRecord, error) {
	record, err := s.attendanceRepo.FindAttendanceByID(ctx, attendanceID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find attendance record", slog.String("attendance_id", attendanceID))
		return nil, err
	}

	if req.Status != nil {
		if record.Status, err = domain.ParseAttendanceStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.OTHours != nil {
		if err := requireNonNegative("otHours", *req.OTHours); err != nil {
			return nil, err
		}
		record.OTHours = *req.OTHours
	}
	if req.Remarks != nil {
		record.Remarks = *req.Remarks
	}

	employee, err := s.lookupEmployee(ctx, record.EmployeeID)
	if err != nil {
		return nil, err
	}
	record.CalculatedWage = accounting.AttendanceWage(employee, record.Status, record.OTHours)
	record.LastUpdatedAt = s.Now()
	record.LastUpdatedBy = userID

	if err := s.attendanceRepo.UpdateAttendance(ctx, *record); err != nil {
		s.LogFailure(ctx, err, "Failed to update attendance record", slog.String("attendance_id", attendanceID))
		return nil, fmt.Errorf("failed to update attendance record %s: %w", attendanceID, err)
	}
	return record, nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, params dto.ListAttendanceParams) ([]domain.AttendanceRecord, error) {
	var filter portsrepo.AttendanceFilter
	date, err := domain.ParseOptionalDate("date", params.Date)
	if err != nil {
		return nil, err
	}
	filter.Date = date
	if strings.TrimSpace(params.Shift) != "" {
		shift, err := domain.ParseShift(params.Shift)
		if err != nil {
			return nil, err
		}
		filter.Shift = &shift
	}
	if params.EmployeeID != "" {
		filter.EmployeeID = &params.EmployeeID
	}

	records, err := s.attendanceRepo.ListAttendance(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance")
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

func (s *attendanceService) AttendanceSummary(ctx context.Context, date time.Time) (*domain.AttendanceSummary, error) {
	date = domain.DateOf(date)
	records, err := s.attendanceRepo.ListAttendance(ctx, portsrepo.AttendanceFilter{Date: &date})
	if err != nil {
		s.LogError(ctx, err, "Failed to load attendance for summary", slog.String("date", date.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to load attendance: %w", err)
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for summary")
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	summary := aggregation.SummarizeAttendance(date, records, employees)
	return &summary, nil
}
