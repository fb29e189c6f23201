package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/dto"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	sequenceRepo portsrepo.SequenceRepository
}

// EmployeeServiceOption is a functional option for configuring the employee service
type EmployeeServiceOption func(*employeeService)

// WithEmployeeActivity records employee creation and deletion in the audit log.
func WithEmployeeActivity(activity portssvc.ActivitySvcFacade) EmployeeServiceOption {
	return func(s *employeeService) {
		s.Activity = activity
	}
}

// NewEmployeeService creates a new employee service with the provided options
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, sequences portsrepo.SequenceRepository, options ...EmployeeServiceOption) portssvc.EmployeeSvcFacade {
	svc := &employeeService{
		employeeRepo: repo,
		sequenceRepo: sequences,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	payType, err := domain.ParsePayType(req.PayType)
	if err != nil {
		return nil, err
	}
	status := domain.EmployeeActive
	if strings.TrimSpace(req.Status) != "" {
		if status, err = domain.ParseEmployeeStatus(req.Status); err != nil {
			return nil, err
		}
	}
	if err := validatePay(req.Rate, req.OTRate); err != nil {
		return nil, err
	}
	joined, err := domain.ParseOptionalDate("joinedDate", req.JoinedDate)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	seq, err := s.sequenceRepo.NextValue(ctx, domain.EmployeeSequenceName(now.Year()))
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate employee id")
		return nil, fmt.Errorf("failed to allocate employee id: %w", err)
	}

	employee := domain.Employee{
		EmployeeID:  domain.FormatEmployeeID(now.Year(), seq),
		Name:        strings.TrimSpace(req.Name),
		Designation: req.Designation,
		NIC:         req.NIC,
		Phone:       req.Phone,
		PayType:     payType,
		Rate:        req.Rate,
		OTRate:      req.OTRate,
		Status:      status,
		JoinedDate:  joined,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("employee_id", employee.EmployeeID))
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	s.RecordActivity(ctx, domain.ActivityEmployeeCreated,
		fmt.Sprintf("Employee %s (%s) created", employee.Name, employee.EmployeeID), employee.EmployeeID, userID)
	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	var status *domain.EmployeeStatus
	if strings.TrimSpace(params.Status) != "" {
		st, err := domain.ParseEmployeeStatus(params.Status)
		if err != nil {
			return nil, err
		}
		status = &st
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error) {
	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		employee.Name = strings.TrimSpace(*req.Name)
	}
	if req.Designation != nil {
		employee.Designation = *req.Designation
	}
	if req.NIC != nil {
		employee.NIC = *req.NIC
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.PayType != nil {
		if employee.PayType, err = domain.ParsePayType(*req.PayType); err != nil {
			return nil, err
		}
	}
	if req.Rate != nil {
		employee.Rate = *req.Rate
	}
	if req.OTRate != nil {
		employee.OTRate = req.OTRate
	}
	if req.Status != nil {
		if employee.Status, err = domain.ParseEmployeeStatus(*req.Status); err != nil {
			return nil, err
		}
	}
	if req.JoinedDate != nil {
		if employee.JoinedDate, err = domain.ParseOptionalDate("joinedDate", *req.JoinedDate); err != nil {
			return nil, err
		}
	}
	if employee.Name == "" {
		return nil, invalidName()
	}
	if err := validatePay(employee.Rate, employee.OTRate); err != nil {
		return nil, err
	}

	employee.LastUpdatedAt = s.Now()
	employee.LastUpdatedBy = userID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogFailure(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}
	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employeeID))
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string, userID string) error {
	employee, err := s.GetEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}

	s.RecordActivity(ctx, domain.ActivityEmployeeDeleted,
		fmt.Sprintf("Employee %s (%s) deleted", employee.Name, employeeID), employeeID, userID)
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}
