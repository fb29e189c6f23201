package services

import (
	"context"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees
type EmployeeReaderSvc interface {
	GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	// CreateEmployee assigns the next EMP<YY><seq> id and persists the employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, userID string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, userID string) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string, userID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
