package dto

import (
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register a new employee.
// The employee id is generated by the service.
type CreateEmployeeRequest struct {
	Name        string           `json:"name" binding:"required"`
	Designation string           `json:"designation"`
	NIC         string           `json:"nic"`
	Phone       string           `json:"phone"`
	PayType     string           `json:"payType" binding:"required"`
	Rate        decimal.Decimal  `json:"rate"`
	OTRate      *decimal.Decimal `json:"otRate"`
	Status      string           `json:"status"`     // Optional, defaults to ACTIVE
	JoinedDate  string           `json:"joinedDate"` // Optional, YYYY-MM-DD
}

// UpdateEmployeeRequest defines the fields that may be changed on an employee.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name"`
	Designation *string          `json:"designation"`
	NIC         *string          `json:"nic"`
	Phone       *string          `json:"phone"`
	PayType     *string          `json:"payType"`
	Rate        *decimal.Decimal `json:"rate"`
	OTRate      *decimal.Decimal `json:"otRate"`
	Status      *string          `json:"status"`
	JoinedDate  *string          `json:"joinedDate"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Status string `form:"status"`
}
