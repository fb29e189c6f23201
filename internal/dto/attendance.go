package dto

import (
	"github.com/shopspring/decimal"
)

// CreateAttendanceRequest records one employee's attendance for a shift. An
// existing record with the same employee, date and shift is overwritten.
type CreateAttendanceRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	Date       string          `json:"date" binding:"required"`
	Shift      string          `json:"shift"`
	Status     string          `json:"status" binding:"required"`
	OTHours    decimal.Decimal `json:"otHours"`
	Remarks    string          `json:"remarks"`
}

// BulkAttendanceEntry is one employee row of a bulk attendance sheet.
type BulkAttendanceEntry struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	Status     string          `json:"status" binding:"required"`
	OTHours    decimal.Decimal `json:"otHours"`
	Remarks    string          `json:"remarks"`
}

// BulkAttendanceRequest marks attendance for many employees on one date and shift.
type BulkAttendanceRequest struct {
	Date    string                `json:"date" binding:"required"`
	Shift   string                `json:"shift"`
	Records []BulkAttendanceEntry `json:"records" binding:"required,min=1,dive"`
}

// UpdateAttendanceRequest defines the editable fields of an attendance record.
type UpdateAttendanceRequest struct {
	Status  *string          `json:"status"`
	OTHours *decimal.Decimal `json:"otHours"`
	Remarks *string          `json:"remarks"`
}

// ListAttendanceParams defines query parameters for listing attendance.
type ListAttendanceParams struct {
	Date       string `form:"date"`
	Shift      string `form:"shift"`
	EmployeeID string `form:"employeeID"`
}

// DateParams carries an optional "as of" date. Empty means today.
type DateParams struct {
	Date string `form:"date"`
}
