package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AttendanceStatus is the presence state recorded for one shift.
type AttendanceStatus string

const (
	Present AttendanceStatus = "PRESENT"
	Absent  AttendanceStatus = "ABSENT"
	HalfDay AttendanceStatus = "HALF_DAY"
	OnLeave AttendanceStatus = "ON_LEAVE"
)

// ParseAttendanceStatus validates an attendance status.
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch st := AttendanceStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case Present, Absent, HalfDay, OnLeave:
		return st, nil
	}
	return "", apperrors.NewInvalidInput("status", "unknown attendance status %q", s)
}

// Shift identifies the working shift of an attendance entry.
type Shift string

const (
	DayShift   Shift = "DAY"
	NightShift Shift = "NIGHT"
)

// ParseShift validates a shift. An empty value defaults to the day shift.
func ParseShift(s string) (Shift, error) {
	if strings.TrimSpace(s) == "" {
		return DayShift, nil
	}
	switch sh := Shift(strings.ToUpper(strings.TrimSpace(s))); sh {
	case DayShift, NightShift:
		return sh, nil
	}
	return "", apperrors.NewInvalidInput("shift", "unknown shift %q", s)
}

// AttendanceRecord is unique per (EmployeeID, Date, Shift).
type AttendanceRecord struct {
	AttendanceID   string           `json:"attendanceID"`
	EmployeeID     string           `json:"employeeID"`
	Date           time.Time        `json:"date"`
	Shift          Shift            `json:"shift"`
	Status         AttendanceStatus `json:"status"`
	OTHours        decimal.Decimal  `json:"otHours"`
	CalculatedWage decimal.Decimal  `json:"calculatedWage"`
	Remarks        string           `json:"remarks"`
	AuditFields
}
