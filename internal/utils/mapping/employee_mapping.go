package mapping

import (
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:  d.EmployeeID,
		Name:        d.Name,
		Designation: d.Designation,
		NIC:         d.NIC,
		Phone:       d.Phone,
		PayType:     string(d.PayType),
		Rate:        d.Rate,
		OTRate:      d.OTRate,
		Status:      string(d.Status),
		JoinedDate:  d.JoinedDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		Name:        m.Name,
		Designation: m.Designation,
		NIC:         m.NIC,
		Phone:       m.Phone,
		PayType:     domain.PayType(m.PayType),
		Rate:        m.Rate,
		OTRate:      m.OTRate,
		Status:      domain.EmployeeStatus(m.Status),
		JoinedDate:  toLocalDatePtr(m.JoinedDate),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	return mapSlice(ms, ToDomainEmployee)
}

// ToModelAttendanceRecord converts a domain AttendanceRecord to a model AttendanceRecord
func ToModelAttendanceRecord(d domain.AttendanceRecord) models.AttendanceRecord {
	return models.AttendanceRecord{
		AttendanceID:   d.AttendanceID,
		EmployeeID:     d.EmployeeID,
		Date:           d.Date,
		Shift:          string(d.Shift),
		Status:         string(d.Status),
		OTHours:        d.OTHours,
		CalculatedWage: d.CalculatedWage,
		Remarks:        d.Remarks,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttendanceRecord converts a model AttendanceRecord to a domain AttendanceRecord
func ToDomainAttendanceRecord(m models.AttendanceRecord) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		AttendanceID:   m.AttendanceID,
		EmployeeID:     m.EmployeeID,
		Date:           ToLocalDate(m.Date),
		Shift:          domain.Shift(m.Shift),
		Status:         domain.AttendanceStatus(m.Status),
		OTHours:        m.OTHours,
		CalculatedWage: m.CalculatedWage,
		Remarks:        m.Remarks,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAttendanceRecordSlice converts model attendance rows to domain records
func ToDomainAttendanceRecordSlice(ms []models.AttendanceRecord) []domain.AttendanceRecord {
	return mapSlice(ms, ToDomainAttendanceRecord)
}
