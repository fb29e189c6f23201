package domain

import "time"

// ActivityType names an audited mutation.
type ActivityType string

const (
	ActivityEmployeeCreated    ActivityType = "EMPLOYEE_CREATED"
	ActivityEmployeeDeleted    ActivityType = "EMPLOYEE_DELETED"
	ActivityBulkAttendance     ActivityType = "BULK_ATTENDANCE"
	ActivityTransactionCreated ActivityType = "TRANSACTION_CREATED"
	ActivityProductionCreated  ActivityType = "PRODUCTION_CREATED"
	ActivityDispatchCreated    ActivityType = "DISPATCH_CREATED"
	ActivityAlertScan          ActivityType = "ALERT_SCAN"
)

// ActivityLog is an append-only audit entry.
type ActivityLog struct {
	ActivityID  string       `json:"activityID"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	EntityID    string       `json:"entityID,omitempty"`
	UserID      string       `json:"userID"`
	CreatedAt   time.Time    `json:"createdAt"`
}
