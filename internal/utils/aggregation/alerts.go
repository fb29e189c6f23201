package aggregation

import (
	"fmt"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
)

// BuildAlerts evaluates the dashboard rules in fixed order: firewood low stock,
// packing materials low stock, then unmarked attendance.
func BuildAlerts(firewood, packing domain.InventorySummary, attendance domain.AttendanceSummary) []domain.Alert {
	alerts := make([]domain.Alert, 0, 3)
	if firewood.IsLowStock {
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertFirewoodLowStock,
			Message:  lowStockMessage("Firewood", firewood),
			Severity: domain.SeverityWarning,
		})
	}
	if packing.IsLowStock {
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertPackingLowStock,
			Message:  lowStockMessage("Packing materials", packing),
			Severity: domain.SeverityWarning,
		})
	}
	if attendance.UnmarkedCount > 0 {
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertUnmarkedAttendance,
			Message:  fmt.Sprintf("%d employee(s) have no attendance marked for %s", attendance.UnmarkedCount, attendance.Date.Format(domain.DateLayout)),
			Severity: domain.SeverityInfo,
		})
	}
	return alerts
}

func lowStockMessage(label string, s domain.InventorySummary) string {
	return fmt.Sprintf("%s stock is low: %s remaining (threshold %s), about %s days remaining",
		label, s.CurrentStock.String(), s.Threshold.String(), s.DaysRemaining.StringFixed(1))
}
