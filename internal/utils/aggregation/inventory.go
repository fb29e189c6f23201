package aggregation

import (
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var windowDivisor = decimal.NewFromInt(ConsumptionWindowDays)

// SummarizeInventory describes a stream as of today. latest is the most recent
// movement of the stream (nil for an empty stream) and txns are the movements
// of the consumption window.
func SummarizeInventory(stream domain.InventoryStream, today time.Time, latest *domain.InventoryTransaction, txns []domain.InventoryTransaction, threshold decimal.Decimal) domain.InventorySummary {
	s := domain.InventorySummary{
		Stream:           stream,
		CurrentStock:     decimal.Zero,
		TodayConsumption: decimal.Zero,
		TodayReceived:    decimal.Zero,
		Threshold:        threshold,
	}
	if latest != nil {
		s.CurrentStock = latest.RunningBalance
	}

	from, to := ConsumptionWindow(today)
	windowOutflow := decimal.Zero
	for _, t := range txns {
		if SameDay(t.Date, today) {
			if t.Type == domain.Outflow {
				s.TodayConsumption = s.TodayConsumption.Add(t.Quantity)
			} else {
				s.TodayReceived = s.TodayReceived.Add(t.Quantity)
			}
		}
		if t.Type == domain.Outflow && WithinRange(t.Date, from, to) {
			windowOutflow = windowOutflow.Add(t.Quantity)
		}
	}

	avg := windowOutflow.Div(windowDivisor)
	s.AverageDailyConsumption = avg.Round(2)
	if avg.IsZero() {
		s.DaysRemaining = domain.DaysRemainingSentinel
	} else {
		s.DaysRemaining = s.CurrentStock.Div(avg).Round(1)
	}
	s.IsLowStock = s.CurrentStock.LessThan(threshold)
	return s
}
