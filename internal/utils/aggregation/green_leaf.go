package aggregation

import (
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// SummarizeGreenLeaf reduces the intakes and batches of today's month. The
// daily average divides by the day of month, not by a fixed window.
func SummarizeGreenLeaf(today time.Time, intakes []domain.GreenLeafIntake, batches []domain.ProductionBatch, fallbackRatio decimal.Decimal) domain.GreenLeafSummary {
	from, to := MonthWindow(today)
	s := domain.GreenLeafSummary{
		TodayIntake:        decimal.Zero,
		MonthIntake:        decimal.Zero,
		MonthGreenLeafUsed: decimal.Zero,
		MonthMadeTea:       decimal.Zero,
	}

	for _, in := range intakes {
		if SameDay(in.Date, today) {
			s.TodayIntake = s.TodayIntake.Add(in.NetWeight)
			s.TodayDeliveries++
		}
		if WithinRange(in.Date, from, to) {
			s.MonthIntake = s.MonthIntake.Add(in.NetWeight)
		}
	}

	monthBatches := make([]domain.ProductionBatch, 0, len(batches))
	for _, b := range batches {
		if !WithinRange(b.Date, from, to) {
			continue
		}
		monthBatches = append(monthBatches, b)
		s.MonthGreenLeafUsed = s.MonthGreenLeafUsed.Add(b.GreenLeafUsed)
		s.MonthMadeTea = s.MonthMadeTea.Add(b.MadeTeaProduced)
	}

	s.AverageDailyIntake = s.MonthIntake.Div(decimal.NewFromInt(int64(today.Day()))).Round(2)
	s.ConversionRatio = accounting.AggregateConversionRatio(monthBatches, fallbackRatio)
	s.UnprocessedLeaf = accounting.UnprocessedLeaf(s.MonthIntake, s.MonthGreenLeafUsed)
	return s
}
