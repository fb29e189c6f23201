package aggregation

import (
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// WithStockStatus returns a copy of stock with each row's status derived.
func WithStockStatus(stock []domain.MadeTeaStock) []domain.MadeTeaStock {
	out := make([]domain.MadeTeaStock, len(stock))
	for i, s := range stock {
		s.StockStatus = accounting.StockStatusFor(s.Quantity)
		out[i] = s
	}
	return out
}

// SummarizeMadeTea totals stock and the production and dispatch movements of
// today and today's month. The stock value is TotalStock x unitValue.
func SummarizeMadeTea(today time.Time, stock []domain.MadeTeaStock, txns []domain.MadeTeaTransaction, unitValue decimal.Decimal) domain.MadeTeaSummary {
	from, to := MonthWindow(today)
	s := domain.MadeTeaSummary{
		TotalStock:      decimal.Zero,
		UnitValue:       unitValue,
		TodayProduction: decimal.Zero,
		MonthProduction: decimal.Zero,
		TodayDispatch:   decimal.Zero,
		MonthDispatch:   decimal.Zero,
		Stock:           WithStockStatus(stock),
	}
	for _, row := range s.Stock {
		s.TotalStock = s.TotalStock.Add(row.Quantity)
	}
	s.EstimatedStockValue = s.TotalStock.Mul(unitValue)

	for _, t := range txns {
		isToday := SameDay(t.Date, today)
		inMonth := WithinRange(t.Date, from, to)
		switch t.Type {
		case domain.MadeTeaProduction:
			if isToday {
				s.TodayProduction = s.TodayProduction.Add(t.Quantity)
			}
			if inMonth {
				s.MonthProduction = s.MonthProduction.Add(t.Quantity)
			}
		case domain.MadeTeaDispatch:
			if isToday {
				s.TodayDispatch = s.TodayDispatch.Add(t.Quantity)
			}
			if inMonth {
				s.MonthDispatch = s.MonthDispatch.Add(t.Quantity)
			}
		}
	}
	return s
}
