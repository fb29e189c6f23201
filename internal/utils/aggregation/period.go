// Package aggregation reduces raw ledger rows into the summary figures shown on
// reports and the dashboard. Every function is pure over its inputs.
package aggregation

import (
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
)

// ConsumptionWindowDays is both the look-back and the divisor of the average
// daily consumption. The divisor stays fixed even when fewer days have data.
const ConsumptionWindowDays = 30

// MonthWindow returns the first and last calendar day of ref's month.
func MonthWindow(ref time.Time) (time.Time, time.Time) {
	y, m, _ := ref.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}

// ConsumptionWindow returns [today-30, today].
func ConsumptionWindow(today time.Time) (time.Time, time.Time) {
	today = domain.DateOf(today)
	return today.AddDate(0, 0, -ConsumptionWindowDays), today
}

// TransactionWindow resolves the "today" and period bounds of a transaction
// summary. With both dateFrom and dateTo the range replaces the month of ref
// and dateTo becomes "today".
func TransactionWindow(ref time.Time, dateFrom, dateTo *time.Time) (today, from, to time.Time) {
	if dateFrom != nil && dateTo != nil {
		return domain.DateOf(*dateTo), domain.DateOf(*dateFrom), domain.DateOf(*dateTo)
	}
	today = domain.DateOf(ref)
	from, to = MonthWindow(today)
	return today, from, to
}

// SameDay compares calendar dates, ignoring time of day and zone offsets of the
// stored value.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WithinRange reports whether d falls on a calendar day in [from, to].
func WithinRange(d, from, to time.Time) bool {
	key := dayKey(d)
	return key >= dayKey(from) && key <= dayKey(to)
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
