package aggregation

import (
	"sort"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummarizeTransactions sums by type for today and for [from, to]. Category
// totals cover [from, to] only.
func SummarizeTransactions(today, from, to time.Time, txns []domain.Transaction) domain.TransactionSummary {
	s := domain.TransactionSummary{
		PeriodStart:   from,
		PeriodEnd:     to,
		TodayIncome:   decimal.Zero,
		TodayExpenses: decimal.Zero,
		MonthIncome:   decimal.Zero,
		MonthExpenses: decimal.Zero,
	}

	type key struct {
		typ domain.TransactionType
		cat domain.Category
	}
	totals := map[key]*domain.CategoryTotal{}

	for _, t := range txns {
		if SameDay(t.Date, today) {
			switch t.Type {
			case domain.Income:
				s.TodayIncome = s.TodayIncome.Add(t.Amount)
			case domain.Expense:
				s.TodayExpenses = s.TodayExpenses.Add(t.Amount)
			}
		}
		if !WithinRange(t.Date, from, to) {
			continue
		}
		switch t.Type {
		case domain.Income:
			s.MonthIncome = s.MonthIncome.Add(t.Amount)
		case domain.Expense:
			s.MonthExpenses = s.MonthExpenses.Add(t.Amount)
		}
		k := key{t.Type, t.Category}
		ct, ok := totals[k]
		if !ok {
			ct = &domain.CategoryTotal{Type: t.Type, Category: t.Category, Total: decimal.Zero}
			totals[k] = ct
		}
		ct.Total = ct.Total.Add(t.Amount)
		ct.Count++
	}

	s.NetProfit = s.MonthIncome.Sub(s.MonthExpenses)
	s.CategoryTotals = make([]domain.CategoryTotal, 0, len(totals))
	for _, ct := range totals {
		s.CategoryTotals = append(s.CategoryTotals, *ct)
	}
	sort.Slice(s.CategoryTotals, func(i, j int) bool {
		a, b := s.CategoryTotals[i], s.CategoryTotals[j]
		if a.Type != b.Type {
			return a.Type > b.Type // INCOME before EXPENSE
		}
		return a.Category < b.Category
	})
	return s
}
