package services

import (
	"time"

	"github.com/SscSPs/tea_factory_app/internal/apperrors"
	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	"github.com/SscSPs/tea_factory_app/internal/utils/aggregation"
	"github.com/shopspring/decimal"
)

func validatePay(rate decimal.Decimal, otRate *decimal.Decimal) error {
	if err := requireNonNegative("rate", rate); err != nil {
		return err
	}
	if otRate != nil {
		return requireNonNegative("otRate", *otRate)
	}
	return nil
}

func invalidName() error {
	return apperrors.NewInvalidInput("name", "must not be empty")
}

func requirePositive(field string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return apperrors.NewInvalidInput(field, "must be greater than zero, got %s", d)
	}
	return nil
}

func requireNonNegative(field string, d decimal.Decimal) error {
	if d.IsNegative() {
		return apperrors.NewInvalidInput(field, "must not be negative, got %s", d)
	}
	return nil
}

// resolveRange parses an optional inclusive range. Missing bounds default to
// the month of today.
func resolveRange(dateFrom, dateTo string, today time.Time) (time.Time, time.Time, error) {
	from, to := aggregation.MonthWindow(today)
	if f, err := domain.ParseOptionalDate("dateFrom", dateFrom); err != nil {
		return time.Time{}, time.Time{}, err
	} else if f != nil {
		from = *f
	}
	if t, err := domain.ParseOptionalDate("dateTo", dateTo); err != nil {
		return time.Time{}, time.Time{}, err
	} else if t != nil {
		to = *t
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, apperrors.NewInvalidInput("dateFrom", "must not be after dateTo")
	}
	return from, to, nil
}
