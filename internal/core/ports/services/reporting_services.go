package services

import (
	"context"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// ProfitLossStatement builds the statement for [from, to] inclusive.
	ProfitLossStatement(ctx context.Context, from, to time.Time) (*domain.ProfitLossStatement, error)
}

// DashboardService composes the dashboard snapshot
type DashboardService interface {
	DashboardKPIs(ctx context.Context, date time.Time) (*domain.DashboardKPIs, error)

	// Alerts evaluates only the alert rules for date.
	Alerts(ctx context.Context, date time.Time) ([]domain.Alert, error)
}
