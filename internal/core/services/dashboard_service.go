package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tea_factory_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/SscSPs/tea_factory_app/internal/utils/aggregation"
	"golang.org/x/sync/errgroup"
)

const dashboardActivityLimit = 10

// DashboardDeps are the collaborators the dashboard composes.
type DashboardDeps struct {
	Attendance       portssvc.AttendanceSvcFacade
	Transactions     portsrepo.TransactionReader
	Firewood         portssvc.InventorySvcFacade
	PackingMaterials portssvc.InventorySvcFacade
	GreenLeaf        portssvc.GreenLeafSvcFacade
	MadeTea          portssvc.MadeTeaSvcFacade
	Activity         portssvc.ActivitySvcFacade
	Settings         portssvc.SettingsSvcFacade
}

type dashboardService struct {
	BaseService
	deps DashboardDeps
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardService)

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(deps DashboardDeps, options ...DashboardServiceOption) portssvc.DashboardService {
	svc := &dashboardService{deps: deps}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardService = (*dashboardService)(nil)

// DashboardKPIs loads every summary concurrently. Any failing summary fails the
// whole snapshot.
func (s *dashboardService) DashboardKPIs(ctx context.Context, date time.Time) (*domain.DashboardKPIs, error) {
	date = domain.DateOf(date)
	kpis := &domain.DashboardKPIs{Date: date}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.deps.Attendance.AttendanceSummary(gCtx, date)
		if err != nil {
			return fmt.Errorf("attendance summary: %w", err)
		}
		kpis.Attendance = *summary
		return nil
	})

	g.Go(func() error {
		today, from, to := aggregation.TransactionWindow(date, nil, nil)
		txns, err := s.deps.Transactions.FindTransactionsInRange(gCtx, from, to)
		if err != nil {
			return fmt.Errorf("transaction summary: %w", err)
		}
		kpis.Transactions = aggregation.SummarizeTransactions(today, from, to, txns)
		return nil
	})

	g.Go(func() error {
		summary, err := s.deps.Firewood.InventorySummary(gCtx, date)
		if err != nil {
			return fmt.Errorf("firewood summary: %w", err)
		}
		kpis.Firewood = *summary
		return nil
	})

	g.Go(func() error {
		summary, err := s.deps.PackingMaterials.InventorySummary(gCtx, date)
		if err != nil {
			return fmt.Errorf("packing materials summary: %w", err)
		}
		kpis.PackingMaterials = *summary
		return nil
	})

	g.Go(func() error {
		summary, err := s.deps.GreenLeaf.GreenLeafSummary(gCtx, date)
		if err != nil {
			return fmt.Errorf("green leaf summary: %w", err)
		}
		kpis.GreenLeaf = *summary
		return nil
	})

	g.Go(func() error {
		summary, err := s.deps.MadeTea.MadeTeaSummary(gCtx, date)
		if err != nil {
			return fmt.Errorf("made tea summary: %w", err)
		}
		kpis.MadeTea = *summary
		return nil
	})

	g.Go(func() error {
		activity, err := s.deps.Activity.RecentActivity(gCtx, dashboardActivityLimit)
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		kpis.RecentActivity = activity
		return nil
	})

	g.Go(func() error {
		settings, err := s.deps.Settings.ResolvedSettings(gCtx)
		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		kpis.Currency = settings.String(domain.SettingCurrency)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compose dashboard", slog.String("date", date.Format(domain.DateLayout)))
		return nil, err
	}

	kpis.Alerts = aggregation.BuildAlerts(kpis.Firewood, kpis.PackingMaterials, kpis.Attendance)
	return kpis, nil
}

// Alerts evaluates the alert rules without composing the rest of the dashboard.
func (s *dashboardService) Alerts(ctx context.Context, date time.Time) ([]domain.Alert, error) {
	date = domain.DateOf(date)
	var (
		firewood, packing domain.InventorySummary
		attendance        domain.AttendanceSummary
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.deps.Firewood.InventorySummary(gCtx, date)
		if err != nil {
			return fmt.Errorf("firewood summary: %w", err)
		}
		firewood = *summary
		return nil
	})
	g.Go(func() error {
		summary, err := s.deps.PackingMaterials.InventorySummary(gCtx, date)
		if err != nil {
			return fmt.Errorf("packing materials summary: %w", err)
		}
		packing = *summary
		return nil
	})
	g.Go(func() error {
		summary, err := s.deps.Attendance.AttendanceSummary(gCtx, date)
		if err != nil {
			return fmt.Errorf("attendance summary: %w", err)
		}
		attendance = *summary
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to evaluate alerts", slog.String("date", date.Format(domain.DateLayout)))
		return nil, err
	}

	return aggregation.BuildAlerts(firewood, packing, attendance), nil
}
