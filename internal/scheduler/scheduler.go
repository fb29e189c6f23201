package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tea_factory_app/internal/core/domain"
	portssvc "github.com/SscSPs/tea_factory_app/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// SystemUserID is recorded as the actor of scheduled work.
const SystemUserID = "system"

// Scheduler runs the periodic alert scan.
type Scheduler struct {
	cron      *cron.Cron
	schedule  string
	dashboard portssvc.DashboardService
	activity  portssvc.ActivitySvcFacade
	logger    *slog.Logger
	now       func() time.Time
}

// NewScheduler creates a scheduler that evaluates dashboard alerts on schedule,
// a standard five-field cron expression.
func NewScheduler(schedule string, dashboard portssvc.DashboardService, activity portssvc.ActivitySvcFacade, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(time.Local)),
		schedule:  schedule,
		dashboard: dashboard,
		activity:  activity,
		logger:    logger.With(slog.String("component", "scheduler")),
		now:       time.Now,
	}
}

// Start registers the scan and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runAlertScan); err != nil {
		return fmt.Errorf("failed to schedule alert scan %q: %w", s.schedule, err)
	}
	s.logger.Info("Starting scheduler", slog.String("alert_scan", s.schedule))
	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running scan to finish.
func (s *Scheduler) Stop(ctx context.Context) {
	s.logger.Info("Stopping scheduler")
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler did not stop in time")
	}
}

func (s *Scheduler) runAlertScan() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.ScanAlerts(ctx); err != nil {
		s.logger.Error("Alert scan failed", slog.String("error", err.Error()))
	}
}

// ScanAlerts evaluates today's alerts, logs each one and records a single
// activity entry when any fired.
func (s *Scheduler) ScanAlerts(ctx context.Context) ([]domain.Alert, error) {
	today := domain.DateOf(s.now())
	alerts, err := s.dashboard.Alerts(ctx, today)
	if err != nil {
		return nil, err
	}

	if len(alerts) == 0 {
		s.logger.Info("Alert scan found nothing", slog.String("date", today.Format(domain.DateLayout)))
		return alerts, nil
	}

	types := make([]string, 0, len(alerts))
	for _, a := range alerts {
		s.logger.Warn("Alert raised",
			slog.String("type", string(a.Type)),
			slog.String("severity", string(a.Severity)),
			slog.String("message", a.Message))
		types = append(types, string(a.Type))
	}

	description := fmt.Sprintf("%d alert(s) on %s: %s", len(alerts), today.Format(domain.DateLayout), strings.Join(types, ", "))
	s.activity.Record(ctx, domain.ActivityAlertScan, description, "", SystemUserID)
	return alerts, nil
}
