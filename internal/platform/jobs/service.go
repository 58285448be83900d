package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"workforce/internal/domain/reports"
	"workforce/internal/domain/scoring"
	"workforce/internal/platform/config"
	"workforce/internal/platform/metrics"
)

// Service runs periodic scoring sweeps so operators see high-risk and
// critical-project counts in the logs without polling the API. Nothing is
// persisted; every sweep recomputes from the live snapshot.
type Service struct {
	store     scoring.SnapshotStore
	cfg       config.Config
	cron      *cron.Cron
	collector *metrics.Collector
}

func New(store scoring.SnapshotStore, cfg config.Config, collector *metrics.Collector) *Service {
	return &Service{store: store, cfg: cfg, cron: cron.New(), collector: collector}
}

func (s *Service) Start() error {
	if s.cfg.ScoreSweepSchedule == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.ScoreSweepSchedule, s.runSweep); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("scoring sweep scheduled", "schedule", s.cfg.ScoreSweepSchedule)
	return nil
}

func (s *Service) Stop() {
	s.cron.Stop()
}

func (s *Service) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	_, err := s.RunNow(ctx)
	if err != nil {
		slog.Warn("scoring sweep failed", "err", err)
	}
	if s.collector != nil {
		s.collector.RecordSweep(err != nil, time.Now())
	}
}

// RunNow executes one sweep and returns the summary it logged.
func (s *Service) RunNow(ctx context.Context) (reports.Summary, error) {
	snap, err := s.store.LoadSnapshot(ctx)
	if err != nil {
		return reports.Summary{}, err
	}

	now := time.Now()
	riskRows, riskFailures := scoring.ScoreAttritionBatch(snap, now)
	healthRows, healthFailures := scoring.ScoreProjectHealthBatch(snap, now)
	summary := reports.BuildSummary(snap.Employees, riskRows, healthRows, s.cfg.ReportTopRisk)

	slog.Info("scoring sweep completed",
		"employees", summary.TotalEmployees,
		"highRisk", summary.RiskLevels[scoring.RiskHigh],
		"criticalProjects", summary.HealthStatuses[scoring.HealthCritical],
		"skippedEmployees", len(riskFailures),
		"skippedProjects", len(healthFailures),
	)
	return summary, nil
}
