package jobs

import (
	"context"
	"errors"
	"testing"

	"workforce/internal/domain/scoring"
	"workforce/internal/platform/config"
	"workforce/internal/platform/metrics"
)

type stubStore struct {
	snap scoring.Snapshot
	err  error
}

func (s *stubStore) LoadSnapshot(ctx context.Context) (scoring.Snapshot, error) {
	return s.snap, s.err
}

func TestRunNow(t *testing.T) {
	store := &stubStore{snap: scoring.Snapshot{
		Employees: []scoring.Employee{
			{ID: "E1", Status: scoring.StatusActive},
			{ID: "E2", Status: scoring.StatusResigned},
		},
		Projects: []scoring.Project{
			{ID: "PRJ1", Status: scoring.ProjectActive, Progress: 10},
		},
	}}
	service := New(store, config.Config{ReportTopRisk: 5}, metrics.New())

	summary, err := service.RunNow(context.Background())
	if err != nil {
		t.Fatalf("RunNow returned error: %v", err)
	}
	if summary.TotalEmployees != 2 || summary.ResignedEmployees != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.RiskLevels[scoring.RiskResigned] != 1 {
		t.Fatalf("unexpected risk levels: %v", summary.RiskLevels)
	}
}

func TestRunNowPropagatesStoreError(t *testing.T) {
	boom := errors.New("db down")
	service := New(&stubStore{err: boom}, config.Config{ReportTopRisk: 5}, nil)

	if _, err := service.RunNow(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestStartWithoutSchedule(t *testing.T) {
	service := New(&stubStore{}, config.Config{}, nil)
	if err := service.Start(); err != nil {
		t.Fatalf("expected no error for empty schedule, got %v", err)
	}
	service.Stop()
}

func TestStartRejectsBadSchedule(t *testing.T) {
	service := New(&stubStore{}, config.Config{ScoreSweepSchedule: "not a cron expr"}, nil)
	if err := service.Start(); err == nil {
		t.Fatal("expected error for invalid schedule")
	}
}
