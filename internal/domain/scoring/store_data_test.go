package scoring

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func TestStoreLoadSnapshot(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	join := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	resign := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	tp := func(t time.Time) *time.Time { return &t }
	fp := func(f float64) *float64 { return &f }

	mock.ExpectQuery("SELECT id, name,").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "department", "role", "status", "salary", "join_date", "resign_date"}).
			AddRow("EMP001", "Ava Chen", "Engineering", "Developer", StatusActive, 90000.0, tp(join), nil).
			AddRow("EMP002", "Ben Diaz", "Sales", "Rep", StatusResigned, 70000.0, tp(join), tp(resign)))

	mock.ExpectQuery("SELECT employee_id, att_date, status").
		WillReturnRows(pgxmock.NewRows([]string{"employee_id", "att_date", "status"}).
			AddRow("EMP001", day, AttendancePresent).
			AddRow("EMP001", day.AddDate(0, 0, 1), AttendanceAbsent))

	mock.ExpectQuery("SELECT employee_id, score,").
		WillReturnRows(pgxmock.NewRows([]string{"employee_id", "score", "remark", "logged_at"}).
			AddRow("EMP001", fp(18.0), "Neutral", day).
			AddRow("EMP001", nil, "Happy", day.AddDate(0, 0, 1)))

	mock.ExpectQuery("SELECT COALESCE\\(sender_id, ''\\), receiver_id").
		WillReturnRows(pgxmock.NewRows([]string{"sender_id", "receiver_id", "rating", "given_at"}).
			AddRow("EMP002", "EMP001", 4.0, day))

	mock.ExpectQuery("SELECT employee_id, COALESCE\\(title, ''\\)").
		WillReturnRows(pgxmock.NewRows([]string{"employee_id", "title", "due_date", "status", "priority"}).
			AddRow("EMP001", "Ship release", tp(day), TaskPending, "High").
			AddRow("EMP001", "Untitled", nil, TaskCompleted, ""))

	mock.ExpectQuery("SELECT id, name, COALESCE\\(owner_id, ''\\)").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "owner_id", "status", "progress", "start_date", "due_date"}).
			AddRow("PRJ001", "Platform", "EMP001", ProjectActive, 60, tp(day), tp(day.AddDate(0, 1, 0))).
			AddRow("PRJ002", "Backlog", "", ProjectActive, 0, nil, nil))

	store := NewStore(mock)
	snap, err := store.LoadSnapshot(context.Background())
	if err != nil {
		t.Fatalf("LoadSnapshot returned error: %v", err)
	}

	if len(snap.Employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(snap.Employees))
	}
	if !snap.Employees[0].ResignDate.IsZero() {
		t.Fatal("expected zero resign date for active employee")
	}
	if snap.Employees[1].ResignDate != resign {
		t.Fatalf("expected resign date %v, got %v", resign, snap.Employees[1].ResignDate)
	}
	if len(snap.Attendance) != 2 || len(snap.Feedback) != 1 {
		t.Fatalf("unexpected row counts: %d attendance, %d feedback", len(snap.Attendance), len(snap.Feedback))
	}
	if snap.MoodLogs[1].Score != 0 {
		t.Fatalf("expected null score mapped to zero, got %v", snap.MoodLogs[1].Score)
	}
	if !snap.Tasks[1].DueDate.IsZero() {
		t.Fatal("expected zero due date for task without one")
	}
	if !snap.Projects[1].StartDate.IsZero() || !snap.Projects[1].DueDate.IsZero() {
		t.Fatal("expected zero dates for project without them")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStoreLoadSnapshotPropagatesError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT id, name,").WillReturnError(boom)

	store := NewStore(mock)
	if _, err := store.LoadSnapshot(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected query error to propagate, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
