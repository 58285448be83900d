package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed loads a small development dataset when the employees table is
// empty. Safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	today := time.Now().Truncate(24 * time.Hour)

	employees := []struct {
		id, name, department, role, status string
		salary                             float64
		joined                             time.Time
		resigned                           *time.Time
	}{
		{"EMP001", "Asha Fernando", "Engineering", "Backend Engineer", "Active", 95000, today.AddDate(-3, 0, 0), nil},
		{"EMP002", "Marcus Silva", "Engineering", "Frontend Engineer", "Active", 88000, today.AddDate(-1, -4, 0), nil},
		{"EMP003", "Priya Nair", "Sales", "Account Executive", "Active", 70000, today.AddDate(-2, -2, 0), nil},
		{"EMP004", "Tom Becker", "Sales", "Sales Manager", "Resigned", 105000, today.AddDate(-4, 0, 0), timePtr(today.AddDate(0, -2, 0))},
	}
	for _, emp := range employees {
		if _, err := pool.Exec(ctx, `
      INSERT INTO employees (id, name, department, role, status, salary, join_date, resign_date)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
      ON CONFLICT (id) DO NOTHING
    `, emp.id, emp.name, emp.department, emp.role, emp.status, emp.salary, emp.joined, emp.resigned); err != nil {
			return err
		}
	}

	for day := 1; day <= 20; day++ {
		date := today.AddDate(0, 0, -day)
		status := "Present"
		if day%5 == 0 {
			status = "Absent"
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO attendance_records (employee_id, att_date, status) VALUES ($1,$2,$3)
    `, "EMP001", date, status); err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO attendance_records (employee_id, att_date, status) VALUES ($1,$2,$3)
    `, "EMP002", date, "Remote"); err != nil {
			return err
		}
	}

	moods := []struct {
		employee string
		score    float64
		remark   string
		daysAgo  int
	}{
		{"EMP001", 22, "Happy", 1},
		{"EMP001", 18, "Neutral", 5},
		{"EMP002", 9, "Stressed", 1},
		{"EMP002", 11, "Stressed", 3},
		{"EMP003", 15, "Neutral", 2},
	}
	for _, mood := range moods {
		if _, err := pool.Exec(ctx, `
      INSERT INTO mood_logs (employee_id, score, remark, logged_at) VALUES ($1,$2,$3,$4)
    `, mood.employee, mood.score, mood.remark, today.AddDate(0, 0, -mood.daysAgo)); err != nil {
			return err
		}
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO feedback (sender_id, receiver_id, rating, given_at) VALUES
      ('EMP003', 'EMP001', 5, $1),
      (NULL, 'EMP002', 2, $1),
      ('EMP001', 'EMP002', 3, $1)
  `, today); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO tasks (employee_id, title, due_date, status, priority) VALUES
      ('EMP001', 'Quarterly report', $1, 'Completed', 'High'),
      ('EMP002', 'Refactor login flow', $2, 'Pending', 'High'),
      ('EMP002', 'Fix dashboard charts', $2, 'In-Progress', 'Medium'),
      ('EMP002', 'Update onboarding docs', $2, 'Pending', 'Low')
  `, today.AddDate(0, 0, 7), today.AddDate(0, 0, -10)); err != nil {
		return err
	}

	if _, err := pool.Exec(ctx, `
    INSERT INTO projects (id, name, owner_id, status, progress, start_date, due_date) VALUES
      ('PRJ001', 'Billing revamp', 'EMP001', 'Active', 65, $1, $2),
      ('PRJ002', 'Mobile app', 'EMP002', 'Active', 30, $1, $3),
      ('PRJ003', 'Legacy migration', 'EMP001', 'Cancelled', 90, $1, $2)
    ON CONFLICT (id) DO NOTHING
  `, today.AddDate(0, -3, 0), today.AddDate(0, 1, 0), today.AddDate(0, 0, -5)); err != nil {
		return err
	}

	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
