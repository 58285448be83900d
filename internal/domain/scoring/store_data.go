package scoring

import (
	"context"
	"time"
)

type Store struct {
	DB Querier
}

func NewStore(db Querier) *Store {
	return &Store{DB: db}
}

// LoadSnapshot reads all six input tables. Empty tables produce empty
// slices; the engine is never handed a nil table.
func (s *Store) LoadSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Employees, err = s.loadEmployees(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Attendance, err = s.loadAttendance(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.MoodLogs, err = s.loadMoodLogs(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Feedback, err = s.loadFeedback(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Tasks, err = s.loadTasks(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Projects, err = s.loadProjects(ctx); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Store) loadEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name,
           COALESCE(department, ''),
           COALESCE(role, ''),
           status,
           COALESCE(salary, 0),
           join_date,
           resign_date
    FROM employees
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0, 64)
	for rows.Next() {
		var emp Employee
		var join, resign *time.Time
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Department, &emp.Role, &emp.Status, &emp.Salary, &join, &resign); err != nil {
			return nil, err
		}
		if join != nil {
			emp.JoinDate = *join
		}
		if resign != nil {
			emp.ResignDate = *resign
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) loadAttendance(ctx context.Context) ([]AttendanceRecord, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, att_date, status
    FROM attendance_records
    ORDER BY employee_id, att_date
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AttendanceRecord, 0, 256)
	for rows.Next() {
		var record AttendanceRecord
		if err := rows.Scan(&record.EmployeeID, &record.Date, &record.Status); err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func (s *Store) loadMoodLogs(ctx context.Context) ([]MoodLogEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, score, COALESCE(remark, ''), logged_at
    FROM mood_logs
    ORDER BY employee_id, logged_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MoodLogEntry, 0, 256)
	for rows.Next() {
		var entry MoodLogEntry
		var score *float64
		if err := rows.Scan(&entry.EmployeeID, &score, &entry.Remark, &entry.LoggedAt); err != nil {
			return nil, err
		}
		if score != nil {
			entry.Score = *score
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (s *Store) loadFeedback(ctx context.Context) ([]FeedbackEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT COALESCE(sender_id, ''), receiver_id, rating, given_at
    FROM feedback
    ORDER BY receiver_id, given_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FeedbackEntry, 0, 128)
	for rows.Next() {
		var entry FeedbackEntry
		if err := rows.Scan(&entry.SenderID, &entry.ReceiverID, &entry.Rating, &entry.GivenAt); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func (s *Store) loadTasks(ctx context.Context) ([]Task, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, COALESCE(title, ''), due_date, status, COALESCE(priority, '')
    FROM tasks
    ORDER BY employee_id, due_date
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Task, 0, 128)
	for rows.Next() {
		var task Task
		var due *time.Time
		if err := rows.Scan(&task.EmployeeID, &task.Title, &due, &task.Status, &task.Priority); err != nil {
			return nil, err
		}
		if due != nil {
			task.DueDate = *due
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (s *Store) loadProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(owner_id, ''), status, COALESCE(progress, 0), start_date, due_date
    FROM projects
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0, 32)
	for rows.Next() {
		var project Project
		var start, due *time.Time
		if err := rows.Scan(&project.ID, &project.Name, &project.OwnerID, &project.Status, &project.Progress, &start, &due); err != nil {
			return nil, err
		}
		if start != nil {
			project.StartDate = *start
		}
		if due != nil {
			project.DueDate = *due
		}
		out = append(out, project)
	}
	return out, rows.Err()
}
