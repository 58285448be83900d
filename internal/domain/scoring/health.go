package scoring

import (
	"sort"
	"strings"
	"time"
)

const (
	overduePenalty = -20
	dueSoonPenalty = -10
	dueSoonWindow  = 7 // days
)

// HealthRow is one project health result row.
type HealthRow struct {
	ProjectID    string    `json:"id"`
	Name         string    `json:"name"`
	OwnerID      string    `json:"ownerId"`
	OwnerName    string    `json:"owner"`
	Status       string    `json:"status"`
	Progress     int       `json:"progress"`
	HealthScore  int       `json:"healthScore"`
	HealthStatus string    `json:"healthStatus"`
	StartDate    time.Time `json:"startDate"`
	DueDate      time.Time `json:"dueDate"`
	DaysLeft     int       `json:"daysLeft"`
}

// ScoreProjectHealth combines progress, the owner's attendance and mood
// sub-scores, and deadline proximity into a health score clamped to
// [0,100].
func ScoreProjectHealth(project Project, snap Snapshot, today time.Time) (HealthRow, error) {
	if strings.TrimSpace(project.ID) == "" {
		return HealthRow{}, &ValidationError{Entity: "project", Reason: "missing identifier"}
	}

	attendance := AttendanceSubscore(snap.Attendance, project.OwnerID)
	mood := MoodSubscore(snap.MoodLogs, project.OwnerID)

	daysLeft := 0
	adjustment := 0
	if !project.DueDate.IsZero() {
		daysLeft = daysBetween(today, project.DueDate)
		switch {
		case daysLeft < 0:
			adjustment = overduePenalty
		case daysLeft < dueSoonWindow:
			adjustment = dueSoonPenalty
		}
	}

	score := project.Progress + attendance + mood + adjustment
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return HealthRow{
		ProjectID:    project.ID,
		Name:         project.Name,
		OwnerID:      project.OwnerID,
		OwnerName:    ownerName(snap.Employees, project.OwnerID),
		Status:       project.Status,
		Progress:     project.Progress,
		HealthScore:  score,
		HealthStatus: healthStatus(project.Status, score),
		StartDate:    project.StartDate,
		DueDate:      project.DueDate,
		DaysLeft:     daysLeft,
	}, nil
}

// healthStatus resolves in priority order. An explicit Completed or
// Cancelled project status always wins over the numeric band: a cancelled
// project is never reported Critical.
func healthStatus(projectStatus string, score int) string {
	switch projectStatus {
	case ProjectCompleted:
		return ProjectCompleted
	case ProjectCancelled:
		return ProjectCancelled
	}
	switch {
	case score >= 70:
		return HealthHealthy
	case score >= 40:
		return HealthAtRisk
	default:
		return HealthCritical
	}
}

func ownerName(employees []Employee, ownerID string) string {
	for _, emp := range employees {
		if emp.ID == ownerID {
			return emp.Name
		}
	}
	return ownerID
}

// ScoreProjectHealthBatch scores every project in the snapshot. Malformed
// projects land in the failure list; rows come back sorted by project ID.
func ScoreProjectHealthBatch(snap Snapshot, today time.Time) ([]HealthRow, []error) {
	rows := make([]HealthRow, 0, len(snap.Projects))
	var failures []error
	for _, project := range snap.Projects {
		row, err := ScoreProjectHealth(project, snap, today)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ProjectID < rows[j].ProjectID
	})
	return rows, failures
}
