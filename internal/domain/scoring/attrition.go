package scoring

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// 100 is reserved for resigned employees; every live score clamps here.
const maxLiveRisk = 95

// RiskRow is one attrition result row, consumed by dashboards and exports.
type RiskRow struct {
	EmployeeID string   `json:"id"`
	Name       string   `json:"name"`
	Department string   `json:"department"`
	Role       string   `json:"role"`
	Status     string   `json:"status"`
	RiskScore  int      `json:"riskScore"`
	RiskLevel  string   `json:"riskLevel"`
	Factors    []string `json:"factors"`
}

// ScoreAttrition scores one employee against the snapshot. The scorer
// filters the signal tables to the employee's own rows; a blank employee ID
// is a validation error, everything else degrades to missing signal.
func ScoreAttrition(emp Employee, snap Snapshot, today time.Time) (RiskRow, error) {
	if strings.TrimSpace(emp.ID) == "" {
		return RiskRow{}, &ValidationError{Entity: "employee", Reason: "missing identifier"}
	}

	row := RiskRow{
		EmployeeID: emp.ID,
		Name:       emp.Name,
		Department: emp.Department,
		Role:       emp.Role,
		Status:     emp.Status,
	}

	if emp.Status == StatusResigned {
		row.RiskScore = 100
		row.RiskLevel = RiskResigned
		row.Factors = []string{"Employee has already resigned"}
		return row, nil
	}

	score := 0
	var factors []string

	// Attendance component (0-30).
	if rate, ok := absenceRate(snap.Attendance, emp.ID); ok {
		switch {
		case rate > 0.30:
			score += 30
			factors = append(factors, fmt.Sprintf("High absenteeism (%.0f%%)", rate*100))
		case rate > 0.15:
			score += 15
			factors = append(factors, fmt.Sprintf("Moderate absenteeism (%.0f%%)", rate*100))
		}
	} else {
		score += 5
		factors = append(factors, "No attendance data")
	}

	// Mood component (0-40). The stress-rate bucket and the low-average
	// penalty are independent and may both fire.
	if rate, ok := stressRate(snap.MoodLogs, emp.ID); ok {
		switch {
		case rate > 0.50:
			score += 30
			factors = append(factors, fmt.Sprintf("Frequently stressed (%.0f%% of logs)", rate*100))
		case rate > 0.25:
			score += 15
			factors = append(factors, fmt.Sprintf("Occasional stress (%.0f%% of logs)", rate*100))
		}
		if mean, ok := meanComposite(snap.MoodLogs, emp.ID); ok && mean < 10 {
			score += 10
			factors = append(factors, fmt.Sprintf("Low average mood score (%.1f/25)", mean))
		}
	} else {
		score += 5
		factors = append(factors, "No mood data available")
	}

	// Feedback component (0-20). Feedback is an optional signal: no rows,
	// no penalty.
	if mean, ok := meanRating(snap.Feedback, emp.ID); ok {
		switch {
		case mean < 2.5:
			score += 20
			factors = append(factors, fmt.Sprintf("Poor feedback rating (%.1f/5)", mean))
		case mean < 3.5:
			score += 10
			factors = append(factors, fmt.Sprintf("Below-average feedback (%.1f/5)", mean))
		}
	}

	// Task component (0-10).
	if overdue := overdueTasks(snap.Tasks, emp.ID, today); overdue >= 3 {
		score += 10
		factors = append(factors, fmt.Sprintf("%d overdue tasks", overdue))
	}

	if score > maxLiveRisk {
		score = maxLiveRisk
	}

	row.RiskScore = score
	row.RiskLevel = riskLevel(score)
	row.Factors = factors
	return row, nil
}

func riskLevel(score int) string {
	switch {
	case score >= 70:
		return RiskHigh
	case score >= 40:
		return RiskMedium
	default:
		return RiskLow
	}
}

// ScoreAttritionBatch scores every employee in the snapshot. Malformed
// employees land in the failure list and the batch continues. Rows come
// back sorted by score descending, ties broken by employee ID ascending.
func ScoreAttritionBatch(snap Snapshot, today time.Time) ([]RiskRow, []error) {
	rows := make([]RiskRow, 0, len(snap.Employees))
	var failures []error
	for _, emp := range snap.Employees {
		row, err := ScoreAttrition(emp, snap, today)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].RiskScore != rows[j].RiskScore {
			return rows[i].RiskScore > rows[j].RiskScore
		}
		return rows[i].EmployeeID < rows[j].EmployeeID
	})
	return rows, failures
}
