package scoring

import "time"

// Signal aggregators reduce one employee's raw rows into bounded rates and
// sub-scores. Each rate returns ok=false when the employee has no usable
// rows, so callers can tell "no data" apart from a zero rate.

func absenceRate(records []AttendanceRecord, employeeID string) (float64, bool) {
	total, absent := 0, 0
	for _, record := range records {
		if record.EmployeeID != employeeID {
			continue
		}
		total++
		if record.Status == AttendanceAbsent || record.Status == AttendanceHalfDay {
			absent++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(absent) / float64(total), true
}

func stressRate(entries []MoodLogEntry, employeeID string) (float64, bool) {
	total, stressed := 0, 0
	for _, entry := range entries {
		if entry.EmployeeID != employeeID {
			continue
		}
		total++
		if entry.Label() == MoodStressed {
			stressed++
		}
	}
	if total == 0 {
		return 0, false
	}
	return float64(stressed) / float64(total), true
}

// meanComposite averages the numeric survey composites, skipping values
// outside the 5-25 scale: malformed upstream data counts as missing, not
// as zero.
func meanComposite(entries []MoodLogEntry, employeeID string) (float64, bool) {
	count, sum := 0, 0.0
	for _, entry := range entries {
		if entry.EmployeeID != employeeID {
			continue
		}
		if entry.Score < surveyMin || entry.Score > surveyMax {
			continue
		}
		count++
		sum += entry.Score
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// meanRating averages feedback ratings received by the employee, skipping
// values outside the 1-5 scale.
func meanRating(entries []FeedbackEntry, employeeID string) (float64, bool) {
	count, sum := 0, 0.0
	for _, entry := range entries {
		if entry.ReceiverID != employeeID {
			continue
		}
		if entry.Rating < ratingMin || entry.Rating > ratingMax {
			continue
		}
		count++
		sum += entry.Rating
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func overdueTasks(tasks []Task, employeeID string, today time.Time) int {
	count := 0
	for _, task := range tasks {
		if task.EmployeeID != employeeID || task.Status == TaskCompleted {
			continue
		}
		if !task.DueDate.IsZero() && daysBetween(today, task.DueDate) < 0 {
			count++
		}
	}
	return count
}

// The project-health sub-scores below run on a 0-20 scale with a 5-point
// default for missing data. The scale is narrower than the 0-30 attrition
// weights; the two scorers are independently calibrated and must not share
// constants.
const missingSubscore = 5

// AttendanceSubscore maps the owner's present rate onto 20/10/0.
func AttendanceSubscore(records []AttendanceRecord, employeeID string) int {
	total, present := 0, 0
	for _, record := range records {
		if record.EmployeeID != employeeID {
			continue
		}
		total++
		if record.Status == AttendancePresent {
			present++
		}
	}
	if total == 0 {
		return missingSubscore
	}
	rate := float64(present) / float64(total)
	switch {
	case rate > 0.8:
		return 20
	case rate > 0.5:
		return 10
	default:
		return 0
	}
}

// MoodSubscore maps the owner's most recent mood entry onto 20/10/0.
// Equal timestamps break toward the higher composite so row order cannot
// change the result.
func MoodSubscore(entries []MoodLogEntry, employeeID string) int {
	var latest MoodLogEntry
	found := false
	for _, entry := range entries {
		if entry.EmployeeID != employeeID {
			continue
		}
		switch {
		case !found:
			latest = entry
			found = true
		case entry.LoggedAt.After(latest.LoggedAt):
			latest = entry
		case entry.LoggedAt.Equal(latest.LoggedAt) && entry.Score > latest.Score:
			latest = entry
		}
	}
	if !found {
		return missingSubscore
	}
	switch latest.Label() {
	case MoodHappy:
		return 20
	case MoodNeutral:
		return 10
	default:
		return 0
	}
}

// daysBetween counts whole calendar days from a to b, negative when b is in
// the past. Time-of-day is ignored on both sides.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
