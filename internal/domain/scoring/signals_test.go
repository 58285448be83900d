package scoring

import (
	"testing"
	"time"
)

var signalsDay = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func attendanceRows(employeeID string, statuses ...string) []AttendanceRecord {
	out := make([]AttendanceRecord, len(statuses))
	for i, status := range statuses {
		out[i] = AttendanceRecord{EmployeeID: employeeID, Date: signalsDay.AddDate(0, 0, -i), Status: status}
	}
	return out
}

func TestAbsenceRate(t *testing.T) {
	records := attendanceRows("E1",
		AttendancePresent, AttendanceAbsent, AttendanceHalfDay, AttendanceRemote, AttendancePresent)
	records = append(records, AttendanceRecord{EmployeeID: "E2", Status: AttendanceAbsent})

	rate, ok := absenceRate(records, "E1")
	if !ok {
		t.Fatal("expected attendance data for E1")
	}
	if rate != 0.4 {
		t.Fatalf("expected rate 0.4, got %v", rate)
	}

	if _, ok := absenceRate(records, "E3"); ok {
		t.Fatal("expected no attendance data for E3")
	}
}

func TestStressRateUsesRemarksAndScores(t *testing.T) {
	entries := []MoodLogEntry{
		{EmployeeID: "E1", Remark: "Stressed", Score: 8},
		{EmployeeID: "E1", Remark: "Happy", Score: 22},
		{EmployeeID: "E1", Score: 10}, // no remark, bucketed by score
		{EmployeeID: "E1", Score: 15},
		{EmployeeID: "E2", Remark: "Stressed"},
	}

	rate, ok := stressRate(entries, "E1")
	if !ok {
		t.Fatal("expected mood data for E1")
	}
	if rate != 0.5 {
		t.Fatalf("expected stress rate 0.5, got %v", rate)
	}
}

func TestMeanCompositeSkipsMalformedScores(t *testing.T) {
	entries := []MoodLogEntry{
		{EmployeeID: "E1", Score: 10},
		{EmployeeID: "E1", Score: 20},
		{EmployeeID: "E1", Score: 0},   // missing
		{EmployeeID: "E1", Score: 400}, // malformed
	}

	mean, ok := meanComposite(entries, "E1")
	if !ok {
		t.Fatal("expected usable mood scores")
	}
	if mean != 15 {
		t.Fatalf("expected mean 15, got %v", mean)
	}

	if _, ok := meanComposite([]MoodLogEntry{{EmployeeID: "E1", Score: 99}}, "E1"); ok {
		t.Fatal("expected all-malformed scores to count as missing")
	}
}

func TestMeanRatingSkipsMalformedRatings(t *testing.T) {
	entries := []FeedbackEntry{
		{ReceiverID: "E1", Rating: 2},
		{ReceiverID: "E1", Rating: 4},
		{ReceiverID: "E1", Rating: 0},
		{ReceiverID: "E1", Rating: 17},
		{ReceiverID: "E2", Rating: 5},
	}

	mean, ok := meanRating(entries, "E1")
	if !ok {
		t.Fatal("expected usable ratings")
	}
	if mean != 3 {
		t.Fatalf("expected mean 3, got %v", mean)
	}
}

func TestOverdueTasks(t *testing.T) {
	tasks := []Task{
		{EmployeeID: "E1", Status: TaskPending, DueDate: signalsDay.AddDate(0, 0, -1)},
		{EmployeeID: "E1", Status: TaskInProgress, DueDate: signalsDay.AddDate(0, 0, -10)},
		{EmployeeID: "E1", Status: TaskCompleted, DueDate: signalsDay.AddDate(0, 0, -10)},
		{EmployeeID: "E1", Status: TaskPending, DueDate: signalsDay}, // due today, not overdue
		{EmployeeID: "E1", Status: TaskPending},                     // no due date
		{EmployeeID: "E2", Status: TaskPending, DueDate: signalsDay.AddDate(0, 0, -1)},
	}

	if got := overdueTasks(tasks, "E1", signalsDay); got != 2 {
		t.Fatalf("expected 2 overdue tasks, got %d", got)
	}
}

func TestAttendanceSubscoreBands(t *testing.T) {
	cases := []struct {
		name     string
		statuses []string
		want     int
	}{
		{"high present rate", []string{AttendancePresent, AttendancePresent, AttendancePresent, AttendancePresent, AttendancePresent}, 20},
		{"medium present rate", []string{AttendancePresent, AttendancePresent, AttendancePresent, AttendanceAbsent, AttendanceRemote}, 10},
		{"low present rate", []string{AttendancePresent, AttendanceAbsent, AttendanceAbsent, AttendanceAbsent}, 0},
		{"exactly half is not medium", []string{AttendancePresent, AttendanceAbsent}, 0},
	}
	for _, tc := range cases {
		if got := AttendanceSubscore(attendanceRows("E1", tc.statuses...), "E1"); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}

	if got := AttendanceSubscore(nil, "E1"); got != missingSubscore {
		t.Fatalf("expected missing-data default %d, got %d", missingSubscore, got)
	}
}

func TestMoodSubscoreUsesLatestEntry(t *testing.T) {
	entries := []MoodLogEntry{
		{EmployeeID: "E1", Remark: "Stressed", LoggedAt: signalsDay.AddDate(0, 0, -3)},
		{EmployeeID: "E1", Remark: "Happy", LoggedAt: signalsDay.AddDate(0, 0, -1)},
		{EmployeeID: "E2", Remark: "Neutral", LoggedAt: signalsDay},
	}

	if got := MoodSubscore(entries, "E1"); got != 20 {
		t.Fatalf("expected 20 for latest Happy entry, got %d", got)
	}
	if got := MoodSubscore(entries, "E3"); got != missingSubscore {
		t.Fatalf("expected missing-data default, got %d", got)
	}
}

func TestMoodSubscoreTieBreaksByComposite(t *testing.T) {
	when := signalsDay
	ordered := []MoodLogEntry{
		{EmployeeID: "E1", Score: 8, LoggedAt: when},
		{EmployeeID: "E1", Score: 21, LoggedAt: when},
	}
	reversed := []MoodLogEntry{ordered[1], ordered[0]}

	if MoodSubscore(ordered, "E1") != MoodSubscore(reversed, "E1") {
		t.Fatal("expected sub-score to be independent of row order")
	}
	if got := MoodSubscore(ordered, "E1"); got != 20 {
		t.Fatalf("expected tie to resolve to the higher composite, got %d", got)
	}
}
