package scoring

import (
	"strings"
	"time"
)

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	Salary     float64   `json:"salary"`
	JoinDate   time.Time `json:"joinDate"`
	ResignDate time.Time `json:"resignDate"` // zero while still employed
}

type AttendanceRecord struct {
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

type MoodLogEntry struct {
	EmployeeID string    `json:"employeeId"`
	Score      float64   `json:"score"` // survey composite on the 5-25 scale, 0 when absent
	Remark     string    `json:"remark"`
	LoggedAt   time.Time `json:"loggedAt"`
}

// Label resolves the 3-way mood label for an entry. A remark naming a label
// wins; otherwise the numeric composite is bucketed with the survey
// thresholds. Entries with neither resolve to "" and count as missing
// signal.
func (m MoodLogEntry) Label() string {
	for _, label := range []string{MoodHappy, MoodNeutral, MoodStressed} {
		if strings.Contains(m.Remark, label) {
			return label
		}
	}
	if m.Score >= surveyMin && m.Score <= surveyMax {
		return surveyLabel(m.Score)
	}
	return ""
}

type FeedbackEntry struct {
	SenderID   string    `json:"senderId"` // empty for anonymous feedback
	ReceiverID string    `json:"receiverId"`
	Rating     float64   `json:"rating"`
	GivenAt    time.Time `json:"givenAt"`
}

type Task struct {
	EmployeeID string    `json:"employeeId"`
	Title      string    `json:"title"`
	DueDate    time.Time `json:"dueDate"`
	Status     string    `json:"status"`
	Priority   string    `json:"priority"`
}

type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"ownerId"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	StartDate time.Time `json:"startDate"`
	DueDate   time.Time `json:"dueDate"`
}

// Snapshot is the full set of input tables as they exist at the moment a
// scoring run begins. Scorers treat it as immutable; a missing table is an
// empty slice, never an error.
type Snapshot struct {
	Employees  []Employee
	Attendance []AttendanceRecord
	MoodLogs   []MoodLogEntry
	Feedback   []FeedbackEntry
	Tasks      []Task
	Projects   []Project
}
