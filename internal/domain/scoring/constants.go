package scoring

// Employment statuses.
const (
	StatusActive   = "Active"
	StatusResigned = "Resigned"
)

// Attendance statuses. Each row counts as one observation; duplicates per
// day are allowed.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceHalfDay = "Half-day"
	AttendanceRemote  = "Remote"
)

// Mood labels.
const (
	MoodHappy    = "Happy"
	MoodNeutral  = "Neutral"
	MoodStressed = "Stressed"
)

// Task statuses.
const (
	TaskPending    = "Pending"
	TaskInProgress = "In-Progress"
	TaskCompleted  = "Completed"
)

// Project statuses.
const (
	ProjectActive    = "Active"
	ProjectOnHold    = "On Hold"
	ProjectCompleted = "Completed"
	ProjectCancelled = "Cancelled"
)

// Risk levels.
const (
	RiskLow      = "Low Risk"
	RiskMedium   = "Medium Risk"
	RiskHigh     = "High Risk"
	RiskResigned = "Resigned"
)

// Health statuses for projects that are neither Completed nor Cancelled.
const (
	HealthHealthy  = "Healthy"
	HealthAtRisk   = "At Risk"
	HealthCritical = "Critical"
)

// Survey composite scale and label bands, inclusive at the lower bound.
const (
	answerMin = 1
	answerMax = 5

	surveyMin        = 5
	surveyMax        = 25
	surveyHappyMin   = 20
	surveyNeutralMin = 13
)

// Feedback rating scale.
const (
	ratingMin = 1
	ratingMax = 5
)
