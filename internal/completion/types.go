package completion

import "time"

// CompletionData is a learner's sprint-completion submission.
type CompletionData struct {
	TasksCompleted    int
	TotalTasks        int
	HoursSpent        float64
	EvidenceSubmitted bool
	Reflection        string
}

// Notification types surfaced on a completion result. Notifications are
// a presentation concern and are not persisted.
const (
	NotifyStreakMilestone = "streak_milestone"
	NotifyReadyToWrapUp   = "objective_ready_to_wrap_up"
)

// Notification is a transient message for the learner.
type Notification struct {
	Type    string
	Message string
}

// CompletionResult reports the outcome of completing a sprint.
type CompletionResult struct {
	SprintID            string
	SprintCompleted     bool
	CompletionRate      float64
	CurrentStreak       int
	NextSprintGenerated bool
	Progress            *Progress
	Notifications       []Notification
	Warnings            []string
}

// Progress is the aggregate view of an objective, derived from sprint
// history on read.
type Progress struct {
	ObjectiveID     string
	CurrentDay      int
	CompletedDays   int
	EstimatedDays   int
	PercentComplete float64
	CurrentStreak   int
	LongestStreak   int
}

// CompletionStatus describes where a single sprint stands.
type CompletionStatus struct {
	SprintID             string
	Status               string
	Completed            bool
	CompletedAt          *time.Time
	CompletionPercentage float64
	Score                *float64
	DayNumber            int
}
