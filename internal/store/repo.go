package store

import (
	"context"
	"fmt"
	"time"
)

// NotFoundError reports an absent entity. Callers surface it to the user
// as a typed failure rather than recovering locally.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// Objective is a learner's multi-week goal.
type Objective struct {
	ID                 string
	UserID             string
	Title              string
	Description        string
	SuccessCriteria    []string
	RequiredSkills     []string
	Priority           string
	Status             string // draft, active, completed
	EstimatedTotalDays int
	CompletedDays      int
	CurrentDifficulty  int     // 0-100
	LearningVelocity   float64 // pace multiplier, default 1.0
	RecalibrationCount int
	CurrentStreak      int
	LongestStreak      int
	LastCompletedAt    *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Sprint statuses. The lifecycle is strictly forward:
// planned → in_progress → submitted → reviewed.
const (
	SprintPlanned    = "planned"
	SprintInProgress = "in_progress"
	SprintSubmitted  = "submitted"
	SprintReviewed   = "reviewed"
)

// Sprint is one unit of planned work within an objective.
type Sprint struct {
	ID                       string
	ObjectiveID              string
	DayNumber                int
	LengthDays               int
	TotalEstimatedHours      float64
	Difficulty               string
	Status                   string
	PlannerInput             map[string]any
	PlannerOutput            map[string]any
	AdaptiveMetadata         map[string]any
	StartedAt                *time.Time
	CompletedAt              *time.Time
	CompletionPercentage     float64
	Score                    *float64
	ReviewerSummary          string
	SelfEvaluationConfidence *int
	SelfEvaluationReflection string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// IsCompleted reports whether the sprint has been finalized.
func (s *Sprint) IsCompleted() bool {
	return s.CompletedAt != nil
}

// Artifact is one piece of submitted evidence tied to a sprint + project.
type Artifact struct {
	ID         string
	SprintID   string
	ArtifactID string
	ProjectID  string
	Type       string // repository, deployment, video, screenshot
	Title      string
	URL        string
	Status     string // ok, broken, missing, unknown
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Milestone is a target day within an objective with a completion flag.
type Milestone struct {
	ID          string
	ObjectiveID string
	Title       string
	TargetDay   int
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// Adaptation is an immutable record of an applied recalibration.
type Adaptation struct {
	ID                    int
	Sequence              int64
	Timestamp             time.Time
	ObjectiveID           string
	AdjustmentType        string
	PreviousDifficulty    int
	NewDifficulty         int
	PreviousVelocity      float64
	NewVelocity           float64
	PreviousEstimatedDays int
	NewEstimatedDays      int
	AverageScore          float64
	Reason                string
	Source                string
}

// ObjectiveRepo manages objectives.
type ObjectiveRepo interface {
	Create(ctx context.Context, o *Objective) error
	Get(ctx context.Context, id string) (*Objective, error)
	// Update persists the mutable fields of o. Each call is a single
	// atomic row update.
	Update(ctx context.Context, o *Objective) error
}

// SprintRepo manages sprints.
type SprintRepo interface {
	Create(ctx context.Context, s *Sprint) error
	Get(ctx context.Context, id string) (*Sprint, error)
	Update(ctx context.Context, s *Sprint) error
	// ByObjective returns all sprints for an objective ordered by day number.
	ByObjective(ctx context.Context, objectiveID string) ([]*Sprint, error)
	// Current returns the lowest-day sprint still in planned or in_progress,
	// or nil if every sprint is past.
	Current(ctx context.Context, objectiveID string) (*Sprint, error)
	// LastDayNumber returns the highest day number generated for an
	// objective, or 0 if no sprints exist.
	LastDayNumber(ctx context.Context, objectiveID string) (int, error)
	// RecentReviewed returns up to limit reviewed sprints with non-null
	// scores, most recent day first.
	RecentReviewed(ctx context.Context, objectiveID string, limit int) ([]*Sprint, error)
}

// ArtifactRepo manages submitted evidence.
type ArtifactRepo interface {
	// Upsert creates or updates the artifact keyed by (SprintID, ArtifactID).
	Upsert(ctx context.Context, a *Artifact) error
	BySprint(ctx context.Context, sprintID string) ([]*Artifact, error)
}

// MilestoneRepo manages objective milestones.
type MilestoneRepo interface {
	Create(ctx context.Context, m *Milestone) error
	ByObjective(ctx context.Context, objectiveID string) ([]*Milestone, error)
	MarkCompleted(ctx context.Context, id string, at time.Time) error
}

// AdaptationRepo appends and reads recalibration history.
type AdaptationRepo interface {
	Append(ctx context.Context, a *Adaptation) error
	ByObjective(ctx context.Context, objectiveID string, limit int) ([]*Adaptation, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single provider request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	PromptHash   string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored provider request event.
type LLMEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	PromptHash   string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMUsage aggregates token usage for one purpose and model pairing.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to event tables.
type EventRepo interface {
	// AppendLLMRequest records a provider API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendDomainEvent records a fire-and-forget domain event.
	AppendDomainEvent(ctx context.Context, eventType string, payload map[string]any) error

	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageBreakdown(ctx context.Context) ([]*LLMUsage, error)
}
