package plan

import "encoding/json"

// Mode selects the planner request shape.
type Mode string

const (
	// ModeSkeleton produces a strict minimal plan: 1 day, 1 project,
	// exactly 3 micro-tasks, no optional extras. Used for the first sprint
	// of an objective and for bootstrapping.
	ModeSkeleton Mode = "skeleton"

	// ModeExpansion lengthens or continues an existing plan. Existing
	// project and task identifiers are preserved verbatim; only new
	// content is appended.
	ModeExpansion Mode = "expansion"
)

// AllowedLengths is the discrete set of valid sprint lengths in days.
var AllowedLengths = []int{1, 3, 7, 14}

// SnapLength returns the closest allowed sprint length to days.
func SnapLength(days int) int {
	best := AllowedLengths[0]
	for _, l := range AllowedLengths {
		if abs(days-l) < abs(days-best) {
			best = l
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ObjectiveSnapshot is the objective context sent to the planner.
type ObjectiveSnapshot struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SuccessCriteria []string `json:"successCriteria"`
	RequiredSkills  []string `json:"requiredSkills"`
	Priority        string   `json:"priority"`
	Status          string   `json:"status"`
}

// LearnerProfile is the learner context sent to the planner.
type LearnerProfile struct {
	HoursPerWeek float64  `json:"hoursPerWeek"`
	Strengths    []string `json:"strengths"`
	Gaps         []string `json:"gaps"`
	PassionTags  []string `json:"passionTags"`
	Blockers     []string `json:"blockers"`
	Goals        []string `json:"goals"`
}

// ExpansionGoal describes how an expansion request should grow the plan.
type ExpansionGoal struct {
	TargetLengthDays     int `json:"targetLengthDays,omitempty"`
	AdditionalMicroTasks int `json:"additionalMicroTasks,omitempty"`
}

// Input is the provider-agnostic planning request payload.
type Input struct {
	Objective        ObjectiveSnapshot `json:"objective"`
	Profile          *LearnerProfile   `json:"learnerProfile"`
	PreferLength     int               `json:"preferLength"`
	AllowedResources []string          `json:"allowedResources"`
	Context          string            `json:"context"`
	Mode             Mode              `json:"mode"`
	CurrentPlan      *Document         `json:"currentPlan"`
	Expansion        *ExpansionGoal    `json:"expansionGoal"`
}

// Document is the canonical sprint plan.
type Document struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Description         string          `json:"description"`
	LengthDays          int             `json:"lengthDays"`
	TotalEstimatedHours float64         `json:"totalEstimatedHours"`
	Difficulty          string          `json:"difficulty"` // beginner, intermediate, advanced
	Projects            []Project       `json:"projects"`
	MicroTasks          []MicroTask     `json:"microTasks"`
	PortfolioCards      []PortfolioCard `json:"portfolioCards,omitempty"`
	AdaptationNotes     string          `json:"adaptationNotes"`
}

// Project is one deliverable-bearing unit of work in a sprint.
type Project struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Brief              string          `json:"brief"`
	Requirements       []string        `json:"requirements"`
	AcceptanceCriteria []string        `json:"acceptanceCriteria"`
	Deliverables       []Deliverable   `json:"deliverables"`
	EvidenceRubric     *EvidenceRubric `json:"evidenceRubric,omitempty"`
	Checkpoints        []string        `json:"checkpoints,omitempty"`
	Support            []string        `json:"support,omitempty"`
	Reflection         []string        `json:"reflection,omitempty"`
}

// Deliverable names one expected evidence artifact.
type Deliverable struct {
	Type       string `json:"type"` // repository, deployment, video, screenshot
	Title      string `json:"title"`
	ArtifactID string `json:"artifactId"`
}

// EvidenceRubric scores submitted evidence for a project.
type EvidenceRubric struct {
	Dimensions    []RubricDimension `json:"dimensions"`
	PassThreshold float64           `json:"passThreshold"`
}

// RubricDimension is one named, weighted scoring axis.
type RubricDimension struct {
	Name   string   `json:"name"`
	Weight float64  `json:"weight"`
	Levels []string `json:"levels,omitempty"`
}

// MicroTask is the smallest schedulable unit of a plan (20-90 minutes).
type MicroTask struct {
	ID               string         `json:"id"`
	ProjectID        string         `json:"projectId"`
	Title            string         `json:"title"`
	Type             string         `json:"type"` // concept, practice, project, assessment, reflection
	EstimatedMinutes int            `json:"estimatedMinutes"`
	Instructions     string         `json:"instructions"`
	AcceptanceTest   AcceptanceTest `json:"acceptanceTest"`
	Resources        []string       `json:"resources,omitempty"`
}

// AcceptanceTest describes how a micro-task is checked off.
type AcceptanceTest struct {
	Type string `json:"type"`
	Spec string `json:"spec"`
}

// PortfolioCard is an optional shareable summary of a project outcome.
type PortfolioCard struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
}

// ToMap converts a Document to the generic map form stored on a sprint row.
func (d *Document) ToMap() (map[string]any, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// FromMap converts the stored map form back to a Document.
func FromMap(m map[string]any) (*Document, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Clone returns a deep copy of the document via a JSON round-trip.
// The sanitizer never mutates caller input.
func (d *Document) Clone() (*Document, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InputToMap converts a planner Input to the generic map form stored as
// the sprint's request snapshot.
func InputToMap(in Input) (map[string]any, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
