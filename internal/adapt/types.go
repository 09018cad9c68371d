package adapt

// Trend labels for recent sprint performance.
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// Adjustment types for a recalibration decision.
const (
	AdjustIncrease = "increase"
	AdjustDecrease = "decrease"
	AdjustMaintain = "maintain"
)

// PerformanceAnalysis summarizes the learner's recent reviewed sprints.
type PerformanceAnalysis struct {
	ObjectiveID      string
	SprintsAnalyzed  int
	AverageScore     float64 // [0,1]
	Trend            string
	ConsistentlyHigh bool
	ConsistentlyLow  bool
	StrugglingAreas  []string
	MasteredSkills   []string
	Scores           []float64 // chronological, oldest first
}

// Decision is the outcome of a recalibration.
type Decision struct {
	ShouldAdjust       bool     `json:"shouldAdjust"`
	AdjustmentType     string   `json:"adjustmentType"` // increase, decrease, maintain
	NewDifficulty      int      `json:"newDifficulty"`  // [0,100]
	NewVelocity        float64  `json:"newVelocity"`    // [0.5,2.0]
	Reasoning          string   `json:"reasoning"`
	Recommendations    []string `json:"recommendations"`
	EstimatedDaysDelta int      `json:"estimatedDaysDelta"`

	// Source records whether the provider or the rule-based fallback
	// produced the decision.
	Source string `json:"-"`
}

// SkillMap is the skill-tracking collaborator's view of a learner.
type SkillMap struct {
	StrugglingAreas []string
	MasteredSkills  []string
}

// SkillLookup is the skill-tracking collaborator boundary.
type SkillLookup interface {
	GetUserSkillMap(userID, objectiveID string) (SkillMap, error)
}

// NopSkillLookup returns empty skill maps. Used when no skill tracker is
// wired in.
type NopSkillLookup struct{}

func (NopSkillLookup) GetUserSkillMap(string, string) (SkillMap, error) {
	return SkillMap{}, nil
}
