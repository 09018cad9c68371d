package review

// ArtifactEvidence is one submitted piece of evidence as seen by the
// reviewer: the plan-side artifact ID plus the learner-side submission
// state.
type ArtifactEvidence struct {
	ArtifactID string `json:"artifactId"`
	Type       string `json:"type"`
	Title      string `json:"title,omitempty"`
	URL        string `json:"url,omitempty"`
	Status     string `json:"status,omitempty"` // ok, broken, missing
	Notes      string `json:"notes,omitempty"`
}

// SelfEvaluation is the learner's optional self-assessment.
type SelfEvaluation struct {
	Confidence *int   `json:"confidence,omitempty"` // 0-10
	Reflection string `json:"reflection,omitempty"`
}

// Output is a normalized review for one project.
type Output struct {
	Score               float64  `json:"score"` // [0,1]
	Achieved            []string `json:"achieved"`
	Missing             []string `json:"missing"`
	NextRecommendations []string `json:"nextRecommendations"`
	Pass                bool     `json:"pass"`
}

// Review sources, recorded per project and aggregated for observability.
const (
	SourceRemote   = "remote"
	SourceFallback = "fallback"
	SourceMixed    = "mixed"
)

// ProjectResult pairs a project's review with where it came from.
type ProjectResult struct {
	ProjectID string
	Output    Output
	Source    string
}

// Aggregate is the sprint-level review across all projects.
type Aggregate struct {
	Score           float64
	Pass            bool
	Achieved        []string
	Missing         []string
	Recommendations []string
	Source          string
	Projects        []ProjectResult
}
