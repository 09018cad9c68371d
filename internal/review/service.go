package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/cadence/internal/llm"
	"github.com/abhisek/cadence/internal/plan"
)

// Config tunes review generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns reviewer defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0,
	}
}

// Service produces reviews for submitted sprint evidence. Remote-first
// with a deterministic local fallback: a review is always produced, since
// the result gates sprint completion and downstream recalibration.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a review engine.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Submission is the evidence for one sprint, grouped by project.
type Submission struct {
	Projects           []plan.Project
	ArtifactsByProject map[string][]ArtifactEvidence
	SelfEvaluation     *SelfEvaluation
}

// Review scores every project in the submission and aggregates.
func (s *Service) Review(ctx context.Context, sub Submission) (*Aggregate, error) {
	if len(sub.Projects) == 0 {
		return nil, fmt.Errorf("nothing to review: submission has no projects")
	}

	ctx = llm.WithPurpose(ctx, "sprint-review")

	results := make([]ProjectResult, 0, len(sub.Projects))
	for _, project := range sub.Projects {
		artifacts := sub.ArtifactsByProject[project.ID]

		out, source := s.reviewProject(ctx, project, artifacts, sub.SelfEvaluation)
		results = append(results, ProjectResult{
			ProjectID: project.ID,
			Output:    out,
			Source:    source,
		})
	}

	return aggregate(results), nil
}

// reviewProject tries the remote provider and falls back locally on any
// failure: provider error, timeout, invalid JSON, or schema violation.
func (s *Service) reviewProject(ctx context.Context, project plan.Project, artifacts []ArtifactEvidence, selfEval *SelfEvaluation) (Output, string) {
	userMsg, err := buildReviewUserMessage(project, artifacts, selfEval)
	if err != nil {
		return fallbackReview(project, artifacts, selfEval), SourceFallback
	}

	req := llm.Request{
		System: reviewSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ReviewSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fallbackReview(project, artifacts, selfEval), SourceFallback
	}

	var out Output
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallbackReview(project, artifacts, selfEval), SourceFallback
	}
	out.Score = clamp01(out.Score)

	return out, SourceRemote
}

// aggregate combines project reviews into the sprint-level result:
// mean score, AND of passes, de-duplicated unions, and a source label
// (remote only when every project came from the provider).
func aggregate(results []ProjectResult) *Aggregate {
	agg := &Aggregate{
		Pass:     true,
		Projects: results,
	}

	remote, fallback := 0, 0
	for _, r := range results {
		agg.Score += r.Output.Score
		agg.Pass = agg.Pass && r.Output.Pass
		agg.Achieved = appendUnique(agg.Achieved, r.Output.Achieved)
		agg.Missing = appendUnique(agg.Missing, r.Output.Missing)
		agg.Recommendations = appendUnique(agg.Recommendations, r.Output.NextRecommendations)

		switch r.Source {
		case SourceRemote:
			remote++
		case SourceFallback:
			fallback++
		}
	}
	agg.Score /= float64(len(results))

	switch {
	case fallback == 0:
		agg.Source = SourceRemote
	case remote == 0:
		agg.Source = SourceFallback
	default:
		agg.Source = SourceMixed
	}

	return agg
}

// appendUnique appends items not already in dst, skipping empty strings.
func appendUnique(dst []string, items []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range items {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		dst = append(dst, s)
	}
	return dst
}
