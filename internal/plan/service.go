package plan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/cadence/internal/llm"
)

// Service produces canonical, schema-valid sprint plans via the provider
// gateway. There is no fallback content here: a sprint plan cannot be
// synthesized locally, so provider and schema failures propagate to the
// caller (which treats generation as best-effort where appropriate).
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a sprint planner.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Plan builds the planner request for in.Mode, invokes the provider, and
// sanitizes the returned plan into the canonical form.
func (s *Service) Plan(ctx context.Context, in Input) (*Document, error) {
	ctx = llm.WithPurpose(ctx, "sprint-plan")

	userMsg, err := buildPlanUserMessage(in)
	if err != nil {
		return nil, fmt.Errorf("build plan request: %w", err)
	}

	req := llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      PlanRequestSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("plan generation: %w", err)
	}

	var raw Document
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &llm.ErrInvalidJSON{
			Content: resp.Content,
			Err:     fmt.Errorf("parse plan response: %w", err),
		}
	}

	doc, err := Sanitize(&raw, in.Mode, in.CurrentPlan)
	if err != nil {
		return nil, fmt.Errorf("plan validation: %w", err)
	}

	return doc, nil
}
