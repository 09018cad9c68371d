package adapt

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/cadence/internal/llm"
	"github.com/abhisek/cadence/internal/store"
)

// Thresholds for the performance analysis and the rule-based fallback.
const (
	DefaultWindowSize = 5

	highScore      = 0.9
	lowScore       = 0.7
	trendThreshold = 0.05

	difficultyStep     = 20
	velocityUpFactor   = 1.3
	velocityDownFactor = 0.7
	velocityCeiling    = 2.0
	velocityFloor      = 0.5
)

// Config tunes recalibration generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recalibrator defaults.
func DefaultConfig() Config {
	return Config{MaxTokens: 1024, Temperature: 0}
}

// Service analyzes recent sprint performance and recalibrates an
// objective's difficulty, pacing, and day estimate. The provider proposes
// a reasoned decision; the rule-based fallback applies the same thresholds
// directly when the provider fails.
type Service struct {
	provider    llm.Provider
	cfg         Config
	objectives  store.ObjectiveRepo
	sprints     store.SprintRepo
	adaptations store.AdaptationRepo
	skills      SkillLookup
}

// NewService creates a recalibrator. skills may be nil, in which case no
// skill context is attached to analyses.
func NewService(provider llm.Provider, cfg Config, objectives store.ObjectiveRepo, sprints store.SprintRepo, adaptations store.AdaptationRepo, skills SkillLookup) *Service {
	if skills == nil {
		skills = NopSkillLookup{}
	}
	return &Service{
		provider:    provider,
		cfg:         cfg,
		objectives:  objectives,
		sprints:     sprints,
		adaptations: adaptations,
		skills:      skills,
	}
}

// AnalyzePerformance summarizes the last windowSize reviewed sprints.
// windowSize <= 0 uses the default of 5.
func (s *Service) AnalyzePerformance(ctx context.Context, objectiveID, userID string, windowSize int) (*PerformanceAnalysis, error) {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	recent, err := s.sprints.RecentReviewed(ctx, objectiveID, windowSize)
	if err != nil {
		return nil, err
	}

	// RecentReviewed returns most recent first; analysis wants
	// chronological order.
	scores := make([]float64, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		scores = append(scores, *recent[i].Score)
	}

	a := &PerformanceAnalysis{
		ObjectiveID:     objectiveID,
		SprintsAnalyzed: len(scores),
		Scores:          scores,
		Trend:           TrendStable,
	}

	if len(scores) > 0 {
		a.AverageScore = mean(scores)
		a.Trend = trend(scores)
		a.ConsistentlyHigh = consistentlyHigh(scores)
		a.ConsistentlyLow = consistentlyLow(scores)
	}

	if skillMap, err := s.skills.GetUserSkillMap(userID, objectiveID); err == nil {
		a.StrugglingAreas = skillMap.StrugglingAreas
		a.MasteredSkills = skillMap.MasteredSkills
	}

	return a, nil
}

// Recalibrate asks the provider for an adaptation decision (rule-based
// fallback on any failure), applies it to the objective, and appends an
// immutable history entry.
func (s *Service) Recalibrate(ctx context.Context, objectiveID, userID string, analysis *PerformanceAnalysis) (*Decision, error) {
	obj, err := s.objectives.Get(ctx, objectiveID)
	if err != nil {
		return nil, err
	}
	if obj.UserID != userID {
		return nil, fmt.Errorf("objective %s is not owned by user %s", objectiveID, userID)
	}

	decision := s.decide(ctx, obj, analysis)

	if !decision.ShouldAdjust {
		return decision, nil
	}

	prevDifficulty := obj.CurrentDifficulty
	prevVelocity := obj.LearningVelocity
	prevEstimate := obj.EstimatedTotalDays

	obj.CurrentDifficulty = clampInt(decision.NewDifficulty, 0, 100)
	obj.LearningVelocity = clampFloat(decision.NewVelocity, velocityFloor, velocityCeiling)
	if decision.EstimatedDaysDelta != 0 {
		obj.EstimatedTotalDays = max(1, obj.EstimatedTotalDays+decision.EstimatedDaysDelta)
	}
	obj.RecalibrationCount++

	if err := s.objectives.Update(ctx, obj); err != nil {
		return nil, fmt.Errorf("apply recalibration: %w", err)
	}

	hist := &store.Adaptation{
		ObjectiveID:           objectiveID,
		AdjustmentType:        decision.AdjustmentType,
		PreviousDifficulty:    prevDifficulty,
		NewDifficulty:         obj.CurrentDifficulty,
		PreviousVelocity:      prevVelocity,
		NewVelocity:           obj.LearningVelocity,
		PreviousEstimatedDays: prevEstimate,
		NewEstimatedDays:      obj.EstimatedTotalDays,
		AverageScore:          analysis.AverageScore,
		Reason:                decision.Reasoning,
		Source:                decision.Source,
	}
	if err := s.adaptations.Append(ctx, hist); err != nil {
		return nil, fmt.Errorf("record adaptation: %w", err)
	}

	return decision, nil
}

// AdjustNextSprintDifficulty relabels the next planned sprint to match a
// new difficulty level.
func (s *Service) AdjustNextSprintDifficulty(ctx context.Context, objectiveID string, newDifficulty int) error {
	current, err := s.sprints.Current(ctx, objectiveID)
	if err != nil {
		return err
	}
	if current == nil || current.Status != store.SprintPlanned {
		return nil
	}

	current.Difficulty = DifficultyLabel(newDifficulty)
	if current.AdaptiveMetadata == nil {
		current.AdaptiveMetadata = map[string]any{}
	}
	current.AdaptiveMetadata["difficulty"] = newDifficulty
	return s.sprints.Update(ctx, current)
}

// AdjustEstimatedDays sets the objective's estimated total days directly.
func (s *Service) AdjustEstimatedDays(ctx context.Context, objectiveID string, newEstimate int) error {
	obj, err := s.objectives.Get(ctx, objectiveID)
	if err != nil {
		return err
	}
	obj.EstimatedTotalDays = max(1, newEstimate)
	return s.objectives.Update(ctx, obj)
}

// decide asks the provider for a decision, falling back to the rules on
// any failure. The fallback is recorded on the decision source.
func (s *Service) decide(ctx context.Context, obj *store.Objective, analysis *PerformanceAnalysis) *Decision {
	ctx = llm.WithPurpose(ctx, "recalibration")

	req := llm.Request{
		System: adaptSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdaptUserMessage(*analysis, obj.CurrentDifficulty, obj.LearningVelocity, obj.EstimatedTotalDays)},
		},
		Schema:      AdaptationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fallbackDecision(obj, analysis)
	}

	var d Decision
	if err := json.Unmarshal(resp.Content, &d); err != nil {
		return fallbackDecision(obj, analysis)
	}
	d.Source = "remote"
	return &d
}

// fallbackDecision applies the analysis thresholds directly:
// consistently high scores raise difficulty and pace, consistently low
// scores lower both, anything else maintains.
func fallbackDecision(obj *store.Objective, a *PerformanceAnalysis) *Decision {
	switch {
	case a.ConsistentlyHigh:
		return &Decision{
			ShouldAdjust:   true,
			AdjustmentType: AdjustIncrease,
			NewDifficulty:  clampInt(obj.CurrentDifficulty+difficultyStep, 0, 100),
			NewVelocity:    clampFloat(obj.LearningVelocity*velocityUpFactor, velocityFloor, velocityCeiling),
			Reasoning:      "Recent sprints consistently scored at or above 90%; raising difficulty and pace.",
			Source:         "fallback",
		}
	case a.ConsistentlyLow:
		return &Decision{
			ShouldAdjust:   true,
			AdjustmentType: AdjustDecrease,
			NewDifficulty:  clampInt(obj.CurrentDifficulty-difficultyStep, 0, 100),
			NewVelocity:    clampFloat(obj.LearningVelocity*velocityDownFactor, velocityFloor, velocityCeiling),
			Reasoning:      "Recent sprints repeatedly scored below 70%; lowering difficulty and pace.",
			Source:         "fallback",
		}
	default:
		return &Decision{
			ShouldAdjust:   false,
			AdjustmentType: AdjustMaintain,
			NewDifficulty:  obj.CurrentDifficulty,
			NewVelocity:    obj.LearningVelocity,
			Reasoning:      "No consistent signal in recent sprint scores.",
			Source:         "fallback",
		}
	}
}

// DifficultyLabel maps a 0-100 difficulty to the plan document's discrete
// levels.
func DifficultyLabel(difficulty int) string {
	switch {
	case difficulty < 34:
		return "beginner"
	case difficulty < 67:
		return "intermediate"
	default:
		return "advanced"
	}
}

// trend compares the first-half mean to the second-half mean with a
// ±0.05 threshold.
func trend(scores []float64) string {
	if len(scores) < 2 {
		return TrendStable
	}
	half := len(scores) / 2
	first := mean(scores[:half])
	second := mean(scores[len(scores)-half:])
	switch {
	case second-first > trendThreshold:
		return TrendImproving
	case first-second > trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// consistentlyHigh: at least 3 of the last sprints scored >= 0.9, or all
// of them when fewer than 3 exist.
func consistentlyHigh(scores []float64) bool {
	high := 0
	for _, s := range scores {
		if s >= highScore {
			high++
		}
	}
	if len(scores) < 3 {
		return high == len(scores) && len(scores) > 0
	}
	return high >= 3
}

// consistentlyLow: at least 2 of the last sprints scored < 0.7.
func consistentlyLow(scores []float64) bool {
	low := 0
	for _, s := range scores {
		if s < lowScore {
			low++
		}
	}
	return low >= 2
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
