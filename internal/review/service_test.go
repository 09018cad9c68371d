package review

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/cadence/internal/llm"
	"github.com/abhisek/cadence/internal/plan"
)

func remoteReviewJSON(score float64, pass bool) json.RawMessage {
	b, _ := json.Marshal(map[string]any{
		"score":               score,
		"achieved":            []string{"working deployment"},
		"missing":             []string{},
		"nextRecommendations": []string{"add tests"},
		"pass":                pass,
	})
	return b
}

func secondProject() plan.Project {
	return plan.Project{
		ID:    "proj-2",
		Title: "Write-up",
		Deliverables: []plan.Deliverable{
			{Type: "video", Title: "Demo video", ArtifactID: "art-video"},
		},
	}
}

func TestReview_RemotePath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: remoteReviewJSON(0.85, true)})
	svc := NewService(mock, DefaultConfig())

	agg, err := svc.Review(t.Context(), Submission{
		Projects: []plan.Project{testProject()},
		ArtifactsByProject: map[string][]ArtifactEvidence{
			"proj-1": {evidence("art-repo", "ok")},
		},
	})
	if err != nil {
		t.Fatalf("review: %v", err)
	}

	if agg.Source != SourceRemote {
		t.Errorf("source = %s, want remote", agg.Source)
	}
	if agg.Score != 0.85 {
		t.Errorf("score = %v, want 0.85", agg.Score)
	}
	if !agg.Pass {
		t.Error("expected pass")
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "sprint-review" {
		t.Error("expected review schema on request")
	}
}

func TestReview_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrClientTimeout{}})
	svc := NewService(mock, DefaultConfig())

	agg, err := svc.Review(t.Context(), Submission{
		Projects: []plan.Project{testProject()},
		ArtifactsByProject: map[string][]ArtifactEvidence{
			"proj-1": {evidence("art-repo", "ok"), evidence("art-deploy", "ok")},
		},
	})
	if err != nil {
		t.Fatalf("review must always produce a result, got %v", err)
	}
	if agg.Source != SourceFallback {
		t.Errorf("source = %s, want fallback", agg.Source)
	}
	if agg.Score <= 0 {
		t.Errorf("fallback score = %v, want > 0", agg.Score)
	}
}

func TestReview_FallsBackOnMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("nonsense")})
	svc := NewService(mock, DefaultConfig())

	agg, err := svc.Review(t.Context(), Submission{
		Projects: []plan.Project{testProject()},
	})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if agg.Source != SourceFallback {
		t.Errorf("source = %s, want fallback", agg.Source)
	}
}

func TestReview_MixedSources(t *testing.T) {
	// First project reviewed remotely, second falls back.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: remoteReviewJSON(0.9, true)},
		llm.MockResponse{Err: &llm.ErrProvider{}},
	)
	svc := NewService(mock, DefaultConfig())

	agg, err := svc.Review(t.Context(), Submission{
		Projects: []plan.Project{testProject(), secondProject()},
	})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if agg.Source != SourceMixed {
		t.Errorf("source = %s, want mixed", agg.Source)
	}
	if len(agg.Projects) != 2 {
		t.Fatalf("projects = %d, want 2", len(agg.Projects))
	}
	if agg.Projects[0].Source != SourceRemote || agg.Projects[1].Source != SourceFallback {
		t.Error("per-project sources mislabeled")
	}
}

func TestReview_AggregatePassIsAND(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: remoteReviewJSON(0.95, true)},
		llm.MockResponse{Content: remoteReviewJSON(0.4, false)},
	)
	svc := NewService(mock, DefaultConfig())

	agg, err := svc.Review(t.Context(), Submission{
		Projects: []plan.Project{testProject(), secondProject()},
	})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if agg.Pass {
		t.Error("aggregate pass must be false when any project fails")
	}
	want := (0.95 + 0.4) / 2
	if agg.Score != want {
		t.Errorf("score = %v, want %v", agg.Score, want)
	}
}

func TestReview_EmptySubmission(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())
	if _, err := svc.Review(t.Context(), Submission{}); err == nil {
		t.Fatal("expected error for empty submission")
	}
}

func TestReview_ScoreClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: remoteReviewJSON(0.9, true)})
	svc := NewService(mock, DefaultConfig())

	agg, err := svc.Review(t.Context(), Submission{Projects: []plan.Project{testProject()}})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if agg.Score < 0 || agg.Score > 1 {
		t.Errorf("score %v out of range", agg.Score)
	}
}
