package review

import (
	"math"
	"testing"

	"github.com/abhisek/cadence/internal/plan"
)

func testProject() plan.Project {
	return plan.Project{
		ID:    "proj-1",
		Title: "URL shortener",
		Deliverables: []plan.Deliverable{
			{Type: "repository", Title: "Source repo", ArtifactID: "art-repo"},
			{Type: "deployment", Title: "Live deployment", ArtifactID: "art-deploy"},
		},
	}
}

func evidence(artifactID, status string) ArtifactEvidence {
	return ArtifactEvidence{ArtifactID: artifactID, Type: "repository", Status: status}
}

func confidence(n int) *SelfEvaluation {
	return &SelfEvaluation{Confidence: &n}
}

func TestFallback_BaseScoreWithNoArtifacts(t *testing.T) {
	out := fallbackReview(testProject(), nil, nil)
	if math.Abs(out.Score-0.2) > 1e-9 {
		t.Errorf("score = %v, want 0.2", out.Score)
	}
	if out.Pass {
		t.Error("bare submission must not pass")
	}
	if len(out.Missing) != 2 {
		t.Errorf("missing = %d, want 2 (both deliverables)", len(out.Missing))
	}
}

func TestFallback_AllOKWithFullConfidence(t *testing.T) {
	artifacts := []ArtifactEvidence{
		evidence("art-repo", "ok"),
		evidence("art-deploy", "ok"),
	}
	out := fallbackReview(testProject(), artifacts, confidence(10))
	if math.Abs(out.Score-1.0) > 1e-9 {
		t.Errorf("score = %v, want 1.0", out.Score)
	}
	if !out.Pass {
		t.Error("perfect submission should pass")
	}
	if len(out.Achieved) != 2 || len(out.Missing) != 0 {
		t.Errorf("achieved = %d, missing = %d", len(out.Achieved), len(out.Missing))
	}
}

func TestFallback_MonotonicInArtifactCompleteness(t *testing.T) {
	// For fixed confidence, more ok artifacts never lowers the score.
	prev := -1.0
	for okCount := 0; okCount <= 4; okCount++ {
		var artifacts []ArtifactEvidence
		for i := 0; i < 4; i++ {
			status := "broken"
			if i < okCount {
				status = "ok"
			}
			artifacts = append(artifacts, evidence("art-repo", status))
		}
		out := fallbackReview(testProject(), artifacts, confidence(5))
		if out.Score < prev {
			t.Fatalf("score dropped from %v to %v at %d ok artifacts", prev, out.Score, okCount)
		}
		prev = out.Score
	}
}

func TestFallback_ConfidenceClamped(t *testing.T) {
	over := fallbackReview(testProject(), nil, confidence(25))
	ten := fallbackReview(testProject(), nil, confidence(10))
	if over.Score != ten.Score {
		t.Errorf("confidence above 10 must clamp: %v vs %v", over.Score, ten.Score)
	}
}

func TestFallback_ReadmeRecommendation(t *testing.T) {
	out := fallbackReview(testProject(), []ArtifactEvidence{evidence("art-repo", "ok")}, nil)
	if len(out.NextRecommendations) != 1 || out.NextRecommendations[0] != readmeRecommendation {
		t.Errorf("expected README recommendation, got %v", out.NextRecommendations)
	}

	withReadme := []ArtifactEvidence{
		{ArtifactID: "art-repo", Status: "ok", Notes: "includes a README with setup steps"},
	}
	out = fallbackReview(testProject(), withReadme, nil)
	if len(out.NextRecommendations) != 1 || out.NextRecommendations[0] != genericRecommendation {
		t.Errorf("expected generic recommendation, got %v", out.NextRecommendations)
	}
}

func TestFallback_PassThreshold(t *testing.T) {
	// 0.2 base + 0.6 artifacts + 0 confidence = 0.8 >= 0.7.
	artifacts := []ArtifactEvidence{evidence("art-repo", "ok")}
	out := fallbackReview(testProject(), artifacts, nil)
	if !out.Pass {
		t.Errorf("score %v should pass at threshold 0.7", out.Score)
	}

	// 0.2 + 0.3 + 0.1 = 0.6 < 0.7.
	artifacts = []ArtifactEvidence{evidence("art-repo", "ok"), evidence("art-deploy", "broken")}
	out = fallbackReview(testProject(), artifacts, confidence(5))
	if out.Pass {
		t.Errorf("score %v should not pass", out.Score)
	}
}
