package review

import (
	"strings"

	"github.com/abhisek/cadence/internal/plan"
)

// Fallback review constants. The base credit acknowledges a submission
// happened at all; artifact completeness carries most of the weight.
const (
	fallbackBase             = 0.2
	fallbackArtifactWeight   = 0.6
	fallbackConfidenceWeight = 0.2
	fallbackPassThreshold    = 0.7
)

const readmeRecommendation = "Document your work in a README: what it does, " +
	"how to run it, and what you'd improve."

const genericRecommendation = "Revisit the acceptance criteria and strengthen " +
	"the weakest deliverable before the next sprint."

// fallbackReview computes a deterministic local review for one project.
// It is used whenever the remote provider fails or returns invalid data,
// guaranteeing a review is always produced. The score is monotonic in
// artifact completeness for a fixed self-evaluation confidence.
func fallbackReview(project plan.Project, artifacts []ArtifactEvidence, selfEval *SelfEvaluation) Output {
	score := fallbackBase

	if len(artifacts) > 0 {
		ok := 0
		for _, a := range artifacts {
			if a.Status == "ok" {
				ok++
			}
		}
		score += fallbackArtifactWeight * float64(ok) / float64(len(artifacts))
	}

	if selfEval != nil && selfEval.Confidence != nil {
		score += fallbackConfidenceWeight * clamp01(float64(*selfEval.Confidence)/10)
	}

	score = clamp01(score)

	submitted := make(map[string]bool, len(artifacts))
	for _, a := range artifacts {
		submitted[a.ArtifactID] = true
	}

	var achieved, missing []string
	for _, d := range project.Deliverables {
		label := d.Title
		if label == "" {
			label = d.ArtifactID
		}
		if submitted[d.ArtifactID] {
			achieved = append(achieved, label)
		} else {
			missing = append(missing, label)
		}
	}

	var recs []string
	if !mentionsReadme(artifacts) {
		recs = append(recs, readmeRecommendation)
	}
	if len(recs) == 0 {
		recs = append(recs, genericRecommendation)
	}

	return Output{
		Score:               score,
		Achieved:            achieved,
		Missing:             missing,
		NextRecommendations: recs,
		Pass:                score >= fallbackPassThreshold,
	}
}

// mentionsReadme reports whether any artifact note or title references a
// README.
func mentionsReadme(artifacts []ArtifactEvidence) bool {
	for _, a := range artifacts {
		if strings.Contains(strings.ToLower(a.Notes), "readme") ||
			strings.Contains(strings.ToLower(a.Title), "readme") {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
