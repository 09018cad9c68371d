package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/cadence/internal/plan"
)

const reviewSystemPrompt = `You are a project evidence reviewer for a ` +
	`learning platform. You score submitted evidence against a project's ` +
	`requirements, acceptance criteria, and evidence rubric. Be concrete: ` +
	`name the deliverables that are demonstrated and the ones that are not. ` +
	`You respond only with JSON conforming to the provided schema.`

// reviewRequest is the wire payload for one project review.
type reviewRequest struct {
	Project        plan.Project       `json:"project"`
	Artifacts      []ArtifactEvidence `json:"artifacts"`
	SelfEvaluation *SelfEvaluation    `json:"selfEvaluation,omitempty"`
}

// buildReviewUserMessage renders the review request for one project.
func buildReviewUserMessage(project plan.Project, artifacts []ArtifactEvidence, selfEval *SelfEvaluation) (string, error) {
	req := reviewRequest{
		Project:        project,
		Artifacts:      artifacts,
		SelfEvaluation: selfEval,
	}

	reqJSON, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal review request: %w", err)
	}

	var b strings.Builder
	b.WriteString("Review the submitted evidence for this project:\n")
	b.Write(reqJSON)
	b.WriteString("\n\nScore in [0,1]; pass when the rubric's pass threshold is met.")
	return b.String(), nil
}
