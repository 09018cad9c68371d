package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

const planSystemPrompt = `You are a learning sprint planner. You design short, ` +
	`project-based work sprints that move a learner toward a long-running objective. ` +
	`Every sprint is built from concrete projects with verifiable deliverables and ` +
	`micro-tasks of 20-90 minutes each. You respond only with JSON conforming to ` +
	`the provided schema.`

// buildPlanUserMessage renders the planner request for either mode.
func buildPlanUserMessage(in Input) (string, error) {
	var b strings.Builder

	objJSON, err := json.MarshalIndent(in.Objective, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal objective: %w", err)
	}

	b.WriteString("Objective:\n")
	b.Write(objJSON)
	b.WriteString("\n\n")

	if in.Profile != nil {
		profJSON, err := json.MarshalIndent(in.Profile, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal profile: %w", err)
		}
		b.WriteString("Learner profile:\n")
		b.Write(profJSON)
		b.WriteString("\n\n")
	}

	if in.Context != "" {
		b.WriteString("Context:\n")
		b.WriteString(in.Context)
		b.WriteString("\n\n")
	}

	if len(in.AllowedResources) > 0 {
		b.WriteString("Allowed resources: ")
		b.WriteString(strings.Join(in.AllowedResources, ", "))
		b.WriteString("\n\n")
	}

	switch in.Mode {
	case ModeSkeleton:
		writeSkeletonInstructions(&b)
	case ModeExpansion:
		if err := writeExpansionInstructions(&b, in); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown plan mode: %q", in.Mode)
	}

	return b.String(), nil
}

func writeSkeletonInstructions(b *strings.Builder) {
	b.WriteString("Mode: skeleton.\n")
	b.WriteString("Produce a minimal one-day plan:\n")
	b.WriteString("- lengthDays must be exactly 1\n")
	b.WriteString("- exactly 1 project\n")
	b.WriteString("- exactly 3 microTasks, each 20-90 minutes\n")
	b.WriteString("- no checkpoints, no support, no reflection, no portfolioCards\n")
}

func writeExpansionInstructions(b *strings.Builder, in Input) error {
	if in.CurrentPlan == nil {
		return fmt.Errorf("expansion mode requires a current plan")
	}

	planJSON, err := json.MarshalIndent(in.CurrentPlan, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal current plan: %w", err)
	}

	b.WriteString("Mode: expansion.\n")
	b.WriteString("Current plan:\n")
	b.Write(planJSON)
	b.WriteString("\n\n")
	b.WriteString("Expand the current plan. Rules:\n")
	b.WriteString("- preserve every existing project and microTask ID verbatim\n")
	b.WriteString("- do not change existing instructions; only append new content\n")

	if in.Expansion != nil {
		if in.Expansion.TargetLengthDays > 0 {
			target := SnapLength(in.Expansion.TargetLengthDays)
			fmt.Fprintf(b, "- grow lengthDays to %d\n", target)
		}
		if in.Expansion.AdditionalMicroTasks > 0 {
			fmt.Fprintf(b, "- add %d new microTasks\n", in.Expansion.AdditionalMicroTasks)
		}
	}

	return nil
}
