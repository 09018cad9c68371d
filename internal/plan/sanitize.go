package plan

import (
	"fmt"

	"github.com/abhisek/cadence/internal/llm"
)

// DefaultRubric returns the library default evidence rubric, injected
// whenever the provider omits one.
func DefaultRubric() *EvidenceRubric {
	return &EvidenceRubric{
		Dimensions: []RubricDimension{
			{Name: "functionality", Weight: 0.4},
			{Name: "completeness", Weight: 0.3},
			{Name: "craftsmanship", Weight: 0.2},
			{Name: "documentation", Weight: 0.1},
		},
		PassThreshold: 0.7,
	}
}

// Sanitize normalizes a raw provider plan into the canonical form:
//
//  1. clones the payload (caller input is never mutated),
//  2. guarantees every project carries an evidence rubric, injecting the
//     library default when absent,
//  3. in expansion mode, restores any existing micro-task or project the
//     provider altered or dropped, so existing IDs survive verbatim,
//  4. in skeleton mode, strips optional extras the strict minimal plan
//     must not carry,
//  5. validates against the canonical schema.
//
// A plan that still fails validation after all of that is returned as an
// llm.ErrInvalidResponse rather than silently dropped.
func Sanitize(raw *Document, mode Mode, currentPlan *Document) (*Document, error) {
	doc, err := raw.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone plan: %w", err)
	}

	for i := range doc.Projects {
		if doc.Projects[i].EvidenceRubric == nil {
			doc.Projects[i].EvidenceRubric = DefaultRubric()
		}
	}

	if mode == ModeExpansion && currentPlan != nil {
		restoreExisting(doc, currentPlan)
	}

	if mode == ModeSkeleton {
		stripExtras(doc)
	}

	if err := llm.ValidateDocument(PlanSchema, doc); err != nil {
		return nil, err
	}

	if mode == ModeSkeleton {
		if err := checkSkeletonShape(doc); err != nil {
			return nil, &llm.ErrInvalidResponse{Err: err}
		}
	}

	return doc, nil
}

// restoreExisting enforces the expansion contract: every project and
// micro-task present in the current plan appears unchanged in the output.
func restoreExisting(doc, current *Document) {
	taskIdx := make(map[string]int, len(doc.MicroTasks))
	for i, t := range doc.MicroTasks {
		taskIdx[t.ID] = i
	}
	for _, orig := range current.MicroTasks {
		if i, ok := taskIdx[orig.ID]; ok {
			doc.MicroTasks[i] = orig
		} else {
			doc.MicroTasks = append(doc.MicroTasks, orig)
		}
	}

	projIdx := make(map[string]int, len(doc.Projects))
	for i, p := range doc.Projects {
		projIdx[p.ID] = i
	}
	for _, orig := range current.Projects {
		if _, ok := projIdx[orig.ID]; !ok {
			doc.Projects = append(doc.Projects, orig)
		}
	}
}

// stripExtras removes the optional sections a skeleton plan must not carry.
func stripExtras(doc *Document) {
	doc.PortfolioCards = nil
	for i := range doc.Projects {
		doc.Projects[i].Checkpoints = nil
		doc.Projects[i].Support = nil
		doc.Projects[i].Reflection = nil
	}
}

// checkSkeletonShape enforces the strict skeleton counts.
func checkSkeletonShape(doc *Document) error {
	if doc.LengthDays != 1 {
		return fmt.Errorf("skeleton plan must be 1 day, got %d", doc.LengthDays)
	}
	if len(doc.Projects) != 1 {
		return fmt.Errorf("skeleton plan must have exactly 1 project, got %d", len(doc.Projects))
	}
	if len(doc.MicroTasks) != 3 {
		return fmt.Errorf("skeleton plan must have exactly 3 microTasks, got %d", len(doc.MicroTasks))
	}
	return nil
}
