package plan

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/cadence/internal/llm"
)

func skeletonDoc() *Document {
	return &Document{
		ID:                  "plan-1",
		Title:               "Ship a URL shortener",
		Description:         "One focused day building and deploying a tiny URL shortener.",
		LengthDays:          1,
		TotalEstimatedHours: 3,
		Difficulty:          "intermediate",
		Projects: []Project{
			{
				ID:                 "proj-1",
				Title:              "URL shortener",
				Brief:              "Build and deploy a minimal URL shortener.",
				Requirements:       []string{"shorten endpoint", "redirect endpoint"},
				AcceptanceCriteria: []string{"short links redirect correctly"},
				Deliverables: []Deliverable{
					{Type: "repository", Title: "Source repo", ArtifactID: "art-repo"},
				},
			},
		},
		MicroTasks: []MicroTask{
			microTask("task-1", "Scaffold the service"),
			microTask("task-2", "Implement redirects"),
			microTask("task-3", "Deploy and verify"),
		},
		AdaptationNotes: "Standard pace for an intermediate learner.",
	}
}

func microTask(id, title string) MicroTask {
	return MicroTask{
		ID:               id,
		ProjectID:        "proj-1",
		Title:            title,
		Type:             "project",
		EstimatedMinutes: 45,
		Instructions:     "Do the thing described in the title.",
		AcceptanceTest:   AcceptanceTest{Type: "manual", Spec: "Works end to end."},
	}
}

func TestSanitize_InjectsDefaultRubric(t *testing.T) {
	doc := skeletonDoc()
	if doc.Projects[0].EvidenceRubric != nil {
		t.Fatal("test doc should start without a rubric")
	}

	out, err := Sanitize(doc, ModeSkeleton, nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}

	rubric := out.Projects[0].EvidenceRubric
	if rubric == nil {
		t.Fatal("expected default rubric to be injected")
	}
	if rubric.PassThreshold != 0.7 {
		t.Errorf("pass threshold = %v, want 0.7", rubric.PassThreshold)
	}
	if len(rubric.Dimensions) != 4 {
		t.Errorf("dimensions = %d, want 4", len(rubric.Dimensions))
	}

	// Caller input stays untouched.
	if doc.Projects[0].EvidenceRubric != nil {
		t.Error("sanitize mutated its input")
	}
}

func TestSanitize_KeepsProviderRubric(t *testing.T) {
	doc := skeletonDoc()
	doc.Projects[0].EvidenceRubric = &EvidenceRubric{
		Dimensions:    []RubricDimension{{Name: "shipping", Weight: 1}},
		PassThreshold: 0.5,
	}

	out, err := Sanitize(doc, ModeSkeleton, nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if out.Projects[0].EvidenceRubric.PassThreshold != 0.5 {
		t.Error("provider rubric was replaced")
	}
}

func TestSanitize_SkeletonStripsExtras(t *testing.T) {
	doc := skeletonDoc()
	doc.Projects[0].Checkpoints = []string{"midday check"}
	doc.Projects[0].Support = []string{"office hours"}
	doc.PortfolioCards = []PortfolioCard{{ProjectID: "proj-1", Title: "Card", Summary: "s"}}

	out, err := Sanitize(doc, ModeSkeleton, nil)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if len(out.PortfolioCards) != 0 {
		t.Error("expected portfolio cards stripped from skeleton")
	}
	if len(out.Projects[0].Checkpoints) != 0 || len(out.Projects[0].Support) != 0 {
		t.Error("expected checkpoints and support stripped from skeleton")
	}
}

func TestSanitize_SkeletonShapeEnforced(t *testing.T) {
	doc := skeletonDoc()
	doc.MicroTasks = append(doc.MicroTasks, microTask("task-4", "One too many"))

	_, err := Sanitize(doc, ModeSkeleton, nil)
	if err == nil {
		t.Fatal("expected error for 4 micro-tasks in skeleton mode")
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestSanitize_ExpansionPreservesExistingTasks(t *testing.T) {
	current := skeletonDoc()
	current.Projects[0].EvidenceRubric = DefaultRubric()

	// Provider response: altered one existing task, dropped another, and
	// appended two new ones.
	raw := skeletonDoc()
	raw.LengthDays = 3
	raw.MicroTasks = []MicroTask{
		raw.MicroTasks[0],
		raw.MicroTasks[2],
		microTask("task-4", "Add analytics"),
		microTask("task-5", "Write a postmortem"),
	}
	raw.MicroTasks[0].Instructions = "Rewritten by the provider."

	out, err := Sanitize(raw, ModeExpansion, current)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}

	byID := make(map[string]MicroTask)
	for _, task := range out.MicroTasks {
		byID[task.ID] = task
	}

	for _, orig := range current.MicroTasks {
		got, ok := byID[orig.ID]
		if !ok {
			t.Fatalf("existing task %s missing from expansion output", orig.ID)
		}
		if got.Instructions != orig.Instructions {
			t.Errorf("task %s instructions changed: %q", orig.ID, got.Instructions)
		}
	}
	if _, ok := byID["task-4"]; !ok {
		t.Error("new task task-4 dropped")
	}
	if len(out.MicroTasks) != 5 {
		t.Errorf("micro-tasks = %d, want 5", len(out.MicroTasks))
	}
}

func TestSanitize_ExpansionRestoresDroppedProject(t *testing.T) {
	current := skeletonDoc()
	current.Projects[0].EvidenceRubric = DefaultRubric()

	raw := skeletonDoc()
	raw.LengthDays = 3
	raw.Projects[0].ID = "proj-2"
	raw.Projects[0].Title = "A replacement project"

	out, err := Sanitize(raw, ModeExpansion, current)
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	ids := make(map[string]bool)
	for _, p := range out.Projects {
		ids[p.ID] = true
	}
	if !ids["proj-1"] {
		t.Error("dropped project proj-1 was not restored")
	}
	if !ids["proj-2"] {
		t.Error("new project proj-2 missing")
	}
}

func TestSanitize_SchemaViolationSurfaces(t *testing.T) {
	doc := skeletonDoc()
	doc.Difficulty = "impossible"

	_, err := Sanitize(doc, ModeSkeleton, nil)
	if err == nil {
		t.Fatal("expected schema violation")
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestSnapLength(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 1}, {2, 1}, {3, 3}, {4, 3}, {6, 7}, {7, 7}, {10, 7}, {12, 14}, {30, 14},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.in), func(t *testing.T) {
			if got := SnapLength(tt.in); got != tt.want {
				t.Errorf("SnapLength(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
