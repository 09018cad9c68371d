package plan

import (
	"encoding/json"
	"testing"

	"github.com/abhisek/cadence/internal/llm"
)

func skeletonJSON(t *testing.T) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(skeletonDoc())
	if err != nil {
		t.Fatalf("marshal test doc: %v", err)
	}
	return b
}

func testInput() Input {
	return Input{
		Objective: ObjectiveSnapshot{
			ID:              "obj-1",
			Title:           "Learn backend deployment",
			Description:     "Ship small services end to end.",
			SuccessCriteria: []string{"a deployed service"},
			RequiredSkills:  []string{"http", "docker"},
			Priority:        "high",
			Status:          "active",
		},
		PreferLength: 1,
		Mode:         ModeSkeleton,
	}
}

func TestService_PlansSkeleton(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: skeletonJSON(t)})
	svc := NewService(mock, DefaultConfig())

	doc, err := svc.Plan(t.Context(), testInput())
	if err != nil {
		t.Fatalf("plan: %v", err)
	}

	if len(doc.Projects) != 1 {
		t.Errorf("projects = %d, want 1", len(doc.Projects))
	}
	if len(doc.MicroTasks) != 3 {
		t.Errorf("micro-tasks = %d, want 3", len(doc.MicroTasks))
	}
	if doc.Projects[0].EvidenceRubric == nil {
		t.Error("expected rubric on sanitized plan")
	}
}

func TestService_SendsRequestSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: skeletonJSON(t)})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Plan(t.Context(), testInput()); err != nil {
		t.Fatalf("plan: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "sprint-plan-request" {
		t.Error("expected the relaxed wire schema on the request")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}

func TestService_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProvider{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Plan(t.Context(), testInput()); err == nil {
		t.Fatal("expected provider error to propagate")
	}
}

func TestService_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("not json")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Plan(t.Context(), testInput()); err == nil {
		t.Fatal("expected error for malformed response")
	}
}
