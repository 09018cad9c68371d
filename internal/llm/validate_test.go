package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var colorSchema = &Schema{
	Name: "test-color",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"color": map[string]any{
				"type": "string",
				"enum": []any{"red", "green", "blue"},
			},
			"count": map[string]any{"type": "integer", "minimum": 1},
		},
		"required":             []any{"color", "count"},
		"additionalProperties": false,
	},
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced without language", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading whitespace", "  ```json\n{\"a\":1}\n```  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripCodeFence(json.RawMessage(tt.in)))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	err := validateResponse(colorSchema, json.RawMessage(`{"color":"red","count":2}`))
	if err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage("not even json")); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(colorSchema, json.RawMessage("{broken"))
	var invalid *ErrInvalidJSON
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidJSON, got %T (%v)", err, err)
	}
	if invalid.Reason() != ReasonInvalidJSON {
		t.Errorf("reason = %s, want %s", invalid.Reason(), ReasonInvalidJSON)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	err := validateResponse(colorSchema, json.RawMessage(`{"color":"purple","count":2}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
	if invalid.Reason() != ReasonInvalidSchema {
		t.Errorf("reason = %s, want %s", invalid.Reason(), ReasonInvalidSchema)
	}
}

func TestValidateDocument(t *testing.T) {
	doc := map[string]any{"color": "green", "count": 1}
	if err := ValidateDocument(colorSchema, doc); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}

	doc["count"] = 0
	if err := ValidateDocument(colorSchema, doc); err == nil {
		t.Fatal("expected violation for count below minimum")
	}
}

func TestSchemaCacheReuse(t *testing.T) {
	// Two validations against the same schema name must not recompile.
	for i := 0; i < 2; i++ {
		if err := validateResponse(colorSchema, json.RawMessage(`{"color":"blue","count":3}`)); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	if _, ok := schemaCache.Load(colorSchema.Name); !ok {
		t.Error("expected compiled schema in cache")
	}
}
