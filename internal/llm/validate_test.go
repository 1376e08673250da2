package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func recommendationSchema() *Schema {
	return &Schema{
		Name:        "test-unit-recommendation",
		Description: "A recommended unit for the learner",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"unitId", "rationale"},
			"properties": map[string]any{
				"unitId":    map[string]any{"type": "string"},
				"rationale": map[string]any{"type": "string"},
			},
		},
	}
}

func TestValidateResponse_Conforming(t *testing.T) {
	raw := json.RawMessage(`{"unitId":"s3","rationale":"matches level 4"}`)
	if err := validateResponse(recommendationSchema(), raw); err != nil {
		t.Errorf("validateResponse: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"unitId":"s3"}`)
	err := validateResponse(recommendationSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"unitId":`)
	err := validateResponse(recommendationSchema(), raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NilSchemaPassesThrough(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("validateResponse with nil schema: %v", err)
	}
}
