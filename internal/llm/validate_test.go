package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func purposeSchema() *Schema {
	return &Schema{
		Name:        "intervention-purpose",
		Description: "The clinical purpose of a nursing intervention",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"purpose":  map[string]any{"type": "string"},
				"category": map[string]any{"type": "string", "enum": []any{"breathing", "circulation", "safety", "neuro", "other"}},
			},
			"required": []any{"purpose", "category"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"purpose":"Promotes lung expansion","category":"breathing"}`)
	if err := validateResponse(purposeSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"purpose":"Promotes lung expansion"}`)
	err := validateResponse(purposeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"purpose":"Promotes lung expansion","category":"pulmonary"}`)
	err := validateResponse(purposeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(purposeSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(purposeSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "medication-profile",
		Description: "Monitoring profile for a medication class",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"medication": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"class": map[string]any{"type": "string"},
					},
					"required": []any{"class"},
				},
				"hold_thresholds": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number"},
				},
			},
			"required": []any{"medication", "hold_thresholds"},
		},
	}

	valid := json.RawMessage(`{"medication":{"class":"beta blocker"},"hold_thresholds":[60,90]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"medication":{"class":"beta blocker"},"hold_thresholds":["sixty"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
