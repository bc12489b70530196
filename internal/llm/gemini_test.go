package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"term":     map[string]any{"type": "string"},
			"purpose":  map[string]any{"type": "string"},
			"category": map[string]any{"type": "string", "enum": []any{"breathing", "circulation", "safety"}},
			"monitors": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"term", "purpose"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["term"].Type != "STRING" {
		t.Fatalf("expected STRING for term, got %s", schema.Properties["term"].Type)
	}
	if len(schema.Properties["category"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["category"].Enum))
	}
	if schema.Properties["monitors"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for monitors, got %s", schema.Properties["monitors"].Type)
	}
	if schema.Properties["monitors"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for monitors items, got %s", schema.Properties["monitors"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
