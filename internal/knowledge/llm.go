package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/stackfour/internal/llm"
)

const lookupSystem = "You are a nursing educator. You explain what individual " +
	"clinical interventions are for. You never see exam questions, only terms."

// purposeSchema constrains the model to a category the scorer understands.
var purposeSchema = &llm.Schema{
	Name:        "intervention-purpose",
	Description: "The primary clinical purpose of a nursing intervention",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"purpose": map[string]any{
				"type":        "string",
				"description": "Primary clinical purpose in 10 words or less",
			},
			"category": map[string]any{
				"type": "string",
				"enum": []any{"breathing", "circulation", "safety", "neuro", "other"},
			},
		},
		"required": []any{"purpose", "category"},
	},
}

// purposeAnswer mirrors the schema.
type purposeAnswer struct {
	Purpose  string `json:"purpose"`
	Category string `json:"category"`
}

// LLMHelper resolves intervention terms through a language model. It is
// normally wrapped in Cached with an Offline fallback.
type LLMHelper struct {
	provider llm.Provider
}

// NewLLMHelper builds a Helper on top of the given provider.
func NewLLMHelper(provider llm.Provider) *LLMHelper {
	return &LLMHelper{provider: provider}
}

// InterventionPurpose asks the model for the purpose of a single term and
// maps the categorical answer onto the scorer's purpose labels.
func (h *LLMHelper) InterventionPurpose(ctx context.Context, term string) (string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return "", nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeInterventionLookup)
	resp, err := h.provider.Generate(ctx, llm.Request{
		System:    lookupSystem,
		Prompt:    fmt.Sprintf("What is the primary clinical purpose of: %s? Answer in 10 words or less.", term),
		Schema:    purposeSchema,
		MaxTokens: 128,
	})
	if err != nil {
		return "", fmt.Errorf("lookup %q: %w", term, err)
	}

	var ans purposeAnswer
	if err := json.Unmarshal(resp.Content, &ans); err != nil {
		return "", fmt.Errorf("decode lookup for %q: %w", term, err)
	}

	switch ans.Category {
	case "breathing":
		return PurposeBreathing, nil
	case "circulation":
		return PurposeCirculation, nil
	case "safety":
		return PurposeSafety, nil
	case "neuro":
		return PurposeNeuro, nil
	}
	// An uncategorized purpose is not useful to the scorer.
	return "", nil
}
