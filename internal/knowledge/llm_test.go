package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/stackfour/internal/llm"
)

func TestLLMHelperMapsCategory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"purpose":"Promotes lung expansion","category":"breathing"}`)},
	)
	h := NewLLMHelper(mock)

	got, err := h.InterventionPurpose(context.Background(), "high Fowler's position")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != PurposeBreathing {
		t.Errorf("purpose = %q, want %q", got, PurposeBreathing)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	prompt := mock.Calls[0].Prompt
	if !strings.Contains(prompt, "high Fowler's position") {
		t.Errorf("prompt missing term: %q", prompt)
	}
	if mock.Calls[0].Schema == nil {
		t.Error("expected structured output schema on the request")
	}
}

func TestLLMHelperUncategorizedIsEmpty(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"purpose":"Comfort measure","category":"other"}`)},
	)
	h := NewLLMHelper(mock)

	got, err := h.InterventionPurpose(context.Background(), "warm blanket")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("purpose = %q, want empty", got)
	}
}

func TestLLMHelperEmptyTermSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	h := NewLLMHelper(mock)

	got, err := h.InterventionPurpose(context.Background(), "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("purpose = %q, want empty", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for empty term", mock.CallCount())
	}
}

func TestLLMHelperPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	h := NewLLMHelper(mock)

	if _, err := h.InterventionPurpose(context.Background(), "suction"); err == nil {
		t.Fatal("expected error so Cached can fall back")
	}
}
