package knowledge

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOffline_FactTable(t *testing.T) {
	o := NewOffline()
	tests := []struct {
		term string
		want string
	}{
		{"Place the client in high-Fowler's position", PurposeBreathing},
		{"Trendelenburg position", PurposeCirculation},
		{"incentive spirometry every hour", PurposeBreathing},
		{"apply direct pressure to the wound", PurposeCirculation},
		{"activate the bed alarm", PurposeSafety},
		{"administer acetaminophen", ""},
	}
	for _, tt := range tests {
		got, err := o.InterventionPurpose(context.Background(), tt.term)
		if err != nil {
			t.Fatalf("InterventionPurpose(%q): %v", tt.term, err)
		}
		if got != tt.want {
			t.Errorf("InterventionPurpose(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

type countingHelper struct {
	calls int
	label string
	err   error
}

func (h *countingHelper) InterventionPurpose(context.Context, string) (string, error) {
	h.calls++
	return h.label, h.err
}

func TestCached_Memoizes(t *testing.T) {
	primary := &countingHelper{label: PurposeBreathing}
	c := NewCached(primary, nil, 100, time.Second)
	for i := 0; i < 3; i++ {
		got, err := c.InterventionPurpose(context.Background(), "High-Fowler's  ")
		if err != nil {
			t.Fatalf("lookup %d: %v", i, err)
		}
		if got != PurposeBreathing {
			t.Fatalf("lookup %d = %q, want %q", i, got, PurposeBreathing)
		}
	}
	if primary.calls != 1 {
		t.Errorf("primary calls = %d, want 1 (memoized)", primary.calls)
	}
}

func TestCached_FallsBackOnError(t *testing.T) {
	primary := &countingHelper{err: errors.New("provider unavailable")}
	c := NewCached(primary, NewOffline(), 100, time.Second)
	got, err := c.InterventionPurpose(context.Background(), "high fowler position")
	if err != nil {
		t.Fatalf("InterventionPurpose: %v", err)
	}
	if got != PurposeBreathing {
		t.Errorf("got %q, want offline fallback %q", got, PurposeBreathing)
	}
}

func TestCached_NoFallbackYieldsEmpty(t *testing.T) {
	primary := &countingHelper{err: errors.New("boom")}
	c := NewCached(primary, nil, 100, time.Second)
	got, err := c.InterventionPurpose(context.Background(), "anything")
	if err != nil {
		t.Fatalf("InterventionPurpose: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty label", got)
	}
}

func TestCached_EmptyTerm(t *testing.T) {
	primary := &countingHelper{label: PurposeSafety}
	c := NewCached(primary, nil, 100, time.Second)
	got, _ := c.InterventionPurpose(context.Background(), "   ")
	if got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if primary.calls != 0 {
		t.Errorf("primary calls = %d, want 0", primary.calls)
	}
}
