package clinical

import (
	"testing"

	"github.com/abhisek/stackfour/internal/kb"
	"github.com/abhisek/stackfour/internal/vitals"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(kb.New())
}

func TestExtract_MedicationsAndConditions(t *testing.T) {
	e := newExtractor(t)
	ctx := e.Extract("A client with heart failure takes metoprolol and furosemide daily.")
	if !contains(ctx.Medications, "beta_blocker") || !contains(ctx.Medications, "diuretic") {
		t.Errorf("medications = %v, want beta_blocker and diuretic", ctx.Medications)
	}
	if !ctx.HasCondition("heart failure") {
		t.Errorf("conditions = %v, want heart failure", ctx.Conditions)
	}
}

func TestExtract_VitalsAndPattern(t *testing.T) {
	e := newExtractor(t)
	ctx := e.Extract("A client with diabetes is shaky and sweaty with a blood glucose of 52 mg/dL.")
	if got := ctx.Vitals[vitals.BloodGlucose]; got != 52 {
		t.Fatalf("glucose = %v, want 52", got)
	}
	if len(ctx.Patterns) == 0 || ctx.Patterns[0].Name != "hypoglycemia" {
		t.Errorf("patterns = %v, want hypoglycemia first", ctx.Patterns)
	}
	if !ctx.Emergency {
		t.Error("life-threat pattern should mark the context as an emergency")
	}
}

func TestExtract_PriorityWordingIsNotEmergency(t *testing.T) {
	e := newExtractor(t)
	ctx := e.Extract("Which client should the nurse assess first?")
	if !ctx.PriorityWording {
		t.Error("stem asks for first action, want PriorityWording set")
	}
	if ctx.Emergency {
		t.Error("priority wording alone should not mark an emergency")
	}
}

func TestExtract_EmergencySignatures(t *testing.T) {
	e := newExtractor(t)
	for _, stem := range []string{
		"The nurse finds a client unresponsive in bed.",
		"A client is choking on a piece of food.",
		"A client develops anaphylaxis after an IV antibiotic.",
	} {
		if !e.Extract(stem).Emergency {
			t.Errorf("stem %q should read as an emergency", stem)
		}
	}
}

func TestExtract_Timeframe(t *testing.T) {
	e := newExtractor(t)
	tests := []struct {
		stem string
		want string
	}{
		{"A client reports sudden severe headache.", "acute"},
		{"A client with chronic back pain requests medication.", "chronic"},
		{"A client with a history of hypertension is admitted.", "chronic"},
		{"The nurse reviews the medication list.", ""},
	}
	for _, tt := range tests {
		if got := e.Extract(tt.stem).Timeframe; got != tt.want {
			t.Errorf("Timeframe(%q) = %q, want %q", tt.stem, got, tt.want)
		}
	}
}

func TestExtract_AgeGroup(t *testing.T) {
	e := newExtractor(t)
	tests := []struct {
		stem string
		want string
	}{
		{"A 4-month-old infant is admitted with fever.", "infant"},
		{"A 7-year-old child has a heart rate of 110.", "pediatric"},
		{"A 45-year-old client is admitted.", ""},
	}
	for _, tt := range tests {
		if got := e.Extract(tt.stem).AgeGroup; got != tt.want {
			t.Errorf("AgeGroup(%q) = %q, want %q", tt.stem, got, tt.want)
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
