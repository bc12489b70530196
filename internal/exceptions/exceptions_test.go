package exceptions

import (
	"testing"

	"github.com/abhisek/stackfour/internal/question"
)

func q(stem string, options map[string]string) *question.Question {
	return &question.Question{ID: "q1", Stem: stem, Options: options, Format: question.FormatSingle}
}

func TestDetect_Exclusion(t *testing.T) {
	det := NewHandler().Detect(q("All of the following are appropriate except:", map[string]string{
		"A": "Assess the client", "B": "Restrain the client",
	}))
	if len(det) == 0 || det[0].Category != CategoryExclusion {
		t.Fatalf("detections = %v, want exclusion", det)
	}
	if det[0].Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", det[0].Confidence)
	}
}

func TestDetect_TimeSequenceNeedsCompletedAction(t *testing.T) {
	h := NewHandler()
	with := h.Detect(q("After establishing the airway, which action should the nurse take?", nil))
	found := false
	for _, d := range with {
		if d.Category == CategoryTimeSequence {
			found = true
		}
	}
	if !found {
		t.Errorf("detections = %v, want time_sequence", with)
	}

	// A bare "next" with no completed action is not a time-sequence case.
	without := h.Detect(q("Which action should the nurse take next?", nil))
	for _, d := range without {
		if d.Category == CategoryTimeSequence {
			t.Errorf("detections = %v, time_sequence should need a completed action", without)
		}
	}
}

func TestDetect_ChronicVsNew(t *testing.T) {
	det := NewHandler().Detect(q(
		"A client with chronic stable angina reports sudden crushing chest pain.", nil))
	found := false
	for _, d := range det {
		if d.Category == CategoryChronicVsNew {
			found = true
			if d.Confidence != 0.85 {
				t.Errorf("confidence = %v, want 0.85", d.Confidence)
			}
		}
	}
	if !found {
		t.Errorf("detections = %v, want chronic_vs_new", det)
	}
}

func TestDetect_RedFlagOnlyWhenAlone(t *testing.T) {
	h := NewHandler()
	alone := h.Detect(q("The client's chronic condition is stable at baseline normal.", nil))
	if len(alone) != 1 || alone[0].Category != CategoryRedFlag {
		t.Fatalf("detections = %v, want red_flag only", alone)
	}

	crowded := h.Detect(q("All chronic findings are stable at baseline normal except which sudden change?", nil))
	for _, d := range crowded {
		if d.Category == CategoryRedFlag {
			t.Errorf("detections = %v, red_flag must not fire beside other categories", crowded)
		}
	}
}

func TestApply_ExclusionPicksHarm(t *testing.T) {
	h := NewHandler()
	qq := q("Which action should the nurse avoid?", map[string]string{
		"A": "Assess the client's vital signs",
		"B": "Restrain the client to the bed",
		"C": "Document the findings",
		"D": "Notify the provider",
	})
	base := question.NewAnswerSet("A")
	got, applied := h.Apply(qq, base, h.Detect(qq))
	if applied == nil || applied.Category != CategoryExclusion {
		t.Fatalf("applied = %v, want exclusion", applied)
	}
	if !got.Equal(question.NewAnswerSet("B")) {
		t.Errorf("got %v, want {B}", got.Sorted())
	}
}

func TestApply_ExclusionFallbackOutsideBase(t *testing.T) {
	h := NewHandler()
	qq := q("Which action is not appropriate?", map[string]string{
		"A": "Assess the client", "B": "Reposition the client",
	})
	base := question.NewAnswerSet("A")
	got, _ := h.Apply(qq, base, h.Detect(qq))
	if !got.Equal(question.NewAnswerSet("B")) {
		t.Errorf("got %v, want the first option outside the base prediction", got.Sorted())
	}
}

func TestApply_ChronicVsNewThreshold(t *testing.T) {
	h := NewHandler()
	qq := q("A client with long-standing diabetes has developed confusion.", map[string]string{
		"A": "Continue the usual insulin schedule",
		"B": "Assess the sudden change in mental status",
		"C": "Document the baseline findings",
	})
	base := question.NewAnswerSet("A")
	got, applied := h.Apply(qq, base, h.Detect(qq))
	if applied == nil || applied.Category != CategoryChronicVsNew {
		t.Fatalf("applied = %v, want chronic_vs_new", applied)
	}
	// B carries acute language and an assessment verb: 10 + 5 beats the
	// threshold of 5.
	if !got.Equal(question.NewAnswerSet("B")) {
		t.Errorf("got %v, want {B}", got.Sorted())
	}
}

func TestApply_PsychContextFirstMatch(t *testing.T) {
	h := NewHandler()
	qq := q("On the psychiatric unit, which action should the nurse take?", map[string]string{
		"A": "Check the medication record",
		"B": "Initiate one-to-one observation",
		"C": "Obtain a full set of vital signs",
	})
	base := question.NewAnswerSet("C")
	got, applied := h.Apply(qq, base, h.Detect(qq))
	if applied == nil || applied.Category != CategoryContextSpecific {
		t.Fatalf("applied = %v, want context_specific", applied)
	}
	if !got.Equal(question.NewAnswerSet("B")) {
		t.Errorf("got %v, want {B}", got.Sorted())
	}
}

func TestApply_LegalContext(t *testing.T) {
	h := NewHandler()
	qq := q("A competent client will not give consent for the scheduled transfusion.", map[string]string{
		"A": "Proceed with the transfusion",
		"B": "Respect the client's decision and document the refusal",
	})
	base := question.NewAnswerSet("A")
	got, _ := h.Apply(qq, base, h.Detect(qq))
	if !got.Equal(question.NewAnswerSet("B")) {
		t.Errorf("got %v, want {B}", got.Sorted())
	}
}

func TestApply_TimeSequenceIsDetectionOnly(t *testing.T) {
	h := NewHandler()
	qq := q("After establishing the airway, which action should the nurse take?", map[string]string{
		"A": "Check breathing", "B": "Start compressions",
	})
	base := question.NewAnswerSet("A")
	got, applied := h.Apply(qq, base, h.Detect(qq))
	if applied == nil || applied.Category != CategoryTimeSequence {
		t.Fatalf("applied = %v, want time_sequence", applied)
	}
	if !got.Equal(base) {
		t.Errorf("got %v, time_sequence must leave the base prediction unchanged", got.Sorted())
	}
}

func TestApply_HigherConfidenceWins(t *testing.T) {
	h := NewHandler()
	// Stem carries both a completed action (0.9) and an EXCEPT framing
	// (0.95); exclusion must win.
	qq := q("After establishing the airway, which action should the nurse avoid?", map[string]string{
		"A": "Check breathing", "B": "Delay suctioning until the provider arrives",
	})
	got, applied := h.Apply(qq, question.NewAnswerSet("A"), h.Detect(qq))
	if applied == nil || applied.Category != CategoryExclusion {
		t.Fatalf("applied = %v, want exclusion", applied)
	}
	if !got.Equal(question.NewAnswerSet("B")) {
		t.Errorf("got %v, want {B}", got.Sorted())
	}
}

func TestApply_NoDetections(t *testing.T) {
	h := NewHandler()
	qq := q("Which finding should the nurse report?", map[string]string{"A": "x", "B": "y"})
	base := question.NewAnswerSet("A")
	got, applied := h.Apply(qq, base, nil)
	if applied != nil {
		t.Errorf("applied = %v, want nil", applied)
	}
	if !got.Equal(base) {
		t.Errorf("got %v, want base unchanged", got.Sorted())
	}
}
