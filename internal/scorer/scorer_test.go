package scorer

import (
	"testing"

	"github.com/abhisek/stackfour/internal/clinical"
	"github.com/abhisek/stackfour/internal/kb"
)

func newEvaluator(t *testing.T) (*Evaluator, *clinical.Extractor) {
	t.Helper()
	base := kb.New()
	return New(base, nil), clinical.NewExtractor(base)
}

func TestEvaluateOption_CriticalVital(t *testing.T) {
	e, _ := newEvaluator(t)
	ev := e.EvaluateOption("Oxygen saturation of 85%", nil)
	if !ev.IsCritical {
		t.Fatalf("sat 85 should be critical, got %+v", ev)
	}
	if ev.Score < ScoreCritical {
		t.Errorf("score = %d, want >= %d", ev.Score, ScoreCritical)
	}
}

func TestEvaluateOption_MedicationHold(t *testing.T) {
	e, x := newEvaluator(t)
	ctx := x.Extract("A client taking metoprolol is due for the morning dose.")
	ev := e.EvaluateOption("Heart rate of 52 beats per minute", ctx)
	if !ev.IsCritical {
		t.Fatalf("HR 52 under a beta blocker should be critical, got %+v", ev)
	}
	if ev.Score != ScoreCritical {
		t.Errorf("score = %d, want %d", ev.Score, ScoreCritical)
	}
	if !fired(ev, "med_hold") {
		t.Errorf("rules fired = %v, want med_hold", ev.RulesFired)
	}
}

func TestEvaluateOption_TargetedInterventionOutranksCritical(t *testing.T) {
	e, x := newEvaluator(t)
	ctx := x.Extract("A client's blood glucose is 52 mg/dL.")
	intervention := e.EvaluateOption("Give 4 oz of orange juice", ctx)
	finding := e.EvaluateOption("Heart rate of 140 beats per minute", ctx)
	if !intervention.AddressesEmergency {
		t.Fatalf("carb option should address the emergency, got %+v", intervention)
	}
	if intervention.Score <= finding.Score {
		t.Errorf("intervention %d should outrank alarming finding %d", intervention.Score, finding.Score)
	}
}

func TestEvaluateOption_HypoglycemiaCarbOverride(t *testing.T) {
	e, x := newEvaluator(t)
	ctx := x.Extract("Blood glucose of 60 mg/dL is reported.")
	ev := e.EvaluateOption("Offer 15 grams of simple carbohydrates", ctx)
	if ev.Score != ScoreIntervention {
		t.Errorf("score = %d, want %d", ev.Score, ScoreIntervention)
	}
}

func TestEvaluateOption_AssessmentBaseline(t *testing.T) {
	e, _ := newEvaluator(t)
	ev := e.EvaluateOption("Monitor the client's intake and output", nil)
	if !ev.IsAssessment {
		t.Error("monitor should read as assessment")
	}
	if ev.Score != ScoreAssessment {
		t.Errorf("score = %d, want %d", ev.Score, ScoreAssessment)
	}
}

func TestEvaluateOption_NormalVitalDeprioritized(t *testing.T) {
	e, _ := newEvaluator(t)
	normal := e.EvaluateOption("Respiratory rate of 18 breaths per minute", nil)
	abnormal := e.EvaluateOption("Respiratory rate of 32 breaths per minute", nil)
	if normal.Score >= abnormal.Score {
		t.Errorf("normal RR scored %d, abnormal RR scored %d, want normal lower", normal.Score, abnormal.Score)
	}
	if normal.Score < 0 {
		t.Errorf("score = %d, must not go below zero", normal.Score)
	}
}

func TestEvaluateOption_ContraindicationOverridesAll(t *testing.T) {
	e, x := newEvaluator(t)
	ctx := x.Extract("A client with COPD reports increasing dyspnea. Which action should the nurse take first?")
	bad := e.EvaluateOption("Apply high flow oxygen at 15 L/min", ctx)
	if !bad.IsContraindicated {
		t.Fatalf("high-flow oxygen with COPD should be contraindicated, got %+v", bad)
	}
	if bad.Score != ScoreContraindicated {
		t.Errorf("score = %d, want %d", bad.Score, ScoreContraindicated)
	}
	for _, text := range []string{
		"Raise the head of the bed",
		"Assess the client's lung sounds",
		"Administer oxygen at 2 L/min per nasal cannula",
	} {
		if ok := e.EvaluateOption(text, ctx); ok.Score <= bad.Score {
			t.Errorf("option %q scored %d, must beat contraindicated %d", text, ok.Score, bad.Score)
		}
	}
}

func TestEvaluateOption_Idempotent(t *testing.T) {
	e, x := newEvaluator(t)
	ctx := x.Extract("A client with heart failure takes furosemide.")
	first := e.EvaluateOption("Check the morning potassium level", ctx)
	second := e.EvaluateOption("Check the morning potassium level", ctx)
	if first.Score != second.Score {
		t.Errorf("scores differ across calls: %d then %d", first.Score, second.Score)
	}
	if len(first.Reasoning) != len(second.Reasoning) {
		t.Errorf("reasoning differs across calls: %v then %v", first.Reasoning, second.Reasoning)
	}
}

func TestEvaluateOption_StackLadderOrder(t *testing.T) {
	e, _ := newEvaluator(t)
	airway := e.EvaluateOption("Suction the client's airway", nil)
	safety := e.EvaluateOption("Place the bed in its lowest position with the call bell in reach", nil)
	pain := e.EvaluateOption("Offer the prescribed analgesic", nil)
	if !(airway.Score > safety.Score && safety.Score > pain.Score) {
		t.Errorf("stack order violated: airway %d, safety %d, pain %d",
			airway.Score, safety.Score, pain.Score)
	}
}

func TestEvaluateOption_SubtleFixedScore(t *testing.T) {
	e, _ := newEvaluator(t)
	ev := e.EvaluateOption("The client reports swelling of the tongue", nil)
	if ev.Score < 1200 {
		t.Errorf("anaphylaxis cue scored %d, want >= 1200", ev.Score)
	}
}

func TestEvaluateOption_SubtleNumericEvaluator(t *testing.T) {
	e, _ := newEvaluator(t)
	high := e.EvaluateOption("Heart rate of 130 noted on telemetry", nil)
	ok := e.EvaluateOption("Heart rate of 88 noted on telemetry", nil)
	if high.Score < 1000 {
		t.Errorf("HR 130 scored %d, want >= 1000", high.Score)
	}
	if ok.Score >= 1000 {
		t.Errorf("HR 88 scored %d, want < 1000", ok.Score)
	}
}

func TestEvaluateOption_StemRelationshipBoost(t *testing.T) {
	e, x := newEvaluator(t)
	ctx := x.Extract("A client with pneumonia is prescribed an antibiotic.")
	related := e.EvaluateOption("Review the pneumonia care plan with the client", ctx)
	unrelated := e.EvaluateOption("Review the discharge paperwork with the client", ctx)
	if related.Score <= unrelated.Score {
		t.Errorf("condition-related option scored %d, unrelated %d, want related higher",
			related.Score, unrelated.Score)
	}
}

type halfWeights struct{}

func (halfWeights) Weight(string) float64 { return 0.5 }

func TestEvaluateOption_WeightsScaleSentinels(t *testing.T) {
	base := kb.New()
	full := New(base, nil)
	half := New(base, halfWeights{})
	text := "Oxygen saturation of 85%"
	f := full.EvaluateOption(text, nil)
	h := half.EvaluateOption(text, nil)
	if h.Score >= f.Score {
		t.Errorf("half-weighted score %d should be below unweighted %d", h.Score, f.Score)
	}
	if h.IsCritical != f.IsCritical {
		t.Error("weighting must not change the critical flag")
	}
}

func fired(ev Evaluation, rule string) bool {
	for _, r := range ev.RulesFired {
		if r == rule {
			return true
		}
	}
	return false
}
