package solver

import (
	"context"
	"testing"

	"github.com/abhisek/stackfour/internal/kb"
	"github.com/abhisek/stackfour/internal/knowledge"
	"github.com/abhisek/stackfour/internal/learning"
	"github.com/abhisek/stackfour/internal/question"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	return New(kb.New(), nil, nil)
}

func single(stem string, options map[string]string) *question.Question {
	return &question.Question{ID: "t", Stem: stem, Options: options, Format: question.FormatSingle}
}

func TestPredict_EmptyOptions(t *testing.T) {
	e := newEngine(t)
	pred := e.Predict(context.Background(), single("Anything", nil))
	if len(pred.Answers) != 0 {
		t.Errorf("got %v, want empty set", pred.Answers.Sorted())
	}
}

func TestPredict_SingleReturnsExactlyOneKnownKey(t *testing.T) {
	e := newEngine(t)
	q := single("Which client should the nurse see first?", map[string]string{
		"A": "A client reading a magazine",
		"B": "A client with new onset confusion",
		"C": "A client requesting a snack",
		"D": "A client due for a dressing change",
	})
	pred := e.Predict(context.Background(), q)
	if len(pred.Answers) != 1 {
		t.Fatalf("got %v, want exactly one answer", pred.Answers.Sorted())
	}
	key := pred.Answers.Sorted()[0]
	if _, ok := q.Options[key]; !ok {
		t.Errorf("answer %q is not an option key", key)
	}
}

// Scenario: a finding that violates a medication hold parameter must be
// reported over normal findings.
func TestPredict_BetaBlockerBradycardia(t *testing.T) {
	e := newEngine(t)
	q := single(
		"A client with rapid, irregular heartbeats is prescribed a beta-blocker. Which finding should the nurse report immediately?",
		map[string]string{
			"A": "Heart rate of 52 beats per minute",
			"B": "Respiratory rate of 18 breaths per minute",
			"C": "Blood pressure of 130/80 mm Hg",
			"D": "Reports of mild fatigue",
		})
	pred := e.Predict(context.Background(), q)
	if !pred.Answers.Equal(question.NewAnswerSet("A")) {
		t.Errorf("got %v, want {A}; scores: %v", pred.Answers.Sorted(), scoreSummary(pred))
	}
}

// Scenario: symptomatic hypoglycemia takes the intervention, not the
// assessment.
func TestPredict_HypoglycemiaInterventionBeatsAssessment(t *testing.T) {
	e := newEngine(t)
	q := single(
		"A client with diabetes reports feeling shaky and sweaty. What should the nurse do first?",
		map[string]string{
			"A": "Check blood glucose level",
			"B": "Give 15 grams of simple carbohydrates",
			"C": "Call the physician",
			"D": "Document the symptoms",
		})
	pred := e.Predict(context.Background(), q)
	if !pred.Answers.Equal(question.NewAnswerSet("B")) {
		t.Errorf("got %v, want {B}; scores: %v", pred.Answers.Sorted(), scoreSummary(pred))
	}
}

// Scenario: a SATA asking for the signs of one condition excludes signs of
// the opposite condition even though both are abnormal.
func TestPredict_SATAHypoglycemiaSigns(t *testing.T) {
	e := newEngine(t)
	q := &question.Question{
		ID:   "sata1",
		Stem: "Which signs of hypoglycemia should the nurse expect? Select all that apply.",
		Options: map[string]string{
			"A": "Shakiness",
			"B": "Confusion",
			"C": "Polyuria",
			"D": "Diaphoresis",
			"E": "Fruity breath odor",
		},
		Format: question.FormatSATA,
	}
	pred := e.Predict(context.Background(), q)
	if !pred.Answers.Equal(question.NewAnswerSet("A", "B", "D")) {
		t.Errorf("got %v, want {A B D}", pred.Answers.Sorted())
	}
}

// Scenario: an EXCEPT question returns the harmful option.
func TestPredict_ExclusionPicksHarmfulOption(t *testing.T) {
	e := newEngine(t)
	q := single(
		"Which action should the nurse avoid when caring for a confused client?",
		map[string]string{
			"A": "Reorient the client frequently",
			"B": "Keep the bed in the lowest position",
			"C": "Restrain the client to prevent wandering",
			"D": "Provide a consistent caregiver",
		})
	pred := e.Predict(context.Background(), q)
	if !pred.Answers.Equal(question.NewAnswerSet("C")) {
		t.Errorf("got %v, want {C}", pred.Answers.Sorted())
	}
	if pred.Exception == nil {
		t.Fatal("want an applied exclusion exception")
	}
}

func TestPredict_SATAFloor(t *testing.T) {
	e := newEngine(t)
	q := &question.Question{
		ID:   "sata2",
		Stem: "Which interventions are appropriate? Select all that apply.",
		Options: map[string]string{
			"A": "This option matches nothing",
			"B": "Neither does this one",
			"C": "Nor this",
		},
		Format: question.FormatSATA,
	}
	pred := e.Predict(context.Background(), q)
	if len(pred.Answers) < 2 {
		t.Errorf("got %v, want at least 2 selections", pred.Answers.Sorted())
	}
	for _, key := range pred.Answers.Sorted() {
		if _, ok := q.Options[key]; !ok {
			t.Errorf("selected %q is not an option key", key)
		}
	}
}

func TestPredict_SATATeachingStem(t *testing.T) {
	e := newEngine(t)
	q := &question.Question{
		ID:   "sata3",
		Stem: "Which statements indicate the heart failure teaching was effective? Select all that apply.",
		Options: map[string]string{
			"A": "I will weigh myself every morning",
			"B": "I will skip my diuretic on golf days",
			"C": "I should report a weight gain of 3 pounds in two days",
		},
		Format: question.FormatSATA,
	}
	pred := e.Predict(context.Background(), q)
	if !pred.Answers.Equal(question.NewAnswerSet("A", "C")) {
		t.Errorf("got %v, want {A C}", pred.Answers.Sorted())
	}
}

func TestPredict_OrderedReturnsOnePermutation(t *testing.T) {
	e := newEngine(t)
	q := &question.Question{
		ID:   "ord1",
		Stem: "Place the actions in priority order.",
		Options: map[string]string{
			"A": "Document the episode",
			"B": "Suction the client's airway",
			"C": "Apply the call bell within reach",
			"D": "Check the client's vital signs",
		},
		Format: question.FormatOrdered,
	}
	pred := e.Predict(context.Background(), q)
	if len(pred.Answers) != 1 {
		t.Fatalf("got %v, want one joined sequence", pred.Answers.Sorted())
	}
	seq := pred.Answers.Sorted()[0]
	if seq[:1] != "B" {
		t.Errorf("sequence %q should start with the airway action", seq)
	}
	if len(seq) != 7 {
		t.Errorf("sequence %q should contain all four keys", seq)
	}
}

func TestPredict_RecordsOutcome(t *testing.T) {
	rec := learning.NewRecorder(nil)
	e := New(kb.New(), rec, nil)
	q := single("Which finding should the nurse report immediately?", map[string]string{
		"A": "Oxygen saturation of 85%",
		"B": "Reports of mild fatigue",
	})
	q.Correct = question.NewAnswerSet("A")
	pred := e.Predict(context.Background(), q)
	if !pred.Answers.Equal(question.NewAnswerSet("A")) {
		t.Fatalf("got %v, want {A}", pred.Answers.Sorted())
	}
	stats := rec.PatternStats()
	if len(stats) == 0 {
		t.Error("recorder should have per-rule counters after a prediction")
	}
	for rule, ps := range stats {
		if ps.Correct != ps.Total {
			t.Errorf("rule %s: correct %d of %d, want all correct", rule, ps.Correct, ps.Total)
		}
	}
}

type stubHelper struct{ calls []string }

func (s *stubHelper) InterventionPurpose(_ context.Context, term string) (string, error) {
	s.calls = append(s.calls, term)
	return knowledge.PurposeBreathing, nil
}

func TestPredict_KnowledgeEnrichmentIsAdditive(t *testing.T) {
	helper := &stubHelper{}
	withHelper := New(kb.New(), nil, helper)
	withoutHelper := New(kb.New(), nil, nil)
	q := single("A client with COPD reports dyspnea. Which action should the nurse take first?", map[string]string{
		"A": "Administer oxygen at 2 L/min",
		"B": "Document the findings",
	})
	a := withHelper.Predict(context.Background(), q)
	b := withoutHelper.Predict(context.Background(), q)
	if !a.Answers.Equal(b.Answers) {
		t.Errorf("helper changed the decision: %v vs %v", a.Answers.Sorted(), b.Answers.Sorted())
	}
	if len(a.Knowledge) == 0 {
		t.Error("helper results should appear in the prediction trail")
	}
	if len(helper.calls) > knowledgeTermLimit {
		t.Errorf("helper called %d times, limit is %d", len(helper.calls), knowledgeTermLimit)
	}
}

func scoreSummary(p *Prediction) map[string]int {
	out := map[string]int{}
	for k, ev := range p.Scores {
		out[k] = ev.Score
	}
	return out
}
