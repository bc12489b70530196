package learning

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/stackfour/internal/question"
)

type memStore struct {
	outcomes []*Outcome
	stats    *Stats
	loadErr  error
	saveErr  error
}

func (m *memStore) AppendOutcome(_ context.Context, o *Outcome) error {
	m.outcomes = append(m.outcomes, o)
	return nil
}

func (m *memStore) LoadStats(_ context.Context) (*Stats, error) {
	return m.stats, m.loadErr
}

func (m *memStore) SaveStats(_ context.Context, s *Stats) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stats = s
	return nil
}

func record(t *testing.T, r *Recorder, rule string, correct bool) {
	t.Helper()
	predicted := question.NewAnswerSet("A")
	want := question.NewAnswerSet("A")
	if !correct {
		want = question.NewAnswerSet("B")
	}
	err := r.Record(context.Background(), &Outcome{
		QuestionID: "q", Format: question.FormatSingle,
		Predicted: predicted, Correct: want, Rules: []string{rule},
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
}

func TestWeight_DefaultBeforeMinUses(t *testing.T) {
	r := NewRecorder(nil)
	if w := r.Weight("stack:AIRWAY"); w != 1.0 {
		t.Errorf("unseen rule weight = %v, want 1.0", w)
	}
	for i := 0; i < 9; i++ {
		record(t, r, "stack:AIRWAY", false)
	}
	if w := r.Weight("stack:AIRWAY"); w != 1.0 {
		t.Errorf("weight after 9 uses = %v, want 1.0", w)
	}
}

func TestWeight_ScalesAfterMinUses(t *testing.T) {
	r := NewRecorder(nil)
	for i := 0; i < 5; i++ {
		record(t, r, "med_hold", true)
	}
	for i := 0; i < 5; i++ {
		record(t, r, "med_hold", false)
	}
	if w := r.Weight("med_hold"); w != 0.75 {
		t.Errorf("weight at 50%% success over 10 uses = %v, want 0.75", w)
	}
}

func TestWeight_Bounds(t *testing.T) {
	r := NewRecorder(nil)
	for i := 0; i < 10; i++ {
		record(t, r, "allwrong", false)
	}
	if w := r.Weight("allwrong"); w != 0.5 {
		t.Errorf("weight at 0%% success = %v, want 0.5", w)
	}
	for i := 0; i < 10; i++ {
		record(t, r, "allright", true)
	}
	if w := r.Weight("allright"); w != 1.0 {
		t.Errorf("weight at 100%% success = %v, want 1.0", w)
	}
}

func TestRecord_AppendsToStore(t *testing.T) {
	store := &memStore{}
	r := NewRecorder(store)
	record(t, r, "assessment", true)
	if len(store.outcomes) != 1 {
		t.Fatalf("stored outcomes = %d, want 1", len(store.outcomes))
	}
	if !store.outcomes[0].WasCorrect {
		t.Error("outcome should be marked correct")
	}
	if store.outcomes[0].RecordedAt.IsZero() {
		t.Error("RecordedAt should be stamped")
	}
}

func TestLoad_MissingStatsMeansNoPriorLearning(t *testing.T) {
	store := &memStore{loadErr: errors.New("no such table")}
	r := NewRecorder(store)
	r.Load(context.Background())
	if w := r.Weight("anything"); w != 1.0 {
		t.Errorf("weight after failed load = %v, want 1.0", w)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	store := &memStore{}
	r := NewRecorder(store)
	for i := 0; i < 10; i++ {
		record(t, r, "stack:SAFETY", true)
	}
	if err := r.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh := NewRecorder(store)
	fresh.Load(context.Background())
	if w := fresh.Weight("stack:SAFETY"); w != 1.0 {
		t.Errorf("weight after reload = %v, want 1.0", w)
	}
	stats := fresh.PatternStats()
	if stats["stack:SAFETY"].Total != 10 {
		t.Errorf("total after reload = %d, want 10", stats["stack:SAFETY"].Total)
	}
}

func TestLearnFromMistake(t *testing.T) {
	r := NewRecorder(nil)
	q := &question.Question{
		ID:   "q7",
		Stem: "Which action should the nurse take first?",
		Options: map[string]string{
			"A": "Continue monitoring the infusion",
			"B": "Stop the transfusion immediately",
		},
		Correct: question.NewAnswerSet("B"),
		Format:  question.FormatSingle,
	}
	r.LearnFromMistake(q, question.NewAnswerSet("A"))

	// "transfusion" ends in -ion and sits in the missed correct option.
	if kws := r.SuccessfulKeywords(1); !containsString(kws, "transfusion") {
		t.Errorf("successful keywords = %v, want transfusion included", kws)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
