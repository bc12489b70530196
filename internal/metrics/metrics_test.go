package metrics

import (
	"math"
	"testing"

	"github.com/abhisek/stackfour/internal/question"
)

func almost(t *testing.T, got, want, eps float64, label string) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}

func mkQ(id string, format question.Format, correct ...string) *question.Question {
	return &question.Question{
		ID:      id,
		Stem:    "stem",
		Options: map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
		Correct: question.NewAnswerSet(correct...),
		Format:  format,
	}
}

func TestWilsonInterval(t *testing.T) {
	lo, hi := wilsonInterval(85, 100)
	almost(t, lo, 0.7672, 0.001, "lower")
	almost(t, hi, 0.9069, 0.001, "upper")
	if lo >= 0.85 || hi <= 0.85 {
		t.Errorf("interval [%v, %v] does not bracket the point estimate", lo, hi)
	}
}

func TestWilsonIntervalBounds(t *testing.T) {
	lo, hi := wilsonInterval(10, 10)
	if hi != 1 {
		t.Errorf("perfect score upper bound = %v, want 1", hi)
	}
	if lo <= 0.6 || lo >= 1 {
		t.Errorf("perfect score lower bound = %v, want in (0.6, 1)", lo)
	}

	lo, hi = wilsonInterval(0, 10)
	if lo != 0 {
		t.Errorf("zero score lower bound = %v, want 0", lo)
	}
	if hi <= 0 || hi >= 0.4 {
		t.Errorf("zero score upper bound = %v, want in (0, 0.4)", hi)
	}

	lo, hi = wilsonInterval(0, 0)
	if lo != 0 || hi != 0 {
		t.Errorf("empty sample interval = [%v, %v], want [0, 0]", lo, hi)
	}
}

func TestKendallTau(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want float64
	}{
		{"identical", []string{"A", "B", "C", "D"}, []string{"A", "B", "C", "D"}, 1},
		{"reversed", []string{"A", "B", "C", "D"}, []string{"D", "C", "B", "A"}, -1},
		{"one adjacent swap", []string{"A", "B", "C", "D"}, []string{"A", "B", "D", "C"}, 4.0 / 6.0},
		{"too short", []string{"A"}, []string{"A"}, 0},
		{"length mismatch", []string{"A", "B"}, []string{"A", "B", "C"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			almost(t, kendallTau(tt.a, tt.b), tt.want, 1e-9, "tau")
		})
	}
}

func TestEvaluateSingle(t *testing.T) {
	qs := []*question.Question{
		mkQ("1", question.FormatSingle, "A"),
		mkQ("2", question.FormatSingle, "B"),
		mkQ("3", question.FormatSingle, "C"),
		mkQ("4", question.FormatSingle, "D"),
	}
	preds := []question.AnswerSet{
		question.NewAnswerSet("A"),
		question.NewAnswerSet("B"),
		question.NewAnswerSet("B"),
		question.NewAnswerSet("D"),
	}

	s := Evaluate(qs, preds)
	if s.Single == nil {
		t.Fatal("no single-format section")
	}
	if s.Single.Correct != 3 || s.Single.Total != 4 {
		t.Errorf("correct/total = %d/%d, want 3/4", s.Single.Correct, s.Single.Total)
	}
	almost(t, s.Single.Accuracy, 0.75, 1e-9, "accuracy")
	if s.Single.CILower <= 0 || s.Single.CIUpper >= 1 {
		t.Errorf("interval [%v, %v] should be strictly inside (0, 1)", s.Single.CILower, s.Single.CIUpper)
	}
	if s.SATA != nil || s.Ordered != nil {
		t.Error("unexpected sections for absent formats")
	}
}

func TestEvaluateSATAMicroAverages(t *testing.T) {
	qs := []*question.Question{
		mkQ("1", question.FormatSATA, "A", "C"),
		mkQ("2", question.FormatSATA, "A", "B", "D"),
	}
	preds := []question.AnswerSet{
		question.NewAnswerSet("A", "B"), // tp=1 fp=1 fn=1
		question.NewAnswerSet("A", "B", "D"),
	}

	s := Evaluate(qs, preds)
	if s.SATA == nil {
		t.Fatal("no sata section")
	}
	if s.SATA.Correct != 1 {
		t.Errorf("exact matches = %d, want 1", s.SATA.Correct)
	}
	almost(t, s.SATA.ExactMatchAccuracy, 0.5, 1e-9, "exact match")
	// tp=4 fp=1 fn=1 across the batch.
	almost(t, s.SATA.Precision, 0.8, 1e-9, "precision")
	almost(t, s.SATA.Recall, 0.8, 1e-9, "recall")
	almost(t, s.SATA.F1, 0.8, 1e-9, "f1")
}

func TestEvaluateOrdered(t *testing.T) {
	qs := []*question.Question{
		mkQ("1", question.FormatOrdered, "A,B,C,D"),
		mkQ("2", question.FormatOrdered, "A,B,C,D"),
	}
	preds := []question.AnswerSet{
		question.NewAnswerSet("A,B,C,D"),
		question.NewAnswerSet("A,B,D,C"),
	}

	s := Evaluate(qs, preds)
	if s.Ordered == nil {
		t.Fatal("no ordered section")
	}
	if s.Ordered.Correct != 1 || s.Ordered.Total != 2 {
		t.Errorf("perfect/total = %d/%d, want 1/2", s.Ordered.Correct, s.Ordered.Total)
	}
	almost(t, s.Ordered.PerfectSequenceAccuracy, 0.5, 1e-9, "perfect rate")
	// Mean of tau=1 and tau=4/6.
	almost(t, s.Ordered.AvgKendallTau, (1+4.0/6.0)/2, 1e-9, "avg tau")
}

func TestEvaluateOverallSpansFormats(t *testing.T) {
	qs := []*question.Question{
		mkQ("1", question.FormatSingle, "A"),
		mkQ("2", question.FormatSATA, "A", "B"),
		mkQ("3", question.FormatOrdered, "B,A,C,D"),
	}
	preds := []question.AnswerSet{
		question.NewAnswerSet("A"),
		question.NewAnswerSet("A", "B"),
		question.NewAnswerSet("A,B,C,D"),
	}

	s := Evaluate(qs, preds)
	if s.Overall.Correct != 2 || s.Overall.Total != 3 {
		t.Errorf("overall = %d/%d, want 2/3", s.Overall.Correct, s.Overall.Total)
	}
	almost(t, s.Overall.Accuracy, 2.0/3.0, 1e-9, "overall accuracy")
}

func TestEvaluateEmpty(t *testing.T) {
	s := Evaluate(nil, nil)
	if s.Overall.Total != 0 || s.Single != nil || s.SATA != nil || s.Ordered != nil {
		t.Errorf("empty batch produced sections: %+v", s)
	}
}

func TestDatasetHash(t *testing.T) {
	a := DatasetHash([]string{"q1", "q2", "q3"})
	b := DatasetHash([]string{"q3", "q1", "q2"})
	if a != b {
		t.Errorf("hash depends on input order: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("hash length = %d, want 16", len(a))
	}
	if c := DatasetHash([]string{"q1", "q2"}); c == a {
		t.Error("different corpora hashed identically")
	}
}

func TestSplitIDs(t *testing.T) {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}

	train, test := SplitIDs(ids, 0.2, 42)
	if len(train) != 8 || len(test) != 2 {
		t.Fatalf("split sizes = %d/%d, want 8/2", len(train), len(test))
	}

	seen := make(map[string]bool)
	for _, id := range append(append([]string(nil), train...), test...) {
		if seen[id] {
			t.Errorf("id %q appears twice", id)
		}
		seen[id] = true
	}
	if len(seen) != len(ids) {
		t.Errorf("split covers %d ids, want %d", len(seen), len(ids))
	}

	train2, test2 := SplitIDs(ids, 0.2, 42)
	if !equalSeq(train, train2) || !equalSeq(test, test2) {
		t.Error("same seed produced a different split")
	}
}

func TestNewRun(t *testing.T) {
	s := Evaluate(
		[]*question.Question{mkQ("1", question.FormatSingle, "A")},
		[]question.AnswerSet{question.NewAnswerSet("A")},
	)
	run := NewRun(s, "v2", "abc123", map[string]string{"test_ratio": "0.2"})
	if run.ID == "" {
		t.Error("run has no id")
	}
	if run.AlgorithmVersion != "v2" || run.DatasetHash != "abc123" {
		t.Errorf("metadata not carried: %+v", run)
	}
	if run.StartedAt.IsZero() {
		t.Error("run has no timestamp")
	}
}
