package report

import (
	"strings"
	"testing"

	"github.com/abhisek/stackfour/internal/exceptions"
	"github.com/abhisek/stackfour/internal/metrics"
	"github.com/abhisek/stackfour/internal/question"
	"github.com/abhisek/stackfour/internal/solver"
)

func sampleRun(t *testing.T) metrics.Run {
	t.Helper()
	qs := []*question.Question{
		{ID: "1", Options: map[string]string{"A": "a", "B": "b"}, Correct: question.NewAnswerSet("A"), Format: question.FormatSingle},
		{ID: "2", Options: map[string]string{"A": "a", "B": "b"}, Correct: question.NewAnswerSet("A", "B"), Format: question.FormatSATA},
		{ID: "3", Options: map[string]string{"A": "a", "B": "b"}, Correct: question.NewAnswerSet("A,B"), Format: question.FormatOrdered},
	}
	preds := []question.AnswerSet{
		question.NewAnswerSet("A"),
		question.NewAnswerSet("A"),
		question.NewAnswerSet("A,B"),
	}
	return metrics.NewRun(metrics.Evaluate(qs, preds), "v2", "deadbeefdeadbeef", nil)
}

func TestWriteRun(t *testing.T) {
	var buf strings.Builder
	run := sampleRun(t)
	WriteRun(&buf, run)
	out := buf.String()

	for _, want := range []string{run.ID, "deadbeefdeadbeef", "single", "sata", "ordered", "Kendall tau", "95% CI"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteRunEmpty(t *testing.T) {
	var buf strings.Builder
	WriteRun(&buf, metrics.NewRun(metrics.Summary{}, "v2", "", nil))
	if !strings.Contains(buf.String(), "No questions graded") {
		t.Errorf("empty run report = %q", buf.String())
	}
}

func TestWritePrediction(t *testing.T) {
	var buf strings.Builder
	WritePrediction(&buf, &solver.Prediction{
		Answers:   question.NewAnswerSet("B"),
		Exception: &exceptions.Detection{Category: exceptions.CategoryExclusion, Confidence: 0.95},
		Reasoning: []string{"scored 4 options", "exclusion wording detected"},
	})
	out := buf.String()

	for _, want := range []string{"B", string(exceptions.CategoryExclusion), "0.95", "exclusion wording detected"} {
		if !strings.Contains(out, want) {
			t.Errorf("prediction output missing %q", want)
		}
	}
}

func TestReferenceCard(t *testing.T) {
	var buf strings.Builder
	WriteReferenceCard(&buf)
	out := buf.String()

	for _, want := range []string{"LIFE THREATS", "SAFETY", "ADPIE", "15g carbs"} {
		if !strings.Contains(out, want) {
			t.Errorf("reference card missing %q", want)
		}
	}
	if ReferenceCardText() == "" {
		t.Error("plain card is empty")
	}
}
