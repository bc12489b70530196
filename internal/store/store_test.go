package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/stackfour/internal/learning"
	"github.com/abhisek/stackfour/internal/metrics"
	"github.com/abhisek/stackfour/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestQuestionSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := &question.Question{
		ID:   "q1",
		Stem: "A client with heart failure reports weight gain. What should the nurse do first?",
		Options: map[string]string{
			"A": "Assess lung sounds",
			"B": "Document the finding",
		},
		Correct:   question.NewAnswerSet("A"),
		Format:    question.FormatSingle,
		Type:      "priority",
		Publisher: "test-bank",
	}
	if err := repo.Save(ctx, q); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "q1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stem != q.Stem {
		t.Errorf("stem = %q, want %q", got.Stem, q.Stem)
	}
	if !got.Correct.Equal(q.Correct) {
		t.Errorf("correct = %v, want %v", got.Correct, q.Correct)
	}
	if got.Options["B"] != "Document the finding" {
		t.Errorf("options not preserved: %v", got.Options)
	}
}

func TestQuestionSaveIsUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := &question.Question{
		ID:      "q1",
		Stem:    "original stem",
		Options: map[string]string{"A": "a", "B": "b"},
		Correct: question.NewAnswerSet("A"),
		Format:  question.FormatSingle,
	}
	if err := repo.Save(ctx, q); err != nil {
		t.Fatalf("save: %v", err)
	}

	q.Stem = "revised stem"
	if err := repo.Save(ctx, q); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err := repo.Get(ctx, "q1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Stem != "revised stem" {
		t.Errorf("stem = %q, want revised", got.Stem)
	}

	ids, err := repo.IDs(ctx)
	if err != nil {
		t.Fatalf("ids: %v", err)
	}
	if len(ids) != 1 {
		t.Errorf("expected 1 id after upsert, got %v", ids)
	}
}

func TestQuestionOrderedCorrectSurvivesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	q := &question.Question{
		ID:      "ord1",
		Stem:    "Place the steps in order.",
		Options: map[string]string{"A": "a", "B": "b", "C": "c", "D": "d"},
		Correct: question.NewAnswerSet("B,C,D,A"),
		Format:  question.FormatOrdered,
	}
	if err := repo.Save(ctx, q); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx, "ord1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Correct) != 1 || !got.Correct.Contains("B,C,D,A") {
		t.Errorf("ordered answer mangled: %v", got.Correct)
	}
}

func TestQuestionListFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuestionRepo()
	ctx := context.Background()

	for _, q := range []*question.Question{
		{ID: "s1", Stem: "s", Options: map[string]string{"A": "a", "B": "b"}, Correct: question.NewAnswerSet("A"), Format: question.FormatSingle, Publisher: "alpha"},
		{ID: "s2", Stem: "s", Options: map[string]string{"A": "a", "B": "b"}, Correct: question.NewAnswerSet("A"), Format: question.FormatSingle, Publisher: "beta"},
		{ID: "m1", Stem: "s", Options: map[string]string{"A": "a", "B": "b"}, Correct: question.NewAnswerSet("A", "B"), Format: question.FormatSATA, Publisher: "alpha"},
	} {
		if err := repo.Save(ctx, q); err != nil {
			t.Fatalf("save %s: %v", q.ID, err)
		}
	}

	singles, err := repo.List(ctx, QuestionFilter{Format: question.FormatSingle})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(singles) != 2 {
		t.Errorf("expected 2 single questions, got %d", len(singles))
	}

	alpha, err := repo.List(ctx, QuestionFilter{Publisher: "alpha"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(alpha) != 2 {
		t.Errorf("expected 2 alpha questions, got %d", len(alpha))
	}

	limited, err := repo.List(ctx, QuestionFilter{Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 question with limit, got %d", len(limited))
	}
}

func TestLearningRepoOutcomes(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearningRepo()
	ctx := context.Background()

	outcomes := []*learning.Outcome{
		{
			QuestionID: "q1",
			Format:     question.FormatSingle,
			Predicted:  question.NewAnswerSet("A"),
			Correct:    question.NewAnswerSet("A"),
			Rules:      []string{"stack:AIRWAY"},
			WasCorrect: true,
			RecordedAt: time.Now(),
		},
		{
			QuestionID: "q2",
			Format:     question.FormatSingle,
			Predicted:  question.NewAnswerSet("B"),
			Correct:    question.NewAnswerSet("C"),
			WasCorrect: false,
			RecordedAt: time.Now(),
		},
	}
	for _, o := range outcomes {
		if err := repo.AppendOutcome(ctx, o); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	correct, total, err := repo.OutcomeCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if correct != 1 || total != 2 {
		t.Errorf("counts = %d/%d, want 1/2", correct, total)
	}
}

func TestLearningRepoStatsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearningRepo()
	ctx := context.Background()

	stats := &learning.Stats{
		Patterns: map[string]learning.PatternStats{
			"stack:AIRWAY": {Correct: 8, Total: 10},
		},
		Keywords: map[string]learning.KeywordStats{
			"suctioning": {Correct: 3, Incorrect: 1},
		},
	}
	if err := repo.SaveStats(ctx, stats); err != nil {
		t.Fatalf("save stats: %v", err)
	}

	// Saving again with updated counts must overwrite, not duplicate.
	stats.Patterns["stack:AIRWAY"] = learning.PatternStats{Correct: 9, Total: 11}
	if err := repo.SaveStats(ctx, stats); err != nil {
		t.Fatalf("re-save stats: %v", err)
	}

	got, err := repo.LoadStats(ctx)
	if err != nil {
		t.Fatalf("load stats: %v", err)
	}
	if p := got.Patterns["stack:AIRWAY"]; p.Correct != 9 || p.Total != 11 {
		t.Errorf("pattern stats = %+v, want 9/11", p)
	}
	if k := got.Keywords["suctioning"]; k.Correct != 3 || k.Incorrect != 1 {
		t.Errorf("keyword stats = %+v", k)
	}
}

func TestRunRepoSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	summary := metrics.Evaluate(
		[]*question.Question{
			{ID: "1", Options: map[string]string{"A": "a", "B": "b"}, Correct: question.NewAnswerSet("A"), Format: question.FormatSingle},
		},
		[]question.AnswerSet{question.NewAnswerSet("A")},
	)
	run := metrics.NewRun(summary, "v2", "cafe0123cafe0123", map[string]string{"seed": "42"})
	if err := repo.SaveRun(ctx, run); err != nil {
		t.Fatalf("save run: %v", err)
	}

	runs, err := repo.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != run.ID || got.DatasetHash != "cafe0123cafe0123" {
		t.Errorf("run metadata = %+v", got)
	}
	if got.Summary.Overall.Total != 1 || got.Summary.Single == nil {
		t.Errorf("summary not preserved: %+v", got.Summary)
	}
	if got.Config["seed"] != "42" {
		t.Errorf("config not preserved: %v", got.Config)
	}
}

func TestEventRepoAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "intervention_purpose", InputTokens: 40, OutputTokens: 12, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "intervention_purpose", InputTokens: 38, OutputTokens: 10, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("expected 1 model row, got %d", len(usage))
	}
	u := usage[0]
	if u.Requests != 2 || u.Failures != 1 {
		t.Errorf("requests/failures = %d/%d, want 2/1", u.Requests, u.Failures)
	}
	if u.InputTokens != 78 || u.OutputTokens != 22 {
		t.Errorf("tokens = %d/%d, want 78/22", u.InputTokens, u.OutputTokens)
	}
}

func TestEventRepoQueryAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:    "mock",
			Model:       "mock",
			Purpose:     "intervention_purpose",
			RequestBody: "[user]\nWhat is the primary clinical purpose of: oxygen?",
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events with limit, got %d", len(events))
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("events not newest first: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody == "" {
		t.Fatalf("get = %+v, want stored event with request body", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown ID, got %+v", missing)
	}
}

func TestEventRepoUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "intervention_purpose", InputTokens: 30, OutputTokens: 8, LatencyMs: 200, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "intervention_purpose", InputTokens: 34, OutputTokens: 10, LatencyMs: 400, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "term_lookup", InputTokens: 20, OutputTokens: 4, LatencyMs: 100, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(stats))
	}
	// Ordered by purpose name.
	first := stats[0]
	if first.Purpose != "intervention_purpose" || first.Calls != 2 {
		t.Errorf("first row = %+v, want intervention_purpose with 2 calls", first)
	}
	if first.InputTokens != 64 || first.OutputTokens != 18 {
		t.Errorf("tokens = %d/%d, want 64/18", first.InputTokens, first.OutputTokens)
	}
	if first.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", first.AvgLatencyMs)
	}
}

func TestLearningRepoReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.LearningRepo()
	ctx := context.Background()

	if err := repo.AppendOutcome(ctx, &learning.Outcome{
		QuestionID: "q1",
		Format:     question.FormatSingle,
		Predicted:  question.NewAnswerSet("A"),
		Correct:    question.NewAnswerSet("B"),
	}); err != nil {
		t.Fatalf("append outcome: %v", err)
	}
	stats := learning.NewStats()
	stats.Patterns["airway"] = learning.PatternStats{Correct: 3, Total: 4}
	if err := repo.SaveStats(ctx, stats); err != nil {
		t.Fatalf("save stats: %v", err)
	}

	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	_, total, err := repo.OutcomeCounts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if total != 0 {
		t.Errorf("outcomes after reset = %d, want 0", total)
	}
	loaded, err := repo.LoadStats(ctx)
	if err != nil {
		t.Fatalf("load stats: %v", err)
	}
	if len(loaded.Patterns) != 0 {
		t.Errorf("patterns after reset = %v, want none", loaded.Patterns)
	}
}

func TestSequenceIsSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "term_lookup", Success: true}); err != nil {
		t.Fatalf("append event: %v", err)
	}
	if err := s.LearningRepo().AppendOutcome(ctx, &learning.Outcome{
		QuestionID: "q1",
		Format:     question.FormatSingle,
		Predicted:  question.NewAnswerSet("A"),
		Correct:    question.NewAnswerSet("A"),
		WasCorrect: true,
	}); err != nil {
		t.Fatalf("append outcome: %v", err)
	}

	seqs := make([]int64, 0, 2)
	for _, table := range []string{"llm_request_events", "prediction_events"} {
		var seq int64
		if err := s.DB().QueryRow("SELECT sequence FROM " + table).Scan(&seq); err != nil {
			t.Fatalf("read sequence from %s: %v", table, err)
		}
		seqs = append(seqs, seq)
	}
	if seqs[0] == seqs[1] {
		t.Errorf("sequence reused across event types: %v", seqs)
	}
}
