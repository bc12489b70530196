// Package learning accumulates prediction outcomes and converts per-rule
// success rates into scoring weights. It implements the scorer's
// WeightSource contract.
package learning

import (
	"context"
	"regexp"
	"sort"
	"sync"
	"time"

	"github.com/abhisek/stackfour/internal/question"
)

// minUses is the number of recorded uses a rule needs before its observed
// success rate starts scaling its weight.
const minUses = 10

// Outcome is one recorded prediction result.
type Outcome struct {
	QuestionID   string
	QuestionType string
	Format       question.Format
	Predicted    question.AnswerSet
	Correct      question.AnswerSet
	Rules        []string
	Confidence   float64
	WasCorrect   bool
	RecordedAt   time.Time
}

// PatternStats counts how often a scoring rule participated in a correct
// prediction.
type PatternStats struct {
	Correct int
	Total   int
}

// KeywordStats counts keyword associations mined from mistakes.
type KeywordStats struct {
	Correct   int
	Incorrect int
}

// Stats is the full persisted learning state.
type Stats struct {
	Patterns map[string]PatternStats
	Keywords map[string]KeywordStats
}

// NewStats returns an empty statistics record.
func NewStats() *Stats {
	return &Stats{
		Patterns: map[string]PatternStats{},
		Keywords: map[string]KeywordStats{},
	}
}

// Store is the persistence collaborator. Only two concerns exist: appending
// outcome records and loading/saving the accumulated statistics.
type Store interface {
	AppendOutcome(ctx context.Context, o *Outcome) error
	LoadStats(ctx context.Context) (*Stats, error)
	SaveStats(ctx context.Context, s *Stats) error
}

// keywordRe mines clinical vocabulary by suffix shape from option text.
var keywordRe = regexp.MustCompile(`\b(\w+(?:ing|ed|ion|ment|ure|sis|tic))\b`)

// Recorder tracks outcomes and serves weights. Safe for concurrent use:
// counter updates are read-modify-write and go through one mutex.
type Recorder struct {
	mu    sync.Mutex
	stats *Stats
	store Store
}

// NewRecorder builds a Recorder over an optional store. A nil store keeps
// all statistics in memory only.
func NewRecorder(store Store) *Recorder {
	return &Recorder{stats: NewStats(), store: store}
}

// Load pulls previously saved statistics from the store. A missing or
// unreadable prior state means no prior learning, never an error.
func (r *Recorder) Load(ctx context.Context) {
	if r.store == nil {
		return
	}
	s, err := r.store.LoadStats(ctx)
	if err != nil || s == nil {
		return
	}
	if s.Patterns == nil {
		s.Patterns = map[string]PatternStats{}
	}
	if s.Keywords == nil {
		s.Keywords = map[string]KeywordStats{}
	}
	r.mu.Lock()
	r.stats = s
	r.mu.Unlock()
}

// Save writes the accumulated statistics back to the store.
func (r *Recorder) Save(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	r.mu.Lock()
	snapshot := r.snapshotLocked()
	r.mu.Unlock()
	return r.store.SaveStats(ctx, snapshot)
}

func (r *Recorder) snapshotLocked() *Stats {
	s := NewStats()
	for k, v := range r.stats.Patterns {
		s.Patterns[k] = v
	}
	for k, v := range r.stats.Keywords {
		s.Keywords[k] = v
	}
	return s
}

// Record registers an outcome, updates the per-rule counters, and appends
// the record to the store when one is configured. Store failures do not
// undo the in-memory update.
func (r *Recorder) Record(ctx context.Context, o *Outcome) error {
	if o.RecordedAt.IsZero() {
		o.RecordedAt = time.Now()
	}
	o.WasCorrect = o.Predicted.Equal(o.Correct)

	r.mu.Lock()
	for _, rule := range o.Rules {
		ps := r.stats.Patterns[rule]
		ps.Total++
		if o.WasCorrect {
			ps.Correct++
		}
		r.stats.Patterns[rule] = ps
	}
	r.mu.Unlock()

	if r.store == nil {
		return nil
	}
	return r.store.AppendOutcome(ctx, o)
}

// LearnFromMistake mines keyword associations from a wrong prediction:
// vocabulary in the missed correct options counts as correct, vocabulary in
// wrongly chosen options counts as incorrect.
func (r *Recorder) LearnFromMistake(q *question.Question, predicted question.AnswerSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, text := range q.Options {
		inCorrect := q.Correct.Contains(key)
		inPredicted := predicted.Contains(key)
		switch {
		case inCorrect && !inPredicted:
			for _, kw := range mineKeywords(text) {
				ks := r.stats.Keywords[kw]
				ks.Correct++
				r.stats.Keywords[kw] = ks
			}
		case inPredicted && !inCorrect:
			for _, kw := range mineKeywords(text) {
				ks := r.stats.Keywords[kw]
				ks.Incorrect++
				r.stats.Keywords[kw] = ks
			}
		}
	}
}

// Weight returns the multiplicative scaling factor for a rule: 1.0 until
// the rule has minUses recorded uses, then 0.5 + 0.5 x success rate.
func (r *Recorder) Weight(rule string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	ps, ok := r.stats.Patterns[rule]
	if !ok || ps.Total < minUses {
		return 1.0
	}
	rate := float64(ps.Correct) / float64(ps.Total)
	return 0.5 + 0.5*rate
}

// SuccessfulKeywords returns mined keywords whose correct count exceeds
// their incorrect count by at least margin, sorted.
func (r *Recorder) SuccessfulKeywords(margin int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for kw, ks := range r.stats.Keywords {
		if ks.Correct-ks.Incorrect >= margin {
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}

// PatternStats returns a copy of the per-rule counters, for reporting.
func (r *Recorder) PatternStats() map[string]PatternStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked().Patterns
}

func mineKeywords(text string) []string {
	var out []string
	for _, m := range keywordRe.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}
