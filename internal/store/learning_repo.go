package store

import (
	"context"
	"fmt"

	"github.com/abhisek/stackfour/ent"
	entkeyword "github.com/abhisek/stackfour/ent/keywordstat"
	entpattern "github.com/abhisek/stackfour/ent/patternstat"
	entprediction "github.com/abhisek/stackfour/ent/predictionevent"
	"github.com/abhisek/stackfour/internal/learning"
)

// LearningRepo persists prediction outcomes and accumulated rule statistics.
// It satisfies learning.Store.
type LearningRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ learning.Store = (*LearningRepo)(nil)

func (r *LearningRepo) AppendOutcome(ctx context.Context, o *learning.Outcome) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PredictionEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(o.QuestionID).
		SetQuestionType(o.QuestionType).
		SetFormat(string(o.Format)).
		SetPredicted(o.Predicted.String()).
		SetCorrect(o.Correct.String()).
		SetWasCorrect(o.WasCorrect).
		SetConfidence(o.Confidence).
		SetRules(o.Rules).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save prediction event: %w", err)
	}
	return nil
}

func (r *LearningRepo) LoadStats(ctx context.Context) (*learning.Stats, error) {
	stats := &learning.Stats{
		Patterns: make(map[string]learning.PatternStats),
		Keywords: make(map[string]learning.KeywordStats),
	}

	patterns, err := r.client.PatternStat.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pattern stats: %w", err)
	}
	for _, p := range patterns {
		stats.Patterns[p.Name] = learning.PatternStats{
			Correct: p.Correct,
			Total:   p.Total,
		}
	}

	keywords, err := r.client.KeywordStat.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load keyword stats: %w", err)
	}
	for _, k := range keywords {
		stats.Keywords[k.Keyword] = learning.KeywordStats{
			Correct:   k.Correct,
			Incorrect: k.Incorrect,
		}
	}

	return stats, nil
}

func (r *LearningRepo) SaveStats(ctx context.Context, s *learning.Stats) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin stats tx: %w", err)
	}

	for name, p := range s.Patterns {
		err := tx.PatternStat.Create().
			SetName(name).
			SetCorrect(p.Correct).
			SetTotal(p.Total).
			OnConflictColumns(entpattern.FieldName).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save pattern stat %s: %w", name, err)
		}
	}

	for keyword, k := range s.Keywords {
		err := tx.KeywordStat.Create().
			SetKeyword(keyword).
			SetCorrect(k.Correct).
			SetIncorrect(k.Incorrect).
			OnConflictColumns(entkeyword.FieldKeyword).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save keyword stat %s: %w", keyword, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit stats tx: %w", err)
	}
	return nil
}

// Reset deletes all recorded outcomes and accumulated rule statistics.
// The question corpus and evaluation runs are untouched.
func (r *LearningRepo) Reset(ctx context.Context) error {
	if _, err := r.client.PredictionEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete prediction events: %w", err)
	}
	if _, err := r.client.PatternStat.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete pattern stats: %w", err)
	}
	if _, err := r.client.KeywordStat.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete keyword stats: %w", err)
	}
	return nil
}

// OutcomeCounts reports how many recorded predictions were graded correct.
func (r *LearningRepo) OutcomeCounts(ctx context.Context) (correct, total int, err error) {
	total, err = r.client.PredictionEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count prediction events: %w", err)
	}
	correct, err = r.client.PredictionEvent.Query().
		Where(entprediction.WasCorrect(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct predictions: %w", err)
	}
	return correct, total, nil
}
