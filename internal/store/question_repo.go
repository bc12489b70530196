package store

import (
	"context"
	"fmt"

	"github.com/abhisek/stackfour/ent"
	entquestion "github.com/abhisek/stackfour/ent/question"
	"github.com/abhisek/stackfour/internal/question"
)

// questionRepo implements QuestionRepo backed by ent.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Save(ctx context.Context, q *question.Question) error {
	err := r.client.Question.Create().
		SetQid(q.ID).
		SetStem(q.Stem).
		SetOptions(q.Options).
		SetCorrect(q.Correct.String()).
		SetFormat(string(q.Format)).
		SetQuestionType(q.Type).
		SetPublisher(q.Publisher).
		SetTopic(q.Topic).
		SetDifficulty(q.Difficulty).
		OnConflictColumns(entquestion.FieldQid).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save question %s: %w", q.ID, err)
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, id string) (*question.Question, error) {
	row, err := r.client.Question.Query().
		Where(entquestion.Qid(id)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("get question %s: %w", id, err)
	}
	return decodeQuestion(row), nil
}

func (r *questionRepo) List(ctx context.Context, f QuestionFilter) ([]*question.Question, error) {
	q := r.client.Question.Query()
	if f.Format != "" {
		q = q.Where(entquestion.Format(string(f.Format)))
	}
	if f.Publisher != "" {
		q = q.Where(entquestion.Publisher(f.Publisher))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.Order(ent.Asc(entquestion.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	out := make([]*question.Question, len(rows))
	for i, row := range rows {
		out[i] = decodeQuestion(row)
	}
	return out, nil
}

func (r *questionRepo) IDs(ctx context.Context) ([]string, error) {
	ids, err := r.client.Question.Query().
		Order(ent.Asc(entquestion.FieldQid)).
		Select(entquestion.FieldQid).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("list question IDs: %w", err)
	}
	return ids, nil
}

func decodeQuestion(row *ent.Question) *question.Question {
	q := &question.Question{
		ID:         row.Qid,
		Stem:       row.Stem,
		Options:    row.Options,
		Format:     question.Format(row.Format),
		Type:       row.QuestionType,
		Publisher:  row.Publisher,
		Topic:      row.Topic,
		Difficulty: row.Difficulty,
	}
	// Ordered answers are one permutation string; splitting on commas
	// would destroy the sequence.
	if q.Format == question.FormatOrdered {
		q.Correct = question.NewAnswerSet(row.Correct)
	} else {
		q.Correct = question.ParseAnswerSet(row.Correct)
	}
	return q
}
