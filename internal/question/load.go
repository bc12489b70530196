package question

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// optionColumns is the fixed option-key alphabet used by corpus files.
var optionColumns = []string{"A", "B", "C", "D", "E"}

// LoadCSV reads questions from a headered CSV stream. Required columns:
// id, stem, correct, format, and at least two of A–E. Optional columns:
// question_type, publisher, topic, difficulty.
func LoadCSV(r io.Reader) ([]*Question, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"id", "stem", "correct", "format"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV missing required column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var questions []*Question
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read CSV line %d: %w", line, err)
		}

		options := make(map[string]string)
		for _, key := range optionColumns {
			if text := field(row, key); text != "" {
				options[key] = text
			}
		}

		q := &Question{
			ID:         field(row, "id"),
			Stem:       field(row, "stem"),
			Options:    options,
			Format:     Format(field(row, "format")),
			Type:       field(row, "question_type"),
			Publisher:  field(row, "publisher"),
			Topic:      field(row, "topic"),
			Difficulty: field(row, "difficulty"),
		}
		q.Correct = parseCorrect(field(row, "correct"), q.Format)

		if err := validate(q, line); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// jsonQuestion mirrors the JSON corpus record shape.
type jsonQuestion struct {
	ID         string            `json:"id"`
	Stem       string            `json:"stem"`
	Options    map[string]string `json:"options"`
	Correct    string            `json:"correct"`
	Format     string            `json:"format"`
	Type       string            `json:"question_type,omitempty"`
	Publisher  string            `json:"publisher,omitempty"`
	Topic      string            `json:"topic,omitempty"`
	Difficulty string            `json:"difficulty,omitempty"`
}

// LoadJSON reads questions from a JSON array stream.
func LoadJSON(r io.Reader) ([]*Question, error) {
	var records []jsonQuestion
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode question JSON: %w", err)
	}

	questions := make([]*Question, 0, len(records))
	for i, rec := range records {
		q := &Question{
			ID:         rec.ID,
			Stem:       rec.Stem,
			Options:    rec.Options,
			Format:     Format(rec.Format),
			Type:       rec.Type,
			Publisher:  rec.Publisher,
			Topic:      rec.Topic,
			Difficulty: rec.Difficulty,
		}
		q.Correct = parseCorrect(rec.Correct, q.Format)
		if err := validate(q, i); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// parseCorrect interprets the stored correct-answer string. Ordered-format
// answers are one permutation string, not a set of keys.
func parseCorrect(s string, f Format) AnswerSet {
	if s == "" {
		return AnswerSet{}
	}
	if f == FormatOrdered {
		return NewAnswerSet(s)
	}
	return ParseAnswerSet(s)
}

func validate(q *Question, pos int) error {
	if q.ID == "" {
		return fmt.Errorf("question at record %d: missing id", pos)
	}
	if q.Stem == "" {
		return fmt.Errorf("question %s: missing stem", q.ID)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: needs at least 2 options, got %d", q.ID, len(q.Options))
	}
	if !q.Format.Valid() {
		return fmt.Errorf("question %s: unknown format %q", q.ID, q.Format)
	}
	if q.Format != FormatOrdered {
		for key := range q.Correct {
			if _, ok := q.Options[key]; !ok {
				return fmt.Errorf("question %s: correct answer %q is not an option key", q.ID, key)
			}
		}
	}
	return nil
}
