// Package question defines the exam-question model shared by the ingestion,
// prediction, and evaluation layers.
package question

import "sort"

// Format identifies the response format of a question.
type Format string

const (
	// FormatSingle has exactly one correct option key.
	FormatSingle Format = "single"
	// FormatSATA ("select all that apply") has multiple correct option keys.
	FormatSATA Format = "sata"
	// FormatOrdered expects a specific permutation of all option keys,
	// encoded as a single comma-joined string.
	FormatOrdered Format = "ordered"
)

// Valid reports whether f is a known format tag.
func (f Format) Valid() bool {
	switch f {
	case FormatSingle, FormatSATA, FormatOrdered:
		return true
	}
	return false
}

// Question is a single exam item with its metadata.
type Question struct {
	ID      string
	Stem    string
	Options map[string]string // option key (A–E) → option text
	Correct AnswerSet
	Format  Format

	// Optional metadata carried through from the source corpus.
	Type       string // e.g. "priority", "assessment"
	Publisher  string
	Topic      string
	Difficulty string
}

// OptionKeys returns the option keys in stable (alphabetical) order.
// Keys are drawn from a small fixed alphabet, so alphabetical order is
// presentation order.
func (q *Question) OptionKeys() []string {
	keys := make([]string, 0, len(q.Options))
	for k := range q.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasCorrect reports whether the question carries a known-correct answer set,
// which enables grading and feedback recording.
func (q *Question) HasCorrect() bool {
	return len(q.Correct) > 0
}
