package question

import (
	"sort"
	"strings"
)

// AnswerSet is a set of option keys. For ordered-response questions the set
// holds a single element: the comma-joined permutation of option keys.
type AnswerSet map[string]struct{}

// NewAnswerSet builds an AnswerSet from the given keys.
func NewAnswerSet(keys ...string) AnswerSet {
	s := make(AnswerSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// ParseAnswerSet parses a comma-joined answer string as stored in the corpus
// ("B" or "A,C,D"). Ordered-format answers are a single permutation string and
// must be wrapped with NewAnswerSet instead.
func ParseAnswerSet(s string) AnswerSet {
	if s == "" {
		return AnswerSet{}
	}
	parts := strings.Split(s, ",")
	set := make(AnswerSet, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			set[p] = struct{}{}
		}
	}
	return set
}

// Add inserts a key into the set.
func (s AnswerSet) Add(key string) { s[key] = struct{}{} }

// Contains reports whether key is in the set.
func (s AnswerSet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Equal reports whether both sets hold exactly the same keys.
func (s AnswerSet) Equal(other AnswerSet) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// Sorted returns the keys in ascending order.
func (s AnswerSet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the set as a comma-joined sorted key list.
func (s AnswerSet) String() string {
	return strings.Join(s.Sorted(), ",")
}
