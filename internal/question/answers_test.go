package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnswerSet(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"B", []string{"B"}},
		{"A,C,D", []string{"A", "C", "D"}},
		{" A , C ", []string{"A", "C"}},
		{"", nil},
	}
	for _, tc := range cases {
		got := ParseAnswerSet(tc.in)
		assert.Equal(t, len(tc.want), len(got), "parsing %q", tc.in)
		for _, k := range tc.want {
			assert.True(t, got.Contains(k), "parsing %q: missing %s", tc.in, k)
		}
	}
}

func TestAnswerSetEqual(t *testing.T) {
	assert.True(t, NewAnswerSet("A", "C").Equal(ParseAnswerSet("C,A")))
	assert.False(t, NewAnswerSet("A").Equal(NewAnswerSet("A", "B")))
	assert.False(t, NewAnswerSet("A").Equal(NewAnswerSet("B")))
	assert.True(t, AnswerSet{}.Equal(NewAnswerSet()))
}

func TestAnswerSetString(t *testing.T) {
	assert.Equal(t, "A,C,D", NewAnswerSet("D", "A", "C").String())
	assert.Equal(t, "", AnswerSet{}.String())

	// An ordered-response permutation is one element and passes through intact.
	assert.Equal(t, "C,A,B", NewAnswerSet("C,A,B").String())
}

func TestFormatValid(t *testing.T) {
	assert.True(t, FormatSingle.Valid())
	assert.True(t, FormatSATA.Valid())
	assert.True(t, FormatOrdered.Valid())
	assert.False(t, Format("matrix").Valid())
	assert.False(t, Format("").Valid())
}

func TestOptionKeysSorted(t *testing.T) {
	q := &Question{Options: map[string]string{"C": "c", "A": "a", "B": "b"}}
	assert.Equal(t, []string{"A", "B", "C"}, q.OptionKeys())
}
