package question

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,stem,A,B,C,D,correct,format,question_type,publisher
q1,Which client should the nurse see first?,Stable angina,Stridor after thyroidectomy,Chronic pain,Scheduled discharge,B,single,priority,nclex-bank
q2,Select all appropriate fall precautions.,Bed in lowest position,Raise all four side rails,Call bell within reach,Nonslip footwear,"A,C,D",sata,safety,nclex-bank
`

func TestLoadCSV(t *testing.T) {
	questions, err := LoadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, questions, 2)

	q := questions[0]
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, FormatSingle, q.Format)
	assert.Equal(t, "priority", q.Type)
	assert.Equal(t, "nclex-bank", q.Publisher)
	assert.Len(t, q.Options, 4)
	assert.True(t, q.Correct.Equal(NewAnswerSet("B")))

	q = questions[1]
	assert.Equal(t, FormatSATA, q.Format)
	assert.True(t, q.Correct.Equal(NewAnswerSet("A", "C", "D")))
}

func TestLoadCSVOrderedKeepsPermutation(t *testing.T) {
	csv := `id,stem,A,B,C,D,correct,format
q3,Place the CPR steps in order.,Check responsiveness,Call for help,Start compressions,Open airway,"A,B,C,D",ordered
`
	questions, err := LoadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, questions, 1)

	// The permutation survives as one element, not four.
	require.Len(t, questions[0].Correct, 1)
	assert.True(t, questions[0].Correct.Contains("A,B,C,D"))
}

func TestLoadCSVMissingColumn(t *testing.T) {
	csv := "id,stem,A,B,correct\nq1,Stem,Opt A,Opt B,A\n"
	_, err := LoadCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "format")
}

func TestLoadCSVRejectsUnknownCorrectKey(t *testing.T) {
	csv := `id,stem,A,B,correct,format
q1,Stem text,Opt A,Opt B,E,single
`
	_, err := LoadCSV(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an option key")
}

func TestLoadJSON(t *testing.T) {
	src := `[
		{
			"id": "j1",
			"stem": "A client with heart failure gained 2 kg overnight. What should the nurse do first?",
			"options": {"A": "Notify the provider", "B": "Assess lung sounds", "C": "Restrict fluids", "D": "Give the scheduled diuretic"},
			"correct": "B",
			"format": "single",
			"topic": "cardiac"
		}
	]`
	questions, err := LoadJSON(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "j1", questions[0].ID)
	assert.Equal(t, "cardiac", questions[0].Topic)
	assert.True(t, questions[0].Correct.Equal(NewAnswerSet("B")))
}

func TestLoadJSONValidation(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "missing id",
			src:  `[{"stem":"s","options":{"A":"a","B":"b"},"correct":"A","format":"single"}]`,
			want: "missing id",
		},
		{
			name: "too few options",
			src:  `[{"id":"x","stem":"s","options":{"A":"a"},"correct":"A","format":"single"}]`,
			want: "at least 2 options",
		},
		{
			name: "unknown format",
			src:  `[{"id":"x","stem":"s","options":{"A":"a","B":"b"},"correct":"A","format":"matrix"}]`,
			want: "unknown format",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadJSON(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
