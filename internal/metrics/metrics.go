// Package metrics grades batches of predictions against a labeled corpus and
// summarizes accuracy per response format.
package metrics

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/stackfour/internal/question"
)

// z95 is the two-sided normal quantile for a 95% interval.
const z95 = 1.959963984540054

// Overall aggregates exact-match correctness across every format.
type Overall struct {
	Accuracy float64
	Correct  int
	Total    int
	CILower  float64
	CIUpper  float64
}

// SingleMetrics grades single-answer questions on exact match.
type SingleMetrics struct {
	Accuracy float64
	Correct  int
	Total    int
	CILower  float64
	CIUpper  float64
}

// SATAMetrics grades select-all questions on exact match plus micro-averaged
// precision, recall, and F1 over individual option keys.
type SATAMetrics struct {
	ExactMatchAccuracy float64
	Precision          float64
	Recall             float64
	F1                 float64
	Correct            int
	Total              int
}

// OrderedMetrics grades sequencing questions on perfect-sequence rate plus
// mean Kendall's tau over same-length sequences.
type OrderedMetrics struct {
	PerfectSequenceAccuracy float64
	AvgKendallTau           float64
	Correct                 int
	Total                   int
}

// Summary is the result of grading one batch. Format sections are nil when
// the batch contains no questions of that format.
type Summary struct {
	Overall Overall
	Single  *SingleMetrics
	SATA    *SATAMetrics
	Ordered *OrderedMetrics
}

// Run records one evaluation for persistence and later comparison.
type Run struct {
	ID               string
	AlgorithmVersion string
	DatasetHash      string
	Summary          Summary
	Config           map[string]string
	StartedAt        time.Time
}

// NewRun stamps a summary with a fresh run ID and the current time.
func NewRun(summary Summary, version, datasetHash string, config map[string]string) Run {
	return Run{
		ID:               uuid.NewString(),
		AlgorithmVersion: version,
		DatasetHash:      datasetHash,
		Summary:          summary,
		Config:           config,
		StartedAt:        time.Now().UTC(),
	}
}

// DatasetHash fingerprints a question corpus by its sorted IDs, so two runs
// over the same corpus are directly comparable.
func DatasetHash(ids []string) string {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "")))
	return hex.EncodeToString(sum[:])[:16]
}

// SplitIDs shuffles ids with the given seed and splits off the last testRatio
// fraction as the held-out set. The same seed always yields the same split.
func SplitIDs(ids []string, testRatio float64, seed int64) (train, test []string) {
	shuffled := append([]string(nil), ids...)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	cut := int(float64(len(shuffled)) * (1 - testRatio))
	return shuffled[:cut], shuffled[cut:]
}

// Evaluate grades predictions against their questions. Both slices must be
// parallel; extra entries in either are ignored.
func Evaluate(questions []*question.Question, predictions []question.AnswerSet) Summary {
	n := len(questions)
	if len(predictions) < n {
		n = len(predictions)
	}

	var singles, satas, ordereds []graded
	for i := 0; i < n; i++ {
		g := graded{q: questions[i], pred: predictions[i]}
		switch questions[i].Format {
		case question.FormatSingle:
			singles = append(singles, g)
		case question.FormatSATA:
			satas = append(satas, g)
		case question.FormatOrdered:
			ordereds = append(ordereds, g)
		}
	}

	var s Summary
	if len(singles) > 0 {
		s.Single = evaluateSingle(singles)
		s.Overall.Correct += s.Single.Correct
		s.Overall.Total += s.Single.Total
	}
	if len(satas) > 0 {
		s.SATA = evaluateSATA(satas)
		s.Overall.Correct += s.SATA.Correct
		s.Overall.Total += s.SATA.Total
	}
	if len(ordereds) > 0 {
		s.Ordered = evaluateOrdered(ordereds)
		s.Overall.Correct += s.Ordered.Correct
		s.Overall.Total += s.Ordered.Total
	}
	if s.Overall.Total > 0 {
		s.Overall.Accuracy = float64(s.Overall.Correct) / float64(s.Overall.Total)
		s.Overall.CILower, s.Overall.CIUpper = wilsonInterval(s.Overall.Correct, s.Overall.Total)
	}
	return s
}

type graded struct {
	q    *question.Question
	pred question.AnswerSet
}

func evaluateSingle(items []graded) *SingleMetrics {
	m := &SingleMetrics{Total: len(items)}
	for _, it := range items {
		if it.pred.Equal(it.q.Correct) {
			m.Correct++
		}
	}
	m.Accuracy = float64(m.Correct) / float64(m.Total)
	m.CILower, m.CIUpper = wilsonInterval(m.Correct, m.Total)
	return m
}

func evaluateSATA(items []graded) *SATAMetrics {
	m := &SATAMetrics{Total: len(items)}
	var tp, fp, fn int
	for _, it := range items {
		if it.pred.Equal(it.q.Correct) {
			m.Correct++
		}
		for k := range it.pred {
			if it.q.Correct.Contains(k) {
				tp++
			} else {
				fp++
			}
		}
		for k := range it.q.Correct {
			if !it.pred.Contains(k) {
				fn++
			}
		}
	}
	m.ExactMatchAccuracy = float64(m.Correct) / float64(m.Total)
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

func evaluateOrdered(items []graded) *OrderedMetrics {
	m := &OrderedMetrics{Total: len(items)}
	var tauSum float64
	var tauCount int
	for _, it := range items {
		predSeq := sequence(it.pred)
		correctSeq := sequence(it.q.Correct)
		if equalSeq(predSeq, correctSeq) {
			m.Correct++
		}
		if len(predSeq) == len(correctSeq) {
			tauSum += kendallTau(predSeq, correctSeq)
			tauCount++
		}
	}
	m.PerfectSequenceAccuracy = float64(m.Correct) / float64(m.Total)
	if tauCount > 0 {
		m.AvgKendallTau = tauSum / float64(tauCount)
	}
	return m
}

// sequence unpacks the single comma-joined permutation an ordered answer
// set carries.
func sequence(s question.AnswerSet) []string {
	if len(s) != 1 {
		return nil
	}
	var joined string
	for k := range s {
		joined = k
	}
	parts := strings.Split(joined, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func equalSeq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// kendallTau measures rank agreement between two orderings of the same keys.
// Result is 1 for identical order, -1 for fully reversed, 0 when sequences
// cannot be compared.
func kendallTau(a, b []string) float64 {
	n := len(a)
	if n != len(b) || n < 2 {
		return 0
	}
	posB := make(map[string]int, n)
	for i, k := range b {
		posB[k] = i
	}
	var concordant, discordant int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pi, okI := posB[a[i]]
			pj, okJ := posB[a[j]]
			if !okI || !okJ {
				continue
			}
			if pi < pj {
				concordant++
			} else {
				discordant++
			}
		}
	}
	pairs := n * (n - 1) / 2
	return float64(concordant-discordant) / float64(pairs)
}

// wilsonInterval is the Wilson score interval for a binomial proportion at
// 95% confidence. It stays inside [0, 1] even for small samples.
func wilsonInterval(successes, trials int) (lo, hi float64) {
	if trials == 0 {
		return 0, 0
	}
	n := float64(trials)
	p := float64(successes) / n
	denom := 1 + z95*z95/n
	center := (p + z95*z95/(2*n)) / denom
	margin := z95 * math.Sqrt(p*(1-p)/n+z95*z95/(4*n*n)) / denom
	return math.Max(0, center-margin), math.Min(1, center+margin)
}
