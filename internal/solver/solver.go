// Package solver turns a question into an answer set. It wires the context
// extractor, the option scorer, the exception handler, the optional
// knowledge helper, and the feedback recorder into one prediction pipeline.
package solver

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/abhisek/stackfour/internal/clinical"
	"github.com/abhisek/stackfour/internal/exceptions"
	"github.com/abhisek/stackfour/internal/kb"
	"github.com/abhisek/stackfour/internal/knowledge"
	"github.com/abhisek/stackfour/internal/learning"
	"github.com/abhisek/stackfour/internal/question"
	"github.com/abhisek/stackfour/internal/scorer"
)

// Version identifies the scoring algorithm for evaluation-run comparison.
// Bump on any change that can move predictions.
const Version = "1.0.0"

// knowledgeTermLimit caps per-question helper lookups.
const knowledgeTermLimit = 3

// Prediction is the full result of one solve, including the decision trail.
type Prediction struct {
	Answers   question.AnswerSet
	Scores    map[string]scorer.Evaluation
	Rules     []string
	Exception *exceptions.Detection
	Knowledge map[string]string
	Reasoning []string
}

// Engine is the prediction pipeline. Construct once and reuse; it is safe
// for concurrent use when its recorder is.
type Engine struct {
	kb        *kb.KnowledgeBase
	extractor *clinical.Extractor
	evaluator *scorer.Evaluator
	handler   *exceptions.Handler
	recorder  *learning.Recorder
	helper    knowledge.Helper
}

// New builds an Engine. recorder and helper are optional; a nil recorder
// disables learning and a nil helper disables knowledge enrichment.
func New(base *kb.KnowledgeBase, recorder *learning.Recorder, helper knowledge.Helper) *Engine {
	var weights scorer.WeightSource
	if recorder != nil {
		weights = recorder
	}
	return &Engine{
		kb:        base,
		extractor: clinical.NewExtractor(base),
		evaluator: scorer.New(base, weights),
		handler:   exceptions.NewHandler(),
		recorder:  recorder,
		helper:    helper,
	}
}

// Predict solves one question. An empty option mapping yields an empty
// answer set, never an error; every other path produces a best-effort set.
func (e *Engine) Predict(ctx context.Context, q *question.Question) *Prediction {
	pred := &Prediction{
		Answers:   question.AnswerSet{},
		Scores:    map[string]scorer.Evaluation{},
		Knowledge: map[string]string{},
	}
	if len(q.Options) == 0 {
		return pred
	}

	detections := e.handler.Detect(q)
	stemCtx := e.extractor.Extract(q.Stem)
	e.enrich(ctx, q, pred)

	for _, key := range q.OptionKeys() {
		pred.Scores[key] = e.evaluator.EvaluateOption(q.Options[key], stemCtx)
	}

	var base question.AnswerSet
	switch q.Format {
	case question.FormatSATA:
		base = e.solveSATA(q, stemCtx, pred)
	case question.FormatOrdered:
		base = e.solveOrdered(q, pred)
	default:
		base = e.solveSingle(q, stemCtx, pred)
	}

	pred.Answers, pred.Exception = e.handler.Apply(q, base, detections)
	if pred.Exception != nil {
		pred.Reasoning = append(pred.Reasoning, "exception "+string(pred.Exception.Category)+": "+pred.Exception.Reasoning)
	}

	pred.Rules = e.firedRules(pred)
	e.record(ctx, q, pred)
	return pred
}

// solveSingle returns the one best option. An emergency stem redirects to
// a matched intervention before raw scores are compared.
func (e *Engine) solveSingle(q *question.Question, stemCtx *clinical.Context, pred *Prediction) question.AnswerSet {
	if stemCtx.Emergency {
		if key, ok := e.emergencyIntervention(q); ok {
			pred.Reasoning = append(pred.Reasoning, "emergency stem: intervention over assessment, option "+key)
			return question.NewAnswerSet(key)
		}
	}
	best := e.bestOption(q.OptionKeys(), pred.Scores)
	pred.Reasoning = append(pred.Reasoning, "selected option "+best)
	return question.NewAnswerSet(best)
}

// emergencyInterventions pairs each emergency type with the option wording
// that carries out its immediate intervention.
var emergencyInterventions = []struct {
	name string
	re   *regexp.Regexp
}{
	{"hypoglycemia", regexp.MustCompile(`(?i)carbohydrate|15 gram|orange juice|glucose tablet`)},
	{"cardiac arrest", regexp.MustCompile(`(?i)compression|\bCPR\b`)},
	{"respiratory", regexp.MustCompile(`(?i)oxygen|airway`)},
}

// emergencyIntervention scans options in key order for an intervention verb
// paired with wording that treats the detected emergency.
func (e *Engine) emergencyIntervention(q *question.Question) (string, bool) {
	for _, key := range q.OptionKeys() {
		text := strings.ToLower(q.Options[key])
		if !hasInterventionVerb(text) {
			continue
		}
		for _, ei := range emergencyInterventions {
			if ei.re.MatchString(text) {
				return key, true
			}
		}
	}
	return "", false
}

var interventionVerbs = []string{"give", "administer", "perform", "begin", "start", "apply"}

func hasInterventionVerb(lower string) bool {
	for _, v := range interventionVerbs {
		if strings.Contains(lower, v) {
			return true
		}
	}
	return false
}

// bestOption applies the tie-break chain: highest score, then is-critical,
// then requires-action, then first option order.
func (e *Engine) bestOption(keys []string, scores map[string]scorer.Evaluation) string {
	best := keys[0]
	for _, key := range keys[1:] {
		a, b := scores[key], scores[best]
		switch {
		case a.Score != b.Score:
			if a.Score > b.Score {
				best = key
			}
		case a.IsCritical != b.IsCritical:
			if a.IsCritical {
				best = key
			}
		case a.RequiresAction != b.RequiresAction:
			if a.RequiresAction {
				best = key
			}
		}
	}
	return best
}

// solveSATA includes every option that scores positive, reads as a safe
// nursing action, or (for teaching stems) states a correct teaching point.
// At least two options are always returned when two or more exist.
func (e *Engine) solveSATA(q *question.Question, stemCtx *clinical.Context, pred *Prediction) question.AnswerSet {
	selected := question.AnswerSet{}
	keys := q.OptionKeys()

	target := e.kb.PatternInText(q.Stem)
	switch {
	case e.kb.IsTeachingStem(q.Stem):
		for _, key := range keys {
			if e.kb.CorrectTeachingPoint(q.Options[key]) {
				selected.Add(key)
			}
		}
		pred.Reasoning = append(pred.Reasoning, "teaching stem: kept correct teaching points")
	case target != nil && symptomQueryRe.MatchString(q.Stem):
		// The stem names a pattern and asks for its signs: keep options
		// that state a sign of that pattern, drop signs of other
		// conditions even though they are also abnormal.
		for _, key := range keys {
			if target.MatchesSymptom(q.Options[key]) {
				selected.Add(key)
			}
		}
		pred.Reasoning = append(pred.Reasoning, "kept signs of "+target.Name)
	default:
		for _, key := range keys {
			ev := pred.Scores[key]
			if ev.IsContraindicated {
				continue
			}
			if ev.Score > 0 || e.isAppropriateAction(q.Options[key]) {
				selected.Add(key)
			}
		}
	}

	// Floor: a select-all item almost never has fewer than two answers.
	if len(selected) < 2 && len(keys) >= 2 {
		for _, key := range keys {
			if len(selected) >= 2 {
				break
			}
			if selected.Contains(key) || pred.Scores[key].IsContraindicated {
				continue
			}
			if nursingActionRe.MatchString(q.Options[key]) {
				selected.Add(key)
			}
		}
		for _, key := range keys {
			if len(selected) >= 2 {
				break
			}
			selected.Add(key)
		}
		pred.Reasoning = append(pred.Reasoning, "applied minimum-selection floor")
	}
	return selected
}

var nursingActionRe = regexp.MustCompile(`(?i)\b(provide|ensure|maintain|keep|position|assess|monitor|check|notify|document)\b`)

var symptomQueryRe = regexp.MustCompile(`(?i)\b(signs?|symptoms?|findings?|manifestations?)\b`)

func (e *Engine) isAppropriateAction(text string) bool {
	return nursingActionRe.MatchString(text)
}

// solveOrdered ranks option keys by descending score, ties by option order,
// and encodes the permutation as one comma-joined element.
func (e *Engine) solveOrdered(q *question.Question, pred *Prediction) question.AnswerSet {
	keys := q.OptionKeys()
	ranked := make([]string, len(keys))
	copy(ranked, keys)
	sort.SliceStable(ranked, func(i, j int) bool {
		return pred.Scores[ranked[i]].Score > pred.Scores[ranked[j]].Score
	})
	pred.Reasoning = append(pred.Reasoning, "ordered by descending priority: "+strings.Join(ranked, ","))
	return question.NewAnswerSet(strings.Join(ranked, ","))
}

// enrich asks the knowledge helper about clinical terms that appear in the
// options. The helper never sees the question itself, only isolated terms,
// and any failure leaves the prediction untouched.
func (e *Engine) enrich(ctx context.Context, q *question.Question, pred *Prediction) {
	if e.helper == nil {
		return
	}
	terms := clinicalTerms(q)
	if len(terms) > knowledgeTermLimit {
		terms = terms[:knowledgeTermLimit]
	}
	for _, term := range terms {
		purpose, err := e.helper.InterventionPurpose(ctx, term)
		if err != nil || purpose == "" {
			continue
		}
		pred.Knowledge[term] = purpose
	}
}

var clinicalTermRe = regexp.MustCompile(`(?i)\b(hypoglycemia|COPD|CHF|pneumonia|stroke|insulin|morphine|oxygen|furosemide|digoxin)\b`)

func clinicalTerms(q *question.Question) []string {
	seen := map[string]struct{}{}
	var terms []string
	for _, key := range q.OptionKeys() {
		for _, m := range clinicalTermRe.FindAllString(q.Options[key], -1) {
			lower := strings.ToLower(m)
			if _, dup := seen[lower]; dup {
				continue
			}
			seen[lower] = struct{}{}
			terms = append(terms, lower)
		}
	}
	return terms
}

// firedRules collects, in option-key order, the scoring rules behind the
// chosen answers. These names key the learning counters.
func (e *Engine) firedRules(pred *Prediction) []string {
	seen := map[string]struct{}{}
	var rules []string
	keys := make([]string, 0, len(pred.Scores))
	for key := range pred.Scores {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !pred.Answers.Contains(key) {
			continue
		}
		for _, rule := range pred.Scores[key].RulesFired {
			if _, dup := seen[rule]; dup {
				continue
			}
			seen[rule] = struct{}{}
			rules = append(rules, rule)
		}
	}
	return rules
}

// record feeds the outcome to the learning recorder when the question
// carries a known correct answer.
func (e *Engine) record(ctx context.Context, q *question.Question, pred *Prediction) {
	if e.recorder == nil || !q.HasCorrect() {
		return
	}
	// Recorded confidence is the exception's when one fired; the scorer
	// itself has no calibrated confidence, so 0.5 stands in otherwise.
	confidence := 0.5
	if pred.Exception != nil {
		confidence = pred.Exception.Confidence
	}
	outcome := &learning.Outcome{
		QuestionID:   q.ID,
		QuestionType: q.Type,
		Format:       q.Format,
		Predicted:    pred.Answers,
		Correct:      q.Correct,
		Rules:        pred.Rules,
		Confidence:   confidence,
	}
	// Recorder failures never disturb the prediction path.
	_ = e.recorder.Record(ctx, outcome)
	if !outcome.WasCorrect {
		e.recorder.LearnFromMistake(q, pred.Answers)
	}
}
