// Package scorer assigns a priority score to one option at a time. Rules run
// in a fixed precedence order and only ever raise the score, except the
// final contraindication check which forces a negative sentinel.
package scorer

import (
	"fmt"
	"strings"

	"github.com/abhisek/stackfour/internal/clinical"
	"github.com/abhisek/stackfour/internal/kb"
	"github.com/abhisek/stackfour/internal/vitals"
)

// Score sentinels. A targeted correct intervention outranks a merely
// alarming finding, so ScoreIntervention sits above ScoreCritical.
const (
	ScoreIntervention      = 1200
	ScoreCritical          = 1000
	ScoreAssessment        = 500
	ScoreContraindicated   = -1000
	assessmentDecrement    = 200
	normalFindingDecrement = 500
	medicationBoost        = 200
	conditionBoost         = 150
)

// WeightSource scales a rule's sentinel contribution by its observed
// success rate. The zero implementation weighs every rule at 1.0.
type WeightSource interface {
	Weight(rule string) float64
}

type unitWeights struct{}

func (unitWeights) Weight(string) float64 { return 1.0 }

// Evaluation is the scorer's verdict on a single option.
type Evaluation struct {
	Score              int
	IsCritical         bool
	IsContraindicated  bool
	AddressesEmergency bool
	RequiresAction     bool
	IsAssessment       bool
	Reasoning          []string
	RulesFired         []string
}

// Evaluator scores options against a stem context. It is stateless between
// calls and safe for concurrent use as long as the WeightSource is.
type Evaluator struct {
	kb      *kb.KnowledgeBase
	weights WeightSource
}

// New builds an Evaluator. A nil weights source means unweighted scoring.
func New(base *kb.KnowledgeBase, weights WeightSource) *Evaluator {
	if weights == nil {
		weights = unitWeights{}
	}
	return &Evaluator{kb: base, weights: weights}
}

func (e *Evaluator) weighted(raw int, rule string) int {
	w := e.weights.Weight(rule)
	if w <= 0 || w > 1 {
		w = 1
	}
	return int(float64(raw) * w)
}

// raise records a rule firing and lifts the score to at least the rule's
// weighted value. Scores already set by earlier rules are never lowered.
func (ev *Evaluation) raise(score int, rule, reason string) {
	if score > ev.Score {
		ev.Score = score
	}
	ev.RulesFired = append(ev.RulesFired, rule)
	ev.Reasoning = append(ev.Reasoning, reason)
}

// EvaluateOption applies the precedence rules to one option's text under
// the extracted stem context. ctx may be nil for a bare-text evaluation.
func (e *Evaluator) EvaluateOption(optionText string, ctx *clinical.Context) Evaluation {
	if ctx == nil {
		ctx = &clinical.Context{}
	}
	ev := Evaluation{}
	pctx := ctx.PatientContext()
	optVitals := vitals.Extract(optionText)

	// 1. Vitals stated in the option itself.
	anyAbnormal := false
	for _, sign := range optVitals.Signs() {
		class, reason := e.kb.ClassifyValue(sign, optVitals[sign], pctx)
		switch class {
		case kb.ClassCritical:
			ev.IsCritical = true
			anyAbnormal = true
			ev.raise(e.weighted(ScoreCritical, "critical_vitals"), "critical_vitals", reason)
		case kb.ClassAbnormal:
			anyAbnormal = true
			ev.Reasoning = append(ev.Reasoning, reason)
		}
	}

	// 2. Medication hold parameters violated by an option vital.
	for _, class := range ctx.Medications {
		med, ok := e.kb.Medication(class)
		if !ok {
			continue
		}
		for sign, threshold := range med.HoldBelow {
			if v, ok := optVitals[sign]; ok && v < threshold {
				ev.IsCritical = true
				ev.raise(e.weighted(ScoreCritical, "med_hold"), "med_hold",
					fmt.Sprintf("%s %.0f below %s hold threshold %.0f", sign, v, med.Name, threshold))
			}
		}
		for sign, threshold := range med.HoldAbove {
			if v, ok := optVitals[sign]; ok && v > threshold {
				ev.IsCritical = true
				ev.raise(e.weighted(ScoreCritical, "med_hold"), "med_hold",
					fmt.Sprintf("%s %.0f above %s hold threshold %.0f", sign, v, med.Name, threshold))
			}
		}
	}

	// 3. Option performs the documented intervention for an identified
	// pattern.
	for i := range ctx.Patterns {
		p := &ctx.Patterns[i]
		if p.MatchesIntervention(optionText) {
			ev.AddressesEmergency = true
			ev.raise(e.weighted(ScoreIntervention, "targeted_intervention"), "targeted_intervention",
				fmt.Sprintf("performs the %s intervention", p.Name))
		}
	}

	// 4. Hypoglycemia override: measured low glucose plus a carbohydrate
	// option means intervene, not assess.
	if g, ok := ctx.Vitals[vitals.BloodGlucose]; ok && g < 70 && carbRe.MatchString(optionText) {
		ev.AddressesEmergency = true
		ev.raise(e.weighted(ScoreIntervention, "hypoglycemia_carbs"), "hypoglycemia_carbs",
			fmt.Sprintf("glucose %.0f with carbohydrate intervention", g))
	}

	// Stack keyword ladder and subtle cues fill in the base priority when
	// no sentinel rule fired higher.
	if tier := matchStack(optionText); tier != nil {
		ev.raise(e.weighted(tier.Priority, "stack:"+tier.Name), "stack:"+tier.Name,
			fmt.Sprintf("%s keyword match", tier.Name))
	}
	if s, cats := subtleScore(optionText); s > 0 {
		for _, c := range cats {
			ev.raise(e.weighted(s, "subtle:"+c), "subtle:"+c, c+" cue")
		}
	}

	ev.IsAssessment = assessmentRe.MatchString(optionText)
	ev.RequiresAction = interventionVerbRe.MatchString(optionText)

	// 5. Deprioritize observation and normal findings. An assessment of a
	// merely abnormal value loses a fixed decrement; a normal finding
	// loses more. Neither goes below zero.
	if !ev.IsCritical && !ev.AddressesEmergency {
		if ev.IsAssessment && ev.Score < ScoreAssessment {
			ev.raise(e.weighted(ScoreAssessment, "assessment"), "assessment", "assessment action")
		}
		if anyAbnormal && ev.IsAssessment {
			ev.Score -= assessmentDecrement
			ev.Reasoning = append(ev.Reasoning, "assessment of a non-critical finding")
		}
		if isNormalFinding(optionText) || (len(optVitals) > 0 && !anyAbnormal) {
			ev.Score -= normalFindingDecrement
			ev.Reasoning = append(ev.Reasoning, "normal finding, lower priority")
		}
		if ev.Score < 0 {
			ev.Score = 0
		}
	}

	// Stem-relationship boosts: options that speak to the stem's
	// medication or condition address the actual concern.
	lowerOpt := strings.ToLower(optionText)
	for _, class := range e.kb.MatchMedications(optionText) {
		for _, want := range ctx.Medications {
			if class == want {
				ev.Score += medicationBoost
				ev.Reasoning = append(ev.Reasoning, "addresses the stem medication")
			}
		}
	}
	for _, cond := range ctx.Conditions {
		if strings.Contains(lowerOpt, cond) {
			ev.Score += conditionBoost
			ev.Reasoning = append(ev.Reasoning, "addresses the stem condition")
		}
	}

	// 6. Contraindication overrides everything above.
	if bad, reason := e.kb.Contraindicated(optionText, ctx.Stem); bad {
		ev.Score = ScoreContraindicated
		ev.IsContraindicated = true
		ev.RulesFired = append(ev.RulesFired, "contraindication")
		ev.Reasoning = append(ev.Reasoning, "contraindicated: "+reason)
	}

	return ev
}
