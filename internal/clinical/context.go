// Package clinical extracts structured context from question text: the
// medications, conditions, and symptoms mentioned in a stem, the measured
// vital signs, the timeframe, and whether the stem describes an emergency.
package clinical

import (
	"regexp"
	"strings"

	"github.com/abhisek/stackfour/internal/kb"
	"github.com/abhisek/stackfour/internal/vitals"
)

// Context is everything the solver knows about a stem before looking at the
// options.
type Context struct {
	Stem        string
	Medications []string
	Conditions  []string
	Symptoms    []string
	Vitals      vitals.Measurements
	Patterns    []kb.ClinicalPattern

	// Timeframe is "acute", "chronic", or empty when the stem gives no cue.
	Timeframe string
	AgeGroup  string

	// PriorityWording is set when the stem asks for a first or priority
	// action. Emergency is set only when the stem describes an active
	// life threat.
	PriorityWording bool
	Emergency       bool
}

// HasCondition reports whether the named condition was extracted.
func (c *Context) HasCondition(name string) bool {
	for _, cond := range c.Conditions {
		if cond == name {
			return true
		}
	}
	return false
}

// PatientContext converts the extracted context into the form the knowledge
// base uses for range selection.
func (c *Context) PatientContext() *kb.PatientContext {
	return &kb.PatientContext{
		AgeGroup:   c.AgeGroup,
		Conditions: c.Conditions,
	}
}

var conditionTerms = []string{
	"diabetes", "hypertension", "heart failure", "copd",
	"pneumonia", "diarrhea", "infection", "stroke",
	"hypoglycemia", "bleeding", "shock", "arrhythmia",
	"asthma", "head injury", "renal failure", "kidney disease",
	"hyperkalemia",
}

var symptomTerms = []string{
	"headache", "nausea", "vomiting", "pain",
	"dyspnea", "shortness of breath", "dizziness",
	"fatigue", "weakness", "confusion", "sweaty",
	"shaky", "fever", "chills",
}

var priorityRe = regexp.MustCompile(`\b(immediately|emergent|stat|urgent|first|priority|life.?threatening)\b`)

var emergencyRes = []*regexp.Regexp{
	regexp.MustCompile(`\b(unresponsive|no pulse|not breathing|choking)\b`),
	regexp.MustCompile(`\b(severe bleeding|hemorrhaging|shock)\b`),
	regexp.MustCompile(`\bhypoglycemia\b`),
	regexp.MustCompile(`blood (sugar|glucose).*\b(low|4\d|5\d|6\d)\b`),
	regexp.MustCompile(`shaky.*sweaty|sweaty.*shaky`),
	regexp.MustCompile(`\b(anaphylaxis|severe allergic)\b`),
}

var (
	infantRe    = regexp.MustCompile(`\binfant\b|\b\d+[\s-]month[\s-]old\b`)
	pediatricRe = regexp.MustCompile(`\b(child|pediatric|toddler|school[\s-]age)\b|\b[1-9][\s-]year[\s-]old\b|\b1[0-2][\s-]year[\s-]old\b`)
)

// Extractor pulls Context out of stem text using the knowledge base's
// vocabulary. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	kb *kb.KnowledgeBase
}

// NewExtractor builds an Extractor over the given knowledge base.
func NewExtractor(base *kb.KnowledgeBase) *Extractor {
	return &Extractor{kb: base}
}

// Extract reads the stem once and returns the full context. The Symptoms
// list draws from both a fixed symptom vocabulary and the knowledge base's
// pattern symptom clusters.
func (e *Extractor) Extract(stem string) *Context {
	lower := strings.ToLower(stem)

	ctx := &Context{
		Stem:        stem,
		Medications: e.kb.MatchMedications(stem),
		Vitals:      vitals.Extract(stem),
	}

	for _, term := range conditionTerms {
		if strings.Contains(lower, term) {
			ctx.Conditions = append(ctx.Conditions, term)
		}
	}

	seen := map[string]struct{}{}
	for _, term := range symptomTerms {
		if strings.Contains(lower, term) {
			seen[term] = struct{}{}
			ctx.Symptoms = append(ctx.Symptoms, term)
		}
	}
	for _, term := range e.kb.SymptomVocabulary() {
		if _, dup := seen[term]; dup {
			continue
		}
		if strings.Contains(lower, term) {
			ctx.Symptoms = append(ctx.Symptoms, term)
		}
	}

	switch {
	case strings.Contains(lower, "sudden") || strings.Contains(lower, "acute") || strings.Contains(lower, "new onset") || strings.Contains(lower, "new-onset"):
		ctx.Timeframe = "acute"
	case strings.Contains(lower, "chronic") || strings.Contains(lower, "long-standing") || strings.Contains(lower, "history of"):
		ctx.Timeframe = "chronic"
	}

	switch {
	case infantRe.MatchString(lower):
		ctx.AgeGroup = "infant"
	case pediatricRe.MatchString(lower):
		ctx.AgeGroup = "pediatric"
	}

	ctx.PriorityWording = priorityRe.MatchString(lower)
	for _, re := range emergencyRes {
		if re.MatchString(lower) {
			ctx.Emergency = true
			break
		}
	}

	ctx.Patterns = e.kb.IdentifyPatterns(ctx.Symptoms, ctx.Vitals)
	if len(ctx.Patterns) > 0 && ctx.Patterns[0].Tier == kb.TierLifeThreat {
		ctx.Emergency = true
	}
	return ctx
}
