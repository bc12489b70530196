// Package exceptions detects question framings that deviate from the
// standard priority ladder (EXCEPT questions, already-completed actions,
// chronic-versus-new comparisons, special care contexts) and applies the
// category-specific override to a base prediction.
package exceptions

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/abhisek/stackfour/internal/question"
)

// Category names one exception trigger.
type Category string

const (
	CategoryTimeSequence    Category = "time_sequence"
	CategoryExclusion       Category = "exclusion"
	CategoryChronicVsNew    Category = "chronic_vs_new"
	CategoryContextSpecific Category = "context_specific"
	CategoryRedFlag         Category = "red_flag"
)

// Fixed detection confidences per category. Ties in confidence resolve by
// categoryRank order.
const (
	confidenceTimeSequence    = 0.9
	confidenceExclusion       = 0.95
	confidenceChronicVsNew    = 0.85
	confidenceContextSpecific = 0.8
	confidenceRedFlag         = 0.7
)

func categoryRank(c Category) int {
	switch c {
	case CategoryTimeSequence:
		return 0
	case CategoryExclusion:
		return 1
	case CategoryChronicVsNew:
		return 2
	case CategoryContextSpecific:
		return 3
	}
	return 4
}

// Detection is one fired exception category.
type Detection struct {
	Category   Category
	Confidence float64
	Reasoning  string
	// Domains carries the matched special-context domains (psych,
	// pediatric, cultural, legal) or the red-flag phrases.
	Domains []string
}

// Tuned thresholds for the exclusion and chronic-versus-new overrides.
// These are empirical constants, kept configurable rather than derived.
const (
	harmKeywordScore    = 10
	harmAggressiveScore = 5
	newLanguageScore    = 10
	newAssessmentScore  = 5
	newScoreThreshold   = 5
)

var timeSequenceRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(after|following|has already|next|then|completed|established)\b`),
	regexp.MustCompile(`(?i)\b(post-|status post|s/p)\b`),
	regexp.MustCompile(`(?i)\b(which action.*next|what.*do next)\b`),
}

var completedActionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)after (?:establishing|securing|checking) (?:the )?(airway|breathing|circulation)`),
	regexp.MustCompile(`(?i)has already (?:assessed|checked|completed|given)`),
	regexp.MustCompile(`(?i)following (?:initial|immediate) (assessment|intervention)`),
}

var exclusionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(except|avoid|not appropriate|contraindicated)\b`),
	regexp.MustCompile(`(?i)\b(all.*except|which.*not|inappropriate)\b`),
	regexp.MustCompile(`(?i)\b(should not|must not|never)\b`),
}

var chronicRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(usual|chronic|long-standing|baseline|controlled|stable)\b`),
	regexp.MustCompile(`(?i)\b(history of|diagnosed with|known)\b`),
	regexp.MustCompile(`(?i)\bfor \d+ (years|months|weeks)\b`),
}

var newRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(new onset|sudden|acute|just|unexpected)\b`),
	regexp.MustCompile(`(?i)\b(change in|different from|never had)\b`),
	regexp.MustCompile(`(?i)\b(started|began|developed)\b`),
}

var contextRes = map[string]*regexp.Regexp{
	"psych":     regexp.MustCompile(`(?i)\b(psych|mental health|behavioral|psychiatric)\b`),
	"pediatric": regexp.MustCompile(`(?i)\b(infant|child|pediatric|newborn|adolescent)\b`),
	"cultural":  regexp.MustCompile(`(?i)\b(cultural|religious|spiritual|belief)\b`),
	"legal":     regexp.MustCompile(`(?i)\b(legal|ethical|consent|refuse|autonomy|rights)\b`),
}

var contextReasonings = map[string]string{
	"psych":     "psychological safety may override physiological priorities",
	"pediatric": "developmental and family considerations affect priorities",
	"cultural":  "cultural competence may override clinical protocols",
	"legal":     "legal and ethical requirements may supersede clinical judgment",
}

var redFlagRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(after.*completed|following.*established)\b`),
	regexp.MustCompile(`(?i)\b(all.*except|which.*avoid)\b`),
	regexp.MustCompile(`(?i)\b(psych unit|cultural consideration|legal requirement)\b`),
	regexp.MustCompile(`(?i)\b(chronic.*stable|baseline.*normal)\b`),
}

var harmfulRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(force|restrain|ignore|delay|withhold)\b`),
	regexp.MustCompile(`(?i)\b(increase.*dose|double.*medication)\b`),
	regexp.MustCompile(`(?i)\b(leave.*alone|do nothing|wait)\b`),
	regexp.MustCompile(`(?i)\b(tell.*not to worry|dismiss)\b`),
}

var aggressiveWords = []string{"immediately", "stat", "emergency"}

var newAssessmentRe = regexp.MustCompile(`(?i)\b(assess|evaluat|check|investigat)\b`)

var psychSafetyRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(suicid|self-harm|harm.*self|safety|one-to-one|constant observation)\b`),
	regexp.MustCompile(`(?i)\b(therapeutic|de-escalat|calm|rapport)\b`),
}

var legalRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(respect|autonomy|consent|right|ethic)\b`),
	regexp.MustCompile(`(?i)\b(document|inform|explain)\b`),
}

// Handler detects and applies exception framings. It holds no state and is
// safe for concurrent use.
type Handler struct{}

// NewHandler returns a Handler.
func NewHandler() *Handler { return &Handler{} }

// Detect runs all five trigger categories against the question. Red flags
// are reported only when no other category fired.
func (h *Handler) Detect(q *question.Question) []Detection {
	var out []Detection

	if matchAny(timeSequenceRes, q.Stem) {
		if actions := completedActions(q.Stem); len(actions) > 0 {
			out = append(out, Detection{
				Category:   CategoryTimeSequence,
				Confidence: confidenceTimeSequence,
				Reasoning:  fmt.Sprintf("actions already completed: %s; move to the next priority", strings.Join(actions, ", ")),
			})
		}
	}

	if matchAny(exclusionRes, q.Stem) {
		out = append(out, Detection{
			Category:   CategoryExclusion,
			Confidence: confidenceExclusion,
			Reasoning:  "EXCEPT framing detected; the answer is the inappropriate option",
		})
	}

	chronic, fresh := 0, 0
	texts := append([]string{q.Stem}, optionTexts(q)...)
	for _, t := range texts {
		for _, re := range chronicRes {
			if re.MatchString(t) {
				chronic++
			}
		}
		for _, re := range newRes {
			if re.MatchString(t) {
				fresh++
			}
		}
	}
	if chronic > 0 && fresh > 0 {
		out = append(out, Detection{
			Category:   CategoryChronicVsNew,
			Confidence: confidenceChronicVsNew,
			Reasoning:  "both chronic and new findings present; the acute change takes priority",
		})
	}

	var domains []string
	for _, name := range []string{"psych", "pediatric", "cultural", "legal"} {
		if contextRes[name].MatchString(q.Stem) {
			domains = append(domains, name)
		}
	}
	if len(domains) > 0 {
		reasons := make([]string, len(domains))
		for i, d := range domains {
			reasons[i] = contextReasonings[d]
		}
		out = append(out, Detection{
			Category:   CategoryContextSpecific,
			Confidence: confidenceContextSpecific,
			Reasoning:  strings.Join(reasons, "; "),
			Domains:    domains,
		})
	}

	if len(out) == 0 {
		var flags []string
		for _, re := range redFlagRes {
			if re.MatchString(q.Stem) {
				flags = append(flags, re.String())
			}
		}
		if len(flags) > 0 {
			out = append(out, Detection{
				Category:   CategoryRedFlag,
				Confidence: confidenceRedFlag,
				Reasoning:  "cautionary phrasing detected, no specific override",
				Domains:    flags,
			})
		}
	}

	return out
}

// Apply selects the highest-confidence detection and runs its override
// against the base prediction. The returned detection is the one applied,
// or nil when none was detected. time_sequence and red_flag are detection
// only and return the base prediction unchanged.
func (h *Handler) Apply(q *question.Question, base question.AnswerSet, detections []Detection) (question.AnswerSet, *Detection) {
	if len(detections) == 0 {
		return base, nil
	}
	sorted := make([]Detection, len(detections))
	copy(sorted, detections)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Confidence != sorted[j].Confidence {
			return sorted[i].Confidence > sorted[j].Confidence
		}
		return categoryRank(sorted[i].Category) < categoryRank(sorted[j].Category)
	})
	primary := sorted[0]

	switch primary.Category {
	case CategoryExclusion:
		return h.applyExclusion(q, base), &primary
	case CategoryChronicVsNew:
		return h.applyChronicVsNew(q, base), &primary
	case CategoryContextSpecific:
		return h.applyContext(q, base, primary.Domains), &primary
	}
	return base, &primary
}

// applyExclusion inverts the selection: score each option for harm and
// return the most harmful one.
func (h *Handler) applyExclusion(q *question.Question, base question.AnswerSet) question.AnswerSet {
	bestKey, bestScore := "", 0
	for _, key := range q.OptionKeys() {
		text := q.Options[key]
		score := 0
		for _, re := range harmfulRes {
			if re.MatchString(text) {
				score += harmKeywordScore
			}
		}
		lower := strings.ToLower(text)
		for _, w := range aggressiveWords {
			if strings.Contains(lower, w) {
				score += harmAggressiveScore
				break
			}
		}
		if score > bestScore {
			bestKey, bestScore = key, score
		}
	}
	if bestScore > 0 {
		return question.NewAnswerSet(bestKey)
	}
	// No harm cue anywhere: fall back to the first option the base
	// prediction did not pick.
	for _, key := range q.OptionKeys() {
		if !base.Contains(key) {
			return question.NewAnswerSet(key)
		}
	}
	return base
}

// applyChronicVsNew re-scores for acute language and assessment verbs and
// overrides only when the top option clears the tuned threshold.
func (h *Handler) applyChronicVsNew(q *question.Question, base question.AnswerSet) question.AnswerSet {
	bestKey, bestScore := "", 0
	for _, key := range q.OptionKeys() {
		text := q.Options[key]
		score := 0
		for _, re := range newRes {
			if re.MatchString(text) {
				score += newLanguageScore
				break
			}
		}
		if newAssessmentRe.MatchString(text) {
			score += newAssessmentScore
		}
		if score > bestScore {
			bestKey, bestScore = key, score
		}
	}
	if bestScore > newScoreThreshold {
		return question.NewAnswerSet(bestKey)
	}
	return base
}

// applyContext handles the psych and legal domains with a first-match
// override; pediatric and cultural detections carry no override.
func (h *Handler) applyContext(q *question.Question, base question.AnswerSet, domains []string) question.AnswerSet {
	for _, d := range domains {
		switch d {
		case "psych":
			for _, key := range q.OptionKeys() {
				if matchAny(psychSafetyRes, q.Options[key]) {
					return question.NewAnswerSet(key)
				}
			}
		case "legal":
			for _, key := range q.OptionKeys() {
				if matchAny(legalRes, q.Options[key]) {
					return question.NewAnswerSet(key)
				}
			}
		}
	}
	return base
}

func completedActions(stem string) []string {
	var actions []string
	for _, re := range completedActionRes {
		m := re.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			actions = append(actions, strings.ToLower(m[1]))
		} else {
			actions = append(actions, strings.ToLower(m[0]))
		}
	}
	return actions
}

func matchAny(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func optionTexts(q *question.Question) []string {
	texts := make([]string, 0, len(q.Options))
	for _, key := range q.OptionKeys() {
		texts = append(texts, q.Options[key])
	}
	return texts
}
