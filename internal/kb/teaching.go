package kb

import (
	"regexp"
	"strings"
)

// teachingVocabulary classifies patient-teaching statements. A statement that
// matches a negative pattern is always wrong; a positive pattern marks it
// correct; action-word statements are accepted as reasonable defaults.
type teachingVocabulary struct {
	stemIndicators []string
	negative       []*regexp.Regexp
	positive       []*regexp.Regexp
	actionWords    []string
}

func buildTeaching() teachingVocabulary {
	return teachingVocabulary{
		stemIndicators: []string{
			"teaching", "understanding", "indicates", "effective",
			"needs further", "reinforce", "demonstrate",
		},
		negative: []*regexp.Regexp{
			regexp.MustCompile(`\bskip\s+(my\s+)?(medication|insulin|doses?|diuretic)\b`),
			regexp.MustCompile(`\breuse\s+needles\b`),
			regexp.MustCompile(`\bincrease\s+(salt|sodium)\b`),
			regexp.MustCompile(`\bonly\s+if\s+(i\s+)?feel\s+(good|better|fine)\b`),
			regexp.MustCompile(`\bsame\s+spot\b`),
			regexp.MustCompile(`\ball\s+confused\s+patients\b`),
			regexp.MustCompile(`\bat\s+all\s+times\b`),
		},
		positive: []*regexp.Regexp{
			regexp.MustCompile(`\b(i\s+)?will\s+(weigh|check|monitor|assess|take|follow|limit|store|rotate)\b`),
			regexp.MustCompile(`\b(i\s+)?should\s+(report|notify|call|include)\b`),
			regexp.MustCompile(`\b(daily|regularly|always|each time)\b`),
			regexp.MustCompile(`\broom\s+temperature\b`),
			regexp.MustCompile(`\bas\s+prescribed\b`),
			regexp.MustCompile(`\bweight\s+gain\s+of\s+\d+\s+pounds\b`),
		},
		actionWords: []string{"keep", "ensure", "provide", "maintain", "position"},
	}
}

// IsTeachingStem reports whether the stem asks about patient understanding
// rather than a clinical priority.
func (k *KnowledgeBase) IsTeachingStem(stem string) bool {
	lower := strings.ToLower(stem)
	for _, ind := range k.teaching.stemIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// CorrectTeachingPoint reports whether an option reads as a correct teaching
// statement. Negative patterns veto, positive patterns confirm, and plain
// care-action statements pass as a fallback.
func (k *KnowledgeBase) CorrectTeachingPoint(text string) bool {
	lower := strings.ToLower(text)
	for _, re := range k.teaching.negative {
		if re.MatchString(lower) {
			return false
		}
	}
	for _, re := range k.teaching.positive {
		if re.MatchString(lower) {
			return true
		}
	}
	for _, w := range k.teaching.actionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
