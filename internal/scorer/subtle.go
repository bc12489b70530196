package scorer

import (
	"regexp"
	"strconv"
)

// subtleRule recognizes a priority cue that the stack keyword ladder misses,
// such as an extreme numeric vital embedded in option prose. Exactly one of
// Score and Eval is set: a fixed score fires on any match, while Eval decides
// from the captured numeric groups and scores 1000 when it returns true.
type subtleRule struct {
	Category string
	re       *regexp.Regexp
	Score    int
	Eval     func(nums []int) bool
}

func (r *subtleRule) apply(text string) (int, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	if r.Eval == nil {
		return r.Score, true
	}
	var nums []int
	for _, g := range m[1:] {
		if g == "" {
			continue
		}
		n, err := strconv.Atoi(g)
		if err != nil {
			return 0, false
		}
		nums = append(nums, n)
	}
	if len(nums) == 0 || !r.Eval(nums) {
		return 0, false
	}
	return 1000, true
}

var subtleRules = []subtleRule{
	// Extreme numeric vitals.
	{Category: "extreme_vitals", re: regexp.MustCompile(`(?i)heart rate.*?(\d+)`),
		Eval: func(n []int) bool { return n[0] > 120 || n[0] < 50 }},
	{Category: "extreme_vitals", re: regexp.MustCompile(`(?i)\bHR\b.*?(\d+)`),
		Eval: func(n []int) bool { return n[0] > 120 || n[0] < 50 }},
	{Category: "extreme_vitals", re: regexp.MustCompile(`(?i)(\d+)\s*beats per minute`),
		Eval: func(n []int) bool { return n[0] > 120 || n[0] < 50 }},
	{Category: "extreme_vitals", re: regexp.MustCompile(`(?i)blood pressure.*?(\d+)/(\d+)`),
		Eval: func(n []int) bool { return n[0] < 90 || n[0] > 180 }},
	{Category: "extreme_vitals", re: regexp.MustCompile(`(?i)respiratory rate.*?(\d+)`),
		Eval: func(n []int) bool { return n[0] < 10 || n[0] > 30 }},
	{Category: "extreme_vitals", re: regexp.MustCompile(`(?i)O2 sat.*?(\d+)%?`),
		Eval: func(n []int) bool { return n[0] < 90 }},
	{Category: "extreme_vitals", re: regexp.MustCompile(`(?i)glucose.*?(\d+)`),
		Eval: func(n []int) bool { return n[0] < 70 || n[0] > 400 }},

	// Medication side effects requiring action.
	{Category: "dangerous_side_effects", re: regexp.MustCompile(`(?i)heart rate.*?(13[5-9]|1[4-9]\d|[2-9]\d\d).*palpitations`), Score: 1100},
	{Category: "dangerous_side_effects", re: regexp.MustCompile(`(?i)(tachycardia|palpitations).*heart rate`), Score: 1000},
	{Category: "dangerous_side_effects", re: regexp.MustCompile(`(?i)(bleeding|hemorrhage|blood)`), Score: 1000},
	{Category: "dangerous_side_effects", re: regexp.MustCompile(`(?i)(respiratory depression|RR.*<\s*12)`), Score: 1000},
	{Category: "dangerous_side_effects", re: regexp.MustCompile(`(?i)(anaphylaxis|swelling.*tongue)`), Score: 1200},
	{Category: "dangerous_side_effects", re: regexp.MustCompile(`(?i)throat.*swelling`), Score: 1200},
	{Category: "dangerous_side_effects", re: regexp.MustCompile(`(?i)(chest pain|crushing)`), Score: 1000},
	{Category: "dangerous_side_effects", re: regexp.MustCompile(`(?i)mild.*throat.*irritation`), Score: 100},

	// Suicide and violence risk levels.
	{Category: "high_risk_behaviors", re: regexp.MustCompile(`(?i)(specific plan|detailed plan)`), Score: 1000},
	{Category: "high_risk_behaviors", re: regexp.MustCompile(`(?i)(method.*intent|intent.*method)`), Score: 900},
	{Category: "high_risk_behaviors", re: regexp.MustCompile(`(?i)(previous attempt|prior attempt)`), Score: 800},
	{Category: "high_risk_behaviors", re: regexp.MustCompile(`(?i)command hallucinations`), Score: 900},
	{Category: "high_risk_behaviors", re: regexp.MustCompile(`(?i)(homicidal|harm.*others)`), Score: 1000},

	// Deteriorating conditions.
	{Category: "clinical_deterioration", re: regexp.MustCompile(`(?i)(new onset|sudden|acute).*confusion`), Score: 900},
	{Category: "clinical_deterioration", re: regexp.MustCompile(`(?i)(decreased|absent).*pulse`), Score: 1200},
	{Category: "clinical_deterioration", re: regexp.MustCompile(`(?i)(cyanosis|blue|dusky)`), Score: 1000},
	{Category: "clinical_deterioration", re: regexp.MustCompile(`(?i)unresponsive`), Score: 1200},
	{Category: "clinical_deterioration", re: regexp.MustCompile(`(?i)(severe|increasing|worsening).*pain`), Score: 700},

	// Post-operative complications.
	{Category: "post_op_emergency", re: regexp.MustCompile(`(?i)post.?op.*absent.*pulse`), Score: 1200},
	{Category: "post_op_emergency", re: regexp.MustCompile(`(?i)post.?op.*bleeding`), Score: 1000},
	{Category: "post_op_emergency", re: regexp.MustCompile(`(?i)post.?op.*respiratory distress`), Score: 1000},
	{Category: "post_op_emergency", re: regexp.MustCompile(`(?i)dehiscence|evisceration`), Score: 1100},
	{Category: "post_op_emergency", re: regexp.MustCompile(`(?i)post.?op.*fever.*high`), Score: 800},

	// Assessment findings requiring action.
	{Category: "concerning_assessments", re: regexp.MustCompile(`(?i)pupil.*(fixed|dilated|unequal)`), Score: 900},
	{Category: "concerning_assessments", re: regexp.MustCompile(`(?i)(board-like|rigid).*abdomen`), Score: 900},
	{Category: "concerning_assessments", re: regexp.MustCompile(`(?i)absent.*bowel sounds.*surgery`), Score: 800},
	{Category: "concerning_assessments", re: regexp.MustCompile(`(?i)sudden.*severe.*headache`), Score: 900},
	{Category: "concerning_assessments", re: regexp.MustCompile(`(?i)chest.*crushing.*pressure`), Score: 1000},
}

var normalFindingRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)normal\s+(range|limits|findings?)`),
	regexp.MustCompile(`(?i)within\s+normal`),
	regexp.MustCompile(`(?i)stable\s+vital\s+signs`),
	regexp.MustCompile(`(?i)no\s+distress`),
	regexp.MustCompile(`(?i)alert\s+and\s+oriented`),
	regexp.MustCompile(`(?i)clear\s+lung\s+sounds`),
	regexp.MustCompile(`(?i)regular\s+rhythm`),
	regexp.MustCompile(`(?i)pink\s+and\s+warm`),
}

func isNormalFinding(text string) bool {
	for _, re := range normalFindingRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// subtleScore returns the highest subtle-rule score for the text along with
// the categories that fired, in rule order.
func subtleScore(text string) (int, []string) {
	best := 0
	var fired []string
	seen := map[string]struct{}{}
	for i := range subtleRules {
		s, ok := subtleRules[i].apply(text)
		if !ok {
			continue
		}
		if s > best {
			best = s
		}
		if _, dup := seen[subtleRules[i].Category]; !dup {
			seen[subtleRules[i].Category] = struct{}{}
			fired = append(fired, subtleRules[i].Category)
		}
	}
	return best, fired
}
