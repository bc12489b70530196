package scorer

import "regexp"

// stackTier is one tier of the Stack of Four keyword ladder. Tiers are
// checked top down and the first match sets the base priority.
type stackTier struct {
	Name     string
	Priority int
	re       *regexp.Regexp
}

// The four-stack priority ladder: life threats (airway, breathing,
// circulation, disability), then safety, then physiological needs by
// urgency, then nursing-process assessment.
var stackTiers = []stackTier{
	{"AIRWAY", 1000, regexp.MustCompile(`(?i)\b(airway|choking|stridor|obstruction|suction)\b`)},
	{"BREATHING", 990, regexp.MustCompile(`(?i)\b(breathing|oxygen|O2|respiratory|dyspnea|wheeze|fowler|position)\b`)},
	{"CIRCULATION", 980, regexp.MustCompile(`(?i)\b(circulation|pulse|bleeding|hemorrhage|cardiac|compress|pressure)\b`)},
	{"DISABILITY", 970, regexp.MustCompile(`(?i)\b(neuro|LOC|consciousness|pupils|seizure|paralysis|ICP)\b`)},
	{"SAFETY", 800, regexp.MustCompile(`(?i)\b(safety|fall|restraint|bed rail|call bell|infection|isolation|PPE)\b`)},
	{"GLUCOSE", 700, regexp.MustCompile(`(?i)\b(glucose|hypoglycemia|insulin|sugar|sweaty|shaky)\b`)},
	{"ELIMINATION", 680, regexp.MustCompile(`(?i)\b(urinary|retention|catheter|void|bowel)\b`)},
	{"PAIN", 660, regexp.MustCompile(`(?i)\b(pain|hurt|discomfort|analgesic|morphine)\b`)},
	{"ASSESSMENT", 500, regexp.MustCompile(`(?i)\b(assess|check|monitor|measure|vital signs|observe|inspect)\b`)},
}

var assessmentRe = regexp.MustCompile(`(?i)\b(assess|check|monitor|measure)\b`)

var interventionVerbRe = regexp.MustCompile(`(?i)\b(give|administer|perform|begin|start|apply)\b`)

var carbRe = regexp.MustCompile(`(?i)\b(carbohydrate|glucose tablet|orange juice|juice|graham cracker|simple carbohydrates|15\s*g(rams)?)\b`)

// matchStack returns the highest tier whose keyword pattern matches, or nil.
func matchStack(text string) *stackTier {
	for i := range stackTiers {
		if stackTiers[i].re.MatchString(text) {
			return &stackTiers[i]
		}
	}
	return nil
}
