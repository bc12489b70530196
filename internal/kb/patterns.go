package kb

import (
	"regexp"
	"strings"

	"github.com/abhisek/stackfour/internal/vitals"
)

// Pattern priority tiers. Life-threat patterns outrank urgent ones when the
// solver redirects toward a matched intervention.
const (
	TierLifeThreat = "life_threat"
	TierUrgent     = "urgent"
)

// ClinicalPattern is a named deterioration pattern: the symptom cluster that
// identifies it, an optional vital-sign trigger, and the intervention the
// exam answer is expected to name.
type ClinicalPattern struct {
	Name         string
	Tier         string
	Symptoms     []string // lowercase fragments matched by substring
	Intervention string   // human-readable first intervention

	// trigger, when set, decides the match from measured vitals alone and
	// takes precedence over symptom counting.
	trigger func(vitals.Measurements) bool

	// interventionRe matches option text that carries out the intervention;
	// symptomRe matches option text that states one of the pattern's signs.
	interventionRe *regexp.Regexp
	symptomRe      *regexp.Regexp
}

// MatchesSymptom reports whether the option text states a sign of this
// pattern.
func (p *ClinicalPattern) MatchesSymptom(optionText string) bool {
	if p.symptomRe == nil {
		return false
	}
	return p.symptomRe.MatchString(strings.ToLower(optionText))
}

// MatchesIntervention reports whether the option text performs this
// pattern's expected intervention.
func (p *ClinicalPattern) MatchesIntervention(optionText string) bool {
	if p.interventionRe == nil {
		return false
	}
	return p.interventionRe.MatchString(strings.ToLower(optionText))
}

func buildPatterns() []ClinicalPattern {
	return []ClinicalPattern{
		{
			Name:         "hypoglycemia",
			Tier:         TierLifeThreat,
			Symptoms:     []string{"shaky", "sweaty", "diaphore", "confused", "hungry", "irritable"},
			Intervention: "give 15 g fast-acting carbohydrate, recheck in 15 minutes",
			trigger: func(m vitals.Measurements) bool {
				g, ok := m[vitals.BloodGlucose]
				return ok && g < 70
			},
			interventionRe: regexp.MustCompile(`orange juice|glucose (tablet|gel)|carbohydrate|graham cracker|\b15\s*g`),
			symptomRe:      regexp.MustCompile(`shak|sweat|diaphore|confus|hungr|irritab|trembl`),
		},
		{
			Name:         "sepsis",
			Tier:         TierLifeThreat,
			Symptoms:     []string{"hypotension", "altered mental status", "decreased urine output", "chills"},
			Intervention: "obtain cultures, start fluids and antibiotics",
			trigger: func(m vitals.Measurements) bool {
				sirs := 0
				if t, ok := m[vitals.TemperatureC]; ok && (t < 36 || t > 38) {
					sirs++
				}
				if hr, ok := m[vitals.HeartRate]; ok && hr > 90 {
					sirs++
				}
				if rr, ok := m[vitals.RespiratoryRate]; ok && rr > 20 {
					sirs++
				}
				return sirs >= 2
			},
			interventionRe: regexp.MustCompile(`culture|antibiotic|fluid bolus|sepsis bundle|lactate`),
			symptomRe:      regexp.MustCompile(`hypotens|altered mental|urine output|chills|rigors`),
		},
		{
			Name:           "myocardial_infarction",
			Tier:           TierLifeThreat,
			Symptoms:       []string{"chest pain", "radiat", "diaphoresis", "nausea", "crushing"},
			Intervention:   "oxygen, aspirin, nitroglycerin, morphine",
			interventionRe: regexp.MustCompile(`aspirin|nitroglycerin|12[\s-]?lead|ecg|ekg|oxygen`),
			symptomRe:      regexp.MustCompile(`chest pain|radiat|diaphore|crushing|nausea`),
		},
		{
			Name:           "stroke",
			Tier:           TierLifeThreat,
			Symptoms:       []string{"facial droop", "arm weakness", "slurred speech", "speech difficulty"},
			Intervention:   "FAST assessment, note time of onset, prepare for CT",
			interventionRe: regexp.MustCompile(`time of onset|last known well|ct scan|neuro(logic)? (check|assessment)|fast`),
			symptomRe:      regexp.MustCompile(`droop|weakness|slurred|speech`),
		},
		{
			Name:           "gi_bleed",
			Tier:           TierLifeThreat,
			Symptoms:       []string{"hematemesis", "coffee ground", "melena", "hematochezia", "bright red blood"},
			Intervention:   "large-bore IV access, type and crossmatch, NPO",
			interventionRe: regexp.MustCompile(`large[\s-]?bore|type and cross|iv access|npo`),
			symptomRe:      regexp.MustCompile(`hemateme|coffee ground|melena|hematochezia|bright red`),
		},
		{
			Name:     "hyperglycemia",
			Tier:     TierUrgent,
			Symptoms: []string{"polyuria", "polydipsia", "polyphagia", "fruity breath", "kussmaul"},
			trigger: func(m vitals.Measurements) bool {
				g, ok := m[vitals.BloodGlucose]
				return ok && g > 180
			},
			Intervention:   "insulin per protocol, check ketones",
			interventionRe: regexp.MustCompile(`insulin|ketone`),
			symptomRe:      regexp.MustCompile(`polyuria|polydipsia|polyphagia|fruity|kussmaul|dehydrat`),
		},
	}
}

// PatternInText returns the first clinical pattern whose name is spelled
// out in the text, or nil. Underscored names match their spaced form too.
func (k *KnowledgeBase) PatternInText(text string) *ClinicalPattern {
	lower := strings.ToLower(text)
	for i := range k.patterns {
		name := k.patterns[i].Name
		if strings.Contains(lower, name) || strings.Contains(lower, strings.ReplaceAll(name, "_", " ")) {
			return &k.patterns[i]
		}
	}
	return nil
}

// IdentifyPatterns returns the clinical patterns consistent with the given
// symptoms and measurements, life-threat tier first. A vital-sign trigger
// decides on its own; otherwise at least half of a pattern's symptom cluster
// must appear.
func (k *KnowledgeBase) IdentifyPatterns(symptoms []string, m vitals.Measurements) []ClinicalPattern {
	var matched []ClinicalPattern
	for _, p := range k.patterns {
		if p.trigger != nil {
			if p.trigger(m) {
				matched = append(matched, p)
			}
			continue
		}
		hits := 0
		for _, s := range symptoms {
			lower := strings.ToLower(s)
			for _, ps := range p.Symptoms {
				if strings.Contains(lower, ps) {
					hits++
					break
				}
			}
		}
		if hits*2 >= len(p.Symptoms) {
			matched = append(matched, p)
		}
	}
	// Stable ordering: life-threat ahead of urgent, declaration order within.
	var ranked []ClinicalPattern
	for _, p := range matched {
		if p.Tier == TierLifeThreat {
			ranked = append(ranked, p)
		}
	}
	for _, p := range matched {
		if p.Tier != TierLifeThreat {
			ranked = append(ranked, p)
		}
	}
	return ranked
}
