package kb

import "strings"

// ContraindicationRule flags an option as unsafe. When stem is empty the rule
// looks at the option text alone (e.g. doubling a missed dose is never right
// regardless of context).
type ContraindicationRule struct {
	stem   []string // any of these in the stem, lowercase
	option []string // all of these in the option text, lowercase
	Reason string
}

func buildContraindications() []ContraindicationRule {
	return []ContraindicationRule{
		{stem: []string{"copd"}, option: []string{"high flow oxygen"}, Reason: "high-flow oxygen suppresses the respiratory drive in COPD"},
		{stem: []string{"copd"}, option: []string{"high-flow oxygen"}, Reason: "high-flow oxygen suppresses the respiratory drive in COPD"},
		{stem: []string{"head injury", "increased icp"}, option: []string{"sedat"}, Reason: "sedation masks neurologic changes with raised ICP"},
		{stem: []string{"bleeding", "hemorrhage"}, option: []string{"heparin"}, Reason: "anticoagulant worsens active bleeding"},
		{stem: []string{"bleeding", "hemorrhage"}, option: []string{"warfarin"}, Reason: "anticoagulant worsens active bleeding"},
		{stem: []string{"hyperkalemia"}, option: []string{"potassium"}, Reason: "potassium administration with an already elevated level"},
		{stem: []string{"heart failure", "chf"}, option: []string{"high sodium"}, Reason: "sodium load worsens fluid overload"},
		{stem: []string{"heart failure", "chf"}, option: []string{"high-sodium"}, Reason: "sodium load worsens fluid overload"},
		{stem: []string{"renal failure"}, option: []string{"nsaid"}, Reason: "NSAIDs are nephrotoxic"},
		{stem: []string{"kidney disease"}, option: []string{"contrast"}, Reason: "contrast media are nephrotoxic"},
		{option: []string{"skip", "insulin"}, Reason: "skipping insulin doses"},
		{option: []string{"skip", "medication"}, Reason: "skipping medication doses"},
		{option: []string{"stop", "medication", "feel better"}, Reason: "stopping medication when symptoms resolve"},
		{option: []string{"double", "dose"}, Reason: "doubling a dose"},
		{option: []string{"only if feel"}, Reason: "taking medication only when symptomatic"},
	}
}

// Contraindicated reports whether the option text is unsafe given the stem,
// with the reason for the first rule that fires.
func (k *KnowledgeBase) Contraindicated(optionText, stemText string) (bool, string) {
	opt := strings.ToLower(optionText)
	stem := strings.ToLower(stemText)
	for _, r := range k.contra {
		if len(r.stem) > 0 {
			hit := false
			for _, s := range r.stem {
				if strings.Contains(stem, s) {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
		}
		all := true
		for _, o := range r.option {
			if !strings.Contains(opt, o) {
				all = false
				break
			}
		}
		if all {
			return true, r.Reason
		}
	}
	return false, ""
}
