// Package kb holds the static clinical reference data the scorer consults:
// normal ranges per vital sign, medication-class effects and hold parameters,
// named deterioration patterns, contraindication pairs, and patient-teaching
// vocabulary.
//
// A KnowledgeBase is built once with New and treated as read-only afterwards.
// It is safe for concurrent use.
package kb

import (
	"sort"
	"strings"

	"github.com/abhisek/stackfour/internal/vitals"
)

// KnowledgeBase is the process-wide clinical reference. Construct with New
// and pass by reference into the scorer; never mutate after construction.
type KnowledgeBase struct {
	ranges      map[vitals.Sign]RangeSpec
	medications map[string]MedicationClass
	patterns    []ClinicalPattern
	contra      []ContraindicationRule
	teaching    teachingVocabulary
}

// New builds the knowledge base from the built-in reference data.
func New() *KnowledgeBase {
	return &KnowledgeBase{
		ranges:      buildRanges(),
		medications: buildMedications(),
		patterns:    buildPatterns(),
		contra:      buildContraindications(),
		teaching:    buildTeaching(),
	}
}

// PatientContext narrows range selection to a population or comorbidity
// variant (e.g. the COPD oxygen-saturation target).
type PatientContext struct {
	AgeGroup   string   // "adult", "pediatric", "infant"; empty means adult
	Conditions []string // canonical condition names, lowercase
}

// HasCondition reports whether the context carries the named condition.
func (c *PatientContext) HasCondition(name string) bool {
	if c == nil {
		return false
	}
	for _, cond := range c.Conditions {
		if cond == name {
			return true
		}
	}
	return false
}

// Medication returns the record for a medication class. Unknown classes
// return a zero record and false, never an error.
func (k *KnowledgeBase) Medication(class string) (MedicationClass, bool) {
	m, ok := k.medications[class]
	return m, ok
}

// MedicationClasses returns all known class names in stable order.
func (k *KnowledgeBase) MedicationClasses() []string {
	names := make([]string, 0, len(k.medications))
	for name := range k.medications {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MatchMedications returns the medication classes whose class pattern or any
// example drug name appears in text.
func (k *KnowledgeBase) MatchMedications(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, name := range k.MedicationClasses() {
		med := k.medications[name]
		if med.classRe != nil && med.classRe.MatchString(lower) {
			matched = append(matched, name)
			continue
		}
		for _, drug := range med.Examples {
			if strings.Contains(lower, drug) {
				matched = append(matched, name)
				break
			}
		}
	}
	return matched
}

// SymptomVocabulary returns every symptom name referenced by any clinical
// pattern, deduplicated, for the context extractor to scan with.
func (k *KnowledgeBase) SymptomVocabulary() []string {
	seen := map[string]struct{}{}
	var symptoms []string
	for _, p := range k.patterns {
		for _, s := range p.Symptoms {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				symptoms = append(symptoms, s)
			}
		}
	}
	sort.Strings(symptoms)
	return symptoms
}
