package kb

import (
	"regexp"

	"github.com/abhisek/stackfour/internal/vitals"
)

// MedicationClass is the reference record for one drug class.
type MedicationClass struct {
	Name     string
	Examples []string // lowercase generic drug names
	Effects  []string
	Monitor  []vitals.Sign

	// HoldBelow / HoldAbove are hold parameters: do not administer when the
	// measured sign is below (resp. above) the threshold.
	HoldBelow map[vitals.Sign]float64
	HoldAbove map[vitals.Sign]float64

	SideEffects       []string
	Contraindications []string
	Teaching          []string

	classRe *regexp.Regexp // matches the class name as mentioned in text
}

func buildMedications() map[string]MedicationClass {
	meds := []MedicationClass{
		{
			Name:     "beta_blocker",
			Examples: []string{"metoprolol", "atenolol", "propranolol", "carvedilol"},
			Effects:  []string{"decreased heart rate", "decreased blood pressure"},
			Monitor:  []vitals.Sign{vitals.HeartRate, vitals.SystolicBP},
			HoldBelow: map[vitals.Sign]float64{
				vitals.HeartRate:  60,
				vitals.SystolicBP: 90,
			},
			SideEffects:       []string{"bradycardia", "hypotension", "fatigue", "bronchospasm"},
			Contraindications: []string{"heart block", "severe bradycardia", "asthma"},
			classRe:           regexp.MustCompile(`beta[\s-]?blocker|class\s+ii\s+antidysrhythmic`),
		},
		{
			Name:        "ace_inhibitor",
			Examples:    []string{"lisinopril", "enalapril", "captopril"},
			Effects:     []string{"decreased blood pressure", "cardioprotective"},
			Monitor:     []vitals.Sign{vitals.SystolicBP},
			SideEffects: []string{"dry cough", "hyperkalemia", "angioedema"},
			Teaching:    []string{"report persistent cough", "avoid salt substitutes"},
			classRe:     regexp.MustCompile(`ace\s+inhibitor`),
		},
		{
			Name:        "diuretic",
			Examples:    []string{"furosemide", "bumetanide", "spironolactone", "lasix"},
			Effects:     []string{"potassium shift", "volume depletion"},
			Monitor:     []vitals.Sign{vitals.SystolicBP},
			SideEffects: []string{"dehydration", "hypokalemia", "hypotension"},
			classRe:     regexp.MustCompile(`diuretic`),
		},
		{
			Name:        "anticoagulant",
			Examples:    []string{"warfarin", "heparin", "enoxaparin"},
			Effects:     []string{"reduced clotting"},
			SideEffects: []string{"bleeding", "bruising"},
			Teaching:    []string{"report unusual bleeding", "avoid aspirin"},
			classRe:     regexp.MustCompile(`anticoagulant`),
		},
		{
			Name:        "insulin",
			Examples:    []string{"lispro", "aspart", "glargine", "regular insulin"},
			Effects:     []string{"decreased blood glucose"},
			Monitor:     []vitals.Sign{vitals.BloodGlucose},
			SideEffects: []string{"hypoglycemia"},
			Teaching:    []string{"rotate injection sites", "carry quick sugar"},
			classRe:     regexp.MustCompile(`insulin`),
		},
		{
			Name:     "opioid",
			Examples: []string{"morphine", "fentanyl", "hydrocodone", "oxycodone"},
			Effects:  []string{"pain relief", "respiratory depression"},
			Monitor:  []vitals.Sign{vitals.RespiratoryRate},
			HoldBelow: map[vitals.Sign]float64{
				vitals.RespiratoryRate: 12,
			},
			SideEffects: []string{"constipation", "sedation", "respiratory depression"},
			classRe:     regexp.MustCompile(`opioid|narcotic`),
		},
		{
			Name:        "beta_agonist",
			Examples:    []string{"albuterol", "salmeterol", "terbutaline"},
			Effects:     []string{"bronchodilation", "increased heart rate"},
			Monitor:     []vitals.Sign{vitals.HeartRate},
			HoldAbove:   map[vitals.Sign]float64{vitals.HeartRate: 130},
			SideEffects: []string{"tachycardia", "tremor", "palpitations"},
			classRe:     regexp.MustCompile(`beta[\s-]?2?\s?[\s-]?agonist|bronchodilator`),
		},
	}

	byName := make(map[string]MedicationClass, len(meds))
	for _, m := range meds {
		byName[m.Name] = m
	}
	return byName
}
