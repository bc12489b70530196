package kb

import (
	"strings"
	"testing"

	"github.com/abhisek/stackfour/internal/vitals"
)

func TestClassifyValue_Normal(t *testing.T) {
	k := New()
	class, reason := k.ClassifyValue(vitals.HeartRate, 72, nil)
	if class != ClassNormal {
		t.Errorf("got class %v, want normal", class)
	}
	if !strings.Contains(reason, "within normal range") {
		t.Errorf("got reason %q, want a within-normal-range reason", reason)
	}
}

func TestClassifyValue_CriticalBoundsInclusive(t *testing.T) {
	k := New()
	tests := []struct {
		name  string
		sign  vitals.Sign
		value float64
		want  RangeClass
	}{
		{"hr at critical low", vitals.HeartRate, 50, ClassCritical},
		{"hr at critical high", vitals.HeartRate, 150, ClassCritical},
		{"hr just inside", vitals.HeartRate, 51, ClassAbnormal},
		{"sbp at critical low", vitals.SystolicBP, 80, ClassCritical},
		{"glucose at critical low", vitals.BloodGlucose, 54, ClassCritical},
		{"o2 at critical low", vitals.OxygenSaturation, 90, ClassCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, _ := k.ClassifyValue(tt.sign, tt.value, nil)
			if class != tt.want {
				t.Errorf("got %v, want %v", class, tt.want)
			}
		})
	}
}

func TestClassifyValue_ConditionVariantBeatsAgeGroup(t *testing.T) {
	k := New()
	ctx := &PatientContext{AgeGroup: "adult", Conditions: []string{"copd"}}
	class, _ := k.ClassifyValue(vitals.OxygenSaturation, 90, ctx)
	if class != ClassCritical {
		// 90 is inside the COPD target but still at the critical bound,
		// and critical always wins.
		t.Errorf("got class %v, want critical", class)
	}
	class, _ = k.ClassifyValue(vitals.OxygenSaturation, 91, ctx)
	if class != ClassNormal {
		t.Errorf("got class %v for sat 91 with copd, want normal", class)
	}
	class, _ = k.ClassifyValue(vitals.OxygenSaturation, 91, nil)
	if class != ClassAbnormal {
		t.Errorf("got class %v for sat 91 without copd, want abnormal", class)
	}
}

func TestClassifyValue_PediatricHeartRate(t *testing.T) {
	k := New()
	ctx := &PatientContext{AgeGroup: "pediatric"}
	class, _ := k.ClassifyValue(vitals.HeartRate, 110, ctx)
	if class != ClassNormal {
		t.Errorf("got class %v, want normal for pediatric HR 110", class)
	}
	class, _ = k.ClassifyValue(vitals.HeartRate, 110, nil)
	if class != ClassAbnormal {
		t.Errorf("got class %v, want abnormal for adult HR 110", class)
	}
}

func TestClassifyValue_UnknownSign(t *testing.T) {
	k := New()
	class, _ := k.ClassifyValue(vitals.Sign("serum_unobtainium"), 1, nil)
	if class != ClassUnknown {
		t.Errorf("got class %v, want unknown", class)
	}
}

func TestMatchMedications(t *testing.T) {
	k := New()
	tests := []struct {
		text string
		want []string
	}{
		{"The nurse prepares to give metoprolol.", []string{"beta_blocker"}},
		{"Client takes a beta-blocker daily.", []string{"beta_blocker"}},
		{"Warfarin and furosemide are prescribed.", []string{"anticoagulant", "diuretic"}},
		{"No medications mentioned here.", nil},
	}
	for _, tt := range tests {
		got := k.MatchMedications(tt.text)
		if len(got) != len(tt.want) {
			t.Errorf("MatchMedications(%q) = %v, want %v", tt.text, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("MatchMedications(%q) = %v, want %v", tt.text, got, tt.want)
				break
			}
		}
	}
}

func TestMedicationHoldParameters(t *testing.T) {
	k := New()
	m, ok := k.Medication("beta_blocker")
	if !ok {
		t.Fatal("beta_blocker missing from knowledge base")
	}
	if m.HoldBelow[vitals.HeartRate] != 60 {
		t.Errorf("got HR hold %v, want 60", m.HoldBelow[vitals.HeartRate])
	}
	if m.HoldBelow[vitals.SystolicBP] != 90 {
		t.Errorf("got SBP hold %v, want 90", m.HoldBelow[vitals.SystolicBP])
	}
	op, ok := k.Medication("opioid")
	if !ok {
		t.Fatal("opioid missing from knowledge base")
	}
	if op.HoldBelow[vitals.RespiratoryRate] != 12 {
		t.Errorf("got RR hold %v, want 12", op.HoldBelow[vitals.RespiratoryRate])
	}
}

func TestIdentifyPatterns_HypoglycemiaTrigger(t *testing.T) {
	k := New()
	m := vitals.Measurements{vitals.BloodGlucose: 52}
	got := k.IdentifyPatterns(nil, m)
	if len(got) != 1 || got[0].Name != "hypoglycemia" {
		t.Fatalf("got %v, want hypoglycemia only", names(got))
	}
}

func TestIdentifyPatterns_GlucoseAt70NotHypoglycemia(t *testing.T) {
	k := New()
	m := vitals.Measurements{vitals.BloodGlucose: 70}
	for _, p := range k.IdentifyPatterns(nil, m) {
		if p.Name == "hypoglycemia" {
			t.Error("glucose 70 should not trigger hypoglycemia")
		}
	}
}

func TestIdentifyPatterns_SepsisSIRS(t *testing.T) {
	k := New()
	two := vitals.Measurements{
		vitals.TemperatureC: 38.5,
		vitals.HeartRate:    112,
	}
	got := k.IdentifyPatterns(nil, two)
	if len(got) != 1 || got[0].Name != "sepsis" {
		t.Fatalf("two SIRS criteria: got %v, want sepsis", names(got))
	}

	one := vitals.Measurements{vitals.HeartRate: 112}
	for _, p := range k.IdentifyPatterns(nil, one) {
		if p.Name == "sepsis" {
			t.Error("one SIRS criterion should not trigger sepsis")
		}
	}
}

func TestIdentifyPatterns_SymptomMajority(t *testing.T) {
	k := New()
	got := k.IdentifyPatterns([]string{"chest pain", "diaphoresis", "nausea"}, nil)
	found := false
	for _, p := range got {
		if p.Name == "myocardial_infarction" {
			found = true
		}
	}
	if !found {
		t.Errorf("got %v, want myocardial_infarction included", names(got))
	}

	got = k.IdentifyPatterns([]string{"nausea"}, nil)
	for _, p := range got {
		if p.Name == "myocardial_infarction" {
			t.Error("single symptom should not reach the half-cluster threshold")
		}
	}
}

func TestIdentifyPatterns_LifeThreatFirst(t *testing.T) {
	k := New()
	m := vitals.Measurements{vitals.BloodGlucose: 250}
	got := k.IdentifyPatterns([]string{"chest pain", "diaphoresis", "radiating"}, m)
	if len(got) < 2 {
		t.Fatalf("got %v, want at least two patterns", names(got))
	}
	if got[0].Tier != TierLifeThreat {
		t.Errorf("first pattern tier = %q, want life_threat", got[0].Tier)
	}
	if got[len(got)-1].Name != "hyperglycemia" {
		t.Errorf("last pattern = %q, want hyperglycemia ranked after life threats", got[len(got)-1].Name)
	}
}

func TestMatchesIntervention(t *testing.T) {
	k := New()
	var hypo *ClinicalPattern
	for i := range k.patterns {
		if k.patterns[i].Name == "hypoglycemia" {
			hypo = &k.patterns[i]
		}
	}
	if hypo == nil {
		t.Fatal("hypoglycemia pattern missing")
	}
	if !hypo.MatchesIntervention("Give the client 4 oz of orange juice") {
		t.Error("orange juice should match the hypoglycemia intervention")
	}
	if hypo.MatchesIntervention("Document the findings") {
		t.Error("documentation should not match the hypoglycemia intervention")
	}
}

func TestContraindicated(t *testing.T) {
	k := New()
	tests := []struct {
		name   string
		option string
		stem   string
		want   bool
	}{
		{"copd high flow", "Apply high flow oxygen at 15 L/min", "A client with COPD reports dyspnea.", true},
		{"high flow without copd", "Apply high flow oxygen at 15 L/min", "A client with pneumonia reports dyspnea.", false},
		{"head injury sedation", "Administer the prescribed sedative", "A client with a head injury is restless.", true},
		{"bleeding heparin", "Give the scheduled heparin dose", "A client has active GI bleeding.", true},
		{"double dose anywhere", "Take a double dose if you miss one", "The nurse reviews medication teaching.", true},
		{"skip insulin anywhere", "I will skip my insulin when I am not eating", "Which statement indicates understanding?", true},
		{"plain assessment", "Assess the client's lung sounds", "A client with COPD reports dyspnea.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := k.Contraindicated(tt.option, tt.stem)
			if got != tt.want {
				t.Errorf("got %v (%q), want %v", got, reason, tt.want)
			}
			if got && reason == "" {
				t.Error("contraindicated result must carry a reason")
			}
		})
	}
}

func TestIsTeachingStem(t *testing.T) {
	k := New()
	if !k.IsTeachingStem("Which statement indicates the teaching was effective?") {
		t.Error("teaching stem not recognized")
	}
	if k.IsTeachingStem("Which client should the nurse assess first?") {
		t.Error("priority stem misread as teaching")
	}
}

func TestCorrectTeachingPoint(t *testing.T) {
	k := New()
	tests := []struct {
		text string
		want bool
	}{
		{"I will weigh myself every morning", true},
		{"I should report a weight gain of 3 pounds", true},
		{"I will skip my diuretic on golf days", false},
		{"I can reuse needles to save money", false},
		{"I will take it only if I feel good", false},
		{"Store the insulin at room temperature", true},
	}
	for _, tt := range tests {
		if got := k.CorrectTeachingPoint(tt.text); got != tt.want {
			t.Errorf("CorrectTeachingPoint(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func names(ps []ClinicalPattern) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}
