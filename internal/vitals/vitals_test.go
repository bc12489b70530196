package vitals

import "testing"

func TestExtract_Formats(t *testing.T) {
	cases := []struct {
		name string
		text string
		sign Sign
		want float64
	}{
		{"labeled heart rate", "HR 132, irregular", HeartRate, 132},
		{"heart rate of", "heart rate of 48 on telemetry", HeartRate, 48},
		{"bpm suffix", "pulse measured at 120 bpm", HeartRate, 120},
		{"respiratory rate", "RR: 28 with accessory muscle use", RespiratoryRate, 28},
		{"breaths per minute", "breathing 8 breaths per minute", RespiratoryRate, 8},
		{"spo2 labeled", "SpO2 86 on room air", OxygenSaturation, 86},
		{"o2 sat", "O2 sat of 91", OxygenSaturation, 91},
		{"glucose labeled", "blood sugar is 54", BloodGlucose, 54},
		{"glucose units", "fingerstick reads 340 mg/dL", BloodGlucose, 340},
		{"temp fahrenheit", "temperature of 101.5°F", TemperatureF, 101.5},
		{"temp celsius", "febrile at 38.9°C", TemperatureC, 38.9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := Extract(tc.text)
			got, ok := m[tc.sign]
			if !ok {
				t.Fatalf("Extract(%q) = %v, want %s present", tc.text, m, tc.sign)
			}
			if got != tc.want {
				t.Errorf("%s = %v, want %v", tc.sign, got, tc.want)
			}
		})
	}
}

func TestExtract_BloodPressurePair(t *testing.T) {
	m := Extract("BP 82/50, client pale and diaphoretic")
	if m[SystolicBP] != 82 || m[DiastolicBP] != 50 {
		t.Fatalf("BP = %v/%v, want 82/50", m[SystolicBP], m[DiastolicBP])
	}

	m = Extract("reading of 150/94 mmHg at rest")
	if m[SystolicBP] != 150 || m[DiastolicBP] != 94 {
		t.Fatalf("BP = %v/%v, want 150/94", m[SystolicBP], m[DiastolicBP])
	}
}

func TestExtract_NoMatchIsEmptyNotNil(t *testing.T) {
	m := Extract("The client reports feeling anxious about discharge.")
	if m == nil {
		t.Fatal("Extract returned nil map")
	}
	if len(m) != 0 {
		t.Errorf("Extract = %v, want empty", m)
	}
}

func TestExtract_MultipleSignsInOneStem(t *testing.T) {
	m := Extract("Vital signs: HR 118, RR 26, BP 88/56, SpO2 89, temperature of 39.2°C")
	want := Measurements{
		HeartRate:        118,
		RespiratoryRate:  26,
		SystolicBP:       88,
		DiastolicBP:      56,
		OxygenSaturation: 89,
		TemperatureC:     39.2,
	}
	for sign, v := range want {
		if m[sign] != v {
			t.Errorf("%s = %v, want %v", sign, m[sign], v)
		}
	}
}

func TestMergeKeepsReceiverValues(t *testing.T) {
	stem := Measurements{HeartRate: 120}
	option := Measurements{HeartRate: 60, BloodGlucose: 45}
	stem.Merge(option)

	if stem[HeartRate] != 120 {
		t.Errorf("HeartRate = %v, want stem value 120 kept", stem[HeartRate])
	}
	if stem[BloodGlucose] != 45 {
		t.Errorf("BloodGlucose = %v, want 45 merged in", stem[BloodGlucose])
	}
}

func TestSignsSorted(t *testing.T) {
	m := Measurements{OxygenSaturation: 90, HeartRate: 100, BloodGlucose: 60}
	signs := m.Signs()
	for i := 1; i < len(signs); i++ {
		if signs[i-1] >= signs[i] {
			t.Fatalf("Signs() = %v, want strictly ascending", signs)
		}
	}
}
