// Package vitals extracts numeric clinical values from free text.
//
// Extraction is purely pattern-driven: each vital sign has an ordered list of
// textual templates and the first successful match wins. At most one value per
// sign is extracted per call. Absence of a match is a valid state, never an
// error.
package vitals

import (
	"regexp"
	"sort"
	"strconv"
)

// Sign names a recognized vital sign or point-of-care lab value.
type Sign string

const (
	HeartRate        Sign = "heart_rate"
	RespiratoryRate  Sign = "respiratory_rate"
	SystolicBP       Sign = "blood_pressure_systolic"
	DiastolicBP      Sign = "blood_pressure_diastolic"
	TemperatureC     Sign = "temperature_celsius"
	TemperatureF     Sign = "temperature_fahrenheit"
	OxygenSaturation Sign = "oxygen_saturation"
	BloodGlucose     Sign = "blood_glucose"
)

// Measurements maps extracted signs to their numeric values.
type Measurements map[Sign]float64

// signPatterns holds the ordered templates for a single-valued sign.
// The first capturing group is the value.
var signPatterns = []struct {
	sign     Sign
	patterns []*regexp.Regexp
}{
	{HeartRate, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:HR|heart rate)(?:\s+of)?[:\s]+(\d+)`),
		regexp.MustCompile(`(?i)\b(\d+)\s*(?:bpm|beats?\s+per\s+minute)`),
	}},
	{RespiratoryRate, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:RR|respiratory rate)(?:\s+of)?[:\s]+(\d+)`),
		regexp.MustCompile(`(?i)\b(\d+)\s*breaths?\s+per\s+minute`),
	}},
	{TemperatureC, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:temp|temperature)(?:\s+of)?[:\s]+(\d+\.?\d*)\s*°?\s*C\b`),
		regexp.MustCompile(`(\d+\.?\d*)\s*°\s*C\b`),
	}},
	{TemperatureF, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:temp|temperature)(?:\s+of)?[:\s]+(\d+\.?\d*)\s*°?\s*F\b`),
		regexp.MustCompile(`(\d+\.?\d*)\s*°\s*F\b`),
	}},
	{OxygenSaturation, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:O2 sat(?:uration)?|SpO2|oxygen saturation)(?:\s+of)?[:\s]+(\d+)`),
		regexp.MustCompile(`(?i)\b(\d+)\s*%\s*(?:on room air|O2)`),
	}},
	{BloodGlucose, []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:glucose|blood sugar|BG)(?:\s+(?:level|of|is))?[:\s]+(\d+)`),
		regexp.MustCompile(`(?i)\b(\d+)\s*mg/dL`),
	}},
}

// bpPatterns match a systolic/diastolic pair in one expression.
var bpPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:BP|blood pressure)(?:\s+of)?[:\s]+(\d+)\s*/\s*(\d+)`),
	regexp.MustCompile(`(?i)\b(\d+)\s*/\s*(\d+)\s*mm\s*Hg`),
}

// Extract scans text for vital-sign expressions and returns the values found.
// The returned map is empty (never nil) when nothing matches.
func Extract(text string) Measurements {
	m := Measurements{}

	for _, sp := range signPatterns {
		for _, re := range sp.patterns {
			groups := re.FindStringSubmatch(text)
			if groups == nil {
				continue
			}
			if v, err := strconv.ParseFloat(groups[1], 64); err == nil {
				m[sp.sign] = v
			}
			break
		}
	}

	for _, re := range bpPatterns {
		groups := re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		sys, errS := strconv.ParseFloat(groups[1], 64)
		dia, errD := strconv.ParseFloat(groups[2], 64)
		if errS == nil && errD == nil {
			m[SystolicBP] = sys
			m[DiastolicBP] = dia
		}
		break
	}

	return m
}

// Signs returns the extracted sign names in stable sorted order.
func (m Measurements) Signs() []Sign {
	signs := make([]Sign, 0, len(m))
	for s := range m {
		signs = append(signs, s)
	}
	sort.Slice(signs, func(i, j int) bool { return signs[i] < signs[j] })
	return signs
}

// Merge copies values from other into m without overwriting existing signs.
// The receiver's values win: a sign stated in the stem keeps its stem value
// even when an option restates it.
func (m Measurements) Merge(other Measurements) {
	for sign, v := range other {
		if _, ok := m[sign]; !ok {
			m[sign] = v
		}
	}
}
