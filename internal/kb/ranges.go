package kb

import (
	"fmt"
	"math"

	"github.com/abhisek/stackfour/internal/vitals"
)

// RangeClass is the three-way classification of a measured value.
type RangeClass int

const (
	// ClassNormal means the value falls inside the applicable normal range.
	ClassNormal RangeClass = iota
	// ClassAbnormal means outside the normal range but short of critical.
	ClassAbnormal
	// ClassCritical means the value is at or beyond a critical threshold.
	ClassCritical
	// ClassUnknown means the sign has no reference range.
	ClassUnknown
)

func (c RangeClass) String() string {
	switch c {
	case ClassNormal:
		return "normal"
	case ClassAbnormal:
		return "abnormal"
	case ClassCritical:
		return "critical"
	}
	return "unknown"
}

// NormalRange is an inclusive low/high bound pair.
type NormalRange struct {
	Low  float64
	High float64
}

// Contains reports whether v lies inside the range, bounds inclusive.
func (r NormalRange) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// RangeSpec is the reference-range record for one vital sign. Context keys in
// Variants override the default range: condition names first, then age group.
type RangeSpec struct {
	Default      NormalRange
	Variants     map[string]NormalRange
	CriticalLow  float64 // values <= CriticalLow classify critical
	CriticalHigh float64 // values >= CriticalHigh classify critical
	Unit         string
}

func buildRanges() map[vitals.Sign]RangeSpec {
	noHigh := math.Inf(1)

	return map[vitals.Sign]RangeSpec{
		vitals.HeartRate: {
			Default: NormalRange{60, 100},
			Variants: map[string]NormalRange{
				"pediatric": {80, 120},
				"infant":    {100, 160},
			},
			CriticalLow:  50,
			CriticalHigh: 150,
			Unit:         "bpm",
		},
		vitals.RespiratoryRate: {
			Default: NormalRange{12, 20},
			Variants: map[string]NormalRange{
				"pediatric": {20, 30},
				"infant":    {30, 60},
			},
			CriticalLow:  10,
			CriticalHigh: 30,
			Unit:         "breaths/min",
		},
		vitals.SystolicBP: {
			Default:      NormalRange{90, 140},
			CriticalLow:  80,
			CriticalHigh: 180,
			Unit:         "mmHg",
		},
		vitals.DiastolicBP: {
			Default:      NormalRange{60, 90},
			CriticalLow:  50,
			CriticalHigh: 120,
			Unit:         "mmHg",
		},
		vitals.TemperatureC: {
			Default:      NormalRange{36.5, 37.5},
			CriticalLow:  35.0,
			CriticalHigh: 40.0,
			Unit:         "°C",
		},
		vitals.TemperatureF: {
			Default:      NormalRange{97.7, 99.5},
			CriticalLow:  95.0,
			CriticalHigh: 104.0,
			Unit:         "°F",
		},
		vitals.OxygenSaturation: {
			Default: NormalRange{95, 100},
			Variants: map[string]NormalRange{
				"copd": {88, 92},
			},
			CriticalLow:  90,
			CriticalHigh: noHigh,
			Unit:         "%",
		},
		vitals.BloodGlucose: {
			Default:      NormalRange{70, 110},
			CriticalLow:  54,
			CriticalHigh: 400,
			Unit:         "mg/dL",
		},
	}
}

// ClassifyValue classifies a measured value against the applicable reference
// range. Context-specific variants take precedence over the general adult
// range; critical bounds are inclusive. Unknown signs classify ClassUnknown.
func (k *KnowledgeBase) ClassifyValue(sign vitals.Sign, value float64, ctx *PatientContext) (RangeClass, string) {
	spec, ok := k.ranges[sign]
	if !ok || sign == "" {
		return ClassUnknown, fmt.Sprintf("no reference range for %s", sign)
	}

	// Condition variants outrank age-group variants, which outrank the
	// general adult range.
	normal := spec.Default
	if ctx != nil {
		matched := false
		for _, cond := range ctx.Conditions {
			if v, ok := spec.Variants[cond]; ok {
				normal = v
				matched = true
				break
			}
		}
		if !matched && ctx.AgeGroup != "" {
			if v, ok := spec.Variants[ctx.AgeGroup]; ok {
				normal = v
			}
		}
	}

	switch {
	case value <= spec.CriticalLow:
		return ClassCritical, fmt.Sprintf("critical low %s %.0f %s (normal %.0f-%.0f)",
			sign, value, spec.Unit, normal.Low, normal.High)
	case value >= spec.CriticalHigh:
		return ClassCritical, fmt.Sprintf("critical high %s %.0f %s (normal %.0f-%.0f)",
			sign, value, spec.Unit, normal.Low, normal.High)
	case !normal.Contains(value):
		return ClassAbnormal, fmt.Sprintf("abnormal %s %.0f %s (normal %.0f-%.0f)",
			sign, value, spec.Unit, normal.Low, normal.High)
	default:
		return ClassNormal, fmt.Sprintf("%s %.0f %s within normal range", sign, value, spec.Unit)
	}
}
