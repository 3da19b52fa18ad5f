package filter

import (
	"fmt"
	"math"
)

// SnapSalaryRange applies the slider constraints: both ends are rounded to
// SalaryStep, clamped to the default bounds, and kept SalaryMinDistance apart.
func SnapSalaryRange(min, max float64) (SalaryRange, error) {
	if min > max {
		return SalaryRange{}, fmt.Errorf("salary min %.0f is greater than max %.0f", min, max)
	}
	r := SalaryRange{
		Min: clamp(snap(min), DefaultSalaryMin, DefaultSalaryMax),
		Max: clamp(snap(max), DefaultSalaryMin, DefaultSalaryMax),
	}
	if r.Max-r.Min < SalaryMinDistance {
		if r.Min+SalaryMinDistance <= DefaultSalaryMax {
			r.Max = r.Min + SalaryMinDistance
		} else {
			r.Min = r.Max - SalaryMinDistance
		}
	}
	return r, nil
}

func snap(value float64) float64 {
	return math.Round(value/SalaryStep) * SalaryStep
}

func clamp(value, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, value))
}
