// Package clinicalc provides derived clinical field calculations: calendar
// age from a birth date and body mass index from height and weight. All
// functions are pure; derived values are computed at a specific point in time
// and stored, never recomputed retroactively.
package clinicalc

import (
	"math"
	"time"
)

// Age returns the number of full calendar years elapsed between birthDate and
// asOf. The naive year difference is decremented by one when the asOf
// month/day falls before the birth month/day, matching how a person's age is
// actually counted rather than floor(days/365.25).
func Age(birthDate, asOf time.Time) int {
	years := asOf.Year() - birthDate.Year()
	if asOf.Month() < birthDate.Month() ||
		(asOf.Month() == birthDate.Month() && asOf.Day() < birthDate.Day()) {
		years--
	}
	return years
}

// BMI computes body mass index as weightKg / (heightCm/100)^2, rounded to two
// decimal places. The second return value is false when either input is
// missing or non-positive; callers must treat that as "no value", never zero.
func BMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100, true
}
