// Package julian converts between Persian (Jalali) civil dates and Julian
// day numbers.
//
// The arithmetic follows the 2820-year grand cycle: every 2820 Persian
// years contain exactly 1,029,983 days, and leap years are spread across
// the cycle by the rule in IsLeapYear. The same cycle arithmetic is used
// for day counting and for the leap rule, so the two can never disagree.
//
// Months are 0-based here (0 = Farvardin, 11 = Esfand). Callers that work
// with 1-based months go through pkg/persian. Nothing in this package
// validates its input; out-of-range months or days are extrapolated.
package julian

// PersianEpoch is the Julian day number of 1 Farvardin 1 AP
// (22 March 622 in the proleptic Gregorian calendar).
const PersianEpoch int64 = 1948321

const (
	cycleYears = 2820
	cycleDays  = 1029983

	// epochBase is the first year of the cycle the formulas are anchored on.
	epochBase = 474
)

// ToJulianDay returns the Julian day number of the Persian date
// (year, month0+1, day).
func ToJulianDay(year, month0, day int) int64 {
	base := int64(year) - epochBase
	cycleYear := epochBase + FloorMod(base, cycleYears)

	var monthDays int64
	if month0 < 7 {
		monthDays = 31 * int64(month0)
	} else {
		monthDays = 30*int64(month0) + 6
	}

	return int64(day) +
		monthDays +
		FloorDiv(cycleYear*682-110, 2816) +
		(cycleYear-1)*365 +
		FloorDiv(base, cycleYears)*cycleDays +
		PersianEpoch - 1
}

// FromJulianDay is the inverse of ToJulianDay.
func FromJulianDay(jdn int64) (year, month0, day int) {
	sinceBase := jdn - ToJulianDay(epochBase+1, 0, 1)
	cycle := FloorDiv(sinceBase, cycleDays)
	dayInCycle := FloorMod(sinceBase, cycleDays)

	var yearInCycle int64
	if dayInCycle == cycleDays-1 {
		yearInCycle = cycleYears
	} else {
		aux1 := dayInCycle / 366
		aux2 := dayInCycle % 366
		yearInCycle = (2134*aux1+2816*aux2+2815)/1028522 + aux1 + 1
	}

	y := yearInCycle + cycleYears*cycle + epochBase
	yearDay := jdn - ToJulianDay(int(y), 0, 1) + 1

	var m int64
	if yearDay <= 186 {
		m = (yearDay - 1) / 31
	} else {
		m = (yearDay - 7) / 30
	}
	d := jdn - ToJulianDay(int(y), int(m), 1) + 1
	return int(y), int(m), int(d)
}

// FloorDiv divides a by b rounding toward negative infinity. b must be
// positive.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// FloorMod returns a - b*FloorDiv(a, b); the result is always in [0, b).
func FloorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
