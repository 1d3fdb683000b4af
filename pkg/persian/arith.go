package persian

import "github.com/daviddao/persiancal/pkg/julian"

// AddDays returns the date n days after d (before d if n is negative).
func (d Date) AddDays(n int) Date {
	return FromJulianDay(d.JulianDay() + int64(n))
}

// AddMonths returns d shifted by n months. Months carry into the year in
// both directions. The day is clamped to the length of the target month,
// so Shahrivar 31 plus one month is Mehr 30.
func (d Date) AddMonths(n int) Date {
	total := int64(d.year)*12 + int64(d.month-1) + int64(n)
	year := int(julian.FloorDiv(total, 12))
	month := int(julian.FloorMod(total, 12)) + 1
	day := d.day
	if last := MonthLength(year, month); day > last {
		day = last
	}
	return Date{year: year, month: month, day: day}
}

// AddYears returns d shifted by n years. Esfand 30 of a leap year becomes
// Esfand 29 when the target year is common.
func (d Date) AddYears(n int) Date { return d.AddMonths(n * 12) }

// Compare returns -1, 0, or +1 as d is before, equal to, or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return sign(d.year - o.year)
	case d.month != o.month:
		return sign(d.month - o.month)
	default:
		return sign(d.day - o.day)
	}
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d == o }

// DaysUntil returns the signed number of days from d to o.
func (d Date) DaysUntil(o Date) int { return int(o.JulianDay() - d.JulianDay()) }

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
