// Package persian provides an immutable Persian (Jalali) date value, the
// bridge between Persian dates and epoch milliseconds, and month-level
// helpers used to lay out calendar grids.
//
// Months are 1-based throughout this package (Farvardin = 1). The 0-based
// convention used by pkg/julian is available through NewFromIndex and
// Date.MonthIndex. Dates are plain values: every operation returns a new
// Date and none mutates its receiver.
package persian

import (
	"fmt"
	"strconv"

	"github.com/daviddao/persiancal/pkg/julian"
)

// Date is a validated Persian calendar date. The zero value is not a valid
// date; build one with New, NewFromIndex, or FromJulianDay.
type Date struct {
	year  int
	month int
	day   int
}

// New returns the date year/month/day with a 1-based month. It fails with
// a *RangeError rather than normalizing out-of-range fields. Non-positive
// years are accepted; year 0 precedes year 1.
func New(year, month, day int) (Date, error) {
	if err := Validate(year, month, day); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// NewFromIndex is New with a 0-based month.
func NewFromIndex(year, month0, day int) (Date, error) {
	return New(year, month0+1, day)
}

// MustNew is like New but panics on invalid input. Intended for tests and
// package-level tables of known-good dates.
func MustNew(year, month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromJulianDay returns the date with the given Julian day number.
func FromJulianDay(jdn int64) Date {
	y, m, d := julian.FromJulianDay(jdn)
	return Date{year: y, month: m + 1, day: d}
}

// Validate checks year/month/day (1-based month) against the month-length
// and leap-year rules.
func Validate(year, month, day int) error {
	if month < 1 || month > 12 {
		return rangeErr(FieldMonth, month, "month must be between 1 and 12")
	}
	if day < 1 {
		return rangeErr(FieldDay, day, "day must be at least 1")
	}
	if day > 31 {
		return rangeErr(FieldDay, day, "day must be at most 31")
	}
	n := MonthLength(year, month)
	if day <= n {
		return nil
	}
	if month == int(Esfand) && day == 30 {
		return rangeErr(FieldDay, day, "%d is not a leap year", year)
	}
	return rangeErr(FieldDay, day, "%s has only %d days", Month(month).Latin(), n)
}

// MonthLength returns the number of days in the 1-based month of year, or
// 0 if month is out of range.
func MonthLength(year, month int) int {
	return julian.MonthLength(year, month-1)
}

// IsLeapYear reports whether year has 366 days.
func IsLeapYear(year int) bool { return julian.IsLeapYear(year) }

// IsZero reports whether d is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the 1-based month.
func (d Date) Month() Month { return Month(d.month) }

// MonthIndex returns the 0-based month.
func (d Date) MonthIndex() int { return d.month - 1 }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// JulianDay returns the Julian day number of d.
func (d Date) JulianDay() int64 {
	return julian.ToJulianDay(d.year, d.month-1, d.day)
}

// DayOfWeek returns the weekday of d, Saturday = 1 through Friday = 7.
// Julian day 0 fell on a Monday, so JDN+2 mod 7 is 0 on Saturdays.
func (d Date) DayOfWeek() Weekday {
	return Weekday(julian.FloorMod(d.JulianDay()+2, 7) + 1)
}

// WeekOfMonth returns the 1-based week of the month counted in blocks of
// seven days from day 1.
func (d Date) WeekOfMonth() int { return (d.day-1)/7 + 1 }

// DayOfYear returns the 1-based day within the year.
func (d Date) DayOfYear() int {
	return int(d.JulianDay()-julian.ToJulianDay(d.year, 0, 1)) + 1
}

// DayName returns the Persian weekday name.
func (d Date) DayName() string { return d.DayOfWeek().String() }

// MonthName returns the Persian month name.
func (d Date) MonthName() string { return d.Month().String() }

// MonthLength returns the length of d's month.
func (d Date) MonthLength() int { return MonthLength(d.year, d.month) }

// IsLeapYear reports whether d falls in a leap year.
func (d Date) IsLeapYear() bool { return julian.IsLeapYear(d.year) }

// String returns d as "yyyy/MM/dd".
func (d Date) String() string { return d.ShortDate("/") }

// ShortDate joins year, zero-padded month, and zero-padded day with delim.
func (d Date) ShortDate(delim string) string {
	return strconv.Itoa(d.year) + delim + pad2(d.month) + delim + pad2(d.day)
}

// LongDate returns "<weekday>  <day>  <month>  <year>" using Persian names.
func (d Date) LongDate() string {
	return fmt.Sprintf("%s  %d  %s  %d", d.DayName(), d.day, d.MonthName(), d.year)
}

// Info is the full set of fields derived from a date, in a form suitable for
// JSON output.
type Info struct {
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	DayOfWeek   int    `json:"day_of_week"`
	MonthName   string `json:"month_name"`
	DayName     string `json:"day_name"`
	MonthLength int    `json:"month_length"`
	LeapYear    bool   `json:"leap_year"`
	JulianDay   int64  `json:"julian_day"`
}

// Info returns d's derived fields.
func (d Date) Info() Info {
	return Info{
		Year:        d.year,
		Month:       d.month,
		Day:         d.day,
		DayOfWeek:   int(d.DayOfWeek()),
		MonthName:   d.MonthName(),
		DayName:     d.DayName(),
		MonthLength: d.MonthLength(),
		LeapYear:    d.IsLeapYear(),
		JulianDay:   d.JulianDay(),
	}
}

// MarshalText encodes d as "yyyy/MM/dd".
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func pad2(n int) string {
	if n >= 0 && n <= 9 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
