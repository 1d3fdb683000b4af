package persian

import (
	"fmt"
	"strconv"

	"github.com/daviddao/persiancal/pkg/julian"
)

// YearMonth identifies one month of one year. It carries what a calendar
// grid needs: the month length, the weekday of the first day, and
// navigation to neighbouring months.
type YearMonth struct {
	year  int
	month int
}

// MonthOf returns the YearMonth for year and a 1-based month.
func MonthOf(year int, month Month) (YearMonth, error) {
	if !month.Valid() {
		return YearMonth{}, rangeErr(FieldMonth, int(month), "month must be between 1 and 12")
	}
	return YearMonth{year: year, month: int(month)}, nil
}

// YearMonth returns the month containing d.
func (d Date) YearMonth() YearMonth { return YearMonth{year: d.year, month: d.month} }

// Year returns the year.
func (ym YearMonth) Year() int { return ym.year }

// Month returns the month.
func (ym YearMonth) Month() Month { return Month(ym.month) }

// Days returns the number of days in the month.
func (ym YearMonth) Days() int { return MonthLength(ym.year, ym.month) }

// First returns day 1 of the month.
func (ym YearMonth) First() Date { return Date{year: ym.year, month: ym.month, day: 1} }

// Last returns the last day of the month.
func (ym YearMonth) Last() Date { return Date{year: ym.year, month: ym.month, day: ym.Days()} }

// Day returns day n of the month.
func (ym YearMonth) Day(n int) (Date, error) { return New(ym.year, ym.month, n) }

// Contains reports whether d falls within the month.
func (ym YearMonth) Contains(d Date) bool { return d.year == ym.year && d.month == ym.month }

// LeadingBlanks returns how many grid cells precede day 1 in a week that
// starts on firstDayOfWeek.
func (ym YearMonth) LeadingBlanks(firstDayOfWeek Weekday) int {
	return int(julian.FloorMod(int64(ym.First().DayOfWeek()-firstDayOfWeek), 7))
}

// Weeks returns the number of grid rows needed to show the month.
func (ym YearMonth) Weeks(firstDayOfWeek Weekday) int {
	return (ym.LeadingBlanks(firstDayOfWeek) + ym.Days() + 6) / 7
}

// MonthsUntil returns the signed number of months from ym to o.
func (ym YearMonth) MonthsUntil(o YearMonth) int {
	return (o.year-ym.year)*12 + (o.month - ym.month)
}

// AddMonths returns the month n months after ym.
func (ym YearMonth) AddMonths(n int) YearMonth {
	d := ym.First().AddMonths(n)
	return YearMonth{year: d.year, month: d.month}
}

// Compare returns -1, 0, or +1 as ym is before, equal to, or after o.
func (ym YearMonth) Compare(o YearMonth) int { return -sign(ym.MonthsUntil(o)) }

// LongName returns "<month name> <year>".
func (ym YearMonth) LongName() string {
	return ym.Month().String() + " " + strconv.Itoa(ym.year)
}

// String returns "yyyy/MM".
func (ym YearMonth) String() string { return fmt.Sprintf("%d/%02d", ym.year, ym.month) }
