package layout

import (
	"strconv"

	"github.com/daviddao/persiancal/pkg/persian"
)

// YearMonth returns "<month> <year>", as shown above a month grid.
func YearMonth(d persian.Date) string {
	return d.MonthName() + " " + strconv.Itoa(d.Year())
}

// YearMonthDay returns "<day> <month> <year>".
func YearMonthDay(d persian.Date) string {
	return strconv.Itoa(d.Day()) + " " + YearMonth(d)
}

// MonthDay returns "<day> <month>".
func MonthDay(d persian.Date) string {
	return strconv.Itoa(d.Day()) + " " + d.MonthName()
}

// MonthDayWeekday returns "<weekday> <day> <month>".
func MonthDayWeekday(d persian.Date) string {
	return d.DayName() + " " + MonthDay(d)
}

// YearMonthDayWeekday returns "<weekday> <day> <month> <year>".
func YearMonthDayWeekday(d persian.Date) string {
	return d.DayName() + " " + YearMonthDay(d)
}

// RangeStrings renders both ends of a selection with YearMonthDay. A nil
// end renders as "".
func RangeStrings(start, end *persian.Date) (string, string) {
	var s, e string
	if start != nil {
		s = YearMonthDay(*start)
	}
	if end != nil {
		e = YearMonthDay(*end)
	}
	return s, e
}

// ToGregorian parses a Persian "<date> [HH:MM[:SS]]" string and renders the
// same UTC instant through a Gregorian pattern.
func ToGregorian(s, delim string, out GregorianPattern) (string, error) {
	dt, err := ParseDateTime(s, delim)
	if err != nil {
		return "", err
	}
	return FormatGregorian(dt, out.Text()), nil
}

// FromGregorian renders the UTC instant ms through a Persian pattern.
func FromGregorian(ms int64, out PersianPattern) string {
	return Format(persian.FromEpochMillis(ms), out.Text())
}
