package persian

import (
	"fmt"
	"time"

	"github.com/daviddao/persiancal/pkg/clock"
	"github.com/daviddao/persiancal/pkg/julian"
)

const (
	// MillisPerDay is the fixed length of a calendar day. Leap seconds and
	// DST are ignored.
	MillisPerDay int64 = 86_400_000

	// UnixEpochJulianDay is the Julian day number of 1970-01-01 (UTC).
	UnixEpochJulianDay int64 = 2440588
)

// DateTime is a Date plus a UTC time of day.
type DateTime struct {
	date   Date
	hour   int
	minute int
	second int
	millis int
}

// NewDateTime attaches a time of day to d. d must be a valid date.
func NewDateTime(d Date, hour, minute, second int) (DateTime, error) {
	if d.IsZero() {
		return DateTime{}, rangeErr(FieldMonth, 0, "zero date")
	}
	if hour < 0 || hour > 23 {
		return DateTime{}, rangeErr(FieldHour, hour, "hour must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return DateTime{}, rangeErr(FieldMinute, minute, "minute must be between 0 and 59")
	}
	if second < 0 || second > 59 {
		return DateTime{}, rangeErr(FieldSecond, second, "second must be between 0 and 59")
	}
	return DateTime{date: d, hour: hour, minute: minute, second: second}, nil
}

// FromEpochMillis converts UTC epoch milliseconds into a Persian date and
// time of day. Instants before 1970 floor to the earlier day.
func FromEpochMillis(ms int64) DateTime {
	days := julian.FloorDiv(ms, MillisPerDay)
	rem := julian.FloorMod(ms, MillisPerDay)
	return DateTime{
		date:   FromJulianDay(UnixEpochJulianDay + days),
		hour:   int(rem / 3_600_000),
		minute: int(rem / 60_000 % 60),
		second: int(rem / 1000 % 60),
		millis: int(rem % 1000),
	}
}

// DateFromEpochMillis is FromEpochMillis without the time of day.
func DateFromEpochMillis(ms int64) Date {
	return FromJulianDay(UnixEpochJulianDay + julian.FloorDiv(ms, MillisPerDay))
}

// ToEpochMillis returns the UTC epoch milliseconds of d at the given time
// of day. The time fields are not range checked; they are added as offsets.
func ToEpochMillis(d Date, hour, minute, second int) int64 {
	return d.EpochMillis() +
		int64(hour)*3_600_000 +
		int64(minute)*60_000 +
		int64(second)*1000
}

// EpochMillis returns the UTC epoch milliseconds of midnight at the start
// of d.
func (d Date) EpochMillis() int64 {
	return (d.JulianDay() - UnixEpochJulianDay) * MillisPerDay
}

// Now returns the current date and time according to c.
func Now(c clock.Clock) DateTime { return FromEpochMillis(clock.Millis(c)) }

// Today returns the current date according to c.
func Today(c clock.Clock) Date { return DateFromEpochMillis(clock.Millis(c)) }

// FromTime converts the wall-clock date and time of t, in t's own location,
// to a Persian DateTime.
func FromTime(t time.Time) DateTime {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).UnixMilli()
	return DateTime{
		date:   DateFromEpochMillis(midnight),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		millis: t.Nanosecond() / int(time.Millisecond),
	}
}

// FromGregorian converts a proleptic Gregorian date to a Persian date.
func FromGregorian(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, rangeErr(FieldDay, day, "%04d-%02d has no day %d", year, int(month), day)
	}
	return DateFromEpochMillis(t.UnixMilli()), nil
}

// Gregorian returns the proleptic Gregorian year, month, and day of d.
func (d Date) Gregorian() (year int, month time.Month, day int) {
	return time.UnixMilli(d.EpochMillis()).UTC().Date()
}

// Date returns the calendar date.
func (dt DateTime) Date() Date { return dt.date }

// Hour returns the hour in [0, 23].
func (dt DateTime) Hour() int { return dt.hour }

// Minute returns the minute in [0, 59].
func (dt DateTime) Minute() int { return dt.minute }

// Second returns the second in [0, 59].
func (dt DateTime) Second() int { return dt.second }

// Millisecond returns the millisecond in [0, 999].
func (dt DateTime) Millisecond() int { return dt.millis }

// EpochMillis returns the UTC epoch milliseconds of dt.
func (dt DateTime) EpochMillis() int64 {
	return ToEpochMillis(dt.date, dt.hour, dt.minute, dt.second) + int64(dt.millis)
}

// Time returns dt as a UTC time.Time.
func (dt DateTime) Time() time.Time { return time.UnixMilli(dt.EpochMillis()).UTC() }

// String returns "yyyy/MM/dd HH:mm:ss".
func (dt DateTime) String() string { return dt.ShortDateTime("/") }

// ShortDateTime returns the short date joined by delim followed by
// "HH:mm:ss".
func (dt DateTime) ShortDateTime(delim string) string {
	return dt.date.ShortDate(delim) + " " + dt.Clock()
}

// Clock returns the time of day as "HH:mm:ss".
func (dt DateTime) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", dt.hour, dt.minute, dt.second)
}

// LongDateTime returns the long date followed by " ساعت H:m:s", matching
// the unpadded clock used in long-form Persian dates.
func (dt DateTime) LongDateTime() string {
	return fmt.Sprintf("%s ساعت %d:%d:%d", dt.date.LongDate(), dt.hour, dt.minute, dt.second)
}
