// Package layout parses delimited Persian date strings and renders dates
// and times through pattern templates.
package layout

import (
	"strconv"
	"strings"

	"github.com/daviddao/persiancal/pkg/persian"
)

// DefaultDelimiter separates year, month, and day when callers do not
// configure one.
const DefaultDelimiter = "/"

// Parse splits s on delim into year, month, and day and validates the
// result. Trailing empty fields are ignored, so "1402/07/10/" parses.
// Malformed input yields a *FormatError; well-formed fields that violate
// the calendar yield a *persian.RangeError.
func Parse(s, delim string) (persian.Date, error) {
	if delim == "" {
		return persian.Date{}, &FormatError{Input: s, Reason: "empty delimiter"}
	}
	tokens := strings.Split(s, delim)
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) != 3 {
		return persian.Date{}, &FormatError{
			Input:  s,
			Reason: "expected year" + delim + "month" + delim + "day, got " + strconv.Itoa(len(tokens)) + " fields",
		}
	}

	var fields [3]int
	for i, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return persian.Date{}, &FormatError{Input: s, Reason: strconv.Quote(tok) + " is not an integer"}
		}
		fields[i] = n
	}

	year, month, day := fields[0], fields[1], fields[2]
	if year < 1 {
		return persian.Date{}, &persian.RangeError{Field: persian.FieldYear, Value: year, Reason: "year must be at least 1"}
	}
	return persian.New(year, month, day)
}

// MustParse is like Parse with the default delimiter but panics on error.
func MustParse(s string) persian.Date {
	d, err := Parse(s, DefaultDelimiter)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDateTime parses "<date> HH:MM[:SS]" where the date part uses delim.
// A string with no time part parses as midnight.
func ParseDateTime(s, delim string) (persian.DateTime, error) {
	datePart, timePart, hasTime := strings.Cut(strings.TrimSpace(s), " ")
	d, err := Parse(datePart, delim)
	if err != nil {
		return persian.DateTime{}, err
	}
	if !hasTime {
		return persian.NewDateTime(d, 0, 0, 0)
	}
	h, m, sec, err := ParseClock(strings.TrimSpace(timePart))
	if err != nil {
		return persian.DateTime{}, err
	}
	return persian.NewDateTime(d, h, m, sec)
}

// ParseClock parses "HH:MM" or "HH:MM:SS". Only the shape is checked here;
// persian.NewDateTime enforces the ranges.
func ParseClock(s string) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, 0, &FormatError{Input: s, Reason: "expected HH:MM or HH:MM:SS"}
	}
	var out [3]int
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, &FormatError{Input: s, Reason: strconv.Quote(p) + " is not an integer"}
		}
		out[i] = n
	}
	return out[0], out[1], out[2], nil
}
