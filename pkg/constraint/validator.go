// Package constraint decides which Persian dates a caller may select: the
// month window a calendar may show and per-day validators within it.
package constraint

import (
	"github.com/daviddao/persiancal/pkg/clock"
	"github.com/daviddao/persiancal/pkg/persian"
)

// Validator reports whether a date may be selected.
type Validator interface {
	Valid(d persian.Date) bool
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(d persian.Date) bool

// Valid calls f(d).
func (f ValidatorFunc) Valid(d persian.Date) bool { return f(d) }

// Any accepts every date.
var Any Validator = ValidatorFunc(func(persian.Date) bool { return true })

// From accepts dates on or after start.
func From(start persian.Date) Validator {
	return ValidatorFunc(func(d persian.Date) bool { return !d.Before(start) })
}

// Until accepts dates on or before end.
func Until(end persian.Date) Validator {
	return ValidatorFunc(func(d persian.Date) bool { return !d.After(end) })
}

// FromToday accepts today and later. Today is read from c on every call,
// so a long-lived validator follows the calendar day.
func FromToday(c clock.Clock) Validator {
	return ValidatorFunc(func(d persian.Date) bool { return !d.Before(persian.Today(c)) })
}

// UntilToday accepts today and earlier.
func UntilToday(c clock.Clock) Validator {
	return ValidatorFunc(func(d persian.Date) bool { return !d.After(persian.Today(c)) })
}

// AllOf accepts a date only if every validator does. Nil entries are
// skipped; AllOf() accepts everything.
func AllOf(vs ...Validator) Validator {
	vs = compact(vs)
	return ValidatorFunc(func(d persian.Date) bool {
		for _, v := range vs {
			if !v.Valid(d) {
				return false
			}
		}
		return true
	})
}

// AnyOf accepts a date if at least one validator does. Nil entries are
// skipped; AnyOf() accepts nothing.
func AnyOf(vs ...Validator) Validator {
	vs = compact(vs)
	return ValidatorFunc(func(d persian.Date) bool {
		for _, v := range vs {
			if v.Valid(d) {
				return true
			}
		}
		return false
	})
}

// ExcludeWeekdays rejects dates falling on any of days.
func ExcludeWeekdays(days ...persian.Weekday) Validator {
	var mask [8]bool
	for _, w := range days {
		if w.Valid() {
			mask[w] = true
		}
	}
	return ValidatorFunc(func(d persian.Date) bool { return !mask[d.DayOfWeek()] })
}

func compact(vs []Validator) []Validator {
	out := make([]Validator, 0, len(vs))
	for _, v := range vs {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}
