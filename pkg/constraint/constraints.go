package constraint

import (
	"errors"
	"fmt"

	"github.com/daviddao/persiancal/pkg/persian"
)

// Default window used when Options leaves Start or End unset.
var (
	DefaultStart = mustMonth(1300, persian.Farvardin)
	DefaultEnd   = mustMonth(1500, persian.Esfand)
)

// ErrBounds is returned by New for an inconsistent month window.
var ErrBounds = errors.New("constraint: invalid bounds")

// Options configures New. Zero fields take defaults: the 1300..1500
// window, Saturday as the first day of the week, and no validator.
type Options struct {
	Start          persian.YearMonth
	End            persian.YearMonth
	OpenAt         *persian.YearMonth
	FirstDayOfWeek persian.Weekday
	Validator      Validator
}

// Constraints bounds a calendar to a window of months and filters the days
// inside it through a Validator. A Constraints is immutable.
type Constraints struct {
	start, end     persian.YearMonth
	openAt         persian.YearMonth
	hasOpenAt      bool
	firstDayOfWeek persian.Weekday
	validator      Validator
}

// New validates o and returns the resulting Constraints.
func New(o Options) (*Constraints, error) {
	c := &Constraints{
		start:          o.Start,
		end:            o.End,
		firstDayOfWeek: o.FirstDayOfWeek,
		validator:      o.Validator,
	}
	if !c.start.Month().Valid() {
		c.start = DefaultStart
	}
	if !c.end.Month().Valid() {
		c.end = DefaultEnd
	}
	if c.firstDayOfWeek == 0 {
		c.firstDayOfWeek = persian.Shanbe
	}
	if c.validator == nil {
		c.validator = Any
	}

	if !c.firstDayOfWeek.Valid() {
		return nil, fmt.Errorf("%w: first day of week %d", ErrBounds, int(c.firstDayOfWeek))
	}
	if c.start.Compare(c.end) > 0 {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrBounds, c.start, c.end)
	}
	if o.OpenAt != nil {
		if c.start.Compare(*o.OpenAt) > 0 {
			return nil, fmt.Errorf("%w: start %s is after open month %s", ErrBounds, c.start, *o.OpenAt)
		}
		if o.OpenAt.Compare(c.end) > 0 {
			return nil, fmt.Errorf("%w: open month %s is after end %s", ErrBounds, *o.OpenAt, c.end)
		}
		c.openAt, c.hasOpenAt = *o.OpenAt, true
	}
	return c, nil
}

// Start returns the first month of the window.
func (c *Constraints) Start() persian.YearMonth { return c.start }

// End returns the last month of the window.
func (c *Constraints) End() persian.YearMonth { return c.end }

// OpenAt returns the month a calendar should open on, if one was set.
func (c *Constraints) OpenAt() (persian.YearMonth, bool) { return c.openAt, c.hasOpenAt }

// FirstDayOfWeek returns the weekday of the first grid column.
func (c *Constraints) FirstDayOfWeek() persian.Weekday { return c.firstDayOfWeek }

// Validator returns the per-day validator.
func (c *Constraints) Validator() Validator { return c.validator }

// WithinBounds reports whether d falls inside the month window.
func (c *Constraints) WithinBounds(d persian.Date) bool {
	return !d.Before(c.start.First()) && !d.After(c.end.Last())
}

// Allowed reports whether d is inside the window and accepted by the
// validator.
func (c *Constraints) Allowed(d persian.Date) bool {
	return c.WithinBounds(d) && c.validator.Valid(d)
}

// Clamp returns ym limited to the window.
func (c *Constraints) Clamp(ym persian.YearMonth) persian.YearMonth {
	if ym.Compare(c.start) < 0 {
		return c.start
	}
	if ym.Compare(c.end) > 0 {
		return c.end
	}
	return ym
}

// MonthSpan returns the number of months in the window.
func (c *Constraints) MonthSpan() int { return c.start.MonthsUntil(c.end) + 1 }

// YearSpan returns the number of years the window touches.
func (c *Constraints) YearSpan() int { return c.end.Year() - c.start.Year() + 1 }

func mustMonth(year int, m persian.Month) persian.YearMonth {
	ym, err := persian.MonthOf(year, m)
	if err != nil {
		panic(err)
	}
	return ym
}
