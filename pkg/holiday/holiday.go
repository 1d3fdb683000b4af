// Package holiday marks official Persian calendar holidays and merges them
// with user-defined occasions.
//
// Fridays are the weekly holiday. The fixed official holidays are the
// solar-calendar ones: Nowruz (1-4 Farvardin), Sizdah Bedar (13 Farvardin),
// 14 and 15 Khordad, 22 Bahman, and 29 Esfand. Lunar religious holidays
// move against the solar calendar and are not computed here; record them
// as occasions instead.
package holiday

import (
	"context"
	"fmt"
	"sort"

	"github.com/daviddao/persiancal/pkg/model"
	"github.com/daviddao/persiancal/pkg/persian"
)

// Rule is a holiday on the same month and day every year.
type Rule struct {
	Month persian.Month
	Day   int
	Title string
}

// Official lists the fixed solar holidays in calendar order.
var Official = []Rule{
	{persian.Farvardin, 1, "Nowruz"},
	{persian.Farvardin, 2, "Nowruz"},
	{persian.Farvardin, 3, "Nowruz"},
	{persian.Farvardin, 4, "Nowruz"},
	{persian.Farvardin, 13, "Sizdah Bedar"},
	{persian.Khordad, 14, "Demise of Imam Khomeini"},
	{persian.Khordad, 15, "15 Khordad Uprising"},
	{persian.Bahman, 22, "Islamic Revolution Day"},
	{persian.Esfand, 29, "Oil Nationalization Day"},
}

// Weekend is the weekly holiday.
const Weekend = persian.Jome

// Kind says where an Entry came from.
type Kind string

const (
	KindWeekend  Kind = "weekend"
	KindOfficial Kind = "official"
	KindOccasion Kind = "occasion"
)

// Entry is one reason a day is notable.
type Entry struct {
	Title   string          `json:"title"`
	Kind    Kind            `json:"kind"`
	Holiday bool            `json:"holiday"`
	Source  *model.Occasion `json:"occasion,omitempty"`
}

// Fixed returns the official rule for d, if any.
func Fixed(d persian.Date) (Rule, bool) {
	for _, r := range Official {
		if r.Month == d.Month() && r.Day == d.Day() {
			return r, true
		}
	}
	return Rule{}, false
}

// IsFixed reports whether d is a Friday or an official holiday. It needs
// no occasion source.
func IsFixed(d persian.Date) bool {
	if d.DayOfWeek() == Weekend {
		return true
	}
	_, ok := Fixed(d)
	return ok
}

// OccasionSource supplies user-defined occasions. *store.Store implements
// it.
type OccasionSource interface {
	OccasionsOn(ctx context.Context, d persian.Date) ([]model.Occasion, error)
	OccasionsInMonth(ctx context.Context, ym persian.YearMonth) ([]model.Occasion, error)
}

// Calendar combines the fixed rules with occasions from a source. A nil
// source means fixed rules only.
type Calendar struct {
	src OccasionSource
}

// NewCalendar returns a Calendar backed by src.
func NewCalendar(src OccasionSource) *Calendar {
	return &Calendar{src: src}
}

// IsHoliday reports whether d is a weekend, an official holiday, or has an
// occasion marked as a holiday.
func (c *Calendar) IsHoliday(ctx context.Context, d persian.Date) (bool, error) {
	if IsFixed(d) {
		return true, nil
	}
	occ, err := c.occasionsOn(ctx, d)
	if err != nil {
		return false, err
	}
	for _, o := range occ {
		if o.Holiday {
			return true, nil
		}
	}
	return false, nil
}

// Occasions lists everything notable about d: the weekend, the official
// holiday, then user occasions in source order.
func (c *Calendar) Occasions(ctx context.Context, d persian.Date) ([]Entry, error) {
	var out []Entry
	if d.DayOfWeek() == Weekend {
		out = append(out, Entry{Title: d.DayName(), Kind: KindWeekend, Holiday: true})
	}
	if r, ok := Fixed(d); ok {
		out = append(out, Entry{Title: r.Title, Kind: KindOfficial, Holiday: true})
	}
	occ, err := c.occasionsOn(ctx, d)
	if err != nil {
		return nil, err
	}
	for i := range occ {
		o := occ[i]
		out = append(out, Entry{Title: o.Title, Kind: KindOccasion, Holiday: o.Holiday, Source: &o})
	}
	return out, nil
}

// MonthHolidays returns the holidays of ym in ascending order.
func (c *Calendar) MonthHolidays(ctx context.Context, ym persian.YearMonth) ([]persian.Date, error) {
	days := make(map[int]bool)
	for n := 1; n <= ym.Days(); n++ {
		d, err := ym.Day(n)
		if err != nil {
			return nil, err
		}
		if IsFixed(d) {
			days[n] = true
		}
	}
	if c.src != nil {
		occ, err := c.src.OccasionsInMonth(ctx, ym)
		if err != nil {
			return nil, fmt.Errorf("occasions in %s: %w", ym, err)
		}
		for _, o := range occ {
			if o.Holiday && o.Day <= ym.Days() {
				days[o.Day] = true
			}
		}
	}

	out := make([]persian.Date, 0, len(days))
	for n := range days {
		d, err := ym.Day(n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func (c *Calendar) occasionsOn(ctx context.Context, d persian.Date) ([]model.Occasion, error) {
	if c.src == nil {
		return nil, nil
	}
	occ, err := c.src.OccasionsOn(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("occasions on %s: %w", d, err)
	}
	return occ, nil
}
