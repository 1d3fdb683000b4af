// Package model defines the records persiancal keeps outside the calendar
// engine itself.
//
// An Occasion is a user-defined event pinned to a Persian month and day.
// With Year set it happens once; with Year zero it recurs every year on
// the same month and day, the way Nowruz or a birthday does. Occasions
// marked Holiday extend the fixed official holidays in pkg/holiday.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/daviddao/persiancal/pkg/persian"
)

// Occasion is a titled event on a Persian calendar day.
type Occasion struct {
	ID        uuid.UUID `json:"id"`
	Year      int       `json:"year,omitempty" validate:"min=0"`
	Month     int       `json:"month" validate:"min=1,max=12"`
	Day       int       `json:"day" validate:"min=1,max=31"`
	Title     string    `json:"title" validate:"required,notblank,max=200"`
	Holiday   bool      `json:"holiday"`
	CreatedAt time.Time `json:"created_at"`
}

// NewOccasion builds a validated occasion with a fresh ID. Pass year 0 for
// an occasion that recurs every year.
func NewOccasion(year, month, day int, title string, holiday bool, now time.Time) (Occasion, error) {
	o := Occasion{
		ID:        uuid.New(),
		Year:      year,
		Month:     month,
		Day:       day,
		Title:     title,
		Holiday:   holiday,
		CreatedAt: now.UTC(),
	}
	if err := Validate(o); err != nil {
		return Occasion{}, err
	}
	return o, nil
}

// Recurring reports whether o repeats every year.
func (o Occasion) Recurring() bool { return o.Year == 0 }

// Matches reports whether o falls on d. A recurring Esfand 30 occasion
// only matches in leap years, since other years have no such day.
func (o Occasion) Matches(d persian.Date) bool {
	if o.Month != int(d.Month()) || o.Day != d.Day() {
		return false
	}
	return o.Recurring() || o.Year == d.Year()
}

// On returns the date of o in year. ok is false when the occasion does not
// occur that year.
func (o Occasion) On(year int) (d persian.Date, ok bool) {
	if !o.Recurring() && o.Year != year {
		return persian.Date{}, false
	}
	d, err := persian.New(year, o.Month, o.Day)
	return d, err == nil
}
