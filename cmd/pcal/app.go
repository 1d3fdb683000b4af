package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/daviddao/persiancal/internal/config"
	"github.com/daviddao/persiancal/internal/logger"
	"github.com/daviddao/persiancal/pkg/clock"
	"github.com/daviddao/persiancal/pkg/holiday"
	"github.com/daviddao/persiancal/pkg/layout"
	"github.com/daviddao/persiancal/pkg/persian"
	"github.com/daviddao/persiancal/pkg/store"
)

// app holds shared state for all CLI subcommands.
type app struct {
	out io.Writer
	cfg *config.Config
	log *logger.Logger
	clk *clock.Source
	loc *time.Location

	store store.StoreInterface

	// flags shared by every subcommand
	jsonOut bool
	delim   string
}

// init loads configuration and wires the logger and clock. Called once
// before any subcommand runs.
func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = logger.New(cfg.Logger); err != nil {
		return err
	}

	a.clk = clock.NewSource(clock.System{})
	if now, ok := cfg.FixedNow(); ok {
		a.clk.Set(clock.NewManual(now))
		a.log.Debugw("clock pinned", "now", now)
	}
	a.loc = cfg.Location()

	if a.delim == "" {
		a.delim = cfg.Delimiter
	}
	return nil
}

// openStore opens the occasion database on first use. Creates the
// default directory if using the default DB path.
func (a *app) openStore() (store.StoreInterface, error) {
	if a.store != nil {
		return a.store, nil
	}
	path := a.cfg.DB
	if path == config.DefaultDB {
		if err := os.MkdirAll(config.DefaultDir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create %s: %w", config.DefaultDir, err)
		}
	}
	start := time.Now()
	s, err := store.New(path, store.WithClock(a.clk))
	a.log.LogStoreOp("open", msSince(start), err)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	a.store = s
	return s, nil
}

// calendar returns a holiday calendar backed by the occasion store.
func (a *app) calendar() (*holiday.Calendar, error) {
	s, err := a.openStore()
	if err != nil {
		return nil, err
	}
	return holiday.NewCalendar(s), nil
}

// Close releases the database connection and flushes logs. Safe to call
// more than once.
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
		a.store = nil
	}
	if a.log != nil {
		a.log.Close()
	}
}

// now returns the current wall-clock time in the configured zone as a
// Persian date and time. Its EpochMillis is only the real instant when the
// zone is UTC; use instant for epoch and Gregorian output.
func (a *app) now() persian.DateTime {
	return persian.FromTime(a.clk.Now().In(a.loc))
}

// instant returns the current instant as a UTC Persian date and time.
func (a *app) instant() persian.DateTime {
	return persian.FromEpochMillis(clock.Millis(a.clk))
}

// parseDate parses a Persian date with the configured delimiter.
func (a *app) parseDate(s string) (persian.Date, error) {
	return layout.Parse(s, a.delim)
}

// layoutFor resolves a pattern name or free-form layout. It reports
// whether the layout names a Gregorian pattern.
func layoutFor(name string) (text string, gregorian bool) {
	text = layout.Resolve(name)
	gregorian = text != name && (name[0] == 'G' || name[0] == 'g')
	return text, gregorian
}

// printJSON writes v to out as indented JSON.
func (a *app) printJSON(v interface{}) {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func (a *app) println(args ...interface{}) { fmt.Fprintln(a.out, args...) }

func (a *app) printf(format string, args ...interface{}) { fmt.Fprintf(a.out, format, args...) }

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}

// dateTimeJSON is the --json shape for a date with a time of day.
type dateTimeJSON struct {
	persian.Info
	Time        string `json:"time"`
	EpochMillis int64  `json:"epoch_ms"`
	Gregorian   string `json:"gregorian"`
}

func newDateTimeJSON(dt persian.DateTime) dateTimeJSON {
	return newZonedJSON(dt, dt)
}

// newZonedJSON reports local's Persian fields alongside the epoch and
// Gregorian UTC time of utc, the same instant.
func newZonedJSON(local, utc persian.DateTime) dateTimeJSON {
	return dateTimeJSON{
		Info:        local.Date().Info(),
		Time:        local.Clock(),
		EpochMillis: utc.EpochMillis(),
		Gregorian:   layout.FormatGregorian(utc, layout.G4.Text()),
	}
}
