package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/daviddao/persiancal/pkg/layout"
	"github.com/daviddao/persiancal/pkg/persian"
)

func (a *app) newTodayCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print the current Persian date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			local, utc := a.now(), a.instant()
			switch {
			case a.jsonOut:
				a.printJSON(newZonedJSON(local, utc))
			case long:
				a.println(local.LongDateTime())
			default:
				a.println(a.format(local, utc))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&long, "long", false, "long form with weekday and month name")
	return cmd
}

func (a *app) newFromEpochCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-epoch <ms>",
		Short: "Convert epoch milliseconds (UTC) to a Persian date and time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("from-epoch: invalid milliseconds %q", args[0])
			}
			dt := persian.FromEpochMillis(ms)
			if a.jsonOut {
				a.printJSON(newDateTimeJSON(dt))
				return nil
			}
			a.println(dt.String())
			return nil
		},
	}
}

func (a *app) newToEpochCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-epoch <date> [HH:MM[:SS]]",
		Short: "Convert a Persian date (and time, UTC) to epoch milliseconds",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.parseDateTime(args)
			if err != nil {
				return err
			}
			if a.jsonOut {
				a.printJSON(newDateTimeJSON(dt))
				return nil
			}
			a.println(dt.EpochMillis())
			return nil
		},
	}
}

func (a *app) newFromGregorianCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-gregorian <yyyy-mm-dd>",
		Short: "Convert a Gregorian date to a Persian date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("from-gregorian: %w", err)
			}
			d, err := persian.FromGregorian(t.Year(), t.Month(), t.Day())
			if err != nil {
				return err
			}
			if a.jsonOut {
				a.printJSON(d.Info())
				return nil
			}
			dt := persian.FromEpochMillis(d.EpochMillis())
			a.println(a.format(dt, dt))
			return nil
		},
	}
}

func (a *app) newToGregorianCmd() *cobra.Command {
	pattern := "yyyy-MM-dd"
	cmd := &cobra.Command{
		Use:   "to-gregorian <date> [HH:MM[:SS]]",
		Short: "Convert a Persian date to a Gregorian (UTC) date",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.parseDateTime(args)
			if err != nil {
				return err
			}
			text, _ := layoutFor(pattern)
			out := layout.FormatGregorian(dt, text)
			if a.jsonOut {
				a.printJSON(map[string]string{"persian": dt.String(), "gregorian": out})
				return nil
			}
			a.println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", pattern, "output layout or G1..G5")
	return cmd
}

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <date>",
		Short: "Validate a Persian date and show its derived fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(args[0])
			if err != nil {
				return err
			}
			info := d.Info()
			if a.jsonOut {
				a.printJSON(info)
				return nil
			}
			a.printf("date:         %s\n", d)
			a.printf("long:         %s\n", d.LongDate())
			a.printf("day of week:  %d (%s)\n", info.DayOfWeek, d.DayOfWeek().Latin())
			a.printf("day of year:  %d\n", d.DayOfYear())
			a.printf("month:        %s (%d days)\n", d.Month().Latin(), info.MonthLength)
			a.printf("leap year:    %t\n", info.LeapYear)
			a.printf("julian day:   %d\n", info.JulianDay)
			a.printf("gregorian:    %s\n", gregorianString(d))
			return nil
		},
	}
}

func (a *app) newFormatCmd() *cobra.Command {
	var clockStr string
	cmd := &cobra.Command{
		Use:   "format <date> <layout|P1..P6|G1..G5>",
		Short: "Render a Persian date through a layout",
		Long: `Render a Persian date through a layout.

Layout letters: yyyy/Y year, yy two-digit year, MM/m padded month,
M/n month, MMM/F month name, dd/d padded day, j day, HH/H hour, mm/i
minute, ss/s second, SSS millisecond, EEEE/l weekday name. Quote
literal text with single quotes. P1..P6 name the Persian patterns and
G1..G5 the Gregorian ones.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dtArgs := []string{args[0]}
			if clockStr != "" {
				dtArgs = append(dtArgs, clockStr)
			}
			dt, err := a.parseDateTime(dtArgs)
			if err != nil {
				return err
			}
			text, gregorian := layoutFor(args[1])
			var out string
			if gregorian {
				out = layout.FormatGregorian(dt, text)
			} else {
				out = layout.Format(dt, text)
			}
			if a.jsonOut {
				a.printJSON(map[string]string{"layout": text, "result": out})
				return nil
			}
			a.println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&clockStr, "time", "", "time of day, HH:MM[:SS]")
	return cmd
}

func (a *app) newShiftCmd() *cobra.Command {
	var unit string
	cmd := &cobra.Command{
		Use:   "shift <date> <n>",
		Short: "Add days, months, or years to a Persian date",
		Long: `Add n days, months, or years to a Persian date. n may be negative.
Shifting by months or years keeps the day of month, clamped to the
length of the target month.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("shift: invalid amount %q", args[1])
			}
			var got persian.Date
			switch unit {
			case "day", "days", "d":
				got = d.AddDays(n)
			case "month", "months", "m":
				got = d.AddMonths(n)
			case "year", "years", "y":
				got = d.AddYears(n)
			default:
				return fmt.Errorf("shift: unknown unit %q (want days, months, or years)", unit)
			}
			if a.jsonOut {
				a.printJSON(got.Info())
				return nil
			}
			a.println(got.ShortDate(a.delim))
			return nil
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "days", "days, months, or years")
	return cmd
}

func (a *app) newLeapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leap <year>",
		Short: "Report whether a Persian year is a leap year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("leap: invalid year %q", args[0])
			}
			leap := persian.IsLeapYear(year)
			days := 365
			if leap {
				days = 366
			}
			if a.jsonOut {
				a.printJSON(map[string]interface{}{"year": year, "leap": leap, "days": days})
				return nil
			}
			if leap {
				a.printf("%d is a leap year (%d days)\n", year, days)
			} else {
				a.printf("%d is not a leap year (%d days)\n", year, days)
			}
			return nil
		},
	}
}

// parseDateTime parses args[0] as a date and the optional args[1] as a
// time of day.
func (a *app) parseDateTime(args []string) (persian.DateTime, error) {
	d, err := a.parseDate(args[0])
	if err != nil {
		return persian.DateTime{}, err
	}
	if len(args) < 2 {
		return persian.NewDateTime(d, 0, 0, 0)
	}
	h, m, s, err := layout.ParseClock(args[1])
	if err != nil {
		return persian.DateTime{}, err
	}
	return persian.NewDateTime(d, h, m, s)
}

// format renders the configured default layout. Persian layouts use
// local's wall-clock fields and Gregorian patterns use utc, which must
// be the same instant.
func (a *app) format(local, utc persian.DateTime) string {
	text, gregorian := layoutFor(a.cfg.Layout)
	if gregorian {
		return layout.FormatGregorian(utc, text)
	}
	return layout.Format(local, text)
}

func gregorianString(d persian.Date) string {
	y, m, day := d.Gregorian()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), day)
}
