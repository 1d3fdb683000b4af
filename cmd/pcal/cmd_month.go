package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daviddao/persiancal/pkg/constraint"
	"github.com/daviddao/persiancal/pkg/holiday"
	"github.com/daviddao/persiancal/pkg/persian"
)

func (a *app) newMonthCmd() *cobra.Command {
	var (
		first          string
		from, until    string
		excludeFridays bool
	)
	cmd := &cobra.Command{
		Use:   "month [year month]",
		Short: "Print a month grid with holidays marked",
		Long: `Print a month grid. Holidays are marked with '*' and days rejected by
--from, --until, or --exclude-fridays with '-'. Without arguments the
current month is shown. Months outside 1300..1500 are clamped.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("month: want no arguments or <year> <month>, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.log.WithCommand("month")

			fdow, err := parseWeekday(first)
			if err != nil {
				return err
			}
			var validators []constraint.Validator
			if from != "" {
				d, err := a.parseDate(from)
				if err != nil {
					return err
				}
				validators = append(validators, constraint.From(d))
			}
			if until != "" {
				d, err := a.parseDate(until)
				if err != nil {
					return err
				}
				validators = append(validators, constraint.Until(d))
			}
			if excludeFridays {
				validators = append(validators, constraint.ExcludeWeekdays(holiday.Weekend))
			}

			ym := a.now().Date().YearMonth()
			if len(args) == 2 {
				if ym, err = parseYearMonth(args[0], args[1]); err != nil {
					return err
				}
			}
			cons, err := constraint.New(constraint.Options{
				OpenAt:         &ym,
				FirstDayOfWeek: fdow,
				Validator:      constraint.AllOf(validators...),
			})
			if err != nil {
				// An out-of-window open month is clamped rather than rejected.
				cons, err = constraint.New(constraint.Options{
					FirstDayOfWeek: fdow,
					Validator:      constraint.AllOf(validators...),
				})
				if err != nil {
					return err
				}
			}
			ym = cons.Clamp(ym)

			cal, err := a.calendar()
			if err != nil {
				return err
			}
			start := time.Now()
			hols, err := cal.MonthHolidays(cmd.Context(), ym)
			a.log.LogStoreOp("month_holidays", msSince(start), err)
			if err != nil {
				return err
			}
			log.Debugw("month rendered", "month", ym.String(), "holidays", len(hols))

			if a.jsonOut {
				a.printJSON(newMonthJSON(ym, hols, cons))
				return nil
			}
			a.printMonth(ym, hols, cons)
			return nil
		},
	}
	cmd.Flags().StringVar(&first, "first", "shanbe", "first day of the week (name or 1-7, Shanbe = 1)")
	cmd.Flags().StringVar(&from, "from", "", "reject days before this date")
	cmd.Flags().StringVar(&until, "until", "", "reject days after this date")
	cmd.Flags().BoolVar(&excludeFridays, "exclude-fridays", false, "reject Fridays")
	return cmd
}

func (a *app) printMonth(ym persian.YearMonth, hols []persian.Date, cons *constraint.Constraints) {
	holidays := make(map[int]bool, len(hols))
	for _, d := range hols {
		holidays[d.Day()] = true
	}

	a.printf("%s %d\n", ym.Month().Latin(), ym.Year())
	var b strings.Builder
	for i := 0; i < 7; i++ {
		w := persian.Weekday((int(cons.FirstDayOfWeek())-1+i)%7 + 1)
		fmt.Fprintf(&b, " %-3s", w.Latin()[:2])
	}
	a.println(strings.TrimRight(b.String(), " "))

	b.Reset()
	col := ym.LeadingBlanks(cons.FirstDayOfWeek())
	b.WriteString(strings.Repeat("    ", col))
	for n := 1; n <= ym.Days(); n++ {
		d, _ := ym.Day(n)
		mark := " "
		switch {
		case !cons.Allowed(d):
			mark = "-"
		case holidays[n]:
			mark = "*"
		}
		fmt.Fprintf(&b, "%3d%s", n, mark)
		col++
		if col == 7 {
			a.println(strings.TrimRight(b.String(), " "))
			b.Reset()
			col = 0
		}
	}
	if b.Len() > 0 {
		a.println(strings.TrimRight(b.String(), " "))
	}
}

type monthDayJSON struct {
	Day       int    `json:"day"`
	DayOfWeek int    `json:"day_of_week"`
	Holiday   bool   `json:"holiday"`
	Allowed   bool   `json:"allowed"`
	Gregorian string `json:"gregorian"`
}

type monthJSON struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	MonthName string         `json:"month_name"`
	Days      []monthDayJSON `json:"days"`
}

func newMonthJSON(ym persian.YearMonth, hols []persian.Date, cons *constraint.Constraints) monthJSON {
	holidays := make(map[int]bool, len(hols))
	for _, d := range hols {
		holidays[d.Day()] = true
	}
	out := monthJSON{
		Year:      ym.Year(),
		Month:     int(ym.Month()),
		MonthName: ym.Month().String(),
		Days:      make([]monthDayJSON, 0, ym.Days()),
	}
	for n := 1; n <= ym.Days(); n++ {
		d, _ := ym.Day(n)
		out.Days = append(out.Days, monthDayJSON{
			Day:       n,
			DayOfWeek: int(d.DayOfWeek()),
			Holiday:   holidays[n],
			Allowed:   cons.Allowed(d),
			Gregorian: gregorianString(d),
		})
	}
	return out
}

func (a *app) newHolidayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holiday <date>",
		Short: "Show whether a date is a holiday and why",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.parseDate(args[0])
			if err != nil {
				return err
			}
			cal, err := a.calendar()
			if err != nil {
				return err
			}
			start := time.Now()
			entries, err := cal.Occasions(cmd.Context(), d)
			a.log.LogStoreOp("occasions_on", msSince(start), err)
			if err != nil {
				return err
			}
			isHoliday := false
			for _, e := range entries {
				if e.Holiday {
					isHoliday = true
					break
				}
			}

			if a.jsonOut {
				if entries == nil {
					entries = []holiday.Entry{}
				}
				a.printJSON(map[string]interface{}{
					"date":    d,
					"holiday": isHoliday,
					"entries": entries,
				})
				return nil
			}
			if isHoliday {
				a.printf("%s (%s) is a holiday\n", d.ShortDate(a.delim), d.DayOfWeek().Latin())
			} else {
				a.printf("%s (%s) is not a holiday\n", d.ShortDate(a.delim), d.DayOfWeek().Latin())
			}
			for _, e := range entries {
				mark := " "
				if e.Holiday {
					mark = "*"
				}
				a.printf("  %s %-8s %s\n", mark, e.Kind, e.Title)
			}
			return nil
		},
	}
}

// parseWeekday accepts a weekday number (Shanbe = 1) or a Latin name or
// its first two letters.
func parseWeekday(s string) (persian.Weekday, error) {
	if n, err := strconv.Atoi(s); err == nil {
		w := persian.Weekday(n)
		if !w.Valid() {
			return 0, fmt.Errorf("invalid weekday %d (want 1-7)", n)
		}
		return w, nil
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for w := persian.Shanbe; w <= persian.Jome; w++ {
		name := strings.ToLower(w.Latin())
		if s == name || (len(s) == 2 && strings.HasPrefix(name, s)) {
			return w, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

func parseYearMonth(year, month string) (persian.YearMonth, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return persian.YearMonth{}, fmt.Errorf("invalid year %q", year)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return persian.YearMonth{}, fmt.Errorf("invalid month %q", month)
	}
	return persian.MonthOf(y, persian.Month(m))
}
