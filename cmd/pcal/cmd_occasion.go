package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/daviddao/persiancal/pkg/model"
)

func (a *app) newOccasionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "occasion",
		Aliases: []string{"occ"},
		Short:   "Manage your own dated occasions",
	}
	cmd.AddCommand(a.newOccasionAddCmd(), a.newOccasionListCmd(), a.newOccasionRmCmd())
	return cmd
}

func (a *app) newOccasionAddCmd() *cobra.Command {
	var isHoliday bool
	cmd := &cobra.Command{
		Use:   "add <yyyy/MM/dd|MM/dd> <title>",
		Short: "Record an occasion; MM/dd recurs every year",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, day, err := a.parseOccasionDate(args[0])
			if err != nil {
				return err
			}
			title := strings.Join(args[1:], " ")
			o, err := model.NewOccasion(year, month, day, title, isHoliday, a.clk.Now())
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			start := time.Now()
			err = s.AddOccasion(cmd.Context(), &o)
			a.log.LogStoreOp("add_occasion", msSince(start), err)
			if err != nil {
				return err
			}
			a.log.WithCommand("occasion add").Infow("occasion added", "id", o.ID, "title", o.Title)

			if a.jsonOut {
				a.printJSON(o)
				return nil
			}
			a.printf("added %s  %s  %s\n", o.ID, a.occasionDate(o), o.Title)
			return nil
		},
	}
	cmd.Flags().BoolVar(&isHoliday, "holiday", false, "mark the occasion as a holiday")
	return cmd
}

func (a *app) newOccasionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded occasions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			start := time.Now()
			occ, err := s.ListOccasions(cmd.Context())
			a.log.LogStoreOp("list_occasions", msSince(start), err)
			if err != nil {
				return err
			}

			if a.jsonOut {
				if occ == nil {
					occ = []model.Occasion{}
				}
				a.printJSON(occ)
				return nil
			}
			if len(occ) == 0 {
				a.println("no occasions")
				return nil
			}
			for _, o := range occ {
				mark := " "
				if o.Holiday {
					mark = "*"
				}
				a.printf("%s %s  %-10s  %s\n", mark, o.ID, a.occasionDate(o), o.Title)
			}
			return nil
		},
	}
}

func (a *app) newOccasionRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete an occasion",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid occasion id %q", args[0])
			}
			s, err := a.openStore()
			if err != nil {
				return err
			}
			start := time.Now()
			err = s.DeleteOccasion(cmd.Context(), id)
			a.log.LogStoreOp("delete_occasion", msSince(start), err)
			if err != nil {
				return err
			}
			if a.jsonOut {
				a.printJSON(map[string]string{"deleted": id.String()})
				return nil
			}
			a.printf("deleted %s\n", id)
			return nil
		},
	}
}

// parseOccasionDate accepts a full Persian date or a month and day. The
// latter returns year 0, which recurs every year.
func (a *app) parseOccasionDate(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), a.delim)
	if len(parts) == 2 {
		m, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		dd, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			return 0, 0, 0, fmt.Errorf("invalid month and day %q", s)
		}
		return 0, m, dd, nil
	}
	d, err := a.parseDate(s)
	if err != nil {
		return 0, 0, 0, err
	}
	return d.Year(), int(d.Month()), d.Day(), nil
}

func (a *app) occasionDate(o model.Occasion) string {
	if o.Recurring() {
		return fmt.Sprintf("%02d%s%02d", o.Month, a.delim, o.Day)
	}
	return fmt.Sprintf("%d%s%02d%s%02d", o.Year, a.delim, o.Month, a.delim, o.Day)
}
