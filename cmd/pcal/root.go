package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pcal",
		Short: "Persian (Jalali) calendar conversions and occasions",
		Long: `pcal converts between Persian dates, Gregorian dates, and epoch
milliseconds, formats and validates Persian date strings, prints month
grids with holidays, and keeps a SQLite store of your own occasions.

Environment:
  PCAL_DB          SQLite database path (default: .persiancal/pcal.db)
  PCAL_DELIMITER   date delimiter (default: /)
  PCAL_LAYOUT      default output layout or pattern name (default: yyyy/MM/dd)
  PCAL_TZ          zone for "today" and "month" (default: Asia/Tehran)
  PCAL_NOW         pin the clock to this epoch millisecond
  PCAL_LOG_LEVEL   debug, info, warn, error (default: warn)
  PCAL_LOG_FORMAT  console or json (default: console)

Settings may also come from a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(); err != nil {
				return err
			}
			a.log.WithCommand(cmd.CommandPath()).Debugw("run", "args", args)
			return nil
		},
	}
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "JSON output")
	root.PersistentFlags().StringVar(&a.delim, "delim", "", "date delimiter (overrides PCAL_DELIMITER)")

	root.AddCommand(
		a.newTodayCmd(),
		a.newFromEpochCmd(),
		a.newToEpochCmd(),
		a.newFromGregorianCmd(),
		a.newToGregorianCmd(),
		a.newParseCmd(),
		a.newFormatCmd(),
		a.newShiftCmd(),
		a.newMonthCmd(),
		a.newLeapCmd(),
		a.newHolidayCmd(),
		a.newOccasionCmd(),
		a.newVersionCmd(),
	)
	return root
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pcal version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if a.jsonOut {
				a.printJSON(map[string]string{"version": version})
				return
			}
			a.println("pcal", version)
		},
	}
}
