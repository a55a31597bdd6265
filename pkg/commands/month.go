package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
	"dashcal/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	long := false

	cmd := &cobra.Command{
		Use:     "month",
		Aliases: []string{"cal", "calendar"},
		Short:   "Show a month of events as a calendar grid",
		Example: `
dashcal month
dashcal month --on="2026-12-1"
dashcal month --long
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadEventStore()
			if err != nil {
				return output.HandleError(err)
			}

			s := month.Month{
				Long:  long,
				Store: st,
			}
			if on, err := oo.GetOn(); err != nil {
				return output.HandleError(err)
			} else if on != nil {
				s.Year = on.Year()
				s.Month = on.Month()
			} else {
				now := time.Now()
				s.Year = now.Year()
				s.Month = now.Month()
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVarP(&long, "long", "l", false, "One line per day with events inline.")

	topLevel.AddCommand(cmd)
}
