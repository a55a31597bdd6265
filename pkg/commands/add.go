package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
	"dashcal/pkg/event"
	"dashcal/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an event to the calendar",
		Example: `
dashcal add standup --at=09:30 --for=30m
dashcal add "dentist" --on="2/28" --at=14:00 -t personal
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event title")
			}
			eo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadEventStore()
			if err != nil {
				return output.HandleError(err)
			}

			date, err := oo.GetDate()
			if err != nil {
				return output.HandleError(err)
			}

			var duration event.Duration
			if eo.Duration != "" {
				if duration, err = event.DurationForAlias(eo.Duration); err != nil {
					return output.HandleError(err)
				}
			}
			var kind event.Type
			if eo.Type != "" {
				if kind, err = event.TypeForAlias(eo.Type); err != nil {
					return output.HandleError(err)
				}
			}

			s := add.Add{
				Title:       eo.Title,
				Description: eo.Description,
				Date:        date,
				Time:        eo.Time,
				Duration:    duration,
				Location:    eo.Location,
				Attendees:   eo.Attendees,
				Type:        kind,
				ShowID:      io.ShowID,
				Store:       st,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
