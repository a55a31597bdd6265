package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
	"dashcal/pkg/event"
	"dashcal/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <event id>",
		Short: "Edit an event, only the given flags change",
		Example: `
dashcal edit <event id> --title "sprint review" --at=15:00
dashcal edit <event id> --on="3/2"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadEventStore()
			if err != nil {
				return output.HandleError(err)
			}

			current, err := st.Get(io.ID)
			if err != nil {
				return output.HandleError(err)
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				current.Title = eo.Title
			}
			if flags.Changed("description") {
				current.Description = eo.Description
			}
			if flags.Changed("on") {
				if current.Date, err = oo.GetDate(); err != nil {
					return output.HandleError(err)
				}
			}
			if flags.Changed("at") {
				current.Time = eo.Time
			}
			if flags.Changed("for") {
				if current.Duration, err = event.DurationForAlias(eo.Duration); err != nil {
					return output.HandleError(err)
				}
			}
			if flags.Changed("where") {
				current.Location = eo.Location
			}
			if flags.Changed("attendees") {
				current.Attendees = eo.Attendees
			}
			if flags.Changed("type") {
				if current.Type, err = event.TypeForAlias(eo.Type); err != nil {
					return output.HandleError(err)
				}
			}

			s := edit.Edit{
				ID:     io.ID,
				Event:  current,
				ShowID: io.ShowID,
				Store:  st,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&eo.Title, "title", "", "New event title.")
	options.AddEventArgs(cmd, eo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
