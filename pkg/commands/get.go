package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
	"dashcal/pkg/event"
	"dashcal/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OnOptions{}
	today := false
	limit := 0
	kind := event.TypeAll

	cmd := &cobra.Command{
		Use:     "get [type]",
		Aliases: []string{"list", "ls"},
		Short:   "List upcoming events, one day, or a single event",
		Example: `
dashcal get
dashcal get meetings --limit 5
dashcal get --today
dashcal get --on="2026-9-3"
dashcal get --id <event id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("at most one event type")
			}
			var err error
			kind, err = event.TypeForAlias(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadEventStore()
			if err != nil {
				return output.HandleError(err)
			}

			s := get.Get{
				ShowID: io.ShowID,
				ID:     io.ID,
				Today:  today,
				Limit:  limit,
				Type:   kind,
				Store:  st,
			}
			if !today && oo.OnString != "" {
				if s.On, err = oo.GetDate(); err != nil {
					return output.HandleError(err)
				}
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	options.AddIDArgs(cmd, io)
	cmd.Flags().BoolVar(&today, "today", false, "Show today's events.")
	cmd.Flags().IntVar(&limit, "limit", 0, "Cap the upcoming list.")

	topLevel.AddCommand(cmd)
}
