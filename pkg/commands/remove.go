package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
	"dashcal/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "remove <event id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete an event, asking first",
		Example: `
dashcal remove <event id>
dashcal remove <event id> --yes
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

			s := remove.Remove{
				ID:        io.ID,
				Confirmed: co.Yes,
				In:        cmd.InOrStdin(),
				Store:     st,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
