package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
	"dashcal/pkg/event"
	"dashcal/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"find"},
		Short:   "Search events by text, date and type",
		Example: `
dashcal search standup
dashcal search --on="2026-9-3"
dashcal search review -t meeting
`,
		Args: func(_ *cobra.Command, args []string) error {
			fo.Query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadEventStore()
			if err != nil {
				return output.HandleError(err)
			}

			kind := event.TypeAll
			if fo.Type != "" {
				if kind, err = event.TypeForAlias(fo.Type); err != nil {
					return output.HandleError(err)
				}
			}

			s := search.Search{
				Query:  fo.Query,
				Type:   kind,
				ShowID: io.ShowID,
				Store:  st,
			}
			if oo.OnString != "" {
				if s.On, err = oo.GetDate(); err != nil {
					return output.HandleError(err)
				}
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
