package commands

import (
	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dashcal",
		Short: options.Wrap80("Personal dashboard on the command line: calendar, inbox and account."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addMonth(topLevel)
	addSearch(topLevel)
	addRegister(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addPasswd(topLevel)
	addSettings(topLevel)
	addInbox(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
