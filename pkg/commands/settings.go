package commands

import (
	"context"

	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
	"dashcal/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the logged-in profile",
		Example: `
dashcal settings
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}
			s := settings.Show{Manager: m}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addSettingsEdit(cmd)

	topLevel.AddCommand(cmd)
}

func addSettingsEdit(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change the profile name or email",
		Long:  options.Wrap80("Change the display name or email on the current account. The current password is required to confirm the change."),
		Example: `
dashcal settings edit --name "Ada Lovelace" -p hunter42
dashcal settings edit --email ada@newjob.com -p hunter42
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}
			s := settings.Edit{
				Password: ao.Password,
				Name:     ao.Name,
				Email:    ao.Email,
				Manager:  m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddProfileArgs(cmd, ao)
	options.AddPasswordArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
