package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"dashcal/pkg/commands/options"
	"dashcal/pkg/runner/auth"
)

func addRegister(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "register <email>",
		Short: "Create an account",
		Example: `
dashcal register ada@example.com --name "Ada" -p hunter42
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an email address")
			}
			ao.Email = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Register{
				Name:     ao.Name,
				Email:    ao.Email,
				Password: ao.Password,
				Manager:  m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&ao.Name, "name", "", "Display name.")
	options.AddPasswordArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}

func addLogin(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and start a session",
		Example: `
dashcal login ada@example.com -p hunter42
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an email address")
			}
			ao.Email = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Login{
				Email:    ao.Email,
				Password: ao.Password,
				Manager:  m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddPasswordArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Logout{Manager: m}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Whoami{Manager: m}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addPasswd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Reset a forgotten password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addForgot(cmd)
	addReset(cmd)

	topLevel.AddCommand(cmd)
}

func addForgot(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}

	cmd := &cobra.Command{
		Use:   "forgot <email>",
		Short: "Mint a reset token",
		Example: `
dashcal passwd forgot ada@example.com
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an email address")
			}
			ao.Email = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Forgot{Email: ao.Email, Manager: m}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addReset(topLevel *cobra.Command) {
	ao := &options.AccountOptions{}
	token := ""

	cmd := &cobra.Command{
		Use:   "reset <email>",
		Short: "Set a new password with a reset token",
		Example: `
dashcal passwd reset ada@example.com --token <token> -p newpass
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an email address")
			}
			ao.Email = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManager()
			if err != nil {
				return output.HandleError(err)
			}
			s := auth.Reset{
				Email:    ao.Email,
				Token:    token,
				Password: ao.Password,
				Manager:  m,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Reset token from passwd forgot.")
	options.AddPasswordArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
