package options

import (
	"github.com/spf13/cobra"
)

// AccountOptions
type AccountOptions struct {
	Name     string
	Email    string
	Password string
}

func AddPasswordArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password.")
}

func AddProfileArgs(cmd *cobra.Command, o *AccountOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "",
		"New display name.")
	cmd.Flags().StringVar(&o.Email, "email", "",
		"New email address.")
}
