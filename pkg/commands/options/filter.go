package options

import (
	"github.com/spf13/cobra"
)

// FilterOptions
type FilterOptions struct {
	Query string
	Type  string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "all",
		"Filter by event type, or 'all'.")
}
