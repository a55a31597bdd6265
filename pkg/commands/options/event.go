package options

import (
	"github.com/spf13/cobra"
)

// EventOptions
type EventOptions struct {
	Title       string
	Description string
	Date        string
	Time        string
	Duration    string
	Location    string
	Attendees   int
	Type        string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Describe the event.")
	cmd.Flags().StringVar(&o.Time, "at", "",
		`Start time, example: --at="14:30".`)
	cmd.Flags().StringVar(&o.Duration, "for", "",
		`Duration, example: --for=1h or --for=all.`)
	cmd.Flags().StringVar(&o.Location, "where", "",
		"Location of the event.")
	cmd.Flags().IntVar(&o.Attendees, "attendees", 0,
		"Number of attendees.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"Event type: meeting, deadline, reminder or personal.")
}
