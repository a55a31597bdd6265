package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"dashcal/pkg/inbox"
	"dashcal/pkg/runner/mail"
)

func addInbox(topLevel *cobra.Command) {
	filter := string(inbox.All)

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Show the inbox",
		Example: `
dashcal inbox
dashcal inbox --filter unread
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := loadMailbox()
			if err != nil {
				return output.HandleError(err)
			}
			switch inbox.Filter(filter) {
			case inbox.All, inbox.OnlyUnread, inbox.Important:
			default:
				return output.HandleError(errors.New("filter must be all, unread or important"))
			}
			s := mail.List{Filter: inbox.Filter(filter), Mailbox: box}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", string(inbox.All),
		"Show all, unread or important messages.")

	addInboxRead(cmd)
	addInboxStar(cmd)
	addInboxRemove(cmd)

	topLevel.AddCommand(cmd)
}

func inboxID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("requires a message id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.New("message id must be a number")
	}
	return id, nil
}

func addInboxRead(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:   "read <message id>",
		Short: "Mark a message read",
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			id, err = inboxID(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := loadMailbox()
			if err != nil {
				return output.HandleError(err)
			}
			s := mail.MarkRead{ID: id, Mailbox: box}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addInboxStar(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:   "star <message id>",
		Short: "Toggle a message's important flag",
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			id, err = inboxID(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := loadMailbox()
			if err != nil {
				return output.HandleError(err)
			}
			s := mail.Star{ID: id, Mailbox: box}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addInboxRemove(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:     "remove <message id>",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete a message",
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			id, err = inboxID(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := loadMailbox()
			if err != nil {
				return output.HandleError(err)
			}
			s := mail.Remove{ID: id, Mailbox: box}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
