// Package mail provides the runner logic for inbox commands.
package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"dashcal/pkg/inbox"
	"dashcal/pkg/printers"
)

type List struct {
	Filter inbox.Filter

	Mailbox *inbox.Mailbox
}

func (n *List) Do(ctx context.Context) error {
	if n.Mailbox == nil {
		return errors.New("no mailbox")
	}

	msgs, err := n.Mailbox.List(n.Filter)
	if err != nil {
		return err
	}
	_, unread, important, err := n.Mailbox.Counts()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("inbox")
	pp.Inbox(msgs...)

	f := color.New(color.Faint)
	_, _ = f.Printf("%d unread, %d important\n", unread, important)

	return nil
}

type MarkRead struct {
	ID int

	Mailbox *inbox.Mailbox
}

func (n *MarkRead) Do(ctx context.Context) error {
	if n.Mailbox == nil {
		return errors.New("no mailbox")
	}
	m, err := n.Mailbox.MarkRead(n.ID)
	if err != nil {
		return err
	}
	fmt.Printf("read: %s\n", m.Subject)
	return nil
}

type Star struct {
	ID int

	Mailbox *inbox.Mailbox
}

func (n *Star) Do(ctx context.Context) error {
	if n.Mailbox == nil {
		return errors.New("no mailbox")
	}
	m, err := n.Mailbox.ToggleImportant(n.ID)
	if err != nil {
		return err
	}
	if m.Important {
		fmt.Printf("starred: %s\n", m.Subject)
	} else {
		fmt.Printf("unstarred: %s\n", m.Subject)
	}
	return nil
}

type Remove struct {
	ID int

	Mailbox *inbox.Mailbox
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Mailbox == nil {
		return errors.New("no mailbox")
	}
	if err := n.Mailbox.Remove(n.ID); err != nil {
		return err
	}
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Println("deleted")
	return nil
}
