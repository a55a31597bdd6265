package remove

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"dashcal/pkg/dialog"
	"dashcal/pkg/store"
)

type Remove struct {
	ID        string
	Confirmed bool
	In        io.Reader

	Store *store.EventStore
}

func (n *Remove) Do(ctx context.Context) error {
	flow := dialog.NewFlow(n.Store)
	if err := flow.View(n.ID); err != nil {
		return err
	}
	if err := flow.RequestDelete(); err != nil {
		return err
	}

	selected := flow.Selected()

	if !n.Confirmed {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		fmt.Printf("Delete %q on %s? [y/N]: ", selected.Title, selected.Date)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer != "y" && answer != "yes" {
			if err := flow.CancelDelete(); err != nil {
				return err
			}
			f := color.New(color.Faint, color.Italic)
			_, _ = f.Println("kept")
			return nil
		}
	}

	if err := flow.ConfirmDelete(); err != nil {
		return err
	}

	f := color.New(color.Faint, color.Italic)
	_, _ = f.Printf("deleted %q\n", selected.Title)

	return nil
}
