package edit

import (
	"context"

	"dashcal/pkg/dialog"
	"dashcal/pkg/event"
	"dashcal/pkg/printers"
	"dashcal/pkg/store"
)

// Edit replaces an event's fields. The command layer composes Event
// from the stored record plus whichever flags were set.
type Edit struct {
	ID    string
	Event event.Event

	ShowID bool
	Store  *store.EventStore
}

func (n *Edit) Do(ctx context.Context) error {
	flow := dialog.NewFlow(n.Store)
	if err := flow.View(n.ID); err != nil {
		return err
	}
	if err := flow.StartEdit(); err != nil {
		return err
	}
	flow.SetDraft(n.Event)

	updated, err := flow.SubmitEdit()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title(updated.Title)
	pp.EventDetail(updated)

	return nil
}
