package add

import (
	"context"

	"dashcal/pkg/dialog"
	"dashcal/pkg/event"
	"dashcal/pkg/printers"
	"dashcal/pkg/store"
	"dashcal/pkg/view"
)

type Add struct {
	Title       string
	Description string
	Date        string
	Time        string
	Duration    event.Duration
	Location    string
	Attendees   int
	Type        event.Type

	ShowID bool
	Store  *store.EventStore
}

func (n *Add) Do(ctx context.Context) error {
	flow := dialog.NewFlow(n.Store)
	if err := flow.StartAdd(n.Date); err != nil {
		return err
	}

	draft := flow.Draft()
	draft.Title = n.Title
	draft.Description = n.Description
	if n.Time != "" {
		draft.Time = n.Time
	}
	if n.Duration != "" {
		draft.Duration = n.Duration
	}
	draft.Location = n.Location
	if n.Attendees > 0 {
		draft.Attendees = n.Attendees
	}
	if n.Type != "" {
		draft.Type = n.Type
	}
	flow.SetDraft(draft)

	added, err := flow.SubmitAdd()
	if err != nil {
		return err
	}

	all, err := n.Store.Load()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	day := view.OnDate(all, added.Date)
	pp.TitleWithCount(added.Date, len(day))
	pp.Events(day...)

	return nil
}
