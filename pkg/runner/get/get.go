package get

import (
	"context"
	"errors"
	"time"

	"dashcal/pkg/event"
	"dashcal/pkg/printers"
	"dashcal/pkg/store"
	"dashcal/pkg/view"
)

const layoutStored = "2006-01-02"

type Get struct {
	ShowID bool
	ID     string
	On     string
	Today  bool
	Limit  int
	Type   event.Type

	Store *store.EventStore
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	if n.ID != "" {
		e, err := n.Store.Get(n.ID)
		if err != nil {
			return err
		}
		pp.Title(e.Title)
		pp.EventDetail(e)
		return nil
	}

	all, err := n.Store.Load()
	if err != nil {
		return err
	}
	if n.Type != "" && n.Type != event.TypeAll {
		all = view.Search(all, "", "", n.Type)
	}

	on := n.On
	if n.Today {
		on = time.Now().Format(layoutStored)
	}
	if on != "" {
		day := view.OnDate(all, on)
		pp.TitleWithCount(on, len(day))
		pp.Events(day...)
		return nil
	}

	up := view.Upcoming(all, n.Limit)
	pp.TitleWithCount("upcoming", len(up))
	pp.Events(up...)

	return nil
}
