package search

import (
	"context"
	"errors"

	"dashcal/pkg/event"
	"dashcal/pkg/printers"
	"dashcal/pkg/store"
	"dashcal/pkg/view"
)

type Search struct {
	Query string
	On    string
	Type  event.Type

	ShowID bool
	Store  *store.EventStore
}

func (n *Search) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not search, no store")
	}

	all, err := n.Store.Load()
	if err != nil {
		return err
	}
	hits := view.Search(all, n.Query, n.On, n.Type)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount("results", len(hits))
	pp.Events(hits...)

	return nil
}
