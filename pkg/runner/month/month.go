package month

import (
	"context"
	"errors"
	"time"

	"dashcal/pkg/printers"
	"dashcal/pkg/store"
	"dashcal/pkg/view"
)

type Month struct {
	Year  int
	Month time.Month
	Long  bool

	Store *store.EventStore
}

func (n *Month) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show month, no store")
	}

	if n.Year == 0 || n.Month == 0 {
		now := time.Now()
		if n.Year == 0 {
			n.Year = now.Year()
		}
		if n.Month == 0 {
			n.Month = now.Month()
		}
	}

	all, err := n.Store.Load()
	if err != nil {
		return err
	}
	cells := view.MonthGrid(all, n.Year, n.Month)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if n.Long {
		pp.MonthLong(n.Year, n.Month, cells)
	} else {
		pp.Month(n.Year, n.Month, cells)
	}

	return nil
}
