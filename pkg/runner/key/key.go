package key

import (
	"context"

	"dashcal/pkg/printers"
)

type Key struct {
}

func (n *Key) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("event types")
	pp.Legend()
	return nil
}
