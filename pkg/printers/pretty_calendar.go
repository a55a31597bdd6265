package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"dashcal/pkg/view"
)

const width = len("Su Mo Tu We Th Fr Sa")

// Month renders a month grid the way a wall calendar reads: weeks as
// rows starting on Sunday, days with events in bold. Cells come from
// view.MonthGrid, so leading blanks are already in place.
func (pp *PrettyPrint) Month(year int, month time.Month, cells []view.Cell) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", month.String(), year)
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), m)

	h := color.New(color.Faint, color.Underline)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	col := 0
	for _, c := range cells {
		if c.Empty() {
			fmt.Print("   ")
		} else if len(c.Events) == 0 {
			_, _ = l1.Printf("%2d ", c.Day)
		} else {
			_, _ = l2.Printf("%2d ", c.Day)
		}

		col++
		if col == 7 {
			col = 0
			fmt.Print("\n")
		}
	}
	if col != 0 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}

// MonthLong renders one line per day with that day's events inline.
func (pp *PrettyPrint) MonthLong(year int, month time.Month, cells []view.Cell) {
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)

	now := time.Now()
	today := now.Year() == year && now.Month() == month

	weekday := time.Weekday(0)
	for _, c := range cells {
		if c.Empty() {
			weekday++
			continue
		}

		printer := p
		if weekday == time.Sunday {
			printer = s
		}
		if today && now.Day() == c.Day {
			printer = b
			if weekday == time.Sunday {
				printer = bs
			}
		}
		_, _ = printer.Printf("%2d %s", c.Day, weekday.String()[0:2])

		for i, e := range c.Events {
			if i > 0 {
				_, _ = p.Print("\n     ")
			}
			g := typeColor(e.Type)
			slot := e.Time
			if slot == "" {
				slot = "--:--"
			}
			_, _ = p.Print("  ")
			_, _ = g.Print(e.Type.Glyph().Symbol)
			_, _ = p.Printf(" %s %s", slot, e.Title)
		}
		_, _ = p.Print("\n")

		weekday++
		if weekday > time.Saturday {
			weekday = time.Sunday
		}
	}
	fmt.Print("\n")
}
