package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"dashcal/pkg/event"
	"dashcal/pkg/inbox"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

func typeColor(t event.Type) *color.Color {
	switch t {
	case event.Meeting:
		return color.New(color.FgBlue)
	case event.Deadline:
		return color.New(color.FgRed)
	case event.Reminder:
		return color.New(color.FgYellow)
	case event.Personal:
		return color.New(color.FgGreen)
	default:
		return color.New()
	}
}

// Events prints a list of events one per line, glyph first.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range events {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			if pad := len(spacing) - len(e.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		g := typeColor(e.Type)
		_, _ = g.Print(e.Type.Glyph().Symbol)
		slot := e.Time
		if slot == "" {
			slot = "--:--"
		}
		_, _ = t.Printf(" %s %s  %s\n", e.Date, slot, e.Title)
	}
	_, _ = t.Println("")
}

// EventDetail prints the full record for one event.
func (pp *PrettyPrint) EventDetail(e event.Event) {
	table := uitable.New()
	table.Separator = "  "

	k := color.New(color.Faint)

	table.AddRow(k.Sprint("id"), e.ID)
	table.AddRow(k.Sprint("title"), e.Title)
	if e.Description != "" {
		table.AddRow(k.Sprint("description"), e.Description)
	}
	table.AddRow(k.Sprint("date"), e.Date)
	table.AddRow(k.Sprint("time"), e.Time)
	table.AddRow(k.Sprint("duration"), string(e.Duration))
	if e.Location != "" {
		table.AddRow(k.Sprint("location"), e.Location)
	}
	table.AddRow(k.Sprint("attendees"), e.Attendees)
	table.AddRow(k.Sprint("type"), typeColor(e.Type).Sprintf("%s %s", e.Type.Glyph().Symbol, e.Type))

	fmt.Println(table)
	fmt.Println("")
}

// Inbox prints messages as a table, unread rows in bold.
func (pp *PrettyPrint) Inbox(messages ...inbox.Message) {
	if len(messages) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.Separator = "  "

	h := color.New(color.Faint)
	table.AddRow(h.Sprint("id"), h.Sprint(""), h.Sprint("from"), h.Sprint("subject"), h.Sprint("when"))

	b := color.New(color.Bold)
	p := color.New()
	star := color.New(color.FgYellow)

	for _, m := range messages {
		row := p
		if m.Status == inbox.Unread {
			row = b
		}
		mark := " "
		if m.Important {
			mark = star.Sprint("★")
		}
		table.AddRow(row.Sprint(m.ID), mark, row.Sprint(m.Sender), row.Sprint(m.Subject), row.Sprintf("%s %s", m.Date, m.Time))
	}

	fmt.Println(table)
	fmt.Println("")
}

// Legend prints the glyph key for event types.
func (pp *PrettyPrint) Legend() {
	table := uitable.New()
	table.Separator = "  "
	for _, t := range event.Types() {
		g := t.Glyph()
		table.AddRow(typeColor(t).Sprint(g.Symbol), t.String(), color.New(color.Faint).Sprint(g.Meaning))
	}
	fmt.Println(table)
	fmt.Println("")
}
