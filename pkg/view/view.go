// Package view derives render-ready projections from an event list. All
// functions are pure: they never mutate their input and never touch
// storage.
package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"dashcal/pkg/event"
)

// Cell is one position in a month grid: either leading padding (Day 0)
// or a day of the month carrying that day's events.
type Cell struct {
	Day    int
	Events []event.Event
}

// Empty reports whether the cell is padding.
func (c Cell) Empty() bool {
	return c.Day == 0
}

// OnDate returns the events landing on an exact date, in list order.
func OnDate(events []event.Event, date string) []event.Event {
	var out []event.Event
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// MonthGrid lays a month out as consecutive calendar positions: one
// empty cell per weekday before the first (Sunday-first, so a month
// starting on Wednesday gets three), then one cell per day. A month
// with no events still yields the full grid.
func MonthGrid(events []event.Event, year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday()) // Sunday == 0
	days := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		cells = append(cells, Cell{Day: day, Events: OnDate(events, date)})
	}
	return cells
}

// Upcoming returns the events sorted ascending by date then time,
// stably, so same-slot events keep their list order. Events without a
// time sort as if scheduled at midnight. A limit of zero or less keeps
// everything.
func Upcoming(events []event.Event, limit int) []event.Event {
	out := make([]event.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return slotKey(out[i]) < slotKey(out[j])
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Search filters by query, date and type, then orders as Upcoming does.
// An empty query matches everything; the query is a case-insensitive
// substring match over title and description. An empty dateFilter
// matches every date; a typeFilter of "all" matches every type.
func Search(events []event.Event, query, dateFilter string, typeFilter event.Type) []event.Event {
	q := strings.ToLower(query)
	var out []event.Event
	for _, e := range events {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) {
			continue
		}
		if dateFilter != "" && e.Date != dateFilter {
			continue
		}
		if typeFilter != "" && typeFilter != event.TypeAll && e.Type != typeFilter {
			continue
		}
		out = append(out, e)
	}
	return Upcoming(out, 0)
}

// slotKey orders ISO dates and zero-padded times correctly as strings.
func slotKey(e event.Event) string {
	clock := e.Time
	if clock == "" {
		clock = "00:00"
	}
	return e.Date + " " + clock
}
