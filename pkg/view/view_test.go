package view

import (
	"testing"
	"time"

	"dashcal/pkg/event"
)

func ev(id, title, date, clock string) event.Event {
	return event.Event{ID: id, Title: title, Date: date, Time: clock, Type: event.Meeting, Attendees: 1}
}

func TestOnDate(t *testing.T) {
	events := []event.Event{
		ev("1", "Standup", "2025-06-10", "09:00"),
		ev("2", "Review", "2025-06-10", "14:00"),
		ev("3", "Dentist", "2025-06-11", "10:00"),
	}

	got := OnDate(events, "2025-06-10")
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("wrong events or order: %+v", got)
	}

	if got := OnDate(events, "2025-12-25"); len(got) != 0 {
		t.Errorf("expected none, got %+v", got)
	}
	if got := OnDate(nil, "2025-06-10"); len(got) != 0 {
		t.Errorf("expected none for empty input, got %+v", got)
	}
}

func TestUpcomingOrder(t *testing.T) {
	events := []event.Event{
		ev("afternoon", "Review", "2025-06-10", "14:00"),
		ev("morning", "Standup", "2025-06-10", "09:00"),
		ev("earlier-day", "Kickoff", "2025-06-09", "16:00"),
	}

	got := Upcoming(events, 0)
	want := []string{"earlier-day", "morning", "afternoon"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s (%+v)", i, got[i].ID, id, got)
		}
	}
}

func TestUpcomingStable(t *testing.T) {
	events := []event.Event{
		ev("first", "A", "2025-06-10", "09:00"),
		ev("second", "B", "2025-06-10", "09:00"),
		ev("third", "C", "2025-06-10", "09:00"),
	}

	got := Upcoming(events, 0)
	for i, id := range []string{"first", "second", "third"} {
		if got[i].ID != id {
			t.Fatalf("tie order not stable: %+v", got)
		}
	}
}

func TestUpcomingMissingTimeSortsFirst(t *testing.T) {
	events := []event.Event{
		ev("timed", "Standup", "2025-06-10", "09:00"),
		ev("timeless", "Sometime", "2025-06-10", ""),
	}

	got := Upcoming(events, 0)
	if got[0].ID != "timeless" {
		t.Errorf("timeless event should sort as 00:00: %+v", got)
	}
}

func TestUpcomingLimit(t *testing.T) {
	events := []event.Event{
		ev("1", "A", "2025-06-10", "09:00"),
		ev("2", "B", "2025-06-11", "09:00"),
		ev("3", "C", "2025-06-12", "09:00"),
	}

	if got := Upcoming(events, 2); len(got) != 2 {
		t.Errorf("limit 2: got %d", len(got))
	}
	if got := Upcoming(events, 0); len(got) != 3 {
		t.Errorf("no limit: got %d", len(got))
	}
	if got := Upcoming(nil, 5); len(got) != 0 {
		t.Errorf("empty input: got %d", len(got))
	}
}

func TestUpcomingDoesNotMutateInput(t *testing.T) {
	events := []event.Event{
		ev("b", "B", "2025-06-11", "09:00"),
		ev("a", "A", "2025-06-10", "09:00"),
	}
	Upcoming(events, 0)
	if events[0].ID != "b" {
		t.Error("input slice reordered")
	}
}

func TestSearch(t *testing.T) {
	events := []event.Event{
		ev("1", "Standup", "2025-06-10", "09:00"),
		{ID: "2", Title: "Lunch", Description: "Standing reservation", Date: "2025-06-10", Time: "12:00", Type: event.Personal},
		ev("3", "Deploy", "2025-06-11", "10:00"),
	}
	events[2].Type = event.Deadline

	tests := []struct {
		name    string
		query   string
		date    string
		typ     event.Type
		wantIDs []string
	}{
		{"blank matches all, ordered", "", "", event.TypeAll, []string{"1", "2", "3"}},
		{"title substring, case-insensitive", "stand", "", event.TypeAll, []string{"1", "2"}},
		{"description substring", "reservation", "", event.TypeAll, []string{"2"}},
		{"date filter", "", "2025-06-11", event.TypeAll, []string{"3"}},
		{"type filter", "", "", event.Deadline, []string{"3"}},
		{"query and type", "stand", "", event.Personal, []string{"2"}},
		{"no match", "retro", "", event.TypeAll, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(events, tt.query, tt.date, tt.typ)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d results, want %d: %+v", len(got), len(tt.wantIDs), got)
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestSearchMatchesUpcomingOrder(t *testing.T) {
	events := []event.Event{
		ev("later", "A", "2025-06-12", "09:00"),
		ev("sooner", "B", "2025-06-10", "09:00"),
	}

	searched := Search(events, "", "", event.TypeAll)
	upcoming := Upcoming(events, 0)
	if len(searched) != len(upcoming) {
		t.Fatalf("length mismatch: %d vs %d", len(searched), len(upcoming))
	}
	for i := range searched {
		if searched[i].ID != upcoming[i].ID {
			t.Errorf("order diverges at %d", i)
		}
	}
}

func TestMonthGridJune2025(t *testing.T) {
	// June 2025 starts on a Sunday: no leading padding, 30 day cells.
	events := []event.Event{ev("1", "Standup", "2025-06-10", "09:00")}

	cells := MonthGrid(events, 2025, time.June)
	if len(cells) != 30 {
		t.Fatalf("got %d cells, want 30", len(cells))
	}
	if cells[0].Day != 1 {
		t.Errorf("first cell: %+v", cells[0])
	}
	if got := cells[9]; got.Day != 10 || len(got.Events) != 1 || got.Events[0].ID != "1" {
		t.Errorf("day 10 cell: %+v", got)
	}
}

func TestMonthGridLeadingPadding(t *testing.T) {
	// July 2025 starts on a Tuesday: offset 2.
	cells := MonthGrid(nil, 2025, time.July)
	if len(cells) != 2+31 {
		t.Fatalf("got %d cells, want 33", len(cells))
	}
	for i := 0; i < 2; i++ {
		if !cells[i].Empty() {
			t.Errorf("cell %d should be padding: %+v", i, cells[i])
		}
	}
	if cells[2].Day != 1 || cells[32].Day != 31 {
		t.Errorf("day cells misplaced: first=%+v last=%+v", cells[2], cells[32])
	}
}

func TestMonthGridEmptyMonth(t *testing.T) {
	cells := MonthGrid(nil, 2025, time.February)
	if len(cells) != 6+28 {
		t.Fatalf("got %d cells, want 34", len(cells))
	}
	for _, c := range cells {
		if len(c.Events) != 0 {
			t.Errorf("unexpected events in %+v", c)
		}
	}
}
