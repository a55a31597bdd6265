package event

import (
	"testing"
	"time"
)

func TestNormalizeDefaults(t *testing.T) {
	e := &Event{Title: "Standup", Date: "2025-06-10"}
	e.Normalize()

	if e.Time != "09:00" {
		t.Errorf("time: got %q", e.Time)
	}
	if e.Duration != OneHour {
		t.Errorf("duration: got %q", e.Duration)
	}
	if e.Type != Meeting {
		t.Errorf("type: got %q", e.Type)
	}
	if e.Attendees != 1 {
		t.Errorf("attendees: got %d", e.Attendees)
	}
}

func TestNormalizeCoercesAttendees(t *testing.T) {
	for _, n := range []int{-3, 0} {
		e := &Event{Title: "x", Date: "2025-06-10", Attendees: n}
		e.Normalize()
		if e.Attendees != 1 {
			t.Errorf("attendees %d: got %d, want 1", n, e.Attendees)
		}
	}

	e := &Event{Title: "x", Date: "2025-06-10", Attendees: 7}
	e.Normalize()
	if e.Attendees != 7 {
		t.Errorf("attendees 7 clobbered to %d", e.Attendees)
	}
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		e    Event
		want []string
	}{
		{"valid", Event{Title: "Standup", Date: "2025-06-10", Time: "09:00", Duration: OneHour, Type: Meeting}, nil},
		{"valid minimal", Event{Title: "x", Date: "2025-06-10"}, nil},
		{"empty title", Event{Date: "2025-06-10"}, []string{"title"}},
		{"empty date", Event{Title: "x"}, []string{"date"}},
		{"both empty", Event{}, []string{"title", "date"}},
		{"bad date", Event{Title: "x", Date: "June 10"}, []string{"date"}},
		{"bad time", Event{Title: "x", Date: "2025-06-10", Time: "9am"}, []string{"time"}},
		{"bad duration", Event{Title: "x", Date: "2025-06-10", Duration: "45 minutes"}, []string{"duration"}},
		{"bad type", Event{Title: "x", Date: "2025-06-10", Type: "party"}, []string{"type"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.e.Invalid()
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDurationForAlias(t *testing.T) {
	tests := []struct {
		alias string
		want  Duration
	}{
		{"30m", HalfHour},
		{"1h", OneHour},
		{"1.5h", NinetyMinutes},
		{"2 hours", TwoHours},
		{"3h", ThreeHours},
		{"all", AllDay},
	}
	for _, tt := range tests {
		got, err := DurationForAlias(tt.alias)
		if err != nil {
			t.Fatalf("%s: %v", tt.alias, err)
		}
		if got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.alias, got, tt.want)
		}
	}

	if _, err := DurationForAlias("forever"); err == nil {
		t.Error("expected error for unknown alias")
	}
}

func TestDurationMinutes(t *testing.T) {
	if got := NinetyMinutes.Minutes(); got != 90 {
		t.Errorf("got %d", got)
	}
	if got := AllDay.Minutes(); got != 1440 {
		t.Errorf("got %d", got)
	}
}

func TestTypeForAlias(t *testing.T) {
	if tp, err := TypeForAlias("deadline"); err != nil || tp != Deadline {
		t.Errorf("got %q, %v", tp, err)
	}
	if tp, err := TypeForAlias("all"); err != nil || tp != TypeAll {
		t.Errorf("got %q, %v", tp, err)
	}
	if _, err := TypeForAlias("party"); err == nil {
		t.Error("expected error")
	}
}

func TestStarts(t *testing.T) {
	e := &Event{Title: "x", Date: "2025-06-10", Time: "14:30"}
	got, err := e.Starts()
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2025, 6, 10, 14, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	e.Time = ""
	got, err = e.Starts()
	if err != nil {
		t.Fatal(err)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("timeless event should start at midnight, got %v", got)
	}
}
