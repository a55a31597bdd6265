package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dashcal/pkg/event"
)

func newStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := OpenPath(t.TempDir())
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	return s
}

func TestAddThenLoad(t *testing.T) {
	st := NewEventStore(newStorage(t), "alice")

	created, err := st.Add(event.Event{Title: "Standup", Date: "2025-06-10", Time: "09:00", Type: event.Meeting})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID == "" {
		t.Fatal("no id assigned")
	}

	events, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	got := events[0]
	if got.ID != created.ID || got.Title != "Standup" || got.Date != "2025-06-10" {
		t.Errorf("stored event mismatch: %+v", got)
	}
}

func TestAddValidation(t *testing.T) {
	st := NewEventStore(newStorage(t), "alice")

	tests := []struct {
		name string
		e    event.Event
	}{
		{"empty title", event.Event{Date: "2025-06-10"}},
		{"empty date", event.Event{Title: "x"}},
		{"both empty", event.Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := st.Add(tt.e)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			events, _ := st.Load()
			if len(events) != 0 {
				t.Errorf("store changed on failed add: %d events", len(events))
			}
		})
	}
}

func TestAddNormalizes(t *testing.T) {
	st := NewEventStore(newStorage(t), "alice")

	created, err := st.Add(event.Event{Title: "x", Date: "2025-06-10", Attendees: -2})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.Time != "09:00" {
		t.Errorf("time: got %q", created.Time)
	}
	if created.Duration != event.OneHour {
		t.Errorf("duration: got %q", created.Duration)
	}
	if created.Type != event.Meeting {
		t.Errorf("type: got %q", created.Type)
	}
	if created.Attendees != 1 {
		t.Errorf("attendees: got %d", created.Attendees)
	}
}

func TestUpdate(t *testing.T) {
	st := NewEventStore(newStorage(t), "alice")
	created, err := st.Add(event.Event{Title: "Standup", Date: "2025-06-10"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	patch := created
	patch.Title = "Retro"
	patch.Time = "14:00"
	updated, err := st.Update(created.ID, patch)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id changed: %s -> %s", created.ID, updated.ID)
	}
	if updated.Title != "Retro" || updated.Time != "14:00" {
		t.Errorf("patch not applied: %+v", updated)
	}

	events, _ := st.Load()
	if len(events) != 1 || events[0].Title != "Retro" {
		t.Errorf("stored list: %+v", events)
	}
}

func TestUpdateValidationKeepsStored(t *testing.T) {
	st := NewEventStore(newStorage(t), "alice")
	created, err := st.Add(event.Event{Title: "Standup", Date: "2025-06-10"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	patch := created
	patch.Title = ""
	_, err = st.Update(created.ID, patch)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	got, err := st.Get(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Standup" {
		t.Errorf("stored title: got %q, want Standup", got.Title)
	}
}

func TestUpdateNotFound(t *testing.T) {
	st := NewEventStore(newStorage(t), "alice")
	_, err := st.Update("missing", event.Event{Title: "x", Date: "2025-06-10"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	st := NewEventStore(newStorage(t), "alice")
	created, err := st.Add(event.Event{Title: "Standup", Date: "2025-06-10"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := st.Remove("missing"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	events, _ := st.Load()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	if err := st.Remove(created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	events, _ = st.Load()
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestDurableAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	storage, err := OpenPath(dir)
	if err != nil {
		t.Fatal(err)
	}

	st := NewEventStore(storage, "alice")
	created, err := st.Add(event.Event{Title: "Standup", Date: "2025-06-10"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	reopened, err := OpenPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	events, err := NewEventStore(reopened, "alice").Load()
	if err != nil {
		t.Fatalf("load after reopen: %v", err)
	}
	if len(events) != 1 || events[0].ID != created.ID {
		t.Errorf("events after reopen: %+v", events)
	}
}

func TestOwnersIsolated(t *testing.T) {
	storage := newStorage(t)
	alice := NewEventStore(storage, "alice")
	bob := NewEventStore(storage, "bob")

	if _, err := alice.Add(event.Event{Title: "Standup", Date: "2025-06-10"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	events, err := bob.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("bob sees alice's events: %+v", events)
	}
}

func TestLoadMissingRecord(t *testing.T) {
	st := NewEventStore(newStorage(t), "nobody")
	events, err := st.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestLoadLegacyArray(t *testing.T) {
	dir := t.TempDir()
	// the pre-envelope layout: a bare JSON array
	legacy := `[{"id":"1","title":"Standup","date":"2025-06-10","time":"09:00","attendees":1,"type":"meeting"}]`
	if err := os.MkdirAll(filepath.Join(dir, "calendarEvents"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "calendarEvents", "alice"), []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	storage, err := OpenPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	events, err := NewEventStore(storage, "alice").Load()
	if err != nil {
		t.Fatalf("load legacy: %v", err)
	}
	if len(events) != 1 || events[0].Title != "Standup" {
		t.Errorf("legacy events: %+v", events)
	}
}

func TestLoadUnknownSchema(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "calendarEvents"), 0o755); err != nil {
		t.Fatal(err)
	}
	blob := `{"schema":99,"events":[]}`
	if err := os.WriteFile(filepath.Join(dir, "calendarEvents", "alice"), []byte(blob), 0o644); err != nil {
		t.Fatal(err)
	}

	storage, err := OpenPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	_, err = NewEventStore(storage, "alice").Load()
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}
