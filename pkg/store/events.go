package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"dashcal/pkg/event"
)

const (
	eventsKeyPrefix = "calendarEvents"

	// eventsSchema tags the persisted envelope so the layout can evolve.
	// The original record was a bare array; that still reads as legacy.
	eventsSchema = 1
)

type eventsEnvelope struct {
	Schema int           `json:"schema"`
	Events []event.Event `json:"events"`
}

// EventStore owns the authoritative event list for a single owner and
// mediates all reads and writes of the durable record. The record is
// loaded once and rewritten wholesale after every mutation.
type EventStore struct {
	storage *Storage
	owner   string

	events []event.Event
	loaded bool
}

// NewEventStore binds a storage handle to an owner's collection.
func NewEventStore(storage *Storage, ownerID string) *EventStore {
	return &EventStore{storage: storage, owner: ownerID}
}

func (s *EventStore) key() string {
	return fmt.Sprintf("%s-%s", eventsKeyPrefix, s.owner)
}

// Load returns the owner's events, reading the durable record on first
// use. A missing record is an empty collection, never an error.
func (s *EventStore) Load() ([]event.Event, error) {
	if s.loaded {
		return s.events, nil
	}

	var raw json.RawMessage
	ok, err := s.storage.ReadJSON(s.key(), &raw)
	if err != nil {
		return nil, err
	}

	var env eventsEnvelope
	if ok {
		if err := json.Unmarshal(raw, &env); err != nil {
			// The first persisted layout was a bare array with no
			// schema tag; accept it on read, upgrade on next write.
			var legacy []event.Event
			if err2 := json.Unmarshal(raw, &legacy); err2 != nil {
				return nil, &StorageError{Op: "decode", Key: s.key(), Err: err}
			}
			env = eventsEnvelope{Schema: eventsSchema, Events: legacy}
		}
		if env.Schema > eventsSchema {
			return nil, &StorageError{Op: "decode", Key: s.key(),
				Err: fmt.Errorf("unknown schema %d", env.Schema)}
		}
	}

	s.events = env.Events
	if s.events == nil {
		s.events = []event.Event{}
	}
	s.loaded = true
	return s.events, nil
}

// SaveAll replaces the owner's durable record with the given list.
func (s *EventStore) SaveAll(events []event.Event) error {
	if events == nil {
		events = []event.Event{}
	}
	env := eventsEnvelope{Schema: eventsSchema, Events: events}
	if err := s.storage.WriteJSON(s.key(), env); err != nil {
		return err
	}
	s.events = events
	s.loaded = true
	return nil
}

// Add assigns a fresh id, validates, appends and persists. The stored
// list is unchanged when validation fails.
func (s *EventStore) Add(e event.Event) (event.Event, error) {
	events, err := s.Load()
	if err != nil {
		return event.Event{}, err
	}

	e.Normalize()
	if fields := e.Invalid(); len(fields) > 0 {
		return event.Event{}, &ValidationError{Fields: fields}
	}

	e.ID = uuid.New().String()
	next := append(append([]event.Event{}, events...), e)
	if err := s.SaveAll(next); err != nil {
		return event.Event{}, err
	}
	return e, nil
}

// Update replaces the fields of the event with the given id, keeping the
// id itself, then re-validates and persists. An absent id is ErrNotFound.
func (s *EventStore) Update(id string, patch event.Event) (event.Event, error) {
	events, err := s.Load()
	if err != nil {
		return event.Event{}, err
	}

	idx := -1
	for i := range events {
		if events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return event.Event{}, fmt.Errorf("update %s: %w", id, ErrNotFound)
	}

	patch.ID = id
	patch.Normalize()
	if fields := patch.Invalid(); len(fields) > 0 {
		return event.Event{}, &ValidationError{Fields: fields}
	}

	next := append([]event.Event{}, events...)
	next[idx] = patch
	if err := s.SaveAll(next); err != nil {
		return event.Event{}, err
	}
	return patch, nil
}

// Remove deletes the event with the given id and persists the remainder.
// Removing an absent id is a no-op, not an error.
func (s *EventStore) Remove(id string) error {
	events, err := s.Load()
	if err != nil {
		return err
	}

	next := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.ID != id {
			next = append(next, e)
		}
	}
	if len(next) == len(events) {
		return nil
	}
	return s.SaveAll(next)
}

// Get looks up a single event by id.
func (s *EventStore) Get(id string) (event.Event, error) {
	events, err := s.Load()
	if err != nil {
		return event.Event{}, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return event.Event{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
}
