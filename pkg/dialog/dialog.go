// Package dialog models the add/view/edit/delete lifecycle around an
// owner's event collection. Exactly one dialog-equivalent state is
// active at a time; opening edit or delete from the view closes the
// view, and a failed validation keeps the form open for another try.
package dialog

import (
	"errors"
	"fmt"

	"dashcal/pkg/event"
	"dashcal/pkg/store"
)

// State names the active dialog.
type State int

const (
	Idle State = iota
	Adding
	Viewing
	Editing
	ConfirmingDelete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Adding:
		return "adding"
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case ConfirmingDelete:
		return "confirming delete"
	}
	return "unknown"
}

// Flow drives the lifecycle over one owner's event store.
type Flow struct {
	store    *store.EventStore
	state    State
	selected event.Event
	draft    event.Event
}

// NewFlow starts in Idle.
func NewFlow(st *store.EventStore) *Flow {
	return &Flow{store: st}
}

func (f *Flow) State() State {
	return f.state
}

// Selected returns the event the view/edit/delete states operate on.
func (f *Flow) Selected() event.Event {
	return f.selected
}

// Draft returns the form contents of the Adding or Editing state.
func (f *Flow) Draft() event.Event {
	return f.draft
}

// SetDraft replaces the form contents while Adding or Editing.
func (f *Flow) SetDraft(e event.Event) {
	f.draft = e
}

// StartAdd opens the add form, pre-filled with defaults on the given
// date.
func (f *Flow) StartAdd(date string) error {
	if f.state != Idle {
		return fmt.Errorf("cannot add while %s", f.state)
	}
	f.draft = *event.New("", date)
	f.state = Adding
	return nil
}

// SubmitAdd persists the draft. On validation failure the form stays
// open with the draft intact and the error is returned to the caller.
func (f *Flow) SubmitAdd() (event.Event, error) {
	if f.state != Adding {
		return event.Event{}, fmt.Errorf("no add in progress (state %s)", f.state)
	}
	created, err := f.store.Add(f.draft)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			return event.Event{}, err // stay in Adding
		}
		f.state = Idle
		return event.Event{}, err
	}
	f.state = Idle
	f.draft = event.Event{}
	return created, nil
}

// View selects an existing event. Asking for an absent id is a caller
// error, not a state transition.
func (f *Flow) View(id string) error {
	if f.state != Idle {
		return fmt.Errorf("cannot view while %s", f.state)
	}
	e, err := f.store.Get(id)
	if err != nil {
		return err
	}
	f.selected = e
	f.state = Viewing
	return nil
}

// StartEdit switches the open view into the edit form.
func (f *Flow) StartEdit() error {
	if f.state != Viewing {
		return fmt.Errorf("cannot edit while %s", f.state)
	}
	f.draft = f.selected
	f.state = Editing
	return nil
}

// SubmitEdit persists the edited draft under the selected id. Validation
// failures keep the form open; the stored event is unchanged.
func (f *Flow) SubmitEdit() (event.Event, error) {
	if f.state != Editing {
		return event.Event{}, fmt.Errorf("no edit in progress (state %s)", f.state)
	}
	updated, err := f.store.Update(f.selected.ID, f.draft)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			return event.Event{}, err // stay in Editing
		}
		f.state = Idle
		return event.Event{}, err
	}
	f.state = Idle
	f.selected = event.Event{}
	f.draft = event.Event{}
	return updated, nil
}

// RequestDelete switches the open view into the confirmation prompt.
func (f *Flow) RequestDelete() error {
	if f.state != Viewing {
		return fmt.Errorf("cannot delete while %s", f.state)
	}
	f.state = ConfirmingDelete
	return nil
}

// ConfirmDelete removes the selected event and closes the dialog.
func (f *Flow) ConfirmDelete() error {
	if f.state != ConfirmingDelete {
		return fmt.Errorf("no delete pending (state %s)", f.state)
	}
	if err := f.store.Remove(f.selected.ID); err != nil {
		return err
	}
	f.state = Idle
	f.selected = event.Event{}
	return nil
}

// CancelDelete backs out of the confirmation, returning to the view.
func (f *Flow) CancelDelete() error {
	if f.state != ConfirmingDelete {
		return fmt.Errorf("no delete pending (state %s)", f.state)
	}
	f.state = Viewing
	return nil
}

// Cancel closes whatever dialog is open. Cancelling a pending delete
// returns to the view behind it; everything else returns to Idle.
func (f *Flow) Cancel() {
	if f.state == ConfirmingDelete {
		f.state = Viewing
		return
	}
	f.state = Idle
	f.selected = event.Event{}
	f.draft = event.Event{}
}
