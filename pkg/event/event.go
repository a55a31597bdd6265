package event

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// DefaultTime matches the add dialog's pre-filled start time.
	DefaultTime = "09:00"
)

// New returns an event carrying the defaults a freshly opened add form has.
func New(title, date string) *Event {
	return &Event{
		Title:     title,
		Date:      date,
		Time:      DefaultTime,
		Duration:  OneHour,
		Attendees: 1,
		Type:      Meeting,
	}
}

// Event is a single scheduled calendar entry owned by one user.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date"`
	Time        string   `json:"time,omitempty"`
	Duration    Duration `json:"duration,omitempty"`
	Location    string   `json:"location,omitempty"`
	Attendees   int      `json:"attendees"`
	Type        Type     `json:"type"`
}

// Normalize fills unset optional fields with their defaults and coerces
// attendees to at least one. It never touches Title, Date or ID.
func (e *Event) Normalize() {
	if e.Time == "" {
		e.Time = DefaultTime
	}
	if e.Duration == "" {
		e.Duration = OneHour
	}
	if e.Type == "" {
		e.Type = Meeting
	}
	if e.Attendees < 1 {
		e.Attendees = 1
	}
}

// Invalid reports which fields would block a write: empty or malformed
// required fields and enum members outside their sets. An empty result
// means the event may be persisted.
func (e *Event) Invalid() []string {
	var fields []string
	if e.Title == "" {
		fields = append(fields, "title")
	}
	if e.Date == "" {
		fields = append(fields, "date")
	} else if _, err := time.Parse(DateLayout, e.Date); err != nil {
		fields = append(fields, "date")
	}
	if e.Time != "" {
		if _, err := time.Parse(TimeLayout, e.Time); err != nil {
			fields = append(fields, "time")
		}
	}
	if e.Duration != "" && !e.Duration.Valid() {
		fields = append(fields, "duration")
	}
	if e.Type != "" && !e.Type.Valid() {
		fields = append(fields, "type")
	}
	return fields
}

// Starts returns the event's start instant in the local zone. Events
// without a time count as starting at midnight.
func (e *Event) Starts() (time.Time, error) {
	clock := e.Time
	if clock == "" {
		clock = "00:00"
	}
	return time.ParseInLocation(DateLayout+" "+TimeLayout, e.Date+" "+clock, time.Local)
}

func (e *Event) String() string {
	return fmt.Sprintf("%s %s %s %s", e.Type.Glyph().Symbol, e.Date, e.Time, e.Title)
}
