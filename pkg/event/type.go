package event

import "fmt"

// Type categorizes an event. The wildcard "all" is only meaningful as a
// search filter and is not a persistable member.
type Type string

const (
	Meeting  Type = "meeting"
	Deadline Type = "deadline"
	Reminder Type = "reminder"
	Personal Type = "personal"

	// TypeAll is the filter wildcard.
	TypeAll Type = "all"
)

// Glyph describes how a type shows up in listings.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

// Types lists the persistable members.
func Types() []Type {
	return []Type{Meeting, Deadline, Reminder, Personal}
}

func (t Type) Valid() bool {
	for _, v := range Types() {
		if t == v {
			return true
		}
	}
	return false
}

func (t Type) Glyph() Glyph {
	switch t {
	case Meeting:
		return Glyph{Key: "m", Symbol: "◆", Meaning: "meeting"}
	case Deadline:
		return Glyph{Key: "d", Symbol: "▲", Meaning: "deadline"}
	case Reminder:
		return Glyph{Key: "r", Symbol: "●", Meaning: "reminder"}
	case Personal:
		return Glyph{Key: "p", Symbol: "○", Meaning: "personal"}
	}
	return Glyph{Symbol: " ", Meaning: "any"}
}

var typeAliases = map[string]Type{
	"m":        Meeting,
	"meeting":  Meeting,
	"meetings": Meeting,
	"d":        Deadline,
	"deadline": Deadline,
	"due":      Deadline,
	"r":        Reminder,
	"reminder": Reminder,
	"p":        Personal,
	"personal": Personal,
	"all":      TypeAll,
	"any":      TypeAll,
}

// TypeForAlias resolves a CLI token to a type, accepting the wildcard.
func TypeForAlias(alias string) (Type, error) {
	if t, ok := typeAliases[alias]; ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown event type %q", alias)
}

func (t Type) String() string {
	return string(t)
}
