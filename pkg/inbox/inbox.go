// Package inbox holds the per-owner message list behind the dashboard's
// inbox view. A fresh inbox is seeded with starter messages; afterwards
// the record is rewritten wholesale on every change, like every other
// record in the app.
package inbox

import (
	"fmt"

	"dashcal/pkg/store"
)

const (
	keyPrefix = "inbox"
	schema    = 1
)

// Status marks a message read or unread.
type Status string

const (
	Unread Status = "unread"
	Read   Status = "read"
)

// Filter selects a slice of the inbox.
type Filter string

const (
	All        Filter = "all"
	OnlyUnread Filter = "unread"
	Important  Filter = "important"
)

// Message is one inbox entry.
type Message struct {
	ID        int    `json:"id"`
	Sender    string `json:"sender"`
	Subject   string `json:"subject"`
	Preview   string `json:"preview"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	Status    Status `json:"status"`
	Important bool   `json:"important"`
}

type envelope struct {
	Schema   int       `json:"schema"`
	NextID   int       `json:"nextId"`
	Messages []Message `json:"messages"`
}

// Mailbox mediates one owner's messages.
type Mailbox struct {
	storage *store.Storage
	owner   string
}

func Open(storage *store.Storage, ownerID string) *Mailbox {
	return &Mailbox{storage: storage, owner: ownerID}
}

func (b *Mailbox) key() string {
	return fmt.Sprintf("%s-%s", keyPrefix, b.owner)
}

// List returns the messages matching the filter, newest-first as stored.
// A first read seeds the starter messages.
func (b *Mailbox) List(filter Filter) ([]Message, error) {
	env, err := b.load()
	if err != nil {
		return nil, err
	}

	var out []Message
	for _, msg := range env.Messages {
		switch filter {
		case OnlyUnread:
			if msg.Status != Unread {
				continue
			}
		case Important:
			if !msg.Important {
				continue
			}
		}
		out = append(out, msg)
	}
	return out, nil
}

// Counts reports the sidebar numbers: total, unread and important.
func (b *Mailbox) Counts() (total, unread, important int, err error) {
	env, err := b.load()
	if err != nil {
		return 0, 0, 0, err
	}
	for _, msg := range env.Messages {
		total++
		if msg.Status == Unread {
			unread++
		}
		if msg.Important {
			important++
		}
	}
	return total, unread, important, nil
}

// MarkRead flips a message to read.
func (b *Mailbox) MarkRead(id int) (Message, error) {
	return b.mutate(id, func(m *Message) { m.Status = Read })
}

// ToggleImportant stars or unstars a message.
func (b *Mailbox) ToggleImportant(id int) (Message, error) {
	return b.mutate(id, func(m *Message) { m.Important = !m.Important })
}

// Remove deletes a message. Removing an absent id is a no-op.
func (b *Mailbox) Remove(id int) error {
	env, err := b.load()
	if err != nil {
		return err
	}
	kept := env.Messages[:0]
	for _, msg := range env.Messages {
		if msg.ID != id {
			kept = append(kept, msg)
		}
	}
	env.Messages = kept
	return b.save(env)
}

func (b *Mailbox) mutate(id int, apply func(*Message)) (Message, error) {
	env, err := b.load()
	if err != nil {
		return Message{}, err
	}
	for i := range env.Messages {
		if env.Messages[i].ID == id {
			apply(&env.Messages[i])
			if err := b.save(env); err != nil {
				return Message{}, err
			}
			return env.Messages[i], nil
		}
	}
	return Message{}, fmt.Errorf("message %d: %w", id, store.ErrNotFound)
}

func (b *Mailbox) load() (envelope, error) {
	var env envelope
	ok, err := b.storage.ReadJSON(b.key(), &env)
	if err != nil {
		return envelope{}, err
	}
	if !ok {
		env = envelope{Schema: schema, NextID: len(seedMessages) + 1, Messages: seedMessages}
		if err := b.save(env); err != nil {
			return envelope{}, err
		}
	}
	return env, nil
}

func (b *Mailbox) save(env envelope) error {
	env.Schema = schema
	if env.Messages == nil {
		env.Messages = []Message{}
	}
	return b.storage.WriteJSON(b.key(), env)
}

// seedMessages are the dashboard's starter inbox contents.
var seedMessages = []Message{
	{
		ID:        1,
		Sender:    "john@example.com",
		Subject:   "Team Meeting Notes",
		Preview:   "Here are the notes from our last team meeting...",
		Time:      "10:30 AM",
		Date:      "Today",
		Status:    Unread,
		Important: true,
	},
	{
		ID:      2,
		Sender:  "sarah@example.com",
		Subject: "Project Update",
		Preview: "The project is on track for the deadline...",
		Time:    "9:15 AM",
		Date:    "Today",
		Status:  Read,
	},
	{
		ID:        3,
		Sender:    "client@company.com",
		Subject:   "Feedback on Proposal",
		Preview:   "Thank you for the proposal, here's our feedback...",
		Time:      "Yesterday",
		Date:      "Yesterday",
		Status:    Unread,
		Important: true,
	},
	{
		ID:      4,
		Sender:  "support@vendor.com",
		Subject: "Invoice #1234",
		Preview: "Your invoice is ready for payment...",
		Time:    "Mar 14",
		Date:    "Mar 14",
		Status:  Read,
	},
}
