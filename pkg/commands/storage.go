package commands

import (
	"errors"

	"dashcal/pkg/account"
	"dashcal/pkg/inbox"
	"dashcal/pkg/store"
)

func loadStorage() (*store.Storage, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return store.Open(cfg)
}

func loadManager() (*account.Manager, error) {
	s, err := loadStorage()
	if err != nil {
		return nil, err
	}
	return account.NewManager(s), nil
}

// loadEventStore resolves the logged-in owner's calendar.
func loadEventStore() (*store.EventStore, error) {
	s, err := loadStorage()
	if err != nil {
		return nil, err
	}
	sess, err := account.NewManager(s).Current()
	if errors.Is(err, account.ErrNoSession) {
		return nil, errors.New("not logged in, run: dashcal login <email> -p <password>")
	}
	if err != nil {
		return nil, err
	}
	return store.NewEventStore(s, sess.UserID), nil
}

func loadMailbox() (*inbox.Mailbox, error) {
	s, err := loadStorage()
	if err != nil {
		return nil, err
	}
	sess, err := account.NewManager(s).Current()
	if errors.Is(err, account.ErrNoSession) {
		return nil, errors.New("not logged in, run: dashcal login <email> -p <password>")
	}
	if err != nil {
		return nil, err
	}
	return inbox.Open(s, sess.UserID), nil
}
