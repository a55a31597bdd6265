package settings

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"dashcal/pkg/account"
)

// Show prints the logged-in profile.
type Show struct {
	Manager *account.Manager
}

func (n *Show) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("no account manager")
	}
	s, err := n.Manager.Current()
	if err != nil {
		return err
	}
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = b.Println(s.Name)
	_, _ = f.Printf("%s\nlogged in since %s\n", s.Email, s.IssuedAt.Format("Jan 2 15:04"))
	return nil
}

// Edit changes the logged-in profile. The current password is required,
// matching the dashboard's settings form.
type Edit struct {
	Password string
	Name     string
	Email    string

	Manager *account.Manager
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("no account manager")
	}
	if n.Name == "" && n.Email == "" {
		return errors.New("nothing to change, set --name or --email")
	}

	u, err := n.Manager.UpdateProfile(n.Password, n.Name, n.Email)
	if err != nil {
		return err
	}

	b := color.New(color.Bold)
	_, _ = b.Printf("Profile updated: %s <%s>.\n", u.Name, u.Email)
	return nil
}
