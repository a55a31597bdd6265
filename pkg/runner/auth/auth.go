// Package auth provides the runner logic for account commands.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"dashcal/pkg/account"
)

type Register struct {
	Name     string
	Email    string
	Password string

	Manager *account.Manager
}

func (n *Register) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("can not register, no account manager")
	}
	u, err := n.Manager.Register(n.Name, n.Email, n.Password)
	if err != nil {
		return err
	}
	b := color.New(color.Bold)
	_, _ = b.Printf("Welcome, %s.\n", u.Name)
	fmt.Println("Account created, now run: dashcal login", u.Email)
	return nil
}

type Login struct {
	Email    string
	Password string

	Manager *account.Manager
}

func (n *Login) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("can not login, no account manager")
	}
	sess, err := n.Manager.Login(n.Email, n.Password)
	if err != nil {
		return err
	}
	b := color.New(color.Bold)
	_, _ = b.Printf("Logged in as %s <%s>.\n", sess.Name, sess.Email)
	return nil
}

type Logout struct {
	Manager *account.Manager
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("can not logout, no account manager")
	}
	if err := n.Manager.Logout(); err != nil {
		return err
	}
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Println("logged out")
	return nil
}

type Whoami struct {
	Manager *account.Manager
}

func (n *Whoami) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("no account manager")
	}
	sess, err := n.Manager.Current()
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", sess.Name, sess.Email)
	return nil
}

// Forgot mints a password reset token. There is no mail relay here, the
// token prints to the terminal the way the web app would mail it.
type Forgot struct {
	Email string

	Manager *account.Manager
}

func (n *Forgot) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("no account manager")
	}
	token, err := n.Manager.CreateResetToken(n.Email)
	if err != nil {
		return err
	}
	fmt.Println("Reset token (valid for one hour):")
	b := color.New(color.Bold)
	_, _ = b.Println(token)
	fmt.Println("Complete the reset with: dashcal passwd reset", n.Email, "--token <token>")
	return nil
}

type Reset struct {
	Email    string
	Token    string
	Password string

	Manager *account.Manager
}

func (n *Reset) Do(ctx context.Context) error {
	if n.Manager == nil {
		return errors.New("no account manager")
	}
	if err := n.Manager.ResetPassword(n.Email, n.Token, n.Password); err != nil {
		return err
	}
	b := color.New(color.Bold)
	_, _ = b.Println("Password updated.")
	return nil
}
