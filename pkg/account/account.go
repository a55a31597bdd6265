// Package account manages local user accounts and the active session:
// registration, login, password reset and profile edits. Records live in
// the same key-value substrate as the rest of the app, under the keys
// the original used: `users`, `authUser` and `resetTokens`.
package account

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dashcal/pkg/store"
)

const (
	usersKey   = "users"
	sessionKey = "authUser"

	minPasswordLen = 6
)

var (
	ErrNoSession          = errors.New("not logged in")
	ErrInvalidCredentials = errors.New("invalid credentials")

	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// User is one registered account.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Session is the persisted record of the logged-in user.
type Session struct {
	UserID   string    `json:"userId"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Manager mediates all account reads and writes.
type Manager struct {
	storage *store.Storage
}

func NewManager(storage *store.Storage) *Manager {
	return &Manager{storage: storage}
}

// Register creates an account. Email addresses are unique; passwords are
// stored as bcrypt hashes only.
func (m *Manager) Register(name, email, password string) (User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))

	if name == "" || email == "" || password == "" {
		return User{}, errors.New("name, email and password are required")
	}
	if !emailPattern.MatchString(email) {
		return User{}, fmt.Errorf("invalid email address %q", email)
	}
	if len(password) < minPasswordLen {
		return User{}, fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	users, err := m.loadUsers()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return User{}, fmt.Errorf("email %s already registered", email)
		}
	}

	hash, err := hashPassword(password)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := m.saveUsers(append(users, u)); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifies credentials and persists the session record.
func (m *Manager) Login(email, password string) (Session, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := m.userByEmail(email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, err
	}
	if !checkPassword(u.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}

	s := Session{UserID: u.ID, Email: u.Email, Name: u.Name, IssuedAt: time.Now()}
	if err := m.storage.WriteJSON(sessionKey, s); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Logout erases the session record. Logging out while logged out is fine.
func (m *Manager) Logout() error {
	return m.storage.Erase(sessionKey)
}

// Current returns the active session, or ErrNoSession.
func (m *Manager) Current() (Session, error) {
	var s Session
	ok, err := m.storage.ReadJSON(sessionKey, &s)
	if err != nil {
		return Session{}, err
	}
	if !ok {
		return Session{}, ErrNoSession
	}
	return s, nil
}

// UpdateProfile changes the logged-in user's name and email after
// re-verifying the password, then refreshes the session record to match.
// Empty arguments keep the current values.
func (m *Manager) UpdateProfile(password, newName, newEmail string) (User, error) {
	s, err := m.Current()
	if err != nil {
		return User{}, err
	}

	users, err := m.loadUsers()
	if err != nil {
		return User{}, err
	}
	idx := -1
	for i := range users {
		if users[i].ID == s.UserID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return User{}, fmt.Errorf("user %s: %w", s.UserID, store.ErrNotFound)
	}
	if !checkPassword(users[idx].PasswordHash, password) {
		return User{}, ErrInvalidCredentials
	}

	if newName = strings.TrimSpace(newName); newName != "" {
		users[idx].Name = newName
	}
	if newEmail = strings.TrimSpace(strings.ToLower(newEmail)); newEmail != "" {
		if !emailPattern.MatchString(newEmail) {
			return User{}, fmt.Errorf("invalid email address %q", newEmail)
		}
		for i, u := range users {
			if i != idx && u.Email == newEmail {
				return User{}, fmt.Errorf("email %s already registered", newEmail)
			}
		}
		users[idx].Email = newEmail
	}

	if err := m.saveUsers(users); err != nil {
		return User{}, err
	}

	s.Name = users[idx].Name
	s.Email = users[idx].Email
	if err := m.storage.WriteJSON(sessionKey, s); err != nil {
		return User{}, err
	}
	return users[idx], nil
}

func (m *Manager) userByEmail(email string) (User, error) {
	users, err := m.loadUsers()
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, fmt.Errorf("user %s: %w", email, store.ErrNotFound)
}

func (m *Manager) loadUsers() ([]User, error) {
	var users []User
	if _, err := m.storage.ReadJSON(usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Manager) saveUsers(users []User) error {
	return m.storage.WriteJSON(usersKey, users)
}

func hashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
