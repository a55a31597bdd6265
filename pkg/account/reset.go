package account

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	resetTokensKey = "resetTokens"
	resetTokenTTL  = time.Hour
)

var ErrBadResetToken = errors.New("invalid or expired reset token")

// ResetToken is a pending password reset. Only the sha256 hash of the
// token is persisted; the raw token goes to the account holder.
type ResetToken struct {
	Email     string    `json:"email"`
	TokenHash string    `json:"tokenHash"`
	Expires   time.Time `json:"expires"`
}

// CreateResetToken mints a reset token for the given email and returns
// the raw token. The email must belong to a registered account.
func (m *Manager) CreateResetToken(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := m.userByEmail(email); err != nil {
		return "", err
	}

	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	raw := hex.EncodeToString(b)

	tokens, err := m.loadResetTokens()
	if err != nil {
		return "", err
	}
	// one pending token per email
	kept := tokens[:0]
	for _, t := range tokens {
		if t.Email != email {
			kept = append(kept, t)
		}
	}
	kept = append(kept, ResetToken{
		Email:     email,
		TokenHash: hashToken(raw),
		Expires:   time.Now().Add(resetTokenTTL),
	})
	if err := m.saveResetTokens(kept); err != nil {
		return "", err
	}
	return raw, nil
}

// ResetPassword verifies the token, rejects reuse of the current
// password, stores the new hash and consumes the token.
func (m *Manager) ResetPassword(email, rawToken, newPassword string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}

	tokens, err := m.loadResetTokens()
	if err != nil {
		return err
	}
	hash := hashToken(rawToken)
	found := false
	for _, t := range tokens {
		if t.Email == email && t.TokenHash == hash && t.Expires.After(time.Now()) {
			found = true
			break
		}
	}
	if !found {
		return ErrBadResetToken
	}

	users, err := m.loadUsers()
	if err != nil {
		return err
	}
	idx := -1
	for i := range users {
		if users[i].Email == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBadResetToken
	}

	if checkPassword(users[idx].PasswordHash, newPassword) {
		return errors.New("new password cannot be the same as the current password")
	}

	newHash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	users[idx].PasswordHash = newHash
	if err := m.saveUsers(users); err != nil {
		return err
	}

	kept := tokens[:0]
	for _, t := range tokens {
		if t.TokenHash != hash {
			kept = append(kept, t)
		}
	}
	return m.saveResetTokens(kept)
}

func (m *Manager) loadResetTokens() ([]ResetToken, error) {
	var tokens []ResetToken
	if _, err := m.storage.ReadJSON(resetTokensKey, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (m *Manager) saveResetTokens(tokens []ResetToken) error {
	if tokens == nil {
		tokens = []ResetToken{}
	}
	return m.storage.WriteJSON(resetTokensKey, tokens)
}

func hashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
