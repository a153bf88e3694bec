// Package auth performs login against the static credential table and issues
// per-invocation session contexts.
package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/opsboard/pkg/types"
)

// Login checks username and password against the credential table by exact
// string match and returns a fresh session on success. There is no hashing,
// lockout, or expiry beyond the life of the session value itself; the
// plaintext table is a documented weakness of the deployed system.
// Returns ErrLoginFailed on any mismatch, without distinguishing unknown user
// from wrong password.
func Login(users []types.Credential, username, password string) (*types.Session, error) {
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return &types.Session{
				Token:     sessionToken(),
				Username:  u.Username,
				Role:      u.Role,
				Modules:   append([]string(nil), u.Modules...),
				StartedAt: time.Now(),
			}, nil
		}
	}
	return nil, types.ErrLoginFailed
}

// sessionToken generates a UUID v7 token, falling back to v4 if v7 fails.
func sessionToken() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
