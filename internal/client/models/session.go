package models

import (
	"time"

	"github.com/dmitrijs2005/planwise/internal/common"
)

// Session is the result of a completed login. It is passed explicitly to
// every authenticated call; nothing about it is kept in package state.
type Session struct {
	Identity  string
	Role      string
	Token     string
	ExpiresAt time.Time
}

func (s Session) IsAdmin() bool { return s.Role == common.RoleAdmin }

// Valid reports whether the session carries a token that has not expired at now.
// A zero ExpiresAt means the expiry is unknown and the token is trusted
// until the server rejects it.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" || s.Identity == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
