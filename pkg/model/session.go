package model

import "time"

// Session represents an authenticated browser session, keyed by an
// opaque token round-tripped via cookie. The members gate never trusts
// Authenticated alone; it re-queries the user store by Username.
type Session struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Authenticated bool      `json:"authenticated"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has passed its expiry window.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
