package model

import "time"

// User represents a registered MemberGate account.
// Users are created once at sign-up and never updated or deleted by
// this system; login reads them by email and the members gate re-reads
// them by username.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"` // 3-15 alphanumeric characters
	Password  string    `json:"-"`        // bcrypt digest, never the plaintext
	Email     string    `json:"email"`
	Type      string    `json:"type,omitempty"` // free-form role tag, unused by access control
	CreatedAt time.Time `json:"created_at"`
}
