package store

import (
	"context"
	"database/sql"
)

// schema contains the DDL for all MemberGate tables.
// Each statement uses IF NOT EXISTS for idempotency.
//
// Username and email carry UNIQUE indexes so that concurrent duplicate
// registrations are resolved by the database, not by a read-then-write
// check in application code.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		username   TEXT NOT NULL,
		password   TEXT NOT NULL,
		email      TEXT NOT NULL,
		type       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id            TEXT PRIMARY KEY,
		username      TEXT NOT NULL,
		email         TEXT NOT NULL,
		authenticated INTEGER NOT NULL DEFAULT 0,
		created_at    INTEGER NOT NULL,
		expires_at    INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_username ON sessions(username)`,
}

// migrate executes all schema DDL statements.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
