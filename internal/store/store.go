package store

import (
	"context"

	"github.com/me/membergate/pkg/model"
)

// Store defines the persistence layer for MemberGate entities.
// Lookups return (nil, nil) when no record matches.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error

	// Session operations
	CreateSession(ctx context.Context, sess *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
