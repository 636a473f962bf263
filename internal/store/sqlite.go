package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/me/membergate/pkg/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and returns a Store.
// Use ":memory:" for an in-memory database (useful in tests).
func NewSQLiteStore(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With("component", "store"),
	}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates all required tables and indexes.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	s.logger.Debug("sql", "op", "migrate")
	return migrate(ctx, s.db)
}

// --- User operations ---

// CreateUser inserts a new user. A uniqueness violation on username or
// email is reported as model.ErrDuplicateUser.
func (s *SQLiteStore) CreateUser(ctx context.Context, u *model.User) error {
	s.logger.Debug("sql", "op", "insert", "table", "users", "id", u.ID)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password, email, type, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Password, u.Email, u.Type,
		u.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return model.ErrDuplicateUser
	}
	return err
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.logger.Debug("sql", "op", "select_by_email", "table", "users")
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password, email, type, created_at
		 FROM users WHERE email = ?`, email))
}

func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.logger.Debug("sql", "op", "select_by_username", "table", "users", "username", username)
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT id, username, password, email, type, created_at
		 FROM users WHERE username = ?`, username))
}

// DeleteUser removes a user. No route reaches this; it exists for
// operational cleanup and for exercising the members gate's
// re-validation against the store.
func (s *SQLiteStore) DeleteUser(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "users", "id", id)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

func (s *SQLiteStore) scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	var createdAt string

	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Email, &u.Type, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	u.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	return &u, nil
}

// --- Session operations ---

func (s *SQLiteStore) CreateSession(ctx context.Context, sess *model.Session) error {
	s.logger.Debug("sql", "op", "insert", "table", "sessions", "id", sess.ID)

	authenticated := 0
	if sess.Authenticated {
		authenticated = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, username, email, authenticated, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, sess.Username, sess.Email, authenticated,
		sess.CreatedAt.Unix(), sess.ExpiresAt.Unix(),
	)
	return err
}

func (s *SQLiteStore) GetSession(ctx context.Context, id string) (*model.Session, error) {
	s.logger.Debug("sql", "op", "select", "table", "sessions", "id", id)

	var sess model.Session
	var authenticated int
	var createdAt, expiresAt int64

	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, email, authenticated, created_at, expires_at
		 FROM sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.Username, &sess.Email, &authenticated, &createdAt, &expiresAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sess.Authenticated = authenticated != 0
	sess.CreatedAt = time.Unix(createdAt, 0)
	sess.ExpiresAt = time.Unix(expiresAt, 0)

	return &sess, nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	s.logger.Debug("sql", "op", "delete", "table", "sessions", "id", id)

	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	s.logger.Debug("sql", "op", "delete_expired", "table", "sessions")

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
