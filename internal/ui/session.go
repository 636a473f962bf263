package ui

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/me/membergate/internal/store"
	"github.com/me/membergate/pkg/model"
)

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "membergate_session"
	// DefaultSessionTTL is the fixed session lifetime.
	DefaultSessionTTL = time.Hour
)

// SessionManager handles session creation, lookup, and destruction.
// Session state lives server-side in the store; the cookie carries only
// an opaque random token.
type SessionManager struct {
	store store.Store
	ttl   time.Duration
}

// NewSessionManager creates a session manager with the given TTL.
// A non-positive ttl falls back to DefaultSessionTTL.
func NewSessionManager(st store.Store, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{store: st, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (sm *SessionManager) TTL() time.Duration {
	return sm.ttl
}

// CreateSession creates an authenticated session for the given user.
func (sm *SessionManager) CreateSession(ctx context.Context, u *model.User) (*model.Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now()
	sess := &model.Session{
		ID:            sessionID,
		Username:      u.Username,
		Email:         u.Email,
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(sm.ttl),
	}

	if err := sm.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

// GetSession retrieves a session by ID from the store.
// Returns nil if the session doesn't exist or has expired; expired
// sessions are deleted on read.
func (sm *SessionManager) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	sess, err := sm.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	if sess.IsExpired() {
		_ = sm.store.DeleteSession(ctx, sessionID)
		return nil, nil
	}

	return sess, nil
}

// DestroySession removes a session from the store. The error outcome is
// explicit so logout can report a failed destruction.
func (sm *SessionManager) DestroySession(ctx context.Context, sessionID string) error {
	return sm.store.DeleteSession(ctx, sessionID)
}

// CleanupExpiredSessions removes all expired sessions from the store.
func (sm *SessionManager) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return sm.store.DeleteExpiredSessions(ctx)
}

// GetSessionFromRequest extracts the session from the request cookie.
func (sm *SessionManager) GetSessionFromRequest(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, nil // No cookie, no session
	}
	return sm.GetSession(r.Context(), cookie.Value)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, sess *model.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  sess.ExpiresAt,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateSessionID generates a cryptographically secure random session ID.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "sess_" + hex.EncodeToString(b), nil
}
