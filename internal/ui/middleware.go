package ui

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/me/membergate/pkg/model"
)

// Context keys for session data.
type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext retrieves the session from the request context.
func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// MembersOnly gates the members page. It never trusts the session's
// authenticated flag: on every request it re-queries the user store by
// the session's username, so a destroyed or expired session (no
// username) fails, and so does a session whose user was deleted
// out-of-band. Rejections short-circuit with a 401 JSON error.
func (ui *UI) MembersOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := ui.sessions.GetSessionFromRequest(r)
		if err != nil {
			ui.logger.Error("session lookup failed", "error", err)
			ui.unauthorized(w)
			return
		}

		username := ""
		if sess != nil {
			username = sess.Username
		}

		user, err := ui.store.GetUserByUsername(r.Context(), username)
		if err != nil {
			ui.logger.Error("gate user lookup failed", "error", err)
			ui.unauthorized(w)
			return
		}
		if user == nil {
			ui.unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalSession adds the session to context if available but doesn't
// require one.
func (ui *UI) OptionalSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := ui.sessions.GetSessionFromRequest(r)
		if sess != nil {
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (ui *UI) unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "You must log in to view this page.",
	})
}
