package ui

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/me/membergate/internal/auth"
	"github.com/me/membergate/internal/store"
	"github.com/me/membergate/internal/validate"
	"github.com/me/membergate/pkg/model"
)

// memberImages is the fixed set the members page picks from at random.
var memberImages = []string{"001.avif", "002.avif", "003.avif"}

// UI handles the web user interface.
type UI struct {
	store    store.Store
	sessions *SessionManager
	hasher   auth.PasswordHasher
	logger   *slog.Logger
	secure   bool // Use secure cookies (HTTPS)
}

// Config holds UI configuration.
type Config struct {
	Secure     bool          // Use secure cookies for HTTPS
	SessionTTL time.Duration // Session lifetime (default 1 hour)
}

// New creates a new UI handler.
func New(st store.Store, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		store:    st,
		sessions: NewSessionManager(st, cfg.SessionTTL),
		hasher:   auth.NewBcryptHasher(),
		logger:   logger.With("component", "ui"),
		secure:   cfg.Secure,
	}
}

// Sessions exposes the session manager (used by cleanup and tests).
func (ui *UI) Sessions() *SessionManager {
	return ui.sessions
}

// HandleIndex renders the public landing page.
func (ui *UI) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ui.render(w, http.StatusOK, "index", map[string]any{
		"Title": "MemberGate",
	})
}

// HandleSignUp renders the registration form.
func (ui *UI) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ui.render(w, http.StatusOK, "signup", map[string]any{
		"Title": "Sign Up - MemberGate",
	})
}

// HandleSignUpPost validates the registration form, hashes the
// password, and persists the user. Every violated rule is reported, not
// just the first.
func (ui *UI) HandleSignUpPost(w http.ResponseWriter, r *http.Request) {
	fields, err := parseBody(r)
	if err != nil {
		ui.render(w, http.StatusBadRequest, "signup_failure", map[string]any{
			"Title":  "Sign Up Failed - MemberGate",
			"Errors": []string{"Invalid request body"},
		})
		return
	}

	in := validate.SignUpInput{
		Username: fields["username"],
		Password: fields["password"],
		Email:    fields["email"],
	}
	if violations := validate.CheckSignUp(in); len(violations) > 0 {
		ui.render(w, http.StatusBadRequest, "signup_failure", map[string]any{
			"Title":  "Sign Up Failed - MemberGate",
			"Errors": violations,
		})
		return
	}

	digest, err := ui.hasher.Hash(in.Password)
	if err != nil {
		ui.renderError(w, "Could not create account", err)
		return
	}

	user := &model.User{
		ID:        "user_" + uuid.New().String()[:8],
		Username:  in.Username,
		Password:  digest,
		Email:     in.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := ui.store.CreateUser(r.Context(), user); err != nil {
		if errors.Is(err, model.ErrDuplicateUser) {
			ui.render(w, http.StatusBadRequest, "signup_failure", map[string]any{
				"Title":  "Sign Up Failed - MemberGate",
				"Errors": []string{"Username or email is already registered"},
			})
			return
		}
		ui.renderError(w, "Could not create account", err)
		return
	}

	ui.logger.Info("user registered", "username", user.Username, "id", user.ID)
	ui.render(w, http.StatusOK, "signup_success", map[string]any{
		"Title": "Sign Up - MemberGate",
	})
}

// HandleLogin renders the login form.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	// If already logged in, skip the form.
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		http.Redirect(w, r, "/loggedIn", http.StatusSeeOther)
		return
	}

	ui.render(w, http.StatusOK, "login", map[string]any{
		"Title": "Log In - MemberGate",
	})
}

// HandleLoginPost validates the login form (first violation only),
// looks the user up by email, and verifies the password. Failures get a
// generic message that never reveals whether the email exists.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	fields, err := parseBody(r)
	if err != nil {
		ui.render(w, http.StatusBadRequest, "login_failure", map[string]any{
			"Title":   "Log In Failed - MemberGate",
			"Message": "Invalid request body",
		})
		return
	}

	in := validate.LoginInput{
		Email:    fields["email"],
		Password: fields["password"],
	}
	if msg := validate.CheckLogin(in); msg != "" {
		ui.render(w, http.StatusBadRequest, "login_failure", map[string]any{
			"Title":   "Log In Failed - MemberGate",
			"Message": msg,
		})
		return
	}

	user, err := ui.store.GetUserByEmail(r.Context(), in.Email)
	if err != nil {
		ui.renderError(w, "Could not log in", err)
		return
	}

	if user == nil || !ui.hasher.Verify(in.Password, user.Password) {
		ui.logger.Warn("login failed", "email", in.Email)
		ui.render(w, http.StatusOK, "login_failure", map[string]any{
			"Title":   "Log In - MemberGate",
			"Message": "Invalid email or password",
		})
		return
	}

	sess, err := ui.sessions.CreateSession(r.Context(), user)
	if err != nil {
		ui.renderError(w, "Could not log in", err)
		return
	}
	SetSessionCookie(w, sess, ui.secure)

	ui.logger.Info("user logged in", "username", user.Username, "session", sess.ID)
	http.Redirect(w, r, "/loggedIn", http.StatusSeeOther)
}

// HandleLoggedIn renders the post-login greeting. The page is not
// gated; without a session it simply greets nobody.
func (ui *UI) HandleLoggedIn(w http.ResponseWriter, r *http.Request) {
	username := ""
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		username = sess.Username
	}

	ui.render(w, http.StatusOK, "loggedin", map[string]any{
		"Title":    "Logged In - MemberGate",
		"Username": username,
	})
}

// HandleMembers renders the gated members page with one of three
// images chosen uniformly at random. MembersOnly runs before this
// handler, so the context session is always present and backed by an
// existing user.
func (ui *UI) HandleMembers(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	ui.render(w, http.StatusOK, "members", map[string]any{
		"Title":    "Members - MemberGate",
		"Username": sess.Username,
		"Image":    memberImages[rand.Intn(len(memberImages))],
	})
}

// HandleLogout destroys the session and redirects home. Destruction is
// awaited; a failure is logged but the client is logged out either way.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		if err := ui.sessions.DestroySession(r.Context(), sess.ID); err != nil {
			ui.logger.Error("session destroy failed", "session", sess.ID, "error", err)
		} else {
			ui.logger.Info("user logged out", "username", sess.Username, "session", sess.ID)
		}
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleNotFound renders the 404 page for unmatched routes.
func (ui *UI) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	ui.render(w, http.StatusNotFound, "404", map[string]any{
		"Title": "Not Found - MemberGate",
	})
}

// parseBody extracts the credential fields from a form-encoded or JSON
// request body.
func parseBody(r *http.Request) (map[string]string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("decode json body: %w", err)
		}
		return body, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}
	fields := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		fields[k] = strings.TrimSpace(r.PostForm.Get(k))
	}
	return fields, nil
}

func (ui *UI) render(w http.ResponseWriter, status int, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError logs the underlying error and answers with a generic 500
// page; internal detail never reaches the client.
func (ui *UI) renderError(w http.ResponseWriter, message string, err error) {
	ui.logger.Error(message, "error", err)
	ui.render(w, http.StatusInternalServerError, "error", map[string]any{
		"Title":   "Error - MemberGate",
		"Message": message,
	})
}
