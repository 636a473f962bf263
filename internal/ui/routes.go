package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Public routes.
	r.Get("/", ui.HandleIndex)
	r.Get("/signUp", ui.HandleSignUp)
	r.Post("/signUp", ui.HandleSignUpPost)
	r.Get("/login", ui.HandleLogin)
	r.Post("/login", ui.HandleLoginPost)
	r.Get("/loggedIn", ui.HandleLoggedIn)
	r.Get("/logout", ui.HandleLogout)

	// Members area (gated).
	r.Group(func(r chi.Router) {
		r.Use(ui.MembersOnly)
		r.Get("/members", ui.HandleMembers)
	})
}

// StaticHandler returns an http.Handler that serves static files from
// the given directory under /static/.
func StaticHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.StripPrefix("/static/", fs)
}
