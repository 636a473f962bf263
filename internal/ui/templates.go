package ui

import (
	"fmt"
	"html/template"
	"io"
)

// renderTemplate renders a named page inside the shared layout.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	if _, err := tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content. In a production app, these would
// be loaded from files.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
</head>
<body>
{{template "content" .}}
</body>
</html>`,

	"index": `{{define "content"}}
<h1>Welcome to MemberGate</h1>
<p>
    <a href="/signUp"><button>Sign Up</button></a>
    <a href="/login"><button>Log In</button></a>
</p>
{{end}}`,

	"signup": `{{define "content"}}
<h1>Sign Up</h1>
<form method="POST" action="/signUp">
    <label>Username <input type="text" name="username"></label><br>
    <label>Password <input type="password" name="password"></label><br>
    <label>Email <input type="text" name="email"></label><br>
    <button type="submit">Create Account</button>
</form>
{{end}}`,

	"signup_success": `{{define "content"}}
<p>User created successfully</p>
<a href="/login"><button>Log In</button></a>
{{end}}`,

	"signup_failure": `{{define "content"}}
{{range .Errors}}<p>{{.}}</p>
{{end}}<a href="/signUp"><button>Try Again</button></a>
{{end}}`,

	"login": `{{define "content"}}
<h1>Log In</h1>
<form method="POST" action="/login">
    <label>Email <input type="text" name="email"></label><br>
    <label>Password <input type="password" name="password"></label><br>
    <button type="submit">Log In</button>
</form>
{{end}}`,

	"login_failure": `{{define "content"}}
<p>{{.Message}}</p>
<a href="/login"><button>Try Again</button></a>
{{end}}`,

	"loggedin": `{{define "content"}}
<h1>Hello, {{.Username}}</h1>
<p>
    <a href="/members"><button>Members Area</button></a>
    <a href="/logout"><button>Log Out</button></a>
</p>
{{end}}`,

	"members": `{{define "content"}}
<h1>Hello, {{.Username}}</h1>
<img src="/static/{{.Image}}" alt="members image">
<p><a href="/logout"><button>Log Out</button></a></p>
{{end}}`,

	"404": `{{define "content"}}
<h1>404</h1>
<p>Page not found.</p>
<a href="/"><button>Home</button></a>
{{end}}`,

	"error": `{{define "content"}}
<h1>Something went wrong</h1>
<p>{{.Message}}</p>
<a href="/"><button>Home</button></a>
{{end}}`,
}
