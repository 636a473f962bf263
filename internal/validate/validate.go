// Package validate checks the shape of registration and login input.
//
// Each form has its own declarative rule set producing fixed,
// human-readable messages. Checks are pure: input in, ordered list of
// violations out. Note the deliberate asymmetry: sign-up collects every
// violation, login reports only the first, and the two password rules
// differ (sign-up allows any characters, login only alphanumerics).
package validate

import (
	"net/mail"
	"regexp"
	"strings"
)

// Field error messages for the sign-up form.
const (
	MsgUsernameRequired = "Username is a required field"
	MsgUsernameAlnum    = "Username must only contain alpha-numeric characters"
	MsgUsernameLength   = "Username must be between 3 to 15 characters long"
	MsgPasswordRequired = "Password is a required field"
	MsgPasswordLength   = "Password must be between 6 to 30 characters long"
	MsgEmailRequired    = "Email is a required field"
	MsgEmailInvalid     = "Please provide a valid email address"
)

// Field error messages for the login form.
const (
	MsgLoginEmpty     = "One or more fields are empty"
	MsgLoginBadFormat = "Incorrect email or password format"
)

var (
	alnumRe         = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	loginPasswordRe = regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
)

// Registration is restricted to these top-level domains.
var allowedTLDs = map[string]bool{"com": true, "net": true}

// SignUpInput is the sign-up form payload.
type SignUpInput struct {
	Username string
	Password string
	Email    string
}

// LoginInput is the login form payload.
type LoginInput struct {
	Email    string
	Password string
}

// CheckSignUp evaluates every sign-up rule and returns all violations
// in field order (username, password, email). An empty slice means the
// input is valid.
func CheckSignUp(in SignUpInput) []string {
	var violations []string

	switch {
	case in.Username == "":
		violations = append(violations, MsgUsernameRequired)
	default:
		if !alnumRe.MatchString(in.Username) {
			violations = append(violations, MsgUsernameAlnum)
		}
		if len(in.Username) < 3 || len(in.Username) > 15 {
			violations = append(violations, MsgUsernameLength)
		}
	}

	switch {
	case in.Password == "":
		violations = append(violations, MsgPasswordRequired)
	case len(in.Password) < 6 || len(in.Password) > 30:
		violations = append(violations, MsgPasswordLength)
	}

	switch {
	case in.Email == "":
		violations = append(violations, MsgEmailRequired)
	case !validEmail(in.Email):
		violations = append(violations, MsgEmailInvalid)
	}

	return violations
}

// CheckLogin evaluates the login rules and returns the first violation,
// or "" when the input is valid.
func CheckLogin(in LoginInput) string {
	if in.Email == "" {
		return MsgLoginEmpty
	}
	if !validEmail(in.Email) {
		return MsgLoginBadFormat
	}
	if in.Password == "" {
		return MsgLoginEmpty
	}
	if !loginPasswordRe.MatchString(in.Password) {
		return MsgLoginBadFormat
	}
	return ""
}

// validEmail requires a plain RFC 5322 address (no display name) whose
// domain has at least two labels and ends in an allowed TLD.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	at := strings.LastIndex(s, "@")
	labels := strings.Split(s[at+1:], ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return allowedTLDs[strings.ToLower(labels[len(labels)-1])]
}
