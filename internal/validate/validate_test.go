package validate

import (
	"strings"
	"testing"
)

func TestCheckSignUp_Valid(t *testing.T) {
	in := SignUpInput{Username: "alice123", Password: "secret1", Email: "alice@x.com"}
	if v := CheckSignUp(in); len(v) != 0 {
		t.Errorf("expected no violations, got %v", v)
	}
}

func TestCheckSignUp_Violations(t *testing.T) {
	tests := []struct {
		name string
		in   SignUpInput
		want []string
	}{
		{
			name: "empty username",
			in:   SignUpInput{Password: "secret1", Email: "a@x.com"},
			want: []string{MsgUsernameRequired},
		},
		{
			name: "username too short",
			in:   SignUpInput{Username: "ab", Password: "secret1", Email: "a@x.com"},
			want: []string{MsgUsernameLength},
		},
		{
			name: "username too long",
			in:   SignUpInput{Username: strings.Repeat("a", 16), Password: "secret1", Email: "a@x.com"},
			want: []string{MsgUsernameLength},
		},
		{
			name: "username not alphanumeric",
			in:   SignUpInput{Username: "al ice", Password: "secret1", Email: "a@x.com"},
			want: []string{MsgUsernameAlnum},
		},
		{
			name: "password too short",
			in:   SignUpInput{Username: "alice", Password: "five5", Email: "a@x.com"},
			want: []string{MsgPasswordLength},
		},
		{
			name: "password too long",
			in:   SignUpInput{Username: "alice", Password: strings.Repeat("p", 31), Email: "a@x.com"},
			want: []string{MsgPasswordLength},
		},
		{
			name: "empty password",
			in:   SignUpInput{Username: "alice", Email: "a@x.com"},
			want: []string{MsgPasswordRequired},
		},
		{
			name: "not an email",
			in:   SignUpInput{Username: "alice", Password: "secret1", Email: "not-an-email"},
			want: []string{MsgEmailInvalid},
		},
		{
			name: "disallowed tld",
			in:   SignUpInput{Username: "alice", Password: "secret1", Email: "a@x.org"},
			want: []string{MsgEmailInvalid},
		},
		{
			name: "single domain label",
			in:   SignUpInput{Username: "alice", Password: "secret1", Email: "a@com"},
			want: []string{MsgEmailInvalid},
		},
		{
			name: "all fields empty collects every violation",
			in:   SignUpInput{},
			want: []string{MsgUsernameRequired, MsgPasswordRequired, MsgEmailRequired},
		},
		{
			name: "multiple rule failures collected",
			in:   SignUpInput{Username: "a!", Password: "short", Email: "bad"},
			want: []string{MsgUsernameAlnum, MsgUsernameLength, MsgPasswordLength, MsgEmailInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckSignUp(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("violations = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("violation[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckSignUp_PasswordCharsetUnrestricted(t *testing.T) {
	// Sign-up imposes only a length rule on the password.
	in := SignUpInput{Username: "alice", Password: "p@ss w0rd!", Email: "a@x.com"}
	if v := CheckSignUp(in); len(v) != 0 {
		t.Errorf("expected no violations for symbol-laden password, got %v", v)
	}
}

func TestCheckLogin(t *testing.T) {
	tests := []struct {
		name string
		in   LoginInput
		want string
	}{
		{"valid", LoginInput{Email: "alice@x.com", Password: "secret1"}, ""},
		{"empty email", LoginInput{Password: "secret1"}, MsgLoginEmpty},
		{"empty password", LoginInput{Email: "alice@x.com"}, MsgLoginEmpty},
		{"bad email", LoginInput{Email: "nope", Password: "secret1"}, MsgLoginBadFormat},
		{"wrong tld", LoginInput{Email: "a@x.io", Password: "secret1"}, MsgLoginBadFormat},
		{"password too short", LoginInput{Email: "a@x.com", Password: "ab"}, MsgLoginBadFormat},
		{"password with symbols", LoginInput{Email: "a@x.com", Password: "p@ssword"}, MsgLoginBadFormat},
		{"first violation wins", LoginInput{}, MsgLoginEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckLogin(tt.in); got != tt.want {
				t.Errorf("CheckLogin() = %q, want %q", got, tt.want)
			}
		})
	}
}

// The sign-up and login password rules disagree on purpose: a password
// containing symbols is legal at registration but rejected by the
// stricter login pattern.
func TestPasswordRuleAsymmetry(t *testing.T) {
	password := "sup3r!secret"

	if v := CheckSignUp(SignUpInput{Username: "alice", Password: password, Email: "a@x.com"}); len(v) != 0 {
		t.Fatalf("sign-up should accept %q, got %v", password, v)
	}
	if got := CheckLogin(LoginInput{Email: "a@x.com", Password: password}); got != MsgLoginBadFormat {
		t.Errorf("login should reject %q with %q, got %q", password, MsgLoginBadFormat, got)
	}
}
