// Package auth selects the single credential a bot session authenticates with.
//
// A Method is either a bot password or an OAuth2 token, never both. The only
// ways to obtain a non-zero Method are Password, Token and Resolve, so code
// holding a Method cannot read a credential slot that was never set.
package auth

import (
	"github.com/arthur-debert/mwbotctl/pkg/errors"
)

// Kind identifies which credential a Method carries
type Kind int

const (
	// KindNone is the zero Kind; a Method with it is unusable
	KindNone Kind = iota
	// KindPassword is a MediaWiki bot password
	KindPassword
	// KindToken is an OAuth2 owner-only access token
	KindToken
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPassword:
		return "password"
	case KindToken:
		return "oauth2-token"
	default:
		return "none"
	}
}

// Method is the credential used to authenticate the bot
type Method struct {
	kind   Kind
	secret string
}

// Password returns a Method carrying a bot password
func Password(secret string) Method {
	return Method{kind: KindPassword, secret: secret}
}

// Token returns a Method carrying an OAuth2 token
func Token(secret string) Method {
	return Method{kind: KindToken, secret: secret}
}

// Resolve builds a Method from the two optional credential inputs.
// An empty string means the input was not supplied. Exactly one must be set.
func Resolve(password, token string) (Method, error) {
	switch {
	case password != "" && token != "":
		return Method{}, errors.New(errors.ErrConflictingCredential,
			"both a bot password and an OAuth2 token were supplied; use exactly one")
	case password != "":
		return Password(password), nil
	case token != "":
		return Token(token), nil
	default:
		return Method{}, errors.New(errors.ErrMissingCredential,
			"no credential supplied; set either a bot password or an OAuth2 token")
	}
}

// Kind reports which credential the method carries
func (m Method) Kind() Kind {
	return m.kind
}

// IsZero reports whether m was never resolved
func (m Method) IsZero() bool {
	return m.kind == KindNone
}

// Secret returns the credential value regardless of kind
func (m Method) Secret() string {
	return m.secret
}

// PasswordText returns the bot password, or "" for any other kind
func (m Method) PasswordText() string {
	if m.kind != KindPassword {
		return ""
	}
	return m.secret
}

// TokenText returns the OAuth2 token, or "" for any other kind
func (m Method) TokenText() string {
	if m.kind != KindToken {
		return ""
	}
	return m.secret
}

// String never includes the secret
func (m Method) String() string {
	if m.kind == KindNone {
		return "auth(none)"
	}
	return "auth(" + m.kind.String() + ", redacted)"
}
