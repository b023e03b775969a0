package provision

import (
	"net/url"
	"unicode/utf8"

	"github.com/arthur-debert/mwbotctl/pkg/auth"
	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/template"
)

// Request is the operator input for one provisioning run. It is immutable;
// build it with NewRequest.
type Request struct {
	username string
	auth     auth.Method
	apiURL   string
	restURL  string
}

// NewRequest validates the inputs and builds a Request
func NewRequest(username string, method auth.Method, apiURL, restURL string) (Request, error) {
	if username == "" {
		return Request{}, errors.New(errors.ErrInvalidInput, "username is required").
			WithDetail("field", "username")
	}
	if method.IsZero() {
		return Request{}, errors.New(errors.ErrMissingCredential,
			"no credential supplied; set either a bot password or an OAuth2 token")
	}
	for _, f := range []struct{ name, value string }{
		{"username", username},
		{method.Kind().String(), method.Secret()},
		{"api-url", apiURL},
		{"rest-url", restURL},
	} {
		if !utf8.ValidString(f.value) {
			return Request{}, errors.Newf(errors.ErrInvalidInput, "%s is not valid UTF-8", f.name).
				WithDetail("field", f.name)
		}
	}
	if err := checkURL("api-url", apiURL); err != nil {
		return Request{}, err
	}
	if err := checkURL("rest-url", restURL); err != nil {
		return Request{}, err
	}

	return Request{
		username: username,
		auth:     method,
		apiURL:   apiURL,
		restURL:  restURL,
	}, nil
}

func checkURL(field, raw string) error {
	if raw == "" {
		return errors.Newf(errors.ErrInvalidInput, "%s is required", field).
			WithDetail("field", field)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Newf(errors.ErrConfigValid, "%s must be an absolute URL, got %q", field, raw).
			WithDetail("field", field)
	}
	return nil
}

func (r Request) Username() string  { return r.username }
func (r Request) Auth() auth.Method { return r.auth }
func (r Request) APIURL() string    { return r.apiURL }
func (r Request) RESTURL() string   { return r.restURL }

// values maps the request onto template slots; the unused credential slot is empty
func (r Request) values() template.Values {
	return template.Values{
		APIURL:      r.apiURL,
		RESTURL:     r.restURL,
		Username:    r.username,
		Password:    r.auth.PasswordText(),
		OAuth2Token: r.auth.TokenText(),
	}
}
