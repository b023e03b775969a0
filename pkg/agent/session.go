// Package agent is the bot client side of mwbotctl: it consumes the
// provisioned configuration and talks to the wiki's REST endpoint.
//
// Only what `mwbotctl run` needs is implemented: fetching a page's Parsoid
// HTML and exposing it as a mutable document. Bot-password login is part of
// the wiki's action API and is not implemented, so password sessions read
// anonymously; token sessions send the token as a bearer credential.
package agent

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/arthur-debert/mwbotctl/pkg/auth"
	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/logging"
	"github.com/beevik/etree"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds a fetched page
var maxBodyBytes int64 = 32 << 20

// Options configure a Session
type Options struct {
	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client
	// UserAgent is sent with every request; wikis reject anonymous agents.
	UserAgent string
}

// Session is an authenticated view of one wiki
type Session struct {
	cfg     *Config
	method  auth.Method
	client  *http.Client
	agent   string
	logger  zerolog.Logger
	restURL *url.URL
}

// Page is a fetched page and its parsed document
type Page struct {
	Title    string
	Document *etree.Document
}

// New creates a Session from a loaded config
func New(cfg *Config, opts Options) (*Session, error) {
	method, err := cfg.Method()
	if err != nil {
		return nil, err
	}
	restURL, err := url.Parse(strings.TrimRight(cfg.RESTURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid rest_url %q", cfg.RESTURL)
	}

	client := opts.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	s := &Session{
		cfg:     cfg,
		method:  method,
		client:  client,
		agent:   opts.UserAgent,
		logger:  logging.GetLogger("agent"),
		restURL: restURL,
	}
	if method.Kind() == auth.KindPassword {
		s.logger.Info().Str("username", cfg.Auth.Username).
			Msg("Bot password sessions read anonymously; login is left to the bot client")
	}
	return s, nil
}

// Username returns the configured bot account
func (s *Session) Username() string {
	return s.cfg.Auth.Username
}

// PageURL returns the REST URL of a page's HTML
func (s *Session) PageURL(title string) string {
	name := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	u := *s.restURL
	u.RawPath = s.restURL.EscapedPath() + "/v1/page/" + url.PathEscape(name) + "/html"
	u.Path, _ = url.PathUnescape(u.RawPath)
	return u.String()
}

// PageHTML fetches title and parses it into a mutable document
func (s *Session) PageHTML(ctx context.Context, title string) (*Page, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New(errors.ErrInvalidInput, "page title is empty")
	}
	target := s.PageURL(title)
	logger := s.logger.With().Str("url", target).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrAgentRequest, "cannot build request for %s", target)
	}
	req.Header.Set("Accept", "text/html; charset=utf-8")
	if s.agent != "" {
		req.Header.Set("User-Agent", s.agent)
	}
	if s.method.Kind() == auth.KindToken {
		req.Header.Set("Authorization", "Bearer "+s.method.TokenText())
	}

	logger.Debug().Msg("Fetching page")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrAgentRequest, "request to %s failed", target)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Newf(errors.ErrAgentRequest, "GET %s returned %s: %s",
			target, resp.Status, strings.TrimSpace(string(snippet))).
			WithDetail("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrAgentRequest, "reading %s failed", target)
	}
	if int64(len(body)) > maxBodyBytes {
		return nil, errors.Newf(errors.ErrAgentRequest, "page %q exceeds %d bytes", title, maxBodyBytes).
			WithDetail("limit", maxBodyBytes)
	}

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive: true,
		Entity:     xml.HTMLEntity,
	}
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, errors.Wrapf(err, errors.ErrAgentRequest, "page %q is not parseable markup", title)
	}

	logger.Debug().Int("bytes", len(body)).Msg("Page parsed")
	return &Page{Title: title, Document: doc}, nil
}

// Sections returns the Parsoid <section> elements in document order
func (p *Page) Sections() []*etree.Element {
	return p.Document.FindElements("//section")
}

// Headings returns the text of h1..h6 elements in document order
func (p *Page) Headings() []string {
	var out []string
	for _, el := range p.Document.FindElements("//*") {
		switch el.Tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			out = append(out, strings.TrimSpace(el.Text()))
		}
	}
	return out
}

// Summary is a one-line description of the page
func (p *Page) Summary() string {
	root := "none"
	if r := p.Document.Root(); r != nil {
		root = r.Tag
	}
	return fmt.Sprintf("%s: root <%s>, %d sections, %d headings",
		p.Title, root, len(p.Sections()), len(p.Headings()))
}
