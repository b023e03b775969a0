package template

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/mwbotctl/pkg/errors"
)

// Placeholder names, in positional order
const (
	APIURL      = "api_url"
	RESTURL     = "rest_url"
	Username    = "username"
	Password    = "password"
	OAuth2Token = "oauth2_token"
)

// PositionalOrder is the order positional "{}" slots are filled in
var PositionalOrder = []string{APIURL, RESTURL, Username, Password, OAuth2Token}

// Values are the substitutions for one fill
type Values struct {
	APIURL      string
	RESTURL     string
	Username    string
	Password    string
	OAuth2Token string
}

func (v Values) lookup(name string) (string, bool) {
	switch name {
	case APIURL:
		return v.APIURL, true
	case RESTURL:
		return v.RESTURL, true
	case Username:
		return v.Username, true
	case Password:
		return v.Password, true
	case OAuth2Token:
		return v.OAuth2Token, true
	}
	return "", false
}

// segment is either literal text or a slot; name is "" for positional slots
type segment struct {
	literal string
	slot    bool
	name    string
}

// Placeholders returns the slot names the template uses, in order of
// appearance. Positional slots are reported by the name they fill.
func (t *Template) Placeholders() ([]string, error) {
	segs, err := parse(t.Text)
	if err != nil {
		return nil, err
	}
	names := []string{}
	pos := 0
	for _, s := range segs {
		if !s.slot {
			continue
		}
		if s.name == "" {
			names = append(names, PositionalOrder[pos])
			pos++
			continue
		}
		names = append(names, s.name)
	}
	return names, nil
}

// Fill substitutes values into the template. It has no side effects.
func Fill(t *Template, v Values) (string, error) {
	segs, err := parse(t.Text)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(t.Text))
	pos := 0
	for _, s := range segs {
		if !s.slot {
			b.WriteString(s.literal)
			continue
		}
		name := s.name
		if name == "" {
			name = PositionalOrder[pos]
			pos++
		}
		value, _ := v.lookup(name)
		if !utf8.ValidString(value) {
			return "", errors.Newf(errors.ErrInvalidInput, "value for {%s} is not valid UTF-8", name).
				WithDetail("placeholder", name)
		}
		b.WriteString(EscapeTOML(value))
	}
	return b.String(), nil
}

// parse splits text into segments and validates the slot layout
func parse(text string) ([]segment, error) {
	var segs []segment
	var lit strings.Builder
	named, positional := 0, 0

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexAny(text[i+1:], "{}\n")
			if end < 0 || text[i+1+end] != '}' {
				return nil, mismatch(text, i, "unterminated placeholder")
			}
			name := text[i+1 : i+1+end]
			if name == "" {
				positional++
			} else {
				if _, ok := (Values{}).lookup(name); !ok {
					return nil, mismatch(text, i, fmt.Sprintf("unknown placeholder {%s}", name)).
						WithDetail("placeholder", name)
				}
				named++
			}
			flush()
			segs = append(segs, segment{slot: true, name: name})
			i += end + 1
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, mismatch(text, i, "unmatched '}' (write '}}' for a literal brace)")
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	if named > 0 && positional > 0 {
		return nil, errors.Newf(errors.ErrPlaceholderMismatch,
			"template mixes named and positional placeholders (%d named, %d positional)", named, positional)
	}
	if positional > 0 && positional != len(PositionalOrder) {
		return nil, errors.Newf(errors.ErrPlaceholderMismatch,
			"template has %d positional placeholders, expected %d (%s)",
			positional, len(PositionalOrder), strings.Join(PositionalOrder, ", ")).
			WithDetail("count", positional)
	}
	return segs, nil
}

func mismatch(text string, offset int, msg string) *errors.MwbotError {
	line := 1 + strings.Count(text[:offset], "\n")
	return errors.Newf(errors.ErrPlaceholderMismatch, "%s at line %d", msg, line).
		WithDetail("line", line)
}

// EscapeTOML escapes s for use inside a TOML basic string
func EscapeTOML(s string) string {
	if !strings.ContainsFunc(s, needsEscape) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsEscape(r rune) bool {
	return r == '\\' || r == '"' || r < 0x20 || r == 0x7f
}
