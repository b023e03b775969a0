package template_test

import (
	"testing"

	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/template"
	"github.com/arthur-debert/mwbotctl/pkg/testutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type filledConfig struct {
	APIURL  string `toml:"api_url"`
	RESTURL string `toml:"rest_url"`
	Auth    struct {
		Username    string `toml:"username"`
		Password    string `toml:"password"`
		OAuth2Token string `toml:"oauth2_token"`
	} `toml:"auth"`
}

func TestFillExample(t *testing.T) {
	tpl := &template.Template{Text: "url={api_url} user={username} pass={password}"}

	got, err := template.Fill(tpl, template.Values{
		APIURL:   "https://x/api",
		RESTURL:  "https://x/rest",
		Username: "bot1",
		Password: "s3cr3t",
	})

	require.NoError(t, err)
	assert.Equal(t, "url=https://x/api user=bot1 pass=s3cr3t", got)
}

func TestFillRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		values template.Values
	}{
		{
			name: "named password",
			text: testutil.FullTemplate,
			values: template.Values{
				APIURL:   "https://en.wikipedia.org/w/api.php",
				RESTURL:  "https://en.wikipedia.org/api/rest_v1",
				Username: "ExampleBot@task",
				Password: "abcdefghijklmnopqrstuvwxyz012345",
			},
		},
		{
			name: "named token",
			text: testutil.FullTemplate,
			values: template.Values{
				APIURL:      "https://wiki.example/api.php",
				RESTURL:     "https://wiki.example/rest.php",
				Username:    "Bot",
				OAuth2Token: "eyJ0eXAiOiJKV1QiLCJhbGciOiJSUzI1NiJ9.e30.sig",
			},
		},
		{
			name: "positional",
			text: testutil.PositionalTemplate,
			values: template.Values{
				APIURL:   "https://x/api",
				RESTURL:  "https://x/rest",
				Username: "bot1",
				Password: "s3cr3t",
			},
		},
		{
			name: "values needing escapes",
			text: testutil.FullTemplate,
			values: template.Values{
				APIURL:   `https://x/api?q="a"`,
				RESTURL:  `https://x/rest\v1`,
				Username: "Bot\tName",
				Password: "p\"a\\s\ns\u0001é",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := template.Fill(&template.Template{Text: tt.text}, tt.values)
			require.NoError(t, err)

			var cfg filledConfig
			require.NoError(t, toml.Unmarshal([]byte(out), &cfg), out)

			assert.Equal(t, tt.values.APIURL, cfg.APIURL)
			assert.Equal(t, tt.values.RESTURL, cfg.RESTURL)
			assert.Equal(t, tt.values.Username, cfg.Auth.Username)
			assert.Equal(t, tt.values.Password, cfg.Auth.Password)
			assert.Equal(t, tt.values.OAuth2Token, cfg.Auth.OAuth2Token)
		})
	}
}

func TestFillIsDeterministic(t *testing.T) {
	tpl := &template.Template{Text: testutil.FullTemplate}
	v := template.Values{APIURL: "a", RESTURL: "b", Username: "c", Password: "d"}

	first, err := template.Fill(tpl, v)
	require.NoError(t, err)
	second, err := template.Fill(tpl, v)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFillBraces(t *testing.T) {
	tpl := &template.Template{Text: `point = {{ x = 1, who = "{username}" }}`}

	got, err := template.Fill(tpl, template.Values{Username: "bot"})
	require.NoError(t, err)
	assert.Equal(t, `point = { x = 1, who = "bot" }`, got)
}

func TestFillRepeatedSlot(t *testing.T) {
	tpl := &template.Template{Text: "{username}/{username}"}

	got, err := template.Fill(tpl, template.Values{Username: "bot"})
	require.NoError(t, err)
	assert.Equal(t, "bot/bot", got)
}

func TestFillRejectsInvalidUTF8(t *testing.T) {
	tpl := &template.Template{Text: `password = "{password}"`}

	for _, secret := range []string{"a\"\xffb", "a\xffb"} {
		got, err := template.Fill(tpl, template.Values{Password: secret})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
		assert.Empty(t, got)
	}
}

func TestFillPlaceholderMismatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"unknown name", `user = "{user}"`},
		{"mixed styles", `a = "{api_url}" b = "{}"`},
		{"too few positional", `a = "{}" b = "{}"`},
		{"too many positional", `{}{}{}{}{}{}`},
		{"unterminated", `a = "{api_url"`},
		{"unterminated across newline", "a = \"{api_url\n}\""},
		{"nested open", `{api{url}`},
		{"stray close", `a = }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := template.Fill(&template.Template{Text: tt.text}, template.Values{})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderMismatch), "got %v", err)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	names, err := (&template.Template{Text: testutil.PositionalTemplate}).Placeholders()
	require.NoError(t, err)
	assert.Equal(t, template.PositionalOrder, names)

	names, err = (&template.Template{Text: "{password} {api_url} {password}"}).Placeholders()
	require.NoError(t, err)
	assert.Equal(t, []string{"password", "api_url", "password"}, names)
}

func TestEscapeTOML(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`a"b`, `a\"b`},
		{`a\b`, `a\\b`},
		{"a\nb", `a\nb`},
		{"\x01", `\u0001`},
		{"\x7f", `\u007F`},
		{"ünïcode", "ünïcode"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, template.EscapeTOML(tt.in), "input %q", tt.in)
	}
}
