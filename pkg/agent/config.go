package agent

import (
	"github.com/arthur-debert/mwbotctl/pkg/auth"
	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/filesystem"
	"github.com/arthur-debert/mwbotctl/pkg/permissions"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the materialized bot configuration
type Config struct {
	APIURL  string     `toml:"api_url"`
	RESTURL string     `toml:"rest_url"`
	Auth    AuthConfig `toml:"auth"`
}

// AuthConfig is the [auth] table
type AuthConfig struct {
	Username    string `toml:"username"`
	Password    string `toml:"password,omitempty"`
	OAuth2Token string `toml:"oauth2_token,omitempty"`
}

// Method resolves the single credential the config carries
func (c *Config) Method() (auth.Method, error) {
	return auth.Resolve(c.Auth.Password, c.Auth.OAuth2Token)
}

// LoadConfig reads the config at path. Like the bot client, it refuses a
// file that group or other can access.
func LoadConfig(fsys filesystem.FS, h *permissions.Hardener, path string) (*Config, error) {
	if err := h.Check(path); err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s; run `mwbotctl setup` first", path).
			WithDetail("path", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "%s is not valid TOML", path).
			WithDetail("path", path)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "%s is incomplete", path).
			WithDetail("path", path)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.APIURL == "":
		return errors.New(errors.ErrConfigValid, "api_url is empty")
	case c.RESTURL == "":
		return errors.New(errors.ErrConfigValid, "rest_url is empty")
	case c.Auth.Username == "":
		return errors.New(errors.ErrConfigValid, "auth.username is empty")
	}
	_, err := c.Method()
	return err
}
