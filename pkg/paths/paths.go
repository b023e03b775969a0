package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/mwbotctl/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the per-user config directory
	EnvConfigDir = "MWBOT_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// File names. ConfigFileName is fixed by the bot client and is not configurable.
const (
	// ConfigFileName is the materialized configuration read by the bot
	ConfigFileName = "mwbot.toml"

	// TemplateFileName is the template looked up in the working directory
	TemplateFileName = "mwbot_template.toml"

	// LegacyTemplateFileName is the template name used by the earliest layout
	LegacyTemplateFileName = "mwbot.toml"
)

// Paths provides the resolved destination locations
type Paths interface {
	ConfigDir() string
	ConfigFile() string
}

type paths struct {
	configDir string
}

// New resolves the per-user configuration directory.
// It fails with DESTINATION_UNRESOLVABLE if no absolute directory can be determined.
func New() (Paths, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return NewWithConfigDir(expandHome(dir))
	}
	return NewWithConfigDir(xdg.ConfigHome)
}

// NewWithConfigDir uses dir as the configuration directory
func NewWithConfigDir(dir string) (Paths, error) {
	if dir == "" || !filepath.IsAbs(dir) {
		return nil, errors.New(errors.ErrDestinationUnresolvable,
			"cannot determine the user configuration directory; set "+EnvConfigDir+" or XDG_CONFIG_HOME").
			WithDetail("dir", dir)
	}
	return &paths{configDir: filepath.Clean(dir)}, nil
}

// ConfigDir returns the directory that holds the configuration file
func (p *paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the absolute path of the materialized configuration
func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
