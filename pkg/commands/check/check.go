// Package check implements the check command, which verifies that the
// provisioned configuration exists, parses and is readable by its owner only.
package check

import (
	"io/fs"

	"github.com/arthur-debert/mwbotctl/pkg/agent"
	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/filesystem"
	"github.com/arthur-debert/mwbotctl/pkg/logging"
	"github.com/arthur-debert/mwbotctl/pkg/paths"
	"github.com/arthur-debert/mwbotctl/pkg/permissions"
)

// Options contains options for the check command
type Options struct {
	// ConfigPath overrides the resolved destination
	ConfigPath string

	// Paths provides the destination (defaults to paths.New)
	Paths paths.Paths

	// FileSystem to use (defaults to OS filesystem)
	FileSystem filesystem.FS

	// Hardener checks permissions (defaults to the host capability)
	Hardener *permissions.Hardener
}

// Result describes a configuration that passed every check
type Result struct {
	Path      string
	Mode      fs.FileMode
	OwnerOnly bool
	Username  string
	Method    string
	APIURL    string
	RESTURL   string
}

// Check loads the configuration the same way the bot does
func Check(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.check")

	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.Hardener == nil {
		opts.Hardener = permissions.NewHardener(opts.FileSystem, permissions.Detect())
	}

	path := opts.ConfigPath
	if path == "" {
		if opts.Paths == nil {
			p, err := paths.New()
			if err != nil {
				return nil, err
			}
			opts.Paths = p
		}
		path = opts.Paths.ConfigFile()
	}
	logger.Debug().Str("path", path).Msg("Checking configuration")

	cfg, err := agent.LoadConfig(opts.FileSystem, opts.Hardener, path)
	if err != nil {
		return nil, err
	}
	method, err := cfg.Method()
	if err != nil {
		return nil, err
	}

	info, err := opts.FileSystem.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "cannot stat %s", path)
	}

	return &Result{
		Path:      path,
		Mode:      info.Mode().Perm(),
		OwnerOnly: opts.Hardener.Supported(),
		Username:  cfg.Auth.Username,
		Method:    method.Kind().String(),
		APIURL:    cfg.APIURL,
		RESTURL:   cfg.RESTURL,
	}, nil
}
