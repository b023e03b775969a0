// Package setup implements the setup command: it turns flags, environment
// and .env input into a provisioning request and runs it.
package setup

import (
	"context"

	"github.com/arthur-debert/mwbotctl/pkg/auth"
	"github.com/arthur-debert/mwbotctl/pkg/config"
	"github.com/arthur-debert/mwbotctl/pkg/filesystem"
	"github.com/arthur-debert/mwbotctl/pkg/logging"
	"github.com/arthur-debert/mwbotctl/pkg/paths"
	"github.com/arthur-debert/mwbotctl/pkg/permissions"
	"github.com/arthur-debert/mwbotctl/pkg/provision"
)

// Options contains options for the setup command
type Options struct {
	// Flags holds only the flags the operator set, keyed like config.Input
	Flags map[string]string

	// EnvFileRequired makes a missing env file an error
	EnvFileRequired bool

	// DryRun fills the template without writing it
	DryRun bool

	// LookupEnv reads the environment (defaults to os.LookupEnv)
	LookupEnv func(string) (string, bool)

	// Paths provides the destination (defaults to paths.New)
	Paths paths.Paths

	// FileSystem to use (defaults to OS filesystem)
	FileSystem filesystem.FS

	// Hardener restricts the written file (defaults to the host capability)
	Hardener *permissions.Hardener
}

// Setup provisions the bot configuration. The returned result is non-nil
// whenever provisioning started, so callers can tell whether the file was
// written before a failure.
func Setup(ctx context.Context, opts Options) (*provision.Result, error) {
	logger := logging.GetLogger("commands.setup")

	resolved, err := config.Resolve(config.Sources{
		Flags:           opts.Flags,
		LookupEnv:       opts.LookupEnv,
		EnvFileRequired: opts.EnvFileRequired,
	})
	if err != nil {
		return nil, err
	}
	in := resolved.Input

	logger.Debug().
		Str("usernameFrom", string(resolved.Origin(config.KeyUsername))).
		Str("template", in.Template).
		Bool("dryRun", opts.DryRun).
		Msg("Resolved setup input")

	method, err := auth.Resolve(in.BotPassword, in.OAuth2Token)
	if err != nil {
		return nil, err
	}
	req, err := provision.NewRequest(in.Username, method, in.APIURL, in.RESTURL)
	if err != nil {
		return nil, err
	}

	if opts.Paths == nil {
		if opts.Paths, err = paths.New(); err != nil {
			return nil, err
		}
	}
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.Hardener == nil {
		opts.Hardener = permissions.NewHardener(opts.FileSystem, permissions.Detect())
	}

	p := provision.New(opts.FileSystem, opts.Paths, opts.Hardener)
	return p.Provision(ctx, req, provision.Options{
		TemplatePath: in.Template,
		DryRun:       opts.DryRun,
	})
}
