// Package run implements the run command: it loads the provisioned
// configuration, opens an agent session and fetches one page.
package run

import (
	"context"
	"net/http"

	"github.com/arthur-debert/mwbotctl/pkg/agent"
	"github.com/arthur-debert/mwbotctl/pkg/config"
	"github.com/arthur-debert/mwbotctl/pkg/filesystem"
	"github.com/arthur-debert/mwbotctl/pkg/logging"
	"github.com/arthur-debert/mwbotctl/pkg/paths"
	"github.com/arthur-debert/mwbotctl/pkg/permissions"
)

// Options contains options for the run command
type Options struct {
	// Flags holds the page and timeout flags the operator set
	Flags map[string]string

	// ConfigPath overrides the resolved destination
	ConfigPath string

	// UserAgent identifies the bot to the wiki
	UserAgent string

	// HTTPClient defaults to http.DefaultClient
	HTTPClient *http.Client

	// LookupEnv reads the environment (defaults to os.LookupEnv)
	LookupEnv func(string) (string, bool)

	// Paths provides the destination (defaults to paths.New)
	Paths paths.Paths

	// FileSystem to use (defaults to OS filesystem)
	FileSystem filesystem.FS

	// Hardener checks permissions (defaults to the host capability)
	Hardener *permissions.Hardener
}

// Result is the outcome of a run
type Result struct {
	ConfigPath string
	Username   string
	URL        string
	Page       *agent.Page
}

// Run fetches the configured page as the bot
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.run")

	resolved, err := config.Resolve(config.Sources{
		Flags:     opts.Flags,
		LookupEnv: opts.LookupEnv,
	})
	if err != nil {
		return nil, err
	}
	in := resolved.Input

	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.Hardener == nil {
		opts.Hardener = permissions.NewHardener(opts.FileSystem, permissions.Detect())
	}
	path := opts.ConfigPath
	if path == "" {
		if opts.Paths == nil {
			if opts.Paths, err = paths.New(); err != nil {
				return nil, err
			}
		}
		path = opts.Paths.ConfigFile()
	}

	cfg, err := agent.LoadConfig(opts.FileSystem, opts.Hardener, path)
	if err != nil {
		return nil, err
	}
	session, err := agent.New(cfg, agent.Options{
		HTTPClient: opts.HTTPClient,
		UserAgent:  opts.UserAgent,
	})
	if err != nil {
		return nil, err
	}

	if in.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, in.Timeout)
		defer cancel()
	}

	logger.Info().
		Str("username", session.Username()).
		Str("page", in.Page).
		Dur("timeout", in.Timeout).
		Msg("Running agent")

	page, err := session.PageHTML(ctx, in.Page)
	if err != nil {
		return nil, err
	}

	return &Result{
		ConfigPath: path,
		Username:   session.Username(),
		URL:        session.PageURL(in.Page),
		Page:       page,
	}, nil
}
