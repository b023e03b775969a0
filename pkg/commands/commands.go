// Package commands provides the command implementations behind the CLI.
//
// Each command lives in its own subdirectory:
//   - setup/ - materialize the bot configuration from a template
//   - check/ - verify an existing configuration
//   - run/   - load the configuration and fetch a page as the bot
//
// This file re-exports them so the CLI depends on one package.
package commands

import (
	"context"

	"github.com/arthur-debert/mwbotctl/pkg/commands/check"
	"github.com/arthur-debert/mwbotctl/pkg/commands/run"
	"github.com/arthur-debert/mwbotctl/pkg/commands/setup"
	"github.com/arthur-debert/mwbotctl/pkg/provision"
)

// SetupOptions configures Setup
type SetupOptions = setup.Options

// Setup resolves operator input and provisions the configuration.
func Setup(ctx context.Context, opts SetupOptions) (*provision.Result, error) {
	return setup.Setup(ctx, opts)
}

// CheckOptions configures Check
type CheckOptions = check.Options

// CheckResult describes a verified configuration
type CheckResult = check.Result

// Check verifies the provisioned configuration.
func Check(opts CheckOptions) (*CheckResult, error) {
	return check.Check(opts)
}

// RunOptions configures Run
type RunOptions = run.Options

// RunResult describes a completed agent run
type RunResult = run.Result

// Run starts the agent against the provisioned configuration.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	return run.Run(ctx, opts)
}
