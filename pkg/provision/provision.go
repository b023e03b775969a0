// Package provision materializes the bot configuration from a template.
//
// Provision runs a linear pipeline:
//
//	idle → template-loaded → auth-resolved → filled → written → hardened → done
//
// Any failing step moves to failed and the remaining steps are skipped. A
// write that succeeded is never rolled back: if hardening fails the file stays
// on disk and the returned error says so.
package provision

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/filesystem"
	"github.com/arthur-debert/mwbotctl/pkg/logging"
	"github.com/arthur-debert/mwbotctl/pkg/paths"
	"github.com/arthur-debert/mwbotctl/pkg/permissions"
	"github.com/arthur-debert/mwbotctl/pkg/template"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Options tune a single provisioning run
type Options struct {
	// TemplatePath is the template to read, relative to the working directory.
	TemplatePath string
	// DryRun stops after filling; nothing is written.
	DryRun bool
}

// Result describes how far a run got
type Result struct {
	State State
	// Path is the resolved destination.
	Path string
	// TemplatePath is the template that was read.
	TemplatePath string
	// Written is true once the destination has been replaced, even if a later step failed.
	Written bool
	// Hardened is true when owner-only permissions were applied.
	Hardened bool
	// Placeholders lists the slots the template used.
	Placeholders []string
}

// Provisioner sequences the provisioning steps
type Provisioner struct {
	fs       filesystem.FS
	paths    paths.Paths
	hardener *permissions.Hardener
	logger   zerolog.Logger
}

// New creates a Provisioner
func New(fsys filesystem.FS, p paths.Paths, h *permissions.Hardener) *Provisioner {
	return &Provisioner{
		fs:       fsys,
		paths:    p,
		hardener: h,
		logger:   logging.GetLogger("provision"),
	}
}

// Provision runs the pipeline for req
func (p *Provisioner) Provision(ctx context.Context, req Request, opts Options) (*Result, error) {
	done := logging.LogOperationStart(p.logger, "provision")
	defer done()

	if opts.TemplatePath == "" {
		opts.TemplatePath = paths.TemplateFileName
	}

	result := &Result{
		State:        StateIdle,
		Path:         p.paths.ConfigFile(),
		TemplatePath: opts.TemplatePath,
	}
	fail := func(err error) (*Result, error) {
		p.logger.Debug().Str("failedAfter", result.State.String()).Err(err).Msg("Provisioning failed")
		result.State = StateFailed
		return result, err
	}

	if err := ctx.Err(); err != nil {
		return fail(cancelled(err))
	}
	tpl, err := template.Load(p.fs, opts.TemplatePath)
	if err != nil {
		return fail(err)
	}
	p.advance(result, StateTemplateLoaded)

	if req.Auth().IsZero() {
		return fail(errors.New(errors.ErrMissingCredential, "request carries no credential"))
	}
	p.logger.Debug().Str("method", req.Auth().Kind().String()).Msg("Using auth method")
	p.advance(result, StateAuthResolved)

	if err := ctx.Err(); err != nil {
		return fail(cancelled(err))
	}
	filled, err := template.Fill(tpl, req.values())
	if err != nil {
		return fail(errors.Wrapf(err, errors.ErrPlaceholderMismatch, "cannot fill template %s", tpl.Path).
			WithDetail("path", tpl.Path))
	}
	result.Placeholders, _ = tpl.Placeholders()
	if isTOML(tpl.Path) {
		var doc map[string]interface{}
		if err := toml.Unmarshal([]byte(filled), &doc); err != nil {
			return fail(errors.Wrapf(err, errors.ErrConfigParse,
				"template %s does not produce valid TOML once filled", tpl.Path).
				WithDetail("path", tpl.Path))
		}
	}
	p.advance(result, StateFilled)

	if opts.DryRun {
		p.logger.Info().Str("path", result.Path).Msg("Dry run, not writing")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return fail(cancelled(err))
	}
	dir := p.paths.ConfigDir()
	if err := p.fs.MkdirAll(dir, 0700); err != nil {
		return fail(errors.Wrapf(err, errors.ErrDirCreate, "cannot create config directory %s", dir).
			WithDetail("path", dir))
	}
	if err := p.fs.WriteFileAtomic(result.Path, []byte(filled), permissions.OwnerOnly); err != nil {
		return fail(errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", result.Path).
			WithDetail("path", result.Path))
	}
	result.Written = true
	p.advance(result, StateWritten)

	if err := p.hardener.Harden(result.Path); err != nil {
		return fail(errors.Wrapf(err, errors.ErrPermission,
			"%s was written but its permissions could not be restricted; it may be readable by other users", result.Path).
			WithDetail("path", result.Path).
			WithDetail("written", true))
	}
	result.Hardened = p.hardener.Supported()
	p.advance(result, StateHardened)

	p.advance(result, StateDone)
	return result, nil
}

func (p *Provisioner) advance(r *Result, s State) {
	r.State = s
	p.logger.Debug().Str("state", s.String()).Msg("Provisioning step complete")
}

func cancelled(err error) error {
	return errors.Wrap(err, errors.ErrInternal, "provisioning cancelled before the config was written")
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
