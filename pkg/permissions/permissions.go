// Package permissions restricts secrets-bearing files to their owner.
//
// Whether the host has POSIX-style permission bits is decided once by Detect.
// On hosts without them Harden is a no-op that succeeds and access control is
// left to the platform's ACL defaults.
package permissions

import (
	"io/fs"
	"runtime"

	"github.com/arthur-debert/mwbotctl/pkg/errors"
	"github.com/arthur-debert/mwbotctl/pkg/filesystem"
	"github.com/arthur-debert/mwbotctl/pkg/logging"
)

// OwnerOnly is read/write for the owner, nothing for group or other
const OwnerOnly fs.FileMode = 0600

// Capability describes whether the host supports owner-only file modes
type Capability struct {
	OwnerOnlyModes bool
}

// Detect reports the capability of the running host
func Detect() Capability {
	return CapabilityFor(runtime.GOOS)
}

// CapabilityFor reports the capability of the named GOOS
func CapabilityFor(goos string) Capability {
	switch goos {
	case "windows", "plan9":
		return Capability{OwnerOnlyModes: false}
	default:
		return Capability{OwnerOnlyModes: true}
	}
}

// Hardener applies and verifies owner-only modes
type Hardener struct {
	fs         filesystem.FS
	capability Capability
}

// NewHardener creates a hardener for the given filesystem and capability
func NewHardener(fsys filesystem.FS, capability Capability) *Hardener {
	return &Hardener{fs: fsys, capability: capability}
}

// Supported reports whether Harden actually changes modes on this host
func (h *Hardener) Supported() bool {
	return h.capability.OwnerOnlyModes
}

// Harden sets path to OwnerOnly. It must run after the write completed.
func (h *Hardener) Harden(path string) error {
	logger := logging.GetLogger("permissions")
	if !h.capability.OwnerOnlyModes {
		logger.Debug().Str("path", path).Msg("Host has no owner-only modes, skipping")
		return nil
	}

	if err := h.fs.Chmod(path, OwnerOnly); err != nil {
		return errors.Wrapf(err, errors.ErrPermission, "failed to restrict %s to owner-only access", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Str("mode", OwnerOnly.String()).Msg("Restricted file mode")
	return nil
}

// Check fails with PERMISSION if path grants any access to group or other
func (h *Hardener) Check(path string) error {
	if !h.capability.OwnerOnlyModes {
		return nil
	}

	info, err := h.fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "cannot stat %s", path).
			WithDetail("path", path)
	}

	if mode := info.Mode().Perm(); mode&0077 != 0 {
		return errors.Newf(errors.ErrPermission,
			"%s has mode %s; it must not be readable by group or other (run setup again or chmod 600)", path, mode).
			WithDetail("path", path).
			WithDetail("mode", mode.String())
	}
	return nil
}
