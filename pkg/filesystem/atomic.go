//go:build !windows

package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteFileAtomic writes data to a pending file next to name and renames it
// into place. The mode of any file being replaced is not carried over.
func (o *osFS) WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	pending, err := renameio.NewPendingFile(name,
		renameio.WithTempDir(filepath.Dir(name)),
		renameio.WithPermissions(perm),
	)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	// No-op after a successful replace
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}
