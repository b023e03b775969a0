package filesystem

import (
	"io/fs"
)

// FS defines the filesystem operations provisioning depends on
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error

	// WriteFileAtomic replaces name with data so that readers observe either
	// the previous content or the complete new content, never a prefix.
	WriteFileAtomic(name string, data []byte, perm fs.FileMode) error
}
