package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fsys := NewOS()
	dir := t.TempDir()
	target := filepath.Join(dir, "mwbot.toml")

	t.Run("creates new file", func(t *testing.T) {
		require.NoError(t, fsys.WriteFileAtomic(target, []byte("first"), 0600))

		content, err := fsys.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "first", string(content))
	})

	t.Run("replaces existing content entirely", func(t *testing.T) {
		require.NoError(t, os.WriteFile(target, []byte("a much longer previous body"), 0600))
		require.NoError(t, fsys.WriteFileAtomic(target, []byte("short"), 0600))

		content, err := fsys.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "short", string(content))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "mwbot.toml", entries[0].Name())
	})

	t.Run("applies requested mode", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on windows")
		}
		info, err := fsys.Stat(target)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("does not keep mode of replaced file", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on windows")
		}
		loose := filepath.Join(dir, "loose.toml")
		require.NoError(t, os.WriteFile(loose, []byte("old"), 0644))
		require.NoError(t, os.Chmod(loose, 0644))

		require.NoError(t, fsys.WriteFileAtomic(loose, []byte("new"), 0600))

		info, err := fsys.Stat(loose)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("missing directory fails without creating target", func(t *testing.T) {
		missing := filepath.Join(dir, "nope", "mwbot.toml")
		err := fsys.WriteFileAtomic(missing, []byte("x"), 0600)
		require.Error(t, err)
		_, statErr := os.Stat(missing)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestChmodAndMkdirAll(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	fsys := NewOS()
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, fsys.MkdirAll(dir, 0700))

	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	require.NoError(t, fsys.Chmod(file, 0600))

	info, err := fsys.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
