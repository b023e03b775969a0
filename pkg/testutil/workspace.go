package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Workspace is a real temp directory used as the working directory, with the
// destination config directory and the log state directory redirected inside it
type Workspace struct {
	Dir       string
	ConfigDir string
	StateDir  string

	t *testing.T
}

// NewWorkspace creates the workspace and changes into it for the test's duration.
// Tests using it must not call t.Parallel.
func NewWorkspace(t *testing.T) *Workspace {
	t.Helper()

	dir := t.TempDir()
	w := &Workspace{
		Dir:       dir,
		ConfigDir: filepath.Join(dir, "config"),
		StateDir:  filepath.Join(dir, "state"),
		t:         t,
	}

	t.Setenv("MWBOT_CONFIG_DIR", w.ConfigDir)
	t.Setenv("XDG_STATE_HOME", w.StateDir)
	for _, key := range []string{"MW_USERNAME", "MW_BOTPASSWORD", "MW_OAUTH2", "MW_API_URL", "MW_REST_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })

	return w
}

// WriteFile writes content relative to the workspace root
func (w *Workspace) WriteFile(name, content string) string {
	w.t.Helper()
	path := filepath.Join(w.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		w.t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		w.t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ConfigFile returns the destination path provisioning writes to
func (w *Workspace) ConfigFile() string {
	return filepath.Join(w.ConfigDir, "mwbot.toml")
}
