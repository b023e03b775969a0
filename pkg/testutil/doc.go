// Package testutil provides utilities for testing mwbotctl components.
//
// Key components:
//   - MemoryFS: in-memory filesystem.FS with per-operation error injection
//   - Workspace: a temp working directory with an isolated XDG config home
package testutil
