package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"
)

// Op names an FS operation for error injection
type Op string

const (
	OpStat      Op = "stat"
	OpRead      Op = "read"
	OpMkdirAll  Op = "mkdirall"
	OpChmod     Op = "chmod"
	OpWriteFile Op = "write"
)

// MemoryFS implements filesystem.FS with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*memFile
	dirs  map[string]fs.FileMode

	// Error injection, keyed by operation then cleaned path
	errors map[Op]map[string]error

	// Statistics
	writeCount int
}

type memFile struct {
	content []byte
	mode    fs.FileMode
	modTime time.Time
}

// NewMemoryFS creates a new in-memory filesystem containing only "/"
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files:  make(map[string]*memFile),
		dirs:   map[string]fs.FileMode{"/": 0755},
		errors: make(map[Op]map[string]error),
	}
}

// FailOn makes every subsequent op on path return err
func (m *MemoryFS) FailOn(op Op, path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.errors[op] == nil {
		m.errors[op] = make(map[string]error)
	}
	m.errors[op][filepath.Clean(path)] = err
}

// AddFile seeds a file, creating parent directories
func (m *MemoryFS) AddFile(path string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	m.mkdirAll(filepath.Dir(path), 0755)
	m.files[path] = &memFile{content: []byte(content), mode: mode, modTime: time.Now()}
}

// WriteCount returns how many successful writes happened
func (m *MemoryFS) WriteCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writeCount
}

// Exists reports whether a file exists at path
func (m *MemoryFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok
}

func (m *MemoryFS) injected(op Op, path string) error {
	if byPath, ok := m.errors[op]; ok {
		return byPath[filepath.Clean(path)]
	}
	return nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.injected(OpStat, name); err != nil {
		return nil, err
	}
	name = filepath.Clean(name)
	if f, ok := m.files[name]; ok {
		return &memInfo{name: filepath.Base(name), size: int64(len(f.content)), mode: f.mode, modTime: f.modTime}, nil
	}
	if mode, ok := m.dirs[name]; ok {
		return &memInfo{name: filepath.Base(name), mode: mode | fs.ModeDir, dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.injected(OpRead, name); err != nil {
		return nil, err
	}
	f, ok := m.files[filepath.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(f.content))
	copy(content, f.content)
	return content, nil
}

func (m *MemoryFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected(OpMkdirAll, path); err != nil {
		return err
	}
	m.mkdirAll(filepath.Clean(path), perm)
	return nil
}

func (m *MemoryFS) mkdirAll(path string, perm fs.FileMode) {
	for p := path; ; p = filepath.Dir(p) {
		if _, ok := m.dirs[p]; !ok {
			m.dirs[p] = perm
		}
		if p == filepath.Dir(p) {
			return
		}
	}
}

func (m *MemoryFS) Chmod(name string, mode fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected(OpChmod, name); err != nil {
		return err
	}
	f, ok := m.files[filepath.Clean(name)]
	if !ok {
		return &fs.PathError{Op: "chmod", Path: name, Err: fs.ErrNotExist}
	}
	f.mode = mode.Perm()
	return nil
}

func (m *MemoryFS) WriteFileAtomic(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.injected(OpWriteFile, name); err != nil {
		return err
	}
	name = filepath.Clean(name)
	if _, ok := m.dirs[filepath.Dir(name)]; !ok {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(data))
	copy(content, data)
	m.files[name] = &memFile{content: content, mode: perm.Perm(), modTime: time.Now()}
	m.writeCount++
	return nil
}

// memInfo implements fs.FileInfo
type memInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	dir     bool
}

func (i *memInfo) Name() string       { return i.name }
func (i *memInfo) Size() int64        { return i.size }
func (i *memInfo) Mode() fs.FileMode  { return i.mode }
func (i *memInfo) ModTime() time.Time { return i.modTime }
func (i *memInfo) IsDir() bool        { return i.dir }
func (i *memInfo) Sys() interface{}   { return nil }
