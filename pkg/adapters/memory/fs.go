package memory

import (
	"io/fs"
	"sync"
	"time"

	"github.com/aretw0/ringctl/pkg/ports"
)

var _ ports.FileSystem = (*FS)(nil)

// FS implements ports.FileSystem over an in-memory set of paths.
// Safe for concurrent use.
type FS struct {
	mu    sync.RWMutex
	files map[string]fs.FileMode
}

// NewFS creates an empty filesystem.
func NewFS() *FS {
	return &FS{files: make(map[string]fs.FileMode)}
}

// AddFifo registers a named pipe at path.
func (f *FS) AddFifo(path string) {
	f.Add(path, fs.ModeNamedPipe|0o644)
}

// Add registers path with the given mode.
func (f *FS) Add(path string, mode fs.FileMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[path] = mode
}

// Exists reports whether path is registered.
func (f *FS) Exists(path string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, ok := f.files[path]
	return ok
}

// Stat returns a FileInfo for a registered path or fs.ErrNotExist.
func (f *FS) Stat(path string) (fs.FileInfo, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	mode, ok := f.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return fileInfo{name: path, mode: mode}, nil
}

// Remove deletes a registered path.
func (f *FS) Remove(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.files[path]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(f.files, path)
	return nil
}

type fileInfo struct {
	name string
	mode fs.FileMode
}

func (i fileInfo) Name() string       { return i.name }
func (i fileInfo) Size() int64        { return 0 }
func (i fileInfo) Mode() fs.FileMode  { return i.mode }
func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fileInfo) Sys() any           { return nil }
