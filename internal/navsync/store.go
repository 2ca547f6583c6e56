package navsync

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileStore is the file access the synchronizer needs. Paths are
// slash-separated and relative to the site root.
type FileStore interface {
	Walk(fn func(rel string) error) error
	ReadFile(rel string) ([]byte, error)
	WriteFile(rel string, data []byte) error
}

// DirStore reads and writes files under a directory on disk. Writes go
// straight to the target path and are not atomic.
type DirStore struct {
	Root string
}

// NewDirStore returns a store rooted at root.
func NewDirStore(root string) *DirStore {
	return &DirStore{Root: root}
}

// Walk visits every regular file in lexical order. Hidden directories
// (.git, .idea, ...) are not descended into.
func (s *DirStore) Walk(fn func(rel string) error) error {
	return filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != s.Root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		return fn(filepath.ToSlash(rel))
	})
}

func (s *DirStore) ReadFile(rel string) ([]byte, error) {
	return os.ReadFile(s.path(rel))
}

func (s *DirStore) WriteFile(rel string, data []byte) error {
	return os.WriteFile(s.path(rel), data, 0o644)
}

func (s *DirStore) path(rel string) string {
	return filepath.Join(s.Root, filepath.FromSlash(rel))
}

// MemStore keeps files in memory. With a base store it acts as a
// copy-on-write overlay: reads fall through to the base until a file is
// written, and the base is never modified.
type MemStore struct {
	mu      sync.Mutex
	files   map[string][]byte
	base    FileStore
	written []string
}

// NewMemStore returns a store holding a copy of files.
func NewMemStore(files map[string]string) *MemStore {
	m := &MemStore{files: make(map[string][]byte, len(files))}
	for k, v := range files {
		m.files[k] = []byte(v)
	}
	return m
}

// NewOverlay returns a MemStore layered over base.
func NewOverlay(base FileStore) *MemStore {
	return &MemStore{files: make(map[string][]byte), base: base}
}

func (m *MemStore) Walk(fn func(rel string) error) error {
	if m.base != nil {
		return m.base.Walk(fn)
	}
	m.mu.Lock()
	keys := make([]string, 0, len(m.files))
	for k := range m.files {
		keys = append(keys, k)
	}
	m.mu.Unlock()
	sort.Strings(keys)
	for _, k := range keys {
		if err := fn(k); err != nil {
			return err
		}
	}
	return nil
}

func (m *MemStore) ReadFile(rel string) ([]byte, error) {
	m.mu.Lock()
	data, ok := m.files[rel]
	m.mu.Unlock()
	if ok {
		return append([]byte(nil), data...), nil
	}
	if m.base != nil {
		return m.base.ReadFile(rel)
	}
	return nil, fmt.Errorf("read %s: %w", rel, fs.ErrNotExist)
}

func (m *MemStore) WriteFile(rel string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[rel] = append([]byte(nil), data...)
	m.written = append(m.written, rel)
	return nil
}

// Written returns the paths written so far, in write order.
func (m *MemStore) Written() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.written...)
}
