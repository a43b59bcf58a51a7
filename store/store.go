// Package store is a small JSON key-value store: one entry per key, the
// whole value rewritten on every set. It is the persistence layer for the
// budgeting state.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Store reads and writes JSON-encoded values by key.
type Store interface {
	// Get decodes the value stored under key into v. It reports whether the
	// key existed; a missing key leaves v untouched and is not an error.
	Get(key string, v any) (bool, error)
	// Set encodes v and stores it under key, replacing any previous value.
	Set(key string, v any) error
	// Keys returns all existing keys, sorted.
	Keys() ([]string, error)
}

// Dir is a Store backed by a directory holding one <key>.json file per key.
type Dir struct {
	path string
}

// Open returns a Dir store rooted at path, creating the directory if needed.
func Open(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("could not create state directory %q: %w", path, err)
	}
	return &Dir{path: path}, nil
}

// Path returns the directory backing this store.
func (d *Dir) Path() string { return d.path }

func (d *Dir) file(key string) string {
	return filepath.Join(d.path, key+".json")
}

// Get implements Store.
func (d *Dir) Get(key string, v any) (bool, error) {
	data, err := os.ReadFile(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not read %q: %w", d.file(key), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("could not decode %q: %w", d.file(key), err)
	}
	return true, nil
}

// Set implements Store. The value is written to a temporary file first and
// renamed into place, so a crash mid-write never leaves a truncated entry.
func (d *Dir) Set(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", key, err)
	}
	tmp, err := os.CreateTemp(d.path, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", key, err)
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("could not write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("could not close %q: %w", key, err)
	}
	if err := os.Rename(name, d.file(key)); err != nil {
		os.Remove(name)
		return fmt.Errorf("could not replace %q: %w", d.file(key), err)
	}
	logrus.WithField("key", key).Debug("state written")
	return nil
}

// Keys implements Store.
func (d *Dir) Keys() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("could not list state directory %q: %w", d.path, err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

// Raw returns the stored bytes for key, for state inspection. It reports
// whether the key existed.
func (d *Dir) Raw(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", d.file(key), err)
	}
	return data, true, nil
}

// Mem is an in-memory Store, for tests.
type Mem struct {
	mu      sync.Mutex
	entries map[string][]byte
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{entries: make(map[string][]byte)}
}

// Get implements Store.
func (m *Mem) Get(key string, v any) (bool, error) {
	m.mu.Lock()
	data, ok := m.entries[key]
	m.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("could not decode %q: %w", key, err)
	}
	return true, nil
}

// Set implements Store.
func (m *Mem) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %q: %w", key, err)
	}
	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()
	return nil
}

// Keys implements Store.
func (m *Mem) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Raw returns the stored bytes for key, for state inspection. It reports
// whether the key existed.
func (m *Mem) Raw(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	return data, ok
}

var _ Store = (*Dir)(nil)
var _ Store = (*Mem)(nil)
