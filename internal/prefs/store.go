// Package prefs persists user preferences as a flat TOML key-value file.
package prefs

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"seasonfx/internal/utils"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FileStore keeps string values in a TOML file. Every Read goes back to disk,
// so a value written by another process is seen on the next read.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// Open returns a store backed by path. The file does not need to exist yet.
func Open(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("prefs: empty path")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) load() (map[string]string, error) {
	values := map[string]string{}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return values, nil
	}
	if _, err := toml.DecodeFile(s.path, &values); err != nil {
		return nil, errors.Wrapf(err, "decode %s", s.path)
	}
	return values, nil
}

// Read returns the value for key. Missing files, missing keys and unreadable
// files all report false.
func (s *FileStore) Read(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		utils.Warn("Preference store unreadable: %v", err)
		return "", false
	}
	v, ok := values[key]
	return v, ok
}

// Write sets key and rewrites the file through a temp file and rename.
func (s *FileStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		utils.Warn("Replacing unreadable preference store: %v", err)
		values = map[string]string{}
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, "prefs dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".prefs-*.toml")
	if err != nil {
		return errors.Wrap(err, "prefs temp file")
	}
	defer os.Remove(tmp.Name())

	if err := toml.NewEncoder(tmp).Encode(values); err != nil {
		tmp.Close()
		return errors.Wrap(err, "encode prefs")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close prefs")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "replace prefs")
	}
	utils.Debug("Stored %s=%s in %s", key, value, s.path)
	return nil
}

// Keys lists the stored keys in order.
func (s *FileStore) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// MemoryStore is an in-process store.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	Writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

func (s *MemoryStore) Read(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) Write(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.Writes++
	return nil
}
