package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore keeps the token in a single file, the desktop analog of one
// browser storage key. Reads and writes of the one key are atomic.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("token file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	raw := strings.TrimSpace(string(data))
	return raw, raw != ""
}

func (s *FileStore) Save(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return os.WriteFile(s.path, []byte(raw), 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-memory TokenStore for tests and embedded use.
type MemStore struct {
	mu    sync.Mutex
	raw   string
	isSet bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw, s.isSet
}

func (s *MemStore) Save(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
	s.isSet = true
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = ""
	s.isSet = false
	return nil
}
