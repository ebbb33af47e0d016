package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/comparehub/shopper/internal/domain"
	"github.com/comparehub/shopper/internal/logger"
	"go.uber.org/zap"
)

// FileStore is a file-backed JSON key/value store: one document per key
// under a state directory. Reads and writes are synchronous; every write
// replaces the stored value wholesale via a temp-file rename. A missing or
// corrupt document is reported as domain.ErrStateMiss so callers fall back
// to their type's empty default instead of failing.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the state directory if needed and returns a store
// over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load decodes the value stored under key into out.
func (s *FileStore) Load(key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return domain.ErrStateMiss
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.L().Debug("discarding corrupt persisted state",
			zap.String("key", key),
			zap.Error(err))
		return domain.ErrStateMiss
	}
	return nil
}

// Save replaces the value stored under key.
func (s *FileStore) Save(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode state %q: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to commit state %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Deleting an absent key is not
// an error.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
