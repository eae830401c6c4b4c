// Package state persists the tool's small key-value state: connection
// settings under "rpcConfig" and deployment history under
// "deployedContracts". Values are whole JSON documents written through on
// every change.
package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is the key-value boundary. The file-backed implementation is used
// by the CLI; MemoryStore substitutes in tests.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Keys of the persisted state.
const (
	KeyRPCConfig         = "rpcConfig"
	KeyDeployedContracts = "deployedContracts"
)

// FileStore keeps one JSON file per key under a data directory. Private
// keys land here unencrypted with 0600 permissions; that trade-off is part
// of the documented contract.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Get reads the value stored under key. A missing file is not an error.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read state %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes the value under key, creating the data dir on first use.
func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	if err := os.WriteFile(s.path(key), value, 0o600); err != nil {
		return fmt.Errorf("write state %s: %w", key, err)
	}
	return nil
}

// Path returns the file backing a key, for display in warnings.
func (s *FileStore) Path(key string) string {
	return s.path(key)
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}
