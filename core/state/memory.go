package state

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps records in process memory. Intended for tests and
// ephemeral sessions where persistence across restarts is not wanted.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context, key string, v any) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.RLock()
	data, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return decodeRecord(data, v)
}

func (s *MemoryStore) Save(ctx context.Context, key string, v any) error {
	if err := validateKey(key); err != nil {
		return err
	}
	data, err := encodeRecord(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}
