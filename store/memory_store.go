package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is a process-local Store used in tests and for ephemeral runs.
// Values round-trip through JSON so it behaves like the persistent backend.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]byte
	sequences   map[string]int64

	// FailWrites makes every mutation return ErrUnavailable. Tests use it
	// to exercise the error propagation of the services layer.
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]byte),
		sequences:   make(map[string]int64),
	}
}

func (s *MemoryStore) Get(name string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.collections[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", ErrUnavailable, name, err)
	}
	return true, nil
}

func (s *MemoryStore) Set(name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return fmt.Errorf("%w: set %s", ErrUnavailable, name)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrUnavailable, name, err)
	}
	s.collections[name] = data
	return nil
}

func (s *MemoryStore) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return fmt.Errorf("%w: remove %s", ErrUnavailable, name)
	}
	delete(s.collections, name)
	return nil
}

func (s *MemoryStore) NextSequence(name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites {
		return 0, fmt.Errorf("%w: sequence %s", ErrUnavailable, name)
	}
	s.sequences[name]++
	return s.sequences[name], nil
}
