package store

import "sync"

// StatusStore holds the single current status value.
//
// StatusStore is safe for concurrent use. The stored value is an opaque
// string; recognition of the enumerated status values is the caller's
// responsibility. The store itself performs no validation: any value is
// always a legal successor to any other.
type StatusStore struct {
	mu      sync.RWMutex
	current string
}

// New creates a [StatusStore] holding the given initial value.
func New(initial string) *StatusStore {
	return &StatusStore{current: initial}
}

// Current returns the current status value. It has no side effects.
func (s *StatusStore) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set overwrites the current status value unconditionally.
func (s *StatusStore) Set(v string) {
	s.mu.Lock()
	s.current = v
	s.mu.Unlock()
}
