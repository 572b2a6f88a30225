// Package otp holds in-flight registration codes in process memory.
// Codes are keyed by normalized email, live for a fixed TTL and do not
// survive a restart; an interrupted registration simply starts over.
package otp

import (
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// Store is a keyed cache of one-time codes with TTL eviction.
// Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	done    chan struct{}

	now func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		done:    make(chan struct{}),
		now:     time.Now,
	}

	go s.janitor()

	return s
}

// Set stores a code for the key, replacing any prior unconsumed code.
func (s *Store) Set(key, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		code:      code,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Verify reports whether a matching, unexpired code exists for the key.
// Missing, mismatched and expired all read the same from the outside.
// A successful verification does not consume the code; the caller
// deletes it once the dependent operation completed.
func (s *Store) Verify(key, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return false
	}
	if e.code != code {
		return false
	}
	if s.now().After(e.expiresAt) {
		return false
	}

	return true
}

// Delete removes the code for the key.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// Close stops the background sweeper.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.done:
			return
		}
	}
}

func (s *Store) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
		}
	}
}
