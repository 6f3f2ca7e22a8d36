package cache

import (
	"sync"
	"time"
)

// TTLStore is an in-process key-value store with per-entry expiry. Handlers
// receive an instance explicitly instead of reaching for process-global maps,
// which keeps tests and horizontal scaling straightforward.
type TTLStore struct {
	mu      sync.Mutex
	entries map[string]entry
	nowFunc func() time.Time
}

type entry struct {
	value     string
	count     int64
	expiresAt time.Time
}

// NewTTLStore returns an empty store using the wall clock.
func NewTTLStore() *TTLStore {
	return &TTLStore{
		entries: make(map[string]entry),
		nowFunc: time.Now,
	}
}

// Set stores a value under key for the given TTL, replacing any previous entry.
func (s *TTLStore) Set(key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, expiresAt: s.nowFunc().Add(ttl)}
}

// Get returns the live value for key, if any.
func (s *TTLStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		return "", false
	}
	return e.value, true
}

// Take returns the value for key and removes it in the same step. Used for
// one-shot tickets that must not be redeemable twice.
func (s *TTLStore) Take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		return "", false
	}
	delete(s.entries, key)
	return e.value, true
}

// Increment bumps the counter stored under key and returns the new count.
// The first hit opens a fixed window of the given TTL; later hits within the
// window do not extend it.
func (s *TTLStore) Increment(key string, ttl time.Duration) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.live(key)
	if !ok {
		e = entry{expiresAt: s.nowFunc().Add(ttl)}
	}
	e.count++
	s.entries[key] = e
	return e.count
}

// Delete removes key if present.
func (s *TTLStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// live returns the entry for key, pruning it first if it has expired.
// Callers must hold the lock.
func (s *TTLStore) live(key string) (entry, bool) {
	e, ok := s.entries[key]
	if !ok {
		return entry{}, false
	}
	if !s.nowFunc().Before(e.expiresAt) {
		delete(s.entries, key)
		return entry{}, false
	}
	return e, true
}
