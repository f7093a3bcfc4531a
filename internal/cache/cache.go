package cache

import (
	"strings"
	"sync"
	"time"
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
	ttl        time.Duration
}

func (e entry[V]) expired(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.insertedAt) > e.ttl
}

// Store is a string-keyed cache with per-entry TTL and insertion-order
// eviction. Expired entries are dropped lazily, on the next Get or Set
// that touches them. A miss is a bool, never an error.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	order   []string // keys oldest-inserted first
	cap     int
	now     func() time.Time
}

func New[V any](capacity int) *Store[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Store[V]{
		entries: make(map[string]entry[V]),
		cap:     capacity,
		now:     time.Now,
	}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	e, ok := s.entries[key]
	if !ok {
		return zero, false
	}
	if e.expired(s.now()) {
		s.delete(key)
		return zero, false
	}
	return e.value, true
}

// Set overwrites unconditionally. Overwriting refreshes the entry's
// position in the eviction order.
func (s *Store[V]) Set(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[key]; ok {
		s.removeFromOrder(key)
	}
	s.entries[key] = entry[V]{value: value, insertedAt: s.now(), ttl: ttl}
	s.order = append(s.order, key)

	for len(s.entries) > s.cap {
		s.delete(s.order[0])
	}
}

func (s *Store[V]) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delete(key)
}

func (s *Store[V]) InvalidateByPrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			s.delete(key)
		}
	}
}

func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// delete assumes the lock is held.
func (s *Store[V]) delete(key string) {
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.removeFromOrder(key)
}

func (s *Store[V]) removeFromOrder(key string) {
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
