package mdctx

import (
	"maps"
	"sync"
)

// Store is the capability surface this package needs from a diagnostic
// context implementation. Values are optional strings: a nil pointer is
// the stored null marker, distinct from an absent key.
//
// A Store is conventionally scoped to one logical goroutine of execution.
// Implementations are not required to be safe for concurrent use; wrap a
// shared store with Synchronized.
type Store interface {
	// Get returns the value for key and whether the key is present.
	Get(key string) (*string, bool)

	// Put sets the value for key. A nil value stores the null marker.
	Put(key string, value *string)

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string)

	// Snapshot returns a copy of all current entries. An uninitialized
	// store initializes itself to empty as a side effect and returns a
	// non-nil map.
	Snapshot() map[string]*string
}

// MapStore is an in-memory Store backed by a plain map. The zero value is
// ready to use. It performs no locking.
type MapStore struct {
	entries map[string]*string
}

// NewMapStore returns an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{}
}

// Get returns the value for key and whether the key is present.
func (s *MapStore) Get(key string) (*string, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Put sets the value for key. A nil value stores the null marker.
func (s *MapStore) Put(key string, value *string) {
	if s.entries == nil {
		s.entries = make(map[string]*string)
	}

	s.entries[key] = value
}

// Remove deletes key.
func (s *MapStore) Remove(key string) {
	delete(s.entries, key)
}

// Snapshot returns a copy of all current entries, initializing the backing
// map first if the store has never been written to.
func (s *MapStore) Snapshot() map[string]*string {
	if s.entries == nil {
		s.entries = make(map[string]*string)
	}

	out := make(map[string]*string, len(s.entries))
	maps.Copy(out, s.entries)

	return out
}

// Synchronized wraps store with a mutex so the store itself can be shared
// across goroutines. Builders and Transactions stay single-owner; only the
// individual store accesses are serialized.
func Synchronized(store Store) Store {
	return &lockedStore{store: store}
}

type lockedStore struct {
	mu    sync.Mutex
	store Store
}

func (s *lockedStore) Get(key string) (*string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Get(key)
}

func (s *lockedStore) Put(key string, value *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Put(key, value)
}

func (s *lockedStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Remove(key)
}

func (s *lockedStore) Snapshot() map[string]*string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Snapshot()
}
