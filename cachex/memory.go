package cachex

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const memoryCleanupInterval = 5 * time.Minute

// MemoryStore keeps entries in process memory
type MemoryStore struct {
	cache *gocache.Cache
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-process store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: gocache.New(gocache.NoExpiration, memoryCleanupInterval)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (Entry, bool, error) {
	v, found := s.cache.Get(key)
	if !found {
		return Entry{}, false, nil
	}
	entry, ok := v.(Entry)
	if !ok {
		s.cache.Delete(key)
		return Entry{}, false, nil
	}
	return entry, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, entry Entry, ttl time.Duration) error {
	s.cache.Set(key, entry, ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

// Len returns the number of stored entries, expired ones included
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}
