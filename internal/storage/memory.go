package storage

import (
	"context"
	"sync"
	"time"
)

var _ DedupStore = (*MemoryDedupStore)(nil)

// MemoryDedupStore backs tests and single-process deployments without
// Redis. Entries expire lazily on access.
type MemoryDedupStore struct {
	mu   sync.Mutex
	seen map[string]time.Time
	ttl  time.Duration
	now  func() time.Time
}

func NewMemoryDedupStore(ttl time.Duration) *MemoryDedupStore {
	if ttl <= 0 {
		ttl = DefaultDedupTTL
	}
	return &MemoryDedupStore{
		seen: make(map[string]time.Time),
		ttl:  ttl,
		now:  time.Now,
	}
}

func (m *MemoryDedupStore) Seen(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.seen[id]
	return ok && m.now().Before(expiry), nil
}

func (m *MemoryDedupStore) MarkSeen(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, expiry := range m.seen {
		if !now.Before(expiry) {
			delete(m.seen, key)
		}
	}

	m.seen[id] = now.Add(m.ttl)
	return nil
}

func (m *MemoryDedupStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = make(map[string]time.Time)
	return nil
}
