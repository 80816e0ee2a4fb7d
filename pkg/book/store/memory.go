package store

import (
	"context"
	"sync"

	"github.com/gmarchetti/rolodex/pkg/book"
)

// MemoryStore keeps items in process memory. Useful for tests and for
// running converters without touching a datafile.
type MemoryStore struct {
	mu    sync.Mutex
	items []*book.Item
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns deep copies of the stored items.
func (s *MemoryStore) Load(ctx context.Context) ([]*book.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]*book.Item, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it.Clone())
	}
	return items, nil
}

// Save replaces the stored items with deep copies of the snapshot.
func (s *MemoryStore) Save(ctx context.Context, items []*book.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]*book.Item, 0, len(items))
	for _, it := range items {
		s.items = append(s.items, it.Clone())
	}
	return nil
}

// Close is a no-op for the memory backend.
func (s *MemoryStore) Close() error {
	return nil
}
