package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/kykylib/shoebot/internal/models"
)

// InMemoryStore is a simple in-memory catalog store. It preserves insertion
// order so FindOne is stable across identical queries.
type InMemoryStore struct {
	mu    sync.RWMutex
	items []models.CatalogItem
	seen  map[itemKey]struct{}
}

type itemKey struct {
	brand string
	model string
	size  int
}

// NewInMemoryStore creates an empty in-memory catalog store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{seen: make(map[itemKey]struct{})}
}

func (s *InMemoryStore) AddItem(item models.CatalogItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey{brand: item.Brand, model: item.Model, size: item.Size}
	if _, dup := s.seen[key]; dup {
		return nil
	}
	s.seen[key] = struct{}{}
	s.items = append(s.items, item)
	return nil
}

func (s *InMemoryStore) ListDistinctSizes(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := make(map[int]struct{})
	for _, item := range s.items {
		set[item.Size] = struct{}{}
	}
	sizes := make([]int, 0, len(set))
	for size := range set {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes, nil
}

func (s *InMemoryStore) FindOne(ctx context.Context, size int, style models.Style, shoeType models.ShoeType) (*models.CatalogItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.Size == size && item.Style == style && item.Type == shoeType {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (s *InMemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items), nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryStore) Close() error {
	return nil
}
