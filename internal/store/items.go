package store

import (
	"fmt"
	"math/rand"
	"sync"

	"places-api/internal/models"
)

// ItemStore owns the in-memory item collection for the process lifetime.
// Reads hand out copies; updates and deletes take the write lock, so a
// mutation never tears a concurrent read. Last write wins between
// concurrent mutations of the same identifier.
type ItemStore struct {
	mu    sync.RWMutex
	items []models.Item
	index map[string]int
}

// NewItemStore builds a store over the given items. Duplicate category ids
// keep the last occurrence in the index; the slice keeps dataset order.
func NewItemStore(items []models.Item) *ItemStore {
	s := &ItemStore{items: items}
	s.reindex()
	return s
}

func (s *ItemStore) reindex() {
	s.index = make(map[string]int, len(s.items))
	for i, it := range s.items {
		s.index[it.CategoryID] = i
	}
}

// All returns a copy of the collection in dataset order.
func (s *ItemStore) All() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

// Len reports the collection size.
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the item with the given category id.
func (s *ItemStore) Get(id string) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return models.Item{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	return s.items[i].Clone(), nil
}

// Update shallow-merges patch into the stored item and returns the result.
func (s *ItemStore) Update(id string, patch map[string]any) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return models.Item{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	s.items[i].Merge(patch)
	if s.items[i].CategoryID != id {
		// The patch renamed the identifier.
		s.reindex()
	}
	return s.items[i].Clone(), nil
}

// Delete removes the item with the given category id.
func (s *ItemStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.reindex()
	return nil
}

// Random returns a uniformly chosen item, or ErrNotFound when empty.
func (s *ItemStore) Random() (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return models.Item{}, fmt.Errorf("random item: %w", ErrNotFound)
	}
	return s.items[rand.Intn(len(s.items))].Clone(), nil
}
