package store

import "places-api/internal/models"

// NeighborhoodStore holds the read-only neighborhood gazetteer. No mutation
// endpoints exist for it, so reads share the backing slice.
type NeighborhoodStore struct {
	records []models.Neighborhood
}

// NewNeighborhoodStore builds a store over the given records, keeping
// dataset order.
func NewNeighborhoodStore(records []models.Neighborhood) *NeighborhoodStore {
	return &NeighborhoodStore{records: records}
}

// All returns the collection in dataset order.
func (s *NeighborhoodStore) All() []models.Neighborhood {
	return s.records
}

// Len reports the collection size.
func (s *NeighborhoodStore) Len() int {
	return len(s.records)
}
