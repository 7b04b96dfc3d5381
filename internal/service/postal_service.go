package service

import (
	"fmt"
	"strings"

	"places-api/internal/geo"
	"places-api/internal/models"
	"places-api/internal/store"
)

// PostalFilter carries the optional substring filters of a directory
// search. Every field is optional; an empty filter passes everything.
type PostalFilter struct {
	Pincode  string
	State    string
	District string
	Office   string
}

// PostalRepository interface for dependency injection
type PostalRepository interface {
	All() []models.PostalRecord
	ByPincode(code string) []models.PostalRecord
	Nearby(lat, lng, radiusKm float64) []models.PostalResult
	Nearest(lat, lng, radiusKm float64) (models.PostalResult, bool)
	States() []string
	Districts(state string) []string
	Len() int
}

// PostalService contains the core business logic for postal directory
// operations
type PostalService struct {
	repo PostalRepository
}

// NewPostalService creates a new postal service
func NewPostalService(repo PostalRepository) *PostalService {
	return &PostalService{repo: repo}
}

// Lookup returns every office with the given postal code.
func (s *PostalService) Lookup(code string) ([]models.PostalRecord, error) {
	records := s.repo.ByPincode(code)
	if len(records) == 0 {
		return nil, fmt.Errorf("service: pincode %q: %w", code, store.ErrNotFound)
	}
	return records, nil
}

// Search applies the combinable substring filters to the directory. The
// pincode filter is a plain substring match; the name filters are
// case-insensitive.
func (s *PostalService) Search(f PostalFilter) []models.PostalRecord {
	out := []models.PostalRecord{}
	for _, r := range s.repo.All() {
		if f.Pincode != "" && !strings.Contains(r.Pincode, f.Pincode) {
			continue
		}
		if !containsFold(r.StateName, f.State) ||
			!containsFold(r.District, f.District) ||
			!containsFold(r.OfficeName, f.Office) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Nearby returns every office within radiusKm of the query point, sorted
// ascending by distance, distances rounded for presentation.
func (s *PostalService) Nearby(lat, lng, radiusKm float64) []models.PostalResult {
	results := s.repo.Nearby(lat, lng, radiusKm)
	for i := range results {
		results[i].DistanceKm = geo.Round2(results[i].DistanceKm)
	}
	return results
}

// States returns the sorted distinct state names in the directory.
func (s *PostalService) States() []string {
	return s.repo.States()
}

// Districts returns the sorted distinct districts of the states whose name
// contains the query.
func (s *PostalService) Districts(state string) ([]string, error) {
	districts := s.repo.Districts(state)
	if len(districts) == 0 {
		return nil, fmt.Errorf("service: state %q: %w", state, store.ErrNotFound)
	}
	return districts, nil
}

// Count reports the directory size.
func (s *PostalService) Count() int {
	return s.repo.Len()
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
