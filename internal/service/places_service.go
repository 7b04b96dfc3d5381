package service

import (
	"sort"

	"places-api/internal/geo"
	"places-api/internal/models"
)

// Fixed radius for reconciling a neighborhood to its nearest postal record.
// Internal threshold, unrelated to the caller's query radius.
const nearestMatchRadiusKm = 5.0

// NeighborhoodRepository interface for dependency injection
type NeighborhoodRepository interface {
	All() []models.Neighborhood
	Len() int
}

// PlacesService merges the neighborhood gazetteer and the postal directory
// into proximity views.
type PlacesService struct {
	neighborhoods NeighborhoodRepository
	postal        PostalRepository
}

// NewPlacesService creates a new places service
func NewPlacesService(neighborhoods NeighborhoodRepository, postal PostalRepository) *PlacesService {
	return &PlacesService{neighborhoods: neighborhoods, postal: postal}
}

// NearbyNeighborhoods returns every neighborhood within radiusKm of the
// query point, sorted ascending by distance (dataset order on ties), each
// annotated with its derived Wikipedia link.
func (s *PlacesService) NearbyNeighborhoods(lat, lng, radiusKm float64) []models.NeighborhoodResult {
	out := []models.NeighborhoodResult{}
	for _, nb := range s.neighborhoods.All() {
		d := geo.Distance(lat, lng, nb.Latitude, nb.Longitude)
		if d > radiusKm {
			continue
		}
		out = append(out, models.NeighborhoodResult{
			Neighborhood:  nb,
			DistanceKm:    d,
			WikipediaLink: WikipediaLink(nb.PlaceName),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	for i := range out {
		out[i].DistanceKm = geo.Round2(out[i].DistanceKm)
	}
	return out
}

// NearbyPlaces produces the merged neighborhood+postal view around a query
// point. Each in-range neighborhood is reconciled to a postal record: an
// exact pincode match first, otherwise the nearest office within 5 km of
// the neighborhood's own coordinates. In-range offices whose pincode was
// not attached to any neighborhood follow as standalone pincode entries.
// The whole stream is sorted ascending by distance to the query point,
// ties keeping their emission order.
func (s *PlacesService) NearbyPlaces(lat, lng, radiusKm float64) []models.NearbyPlace {
	usedPincodes := make(map[string]bool)
	out := []models.NearbyPlace{}

	for _, nb := range s.neighborhoods.All() {
		d := geo.Distance(lat, lng, nb.Latitude, nb.Longitude)
		if d > radiusKm {
			continue
		}

		var info *models.PincodeInfo
		if nb.Pincode != "" {
			if matches := s.postal.ByPincode(nb.Pincode); len(matches) > 0 {
				info = &models.PincodeInfo{MatchType: models.MatchExact, Record: matches[0]}
			}
		}
		if info == nil {
			if nearest, ok := s.postal.Nearest(nb.Latitude, nb.Longitude, nearestMatchRadiusKm); ok {
				info = &models.PincodeInfo{MatchType: models.MatchNearest, Record: nearest.PostalRecord}
			}
		}
		if info != nil {
			usedPincodes[info.Record.Pincode] = true
		}

		out = append(out, models.NearbyPlace{
			Kind:          models.PlaceKindNeighborhood,
			Name:          nb.PlaceName,
			PlaceType:     optString(nb.PlaceType),
			State:         optString(nb.State),
			District:      optString(nb.District),
			Region:        optString(nb.Region),
			Pincode:       optString(nb.Pincode),
			ImageURLs:     nb.ImageURLs,
			Latitude:      nb.Latitude,
			Longitude:     nb.Longitude,
			DistanceKm:    d,
			WikipediaLink: optString(WikipediaLink(nb.PlaceName)),
			PincodeInfo:   info,
		})
	}

	for _, pr := range s.postal.Nearby(lat, lng, radiusKm) {
		if usedPincodes[pr.Pincode] {
			continue
		}
		out = append(out, models.NearbyPlace{
			Kind:       models.PlaceKindPincode,
			Name:       pr.OfficeName,
			State:      optString(pr.StateName),
			District:   optString(pr.District),
			Region:     optString(pr.Region),
			Pincode:    optString(pr.Pincode),
			OfficeName: optString(pr.OfficeName),
			Latitude:   pr.Latitude,
			Longitude:  pr.Longitude,
			DistanceKm: pr.DistanceKm,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	for i := range out {
		out[i].DistanceKm = geo.Round2(out[i].DistanceKm)
	}
	return out
}

// NeighborhoodCount reports the gazetteer size.
func (s *PlacesService) NeighborhoodCount() int {
	return s.neighborhoods.Len()
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
