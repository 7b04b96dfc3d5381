package store

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"places-api/internal/geo"
	"places-api/internal/models"
	"places-api/internal/text"
)

// Kilometers per degree of latitude (and of longitude at the equator).
const kmPerDegree = math.Pi * 6371.0 / 180.0

// PostalStore holds the read-only postal directory. Records are indexed in
// a 2-D R-tree keyed on (longitude, latitude) so radius queries only
// haversine-check candidates inside a bounding box instead of scanning the
// whole directory.
type PostalStore struct {
	records   []models.PostalRecord
	byPincode map[string][]int
	tree      *rtreego.Rtree
}

type postalEntry struct {
	rect rtreego.Rect
	pos  int
}

func (e *postalEntry) Bounds() rtreego.Rect { return e.rect }

// NewPostalStore builds the store and its spatial index over the given
// records, keeping dataset order.
func NewPostalStore(records []models.PostalRecord) *PostalStore {
	s := &PostalStore{
		records:   records,
		byPincode: make(map[string][]int),
		tree:      rtreego.NewTree(2, 25, 50),
	}
	for i, r := range records {
		s.byPincode[r.Pincode] = append(s.byPincode[r.Pincode], i)
		pt := rtreego.Point{r.Longitude, r.Latitude}
		s.tree.Insert(&postalEntry{rect: pt.ToRect(1e-6), pos: i})
	}
	return s
}

// All returns the directory in dataset order.
func (s *PostalStore) All() []models.PostalRecord {
	return s.records
}

// Len reports the directory size.
func (s *PostalStore) Len() int {
	return len(s.records)
}

// ByPincode returns every office with the given postal code, in dataset
// order. The slice is empty when the code is unknown.
func (s *PostalStore) ByPincode(code string) []models.PostalRecord {
	positions := s.byPincode[code]
	out := make([]models.PostalRecord, 0, len(positions))
	for _, i := range positions {
		out = append(out, s.records[i])
	}
	return out
}

// Nearby returns every record within radiusKm of the query point, sorted
// ascending by distance with dataset order breaking ties. Distances are
// unrounded.
func (s *PostalStore) Nearby(lat, lng, radiusKm float64) []models.PostalResult {
	if radiusKm <= 0 {
		return nil
	}

	dLat := radiusKm / kmPerDegree
	dLng := 180.0
	if c := math.Cos(lat * math.Pi / 180); c > 1e-6 {
		dLng = math.Min(180, radiusKm/(kmPerDegree*c))
	}
	bbox, err := rtreego.NewRect(rtreego.Point{lng - dLng, lat - dLat}, []float64{2 * dLng, 2 * dLat})
	if err != nil {
		return nil
	}

	type candidate struct {
		pos  int
		dist float64
	}
	var hits []candidate
	for _, obj := range s.tree.SearchIntersect(bbox) {
		e := obj.(*postalEntry)
		r := s.records[e.pos]
		d := geo.Distance(lat, lng, r.Latitude, r.Longitude)
		if d <= radiusKm {
			hits = append(hits, candidate{pos: e.pos, dist: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].pos < hits[j].pos
	})

	out := make([]models.PostalResult, 0, len(hits))
	for _, h := range hits {
		out = append(out, models.PostalResult{PostalRecord: s.records[h.pos], DistanceKm: h.dist})
	}
	return out
}

// Nearest returns the single closest record within radiusKm, or false when
// none exists.
func (s *PostalStore) Nearest(lat, lng, radiusKm float64) (models.PostalResult, bool) {
	hits := s.Nearby(lat, lng, radiusKm)
	if len(hits) == 0 {
		return models.PostalResult{}, false
	}
	return hits[0], true
}

// States returns the sorted distinct state names in the directory.
func (s *PostalStore) States() []string {
	return s.distinct(func(r models.PostalRecord) string { return r.StateName }, "")
}

// Districts returns the sorted distinct district names of every state whose
// name contains the query as a substring (normalized comparison).
func (s *PostalStore) Districts(stateQuery string) []string {
	return s.distinct(func(r models.PostalRecord) string { return r.District }, stateQuery)
}

func (s *PostalStore) distinct(field func(models.PostalRecord) string, stateQuery string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range s.records {
		if stateQuery != "" && !text.ContainsNormalized(r.StateName, stateQuery) {
			continue
		}
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
