package models

// Neighborhood is one gazetteer entry. Constituency fields are resolved at
// ingestion from their differently-cased source keys; the "N/A" sentinel is
// normalized to an empty string there as well.
type Neighborhood struct {
	PlaceName               string   `json:"placeName"`
	PlaceType               string   `json:"placeType"`
	Country                 string   `json:"country"`
	State                   string   `json:"state"`
	Region                  string   `json:"region"`
	District                string   `json:"district"`
	Pincode                 string   `json:"pincode,omitempty"`
	LokSabhaConstituency    string   `json:"lokSabhaConstituency,omitempty"`
	VidhanSabhaConstituency string   `json:"vidhanSabhaConstituency,omitempty"`
	ImageURLs               []string `json:"imageUrls"`
	Latitude                float64  `json:"latitude"`
	Longitude               float64  `json:"longitude"`
}

// NeighborhoodResult is a neighborhood annotated for a proximity response.
type NeighborhoodResult struct {
	Neighborhood
	DistanceKm    float64 `json:"distanceKm"`
	WikipediaLink string  `json:"wikipediaLink,omitempty"`
}

// Kinds of entries in a merged nearby-places response.
const (
	PlaceKindNeighborhood = "neighborhood"
	PlaceKindPincode      = "pincode"
)

// How a neighborhood was reconciled to a postal record.
const (
	MatchExact   = "exact"
	MatchNearest = "nearest"
)

// PincodeInfo carries the postal record reconciled to a neighborhood and how
// the match was made.
type PincodeInfo struct {
	MatchType string       `json:"matchType"`
	Record    PostalRecord `json:"record"`
}

// NearbyPlace is one entry of the merged neighborhood+postal view. Every
// entry carries the same field set; fields that do not apply to the entry's
// kind are null.
type NearbyPlace struct {
	Kind          string       `json:"type"`
	Name          string       `json:"name"`
	PlaceType     *string      `json:"placeType"`
	State         *string      `json:"state"`
	District      *string      `json:"district"`
	Region        *string      `json:"region"`
	Pincode       *string      `json:"pincode"`
	OfficeName    *string      `json:"officeName"`
	ImageURLs     []string     `json:"imageUrls"`
	Latitude      float64      `json:"latitude"`
	Longitude     float64      `json:"longitude"`
	DistanceKm    float64      `json:"distanceKm"`
	WikipediaLink *string      `json:"wikipediaLink"`
	PincodeInfo   *PincodeInfo `json:"pincodeInfo"`
}
