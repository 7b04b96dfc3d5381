package models

// PostalRecord is one post-office entry from the postal directory. Several
// offices can share a pincode.
type PostalRecord struct {
	Pincode    string  `json:"pincode"`
	OfficeName string  `json:"officeName"`
	District   string  `json:"district"`
	StateName  string  `json:"stateName"`
	Division   string  `json:"division"`
	Region     string  `json:"region"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// PostalResult is a postal record annotated with its distance to a query
// point.
type PostalResult struct {
	PostalRecord
	DistanceKm float64 `json:"distanceKm"`
}
