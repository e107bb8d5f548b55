package domain

import "encoding/json"

// GeoPoint is a WGS84 coordinate pair in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Candidate is a raw place record returned by one of the two search
// strategies, before merging and filtering. Location is nil for the odd
// malformed provider record.
type Candidate struct {
	ID               string
	DisplayName      string
	Location         *GeoPoint
	Types            []string
	FormattedAddress string
	Rating           float64
	RatingCount      int
	PriceLevel       string
}

// Review is a single user review carried by a detail record.
type Review struct {
	Rating float64
	Text   string
}

// Details is the secondary-lookup record for one candidate. The zero value
// means the lookup failed or returned nothing.
type Details struct {
	OpeningHours json.RawMessage
	Reviews      []Review
	Rating       float64
	RatingCount  int
	MapsURL      string
}

// PlaceTags carries auxiliary display attributes of a result entry.
type PlaceTags struct {
	Vicinity string `json:"vicinity"`
}

// Place is one entry of the final ranked answer. Field names match the
// wire format consumed by the browser extension.
type Place struct {
	Name         string          `json:"name"`
	Type         StoreType       `json:"type"`
	DisplayType  string          `json:"display_type"`
	Lat          float64         `json:"lat"`
	Lon          float64         `json:"lon"`
	Tags         PlaceTags       `json:"tags"`
	Rating       float64         `json:"rating"`
	RatingCount  int             `json:"user_ratings_total"`
	PriceLevel   string          `json:"price_level"`
	TopReview    string          `json:"top_review"`
	OpeningHours json.RawMessage `json:"opening_hours"`
	Distance     string          `json:"distance"`
	DistanceRaw  float64         `json:"distance_raw"`
	MapsURL      string          `json:"google_maps_url"`
}
