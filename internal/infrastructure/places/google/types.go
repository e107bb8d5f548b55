package google

import (
	"encoding/json"

	"github.com/felixbraun/storeradar/internal/core/domain"
)

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type circleArea struct {
	Circle circle `json:"circle"`
}

type searchNearbyRequest struct {
	IncludedTypes       []string   `json:"includedTypes"`
	LocationRestriction circleArea `json:"locationRestriction"`
	RankPreference      string     `json:"rankPreference"`
	MaxResultCount      int        `json:"maxResultCount"`
}

type searchTextRequest struct {
	TextQuery      string     `json:"textQuery"`
	LocationBias   circleArea `json:"locationBias"`
	MaxResultCount int        `json:"maxResultCount"`
}

type searchResponse struct {
	Places []place `json:"places"`
}

type localizedText struct {
	Text string `json:"text"`
}

type place struct {
	ID               string        `json:"id"`
	DisplayName      localizedText `json:"displayName"`
	Location         *latLng       `json:"location"`
	Types            []string      `json:"types"`
	FormattedAddress string        `json:"formattedAddress"`
	Rating           float64       `json:"rating"`
	UserRatingCount  int           `json:"userRatingCount"`
	PriceLevel       string        `json:"priceLevel"`
}

func (p place) toCandidate() domain.Candidate {
	c := domain.Candidate{
		ID:               p.ID,
		DisplayName:      p.DisplayName.Text,
		Types:            p.Types,
		FormattedAddress: p.FormattedAddress,
		Rating:           p.Rating,
		RatingCount:      p.UserRatingCount,
		PriceLevel:       p.PriceLevel,
	}
	if p.Location != nil {
		c.Location = &domain.GeoPoint{
			Latitude:  p.Location.Latitude,
			Longitude: p.Location.Longitude,
		}
	}
	return c
}

func toCandidates(places []place) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(places))
	for _, p := range places {
		out = append(out, p.toCandidate())
	}
	return out
}

type detailsResponse struct {
	Result detailsResult `json:"result"`
}

type detailsResult struct {
	OpeningHours     json.RawMessage `json:"opening_hours"`
	Reviews          []detailsReview `json:"reviews"`
	Rating           float64         `json:"rating"`
	UserRatingsTotal int             `json:"user_ratings_total"`
	URL              string          `json:"url"`
}

type detailsReview struct {
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

func (r detailsResult) toDetails() domain.Details {
	reviews := make([]domain.Review, 0, len(r.Reviews))
	for _, rev := range r.Reviews {
		reviews = append(reviews, domain.Review{Rating: rev.Rating, Text: rev.Text})
	}
	return domain.Details{
		OpeningHours: r.OpeningHours,
		Reviews:      reviews,
		Rating:       r.Rating,
		RatingCount:  r.UserRatingsTotal,
		MapsURL:      r.URL,
	}
}
