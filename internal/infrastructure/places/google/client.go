package google

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/felixbraun/storeradar/internal/core/domain"
	"github.com/felixbraun/storeradar/internal/infrastructure/resilience"
)

const (
	// Field mask requested from the search endpoints; everything else the
	// provider could return is dead weight on the wire.
	searchFieldMask = "places.id,places.displayName,places.location,places.types,places.formattedAddress,places.rating,places.userRatingCount,places.priceLevel"

	detailFields     = "opening_hours,reviews,rating,user_ratings_total,url"
	maxSearchResults = 20
)

// Operation names the client registers with the resilience executor.
const (
	OpSearchNearby = "search_nearby"
	OpSearchText   = "search_text"
	OpPlaceDetails = "place_details"
)

// Client talks to the places provider: the two v1 search endpoints and the
// legacy detail endpoint. All calls run through the resilience executor.
type Client struct {
	searchBaseURL string
	detailsURL    string
	apiKey        string
	language      string
	httpClient    *http.Client
	executor      *resilience.Executor
}

func New(searchBaseURL, detailsURL, apiKey, language string, executor *resilience.Executor) *Client {
	if executor == nil {
		executor = resilience.NewExecutor(resilience.DefaultConfig())
	}
	return &Client{
		searchBaseURL: strings.TrimRight(searchBaseURL, "/"),
		detailsURL:    strings.TrimRight(detailsURL, "/"),
		apiKey:        apiKey,
		language:      language,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		executor:      executor,
	}
}

// SearchByCategory runs the strict-category search: only places carrying
// the exact type tag, ranked by the provider's own distance ordering.
func (c *Client) SearchByCategory(ctx context.Context, lat, lon float64, category domain.StoreType, radiusMeters int) ([]domain.Candidate, error) {
	reqBody := searchNearbyRequest{
		IncludedTypes: []string{string(category)},
		LocationRestriction: circleArea{
			Circle: circle{
				Center: latLng{Latitude: lat, Longitude: lon},
				Radius: float64(radiusMeters),
			},
		},
		RankPreference: "DISTANCE",
		MaxResultCount: maxSearchResults,
	}

	var response searchResponse
	err := c.executor.Execute(ctx, OpSearchNearby, func(ctx context.Context) error {
		return c.postJSON(ctx, c.searchBaseURL+"/places:searchNearby", reqBody, &response, OpSearchNearby)
	}, classifyPlacesError)
	if err != nil {
		return nil, wrapPlacesError(OpSearchNearby, err)
	}
	return toCandidates(response.Places), nil
}

// SearchByText runs the fuzzy free-text search, which surfaces places that
// are missing a strict type tag.
func (c *Client) SearchByText(ctx context.Context, lat, lon float64, query string, radiusMeters int) ([]domain.Candidate, error) {
	reqBody := searchTextRequest{
		TextQuery: query,
		LocationBias: circleArea{
			Circle: circle{
				Center: latLng{Latitude: lat, Longitude: lon},
				Radius: float64(radiusMeters),
			},
		},
		MaxResultCount: maxSearchResults,
	}

	var response searchResponse
	err := c.executor.Execute(ctx, OpSearchText, func(ctx context.Context) error {
		return c.postJSON(ctx, c.searchBaseURL+"/places:searchText", reqBody, &response, OpSearchText)
	}, classifyPlacesError)
	if err != nil {
		return nil, wrapPlacesError(OpSearchText, err)
	}
	return toCandidates(response.Places), nil
}

// Details fetches the secondary detail record (opening hours, reviews,
// canonical maps URL) for one place id.
func (c *Client) Details(ctx context.Context, placeID string) (domain.Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	params.Set("key", c.apiKey)
	params.Set("language", c.language)

	var response detailsResponse
	err := c.executor.Execute(ctx, OpPlaceDetails, func(ctx context.Context) error {
		return c.getJSON(ctx, c.detailsURL+"?"+params.Encode(), &response, OpPlaceDetails)
	}, classifyPlacesError)
	if err != nil {
		return domain.Details{}, wrapPlacesError(OpPlaceDetails, err)
	}
	return response.Result.toDetails(), nil
}
