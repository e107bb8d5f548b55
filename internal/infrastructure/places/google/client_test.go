package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/felixbraun/storeradar/internal/core/domain"
	"github.com/felixbraun/storeradar/internal/infrastructure/resilience"
)

func noBreaker() *resilience.Executor {
	return resilience.NewExecutor(resilience.Config{BreakerEnabled: false})
}

func TestSearchByCategoryRequestShape(t *testing.T) {
	var captured searchNearbyRequest
	var fieldMask, apiKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/places:searchNearby" {
			http.NotFound(w, r)
			return
		}
		fieldMask = r.Header.Get("X-Goog-FieldMask")
		apiKey = r.Header.Get("X-Goog-Api-Key")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"places":[{"id":"p1","displayName":{"text":"Buchladen"},"location":{"latitude":48.15,"longitude":11.57},"types":["book_store"],"formattedAddress":"Somestr. 1","rating":4.5,"userRatingCount":120,"priceLevel":"PRICE_LEVEL_MODERATE"}]}`))
	}))
	defer server.Close()

	client := New(server.URL, server.URL+"/details", "test-key", "de", noBreaker())
	candidates, err := client.SearchByCategory(context.Background(), 48.1486, 11.5686, domain.StoreTypeBookStore, 1500)
	if err != nil {
		t.Fatalf("SearchByCategory() error = %v", err)
	}

	if apiKey != "test-key" {
		t.Fatalf("expected api key header, got %q", apiKey)
	}
	if !strings.Contains(fieldMask, "places.priceLevel") {
		t.Fatalf("unexpected field mask %q", fieldMask)
	}
	if captured.RankPreference != "DISTANCE" || captured.MaxResultCount != 20 {
		t.Fatalf("unexpected request %+v", captured)
	}
	if len(captured.IncludedTypes) != 1 || captured.IncludedTypes[0] != "book_store" {
		t.Fatalf("unexpected includedTypes %v", captured.IncludedTypes)
	}
	if captured.LocationRestriction.Circle.Radius != 1500 {
		t.Fatalf("unexpected radius %v", captured.LocationRestriction.Circle.Radius)
	}

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	c := candidates[0]
	if c.ID != "p1" || c.DisplayName != "Buchladen" || c.PriceLevel != "PRICE_LEVEL_MODERATE" {
		t.Fatalf("unexpected candidate %+v", c)
	}
	if c.Location == nil || c.Location.Latitude != 48.15 {
		t.Fatalf("unexpected location %+v", c.Location)
	}
}

func TestSearchByTextRequestShape(t *testing.T) {
	var captured searchTextRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/places:searchText" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"places":[{"id":"p2","displayName":{"text":"Ghost Store"}}]}`))
	}))
	defer server.Close()

	client := New(server.URL, server.URL+"/details", "test-key", "de", noBreaker())
	candidates, err := client.SearchByText(context.Background(), 48.1486, 11.5686, "wine bar", 1500)
	if err != nil {
		t.Fatalf("SearchByText() error = %v", err)
	}

	if captured.TextQuery != "wine bar" || captured.MaxResultCount != 20 {
		t.Fatalf("unexpected request %+v", captured)
	}
	if captured.LocationBias.Circle.Center.Latitude != 48.1486 {
		t.Fatalf("unexpected bias center %+v", captured.LocationBias.Circle.Center)
	}

	if len(candidates) != 1 || candidates[0].ID != "p2" {
		t.Fatalf("unexpected candidates %+v", candidates)
	}
	if candidates[0].Location != nil {
		t.Fatalf("missing provider location must map to nil, got %+v", candidates[0].Location)
	}
}

func TestDetailsRequestAndMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("place_id") != "p1" || q.Get("language") != "de" || q.Get("key") != "test-key" {
			t.Fatalf("unexpected query %v", q)
		}
		if !strings.Contains(q.Get("fields"), "user_ratings_total") {
			t.Fatalf("unexpected fields %q", q.Get("fields"))
		}
		_, _ = w.Write([]byte(`{"result":{"opening_hours":{"open_now":true},"reviews":[{"rating":5,"text":"sehr gut"}],"rating":4.4,"user_ratings_total":321,"url":"https://maps.example/p1"}}`))
	}))
	defer server.Close()

	client := New(server.URL, server.URL+"/details", "test-key", "de", noBreaker())
	details, err := client.Details(context.Background(), "p1")
	if err != nil {
		t.Fatalf("Details() error = %v", err)
	}
	if details.RatingCount != 321 || details.MapsURL != "https://maps.example/p1" {
		t.Fatalf("unexpected details %+v", details)
	}
	if len(details.Reviews) != 1 || details.Reviews[0].Text != "sehr gut" {
		t.Fatalf("unexpected reviews %+v", details.Reviews)
	}
	if !strings.Contains(string(details.OpeningHours), "open_now") {
		t.Fatalf("opening hours not preserved: %s", details.OpeningHours)
	}
}

func TestSearchIncludesHTTPBodyInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(server.URL, server.URL+"/details", "test-key", "de", noBreaker())
	_, err := client.SearchByCategory(context.Background(), 48.1486, 11.5686, domain.StoreTypeBookStore, 1500)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected response body in error, got %v", err)
	}
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("throttled request must carry the temporary kind, got %v", err)
	}
}

func TestErrorKindsByStatus(t *testing.T) {
	cases := []struct {
		name   string
		status int
		kind   error
	}{
		{"server fault", http.StatusInternalServerError, domain.ErrTemporary},
		{"bad gateway", http.StatusBadGateway, domain.ErrTemporary},
		{"rejected request", http.StatusBadRequest, domain.ErrInvalidInput},
		{"bad credentials", http.StatusForbidden, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tc.status)
			}))
			defer server.Close()

			client := New(server.URL, server.URL+"/details", "test-key", "de", noBreaker())

			_, err := client.SearchByCategory(context.Background(), 48.1486, 11.5686, domain.StoreTypeBookStore, 1500)
			if !domain.IsKind(err, tc.kind) {
				t.Fatalf("SearchByCategory kind mismatch for status %d: %v", tc.status, err)
			}
			_, err = client.Details(context.Background(), "p1")
			if !domain.IsKind(err, tc.kind) {
				t.Fatalf("Details kind mismatch for status %d: %v", tc.status, err)
			}
		})
	}
}
