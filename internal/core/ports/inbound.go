package ports

import (
	"context"

	"github.com/felixbraun/storeradar/internal/core/domain"
)

// PlaceFinder is the inbound contract for nearby-place queries. Malformed
// coordinates yield an empty list, not an error.
type PlaceFinder interface {
	FindPlaces(ctx context.Context, query, lat, lon string) ([]domain.Place, error)
}
