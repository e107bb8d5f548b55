package ports

import (
	"context"
	"time"

	"github.com/felixbraun/storeradar/internal/core/domain"
)

// QueryClassifier assigns one StoreType to free-text input.
type QueryClassifier interface {
	Classify(ctx context.Context, text string) (domain.StoreType, error)
}

// PlaceSearcher runs the two complementary search strategies against the
// places provider. Both are capped at 20 results by the provider.
type PlaceSearcher interface {
	SearchByCategory(ctx context.Context, lat, lon float64, category domain.StoreType, radiusMeters int) ([]domain.Candidate, error)
	SearchByText(ctx context.Context, lat, lon float64, query string, radiusMeters int) ([]domain.Candidate, error)
}

// DetailFetcher loads the secondary detail record for one candidate.
type DetailFetcher interface {
	Details(ctx context.Context, placeID string) (domain.Details, error)
}

// ResultCache stores serialized answers under flat string keys.
// Get returns (nil, nil) on a miss.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// PipelineObserver receives pipeline execution events for monitoring.
type PipelineObserver interface {
	CacheLookup(hit bool)
	UpstreamCall(operation string, err error)
	CandidateDropped(stage string)
	PipelineCompleted(resultCount int, duration time.Duration)
}
