package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/felixbraun/storeradar/internal/core/domain"
	"github.com/felixbraun/storeradar/internal/core/ports"
)

const (
	stageDenylist = "denylist"
	stageQuality  = "quality"
	stageGeometry = "geometry"
)

// FindNearbyConfig tunes the pipeline. Zero values fall back to the
// defaults below.
type FindNearbyConfig struct {
	RadiusMeters   int
	CacheNamespace string
	CacheTTL       time.Duration
}

func (c FindNearbyConfig) normalize() FindNearbyConfig {
	out := c
	if out.RadiusMeters <= 0 {
		out.RadiusMeters = 1500
	}
	if out.CacheNamespace == "" {
		out.CacheNamespace = "google_places_hybrid_v3"
	}
	if out.CacheTTL <= 0 {
		out.CacheTTL = 48 * time.Hour
	}
	return out
}

// FindNearbyUseCase answers "nearby places of a classified type" queries.
// It classifies the free-text query, runs the strict-category and
// fuzzy-text searches, merges and filters the candidates, enriches the
// survivors with detail lookups and returns them ranked by distance. The
// assembled answer is cached per (coordinate, type, radius).
//
// Every collaborator failure is soft: the pipeline substitutes an empty
// value and continues, it never surfaces an upstream outage to the caller.
type FindNearbyUseCase struct {
	classifier ports.QueryClassifier
	searcher   ports.PlaceSearcher
	details    ports.DetailFetcher
	cache      ports.ResultCache
	denylist   domain.Denylist
	observer   ports.PipelineObserver
	cfg        FindNearbyConfig
}

func NewFindNearbyUseCase(
	classifier ports.QueryClassifier,
	searcher ports.PlaceSearcher,
	details ports.DetailFetcher,
	cache ports.ResultCache,
	denylist domain.Denylist,
	observer ports.PipelineObserver,
	cfg FindNearbyConfig,
) *FindNearbyUseCase {
	if observer == nil {
		observer = noopObserver{}
	}
	return &FindNearbyUseCase{
		classifier: classifier,
		searcher:   searcher,
		details:    details,
		cache:      cache,
		denylist:   denylist,
		observer:   observer,
		cfg:        cfg.normalize(),
	}
}

func (uc *FindNearbyUseCase) FindPlaces(ctx context.Context, query, latStr, lonStr string) ([]domain.Place, error) {
	start := time.Now()

	storeType := uc.classifyQuery(ctx, query)

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if errLat != nil || errLon != nil {
		slog.Warn("invalid_coordinates", "lat", latStr, "lon", lonStr)
		return []domain.Place{}, nil
	}

	key := uc.cacheKey(latStr, lonStr, storeType)
	if places, ok := uc.cachedAnswer(ctx, key); ok {
		uc.observer.CacheLookup(true)
		uc.observer.PipelineCompleted(len(places), time.Since(start))
		slog.Info("cache_hit", "key", key, "places", len(places))
		return places, nil
	}
	uc.observer.CacheLookup(false)
	slog.Info("cache_miss", "key", key)

	// The two strategies are independent, merge precedence is fixed by
	// designation rather than completion order.
	var strict, fuzzy []domain.Candidate
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		strict = uc.searchByCategory(ctx, lat, lon, storeType)
	}()
	go func() {
		defer wg.Done()
		fuzzy = uc.searchByText(ctx, lat, lon, storeType)
	}()
	wg.Wait()

	merged := mergeCandidates(strict, fuzzy)

	places := make([]domain.Place, 0, len(merged))
	for _, cand := range merged {
		place, ok := uc.assemblePlace(ctx, cand, storeType, lat, lon)
		if !ok {
			continue
		}
		places = append(places, place)
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].DistanceRaw < places[j].DistanceRaw
	})

	uc.storeAnswer(ctx, key, places)
	uc.observer.PipelineCompleted(len(places), time.Since(start))
	return places, nil
}

// cacheKey concatenates the raw inputs. Coordinates enter as given, two
// string spellings of the same point are distinct entries on purpose.
func (uc *FindNearbyUseCase) cacheKey(latStr, lonStr string, storeType domain.StoreType) string {
	return uc.cfg.CacheNamespace + ":" + latStr + ":" + lonStr + ":" + string(storeType) + ":" + strconv.Itoa(uc.cfg.RadiusMeters)
}

func (uc *FindNearbyUseCase) classifyQuery(ctx context.Context, query string) domain.StoreType {
	storeType, err := uc.classifier.Classify(ctx, query)
	uc.observer.UpstreamCall("classify", err)
	if err != nil {
		slog.Warn("classification_failed", "query", query, "error", err)
		return domain.DefaultStoreType
	}
	return storeType
}

func (uc *FindNearbyUseCase) searchByCategory(ctx context.Context, lat, lon float64, storeType domain.StoreType) []domain.Candidate {
	candidates, err := uc.searcher.SearchByCategory(ctx, lat, lon, storeType, uc.cfg.RadiusMeters)
	uc.observer.UpstreamCall("search_nearby", err)
	if err != nil {
		slog.Warn("category_search_failed", "type", storeType, "error", err)
		return nil
	}
	return candidates
}

func (uc *FindNearbyUseCase) searchByText(ctx context.Context, lat, lon float64, storeType domain.StoreType) []domain.Candidate {
	candidates, err := uc.searcher.SearchByText(ctx, lat, lon, storeType.SearchTerm(), uc.cfg.RadiusMeters)
	uc.observer.UpstreamCall("search_text", err)
	if err != nil {
		slog.Warn("text_search_failed", "type", storeType, "error", err)
		return nil
	}
	return candidates
}

func (uc *FindNearbyUseCase) fetchDetails(ctx context.Context, placeID string) domain.Details {
	details, err := uc.details.Details(ctx, placeID)
	uc.observer.UpstreamCall("place_details", err)
	if err != nil {
		slog.Warn("detail_lookup_failed", "place_id", placeID, "error", err)
		return domain.Details{}
	}
	return details
}

// assemblePlace runs one candidate through the filter chain and builds the
// result entry. The detail lookup happens after the denylist gate and
// before the quality gate, a failed lookup leaves the review count at zero
// so the candidate fails the quality gate instead of erroring.
func (uc *FindNearbyUseCase) assemblePlace(ctx context.Context, cand domain.Candidate, storeType domain.StoreType, lat, lon float64) (domain.Place, bool) {
	if uc.denylist.Blocked(cand.DisplayName) {
		uc.observer.CandidateDropped(stageDenylist)
		return domain.Place{}, false
	}

	details := uc.fetchDetails(ctx, cand.ID)

	if !passesQualityGate(details.RatingCount) {
		uc.observer.CandidateDropped(stageQuality)
		return domain.Place{}, false
	}

	if cand.Location == nil {
		uc.observer.CandidateDropped(stageGeometry)
		return domain.Place{}, false
	}
	distance, distanceRaw := domain.DistanceMetrics(lat, lon, cand.Location.Latitude, cand.Location.Longitude)
	if !withinRadiusMargin(distanceRaw, uc.cfg.RadiusMeters) {
		uc.observer.CandidateDropped(stageGeometry)
		return domain.Place{}, false
	}

	// Consumers expect opening_hours to always be an object.
	hours := details.OpeningHours
	if len(hours) == 0 {
		hours = json.RawMessage("{}")
	}

	return domain.Place{
		Name:         cand.DisplayName,
		Type:         storeType,
		DisplayType:  displayType(cand.Types, storeType),
		Lat:          cand.Location.Latitude,
		Lon:          cand.Location.Longitude,
		Tags:         domain.PlaceTags{Vicinity: cand.FormattedAddress},
		Rating:       cand.Rating,
		RatingCount:  cand.RatingCount,
		PriceLevel:   priceSymbol(cand.PriceLevel),
		TopReview:    topReview(details.Reviews),
		OpeningHours: hours,
		Distance:     distance,
		DistanceRaw:  distanceRaw,
		MapsURL:      details.MapsURL,
	}, true
}

func (uc *FindNearbyUseCase) cachedAnswer(ctx context.Context, key string) ([]domain.Place, bool) {
	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("cache_get_failed", "key", key, "error", err)
		return nil, false
	}
	if raw == nil {
		return nil, false
	}
	var places []domain.Place
	if err := json.Unmarshal(raw, &places); err != nil {
		slog.Warn("cache_decode_failed", "key", key, "error", err)
		return nil, false
	}
	return places, true
}

func (uc *FindNearbyUseCase) storeAnswer(ctx context.Context, key string, places []domain.Place) {
	raw, err := json.Marshal(places)
	if err != nil {
		slog.Warn("cache_encode_failed", "key", key, "error", err)
		return
	}
	if err := uc.cache.Set(ctx, key, raw, uc.cfg.CacheTTL); err != nil {
		slog.Warn("cache_set_failed", "key", key, "error", err)
	}
}

type noopObserver struct{}

func (noopObserver) CacheLookup(bool)                     {}
func (noopObserver) UpstreamCall(string, error)           {}
func (noopObserver) CandidateDropped(string)              {}
func (noopObserver) PipelineCompleted(int, time.Duration) {}
