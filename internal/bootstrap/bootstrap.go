package bootstrap

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/felixbraun/storeradar/internal/config"
	"github.com/felixbraun/storeradar/internal/core/domain"
	"github.com/felixbraun/storeradar/internal/core/ports"
	"github.com/felixbraun/storeradar/internal/core/usecase"
	"github.com/felixbraun/storeradar/internal/infrastructure/cache/redis"
	"github.com/felixbraun/storeradar/internal/infrastructure/llm/openai"
	"github.com/felixbraun/storeradar/internal/infrastructure/places/google"
	"github.com/felixbraun/storeradar/internal/infrastructure/resilience"
	"github.com/felixbraun/storeradar/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Metrics *metrics.ServerMetrics
	Finder  ports.PlaceFinder

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	cache, err := redis.New(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("init result cache: %w", err)
	}

	classifier := openai.NewClassifier(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)

	executorCfg := resilience.DefaultConfig()
	executorCfg.BreakerEnabled = cfg.BreakerEnabled
	executorCfg.RateLimit = rate.Limit(cfg.DetailRatePerSec)
	executorCfg.RateBurst = cfg.DetailRateBurst
	executorCfg.RateLimitOps = []string{google.OpPlaceDetails}
	executor := resilience.NewExecutor(executorCfg)

	places := google.New(cfg.PlacesSearchURL, cfg.PlacesDetailsURL, cfg.GoogleAPIKey, cfg.PlacesLanguage, executor)

	entries := domain.DefaultDenylistEntries()
	if cfg.DenylistPath != "" {
		entries, err = config.LoadDenylist(cfg.DenylistPath)
		if err != nil {
			return nil, fmt.Errorf("load denylist: %w", err)
		}
	}
	denylist := domain.NewDenylist(entries)

	serverMetrics := metrics.NewServerMetrics("storeradar")

	finder := usecase.NewFindNearbyUseCase(
		classifier,
		places,
		places,
		cache,
		denylist,
		serverMetrics,
		usecase.FindNearbyConfig{
			RadiusMeters:   cfg.SearchRadiusMeters,
			CacheNamespace: cfg.CacheNamespace,
			CacheTTL:       time.Duration(cfg.CacheTTLHours) * time.Hour,
		},
	)

	return &App{
		Config:  cfg,
		Metrics: serverMetrics,
		Finder:  finder,

		closeFn: func() {
			_ = cache.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
