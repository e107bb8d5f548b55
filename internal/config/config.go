package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	RedisURL string

	GoogleAPIKey     string
	PlacesSearchURL  string
	PlacesDetailsURL string
	PlacesLanguage   string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	SearchRadiusMeters int
	CacheNamespace     string
	CacheTTLHours      int

	DenylistPath string

	BreakerEnabled   bool
	DetailRatePerSec float64
	DetailRateBurst  int
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		RedisURL: mustEnv("REDIS_URL", "redis://localhost:6379/0"),

		GoogleAPIKey:     mustEnv("GOOGLE_API_KEY", ""),
		PlacesSearchURL:  mustEnv("PLACES_SEARCH_URL", "https://places.googleapis.com/v1"),
		PlacesDetailsURL: mustEnv("PLACES_DETAILS_URL", "https://maps.googleapis.com/maps/api/place/details/json"),
		PlacesLanguage:   mustEnv("PLACES_LANGUAGE", "de"),

		OpenAIAPIKey:  mustEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: mustEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   mustEnv("OPENAI_MODEL", "gpt-4o-mini"),

		SearchRadiusMeters: mustEnvInt("SEARCH_RADIUS_METERS", 1500),
		CacheNamespace:     mustEnv("CACHE_NAMESPACE", "google_places_hybrid_v3"),
		CacheTTLHours:      mustEnvInt("CACHE_TTL_HOURS", 48),

		DenylistPath: mustEnv("DENYLIST_PATH", ""),

		BreakerEnabled:   mustEnvBool("BREAKER_ENABLED", true),
		DetailRatePerSec: mustEnvFloat("DETAIL_RATE_PER_SEC", 10),
		DetailRateBurst:  mustEnvInt("DETAIL_RATE_BURST", 5),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
