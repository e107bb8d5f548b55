package resilience

import (
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	BreakerEnabled          bool
	BreakerMinRequests      uint32
	BreakerFailureRatio     float64
	BreakerOpenTimeout      time.Duration
	BreakerHalfOpenMaxCalls uint32

	// RateLimit throttles the operations named in RateLimitOps. Zero
	// means unlimited; an empty RateLimitOps applies the limit to every
	// operation.
	RateLimit    rate.Limit
	RateBurst    int
	RateLimitOps []string
}

func DefaultConfig() Config {
	return Config{
		BreakerEnabled:          true,
		BreakerMinRequests:      10,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      30 * time.Second,
		BreakerHalfOpenMaxCalls: 2,
	}
}

func (c Config) normalize() Config {
	out := c
	def := DefaultConfig()

	if out.BreakerMinRequests == 0 {
		out.BreakerMinRequests = def.BreakerMinRequests
	}
	if out.BreakerFailureRatio <= 0 || out.BreakerFailureRatio > 1 {
		out.BreakerFailureRatio = def.BreakerFailureRatio
	}
	if out.BreakerOpenTimeout <= 0 {
		out.BreakerOpenTimeout = def.BreakerOpenTimeout
	}
	if out.BreakerHalfOpenMaxCalls == 0 {
		out.BreakerHalfOpenMaxCalls = def.BreakerHalfOpenMaxCalls
	}
	if out.RateLimit < 0 {
		out.RateLimit = 0
	}
	if out.RateLimit > 0 && out.RateBurst <= 0 {
		out.RateBurst = 1
	}

	return out
}
