package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

type ErrorClassification struct {
	// RecordFailure marks the error as an upstream fault that should count
	// toward opening the circuit. Client-side errors and cancellations
	// should not trip the breaker.
	RecordFailure bool
}

type ErrorClassifier func(err error) ErrorClassification

// Executor guards upstream calls with a per-operation circuit breaker and
// rate limiter. Failed calls are never retried, the caller substitutes an
// empty value and moves on.
type Executor struct {
	cfg        Config
	limitedOps map[string]struct{}

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[any]
	limiters map[string]*rate.Limiter
}

func NewExecutor(cfg Config) *Executor {
	cfg = cfg.normalize()
	limitedOps := make(map[string]struct{}, len(cfg.RateLimitOps))
	for _, op := range cfg.RateLimitOps {
		limitedOps[op] = struct{}{}
	}
	return &Executor{
		cfg:        cfg,
		limitedOps: limitedOps,
		breakers:   make(map[string]*gobreaker.CircuitBreaker[any]),
		limiters:   make(map[string]*rate.Limiter),
	}
}

func (e *Executor) Execute(
	ctx context.Context,
	operation string,
	fn func(context.Context) error,
	classifier ErrorClassifier,
) error {
	if fn == nil {
		return fmt.Errorf("resilience: operation callback is nil")
	}
	op := strings.TrimSpace(operation)
	if op == "" {
		op = "unknown"
	}
	if classifier == nil {
		classifier = defaultClassifier
	}

	if limiter := e.rateLimiter(op); limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit %s: %w", op, err)
		}
	}

	if !e.cfg.BreakerEnabled {
		return fn(ctx)
	}

	breaker := e.circuitBreaker(op, classifier)
	_, err := breaker.Execute(func() (any, error) {
		return nil, fn(ctx)
	})
	return err
}

func (e *Executor) rateLimiter(operation string) *rate.Limiter {
	if e.cfg.RateLimit <= 0 {
		return nil
	}
	if len(e.limitedOps) > 0 {
		if _, ok := e.limitedOps[operation]; !ok {
			return nil
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if limiter, ok := e.limiters[operation]; ok {
		return limiter
	}
	limiter := rate.NewLimiter(e.cfg.RateLimit, e.cfg.RateBurst)
	e.limiters[operation] = limiter
	return limiter
}

func (e *Executor) circuitBreaker(operation string, classifier ErrorClassifier) *gobreaker.CircuitBreaker[any] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if breaker, ok := e.breakers[operation]; ok {
		return breaker
	}

	settings := gobreaker.Settings{
		Name:        operation,
		MaxRequests: e.cfg.BreakerHalfOpenMaxCalls,
		Timeout:     e.cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < e.cfg.BreakerMinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= e.cfg.BreakerFailureRatio
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			class := classifier(err)
			return !class.RecordFailure
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit_breaker_state_change", "operation", name, "from", from.String(), "to", to.String())
		},
	}

	breaker := gobreaker.NewCircuitBreaker[any](settings)
	e.breakers[operation] = breaker
	return breaker
}

func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

func defaultClassifier(error) ErrorClassification {
	return ErrorClassification{RecordFailure: true}
}
