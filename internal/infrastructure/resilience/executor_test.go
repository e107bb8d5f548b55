package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

func TestExecuteRunsOperationOnce(t *testing.T) {
	exec := NewExecutor(Config{BreakerEnabled: false})

	attempts := 0
	errUpstream := errors.New("upstream")
	err := exec.Execute(context.Background(), "op", func(context.Context) error {
		attempts++
		return errUpstream
	}, nil)
	if !errors.Is(err, errUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("failed calls must not be retried, got %d attempts", attempts)
	}
}

func TestExecuteOpensCircuitAfterFailures(t *testing.T) {
	exec := NewExecutor(Config{
		BreakerEnabled:          true,
		BreakerMinRequests:      2,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      50 * time.Millisecond,
		BreakerHalfOpenMaxCalls: 1,
	})

	errUpstream := errors.New("upstream")
	classifier := func(error) ErrorClassification {
		return ErrorClassification{RecordFailure: true}
	}

	for i := 0; i < 2; i++ {
		err := exec.Execute(context.Background(), "op", func(context.Context) error {
			return errUpstream
		}, classifier)
		if !errors.Is(err, errUpstream) {
			t.Fatalf("expected upstream error on iteration %d, got %v", i, err)
		}
	}

	err := exec.Execute(context.Background(), "op", func(context.Context) error {
		t.Fatalf("circuit should be open and must not call operation")
		return nil
	}, classifier)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open state error, got %v", err)
	}
	if !IsCircuitOpen(err) {
		t.Fatalf("IsCircuitOpen() = false for %v", err)
	}
}

func TestExecuteIgnoresNonRecordedFailures(t *testing.T) {
	exec := NewExecutor(Config{
		BreakerEnabled:          true,
		BreakerMinRequests:      2,
		BreakerFailureRatio:     0.5,
		BreakerOpenTimeout:      50 * time.Millisecond,
		BreakerHalfOpenMaxCalls: 1,
	})

	errClient := errors.New("bad request")
	classifier := func(error) ErrorClassification {
		return ErrorClassification{RecordFailure: false}
	}

	for i := 0; i < 5; i++ {
		err := exec.Execute(context.Background(), "op", func(context.Context) error {
			return errClient
		}, classifier)
		if !errors.Is(err, errClient) {
			t.Fatalf("expected client error, got %v", err)
		}
	}
}

func TestExecuteThrottlesOperation(t *testing.T) {
	exec := NewExecutor(Config{
		BreakerEnabled: false,
		RateLimit:      rate.Limit(100),
		RateBurst:      1,
	})

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := exec.Execute(context.Background(), "op", func(context.Context) error {
			return nil
		}, nil); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	}
	// Burst of 1 at 100/s: the second and third call wait ~10ms each.
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("expected rate limiting to delay calls, elapsed %v", elapsed)
	}
}

func TestExecuteThrottlesOnlyListedOperations(t *testing.T) {
	exec := NewExecutor(Config{
		BreakerEnabled: false,
		RateLimit:      rate.Limit(0.001),
		RateBurst:      1,
		RateLimitOps:   []string{"slow_op"},
	})

	// Drain slow_op's single burst token.
	if err := exec.Execute(context.Background(), "slow_op", func(context.Context) error { return nil }, nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Unlisted operations must never wait on the limiter.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	for i := 0; i < 10; i++ {
		if err := exec.Execute(ctx, "fast_op", func(context.Context) error { return nil }, nil); err != nil {
			t.Fatalf("unlisted operation throttled on call %d: %v", i, err)
		}
	}

	// The listed operation is still throttled.
	err := exec.Execute(ctx, "slow_op", func(context.Context) error { return nil }, nil)
	if err == nil {
		t.Fatalf("expected listed operation to be throttled")
	}
}

func TestExecuteRateLimitHonorsContext(t *testing.T) {
	exec := NewExecutor(Config{
		BreakerEnabled: false,
		RateLimit:      rate.Limit(0.001),
		RateBurst:      1,
	})

	// Drain the single burst token.
	if err := exec.Execute(context.Background(), "op", func(context.Context) error { return nil }, nil); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := exec.Execute(ctx, "op", func(context.Context) error { return nil }, nil)
	if err == nil {
		t.Fatalf("expected context deadline error while throttled")
	}
}
