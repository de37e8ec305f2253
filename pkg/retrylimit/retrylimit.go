// Package retrylimit provides adaptive rate limiting and retry for clients
// of flaky upstreams. The limiter speeds up while requests succeed and backs
// off when they fail, so a misbehaving media endpoint slows the bot down
// instead of getting hammered.
//
//	lim := retrylimit.NewAdaptiveLimiter(5, 1, 20, 1, 0.5)
//	err := retrylimit.WithRetryMax(ctx, func() error {
//	    return fetchStreamURL()
//	}, lim, 3)
package retrylimit

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// AdaptiveLimiter manages a rate limit that adjusts automatically based on
// request outcomes: up on success, down on failure. Thread-safe.
type AdaptiveLimiter struct {
	mu        sync.RWMutex
	limiter   *rate.Limiter
	minLimit  rate.Limit
	maxLimit  rate.Limit
	stepUp    rate.Limit
	stepDown  float64
	lastError time.Time
}

// NewAdaptiveLimiter creates an AdaptiveLimiter.
//
//   - initial: starting requests per second
//   - min, max: allowed rate bounds
//   - stepUp: increment on success
//   - stepDown: multiplier applied on failure (e.g. 0.5 to halve)
func NewAdaptiveLimiter(initial, min, max rate.Limit, stepUp rate.Limit, stepDown float64) *AdaptiveLimiter {
	if initial < 1 {
		initial = 1
	}
	if min < 1 {
		min = 1
	}
	return &AdaptiveLimiter{
		limiter:  rate.NewLimiter(initial, maxInt(1, int(initial))),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return a.limiter.Wait(ctx)
}

// Success increases the rate after a successful request.
func (a *AdaptiveLimiter) Success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if time.Since(a.lastError) > 10*time.Second {
		a.adjustLimit(a.limiter.Limit() + a.stepUp)
	}
}

// RateLimited reduces the rate after a failure or an overload response.
func (a *AdaptiveLimiter) RateLimited() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = time.Now()
	a.adjustLimit(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

// CurrentLimit returns the current requests per second.
func (a *AdaptiveLimiter) CurrentLimit() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return float64(a.limiter.Limit())
}

func (a *AdaptiveLimiter) adjustLimit(newLimit rate.Limit) {
	if newLimit > a.maxLimit {
		newLimit = a.maxLimit
	} else if newLimit < a.minLimit {
		newLimit = a.minLimit
	}
	if newLimit != a.limiter.Limit() {
		a.limiter.SetLimit(newLimit)
		a.limiter.SetBurst(maxInt(1, int(newLimit)))
	}
}

// HTTPError is an optional interface for errors carrying an HTTP status.
type HTTPError interface {
	error
	StatusCode() int
}

// FatalError wraps errors that should stop retries immediately (e.g. a video
// that no longer exists — asking again will not bring it back).
type FatalError struct {
	Err error
}

func (f *FatalError) Error() string { return f.Err.Error() }
func (f *FatalError) Unwrap() error { return f.Err }

// RetryConfig configures retry behavior.
type RetryConfig struct {
	MaxAttempts    int           // 0 = unlimited, capped at 100
	InitialDelay   time.Duration // delay before the second attempt
	MaxDelay       time.Duration // backoff ceiling
	RateLimitDelay time.Duration // fixed delay after a 429
	Multiplier     float64       // exponential backoff multiplier
	Jitter         bool          // randomize delays to avoid thundering herd
}

// DefaultRetryConfig returns a sensible default configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    100,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       10 * time.Second,
		RateLimitDelay: 100 * time.Millisecond,
		Multiplier:     2.0,
		Jitter:         true,
	}
}

// WithRetryMax executes fn with exponential backoff up to maxAttempts times.
// Stops immediately on success, FatalError or context cancellation.
func WithRetryMax(ctx context.Context, fn func() error, lim *AdaptiveLimiter, maxAttempts int) error {
	cfg := DefaultRetryConfig()
	cfg.MaxAttempts = maxAttempts
	return WithRetryConfig(ctx, fn, lim, cfg)
}

// WithRetryConfig executes fn with custom retry configuration.
func WithRetryConfig(ctx context.Context, fn func() error, lim *AdaptiveLimiter, cfg RetryConfig) error {
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 100
	}

	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if lim != nil {
			if err := lim.Wait(ctx); err != nil {
				return err
			}
		}

		err := fn()
		if err == nil {
			if lim != nil {
				lim.Success()
				if attempt > 1 {
					log.Printf("[Retry] Success after %d attempts. Limiter=%.2f rps",
						attempt, lim.CurrentLimit())
				}
			}
			return nil
		}

		if isFatalError(err) {
			return err
		}

		if isRateLimitError(err) {
			if lim != nil {
				lim.RateLimited()
				log.Printf("[Retry] Rate limit (attempt %d). New limit: %.2f rps",
					attempt, lim.CurrentLimit())
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.RateLimitDelay):
			}
			continue
		}

		if lim != nil && isServerError(err) {
			lim.RateLimited()
		}
		log.Printf("[Retry] Request failed (attempt %d): %v. Sleeping %v", attempt, err, delay)

		nextDelay := delay
		if cfg.Jitter {
			nextDelay = addJitter(delay)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(nextDelay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("max attempts (%d) exceeded", cfg.MaxAttempts)
}

// addJitter adds 0-25% random jitter to a delay.
func addJitter(delay time.Duration) time.Duration {
	if delay <= 0 {
		return delay
	}
	return delay + time.Duration(rand.Int63n(int64(delay/4)))
}

func isFatalError(err error) bool {
	_, ok := err.(*FatalError)
	return ok
}

func isRateLimitError(err error) bool {
	if httpErr, ok := err.(HTTPError); ok {
		return httpErr.StatusCode() == http.StatusTooManyRequests
	}
	return false
}

func isServerError(err error) bool {
	if httpErr, ok := err.(HTTPError); ok {
		code := httpErr.StatusCode()
		return code >= 500 && code < 600
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
