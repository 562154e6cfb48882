// Package ratelimit gates upstream calls behind a single shared token
// bucket. Unlike a multi-tenant gateway keyed by IP or user, this process
// holds exactly one upstream credential, so the limiter has no per-key
// partitioning — every caller, across every transport, draws from the same
// bucket.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/rescuegate/rescuegate/internal/errs"
)

// ShortWaitThreshold is the longest the limiter will block a caller before
// giving up and returning a RateLimited error.
const ShortWaitThreshold = time.Second

// Limiter is the interface the engine depends on, kept narrow so that a
// test double can be substituted without pulling in golang.org/x/time.
type Limiter interface {
	// Acquire blocks until a token is available, the short-wait threshold
	// elapses, or ctx is cancelled — whichever comes first. It never
	// consumes a token on failure.
	Acquire(ctx context.Context) error
}

// TokenBucket implements Limiter over golang.org/x/time/rate, which already
// provides the continuous (non-discrete-tick) refill the design calls for.
type TokenBucket struct {
	limiter *rate.Limiter
}

// New builds a token bucket that allows `requests` operations per `window`
// seconds, replenished continuously, with a burst equal to the full
// capacity (a cold bucket can be drained in one go).
func New(requests, windowSeconds int) *TokenBucket {
	if requests <= 0 {
		requests = 1
	}
	if windowSeconds <= 0 {
		windowSeconds = 1
	}
	r := rate.Limit(float64(requests) / float64(windowSeconds))
	return &TokenBucket{limiter: rate.NewLimiter(r, requests)}
}

// Acquire implements Limiter.
func (t *TokenBucket) Acquire(ctx context.Context) error {
	// Fast path: a token is already available.
	if t.limiter.Allow() {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, ShortWaitThreshold)
	defer cancel()

	reservation := t.limiter.Reserve()
	if !reservation.OK() {
		return errs.RateLimited("burst exceeds limiter capacity")
	}
	delay := reservation.Delay()
	if delay > ShortWaitThreshold {
		reservation.Cancel()
		return errs.RateLimited("estimated wait %s exceeds short-wait threshold", delay)
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-waitCtx.Done():
		reservation.Cancel()
		if ctx.Err() != nil {
			return errs.RateLimited("caller deadline elapsed while waiting")
		}
		return errs.RateLimited("short-wait threshold exceeded")
	}
}

var _ Limiter = (*TokenBucket)(nil)
