package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff and
// jitter. Retry policy by error class:
//
//   - rate limit, provider unavailable, generic network errors: retried
//     up to MaxAttempts, honoring any server-supplied RetryAfter
//   - invalid response: retried exactly once, since a second identical
//     failure almost always means the prompt or schema is at fault
//   - max tokens: never retried, the same request would truncate again
//   - context cancellation: never retried
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry decorates p with the retry policy in cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err, &invalidSeen) {
			return nil, err
		}
		if attempt == r.cfg.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.wait(attempt, err)):
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

func retryable(err error, invalidSeen *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		if *invalidSeen {
			return false
		}
		*invalidSeen = true
		return true
	}

	// Everything else (rate limits, 5xx, plain network errors) is
	// treated as transient.
	return true
}

// wait computes the sleep before the next attempt. A server-supplied
// RetryAfter wins over the computed backoff.
func (r *RetryProvider) wait(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	d := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if d > float64(r.cfg.MaxWait) {
		d = float64(r.cfg.MaxWait)
	}

	// ±20% jitter keeps parallel clients from retrying in lockstep.
	d += d * 0.2 * (2*rand.Float64() - 1)
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}
