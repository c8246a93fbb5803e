package resilient

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// withRetry runs fn until it succeeds, returns a non-retryable error, or the
// attempts run out.
func (g *Gateway) withRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	var lastErr error

	for attempt := range g.retry.MaxAttempts {
		if attempt > 0 {
			if err := g.waitForRetry(ctx, op, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = fn(ctx)
		if !isRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// waitForRetry logs the retry at WARN level and waits for the backoff delay
// or context cancellation.
func (g *Gateway) waitForRetry(ctx context.Context, op string, attempt int, lastErr error) error {
	delay := backoff(attempt, g.retry)

	logging.FromContext(ctx).WarnContext(ctx, "retrying store call",
		slog.String("operation", "store."+op),
		slog.String("store", g.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", g.retry.MaxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a retry attempt using exponential backoff
// with ±25% jitter. attempt is 1-indexed (attempt 1 is the first retry).
func backoff(attempt int, p RetryPolicy) time.Duration {
	delay := float64(p.InitialInterval) * math.Pow(p.Multiplier, float64(attempt-1))

	if delay > float64(p.MaxInterval) {
		delay = float64(p.MaxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a failed read may succeed on another attempt.
// Expected outcomes and caller cancellation are final.
func isRetryable(err error) bool {
	if err == nil || domain.IsExpected(err) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
