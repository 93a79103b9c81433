package resilience

import (
	"context"

	"github.com/sdkpipe/sdkpipe/httpsdk"
	"github.com/sdkpipe/sdkpipe/pipe"
)

// RetryStage wraps a stage with retry. The wrapped stage must be safe to run
// more than once with the same input; request and result values are immutable
// so pipeline stages qualify.
func RetryStage[A, B any](cfg RetryConfig, s pipe.Stage[A, B]) pipe.Stage[A, B] {
	return func(ctx context.Context, in A) (B, error) {
		return Retry(ctx, cfg, func() (B, error) {
			return s(ctx, in)
		})
	}
}

// BreakerStage wraps a stage with a circuit breaker. A rejected call fails
// with a network error so retry policies treat it as transient.
func BreakerStage[A, B any](b *Breaker, s pipe.Stage[A, B]) pipe.Stage[A, B] {
	return func(ctx context.Context, in A) (B, error) {
		var zero B
		if !b.Allow() {
			return zero, httpsdk.NewNetworkError(ErrCircuitOpen)
		}
		out, err := s(ctx, in)
		b.Record(err)
		if err != nil {
			return zero, err
		}
		return out, nil
	}
}

// LimitStage wraps a stage with a rate limiter, waiting for a token before
// each call. A wait cut short by the context fails with a network-kind error
// wrapping the context error.
func LimitStage[A, B any](l *Limiter, s pipe.Stage[A, B]) pipe.Stage[A, B] {
	return func(ctx context.Context, in A) (B, error) {
		var zero B
		if err := l.Wait(ctx); err != nil {
			return zero, httpsdk.NewNetworkError(err)
		}
		return s(ctx, in)
	}
}
