// Package resilience provides retry, circuit breaker, and rate limiting for
// pipeline stages.
//
// Each pattern comes in two shapes: a plain primitive (Retry, Breaker,
// Limiter) and a stage wrapper (RetryStage, BreakerStage, LimitStage) that
// composes with pipe.Join. Wrapping the send stage is the usual placement:
//
//	send := resilience.RetryStage(resilience.DefaultRetryConfig(), httpsdk.Send(tr))
package resilience
