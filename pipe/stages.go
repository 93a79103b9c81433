package pipe

import "context"

// Identity returns a stage that passes its input through unchanged.
// Useful as a placeholder or a composition boundary.
func Identity[A any]() Stage[A, A] {
	return func(_ context.Context, in A) (A, error) {
		return in, nil
	}
}

// Map lifts an infallible transformation into a stage.
func Map[A, B any](fn func(A) B) Stage[A, B] {
	return func(_ context.Context, in A) (B, error) {
		return fn(in), nil
	}
}

// Tap returns a stage that calls fn with the input and passes the input
// through unchanged. Use for logging, metrics, or other side effects.
func Tap[A any](fn func(context.Context, A)) Stage[A, A] {
	return func(ctx context.Context, in A) (A, error) {
		fn(ctx, in)
		return in, nil
	}
}

// Fallback returns a stage that runs primary and, if it fails, runs backup
// with the same input. The backup's outcome replaces the primary's error.
// Recovery is explicit here — no stage recovers from another stage's error
// unless composed through Fallback or MapError.
func Fallback[A, B any](primary, backup Stage[A, B]) Stage[A, B] {
	return func(ctx context.Context, in A) (B, error) {
		out, err := primary(ctx, in)
		if err != nil {
			return backup(ctx, in)
		}
		return out, nil
	}
}

// MapError returns a stage that passes successes through untouched and maps
// failures with fn. fn must return a non-nil error; an error is never
// discarded silently, only translated.
func MapError[A, B any](s Stage[A, B], fn func(error) error) Stage[A, B] {
	return func(ctx context.Context, in A) (B, error) {
		out, err := s(ctx, in)
		if err != nil {
			var zero B
			return zero, fn(err)
		}
		return out, nil
	}
}
