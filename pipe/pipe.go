package pipe

import "context"

// Stage is a single fallible step: it maps an input value to an output value
// or stops the pipeline with an error. Stages must not mutate their input;
// transformations return new values.
type Stage[A, B any] func(ctx context.Context, in A) (B, error)

// Join composes two stages into one. The composed stage runs f first; if f
// fails, its error is returned immediately and g is never invoked. Otherwise
// g runs on f's output and its outcome becomes the composed outcome.
//
// Join is associative: Join(Join(f, g), k) and Join(f, Join(g, k)) behave
// identically for every input. The returned stage holds no state and is safe
// for concurrent use whenever f and g are.
func Join[A, B, C any](f Stage[A, B], g Stage[B, C]) Stage[A, C] {
	return func(ctx context.Context, in A) (C, error) {
		mid, err := f(ctx, in)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(ctx, mid)
	}
}

// Join3 composes three stages. Equivalent to Join(Join(f, g), k).
func Join3[A, B, C, D any](f Stage[A, B], g Stage[B, C], k Stage[C, D]) Stage[A, D] {
	return Join(Join(f, g), k)
}

// Join4 composes four stages.
func Join4[A, B, C, D, E any](f Stage[A, B], g Stage[B, C], k Stage[C, D], l Stage[D, E]) Stage[A, E] {
	return Join(Join3(f, g, k), l)
}
