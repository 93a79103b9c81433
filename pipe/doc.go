// Package pipe provides the composition core for request pipelines: a typed,
// fallible Stage function and combinators to chain stages with
// short-circuit-on-error semantics.
//
// A Stage[A, B] maps a value of type A to a value of type B or fails with an
// error. Join composes two stages; the first error stops the chain:
//
//	toUpper := pipe.Map(strings.ToUpper)
//	parse := func(ctx context.Context, s string) (int, error) {
//	    return strconv.Atoi(s)
//	}
//	stage := pipe.Join(toUpper, parse)
//
// Stages are plain functions with no shared state; a composed stage is safe
// to reuse across goroutines when its operands are. Execution within one
// invocation is strictly sequential, and cancellation flows through the
// context passed to every stage.
package pipe
