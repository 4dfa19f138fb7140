// Package block lets a sequence of result-producing steps be written as
// straight-line code: the first failure aborts the rest of the sequence
// and becomes the overall outcome, without branch-and-return logic at
// every step.
//
// Key operations:
// - Run: execute a body with a fresh context, yielding a Result
// - Unwrap: extract a success value or abort the enclosing Run
// - Try: evaluate a step function once, then unwrap its result
//
//	res := block.Run(func(c *block.Context[error]) int {
//		a := block.Unwrap(c, parse("10"))
//		b := block.Unwrap(c, parse("20"))
//		return a + b
//	})
//
// The abort is a bounded, synchronous stack unwind scoped to the one Run
// frame that created the context. It is an internal desugaring of
// repeated result checking, never an error signal in its own right: the
// captured failure comes back as an ordinary failure Result, and a
// signal observed anywhere but its matching Run keeps propagating as a
// crash.
package block
