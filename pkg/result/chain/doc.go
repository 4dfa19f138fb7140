// Package chain provides a fluent wrapper around Result[T, E] for
// building synchronous short-circuiting pipelines.
//
// It composes the result package's operations behind a convenient
// Chain[T, E] value. Once a step fails, no later user function runs; the
// failure flows to the end of the chain unchanged.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: compose result-returning functions (method for T -> T,
//   package function for T -> U)
// - ThenTry: call a function (U, error) and convert the error to a failure
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Or: pick the first successful alternative
// - Finally: collapse the chain into a final value via handlers
package chain
