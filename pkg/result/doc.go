// Package result provides Result[T, E], an immutable two-variant union
// holding either a success value or a typed domain error, together with
// the operations to extract, transform, and chain such values.
//
// Key operations:
// - Success/Fail: construct either variant
// - Unwrap/UnwrapErr: checked extraction, panicking loudly on misuse
// - UnwrapOr/UnwrapOrElse: total extraction with a default or fallback
// - Map/MapErr/AndThen: transform one channel, short-circuiting the other
// - Collect: gather a sequence of results or stop at the first failure
// - From/Unpack: interop with Go's native (value, error) pair
//
// Domain errors are always returned, never thrown: an E value inside a
// failure is ordinary data. Calling an accessor on the wrong variant is
// a programming error and panics with *BadUnwrapError.
//
// For straight-line sequences of result-producing steps, see the block
// subpackage; for fluent composition, see the chain subpackage.
package result
