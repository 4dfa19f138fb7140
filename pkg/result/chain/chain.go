package chain

import (
	"github.com/ib-77/fallible/pkg/result"
)

// Chain wraps a result.Result to enable fluent composition
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// Start creates a new chain from a result
func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(result.Success[T, E](v))
}

// Result returns the underlying result
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes functions that already return result.Result[T, E]
func (c Chain[T, E]) Then(onSuccess func(t T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: onSuccess(c.res.Result())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: result.Success[T, E](onSuccess(c.res.Result()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Result())
	}
	return c
}

// Or returns the first successful chain, preferring the receiver; when
// both failed, the receiver's failure wins
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

// Then switches to a new success type via a result-returning function
func Then[T, U, E any](c Chain[T, E], onSuccess func(t T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: result.AndThen(c.res, onSuccess)}
}

// Map switches to a new success type via a pure transformation
func Map[T, U, E any](c Chain[T, E], onSuccess func(t T) U) Chain[U, E] {
	return Chain[U, E]{res: result.Map(c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error) — like repo calls
func ThenTry[T, U any](c Chain[T, error], try func(t T) (U, error)) Chain[U, error] {
	if c.res.IsFailure() {
		return Chain[U, error]{res: result.FailFrom[U](c.res)}
	}
	u, err := try(c.res.Result())
	return Chain[U, error]{res: result.From(u, err)}
}

// Finally collapses the chain to a final value, delegating to result.Finally
func Finally[T, E, U any](c Chain[T, E], onSuccess func(t T) U, onFailure func(e E) U) U {
	return result.Finally(c.res, onSuccess, onFailure)
}
