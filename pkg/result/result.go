package result

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of a fallible computation: either a success
// value of type T or a domain error of type E. Exactly one variant is
// populated; the union is immutable once constructed. The zero value
// reads as a failure holding E's zero value.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (r Result[T, E]) Result() T {
	return r.value
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// Unwrap returns the success value. Calling it on a failure is a
// contract violation, not a domain outcome: it panics with
// *BadUnwrapError carrying the contained error.
func (r Result[T, E]) Unwrap() T {
	if !r.isSuccess {
		panic(&BadUnwrapError{Op: "Unwrap", Payload: r.err})
	}
	return r.value
}

// UnwrapErr returns the error. Panics with *BadUnwrapError carrying the
// success value if the result is a success.
func (r Result[T, E]) UnwrapErr() E {
	if r.isSuccess {
		panic(&BadUnwrapError{Op: "UnwrapErr", Payload: r.value})
	}
	return r.err
}

// UnwrapOr returns the success value or def. Never panics.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or the value produced by
// fallback. The fallback is invoked at most once, only on the failure
// path.
func (r Result[T, E]) UnwrapOrElse(fallback func() T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback()
}

// BadUnwrapError is the panic payload raised when an accessor is called
// on the wrong variant. Payload holds the other variant's content for
// diagnosis. It is never returned as a value; API misuse is loud.
type BadUnwrapError struct {
	Op      string
	Payload any
}

func (e *BadUnwrapError) Error() string {
	return fmt.Sprintf("result: %s called on the wrong variant (contains %v)", e.Op, e.Payload)
}
