package result

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// From adopts Go's native (value, error) pair. A nil error, including a
// typed nil hiding behind the interface, yields a success.
func From[T any](v T, err error) Result[T, error] {
	if IsNil(err) {
		return Success[T, error](v)
	}
	return Fail[T, error](err)
}

// Unpack converts a result back to the native (value, error) pair. A
// failure yields T's zero value alongside the error.
func Unpack[T any](r Result[T, error]) (T, error) {
	if r.IsSuccess() {
		return r.Result(), nil
	}
	var zero T
	return zero, r.Err()
}

// AsError wraps a WithDisplay message in a plain error for
// exception-style logging facilities.
func AsError(d WithDisplay) error {
	return errors.New(d.DisplayError())
}
