package result

// Map applies onSuccess to the success value, producing a result at the
// new value type. A failure passes through with its error untouched.
func Map[T, E, U any](r Result[T, E], onSuccess func(t T) U) Result[U, E] {
	if r.IsSuccess() {
		return Success[U, E](onSuccess(r.Result()))
	}
	return FailFrom[U](r)
}

// MapErr transforms only the error channel. A success passes through
// with its value untouched.
func MapErr[T, E, F any](r Result[T, E], onFailure func(e E) F) Result[T, F] {
	if r.IsFailure() {
		return Fail[T, F](onFailure(r.Err()))
	}
	return SuccessFrom[F](r)
}

// AndThen chains a result-returning function, flattening the outcome:
// on success the returned result is r's continuation as-is, on failure
// the original error short-circuits and onSuccess never runs.
func AndThen[T, E, U any](r Result[T, E], onSuccess func(t T) Result[U, E]) Result[U, E] {
	if r.IsSuccess() {
		return onSuccess(r.Result())
	}
	return FailFrom[U](r)
}

// FailFrom relabels a known failure at a new success type. The error and
// provenance (id, creation time) carry over unchanged; no data is
// transformed. Panics with *BadUnwrapError if from is a success.
func FailFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	if from.IsSuccess() {
		panic(&BadUnwrapError{Op: "FailFrom", Payload: from.Result()})
	}
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom relabels a known success at a new error type, the mirror
// of FailFrom. Panics with *BadUnwrapError if from is a failure.
func SuccessFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	if from.IsFailure() {
		panic(&BadUnwrapError{Op: "SuccessFrom", Payload: from.Err()})
	}
	return Result[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Collect gathers an ordered sequence of results into one: all success
// values in original order, or the first failure encountered. The scan
// stops at that failure.
func Collect[T, E any](rs []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(rs))
	for _, r := range rs {
		if r.IsFailure() {
			return FailFrom[[]T](r)
		}
		values = append(values, r.Result())
	}
	return Success[[]T, E](values)
}

// Finally collapses a result to a final value via the matching handler.
func Finally[T, E, U any](r Result[T, E], onSuccess func(t T) U, onFailure func(e E) U) U {
	if r.IsSuccess() {
		return onSuccess(r.Result())
	}
	return onFailure(r.Err())
}
