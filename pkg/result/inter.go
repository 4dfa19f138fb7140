package result

import "time"

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErr defines an interface for types that hold a result value or a
// typed domain error
type WithErr[T, E any] interface {
	ResultProvider[T]
	// Err returns the error if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// WithDisplay is implemented by error types that can render a
// human-facing message for logs and diagnostics. Nothing in this library
// consumes it; it is an interop seam for calling code. DisplayError must
// be idempotent and side-effect free.
type WithDisplay interface {
	DisplayError() string
}
