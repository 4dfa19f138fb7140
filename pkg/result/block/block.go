package block

import (
	"fmt"

	"github.com/ib-77/fallible/pkg/result"
)

type state int8

const (
	stateActive state = iota
	stateAborted
	stateCompleted
)

// Context is the abort channel of a single Run invocation. Run creates
// one per call and hands it to the body; it is valid only for the
// dynamic extent of that body and holds at most one captured failure.
type Context[E any] struct {
	failure E
	state   state
}

// signal is the control-transfer payload for an abort. It carries no
// error of its own, only the identity of the originating context; the
// captured failure travels in the context field.
type signal struct {
	origin any
}

// Run executes body with a fresh context and returns its outcome as a
// result: a normal return wraps the returned value as a success, an
// abort raised through this context yields a failure holding the
// captured error.
//
// Nested Run calls resolve independently. An abort reaches exactly the
// Run that created its context; any other panic, including a signal
// belonging to a different context, keeps unwinding.
func Run[T, E any](body func(c *Context[E]) T) (res result.Result[T, E]) {
	c := &Context[E]{}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sig, ok := r.(signal)
		if !ok || sig.origin != any(c) {
			panic(r)
		}
		if c.state != stateAborted {
			panic(fmt.Sprintf("block: abort signal reached Run with no captured failure (state %d)", c.state))
		}
		res = result.Fail[T, E](c.failure)
	}()

	v := body(c)
	c.state = stateCompleted
	return result.Success[T, E](v)
}

// Unwrap returns the success value of r and lets the block continue. On
// a failure it captures the error into c and aborts: control transfers
// to the Run that created c, and none of the body's remaining code
// executes.
func Unwrap[T, E any](c *Context[E], r result.Result[T, E]) T {
	if c.state != stateActive {
		panic("block: context used outside its block")
	}
	if r.IsFailure() {
		c.failure = r.Err()
		c.state = stateAborted
		panic(signal{origin: c})
	}
	return r.Result()
}

// Try evaluates step exactly once and unwraps its result, with the same
// abort semantics as Unwrap.
func Try[T, E any](c *Context[E], step func() result.Result[T, E]) T {
	if c.state != stateActive {
		panic("block: context used outside its block")
	}
	return Unwrap(c, step())
}
