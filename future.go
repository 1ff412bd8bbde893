package litecoind

// Future is a handle to the eventual outcome of an asynchronous call.
//
// A future is either fulfilled with a response or rejected with an error,
// exactly once.
type Future struct {
	done chan struct{}
	res  *Response
	err  error
}

// AsyncOption is an option that registers a callback for an asynchronous
// call.
type AsyncOption func(*asyncCallbacks)

type asyncCallbacks struct {
	onFulfilled func(*Response)
	onRejected  func(error)
}

// OnFulfilled is an AsyncOption that registers fn to be called with the
// response when the call succeeds.
func OnFulfilled(fn func(*Response)) AsyncOption {
	return func(cb *asyncCallbacks) {
		cb.onFulfilled = fn
	}
}

// OnRejected is an AsyncOption that registers fn to be called with the error
// when the call fails.
//
// The error is always a *ClientError or a *LitecoindError.
func OnRejected(fn func(error)) AsyncOption {
	return func(cb *asyncCallbacks) {
		cb.onRejected = fn
	}
}

// newFuture starts fn on its own goroutine and returns a future that is
// resolved with its outcome once the matching callback has returned.
func newFuture(
	fn func() (*Response, error),
	options []AsyncOption,
) *Future {
	var cb asyncCallbacks
	for _, opt := range options {
		opt(&cb)
	}

	f := &Future{
		done: make(chan struct{}),
	}

	go func() {
		defer close(f.done)

		f.res, f.err = fn()

		if f.err != nil {
			if cb.onRejected != nil {
				cb.onRejected(f.err)
			}
		} else if cb.onFulfilled != nil {
			cb.onFulfilled(f.res)
		}
	}()

	return f
}

// Done returns a channel that is closed when the future is resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Receive waits for the future to be resolved and returns the response, or the
// error if the call was rejected.
func (f *Future) Receive() (*Response, error) {
	<-f.done
	return f.res, f.err
}

// Wait waits for the future to be resolved without reporting a rejection.
//
// It is intended for callers that handle failures via an OnRejected callback.
func (f *Future) Wait() {
	<-f.done
}
