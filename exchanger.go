package litecoind

import (
	"context"
	"errors"
)

// An Exchanger performs a JSON-RPC exchange with the daemon.
//
// Exchangers form a pipeline between the Client and the HTTPExchanger that
// sends requests over the network. Middleware that wraps an Exchanger must
// pass the request along unchanged.
type Exchanger interface {
	// Call sends req to the daemon and returns its response.
	//
	// The returned error should be a *ClientError or a *LitecoindError. Any
	// other error is reported to the caller as a *ClientError.
	Call(ctx context.Context, req Request) (*Response, error)
}

// Middleware is a function that wraps an Exchanger with additional
// behavior.
type Middleware func(next Exchanger) Exchanger

// classifyError returns err as one of the two error types that the client
// reports.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var (
		clientErr *ClientError
		daemonErr *LitecoindError
	)

	if errors.As(err, &clientErr) {
		return clientErr
	}

	if errors.As(err, &daemonErr) {
		return daemonErr
	}

	return NewClientError(0, err.Error(), err)
}
