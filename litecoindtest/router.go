package litecoindtest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dogmatiq/litecoind"
)

// Call is a JSON-RPC call received by the fake daemon.
type Call struct {
	// Method is the name of the RPC method.
	Method string

	// Wallet is the name of the wallet the call was sent to, or an empty
	// string if it was sent to the root endpoint.
	Wallet string

	// Parameters is the raw JSON of the call's parameters.
	Parameters json.RawMessage
}

// UnmarshalParameters unmarshals the call's parameters into v.
func (c Call) UnmarshalParameters(v any) error {
	if err := json.Unmarshal(c.Parameters, v); err != nil {
		return litecoind.NewLitecoindError(
			litecoind.TypeErrorCode,
			fmt.Sprintf("unable to unmarshal parameters: %s", err),
		)
	}

	return nil
}

// A Handler produces a result value (or error) in response to a call for a
// specific method.
//
// If err is a *litecoind.LitecoindError its code and message are sent to the
// client verbatim; any other error is reported as a miscellaneous error.
type Handler func(ctx context.Context, call Call) (result any, err error)

// ServerOption is an option that changes the behavior of a Server.
type ServerOption func(*Server)

// WithRoute is a ServerOption that routes calls to the method m to the handler
// h.
func WithRoute(m string, h Handler) ServerOption {
	return func(s *Server) {
		if _, ok := s.routes[m]; ok {
			panic(fmt.Sprintf("duplicate route for '%s' method", m))
		}

		s.routes[m] = h
	}
}

// WithResult is a ServerOption that responds to every call to the method m
// with the same result.
func WithResult(m string, result any) ServerOption {
	return WithRoute(
		m,
		func(context.Context, Call) (any, error) {
			return result, nil
		},
	)
}

// WithError is a ServerOption that responds to every call to the method m with
// the same daemon error.
func WithError(m string, code litecoind.ErrorCode, message string) ServerOption {
	return WithRoute(
		m,
		func(context.Context, Call) (any, error) {
			return nil, litecoind.NewLitecoindError(code, message)
		},
	)
}

// WithBasicAuth is a ServerOption that rejects requests that do not carry the
// given basic-auth credentials.
func WithBasicAuth(username, password string) ServerOption {
	return func(s *Server) {
		s.requireAuth = true
		s.username = username
		s.password = password
	}
}

// WithTLS is a ServerOption that serves HTTPS using a self-signed certificate.
func WithTLS() ServerOption {
	return func(s *Server) {
		s.useTLS = true
	}
}

// route invokes the handler for the given call.
func (s *Server) route(ctx context.Context, call Call) (any, error) {
	h, ok := s.routes[call.Method]
	if !ok {
		return nil, litecoind.NewLitecoindError(
			litecoind.MethodNotFoundCode,
			"Method not found",
		)
	}

	return h(ctx, call)
}
