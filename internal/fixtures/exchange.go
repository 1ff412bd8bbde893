package fixtures

import (
	"context"
	"errors"

	"github.com/dogmatiq/litecoind"
)

// ExchangerStub is a test implementation of the litecoind.Exchanger interface.
type ExchangerStub struct {
	litecoind.Exchanger

	CallFunc func(context.Context, litecoind.Request) (*litecoind.Response, error)
}

// Call handles a call request and returns the response.
func (s *ExchangerStub) Call(ctx context.Context, req litecoind.Request) (*litecoind.Response, error) {
	if s.CallFunc != nil {
		return s.CallFunc(ctx, req)
	}

	if s.Exchanger != nil {
		return s.Exchanger.Call(ctx, req)
	}

	return nil, errors.New("<not implemented>")
}

// CallLoggerStub is a test implementation of the litecoind.CallLogger
// interface.
type CallLoggerStub struct {
	LogCallFunc func(context.Context, litecoind.Request, *litecoind.Response, error)
}

// LogCall logs about a call request and its outcome.
func (s *CallLoggerStub) LogCall(
	ctx context.Context,
	req litecoind.Request,
	res *litecoind.Response,
	err error,
) {
	if s.LogCallFunc != nil {
		s.LogCallFunc(ctx, req, res, err)
	}
}
