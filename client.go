package litecoind

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Client is a JSON-RPC client for the Litecoin daemon.
//
// A Client is safe for concurrent use once it has been constructed. Wallet()
// returns a copy of the client, so the wallet that a call is routed to is
// fixed at the time the call is made.
type Client struct {
	config     Config
	transport  *HTTPExchanger
	exchanger  Exchanger
	middleware []Middleware
	logger     CallLogger
	wallet     string
}

// Option is an option that changes the behavior of a Client.
type Option func(*Client) error

// WithCA is an Option that verifies the daemon's TLS certificate against the
// PEM-encoded CA bundle at path.
//
// It has no effect if WithHTTPClient() is also used.
func WithCA(path string) Option {
	return func(c *Client) error {
		c.config.CA = path
		return nil
	}
}

// WithCookieFile is an Option that authenticates using the daemon's
// authentication cookie at path, instead of the credentials in the connection
// URL.
func WithCookieFile(path string) Option {
	return func(c *Client) error {
		c.config.CookieFile = path
		return nil
	}
}

// WithHTTPClient is an Option that sets the HTTP client used to make requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.transport.Client = hc
		return nil
	}
}

// WithLogger is an Option that logs each call to the given zap logger.
func WithLogger(logger *zap.Logger) Option {
	return WithCallLogger(NewZapCallLogger(logger))
}

// WithCallLogger is an Option that logs each call to l.
func WithCallLogger(l CallLogger) Option {
	return func(c *Client) error {
		c.logger = l
		return nil
	}
}

// WithMiddleware is an Option that adds middleware to the exchanger
// pipeline.
//
// The first middleware added is the outermost, that is, the first to see each
// request.
func WithMiddleware(mw ...Middleware) Option {
	return func(c *Client) error {
		c.middleware = append(c.middleware, mw...)
		return nil
	}
}

// New returns a new client that connects to the daemon at the given URL.
//
// The URL has the form scheme://[user[:pass]@]host[:port][/]. If it is empty,
// DefaultURL is used. If the port is omitted, DefaultPort is used.
//
// The returned error, if any, is a *ClientError.
func New(rawURL string, options ...Option) (*Client, error) {
	if rawURL == "" {
		rawURL = DefaultURL
	}

	cfg, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:    cfg,
		transport: &HTTPExchanger{},
		logger:    NewZapCallLogger(zap.NewNop()),
	}

	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if err := c.config.Validate(); err != nil {
		return nil, err
	}

	if c.transport.Client == nil {
		c.transport.Client, err = newHTTPClient(c.config)
		if err != nil {
			return nil, err
		}
	}

	c.transport.BaseURL = c.config.BaseURL()

	if c.config.CookieFile != "" {
		c.transport.Credentials = cookieRetriever(c.config.CookieFile)
	} else {
		username, password := c.config.Auth()
		c.transport.Credentials = func() (string, string, error) {
			return username, password, nil
		}
	}

	c.exchanger = c.transport
	for i := len(c.middleware) - 1; i >= 0; i-- {
		c.exchanger = c.middleware[i](c.exchanger)
	}

	return c, nil
}

// Config returns the client's connection configuration.
func (c *Client) Config() Config {
	return c.config
}

// HTTPClient returns the HTTP client used to make requests.
func (c *Client) HTTPClient() *http.Client {
	return c.transport.Client
}

// SetHTTPClient sets the HTTP client used to make requests.
//
// The change is visible to all clients returned by Wallet(). It must not be
// called concurrently with any call.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.transport.Client = hc
}

// Endpoint returns the URL that the client's calls are sent to.
func (c *Client) Endpoint() string {
	return c.transport.Endpoint(c.wallet).String()
}

// Wallet returns a copy of the client that sends its calls to the endpoint of
// the named wallet. An empty name selects the daemon's root endpoint.
func (c *Client) Wallet(name string) *Client {
	clone := *c
	clone.wallet = name
	return &clone
}

// WalletName returns the name of the wallet that the client's calls are sent
// to, or an empty string if they are sent to the root endpoint.
func (c *Client) WalletName() string {
	return c.wallet
}

// Call invokes a JSON-RPC method and waits for its response.
//
// The returned error is either a *ClientError or a *LitecoindError. It panics
// if the parameters can not be marshaled as JSON.
func (c *Client) Call(
	ctx context.Context,
	method string,
	params ...any,
) (*Response, error) {
	req := c.newRequest(method, params)
	return c.exchange(ctx, req)
}

// CallAsync invokes a JSON-RPC method without waiting for its response.
//
// The response and error are classified as per Call(). The callbacks
// registered by the options are invoked before the returned future is
// resolved. It panics if the parameters can not be marshaled as JSON.
func (c *Client) CallAsync(
	ctx context.Context,
	method string,
	params []any,
	options ...AsyncOption,
) *Future {
	req := c.newRequest(method, params)

	return newFuture(
		func() (*Response, error) {
			return c.exchange(ctx, req)
		},
		options,
	)
}

// Invoke calls the JSON-RPC method that corresponds to a Go style method name,
// such as "getBlockHeader".
func (c *Client) Invoke(
	ctx context.Context,
	name string,
	params ...any,
) (*Response, error) {
	return c.Call(ctx, MethodName(name), params...)
}

// InvokeAsync calls the JSON-RPC method that corresponds to a Go style method
// name without waiting for its response. The name may include an "Async"
// suffix, such as "getBlockHeaderAsync".
func (c *Client) InvokeAsync(
	ctx context.Context,
	name string,
	params []any,
	options ...AsyncOption,
) *Future {
	return c.CallAsync(ctx, MethodName(name), params, options...)
}

// newRequest builds the request for a call.
func (c *Client) newRequest(method string, params []any) Request {
	req, err := NewRequest(method, params, c.wallet)
	if err != nil {
		panic(fmt.Sprintf(
			"unable to call JSON-RPC method (%s): %s",
			method,
			err,
		))
	}

	return req
}

// exchange sends req through the exchanger pipeline.
func (c *Client) exchange(ctx context.Context, req Request) (*Response, error) {
	res, err := c.exchanger.Call(ctx, req)
	err = classifyError(err)

	if err != nil {
		res = nil
	} else if res == nil {
		err = NewClientError(0, "exchanger produced neither a response nor an error", nil)
	}

	c.logger.LogCall(ctx, req, res, err)

	return res, err
}
