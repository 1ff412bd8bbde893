package litecoind

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dogmatiq/litecoind/internal/jsonx"
	"github.com/dogmatiq/litecoind/internal/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// mediaType is the MIME media-type for JSON-RPC requests and responses when
// delivered over HTTP.
const mediaType = "application/json"

// HTTPExchanger is an Exchanger that sends each request to the daemon as an
// HTTP POST request.
type HTTPExchanger struct {
	// Client is the HTTP client used to make requests. If it is nil,
	// http.DefaultClient is used.
	Client *http.Client

	// BaseURL is the URL of the daemon's root endpoint.
	BaseURL *url.URL

	// Credentials returns the basic-auth credentials to send with each
	// request. If it is nil, or returns an empty username and password, no
	// credentials are sent.
	Credentials func() (username, password string, err error)
}

var _ Exchanger = (*HTTPExchanger)(nil)

// Call sends req to the daemon and returns its response.
//
// The returned error is always a *ClientError or a *LitecoindError.
func (x *HTTPExchanger) Call(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		// CODE COVERAGE: This should never fail as the parameters have already
		// been marshaled by NewRequest().
		panic(err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		x.Endpoint(req.Wallet).String(),
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, NewClientError(0, err.Error(), err)
	}

	httpReq.Header.Set("Content-Type", mediaType)
	httpReq.Header.Set("User-Agent", version.UserAgent)

	if x.Credentials != nil {
		username, password, err := x.Credentials()
		if err != nil {
			return nil, NewClientError(
				0,
				fmt.Sprintf("unable to load credentials: %s", err),
				err,
			)
		}

		if username != "" || password != "" {
			httpReq.SetBasicAuth(username, password)
		}
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	hc := x.Client
	if hc == nil {
		hc = http.DefaultClient
	}

	httpRes, err := hc.Do(httpReq)
	if err != nil {
		return nil, NewClientError(0, transportErrorMessage(err), err)
	}
	defer httpRes.Body.Close()

	data, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, NewClientError(
			httpRes.StatusCode,
			fmt.Sprintf("unable to read response body: %s", err),
			err,
		)
	}

	return unmarshalResponse(req, httpRes.StatusCode, data)
}

// Endpoint returns the URL that requests for the given wallet are sent to.
func (x *HTTPExchanger) Endpoint(wallet string) *url.URL {
	u := *x.BaseURL
	u.User = nil

	path := strings.TrimSuffix(u.Path, "/")
	rawPath := strings.TrimSuffix(x.BaseURL.EscapedPath(), "/")

	if wallet == "" {
		u.Path = path + "/"
		u.RawPath = ""
		return &u
	}

	u.Path = path + "/wallet/" + wallet
	u.RawPath = rawPath + "/wallet/" + url.PathEscape(wallet)

	return &u
}

// unmarshalResponse classifies the HTTP response to req.
func unmarshalResponse(req Request, status int, body []byte) (*Response, error) {
	env, ok := unmarshalEnvelope(body)

	if ok && env.Error != nil {
		return nil, newLitecoindErrorFromInfo(*env.Error)
	}

	if ok && env.HasResult && isSuccessStatus(status) {
		res, err := NewResponse(req.ID, env.Result)
		if err != nil {
			return nil, NewClientError(status, err.Error(), err)
		}

		return res, nil
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = statusMessage(req, status)
	}

	return nil, NewClientError(status, message, nil)
}

// envelope is the parsed form of a JSON-RPC response body.
type envelope struct {
	Result    json.RawMessage
	HasResult bool
	Error     *ErrorInfo
}

// unmarshalEnvelope parses a JSON-RPC response body.
//
// ok is false if the body is not a JSON object with a "result" or "error"
// field, or if the error is not a well-formed JSON-RPC error object.
func unmarshalEnvelope(body []byte) (env envelope, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return envelope{}, false
	}

	env.Result, env.HasResult = fields["result"]
	rawErr, hasErr := fields["error"]

	if !env.HasResult && !hasErr {
		return envelope{}, false
	}

	if hasErr && !jsonx.IsNull(rawErr) {
		var info ErrorInfo
		if err := jsonx.Unmarshal(rawErr, &info, AllowUnknownFields(true)); err != nil {
			return envelope{}, false
		}

		env.Error = &info
	}

	return env, true
}

// transportErrorMessage returns the message of the error that prevented an
// HTTP response from being received, without the request method and URL that
// net/http adds.
func transportErrorMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err.Error()
	}

	return err.Error()
}

// isSuccessStatus returns true if status is a 2xx HTTP status code.
func isSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}

// statusMessage returns the message used for a *ClientError when the daemon
// responds with an empty body.
func statusMessage(req Request, status int) string {
	label := "Unexpected response"

	switch {
	case status >= 500:
		label = "Server error"
	case status >= 400:
		label = "Client error"
	}

	return fmt.Sprintf(
		"%s: POST %s resulted in a %d %s response",
		label,
		req.Path(),
		status,
		http.StatusText(status),
	)
}
