package litecoind

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// JSONRPCVersion is the version that appears in the "jsonrpc" field of
// requests sent to the daemon.
//
// The daemon treats "1.0" requests using its legacy behavior, under which
// errors are reported with a non-2xx HTTP status code.
const JSONRPCVersion = "1.0"

// Named is a set of keyed parameters.
//
// When a Named value is the sole parameter to a call it is sent as a JSON
// object instead of a positional array.
type Named map[string]any

// Request encapsulates a JSON-RPC request.
type Request struct {
	// Version is the JSON-RPC version.
	Version string `json:"jsonrpc"`

	// ID uniquely identifies the request.
	ID string `json:"id"`

	// Method is the name of the RPC method to be invoked.
	Method string `json:"method"`

	// Parameters holds the parameter values to be used during the invocation of
	// the method. It is always a JSON array or object.
	Parameters json.RawMessage `json:"params"`

	// Wallet is the name of the wallet that the request applies to. If it is
	// empty the request is sent to the daemon's root endpoint.
	Wallet string `json:"-"`
}

// NewRequest returns a new request for the given method.
//
// If params consists of a single Named value, the parameters are encoded as a
// JSON object, otherwise they are encoded as a positional JSON array.
func NewRequest(
	method string,
	params []any,
	wallet string,
) (Request, error) {
	var (
		data []byte
		err  error
	)

	if len(params) == 1 {
		if named, ok := params[0].(Named); ok {
			if named == nil {
				named = Named{}
			}
			data, err = json.Marshal(named)
		}
	}

	if data == nil && err == nil {
		if params == nil {
			params = []any{}
		}
		data, err = json.Marshal(params)
	}

	if err != nil {
		return Request{}, fmt.Errorf("unable to marshal request parameters: %w", err)
	}

	return Request{
		Version:    JSONRPCVersion,
		ID:         uuid.NewString(),
		Method:     method,
		Parameters: data,
		Wallet:     wallet,
	}, nil
}

// Path returns the HTTP path of the endpoint that the request is sent to.
func (r Request) Path() string {
	if r.Wallet == "" {
		return "/"
	}

	return "/wallet/" + r.Wallet
}

// MethodName returns the JSON-RPC method name that corresponds to the given Go
// style method name.
//
// It lower-cases the name and removes any "Async" suffix, such that
// "getBlockHeader" and "getBlockHeaderAsync" both map to "getblockheader".
func MethodName(name string) string {
	return strings.ToLower(
		strings.TrimSuffix(name, "Async"),
	)
}
