package litecoind

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/dogmatiq/litecoind/internal/jsonx"
	"github.com/shopspring/decimal"
)

// Response is a successful JSON-RPC response from the daemon.
//
// It is immutable once constructed.
type Response struct {
	requestID string
	result    json.RawMessage
	value     any
}

// NewResponse returns a response containing the given raw JSON result.
func NewResponse(requestID string, result json.RawMessage) (*Response, error) {
	res := &Response{
		requestID: requestID,
		result:    append(json.RawMessage(nil), result...),
	}

	if jsonx.IsNull(res.result) {
		res.result = json.RawMessage(`null`)
		return res, nil
	}

	if err := json.Unmarshal(res.result, &res.value); err != nil {
		return nil, fmt.Errorf("unable to unmarshal result: %w", err)
	}

	return res, nil
}

// RequestID returns the ID of the request that produced this response.
func (r *Response) RequestID() string {
	return r.requestID
}

// Get returns the result, decoded into its generic Go representation.
//
// JSON objects are represented as map[string]any, arrays as []any and
// numbers as float64.
func (r *Response) Get() any {
	return r.value
}

// Result returns a copy of the raw JSON result.
func (r *Response) Result() json.RawMessage {
	return append(json.RawMessage(nil), r.result...)
}

// UnmarshalResult unmarshals the result into v.
func (r *Response) UnmarshalResult(v any, options ...UnmarshalOption) error {
	return jsonx.Unmarshal(r.result, v, options...)
}

// Amount returns the result as an amount of satoshi.
//
// The result must be a JSON number expressed in LTC, such as the result of the
// "getbalance" method. It is converted without passing through a floating-point
// representation.
func (r *Response) Amount() (btcutil.Amount, error) {
	d, err := decimal.NewFromString(string(r.result))
	if err != nil {
		return 0, fmt.Errorf("result is not a numeric amount: %w", err)
	}

	return btcutil.Amount(
		d.Shift(satoshiExponent).Round(0).IntPart(),
	), nil
}
