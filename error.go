package litecoind

import (
	"encoding/json"
	"fmt"

	"github.com/dogmatiq/litecoind/internal/jsonx"
)

// ClientError is a Go error that describes a failure to obtain a JSON-RPC
// response from the daemon.
//
// It covers invalid client configuration, network failures, and HTTP responses
// that do not contain a JSON-RPC error object.
type ClientError struct {
	message string
	code    int
	cause   error
}

// NewClientError returns a new client error.
//
// code is the HTTP status code of the response that caused the error, or 0 if
// no response was received.
func NewClientError(code int, message string, cause error) *ClientError {
	return &ClientError{
		message: message,
		code:    code,
		cause:   cause,
	}
}

// Code returns the HTTP status code associated with the error, or 0 if there
// was no HTTP response.
func (e *ClientError) Code() int {
	return e.code
}

// Message returns the error message.
func (e *ClientError) Message() string {
	return e.message
}

// Error returns a description of the error.
func (e *ClientError) Error() string {
	if e.code == 0 {
		return e.message
	}

	return fmt.Sprintf("[HTTP %d] %s", e.code, e.message)
}

// Unwrap returns the cause of e, if known.
func (e *ClientError) Unwrap() error {
	return e.cause
}

// LitecoindError is a Go error that describes a JSON-RPC error object reported
// by the daemon.
type LitecoindError struct {
	code    ErrorCode
	message string
	data    json.RawMessage
}

// NewLitecoindError returns a new daemon error with the given code and
// message.
func NewLitecoindError(code ErrorCode, message string) *LitecoindError {
	return &LitecoindError{
		code:    code,
		message: message,
	}
}

// newLitecoindErrorFromInfo returns a daemon error built from the error object
// in a JSON-RPC response.
func newLitecoindErrorFromInfo(info ErrorInfo) *LitecoindError {
	e := NewLitecoindError(info.Code, info.Message)

	if !jsonx.IsNull(info.Data) {
		e.data = append(json.RawMessage(nil), info.Data...)
	}

	return e
}

// Code returns the daemon's error code.
func (e *LitecoindError) Code() ErrorCode {
	return e.code
}

// Message returns the daemon's error message, verbatim.
func (e *LitecoindError) Message() string {
	return e.message
}

// UnmarshalData unmarshals the error's additional data into v.
//
// ok is false if the daemon did not supply any additional data.
func (e *LitecoindError) UnmarshalData(v any, options ...UnmarshalOption) (ok bool, _ error) {
	if e.data == nil {
		return false, nil
	}

	return true, jsonx.Unmarshal(e.data, v, options...)
}

// Error returns a description of the error.
func (e *LitecoindError) Error() string {
	return describeError(e.code, e.message)
}

// ErrorInfo describes a JSON-RPC error object as it appears in a response. It
// is not a Go error; see LitecoindError.
type ErrorInfo struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e ErrorInfo) String() string {
	return describeError(e.Code, e.Message)
}
