package litecoind

import (
	"github.com/dogmatiq/litecoind/internal/jsonx"
)

// UnmarshalOption is an option that changes the behavior of JSON unmarshaling.
type UnmarshalOption = jsonx.UnmarshalOption

// AllowUnknownFields is an UnmarshalOption that controls whether results and
// error data may contain unknown fields.
//
// Unknown fields are disallowed by default.
func AllowUnknownFields(allow bool) UnmarshalOption {
	return func(opts *jsonx.UnmarshalOptions) {
		opts.AllowUnknownFields = allow
	}
}

// UseNumber is an UnmarshalOption that causes numbers to be unmarshaled into
// interface values as json.Number instead of float64.
func UseNumber(use bool) UnmarshalOption {
	return func(opts *jsonx.UnmarshalOptions) {
		opts.UseNumber = use
	}
}
