package jsonx

import (
	"bytes"
	"encoding/json"
	"io"
)

// Decode unmarshals JSON content from r into v.
func Decode[O ~UnmarshalOption](
	r io.Reader,
	v any,
	options ...O,
) error {
	var opts UnmarshalOptions
	for _, fn := range options {
		fn(&opts)
	}

	dec := json.NewDecoder(r)
	if !opts.AllowUnknownFields {
		dec.DisallowUnknownFields()
	}

	if opts.UseNumber {
		dec.UseNumber()
	}

	return dec.Decode(v)
}

// Unmarshal unmarshals JSON content from data into v.
func Unmarshal[O ~UnmarshalOption](
	data []byte,
	v any,
	options ...O,
) error {
	return Decode(
		bytes.NewReader(data),
		v,
		options...,
	)
}

// IsNull returns true if data is empty or is the JSON null literal.
func IsNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, []byte(`null`))
}

// UnmarshalOptions is a set of options that control how JSON is unmarshaled.
type UnmarshalOptions struct {
	AllowUnknownFields bool
	UseNumber          bool
}

// UnmarshalOption is a function that changes the behavior of JSON unmarshaling.
type UnmarshalOption = func(*UnmarshalOptions)
