package main

import (
	"encoding/json"

	"github.com/dogmatiq/litecoind/internal/jsonx"
)

// parseParams converts command-line arguments to JSON-RPC parameters.
//
// Each argument that is valid JSON is passed as the value it represents, so
// "10", "true" and "[1,2]" are a number, a boolean and an array. Anything else
// is passed as a string.
func parseParams(args []string) ([]any, error) {
	params := make([]any, 0, len(args))

	for _, arg := range args {
		var v any
		if err := json.Unmarshal([]byte(arg), &v); err != nil {
			if !jsonx.IsParseError(err) {
				return nil, err
			}

			v = arg
		}

		params = append(params, v)
	}

	return params, nil
}
