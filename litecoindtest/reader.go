package litecoindtest

import (
	"io"
	"net/http"
)

// maxBodySize is the largest request body the fake daemon accepts.
const maxBodySize = 1 << 20

// readBody reads the body of an HTTP request.
func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r.Body, maxBodySize))
}
