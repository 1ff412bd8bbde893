package litecoind

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// CallLogger is an interface for logging JSON-RPC calls made by a Client.
type CallLogger interface {
	// LogCall logs about a call request and its outcome.
	//
	// Exactly one of res and err is non-nil.
	LogCall(ctx context.Context, req Request, res *Response, err error)
}

// writeMethod formats a JSON-RPC method name for display and writes it to w.
func writeMethod(w *strings.Builder, m string) {
	if m == "" || !isAlphaNumeric(m) {
		fmt.Fprintf(w, "%#v", m)
	} else {
		w.WriteString(m)
	}
}

// isAlphaNumeric returns true if s consists of only letters and digits.
func isAlphaNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}

	return true
}
