package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dogmatiq/litecoind"
	"github.com/fatih/color"
)

var (
	errorLabel  = color.New(color.FgRed, color.Bold)
	detailLabel = color.New(color.FgYellow)
)

// printError writes a description of err to w, highlighting the kind of error
// and its code.
func printError(w io.Writer, err error) {
	var (
		clientErr *litecoind.ClientError
		daemonErr *litecoind.LitecoindError
	)

	switch {
	case errors.As(err, &daemonErr):
		errorLabel.Fprint(w, "daemon error")
		detailLabel.Fprintf(w, " [%d %s]", daemonErr.Code(), daemonErr.Code())
		fmt.Fprintf(w, ": %s\n", daemonErr.Message())
	case errors.As(err, &clientErr):
		errorLabel.Fprint(w, "client error")
		if clientErr.Code() != 0 {
			detailLabel.Fprintf(w, " [HTTP %d]", clientErr.Code())
		}
		fmt.Fprintf(w, ": %s\n", clientErr.Message())
	default:
		errorLabel.Fprint(w, "error")
		fmt.Fprintf(w, ": %s\n", err)
	}
}
