// Command ltcrpc invokes JSON-RPC methods on a Litecoin daemon.
package main

import (
	"os"
)

func main() {
	cmd := newRootCommand()

	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
