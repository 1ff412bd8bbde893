package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newCallCommand returns the "call" command.
func newCallCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <method> [params...]",
		Short: "Call a JSON-RPC method",
		Long: `Call a JSON-RPC method and print its result as JSON.

Each parameter that is valid JSON is sent as the value it represents, anything
else is sent as a string. Use quotes to force a string, for example '"10"'.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}

			res, err := client.Call(cmd.Context(), args[0], params...)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(res.Get(), "", "  ")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
