package main

import (
	"context"

	"github.com/dogmatiq/litecoind"
	"github.com/dogmatiq/litecoind/internal/version"
	"github.com/dogmatiq/litecoind/middleware/otelltc"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// options holds the values of the global flags.
type options struct {
	URL       string
	Wallet    string
	CA        string
	Cookie    string
	LogFormat string
	Verbose   bool
	Trace     bool
}

// app is the state shared by the subcommands.
type app struct {
	opts     options
	logger   *zap.Logger
	provider *tracesdk.TracerProvider
}

// newRootCommand returns the ltcrpc command.
func newRootCommand() *cobra.Command {
	a := &app{}

	env, envErr := loadEnvironment()

	cmd := &cobra.Command{
		Use:   "ltcrpc",
		Short: "Invoke JSON-RPC methods on a Litecoin daemon",
		Long: `ltcrpc sends JSON-RPC requests to a Litecoin daemon and prints the result.

The connection URL is read from the LITECOIND_URL environment variable, which
may be defined in a .env file in the working directory.

Examples:
  ltcrpc call getblockcount
  ltcrpc call getblockheader 12a765e31ffd4059bada1e25190f6e98c99d9714d334efa41a195a7e7e04bfe2
  ltcrpc --wallet testwallet.dat call getbalance
  ltcrpc tosatoshi 0.00005849`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}

			var err error
			a.logger, err = newLogger(cmd.ErrOrStderr(), a.opts.LogFormat, a.opts.Verbose)
			if err != nil {
				return err
			}

			if a.opts.Trace {
				exp, err := stdouttrace.New(
					stdouttrace.WithWriter(cmd.ErrOrStderr()),
					stdouttrace.WithPrettyPrint(),
				)
				if err != nil {
					return err
				}

				a.provider = tracesdk.NewTracerProvider(
					tracesdk.WithSyncer(exp),
				)
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger != nil {
				a.logger.Sync() // nolint:errcheck
			}

			if a.provider != nil {
				return a.provider.Shutdown(context.Background())
			}

			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.opts.URL, "url", env.URL, "connection URL of the daemon")
	flags.StringVarP(&a.opts.Wallet, "wallet", "w", env.Wallet, "name of the wallet to send calls to")
	flags.StringVar(&a.opts.CA, "ca", env.CA, "path to a PEM-encoded CA bundle used to verify the daemon's certificate")
	flags.StringVar(&a.opts.Cookie, "cookie", env.Cookie, "path to the daemon's authentication cookie")
	flags.StringVar(&a.opts.LogFormat, "log-format", env.LogFormat, "log format (console, json or logfmt)")
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "log every call")
	flags.BoolVar(&a.opts.Trace, "trace", false, "write OpenTelemetry spans to stderr")

	cmd.AddCommand(
		newCallCommand(a),
		newToSatoshiCommand(),
		newToLtcCommand(),
		newToFixedCommand(),
	)

	return cmd
}

// client returns a client configured by the global flags.
func (a *app) client() (*litecoind.Client, error) {
	options := []litecoind.Option{
		litecoind.WithLogger(a.logger),
	}

	if a.opts.CA != "" {
		options = append(options, litecoind.WithCA(a.opts.CA))
	}

	if a.opts.Cookie != "" {
		options = append(options, litecoind.WithCookieFile(a.opts.Cookie))
	}

	if a.provider != nil {
		options = append(options, otelltc.WithTracing(a.provider, "ltcrpc"))
	}

	c, err := litecoind.New(a.opts.URL, options...)
	if err != nil {
		return nil, err
	}

	return c.Wallet(a.opts.Wallet), nil
}
