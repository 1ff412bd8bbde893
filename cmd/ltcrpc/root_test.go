package main

import (
	"bytes"
	"context"
	"errors"

	"github.com/dogmatiq/litecoind"
	"github.com/dogmatiq/litecoind/litecoindtest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("the ltcrpc command", func() {
	var (
		server *litecoindtest.Server
		stdout bytes.Buffer
		stderr bytes.Buffer
	)

	BeforeEach(func() {
		stdout.Reset()
		stderr.Reset()

		server = litecoindtest.NewServer(
			litecoindtest.WithResult("getblockcount", 2500000),
			litecoindtest.WithError("getrawtransaction", litecoind.InvalidAddressOrKeyCode, "No information available about transaction"),
			litecoindtest.WithRoute(
				"getbalance",
				func(_ context.Context, call litecoindtest.Call) (any, error) {
					if call.Wallet == "" {
						return nil, litecoind.NewLitecoindError(litecoind.WalletNotSpecifiedCode, "Wallet file not specified")
					}

					return 0.15, nil
				},
			),
		)
	})

	AfterEach(func() {
		server.Close()
	})

	run := func(args ...string) error {
		cmd := newRootCommand()
		cmd.SetArgs(args)
		cmd.SetOut(&stdout)
		cmd.SetErr(&stderr)
		return cmd.Execute()
	}

	Describe("call", func() {
		It("prints the result", func() {
			err := run("--url", server.URL(), "call", "getblockcount")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stdout.String()).To(Equal("2500000\n"))
		})

		It("sends the call to the selected wallet", func() {
			err := run("--url", server.URL(), "--wallet", "testwallet.dat", "call", "getbalance")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stdout.String()).To(Equal("0.15\n"))

			reqs := server.Requests()
			Expect(reqs).To(HaveLen(1))
			Expect(reqs[0].Path).To(Equal("/wallet/testwallet.dat"))
		})

		It("parses the parameters", func() {
			err := run("--url", server.URL(), "call", "getrawtransaction", "<txid>", "true")

			var daemonErr *litecoind.LitecoindError
			Expect(errors.As(err, &daemonErr)).To(BeTrue())

			reqs := server.Requests()
			Expect(reqs).To(HaveLen(1))
			Expect(reqs[0].Call.Parameters).To(MatchJSON(`["<txid>", true]`))
		})

		It("logs calls when verbose", func() {
			err := run("--url", server.URL(), "--verbose", "--log-format", "logfmt", "call", "getblockcount")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stderr.String()).To(ContainSubstring(`msg="call getblockcount"`))
		})

		It("writes spans when tracing", func() {
			err := run("--url", server.URL(), "--trace", "call", "getblockcount")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stderr.String()).To(ContainSubstring(`"Name": "ltcrpc/getblockcount"`))
		})

		It("rejects an unsupported log format", func() {
			err := run("--url", server.URL(), "--log-format", "xml", "call", "getblockcount")
			Expect(err).To(MatchError("unsupported log format (xml), expected console, json or logfmt"))
		})

		It("returns a client error if the URL is invalid", func() {
			err := run("--url", "cookies!", "call", "getblockcount")
			Expect(err).To(MatchError("Invalid url"))
		})
	})

	DescribeTable(
		"amount conversion",
		func(expect string, args ...string) {
			err := run(args...)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(stdout.String()).To(Equal(expect + "\n"))
		},
		Entry("tosatoshi", "5849", "tosatoshi", "0.00005849"),
		Entry("toltc", "0.00005849", "toltc", "5849"),
		Entry("tofixed", "1.1234", "tofixed", "1.123456789", "4"),
	)
})

var _ = Describe("func printError()", func() {
	DescribeTable(
		"it describes the error",
		func(err error, expect string) {
			var w bytes.Buffer
			printError(&w, err)
			Expect(w.String()).To(Equal(expect))
		},
		Entry(
			"daemon error",
			litecoind.NewLitecoindError(litecoind.InvalidAddressOrKeyCode, "No information available about transaction"),
			"daemon error [-5 invalid address or key]: No information available about transaction\n",
		),
		Entry(
			"client error with HTTP status",
			litecoind.NewClientError(503, "Work queue depth exceeded", nil),
			"client error [HTTP 503]: Work queue depth exceeded\n",
		),
		Entry(
			"client error without HTTP status",
			litecoind.NewClientError(0, "test", nil),
			"client error: test\n",
		),
		Entry(
			"other error",
			errors.New("<error>"),
			"error: <error>\n",
		),
	)
})
