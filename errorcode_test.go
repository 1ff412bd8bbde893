package litecoind_test

import (
	. "github.com/dogmatiq/litecoind"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("type ErrorCode", func() {
	Describe("func String()", func() {
		DescribeTable(
			"it returns a description of the error code",
			func(c ErrorCode, d string) {
				Expect(c.String()).To(Equal(d))
			},
			Entry("parse error", ParseErrorCode, "parse error"),
			Entry("invalid request", InvalidRequestCode, "invalid request"),
			Entry("method not found", MethodNotFoundCode, "method not found"),
			Entry("invalid parameters", InvalidParametersCode, "invalid parameters"),
			Entry("internal server error", InternalErrorCode, "internal server error"),
			Entry("invalid address or key", InvalidAddressOrKeyCode, "invalid address or key"),
			Entry("insufficient funds", WalletInsufficientFundsCode, "insufficient funds"),
			Entry("wallet not found", WalletNotFoundCode, "wallet not found"),
			Entry("undefined reserved code", ErrorCode(-32000), "undefined reserved error"),
			Entry("unknown code", ErrorCode(100), "unknown error"),
		)
	})

	Describe("func IsReserved()", func() {
		DescribeTable(
			"it returns true if the code is in the reserved range",
			func(c ErrorCode, expect bool) {
				Expect(c.IsReserved()).To(Equal(expect))
			},
			Entry("lower bound", ErrorCode(-32768), true),
			Entry("upper bound", ErrorCode(-32000), true),
			Entry("pre-defined code", ParseErrorCode, true),
			Entry("below range", ErrorCode(-32769), false),
			Entry("above range", ErrorCode(-31999), false),
			Entry("daemon code", MiscErrorCode, false),
		)
	})

	Describe("func IsKnown()", func() {
		It("returns true for codes defined by the package", func() {
			Expect(WalletUnlockNeededCode.IsKnown()).To(BeTrue())
			Expect(VerifyRejectedCode.IsKnown()).To(BeTrue())
		})

		It("returns false for other codes", func() {
			Expect(ErrorCode(-1000).IsKnown()).To(BeFalse())
		})
	})
})
