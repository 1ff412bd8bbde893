package litecoind_test

import (
	"github.com/btcsuite/btcd/btcutil"
	. "github.com/dogmatiq/litecoind"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("func ToSatoshi()", func() {
	DescribeTable(
		"it converts LTC to satoshi",
		func(ltc float64, sat btcutil.Amount) {
			Expect(ToSatoshi(ltc)).To(Equal(sat))
		},
		Entry("fractional amount", 0.00005849, btcutil.Amount(5849)),
		Entry("whole amount", 1.0, btcutil.Amount(100000000)),
		Entry("zero", 0.0, btcutil.Amount(0)),
		Entry("negative amount", -0.5, btcutil.Amount(-50000000)),
		Entry("amount with representation error", 0.1+0.2, btcutil.Amount(30000000)),
		Entry("sub-satoshi amount is rounded", 0.000000016, btcutil.Amount(2)),
	)
})

var _ = Describe("func ToLtc()", func() {
	DescribeTable(
		"it converts satoshi to LTC",
		func(sat btcutil.Amount, ltc float64) {
			Expect(ToLtc(sat)).To(Equal(ltc))
		},
		Entry("fractional amount", btcutil.Amount(5849), 0.00005849),
		Entry("whole amount", btcutil.Amount(100000000), 1.0),
		Entry("zero", btcutil.Amount(0), 0.0),
	)

	It("is the inverse of ToSatoshi()", func() {
		Expect(ToSatoshi(ToLtc(5849))).To(Equal(btcutil.Amount(5849)))
	})
})

var _ = Describe("func ToFixed()", func() {
	DescribeTable(
		"it formats the value with a fixed number of decimal places",
		func(v float64, precision int32, expect string) {
			Expect(ToFixed(v, precision)).To(Equal(expect))
		},
		Entry("zero places", 1.123456789, int32(0), "1"),
		Entry("two places", 1.123456789, int32(2), "1.12"),
		Entry("four places", 1.123456789, int32(4), "1.1234"),
		Entry("eight places", 1.123456789, int32(8), "1.12345678"),
		Entry("truncates instead of rounding", 1.999, int32(2), "1.99"),
		Entry("pads with zeroes", 0.5, int32(4), "0.5000"),
		Entry("negative precision", 12.75, int32(-2), "12"),
	)
})
