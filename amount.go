package litecoind

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// SatoshiPerLitecoin is the number of satoshi in one LTC.
const SatoshiPerLitecoin = 1e8

// satoshiExponent is the decimal exponent that converts LTC to satoshi.
const satoshiExponent = 8

// ToSatoshi converts an amount in LTC to satoshi, rounding to the nearest
// satoshi.
func ToSatoshi(ltc float64) btcutil.Amount {
	return btcutil.Amount(
		decimal.NewFromFloat(ltc).
			Shift(satoshiExponent).
			Round(0).
			IntPart(),
	)
}

// ToLtc converts an amount in satoshi to LTC.
func ToLtc(sat btcutil.Amount) float64 {
	return sat.ToUnit(btcutil.AmountBTC)
}

// ToFixed formats v with exactly precision digits after the decimal point.
//
// Excess digits are truncated, not rounded. A precision of zero (or less)
// produces an integer with no decimal point.
func ToFixed(v float64, precision int32) string {
	if precision < 0 {
		precision = 0
	}

	return decimal.NewFromFloat(v).
		Truncate(precision).
		StringFixed(precision)
}
