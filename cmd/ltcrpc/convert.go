package main

import (
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/dogmatiq/litecoind"
	"github.com/spf13/cobra"
)

func newToSatoshiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tosatoshi <ltc>",
		Short: "Convert an amount in LTC to satoshi",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount (%s)", args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), int64(litecoind.ToSatoshi(v)))
			return err
		},
	}
}

func newToLtcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toltc <satoshi>",
		Short: "Convert an amount in satoshi to LTC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount (%s)", args[0])
			}

			ltc := litecoind.ToLtc(btcutil.Amount(v))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), litecoind.ToFixed(ltc, 8))
			return err
		},
	}
}

func newToFixedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tofixed <value> <precision>",
		Short: "Format a number with a fixed number of decimal places, without rounding",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value (%s)", args[0])
			}

			p, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid precision (%s)", args[1])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), litecoind.ToFixed(v, int32(p)))
			return err
		},
	}
}
