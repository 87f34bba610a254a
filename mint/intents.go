package main

import (
	"math/big"

	"github.com/shopspring/decimal"

	"slot_machine/sdk"
)

const amountDecimals int32 = 3

// attachedAmount returns the transfer.allow limit for asset in
// milli-units, or zero when the caller attached nothing in that asset.
func attachedAmount(asset sdk.Asset) uint64 {
	for _, intent := range sdk.GetEnv().Intents {
		if intent.Type != "transfer.allow" || intent.Args["token"] != asset.String() {
			continue
		}
		d, err := decimal.NewFromString(intent.Args["limit"])
		abortOnError(err, ERR_INPUT+": invalid intent limit")
		require(!d.IsNegative(), ERR_INPUT+": invalid intent limit")
		scaled := d.Shift(amountDecimals)
		require(scaled.Equal(scaled.Truncate(0)), ERR_INPUT+": intent limit has more than 3 decimals")
		require(scaled.BigInt().IsUint64(), ERR_INPUT+": intent limit too large")
		return scaled.BigInt().Uint64()
	}
	return 0
}

func formatAmount(v uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), -amountDecimals).StringFixed(amountDecimals)
}
