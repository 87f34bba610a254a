package main

import (
	"math/big"

	"github.com/shopspring/decimal"

	"slot_machine/sdk"
)

// Amounts on the ledger are integer milli-units (3 decimals), the
// precision of HIVE and HBD.
const amountDecimals int32 = 3

// TransferAllow is the parsed form of a transfer.allow intent.
type TransferAllow struct {
	Limit uint64
	Token sdk.Asset
}

var validAssets = []string{sdk.AssetHbd.String(), sdk.AssetHive.String()}

func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// parseLimit converts a decimal limit like "1.5" into milli-units.
// More than three fractional digits is rejected rather than rounded.
func parseLimit(s string) (uint64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return 0, false
	}
	scaled := d.Shift(amountDecimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, false
	}
	if !scaled.BigInt().IsUint64() {
		return 0, false
	}
	return scaled.BigInt().Uint64(), true
}

// formatAmount renders milli-units as a fixed 3-decimal string for events.
func formatAmount(v uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), -amountDecimals).StringFixed(amountDecimals)
}

// GetFirstTransferAllow scans intents for one transfer.allow instruction
// and returns its parsed token and limit. Nil if missing.
func GetFirstTransferAllow(intents []sdk.Intent) *TransferAllow {
	for _, intent := range intents {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			require(isValidAsset(token), ERR_INPUT+": invalid intent token")
			limit, ok := parseLimit(intent.Args["limit"])
			require(ok, ERR_INPUT+": invalid intent limit")
			return &TransferAllow{
				Limit: limit,
				Token: sdk.Asset(token),
			}
		}
	}
	return nil
}

// requireAttached returns the amount the caller attached in asset.
func requireAttached(asset sdk.Asset) uint64 {
	ta := GetFirstTransferAllow(sdk.GetEnv().Intents)
	require(ta != nil, ERR_INPUT+": transfer.allow intent missing")
	require(ta.Token == asset, ERR_INPUT+": intent token must be "+asset.String())
	require(ta.Limit > 0, ERR_INPUT+": attached amount must be positive")
	return ta.Limit
}
