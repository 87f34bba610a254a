package main

import (
	"math"

	"slot_machine/sdk"
)

type tokenTransferArgs struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
	Memo   string `json:"memo,omitempty"`
}

// callResult is the response envelope token contracts answer with.
type callResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// sendFunds pays amount out of the contract. Native assets move
// synchronously and abort the call on failure. A token transfer reports
// its outcome in the result payload; false means the transfer did not
// happen and the caller must restore whatever it debited.
func sendFunds(to string, d Denom, amount uint64, memo string) bool {
	if amount == 0 {
		return true
	}
	if !d.IsToken() {
		require(amount <= math.MaxInt64, ERR_INPUT+": amount too large")
		sdk.HiveTransfer(sdk.Address(to), int64(amount), d.Asset)
		return true
	}
	payload := ToJSON(tokenTransferArgs{
		To:     to,
		Amount: UInt64ToString(amount),
		Memo:   memo,
	}, "token transfer")
	res := sdk.ContractCall(d.Token, "transfer", payload, nil)
	if res == nil {
		return false
	}
	r, err := FromJSON[callResult](*res)
	return err == nil && r.Success
}

// drawAttached pulls the attached native amount into the contract.
func drawAttached(asset sdk.Asset) uint64 {
	amt := requireAttached(asset)
	require(amt <= math.MaxInt64, ERR_INPUT+": amount too large")
	sdk.HiveDraw(int64(amt), asset)
	return amt
}
