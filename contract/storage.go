package main

import (
	"math"

	"slot_machine/sdk"
)

//
// Storage rent. Every row a user causes to exist (their credit rows) is
// billed per byte against a HIVE deposit they make up front. Rows are
// released, and the bytes refunded to "available", when they are deleted.
//

// StorageBalance is the JSON view of a storage account.
type StorageBalance struct {
	Total     string `json:"total"`
	Available string `json:"available"`
}

type StorageBalanceBounds struct {
	Min string  `json:"min"`
	Max *string `json:"max"`
}

func storageView(a *StorageAccount) StorageBalance {
	return StorageBalance{
		Total:     UInt64ToString(a.Deposit),
		Available: UInt64ToString(a.available()),
	}
}

// chargeStorage applies a byte delta to the account and aborts when the
// deposit does not cover the new usage.
func chargeStorage(a *StorageAccount, delta int64) {
	if delta >= 0 {
		a.BytesUsed += uint64(delta)
		if a.locked() > a.Deposit {
			sdk.Abort(ERR_STORAGE + ": insufficient storage deposit, needs " + formatAmount(a.locked()-a.Deposit) + " more")
		}
		return
	}
	freed := uint64(-delta)
	if freed > a.BytesUsed {
		freed = a.BytesUsed
	}
	a.BytesUsed -= freed
}

// setCredits writes a user's credit row and bills the byte change to their
// storage account. A zero balance deletes the row.
func setCredits(code, account string, amount uint64) {
	acc, ok := loadStorageAccount(account)
	require(ok, errNoAccount)
	key := creditsKey(code, account)
	existed := sdk.StateGetObject(key) != nil

	var delta int64
	if amount == 0 {
		delta = deleteTracked(key)
		if existed && acc.Rows > 0 {
			acc.Rows--
		}
	} else {
		delta = setTracked(key, encodeCredits(amount))
		if !existed {
			acc.Rows++
		}
	}
	chargeStorage(acc, delta)
	saveStorageAccount(account, acc)
}

type storageDepositArgs struct {
	Account          string
	RegistrationOnly bool
}

func parseStorageDepositArgs(payload *string) storageDepositArgs {
	in := payloadOrEmpty(payload)
	args := storageDepositArgs{Account: nextField(&in)}
	flag := nextField(&in)
	require(in == "", "too many arguments")
	require(flag == "" || flag == "true" || flag == "false", ERR_INPUT+": registrationOnly must be true or false")
	args.RegistrationOnly = flag == "true"
	return args
}

// storageDepositImpl registers or tops up a storage account. The caller
// pays from its transfer.allow intent, but only what is needed is drawn:
// a registration-only call for a fresh account draws the minimum, and
// for an existing account draws nothing and needs no intent.
func storageDepositImpl(payload *string) *string {
	args := parseStorageDepositArgs(payload)
	account := args.Account
	if account == "" {
		account = sender()
	}

	acc, registered := loadStorageAccount(account)

	var draw uint64
	switch {
	case args.RegistrationOnly && registered:
		draw = 0
	case args.RegistrationOnly:
		attached := requireAttached(sdk.AssetHive)
		require(attached >= minStorageBalance, ERR_STORAGE+": must attach at least the minimum deposit of "+formatAmount(minStorageBalance))
		draw = minStorageBalance
	default:
		attached := requireAttached(sdk.AssetHive)
		require(registered || attached >= minStorageBalance, ERR_STORAGE+": must attach at least the minimum deposit of "+formatAmount(minStorageBalance))
		draw = attached
	}

	if !registered {
		acc = &StorageAccount{}
	}
	if draw > 0 {
		require(draw <= math.MaxInt64, ERR_INPUT+": amount too large")
		sdk.HiveDraw(int64(draw), sdk.AssetHive)
		acc.Deposit += draw
	}
	saveStorageAccount(account, acc)
	EmitStorageChanged(account, acc.Deposit, acc.available())

	out := ToJSON(storageView(acc), "storage balance")
	return &out
}

// storageWithdrawImpl returns unlocked deposit to the caller. An empty
// payload withdraws everything available.
func storageWithdrawImpl(payload *string) *string {
	account := sender()
	acc, ok := loadStorageAccount(account)
	require(ok, errNoAccount)

	available := acc.available()
	require(available > 0, ERR_STORAGE+": no funds available for withdraw")

	amount := available
	if in := payloadOrEmpty(payload); in != "" {
		amount = parseAmount(in, "amount")
	}
	require(amount > 0, ERR_INPUT+": amount must be positive")
	require(amount <= available, ERR_STORAGE+": only "+formatAmount(available)+" available for withdraw")

	acc.Deposit -= amount
	saveStorageAccount(account, acc)
	sendFunds(account, Denom{Asset: sdk.AssetHive}, amount, "storage withdraw")
	EmitStorageChanged(account, acc.Deposit, acc.available())

	out := ToJSON(storageView(acc), "storage balance")
	return &out
}

// storageUnregisterImpl closes the caller's storage account and refunds
// the deposit. It refuses while the account still holds credits anywhere.
func storageUnregisterImpl(payload *string) *string {
	require(payloadOrEmpty(payload) == "", "too many arguments")
	account := sender()
	acc, ok := loadStorageAccount(account)
	if !ok {
		out := "false"
		return &out
	}
	require(acc.Rows == 0, ERR_STORAGE+": cannot unregister storage while user still has balances to withdraw")

	sdk.StateDeleteObject(storageKey(account))
	sendFunds(account, Denom{Asset: sdk.AssetHive}, acc.Deposit, "storage unregister")
	EmitStorageChanged(account, 0, 0)

	out := "true"
	return &out
}

func storageBalanceOfImpl(payload *string) *string {
	account := payloadOrEmpty(payload)
	require(account != "", ERR_INPUT+": account is mandatory")
	acc, ok := loadStorageAccount(account)
	out := "null"
	if ok {
		out = ToJSON(storageView(acc), "storage balance")
	}
	return &out
}

func storageBalanceBoundsImpl() *string {
	out := ToJSON(StorageBalanceBounds{Min: UInt64ToString(minStorageBalance)}, "storage bounds")
	return &out
}
