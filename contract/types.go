package main

import (
	"strings"

	"slot_machine/sdk"
)

// FractionalBase is the denominator of every fee and adjustment fraction:
// a fee of 500 is 0.5%.
const FractionalBase uint64 = 100_000

const (
	// storageByteCost is charged per stored byte, in milli-HIVE.
	storageByteCost uint64 = 1
	// minStorageBalance is the smallest deposit that registers an account.
	minStorageBalance uint64 = 250
)

// error categories, used as message prefixes
const (
	ERR_AUTH    = "ERR_AUTH"
	ERR_STATE   = "ERR_STATE"
	ERR_INPUT   = "ERR_INPUT"
	ERR_MISSING = "ERR_MISSING"
	ERR_STORAGE = "ERR_STORAGE"
)

const (
	errNotOwner        = ERR_AUTH + ": only owner can call this function"
	errNotPartnerOwner = ERR_AUTH + ": only partner game owner can call this function"
	errNotInitialized  = ERR_STATE + ": contract is not initialized"
	errInitialized     = ERR_STATE + ": contract is already initialized"
	errPaused          = ERR_STATE + ": panic mode is on, contract has been paused by owner"
	errGameBlocked     = ERR_STATE + ": partnered game is blocked"
	errNoGame          = ERR_MISSING + ": partnered game does not exist"
	errGameExists      = ERR_INPUT + ": partner already registered for this code"
	errNoAccount       = ERR_MISSING + ": account is not registered"
	errNoCredits       = ERR_INPUT + ": insufficient credits to play"
	errPoolTooSmall    = ERR_INPUT + ": insufficient house balance to cover bet"
	errWrongToken      = ERR_INPUT + ": token sent is not the registered token for game"
)

// Config is the global contract configuration.
type Config struct {
	Owner              string
	NftAccount         string
	Panic              bool
	PaymentAdjustment  uint64
	NftFee             uint64
	OwnerFee           uint64
	HouseFee           uint64
	MaxBet             uint64
	MinBet             uint64
	MinBalanceFraction uint64
	MaxOdds            uint8
	MinOdds            uint8
	PlayCount          uint64
}

// Denom names what a game is played in: a native asset drawn through
// intents, or a token contract that notifies us via on_token_transfer.
type Denom struct {
	Asset sdk.Asset
	Token string
}

const tokenPrefix = "token:"

func (d Denom) IsToken() bool { return d.Token != "" }

// Key is the stable string form used in state keys and payloads.
func (d Denom) Key() string {
	if d.IsToken() {
		return tokenPrefix + d.Token
	}
	return d.Asset.String()
}

func parseDenom(s string) (Denom, bool) {
	if strings.HasPrefix(s, tokenPrefix) {
		t := s[len(tokenPrefix):]
		return Denom{Token: t}, t != ""
	}
	if isValidAsset(s) {
		return Denom{Asset: sdk.Asset(s)}, true
	}
	return Denom{}, false
}

// PartneredGame is a tenant configuration running the slot machine under
// its own fee share, bet bounds and house pool.
type PartneredGame struct {
	Code              string
	PartnerOwner      string
	Blocked           bool
	Denom             Denom
	PartnerFee        uint64
	PartnerBalance    uint64
	SubHouseBalance   uint64
	PaymentAdjustment uint64
	HouseFee          uint64
	MaxBet            uint64
	MinBet            uint64
	MaxOdds           uint8
	MinOdds           uint8
}

// StorageAccount tracks what a user deposited for state rent and how
// much of it their rows currently lock.
type StorageAccount struct {
	Deposit   uint64
	BytesUsed uint64
	Rows      uint64
}

func (a *StorageAccount) locked() uint64 { return a.BytesUsed * storageByteCost }

func (a *StorageAccount) available() uint64 {
	if l := a.locked(); l < a.Deposit {
		return a.Deposit - l
	}
	return 0
}
