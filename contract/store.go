package main

import (
	"strconv"
	"strings"

	"slot_machine/sdk"
)

// ---------- Keys ----------

const configKey = "cfg"

func gameKey(code string) string                  { return "pg_" + code }
func creditsKey(code string, account string) string { return "cr_" + code + "_" + account }
func ownerPoolKey(d Denom) string                 { return "pool_owner_" + d.Key() }
func nftPoolKey(d Denom) string                   { return "pool_nft_" + d.Key() }
func storageKey(account string) string            { return "st_" + account }

// ---------- Byte-tracking store ----------

// setTracked writes key and returns the change in stored bytes (key plus
// value), so callers can bill it to a storage account.
func setTracked(key, value string) int64 {
	var before int64
	if old := sdk.StateGetObject(key); old != nil {
		before = int64(len(key) + len(*old))
	}
	sdk.StateSetObject(key, value)
	return int64(len(key)+len(value)) - before
}

// deleteTracked removes key and returns the (non-positive) byte delta.
func deleteTracked(key string) int64 {
	old := sdk.StateGetObject(key)
	if old == nil {
		return 0
	}
	sdk.StateDeleteObject(key)
	return -int64(len(key) + len(*old))
}

func getU64(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseUint(*ptr, 10, 64)
	abortOnError(err, "corrupt counter "+key)
	return v
}

func setU64(key string, v uint64) {
	sdk.StateSetObject(key, UInt64ToString(v))
}

// ---------- Config codec ----------

const codecVersion uint8 = 1

func encodeConfig(c *Config) string {
	w := &wr{b: make([]byte, 0, 96+len(c.Owner)+len(c.NftAccount))}
	w.u8(codecVersion)
	w.str(c.Owner)
	w.str(c.NftAccount)
	w.bool(c.Panic)
	w.u64(c.PaymentAdjustment)
	w.u64(c.NftFee)
	w.u64(c.OwnerFee)
	w.u64(c.HouseFee)
	w.u64(c.MaxBet)
	w.u64(c.MinBet)
	w.u64(c.MinBalanceFraction)
	w.u8(c.MaxOdds)
	w.u8(c.MinOdds)
	w.u64(c.PlayCount)
	return w.String()
}

func decodeConfig(b []byte) *Config {
	r := &rd{b: b}
	require(r.u8() == codecVersion, "unsupported config version")
	c := &Config{}
	c.Owner = r.str()
	c.NftAccount = r.str()
	c.Panic = r.bool()
	c.PaymentAdjustment = r.u64()
	c.NftFee = r.u64()
	c.OwnerFee = r.u64()
	c.HouseFee = r.u64()
	c.MaxBet = r.u64()
	c.MinBet = r.u64()
	c.MinBalanceFraction = r.u64()
	c.MaxOdds = r.u8()
	c.MinOdds = r.u8()
	c.PlayCount = r.u64()
	r.mustEnd()
	return c
}

func isInitialized() bool {
	ptr := sdk.StateGetObject(configKey)
	return ptr != nil && *ptr != ""
}

func loadConfig() *Config {
	ptr := sdk.StateGetObject(configKey)
	require(ptr != nil && *ptr != "", errNotInitialized)
	return decodeConfig([]byte(*ptr))
}

func saveConfig(c *Config) {
	sdk.StateSetObject(configKey, encodeConfig(c))
}

// ---------- PartneredGame codec ----------

func encodeGame(g *PartneredGame) string {
	w := &wr{b: make([]byte, 0, 128)}
	w.u8(codecVersion)
	w.str(g.Code)
	w.str(g.PartnerOwner)
	w.bool(g.Blocked)
	w.str(g.Denom.Key())
	w.u64(g.PartnerFee)
	w.u64(g.PartnerBalance)
	w.u64(g.SubHouseBalance)
	w.u64(g.PaymentAdjustment)
	w.u64(g.HouseFee)
	w.u64(g.MaxBet)
	w.u64(g.MinBet)
	w.u8(g.MaxOdds)
	w.u8(g.MinOdds)
	return w.String()
}

func decodeGame(b []byte) *PartneredGame {
	r := &rd{b: b}
	require(r.u8() == codecVersion, "unsupported game version")
	g := &PartneredGame{}
	g.Code = r.str()
	g.PartnerOwner = r.str()
	g.Blocked = r.bool()
	d, ok := parseDenom(r.str())
	require(ok, "corrupt game denom")
	g.Denom = d
	g.PartnerFee = r.u64()
	g.PartnerBalance = r.u64()
	g.SubHouseBalance = r.u64()
	g.PaymentAdjustment = r.u64()
	g.HouseFee = r.u64()
	g.MaxBet = r.u64()
	g.MinBet = r.u64()
	g.MaxOdds = r.u8()
	g.MinOdds = r.u8()
	r.mustEnd()
	return g
}

func gameExists(code string) bool {
	return sdk.StateGetObject(gameKey(code)) != nil
}

// loadGame aborts with errNoGame when the code is unknown.
func loadGame(code string) *PartneredGame {
	require(code != "", ERR_INPUT+": game code is mandatory")
	ptr := sdk.StateGetObject(gameKey(code))
	require(ptr != nil && *ptr != "", errNoGame)
	return decodeGame([]byte(*ptr))
}

func saveGame(g *PartneredGame) {
	sdk.StateSetObject(gameKey(g.Code), encodeGame(g))
}

// gameIndexKey lists every registered game code, pipe separated.
const gameIndexKey = "games"

func gameCodes() []string {
	ptr := sdk.StateGetObject(gameIndexKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return strings.Split(*ptr, "|")
}

func addGameCode(code string) {
	ptr := sdk.StateGetObject(gameIndexKey)
	if ptr == nil || *ptr == "" {
		sdk.StateSetObject(gameIndexKey, code)
		return
	}
	sdk.StateSetObject(gameIndexKey, *ptr+"|"+code)
}

// ---------- StorageAccount codec ----------

func loadStorageAccount(account string) (*StorageAccount, bool) {
	ptr := sdk.StateGetObject(storageKey(account))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	r := &rd{b: []byte(*ptr)}
	a := &StorageAccount{Deposit: r.u64(), BytesUsed: r.u64(), Rows: r.u64()}
	r.mustEnd()
	return a, true
}

func saveStorageAccount(account string, a *StorageAccount) {
	w := &wr{b: make([]byte, 0, 24)}
	w.u64(a.Deposit)
	w.u64(a.BytesUsed)
	w.u64(a.Rows)
	sdk.StateSetObject(storageKey(account), w.String())
}

// ---------- Ledger rows ----------

// creditRowSize is the stored width of a credit balance. Balances are
// fixed-width so a row is billed the same whatever it holds.
const creditRowSize = 8

func encodeCredits(v uint64) string {
	w := &wr{b: make([]byte, 0, creditRowSize)}
	w.u64(v)
	return w.String()
}

func getCredits(code, account string) uint64 {
	ptr := sdk.StateGetObject(creditsKey(code, account))
	if ptr == nil || *ptr == "" {
		return 0
	}
	r := &rd{b: []byte(*ptr)}
	v := r.u64()
	r.mustEnd()
	return v
}

func getOwnerPool(d Denom) uint64 { return getU64(ownerPoolKey(d)) }
func getNftPool(d Denom) uint64   { return getU64(nftPoolKey(d)) }

func addOwnerPool(d Denom, amt uint64) {
	if amt == 0 {
		return
	}
	setU64(ownerPoolKey(d), getOwnerPool(d)+amt)
}

func addNftPool(d Denom, amt uint64) {
	if amt == 0 {
		return
	}
	setU64(nftPoolKey(d), getNftPool(d)+amt)
}
