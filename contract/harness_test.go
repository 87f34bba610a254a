//go:build test

package main

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"slot_machine/sdk"
)

const (
	owner   = sdk.Address("hive:owner")
	nftAcct = sdk.Address("hive:nftholders")
	partner = sdk.Address("hive:partner")
	alice   = sdk.Address("hive:alice")
	bob     = sdk.Address("hive:bob")
	mallory = sdk.Address("hive:mallory")
)

const defaultInit = `{
	"owner": "hive:owner",
	"nftAccount": "hive:nftholders",
	"paymentAdjustment": 95000,
	"nftFee": 500,
	"ownerFee": 500,
	"houseFee": 1000,
	"maxBet": 100000,
	"minBet": 1000,
	"minBalanceFraction": 10,
	"maxOdds": 250,
	"minOdds": 10
}`

// call describes who invokes an entry point. Caller defaults to the sender.
type call struct {
	from    sdk.Address
	caller  sdk.Address
	intents []sdk.Intent
}

func as(from sdk.Address, intents ...sdk.Intent) call {
	return call{from: from, intents: intents}
}

// via is a call made by another contract on behalf of from.
func via(contractID string, from sdk.Address) call {
	return call{from: from, caller: sdk.Address("contract:" + contractID)}
}

// invoke runs one entry point like the host would: a panic from Abort is
// recovered and every write of the call is rolled back.
func invoke(c call, fn func(*string) *string, payload string) (res *string, abortErr *sdk.AbortError) {
	sdk.SetSender(c.from)
	if c.caller != "" {
		sdk.SetCaller(c.caller)
	}
	sdk.SetIntents(c.intents)
	snap := sdk.TakeSnapshot()
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*sdk.AbortError)
			if !ok {
				panic(r)
			}
			sdk.RestoreSnapshot(snap)
			abortErr = ae
		}
	}()
	return fn(&payload), nil
}

func mustCall(t *testing.T, c call, fn func(*string) *string, payload string) string {
	t.Helper()
	res, aerr := invoke(c, fn, payload)
	if aerr != nil {
		assert.FailNow(t, "unexpected abort", aerr.Msg)
	}
	if res == nil {
		return ""
	}
	return *res
}

func expectAbort(t *testing.T, c call, fn func(*string) *string, payload string, contains string) {
	t.Helper()
	_, aerr := invoke(c, fn, payload)
	if assert.NotNil(t, aerr, "expected abort containing %q", contains) {
		assert.Contains(t, aerr.Msg, contains)
	}
}

func allow(limit string, asset sdk.Asset) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{"limit": limit, "token": asset.String()},
	}
}

// milli formats milli-units the way intent limits are written.
func milli(v uint64) string { return formatAmount(v) }

// ---------- fixtures ----------

func setupContract(t *testing.T) {
	t.Helper()
	sdk.Reset()
	for _, a := range []sdk.Address{alice, bob, partner, mallory} {
		sdk.Fund(a, sdk.AssetHive, 1_000_000)
		sdk.Fund(a, sdk.AssetHbd, 1_000_000)
	}
	mustCall(t, as(owner), initImpl, defaultInit)
}

func createGame(t *testing.T, code string, denom string, extra string) {
	t.Helper()
	payload := fmt.Sprintf(`{"code":%q,"owner":%q,"denom":%q,"partnerFee":1000%s}`, code, partner, denom, extra)
	mustCall(t, as(owner), createPartnerImpl, payload)
}

func registerStorage(t *testing.T, who sdk.Address) {
	t.Helper()
	mustCall(t, as(who, allow("1.000", sdk.AssetHive)), storageDepositImpl, "")
}

func depositCredits(t *testing.T, who sdk.Address, code string, amount uint64) {
	t.Helper()
	g := loadGame(code)
	mustCall(t, as(who, allow(milli(amount), g.Denom.Asset)), depositImpl, code)
}

func fundHouse(t *testing.T, code string, amount uint64) {
	t.Helper()
	g := loadGame(code)
	mustCall(t, as(partner, allow(milli(amount), g.Denom.Asset)), fundHouseImpl, code)
}

// setupGame is the common fixture: a hive game "dice" with a 100 HIVE
// house and alice holding 10 HIVE of credits.
func setupGame(t *testing.T) {
	t.Helper()
	setupContract(t)
	createGame(t, "dice", "hive", "")
	fundHouse(t, "dice", 100_000)
	registerStorage(t, alice)
	depositCredits(t, alice, "dice", 10_000)
}

// rigRoll picks a tx id so the next play draws a byte that satisfies want.
func rigRoll(t *testing.T, want func(byte) bool) byte {
	t.Helper()
	counter := loadConfig().PlayCount
	block := sdk.GetEnv().BlockId
	for i := 0; i < 10_000; i++ {
		tx := fmt.Sprintf("tx-%d", i)
		if b := rollByte(block, tx, counter); want(b) {
			sdk.SetTx(tx)
			return b
		}
	}
	assert.FailNow(t, "no tx id yields the wanted roll")
	return 0
}

func loseWith(odds uint8) func(byte) bool { return func(b byte) bool { return b >= odds } }
func winWith(odds uint8) func(byte) bool  { return func(b byte) bool { return b < odds } }

func mustAtoi(t *testing.T, s string) int {
	t.Helper()
	v, err := strconv.Atoi(s)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return v
}

func eventTypes() []string {
	var out []string
	for _, l := range sdk.Logs() {
		e, err := FromJSON[Event](l)
		if err == nil {
			out = append(out, e.Type)
		}
	}
	return out
}

func lastEvent(t *testing.T, typ string) Event {
	t.Helper()
	logs := sdk.Logs()
	for i := len(logs) - 1; i >= 0; i-- {
		if !strings.Contains(logs[i], `"type":"`+typ+`"`) {
			continue
		}
		e, err := FromJSON[Event](logs[i])
		if !assert.NoError(t, err) {
			t.FailNow()
		}
		return *e
	}
	assert.FailNow(t, "event not found", typ)
	return Event{}
}
