//go:build test

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slot_machine/sdk"
)

// With the default fixture a 1.000 bet splits into nft 5, owner 5,
// house 10, partner 10 and a net bet of 970.

func TestPlay_Loss(t *testing.T) {
	setupGame(t)
	roll := rigRoll(t, loseWith(128))

	res := mustCall(t, as(alice), playImpl, "dice|1000|128|heads")
	assert.Equal(t, "false|0|9000", res)
	assert.Equal(t, uint64(9000), getCredits("dice", alice.String()))

	g := loadGame("dice")
	assert.Equal(t, uint64(100_000+10+970), g.SubHouseBalance)
	assert.Equal(t, uint64(10), g.PartnerBalance)
	assert.Equal(t, uint64(5), getNftPool(g.Denom))
	assert.Equal(t, uint64(5), getOwnerPool(g.Denom))

	ev := lastEvent(t, "played")
	assert.Equal(t, "false", ev.Attributes["won"])
	assert.Equal(t, "heads", ev.Attributes["betType"])
	assert.Equal(t, "1.000", ev.Attributes["bet"])
	assert.Equal(t, int(roll), mustAtoi(t, ev.Attributes["roll"]))
}

func TestPlay_Win(t *testing.T) {
	setupGame(t)
	rigRoll(t, winWith(128))

	res := mustCall(t, as(alice), playImpl, "dice|1000|128|tails")
	// floor(970*256/128) = 1940, scaled by 0.95
	assert.Equal(t, "true|1843|10843", res)
	assert.Equal(t, uint64(10_843), getCredits("dice", alice.String()))

	g := loadGame("dice")
	assert.Equal(t, uint64(100_000+980-1843), g.SubHouseBalance)
	assert.Equal(t, uint64(10), g.PartnerBalance)
}

// Every unit of a bet is accounted for: credits, pools and the house
// always add up to what the contract holds.
func TestPlay_ConservesFunds(t *testing.T) {
	setupGame(t)
	depositCredits(t, alice, "dice", 20_000)
	total := func() uint64 {
		g := loadGame("dice")
		return getCredits("dice", alice.String()) + g.SubHouseBalance + g.PartnerBalance +
			getNftPool(g.Denom) + getOwnerPool(g.Denom)
	}
	before := total()
	for i := 0; i < 20; i++ {
		sdk.SetTx("spin-" + UInt64ToString(uint64(i)))
		mustCall(t, as(alice), playImpl, "dice|1000|100|")
	}
	assert.Equal(t, before, total())
	assert.Equal(t, uint64(20), loadConfig().PlayCount)
}

func TestPlay_PoolMustCoverPayout(t *testing.T) {
	setupContract(t)
	createGame(t, "empty", "hive", "")
	registerStorage(t, alice)
	depositCredits(t, alice, "empty", 10_000)

	// payout 1843 against a pool of house cut plus net bet (980)
	expectAbort(t, as(alice), playImpl, "empty|1000|128|", errPoolTooSmall)
	assert.Equal(t, uint64(10_000), getCredits("empty", alice.String()))
	assert.Zero(t, loadConfig().PlayCount)

	// long odds pay less than what the bet itself brings in
	rigRoll(t, winWith(250))
	res := mustCall(t, as(alice), playImpl, "empty|1000|250|")
	assert.Equal(t, "true|943|9943", res)
	assert.Equal(t, uint64(980-943), loadGame("empty").SubHouseBalance)
}

func TestPlay_Validation(t *testing.T) {
	setupGame(t)
	cases := []struct {
		name    string
		payload string
		msg     string
	}{
		{"more than credits", "dice|20000|128|", errNoCredits},
		{"below min bet", "dice|999|128|", "bet must be at least 1.000"},
		{"odds below game min", "dice|1000|9|", "odds must be between 10 and 250"},
		{"odds above game max", "dice|1000|251|", "odds must be between 10 and 250"},
		{"odds zero", "dice|1000|0|", "odds must be between 1 and 255"},
		{"odds not a byte", "dice|1000|256|", "odds must be between 1 and 255"},
		{"unknown game", "nope|1000|128|", errNoGame},
		{"missing bet", "dice||128|", "betSize is mandatory"},
		{"too many fields", "dice|1000|128|x|y", "too many arguments"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			expectAbort(t, as(alice), playImpl, c.payload, c.msg)
		})
	}

	depositCredits(t, alice, "dice", 200_000)
	expectAbort(t, as(alice), playImpl, "dice|100001|128|", "bet must be at most 100.000")
}

func TestPlay_NoCreditsForStranger(t *testing.T) {
	setupGame(t)
	expectAbort(t, as(bob), playImpl, "dice|1000|128|", errNoCredits)
}

func TestPlay_PausedAndBlocked(t *testing.T) {
	setupGame(t)

	mustCall(t, as(owner), adminPanicImpl, "")
	expectAbort(t, as(alice), playImpl, "dice|1000|128|", errPaused)
	mustCall(t, as(owner), adminPanicImpl, "")

	mustCall(t, as(owner), alterPartnerImpl, `{"code":"dice","blocked":true}`)
	expectAbort(t, as(alice), playImpl, "dice|1000|128|", errGameBlocked)
}

func TestPlay_UsesGameSettings(t *testing.T) {
	setupContract(t)
	createGame(t, "fair", "hbd", `,"paymentAdjustment":100000,"houseFee":0,"minBet":10,"maxOdds":255,"minOdds":1`)
	fundHouse(t, "fair", 500_000)
	registerStorage(t, alice)
	depositCredits(t, alice, "fair", 10_000)

	rigRoll(t, winWith(128))
	// fees: nft 5, owner 5, partner 10; net 980 pays 1960 unadjusted
	res := mustCall(t, as(alice), playImpl, "fair|1000|128|")
	assert.Equal(t, "true|1960|10960", res)
	assert.Equal(t, uint64(5), getNftPool(Denom{Asset: sdk.AssetHbd}))
	assert.Zero(t, getNftPool(Denom{Asset: sdk.AssetHive}))
}

// Plays touch only the player's own row and their own game.
func TestPlay_Isolation(t *testing.T) {
	setupGame(t)
	createGame(t, "other", "hive", "")
	fundHouse(t, "other", 50_000)
	registerStorage(t, bob)
	depositCredits(t, bob, "dice", 5_000)
	depositCredits(t, bob, "other", 5_000)

	otherBefore := *loadGame("other")
	for i := 0; i < 10; i++ {
		sdk.SetTx("iso-" + UInt64ToString(uint64(i)))
		mustCall(t, as(alice), playImpl, "dice|1000|200|")
	}

	assert.Equal(t, uint64(5_000), getCredits("dice", bob.String()))
	assert.Equal(t, uint64(5_000), getCredits("other", bob.String()))
	assert.Equal(t, otherBefore, *loadGame("other"))
	assert.Zero(t, getCredits("other", alice.String()))
}
