package main

import (
	"strconv"
)

type playArgs struct {
	Code    string
	Bet     uint64
	Odds    uint8
	BetType string
}

// parsePlayArgs reads "gameCode|betSize|odds|betType". betType is optional.
func parsePlayArgs(payload *string) playArgs {
	in := payloadOrEmpty(payload)
	a := playArgs{Code: nextField(&in)}
	a.Bet = parseAmount(nextField(&in), "betSize")
	odds := parseAmount(nextField(&in), "odds")
	require(odds >= 1 && odds <= 255, ERR_INPUT+": odds must be between 1 and 255")
	a.Odds = uint8(odds)
	a.BetType = nextField(&in)
	require(in == "", "too many arguments")
	return a
}

// playImpl resolves one wager against a partnered game's house pool.
//
// The bet leaves the player's credits. Every fee cut goes to its pool,
// and the house cut plus the net bet join the sub-house pool, which must
// cover the potential payout before the outcome is drawn. The player wins
// when the drawn byte is below the odds byte.
//
// Returns "won|payout|credits".
func playImpl(payload *string) *string {
	a := parsePlayArgs(payload)

	cfg := loadConfig()
	requireNotPaused(cfg)
	g := loadGame(a.Code)
	require(!g.Blocked, errGameBlocked)

	player := sender()
	credits := getCredits(g.Code, player)
	require(credits >= a.Bet, errNoCredits)
	require(a.Bet >= g.MinBet, ERR_INPUT+": bet must be at least "+formatAmount(g.MinBet))
	require(a.Bet <= g.MaxBet, ERR_INPUT+": bet must be at most "+formatAmount(g.MaxBet))
	require(a.Odds >= g.MinOdds && a.Odds <= g.MaxOdds,
		ERR_INPUT+": odds must be between "+strconv.Itoa(int(g.MinOdds))+" and "+strconv.Itoa(int(g.MaxOdds)))

	fees, err := splitFees(a.Bet, cfg.NftFee, cfg.OwnerFee, g.HouseFee, g.PartnerFee)
	abortOnError(err, ERR_INPUT)
	payout, err := payoutFor(fees.Net, a.Odds, g.PaymentAdjustment)
	abortOnError(err, ERR_INPUT)

	pool := g.SubHouseBalance + fees.House + fees.Net
	require(pool >= g.SubHouseBalance, ERR_INPUT+": house balance overflow")
	require(pool >= payout, errPoolTooSmall)

	roll := currentRoll(cfg.PlayCount)
	cfg.PlayCount++
	won := roll < a.Odds

	remaining := credits - a.Bet
	if won {
		pool -= payout
		remaining += payout
	} else {
		payout = 0
	}

	addNftPool(g.Denom, fees.Nft)
	addOwnerPool(g.Denom, fees.Owner)
	g.PartnerBalance += fees.Partner
	g.SubHouseBalance = pool

	saveConfig(cfg)
	saveGame(g)
	setCredits(g.Code, player, remaining)
	EmitPlayed(g.Code, player, a.Bet, a.Odds, a.BetType, roll, won, payout)

	out := strconv.FormatBool(won) + "|" + UInt64ToString(payout) + "|" + UInt64ToString(remaining)
	return &out
}
