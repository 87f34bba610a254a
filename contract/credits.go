package main

import (
	"slot_machine/sdk"
)

// requireDepositFloor rejects dust deposits: the amount has to exceed
// minBet / minBalanceFraction.
func requireDepositFloor(cfg *Config, g *PartneredGame, amount uint64) {
	floor := g.MinBet / cfg.MinBalanceFraction
	require(amount > floor, ERR_INPUT+": deposit must be greater than "+formatAmount(floor))
}

func creditAccount(code, account string, amount uint64) uint64 {
	before := getCredits(code, account)
	after := before + amount
	require(after >= before, ERR_INPUT+": credit balance overflow")
	setCredits(code, account, after)
	return after
}

func addSubHouse(g *PartneredGame, amount uint64) {
	next := g.SubHouseBalance + amount
	require(next >= g.SubHouseBalance, ERR_INPUT+": house balance overflow")
	g.SubHouseBalance = next
}

// depositImpl credits the sender with the native amount attached to the
// call. Token games are funded through on_token_transfer instead.
func depositImpl(payload *string) *string {
	in := payloadOrEmpty(payload)
	code := nextField(&in)
	require(in == "", "too many arguments")

	cfg := loadConfig()
	requireNotPaused(cfg)
	g := loadGame(code)
	require(!g.Blocked, errGameBlocked)
	require(!g.Denom.IsToken(), ERR_INPUT+": game "+code+" is funded through its token contract")

	account := sender()
	_, registered := loadStorageAccount(account)
	require(registered, errNoAccount)

	attached := requireAttached(g.Denom.Asset)
	requireDepositFloor(cfg, g, attached)
	drawAttached(g.Denom.Asset)

	credits := creditAccount(code, account, attached)
	EmitDeposited(code, account, attached, credits)

	out := UInt64ToString(credits)
	return &out
}

// fundHouseImpl tops up a native game's sub-house pool from the attached
// intent. Anyone may fund a game.
func fundHouseImpl(payload *string) *string {
	in := payloadOrEmpty(payload)
	code := nextField(&in)
	require(in == "", "too many arguments")

	cfg := loadConfig()
	requireNotPaused(cfg)
	g := loadGame(code)
	require(!g.Denom.IsToken(), ERR_INPUT+": game "+code+" is funded through its token contract")

	amount := drawAttached(g.Denom.Asset)
	addSubHouse(g, amount)
	saveGame(g)
	EmitHouseFunded(code, sender(), amount, g.SubHouseBalance)

	out := UInt64ToString(g.SubHouseBalance)
	return &out
}

const (
	msgDepositBalance = "deposit_balance"
	msgFundGame       = "fund_game"
)

// TokenTransferMsg tells the contract what a received token transfer is for.
type TokenTransferMsg struct {
	Type string `json:"type"`
	Game string `json:"game"`
}

// TokenTransferArgs is the notification a token contract sends after
// moving tokens to this contract.
type TokenTransferArgs struct {
	Sender string           `json:"sender"`
	Amount string           `json:"amount"`
	Msg    TokenTransferMsg `json:"msg"`
}

// onTokenTransferImpl books tokens that a token contract has already
// moved to us. Only the game's own token contract may call it. The
// return value is the unused amount, which is always zero.
func onTokenTransferImpl(payload *string) *string {
	args, err := FromJSON[TokenTransferArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid token transfer payload")
	require(args.Sender != "", ERR_INPUT+": sender is mandatory")
	amount := parseAmount(args.Amount, "amount")
	require(amount > 0, ERR_INPUT+": amount must be positive")

	cfg := loadConfig()
	requireNotPaused(cfg)
	g := loadGame(args.Msg.Game)
	require(g.Denom.IsToken(), ERR_INPUT+": game "+g.Code+" does not accept tokens")
	caller := sdk.GetEnv().Caller.String()
	require(caller == "contract:"+g.Denom.Token, errWrongToken)

	switch args.Msg.Type {
	case msgDepositBalance:
		require(!g.Blocked, errGameBlocked)
		requireDepositFloor(cfg, g, amount)
		credits := creditAccount(g.Code, args.Sender, amount)
		EmitDeposited(g.Code, args.Sender, amount, credits)
	case msgFundGame:
		addSubHouse(g, amount)
		saveGame(g)
		EmitHouseFunded(g.Code, args.Sender, amount, g.SubHouseBalance)
	default:
		sdk.Abort(ERR_INPUT + ": unknown transfer type '" + args.Msg.Type + "'")
	}

	out := "0"
	return &out
}

// withdrawImpl pays out all of the sender's credits in a game. The row is
// cleared first; if a token transfer reports failure the credits are
// written back and the call returns "0".
func withdrawImpl(payload *string) *string {
	in := payloadOrEmpty(payload)
	code := nextField(&in)
	require(in == "", "too many arguments")

	loadConfig()
	g := loadGame(code)
	account := sender()
	amount := getCredits(code, account)
	require(amount > 0, ERR_INPUT+": no credits to withdraw")

	setCredits(code, account, 0)
	if !sendFunds(account, g.Denom, amount, "withdraw "+code) {
		setCredits(code, account, amount)
		EmitTransferFailed("withdraw", account, g.Denom, amount)
		out := "0"
		return &out
	}
	EmitWithdrawn(code, account, amount)

	out := UInt64ToString(amount)
	return &out
}

func getCreditsImpl(payload *string) *string {
	in := payloadOrEmpty(payload)
	code := nextField(&in)
	account := nextField(&in)
	require(in == "", "too many arguments")
	require(code != "" && account != "", ERR_INPUT+": expected gameCode|account")

	out := UInt64ToString(getCredits(code, account))
	return &out
}
