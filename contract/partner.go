package main

import (
	"errors"
	"fmt"
)

// CreatePartnerArgs registers a partnered game. Optional fields fall back
// to the global configuration.
type CreatePartnerArgs struct {
	Code              string  `json:"code"`
	Owner             string  `json:"owner"`
	Denom             string  `json:"denom"`
	PartnerFee        uint64  `json:"partnerFee"`
	HouseFee          *uint64 `json:"houseFee,omitempty"`
	PaymentAdjustment *uint64 `json:"paymentAdjustment,omitempty"`
	MaxBet            *uint64 `json:"maxBet,omitempty"`
	MinBet            *uint64 `json:"minBet,omitempty"`
	MaxOdds           *uint8  `json:"maxOdds,omitempty"`
	MinOdds           *uint8  `json:"minOdds,omitempty"`
}

// AlterPartnerArgs changes an existing game. Only set fields are applied.
type AlterPartnerArgs struct {
	Code              string  `json:"code"`
	Owner             *string `json:"owner,omitempty"`
	Blocked           *bool   `json:"blocked,omitempty"`
	PartnerFee        *uint64 `json:"partnerFee,omitempty"`
	HouseFee          *uint64 `json:"houseFee,omitempty"`
	PaymentAdjustment *uint64 `json:"paymentAdjustment,omitempty"`
	MaxBet            *uint64 `json:"maxBet,omitempty"`
	MinBet            *uint64 `json:"minBet,omitempty"`
	MaxOdds           *uint8  `json:"maxOdds,omitempty"`
	MinOdds           *uint8  `json:"minOdds,omitempty"`
}

func (a *CreatePartnerArgs) Validate() error {
	if a.Code == "" {
		return errors.New("code is mandatory")
	}
	if len(a.Code) > 32 {
		return errors.New("code must be at most 32 characters")
	}
	for i := 0; i < len(a.Code); i++ {
		if a.Code[i] == '|' || a.Code[i] == '_' {
			return fmt.Errorf("code must not contain %q", a.Code[i])
		}
	}
	if a.Owner == "" {
		return errors.New("owner is mandatory")
	}
	return nil
}

// validateGame checks a game against the global fees it will be charged with.
func validateGame(cfg *Config, g *PartneredGame) error {
	if cfg.NftFee+cfg.OwnerFee+g.HouseFee+g.PartnerFee >= FractionalBase {
		return fmt.Errorf("fees must sum below %d", FractionalBase)
	}
	if g.PaymentAdjustment == 0 {
		return errors.New("paymentAdjustment must be positive")
	}
	if g.MinBet == 0 || g.MaxBet < g.MinBet {
		return errors.New("bet bounds must satisfy 0 < minBet <= maxBet")
	}
	if g.MinOdds == 0 || g.MaxOdds < g.MinOdds {
		return errors.New("odds bounds must satisfy 0 < minOdds <= maxOdds")
	}
	return nil
}

func createPartnerImpl(payload *string) *string {
	cfg := requireOwner()
	args, err := FromJSON[CreatePartnerArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid partner args")
	abortOnError(args.Validate(), ERR_INPUT)
	require(!gameExists(args.Code), errGameExists)
	d, ok := parseDenom(args.Denom)
	require(ok, ERR_INPUT+": invalid denom '"+args.Denom+"'")

	g := &PartneredGame{
		Code:              args.Code,
		PartnerOwner:      args.Owner,
		Denom:             d,
		PartnerFee:        args.PartnerFee,
		HouseFee:          cfg.HouseFee,
		PaymentAdjustment: cfg.PaymentAdjustment,
		MaxBet:            cfg.MaxBet,
		MinBet:            cfg.MinBet,
		MaxOdds:           cfg.MaxOdds,
		MinOdds:           cfg.MinOdds,
	}
	if args.HouseFee != nil {
		g.HouseFee = *args.HouseFee
	}
	if args.PaymentAdjustment != nil {
		g.PaymentAdjustment = *args.PaymentAdjustment
	}
	if args.MaxBet != nil {
		g.MaxBet = *args.MaxBet
	}
	if args.MinBet != nil {
		g.MinBet = *args.MinBet
	}
	if args.MaxOdds != nil {
		g.MaxOdds = *args.MaxOdds
	}
	if args.MinOdds != nil {
		g.MinOdds = *args.MinOdds
	}
	abortOnError(validateGame(cfg, g), ERR_INPUT)

	saveGame(g)
	addGameCode(g.Code)
	EmitPartnerCreated(g.Code, g.PartnerOwner, g.Denom)
	return nil
}

func alterPartnerImpl(payload *string) *string {
	cfg := requireOwner()
	args, err := FromJSON[AlterPartnerArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid partner args")
	g := loadGame(args.Code)

	if args.Owner != nil {
		require(*args.Owner != "", ERR_INPUT+": owner is mandatory")
		g.PartnerOwner = *args.Owner
	}
	if args.Blocked != nil {
		g.Blocked = *args.Blocked
	}
	if args.PartnerFee != nil {
		g.PartnerFee = *args.PartnerFee
	}
	if args.HouseFee != nil {
		g.HouseFee = *args.HouseFee
	}
	if args.PaymentAdjustment != nil {
		g.PaymentAdjustment = *args.PaymentAdjustment
	}
	if args.MaxBet != nil {
		g.MaxBet = *args.MaxBet
	}
	if args.MinBet != nil {
		g.MinBet = *args.MinBet
	}
	if args.MaxOdds != nil {
		g.MaxOdds = *args.MaxOdds
	}
	if args.MinOdds != nil {
		g.MinOdds = *args.MinOdds
	}
	abortOnError(validateGame(cfg, g), ERR_INPUT)

	saveGame(g)
	EmitPartnerAltered(g.Code, g.PartnerOwner, g.Blocked)
	return nil
}

// requirePartnerOwner loads the game and aborts unless the sender runs it.
func requirePartnerOwner(code string) *PartneredGame {
	loadConfig()
	g := loadGame(code)
	require(sender() == g.PartnerOwner, errNotPartnerOwner)
	return g
}

// partnerWithdrawImpl pays the accrued partner fees to the partner owner.
func partnerWithdrawImpl(payload *string) *string {
	in := payloadOrEmpty(payload)
	code := nextField(&in)
	require(in == "", "too many arguments")

	g := requirePartnerOwner(code)
	amount := g.PartnerBalance
	require(amount > 0, ERR_INPUT+": no partner fees to withdraw")

	g.PartnerBalance = 0
	saveGame(g)
	if !sendFunds(g.PartnerOwner, g.Denom, amount, "partner fees "+code) {
		g.PartnerBalance = amount
		saveGame(g)
		EmitTransferFailed("partner", g.PartnerOwner, g.Denom, amount)
		out := "0"
		return &out
	}
	EmitFeesWithdrawn("partner:"+code, g.PartnerOwner, g.Denom, amount)

	out := UInt64ToString(amount)
	return &out
}

// partnerWithdrawHouseImpl takes funds out of a game's sub-house pool.
func partnerWithdrawHouseImpl(payload *string) *string {
	in := payloadOrEmpty(payload)
	code := nextField(&in)
	amount := parseAmount(nextField(&in), "amount")
	require(in == "", "too many arguments")

	g := requirePartnerOwner(code)
	require(amount > 0, ERR_INPUT+": amount must be positive")
	require(amount <= g.SubHouseBalance, ERR_INPUT+": only "+formatAmount(g.SubHouseBalance)+" in house balance")

	g.SubHouseBalance -= amount
	saveGame(g)
	if !sendFunds(g.PartnerOwner, g.Denom, amount, "house withdraw "+code) {
		g.SubHouseBalance += amount
		saveGame(g)
		EmitTransferFailed("house", g.PartnerOwner, g.Denom, amount)
		out := "0"
		return &out
	}
	EmitFeesWithdrawn("house:"+code, g.PartnerOwner, g.Denom, amount)

	out := UInt64ToString(g.SubHouseBalance)
	return &out
}
