package main

import (
	"errors"
	"fmt"

	"slot_machine/sdk"
)

// InitArgs is the JSON payload of init. Fee and adjustment fractions are
// over FractionalBase.
type InitArgs struct {
	Owner              string `json:"owner"`
	NftAccount         string `json:"nftAccount"`
	PaymentAdjustment  uint64 `json:"paymentAdjustment"`
	NftFee             uint64 `json:"nftFee"`
	OwnerFee           uint64 `json:"ownerFee"`
	HouseFee           uint64 `json:"houseFee"`
	MaxBet             uint64 `json:"maxBet"`
	MinBet             uint64 `json:"minBet"`
	MinBalanceFraction uint64 `json:"minBalanceFraction"`
	MaxOdds            uint8  `json:"maxOdds"`
	MinOdds            uint8  `json:"minOdds"`
}

// UpdateArgs changes the global parameters; owner and nft account are
// fixed at init.
type UpdateArgs struct {
	PaymentAdjustment  uint64 `json:"paymentAdjustment"`
	NftFee             uint64 `json:"nftFee"`
	OwnerFee           uint64 `json:"ownerFee"`
	HouseFee           uint64 `json:"houseFee"`
	MaxBet             uint64 `json:"maxBet"`
	MinBet             uint64 `json:"minBet"`
	MinBalanceFraction uint64 `json:"minBalanceFraction"`
	MaxOdds            uint8  `json:"maxOdds"`
	MinOdds            uint8  `json:"minOdds"`
}

func validateParams(adj, nftFee, ownerFee, houseFee, maxBet, minBet, minBalanceFraction uint64, maxOdds, minOdds uint8) error {
	if adj == 0 {
		return errors.New("paymentAdjustment must be positive")
	}
	if nftFee+ownerFee+houseFee >= FractionalBase {
		return fmt.Errorf("fees must sum below %d", FractionalBase)
	}
	if minBet == 0 || maxBet < minBet {
		return errors.New("bet bounds must satisfy 0 < minBet <= maxBet")
	}
	if minBalanceFraction == 0 {
		return errors.New("minBalanceFraction must be positive")
	}
	if minOdds == 0 || maxOdds < minOdds {
		return errors.New("odds bounds must satisfy 0 < minOdds <= maxOdds")
	}
	return nil
}

func (a *InitArgs) Validate() error {
	if a.Owner == "" {
		return errors.New("owner is mandatory")
	}
	if a.NftAccount == "" {
		return errors.New("nftAccount is mandatory")
	}
	return validateParams(a.PaymentAdjustment, a.NftFee, a.OwnerFee, a.HouseFee,
		a.MaxBet, a.MinBet, a.MinBalanceFraction, a.MaxOdds, a.MinOdds)
}

func (a *UpdateArgs) Validate() error {
	return validateParams(a.PaymentAdjustment, a.NftFee, a.OwnerFee, a.HouseFee,
		a.MaxBet, a.MinBet, a.MinBalanceFraction, a.MaxOdds, a.MinOdds)
}

func initImpl(payload *string) *string {
	require(!isInitialized(), errInitialized)
	args, err := FromJSON[InitArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid init args")
	abortOnError(args.Validate(), ERR_INPUT)

	cfg := &Config{
		Owner:              args.Owner,
		NftAccount:         args.NftAccount,
		PaymentAdjustment:  args.PaymentAdjustment,
		NftFee:             args.NftFee,
		OwnerFee:           args.OwnerFee,
		HouseFee:           args.HouseFee,
		MaxBet:             args.MaxBet,
		MinBet:             args.MinBet,
		MinBalanceFraction: args.MinBalanceFraction,
		MaxOdds:            args.MaxOdds,
		MinOdds:            args.MinOdds,
	}
	saveConfig(cfg)
	EmitInitialized(cfg.Owner)
	return nil
}

func sender() string {
	return sdk.GetEnv().Sender.Address.String()
}

// requireOwner loads the config and aborts unless the sender owns the contract.
func requireOwner() *Config {
	cfg := loadConfig()
	require(sender() == cfg.Owner, errNotOwner)
	return cfg
}

func requireNotPaused(cfg *Config) {
	require(!cfg.Panic, errPaused)
}
