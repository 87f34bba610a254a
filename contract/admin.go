package main

import (
	"strconv"
)

func adminPanicImpl(payload *string) *string {
	require(payloadOrEmpty(payload) == "", "too many arguments")
	cfg := requireOwner()
	cfg.Panic = !cfg.Panic
	saveConfig(cfg)
	EmitPanicToggled(cfg.Panic)

	out := strconv.FormatBool(cfg.Panic)
	return &out
}

// adminUpdateImpl replaces the global parameters. The new fees are
// checked against every registered game so no game is left unplayable.
func adminUpdateImpl(payload *string) *string {
	cfg := requireOwner()
	args, err := FromJSON[UpdateArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid update args")
	abortOnError(args.Validate(), ERR_INPUT)

	cfg.PaymentAdjustment = args.PaymentAdjustment
	cfg.NftFee = args.NftFee
	cfg.OwnerFee = args.OwnerFee
	cfg.HouseFee = args.HouseFee
	cfg.MaxBet = args.MaxBet
	cfg.MinBet = args.MinBet
	cfg.MinBalanceFraction = args.MinBalanceFraction
	cfg.MaxOdds = args.MaxOdds
	cfg.MinOdds = args.MinOdds
	for _, code := range gameCodes() {
		abortOnError(validateGame(cfg, loadGame(code)), ERR_INPUT+": game "+code)
	}
	saveConfig(cfg)
	EmitConfigUpdated(cfg.Owner)
	return nil
}

func parseDenomPayload(payload *string) Denom {
	in := payloadOrEmpty(payload)
	raw := nextField(&in)
	require(in == "", "too many arguments")
	d, ok := parseDenom(raw)
	require(ok, ERR_INPUT+": invalid denom '"+raw+"'")
	return d
}

// withdrawPool empties a fee pool into to. A failed token transfer puts
// the amount back.
func withdrawPool(kind, key, to string, d Denom) *string {
	amount := getU64(key)
	require(amount > 0, ERR_INPUT+": "+kind+" pool is empty")

	setU64(key, 0)
	if !sendFunds(to, d, amount, kind+" fees") {
		setU64(key, amount)
		EmitTransferFailed(kind, to, d, amount)
		out := "0"
		return &out
	}
	EmitFeesWithdrawn(kind, to, d, amount)

	out := UInt64ToString(amount)
	return &out
}

func adminWithdrawOwnerImpl(payload *string) *string {
	cfg := requireOwner()
	d := parseDenomPayload(payload)
	return withdrawPool("owner", ownerPoolKey(d), cfg.Owner, d)
}

func adminWithdrawNftImpl(payload *string) *string {
	cfg := requireOwner()
	d := parseDenomPayload(payload)
	return withdrawPool("nft", nftPoolKey(d), cfg.NftAccount, d)
}

// DistributeArgs lists the NFT holders that share the NFT fee pool.
type DistributeArgs struct {
	Denom   string   `json:"denom"`
	Holders []string `json:"holders"`
}

// adminDistributeNftImpl splits the NFT pool evenly across holders. The
// floor-division remainder stays in the pool for the next round, and a
// share whose token transfer fails goes back to the pool as well.
func adminDistributeNftImpl(payload *string) *string {
	requireOwner()
	args, err := FromJSON[DistributeArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid distribute args")
	d, ok := parseDenom(args.Denom)
	require(ok, ERR_INPUT+": invalid denom '"+args.Denom+"'")
	require(len(args.Holders) > 0, ERR_INPUT+": holders list is empty")
	for _, h := range args.Holders {
		require(h != "", ERR_INPUT+": empty holder")
	}

	pool := getNftPool(d)
	share, remainder := evenShare(pool, len(args.Holders))
	require(share > 0, ERR_INPUT+": nft pool too small to distribute")

	setU64(nftPoolKey(d), remainder)
	for _, h := range args.Holders {
		if !sendFunds(h, d, share, "nft holder share") {
			addNftPool(d, share)
			EmitTransferFailed("nft", h, d, share)
		}
	}
	EmitNftDistributed(d, len(args.Holders), share, remainder)

	out := UInt64ToString(share)
	return &out
}
