package main

import (
	"strconv"
	"strings"
)

const defaultPageLimit = 50

func tokenView(id string) *TokenView {
	t, err := loadToken(id)
	if err != nil {
		return nil
	}
	v := &TokenView{Token: *t}
	if m, err := loadMetadata(id); err == nil {
		v.Metadata = *m
	}
	return v
}

func nftTokenImpl(payload *string) *string {
	id := payloadOrEmpty(payload)
	require(id != "", ERR_INPUT+": token id is mandatory")
	v := tokenView(id)
	out := "null"
	if v != nil {
		out = ToJSON(v, "token")
	}
	return &out
}

// nftTokensForOwnerImpl pages through an account's tokens with the
// payload "account|from|limit"; from and limit are optional.
func nftTokensForOwnerImpl(payload *string) *string {
	parts := strings.Split(payloadOrEmpty(payload), "|")
	require(len(parts) <= 3, "too many arguments")
	account := parts[0]
	require(account != "", ERR_INPUT+": account is mandatory")

	from, limit := 0, defaultPageLimit
	var err error
	if len(parts) > 1 && parts[1] != "" {
		from, err = strconv.Atoi(parts[1])
		require(err == nil && from >= 0, ERR_INPUT+": invalid from index")
	}
	if len(parts) > 2 && parts[2] != "" {
		limit, err = strconv.Atoi(parts[2])
		require(err == nil && limit > 0, ERR_INPUT+": invalid limit")
	}

	ids := tokensOf(account)
	views := []TokenView{}
	for i := from; i < len(ids) && len(views) < limit; i++ {
		if v := tokenView(ids[i]); v != nil {
			views = append(views, *v)
		}
	}
	out := ToJSON(views, "tokens")
	return &out
}

type SupplyView struct {
	Minted    string `json:"minted"`
	MaxSupply string `json:"max_supply"`
	Price     string `json:"price"`
	Asset     string `json:"asset"`
	Active    bool   `json:"active"`
	Whitelist bool   `json:"whitelist"`
}

func nftSupplyImpl() *string {
	cfg := loadConfig()
	out := ToJSON(SupplyView{
		Minted:    UInt64ToString(cfg.Minted),
		MaxSupply: UInt64ToString(cfg.MaxSupply),
		Price:     formatAmount(cfg.Price),
		Asset:     cfg.Asset.String(),
		Active:    cfg.Active,
		Whitelist: cfg.Whitelist,
	}, "supply")
	return &out
}
