package main

import (
	"errors"

	"github.com/holiman/uint256"
)

// FeeSplit is the breakdown of one bet. Net is what is actually wagered
// against the house after every cut has been taken.
type FeeSplit struct {
	Nft     uint64
	Owner   uint64
	House   uint64
	Partner uint64
	Net     uint64
}

func (f FeeSplit) Total() uint64 { return f.Nft + f.Owner + f.House + f.Partner }

var (
	errFeesTooHigh = errors.New("combined fees must be below the fractional base")
	errOverflow    = errors.New("amount overflows 64 bits")
	errZeroDivisor = errors.New("division by zero")
)

// mulDiv returns floor(a*b/c), computing the product in 256 bits.
func mulDiv(a, b, c uint64) (uint64, error) {
	if c == 0 {
		return 0, errZeroDivisor
	}
	x := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	x.Div(x, uint256.NewInt(c))
	if !x.IsUint64() {
		return 0, errOverflow
	}
	return x.Uint64(), nil
}

// splitFees takes each fee fraction from bet with truncating division.
// Each cut rounds down, so any dust stays in Net.
func splitFees(bet, nftFee, ownerFee, houseFee, partnerFee uint64) (FeeSplit, error) {
	if nftFee+ownerFee+houseFee+partnerFee >= FractionalBase {
		return FeeSplit{}, errFeesTooHigh
	}
	var f FeeSplit
	var err error
	if f.Nft, err = mulDiv(bet, nftFee, FractionalBase); err != nil {
		return FeeSplit{}, err
	}
	if f.Owner, err = mulDiv(bet, ownerFee, FractionalBase); err != nil {
		return FeeSplit{}, err
	}
	if f.House, err = mulDiv(bet, houseFee, FractionalBase); err != nil {
		return FeeSplit{}, err
	}
	if f.Partner, err = mulDiv(bet, partnerFee, FractionalBase); err != nil {
		return FeeSplit{}, err
	}
	f.Net = bet - f.Total()
	return f, nil
}

// payoutFor is the amount credited on a win at the given odds byte:
// floor(net*256/odds), scaled by adjustment/FractionalBase.
func payoutFor(net uint64, odds uint8, adjustment uint64) (uint64, error) {
	if odds == 0 {
		return 0, errZeroDivisor
	}
	fair, err := mulDiv(net, 256, uint64(odds))
	if err != nil {
		return 0, err
	}
	return mulDiv(fair, adjustment, FractionalBase)
}

// evenShare splits pool across n recipients. The remainder is whatever
// floor division leaves behind.
func evenShare(pool uint64, n int) (share uint64, remainder uint64) {
	if n <= 0 {
		return 0, pool
	}
	return pool / uint64(n), pool % uint64(n)
}
