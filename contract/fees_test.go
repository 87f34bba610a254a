//go:build test

package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFees_SumAndNet(t *testing.T) {
	for _, bet := range []uint64{0, 1, 33, 999, 1000, 12_345, 100_000, 987_654_321} {
		f, err := splitFees(bet, 500, 500, 1000, 1000)
		assert.NoError(t, err)
		assert.Equal(t, f.Nft+f.Owner+f.House+f.Partner, f.Total())
		assert.Equal(t, bet, f.Net+f.Total(), "bet %d", bet)
	}
}

func TestSplitFees_Truncates(t *testing.T) {
	f, err := splitFees(1999, 500, 500, 1000, 1000)
	assert.NoError(t, err)
	// 1999*500/100000 = 9.995
	assert.Equal(t, uint64(9), f.Nft)
	assert.Equal(t, uint64(9), f.Owner)
	assert.Equal(t, uint64(19), f.House)
	assert.Equal(t, uint64(19), f.Partner)
	assert.Equal(t, uint64(1999-56), f.Net)
}

func TestSplitFees_RejectsFullBase(t *testing.T) {
	_, err := splitFees(1000, 25_000, 25_000, 25_000, 25_000)
	assert.ErrorIs(t, err, errFeesTooHigh)
}

func TestSplitFees_LargeBetDoesNotOverflow(t *testing.T) {
	f, err := splitFees(math.MaxUint64, 500, 0, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64/200), f.Nft)
}

func TestPayoutFor(t *testing.T) {
	cases := []struct {
		net  uint64
		odds uint8
		adj  uint64
		want uint64
	}{
		{970, 128, FractionalBase, 1940},
		{970, 128, 95_000, 1843},
		{970, 1, FractionalBase, 248_320},
		{970, 255, FractionalBase, 973},
		{1, 3, FractionalBase, 85},
	}
	for _, c := range cases {
		got, err := payoutFor(c.net, c.odds, c.adj)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, "net %d odds %d adj %d", c.net, c.odds, c.adj)
	}

	_, err := payoutFor(100, 0, FractionalBase)
	assert.ErrorIs(t, err, errZeroDivisor)
}

func TestMulDiv_Overflow(t *testing.T) {
	_, err := mulDiv(math.MaxUint64, math.MaxUint64, 1)
	assert.ErrorIs(t, err, errOverflow)

	v, err := mulDiv(math.MaxUint64, math.MaxUint64, math.MaxUint64)
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)
}

func TestEvenShare(t *testing.T) {
	share, rem := evenShare(1001, 3)
	assert.Equal(t, uint64(333), share)
	assert.Equal(t, uint64(2), rem)

	share, rem = evenShare(2, 3)
	assert.Zero(t, share)
	assert.Equal(t, uint64(2), rem)

	share, rem = evenShare(50, 0)
	assert.Zero(t, share)
	assert.Equal(t, uint64(50), rem)
}
