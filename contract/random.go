package main

import (
	"golang.org/x/crypto/sha3"

	"slot_machine/sdk"
)

// rollByte derives one pseudo-random byte from the block seed. Mixing in
// the per-contract play counter keeps two plays in the same block (and
// transaction) from sharing an outcome.
func rollByte(blockID, txID string, counter uint64) byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(blockID))
	h.Write([]byte{'|'})
	h.Write([]byte(txID))
	h.Write([]byte{'|'})
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[7-i] = byte(counter >> (8 * i))
	}
	h.Write(buf[:])
	return h.Sum(nil)[0]
}

func currentRoll(counter uint64) byte {
	env := sdk.GetEnv()
	return rollByte(env.BlockId, env.TxId, counter)
}
