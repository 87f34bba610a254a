package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"golang.org/x/crypto/sha3"

	"slot_machine/sdk"
)

const configKey = "config"

func whitelistKey(account string) string { return "wl_" + account }
func metadataKey(tokenID string) string  { return "meta_" + tokenID }
func tokenKey(tokenID string) string     { return "tok_" + tokenID }
func ownerKey(account string) string     { return "own_" + account }

// mediaKey indexes minted media by hash so long URLs cost a fixed key size.
func mediaKey(media string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(media))
	return "media_" + hex.EncodeToString(h.Sum(nil))
}

// Contract State Persistence

func isInitialized() bool {
	return sdk.StateGetObject(configKey) != nil
}

func loadConfig() *MintConfig {
	ptr := sdk.StateGetObject(configKey)
	require(ptr != nil, errNotInitialized)
	cfg, err := FromJSON[MintConfig](*ptr)
	abortOnError(err, "failed unmarshal config")
	return cfg
}

func saveConfig(cfg *MintConfig) {
	sdk.StateSetObject(configKey, ToJSON(cfg, "config"))
}

func isWhitelisted(account string) bool {
	return sdk.StateGetObject(whitelistKey(account)) != nil
}

func setWhitelisted(account string) {
	sdk.StateSetObject(whitelistKey(account), "1")
}

func loadMetadata(tokenID string) (*TokenMetadata, error) {
	ptr := sdk.StateGetObject(metadataKey(tokenID))
	if ptr == nil {
		return nil, fmt.Errorf("metadata for %s not found", tokenID)
	}
	m, err := FromJSON[TokenMetadata](*ptr)
	if err != nil {
		return nil, fmt.Errorf("failed unmarshal metadata %s: %v", tokenID, err)
	}
	return m, nil
}

func saveMetadata(tokenID string, m *TokenMetadata) {
	sdk.StateSetObject(metadataKey(tokenID), ToJSON(m, "metadata"))
}

func loadToken(tokenID string) (*Token, error) {
	ptr := sdk.StateGetObject(tokenKey(tokenID))
	if ptr == nil {
		return nil, fmt.Errorf("token %s not found", tokenID)
	}
	t, err := FromJSON[Token](*ptr)
	if err != nil {
		return nil, fmt.Errorf("failed unmarshal token %s: %v", tokenID, err)
	}
	return t, nil
}

func saveToken(t *Token) {
	sdk.StateSetObject(tokenKey(t.ID), ToJSON(t, "token"))
}

func tokenExists(tokenID string) bool {
	return sdk.StateGetObject(tokenKey(tokenID)) != nil
}

// tokensOf returns the ids an account holds, in the order received.
func tokensOf(account string) []string {
	ptr := sdk.StateGetObject(ownerKey(account))
	if ptr == nil {
		return nil
	}
	ids, err := FromJSON[[]string](*ptr)
	abortOnError(err, "failed unmarshal owner index")
	return *ids
}

func addTokenToOwner(account, tokenID string) {
	ids := append(tokensOf(account), tokenID)
	sdk.StateSetObject(ownerKey(account), ToJSON(ids, "owner index"))
}

func removeTokenFromOwner(account, tokenID string) {
	ids := tokensOf(account)
	out := ids[:0]
	for _, id := range ids {
		if id != tokenID {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		sdk.StateDeleteObject(ownerKey(account))
		return
	}
	sdk.StateSetObject(ownerKey(account), ToJSON(out, "owner index"))
}

// parseTokenID accepts the decimal sequential ids the minter assigns.
func parseTokenID(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 || UInt64ToString(v) != s {
		return 0, fmt.Errorf("invalid token id '%s'", s)
	}
	return v, nil
}
