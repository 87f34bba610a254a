package main

import (
	"errors"
	"fmt"
	"strings"

	"slot_machine/sdk"
)

const (
	maxTitleLength         = 200
	maxDescriptionLength   = 1000
	maxMediaLength         = 512
	maxExtraLength         = 2048
	maxPrivilegedAccounts  = 10
	maxWhitelistBatch      = 100
	royaltyBase            = 10_000
	nftStandardName        = "nep171"
	nftMetadataSpecVersion = "nft-1.0.0"
)

const (
	ERR_AUTH    = "ERR_AUTH"
	ERR_STATE   = "ERR_STATE"
	ERR_INPUT   = "ERR_INPUT"
	ERR_MISSING = "ERR_MISSING"
)

const (
	errNotOwner       = ERR_AUTH + ": you are not the owner"
	errNotInitialized = ERR_STATE + ": contract is not initialized"
	errInitialized    = ERR_STATE + ": contract is already initialized"
	errNotActive      = ERR_STATE + ": minting is not activated"
	errSoldOut        = ERR_STATE + ": all tokens have been minted"
	errNotWhitelisted = ERR_AUTH + ": receiver is not whitelisted"
	errOnePerAccount  = ERR_AUTH + ": whitelist mode allows one mint per account"
	errNoMetadata     = ERR_MISSING + ": no metadata uploaded for next token"
	errMediaTaken     = ERR_INPUT + ": media already minted"
	errNoToken        = ERR_MISSING + ": token does not exist"
)

// MintConfig is the minter's state. Minting starts inactive and in
// whitelist mode.
type MintConfig struct {
	Owner          string    `json:"owner"`
	RoyaltyAccount string    `json:"royaltyAccount"`
	RoyaltyShare   uint32    `json:"royaltyShare"`
	MaxSupply      uint64    `json:"maxSupply"`
	Price          uint64    `json:"price"`
	Asset          sdk.Asset `json:"asset"`
	Privileged     []string  `json:"privileged"`
	Active         bool      `json:"active"`
	Whitelist      bool      `json:"whitelist"`
	Minted         uint64    `json:"minted"`
}

func (c *MintConfig) isPrivileged(account string) bool {
	for _, p := range c.Privileged {
		if p == account {
			return true
		}
	}
	return false
}

// TokenMetadata follows the NEP-177 field names.
type TokenMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Media       string `json:"media"`
	MediaHash   string `json:"media_hash,omitempty"`
	Extra       string `json:"extra,omitempty"`
}

type Token struct {
	ID           string            `json:"token_id"`
	Owner        string            `json:"owner_id"`
	Royalty      map[string]uint32 `json:"royalty"`
	MintedInTx   string            `json:"minted_in_tx"`
	LastTransfer string            `json:"last_transfer_tx,omitempty"`
}

// TokenView is a token joined with its metadata.
type TokenView struct {
	Token
	Metadata TokenMetadata `json:"metadata"`
}

// function arguments

type InitArgs struct {
	Owner          string   `json:"owner"`
	RoyaltyAccount string   `json:"royaltyAccount"`
	RoyaltyShare   uint32   `json:"royaltyShare"`
	MaxSupply      uint64   `json:"maxSupply"`
	Price          uint64   `json:"price"`
	Asset          string   `json:"asset"`
	Privileged     []string `json:"privileged"`
}

type MetadataUploadArgs struct {
	TokenID  string        `json:"tokenId"`
	Metadata TokenMetadata `json:"metadata"`
}

type WhitelistArgs struct {
	Accounts []string `json:"accounts"`
}

type RoyaltyUpdateArgs struct {
	TokenID string `json:"tokenId"`
	Account string `json:"account"`
	Share   uint32 `json:"share"`
}

type TransferArgs struct {
	TokenID  string `json:"tokenId"`
	Receiver string `json:"receiver"`
	Memo     string `json:"memo,omitempty"`
}

func (a *InitArgs) Validate() error {
	if a.Owner == "" {
		return errors.New("owner is mandatory")
	}
	if a.RoyaltyAccount == "" {
		return errors.New("royaltyAccount is mandatory")
	}
	if a.RoyaltyShare > royaltyBase {
		return fmt.Errorf("royaltyShare can be at most %d", royaltyBase)
	}
	if a.MaxSupply == 0 {
		return errors.New("maxSupply must be positive")
	}
	if a.Asset != sdk.AssetHive.String() && a.Asset != sdk.AssetHbd.String() {
		return fmt.Errorf("asset '%s' is not supported", a.Asset)
	}
	if len(a.Privileged) > maxPrivilegedAccounts {
		return fmt.Errorf("at most %d privileged accounts", maxPrivilegedAccounts)
	}
	return nil
}

func (m *TokenMetadata) Validate() error {
	if m.Title == "" {
		return errors.New("title is mandatory")
	}
	if len(m.Title) > maxTitleLength {
		return fmt.Errorf("title can only be %d characters long", maxTitleLength)
	}
	if len(m.Description) > maxDescriptionLength {
		return fmt.Errorf("description can only be %d characters long", maxDescriptionLength)
	}
	if m.Media == "" {
		return errors.New("media is mandatory")
	}
	if len(m.Media) > maxMediaLength {
		return fmt.Errorf("media can only be %d characters long", maxMediaLength)
	}
	if len(m.Extra) > maxExtraLength {
		return fmt.Errorf("extra can only be %d characters long", maxExtraLength)
	}
	return nil
}

func validateAccount(account string) error {
	if account == "" {
		return errors.New("account is mandatory")
	}
	if strings.ContainsAny(account, " |") {
		return fmt.Errorf("invalid account '%s'", account)
	}
	return nil
}
