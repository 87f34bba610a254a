package main

import (
	"slot_machine/sdk"
)

// EventLog is the NEP-171 event envelope indexers of NFT contracts expect.
type EventLog struct {
	Standard string      `json:"standard"`
	Version  string      `json:"version"`
	Event    string      `json:"event"`
	Data     interface{} `json:"data"`
}

type NftMintLog struct {
	OwnerID  string   `json:"owner_id"`
	TokenIDs []string `json:"token_ids"`
	Memo     string   `json:"memo,omitempty"`
}

type NftTransferLog struct {
	OldOwnerID string   `json:"old_owner_id"`
	NewOwnerID string   `json:"new_owner_id"`
	TokenIDs   []string `json:"token_ids"`
	Memo       string   `json:"memo,omitempty"`
}

func emitNftEvent(event string, data interface{}) {
	sdk.Log(ToJSON(EventLog{
		Standard: nftStandardName,
		Version:  nftMetadataSpecVersion,
		Event:    event,
		Data:     data,
	}, event+" event"))
}

func EmitNftMint(owner, tokenID string) {
	emitNftEvent("nft_mint", []NftMintLog{{OwnerID: owner, TokenIDs: []string{tokenID}}})
}

func EmitNftTransfer(from, to, tokenID, memo string) {
	emitNftEvent("nft_transfer", []NftTransferLog{{
		OldOwnerID: from,
		NewOwnerID: to,
		TokenIDs:   []string{tokenID},
		Memo:       memo,
	}})
}
