package main

import (
	"math"

	"slot_machine/sdk"
)

// mintImpl mints the next sequential token to receiver (the sender when
// empty). The price is drawn from the caller's transfer.allow intent and
// passed on to the owner in full.
func mintImpl(payload *string) *string {
	receiver := payloadOrEmpty(payload)
	if receiver == "" {
		receiver = getSenderAddress()
	}
	abortOnError(validateAccount(receiver), ERR_INPUT)

	cfg := loadConfig()
	require(cfg.Active, errNotActive)
	require(cfg.Minted < cfg.MaxSupply, errSoldOut)

	if cfg.Whitelist {
		require(isWhitelisted(receiver), errNotWhitelisted)
		if !cfg.isPrivileged(receiver) {
			require(len(tokensOf(receiver)) == 0, errOnePerAccount)
		}
	}

	tokenID := UInt64ToString(cfg.Minted + 1)
	require(!tokenExists(tokenID), ERR_STATE+": token "+tokenID+" already exists")
	meta, err := loadMetadata(tokenID)
	if err != nil {
		sdk.Abort(errNoMetadata)
	}
	mk := mediaKey(meta.Media)
	require(sdk.StateGetObject(mk) == nil, errMediaTaken)

	if cfg.Price > 0 {
		attached := attachedAmount(cfg.Asset)
		require(attached >= cfg.Price, ERR_INPUT+": must attach "+formatAmount(cfg.Price)+" "+cfg.Asset.String()+" to cover costs")
		require(cfg.Price <= math.MaxInt64, ERR_INPUT+": price too large")
		sdk.HiveDraw(int64(cfg.Price), cfg.Asset)
		sdk.HiveTransfer(sdk.Address(cfg.Owner), int64(cfg.Price), cfg.Asset)
	}

	token := &Token{
		ID:         tokenID,
		Owner:      receiver,
		Royalty:    map[string]uint32{cfg.RoyaltyAccount: cfg.RoyaltyShare},
		MintedInTx: getTxID(),
	}
	saveToken(token)
	sdk.StateSetObject(mk, tokenID)
	addTokenToOwner(receiver, tokenID)

	cfg.Minted++
	saveConfig(cfg)
	EmitNftMint(receiver, tokenID)

	return returnJsonResponse(
		true, map[string]interface{}{
			"id": tokenID,
		},
	)
}

// transferImpl moves a token between accounts. Only its owner may send it.
func transferImpl(payload *string) *string {
	input, err := FromJSON[TransferArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid transfer args")
	abortOnError(validateAccount(input.Receiver), ERR_INPUT)
	loadConfig()

	token, err := loadToken(input.TokenID)
	if err != nil {
		sdk.Abort(errNoToken)
	}
	caller := getSenderAddress()
	require(caller == token.Owner, ERR_AUTH+": only the token owner can transfer it")
	require(input.Receiver != token.Owner, ERR_INPUT+": receiver already owns the token")

	removeTokenFromOwner(token.Owner, token.ID)
	addTokenToOwner(input.Receiver, token.ID)
	prev := token.Owner
	token.Owner = input.Receiver
	token.LastTransfer = getTxID()
	saveToken(token)
	EmitNftTransfer(prev, input.Receiver, token.ID, input.Memo)

	return returnJsonResponse(
		true, map[string]interface{}{
			"id": token.ID,
		},
	)
}
