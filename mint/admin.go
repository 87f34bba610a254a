package main

import (
	"slot_machine/sdk"
)

func initImpl(payload *string) *string {
	require(!isInitialized(), errInitialized)
	input, err := FromJSON[InitArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid init args")
	abortOnError(input.Validate(), ERR_INPUT)

	cfg := &MintConfig{
		Owner:          input.Owner,
		RoyaltyAccount: input.RoyaltyAccount,
		RoyaltyShare:   input.RoyaltyShare,
		MaxSupply:      input.MaxSupply,
		Price:          input.Price,
		Asset:          sdk.Asset(input.Asset),
		Privileged:     input.Privileged,
		Whitelist:      true,
	}
	saveConfig(cfg)
	return returnJsonResponse(true, map[string]interface{}{"owner": cfg.Owner})
}

func requireOwner() *MintConfig {
	cfg := loadConfig()
	require(getSenderAddress() == cfg.Owner, errNotOwner)
	return cfg
}

func activateMintingImpl(payload *string) *string {
	cfg := requireOwner()
	cfg.Active = true
	saveConfig(cfg)
	return returnJsonResponse(true, map[string]interface{}{"active": true})
}

func whitelistOffImpl(payload *string) *string {
	cfg := requireOwner()
	cfg.Whitelist = false
	saveConfig(cfg)
	return returnJsonResponse(true, map[string]interface{}{"whitelist": false})
}

func whitelistAddImpl(payload *string) *string {
	requireOwner()
	input, err := FromJSON[WhitelistArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid whitelist args")
	require(len(input.Accounts) > 0, ERR_INPUT+": accounts list is empty")
	require(len(input.Accounts) <= maxWhitelistBatch, ERR_INPUT+": too many accounts in one batch")

	added := 0
	for _, a := range input.Accounts {
		abortOnError(validateAccount(a), ERR_INPUT)
		if !isWhitelisted(a) {
			setWhitelisted(a)
			added++
		}
	}
	return returnJsonResponse(true, map[string]interface{}{"added": added})
}

// metadataUploadImpl stages metadata for a token that is not minted yet.
func metadataUploadImpl(payload *string) *string {
	cfg := requireOwner()
	input, err := FromJSON[MetadataUploadArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid metadata args")
	id, err := parseTokenID(input.TokenID)
	abortOnError(err, ERR_INPUT)
	require(id <= cfg.MaxSupply, ERR_INPUT+": token id beyond max supply")
	require(!tokenExists(input.TokenID), ERR_STATE+": token "+input.TokenID+" is already minted")
	abortOnError(input.Metadata.Validate(), ERR_INPUT)

	saveMetadata(input.TokenID, &input.Metadata)
	return returnJsonResponse(true, map[string]interface{}{"id": input.TokenID})
}

func royaltyUpdateImpl(payload *string) *string {
	requireOwner()
	input, err := FromJSON[RoyaltyUpdateArgs](payloadOrEmpty(payload))
	abortOnError(err, ERR_INPUT+": invalid royalty args")
	abortOnError(validateAccount(input.Account), ERR_INPUT)
	require(input.Share <= royaltyBase, ERR_INPUT+": share exceeds 100%")

	token, err := loadToken(input.TokenID)
	abortOnError(err, ERR_MISSING)
	token.Royalty = map[string]uint32{input.Account: input.Share}
	saveToken(token)
	return returnJsonResponse(true, map[string]interface{}{"id": token.ID})
}
