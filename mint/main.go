package main

func main() {}

//go:wasmexport init
func Init(payload *string) *string { return initImpl(payload) }

//go:wasmexport nft_mint
func MintNFT(payload *string) *string { return mintImpl(payload) }

//go:wasmexport nft_transfer
func TransferNFT(payload *string) *string { return transferImpl(payload) }

// Owner functions
//
//go:wasmexport activate_minting
func ActivateMinting(payload *string) *string { return activateMintingImpl(payload) }

//go:wasmexport whitelist_off
func WhitelistOff(payload *string) *string { return whitelistOffImpl(payload) }

//go:wasmexport whitelist_add
func WhitelistAdd(payload *string) *string { return whitelistAddImpl(payload) }

//go:wasmexport metadata_upload
func MetadataUpload(payload *string) *string { return metadataUploadImpl(payload) }

//go:wasmexport royalty_update
func RoyaltyUpdate(payload *string) *string { return royaltyUpdateImpl(payload) }

// Views
//
//go:wasmexport nft_token
func NftToken(payload *string) *string { return nftTokenImpl(payload) }

//go:wasmexport nft_tokens_for_owner
func NftTokensForOwner(payload *string) *string { return nftTokensForOwnerImpl(payload) }

//go:wasmexport nft_supply
func NftSupply(payload *string) *string { return nftSupplyImpl() }
