//go:build test

package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"slot_machine/sdk"
)

const (
	owner   = sdk.Address("hive:kangaroos")
	royalty = sdk.Address("hive:kangaroo-royalty")
	god     = sdk.Address("hive:gaius")
	alice   = sdk.Address("hive:alice")
	bob     = sdk.Address("hive:bob")
)

func invoke(from sdk.Address, intents []sdk.Intent, fn func(*string) *string, payload string) (res *string, abortErr *sdk.AbortError) {
	sdk.SetSender(from)
	sdk.SetIntents(intents)
	snap := sdk.TakeSnapshot()
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*sdk.AbortError)
			if !ok {
				panic(r)
			}
			sdk.RestoreSnapshot(snap)
			abortErr = ae
		}
	}()
	return fn(&payload), nil
}

func mustCall(t *testing.T, from sdk.Address, fn func(*string) *string, payload string, intents ...sdk.Intent) string {
	t.Helper()
	res, aerr := invoke(from, intents, fn, payload)
	if aerr != nil {
		assert.FailNow(t, "unexpected abort", aerr.Msg)
	}
	if res == nil {
		return ""
	}
	return *res
}

func expectAbort(t *testing.T, from sdk.Address, fn func(*string) *string, payload string, contains string, intents ...sdk.Intent) {
	t.Helper()
	_, aerr := invoke(from, intents, fn, payload)
	if assert.NotNil(t, aerr, "expected abort containing %q", contains) {
		assert.Contains(t, aerr.Msg, contains)
	}
}

func pay(limit string) sdk.Intent {
	return sdk.Intent{Type: "transfer.allow", Args: map[string]string{"limit": limit, "token": "hive"}}
}

// setupMinter initializes a 5-token collection at 10 HIVE, privileged
// god account, with metadata staged for every id.
func setupMinter(t *testing.T) {
	t.Helper()
	sdk.Reset()
	sdk.SetContractId("kangaroo_mint")
	for _, a := range []sdk.Address{alice, bob, god} {
		sdk.Fund(a, sdk.AssetHive, 100_000)
	}
	mustCall(t, owner, initImpl, `{
		"owner": "hive:kangaroos",
		"royaltyAccount": "hive:kangaroo-royalty",
		"royaltyShare": 500,
		"maxSupply": 5,
		"price": 10000,
		"asset": "hive",
		"privileged": ["hive:gaius"]
	}`)
	for i := 1; i <= 5; i++ {
		upload(t, i, fmt.Sprintf("ipfs://roo/%d.png", i))
	}
}

func upload(t *testing.T, id int, media string) {
	t.Helper()
	payload := fmt.Sprintf(`{"tokenId":"%d","metadata":{"title":"Roo #%d","media":%q}}`, id, id, media)
	mustCall(t, owner, metadataUploadImpl, payload)
}

func openMint(t *testing.T, whitelistOff bool) {
	t.Helper()
	mustCall(t, owner, activateMintingImpl, "")
	if whitelistOff {
		mustCall(t, owner, whitelistOffImpl, "")
	}
}

func TestMint_Sequential(t *testing.T) {
	setupMinter(t)
	openMint(t, true)
	ownerBefore := sdk.BalanceOf(owner, sdk.AssetHive)

	res := mustCall(t, alice, mintImpl, "", pay("10.000"))
	assert.JSONEq(t, `{"success":true,"data":{"id":"1"}}`, res)
	res = mustCall(t, alice, mintImpl, "hive:bob", pay("10.000"))
	assert.JSONEq(t, `{"success":true,"data":{"id":"2"}}`, res)

	assert.Equal(t, ownerBefore+20_000, sdk.BalanceOf(owner, sdk.AssetHive))
	assert.Equal(t, int64(100_000-20_000), sdk.BalanceOf(alice, sdk.AssetHive))
	assert.Equal(t, int64(100_000), sdk.BalanceOf(bob, sdk.AssetHive))
	assert.Zero(t, sdk.BalanceOf(sdk.ContractAddress(), sdk.AssetHive))

	tok, err := loadToken("2")
	if assert.NoError(t, err) {
		assert.Equal(t, "hive:bob", tok.Owner)
		assert.Equal(t, map[string]uint32{royalty.String(): 500}, tok.Royalty)
	}
	assert.Equal(t, uint64(2), loadConfig().Minted)
}

func TestMint_EmitsNep171Event(t *testing.T) {
	setupMinter(t)
	openMint(t, true)
	sdk.ClearLogs()
	mustCall(t, alice, mintImpl, "", pay("10.000"))

	logs := sdk.Logs()
	if assert.Len(t, logs, 1) {
		assert.JSONEq(t, `{"standard":"nep171","version":"nft-1.0.0","event":"nft_mint","data":[{"owner_id":"hive:alice","token_ids":["1"]}]}`, logs[0])
	}
}

func TestMint_Preconditions(t *testing.T) {
	setupMinter(t)
	expectAbort(t, alice, mintImpl, "", errNotActive, pay("10.000"))

	openMint(t, true)
	expectAbort(t, alice, mintImpl, "", "must attach 10.000 hive", pay("9.999"))
	expectAbort(t, alice, mintImpl, "", "must attach 10.000 hive")
	expectAbort(t, alice, mintImpl, "bad account", "invalid account", pay("10.000"))
}

func TestMint_DrawsOnlyThePrice(t *testing.T) {
	setupMinter(t)
	openMint(t, true)
	mustCall(t, alice, mintImpl, "", pay("50.000"))
	assert.Equal(t, int64(90_000), sdk.BalanceOf(alice, sdk.AssetHive))
}

func TestMint_SupplyCap(t *testing.T) {
	setupMinter(t)
	openMint(t, true)
	for i := 0; i < 5; i++ {
		mustCall(t, alice, mintImpl, "", pay("10.000"))
	}
	expectAbort(t, alice, mintImpl, "", errSoldOut, pay("10.000"))
	assert.JSONEq(t,
		`{"minted":"5","max_supply":"5","price":"10.000","asset":"hive","active":true,"whitelist":false}`,
		mustCall(t, bob, NftSupply, ""))
}

func TestMint_RequiresMetadata(t *testing.T) {
	sdk.Reset()
	sdk.Fund(alice, sdk.AssetHive, 100_000)
	mustCall(t, owner, initImpl, `{"owner":"hive:kangaroos","royaltyAccount":"hive:r","maxSupply":3,"price":0,"asset":"hive"}`)
	openMint(t, true)
	upload(t, 2, "ipfs://two")

	expectAbort(t, alice, mintImpl, "", errNoMetadata)
	upload(t, 1, "ipfs://one")
	mustCall(t, alice, mintImpl, "")
	mustCall(t, alice, mintImpl, "")
	expectAbort(t, alice, mintImpl, "", errNoMetadata)
}

func TestMint_MediaMustBeUnique(t *testing.T) {
	setupMinter(t)
	openMint(t, true)
	upload(t, 2, "ipfs://roo/1.png")

	mustCall(t, alice, mintImpl, "", pay("10.000"))
	before := sdk.BalanceOf(alice, sdk.AssetHive)
	expectAbort(t, alice, mintImpl, "", errMediaTaken, pay("10.000"))
	assert.Equal(t, before, sdk.BalanceOf(alice, sdk.AssetHive))

	upload(t, 2, "ipfs://roo/2b.png")
	mustCall(t, alice, mintImpl, "", pay("10.000"))
}

func TestMint_WhitelistMode(t *testing.T) {
	setupMinter(t)
	openMint(t, false)

	expectAbort(t, alice, mintImpl, "", errNotWhitelisted, pay("10.000"))
	mustCall(t, owner, whitelistAddImpl, `{"accounts":["hive:alice","hive:gaius"]}`)

	mustCall(t, alice, mintImpl, "", pay("10.000"))
	expectAbort(t, alice, mintImpl, "", errOnePerAccount, pay("10.000"))
	// bob pays, alice would receive: still one per receiver
	expectAbort(t, bob, mintImpl, "hive:alice", errOnePerAccount, pay("10.000"))

	// privileged accounts may mint more than one
	mustCall(t, god, mintImpl, "", pay("10.000"))
	mustCall(t, god, mintImpl, "", pay("10.000"))

	mustCall(t, owner, whitelistOffImpl, "")
	mustCall(t, alice, mintImpl, "", pay("10.000"))
	mustCall(t, bob, mintImpl, "", pay("10.000"))
	assert.Len(t, tokensOf(alice.String()), 2)
}

func TestTransfer(t *testing.T) {
	setupMinter(t)
	openMint(t, true)
	mustCall(t, alice, mintImpl, "", pay("10.000"))
	mustCall(t, alice, mintImpl, "", pay("10.000"))

	expectAbort(t, bob, transferImpl, `{"tokenId":"1","receiver":"hive:bob"}`, "only the token owner")
	expectAbort(t, alice, transferImpl, `{"tokenId":"1","receiver":"hive:alice"}`, "already owns")
	expectAbort(t, alice, transferImpl, `{"tokenId":"9","receiver":"hive:bob"}`, errNoToken)

	sdk.SetTx("tx-transfer")
	mustCall(t, alice, transferImpl, `{"tokenId":"1","receiver":"hive:bob","memo":"gift"}`)
	assert.Equal(t, []string{"2"}, tokensOf(alice.String()))
	assert.Equal(t, []string{"1"}, tokensOf(bob.String()))

	tok, _ := loadToken("1")
	assert.Equal(t, "hive:bob", tok.Owner)
	assert.Equal(t, "tx-transfer", tok.LastTransfer)

	logs := sdk.Logs()
	assert.Contains(t, logs[len(logs)-1], `"event":"nft_transfer"`)
	assert.Contains(t, logs[len(logs)-1], `"memo":"gift"`)
}

func TestViews(t *testing.T) {
	setupMinter(t)
	openMint(t, true)
	for i := 0; i < 3; i++ {
		mustCall(t, alice, mintImpl, "", pay("10.000"))
	}

	assert.Equal(t, "null", mustCall(t, bob, nftTokenImpl, "4"))
	v, err := FromJSON[TokenView](mustCall(t, bob, nftTokenImpl, "2"))
	if assert.NoError(t, err) {
		assert.Equal(t, "2", v.ID)
		assert.Equal(t, "Roo #2", v.Metadata.Title)
		assert.Equal(t, "ipfs://roo/2.png", v.Metadata.Media)
	}

	page, err := FromJSON[[]TokenView](mustCall(t, bob, nftTokensForOwnerImpl, "hive:alice|1|1"))
	if assert.NoError(t, err) && assert.Len(t, *page, 1) {
		assert.Equal(t, "2", (*page)[0].ID)
	}
	all, err := FromJSON[[]TokenView](mustCall(t, bob, nftTokensForOwnerImpl, "hive:alice"))
	if assert.NoError(t, err) {
		assert.Len(t, *all, 3)
	}
	assert.Equal(t, "[]", mustCall(t, bob, nftTokensForOwnerImpl, "hive:bob"))
	expectAbort(t, bob, nftTokensForOwnerImpl, "hive:alice|x", "invalid from index")
	expectAbort(t, bob, nftTokensForOwnerImpl, "hive:alice|0|0", "invalid limit")
}
