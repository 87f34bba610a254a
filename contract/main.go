package main

func main() {}

// ---------- Entry: Setup ----------

//go:wasmexport init
func Init(payload *string) *string { return initImpl(payload) }

// ---------- Entry: Wagering ----------

//go:wasmexport play
func Play(payload *string) *string { return playImpl(payload) }

//go:wasmexport deposit
func Deposit(payload *string) *string { return depositImpl(payload) }

//go:wasmexport fund_house
func FundHouse(payload *string) *string { return fundHouseImpl(payload) }

//go:wasmexport on_token_transfer
func OnTokenTransfer(payload *string) *string { return onTokenTransferImpl(payload) }

//go:wasmexport withdraw
func Withdraw(payload *string) *string { return withdrawImpl(payload) }

// ---------- Entry: Storage ----------

//go:wasmexport storage_deposit
func StorageDeposit(payload *string) *string { return storageDepositImpl(payload) }

//go:wasmexport storage_withdraw
func StorageWithdraw(payload *string) *string { return storageWithdrawImpl(payload) }

//go:wasmexport storage_unregister
func StorageUnregister(payload *string) *string { return storageUnregisterImpl(payload) }

//go:wasmexport storage_balance_of
func StorageBalanceOf(payload *string) *string { return storageBalanceOfImpl(payload) }

//go:wasmexport storage_balance_bounds
func GetStorageBalanceBounds(payload *string) *string { return storageBalanceBoundsImpl() }

// ---------- Entry: Admin ----------

//go:wasmexport admin_panic
func AdminPanic(payload *string) *string { return adminPanicImpl(payload) }

//go:wasmexport admin_update
func AdminUpdate(payload *string) *string { return adminUpdateImpl(payload) }

//go:wasmexport admin_create_partner
func AdminCreatePartner(payload *string) *string { return createPartnerImpl(payload) }

//go:wasmexport admin_alter_partner
func AdminAlterPartner(payload *string) *string { return alterPartnerImpl(payload) }

//go:wasmexport admin_withdraw_owner
func AdminWithdrawOwner(payload *string) *string { return adminWithdrawOwnerImpl(payload) }

//go:wasmexport admin_withdraw_nft
func AdminWithdrawNft(payload *string) *string { return adminWithdrawNftImpl(payload) }

//go:wasmexport admin_distribute_nft
func AdminDistributeNft(payload *string) *string { return adminDistributeNftImpl(payload) }

// ---------- Entry: Partner ----------

//go:wasmexport partner_withdraw
func PartnerWithdraw(payload *string) *string { return partnerWithdrawImpl(payload) }

//go:wasmexport partner_withdraw_house
func PartnerWithdrawHouse(payload *string) *string { return partnerWithdrawHouseImpl(payload) }

// ---------- Entry: Views ----------

//go:wasmexport get_state
func GetState(payload *string) *string { return getStateImpl() }

//go:wasmexport get_partner
func GetPartner(payload *string) *string { return getPartnerImpl(payload) }

//go:wasmexport get_pools
func GetPools(payload *string) *string { return getPoolsImpl(payload) }

//go:wasmexport get_credits
func GetCredits(payload *string) *string { return getCreditsImpl(payload) }
