package token

import (
	"github.com/boatwingio/token-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Asset holds registry metadata of a single asset.
	Asset struct {
		// Ticker symbol, same as the asset code.
		Symbol string
		// Amount of decimals.
		Decimals int
		// Circulating supply.
		Supply int
		// Issuance cap.
		MaxSupply int
		// Account authorized to issue, retire and configure the asset.
		Issuer interop.Hash160
		// Milliseconds between an unlock request and its maturity.
		UnlockDelay int
		// Transfer fee percent, 0..100. Stored but not applied by any
		// operation, see package doc.
		FeeRatio int
		// Account configured to receive transfer fees. Same caveat as
		// FeeRatio.
		FeeReceiver interop.Hash160
	}

	// Account stores the balance record of a (holder, asset) pair.
	Account struct {
		// Total owned amount.
		Balance int
		// Locked part of Balance, not spendable until claimed back.
		Locked int
	}

	// LockEntry mirrors Account.Locked in an asset-scoped table, so that
	// holders with non-zero locks can be enumerated without scanning all
	// balance records.
	LockEntry struct {
		Holder interop.Hash160
		Locked int
	}

	// UnlockRequest is a filed intent to reduce the locked portion of the
	// holder's balance once MaturesAt has passed. At most one request per
	// (holder, asset) is live at any time.
	UnlockRequest struct {
		// Timestamps in milliseconds, runtime.GetTime precision.
		RequestedAt int
		MaturesAt   int
		Amount      int
	}
)

const (
	registryPrefix = 'r'
	accountPrefix  = 'a'
	stakePrefix    = 's'
	totalPrefix    = 't'
	requestPrefix  = 'u'

	// assetIDSize is the fixed width asset codes are padded to in storage
	// keys, so that composite (asset, holder) keys cannot collide.
	assetIDSize = 8

	maxAssetCodeLength = 7
	maxDecimals        = 18
	maxMemoLength      = 256
)

// nolint:unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		owner interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect length of owner script hash")
	}

	storage.Put(ctx, common.OwnerKey, args.owner)
	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the contract owner.
func Update(script []byte, manifest []byte, data interface{}) {
	ctx := storage.GetReadOnlyContext()
	if !common.HasUpdateAccess(ctx) {
		panic("only contract owner can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// CreateAsset registers a new asset in the contract. It can be invoked only
// by the contract owner. The asset starts with zero circulating supply, zero
// unlock delay and inert fee configuration pointing at the issuer. Together
// with the registry record the per-asset lock total is initialized, it exists
// for as long as the asset does.
func CreateAsset(issuer interop.Hash160, code string, decimals, maxSupply int) {
	ctx := storage.GetContext()
	if !common.HasUpdateAccess(ctx) {
		panic("only contract owner can register assets")
	}
	if len(issuer) != interop.Hash160Len {
		panic("incorrect length of issuer script hash")
	}
	if decimals < 0 || decimals > maxDecimals {
		panic("invalid decimals")
	}
	if maxSupply <= 0 {
		panic("max supply must be positive")
	}

	assetID := assetKey(code)
	if storage.Get(ctx, registryKey(assetID)) != nil {
		panic("asset already exists")
	}

	asset := Asset{
		Symbol:      code,
		Decimals:    decimals,
		Supply:      0,
		MaxSupply:   maxSupply,
		Issuer:      issuer,
		UnlockDelay: 0,
		FeeRatio:    0,
		FeeReceiver: issuer,
	}
	common.SetSerialized(ctx, registryKey(assetID), asset)
	storage.Put(ctx, totalKey(assetID), 0)

	runtime.Log("asset registered")
}

// SetUnlockDelay sets the time between filing an unlock request and its
// maturity for the asset, in milliseconds. It can be invoked only by the
// asset issuer. Requests already filed keep the maturity computed when they
// were created.
func SetUnlockDelay(code string, delayMillis int) {
	ctx := storage.GetContext()
	assetID := assetKey(code)
	asset := mustGetAsset(ctx, assetID)

	common.CheckOwnerWitness(asset.Issuer)
	if delayMillis < 0 {
		panic("negative unlock delay")
	}

	asset.UnlockDelay = delayMillis
	common.SetSerialized(ctx, registryKey(assetID), asset)
}

// SetTransferFee stores the transfer fee configuration of the asset. It can
// be invoked only by the asset issuer. No operation of this contract applies
// the fee, the fields are kept for off-chain consumers only.
func SetTransferFee(code string, ratio int, receiver interop.Hash160) {
	ctx := storage.GetContext()
	if len(receiver) != interop.Hash160Len {
		panic("incorrect length of receiver script hash")
	}

	assetID := assetKey(code)
	asset := mustGetAsset(ctx, assetID)

	common.CheckOwnerWitness(asset.Issuer)
	if ratio < 0 || ratio > 100 {
		panic("transfer fee ratio is out of bounds")
	}

	asset.FeeRatio = ratio
	asset.FeeReceiver = receiver
	common.SetSerialized(ctx, registryKey(assetID), asset)
}

// Issue increases the circulating supply of the asset and credits the issued
// amount to the issuer's balance record. It can be invoked only by the asset
// issuer. Issued funds always land on the issuer's record even when to names
// another account: the issuer forwards them with a regular transfer, which
// lets issuance policy apply before funds move.
//
// It produces Issue notification.
func Issue(to interop.Hash160, code string, amount int, memo string) {
	ctx := storage.GetContext()
	checkAmount(amount)
	checkMemo(memo)
	if len(to) != interop.Hash160Len {
		panic("incorrect length of recipient script hash")
	}

	assetID := assetKey(code)
	asset := mustGetAsset(ctx, assetID)

	common.CheckOwnerWitness(asset.Issuer)
	if amount > asset.MaxSupply-asset.Supply {
		panic("amount exceeds available supply")
	}

	asset.Supply += amount
	common.SetSerialized(ctx, registryKey(assetID), asset)
	addBalance(ctx, assetID, asset.Issuer, amount)

	runtime.Notify("Issue", code, amount)
	runtime.Log("assets issued")
}

// Retire debits the amount from the issuer's unlocked balance and decreases
// the circulating supply. It can be invoked only by the asset issuer.
//
// It produces Retire notification.
func Retire(code string, amount int, memo string) {
	ctx := storage.GetContext()
	checkAmount(amount)
	checkMemo(memo)

	assetID := assetKey(code)
	asset := mustGetAsset(ctx, assetID)

	common.CheckOwnerWitness(asset.Issuer)
	if amount > asset.Supply {
		panic("amount exceeds circulating supply")
	}

	subBalance(ctx, assetID, asset.Issuer, amount)
	asset.Supply -= amount
	common.SetSerialized(ctx, registryKey(assetID), asset)

	runtime.Notify("Retire", code, amount)
	runtime.Log("assets retired")
}

// Transfer moves amount of the asset from one account to another. It can be
// invoked only by the sender. Only the unlocked portion of the sender's
// balance is spendable, the destination record is created on first credit.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, code string, amount int, memo string) {
	ctx := storage.GetContext()
	checkAmount(amount)
	checkMemo(memo)
	if from.Equals(to) {
		panic("cannot transfer to self")
	}
	if len(to) != interop.Hash160Len {
		panic("incorrect length of recipient script hash")
	}

	assetID := assetKey(code)
	mustGetAsset(ctx, assetID)

	if !isUsableAddress(from) {
		panic("transfer is not signed by the sender")
	}

	subBalance(ctx, assetID, from, amount)
	addBalance(ctx, assetID, to, amount)

	runtime.Notify("Transfer", code, from, to, amount)
}

// Lock marks amount of the holder's balance as locked. It can be invoked only
// by the holder. The newly locked amount must fit under the total balance
// together with what is locked already. The holder's balance record, the
// asset lock cache entry and the per-asset lock total are updated in one
// step.
//
// It produces Lock notification.
func Lock(owner interop.Hash160, code string, amount int) {
	ctx := storage.GetContext()
	checkAmount(amount)

	assetID := assetKey(code)
	mustGetAsset(ctx, assetID)

	common.CheckOwnerWitness(owner)

	acc, ok := getAccount(ctx, accountKey(assetID, owner))
	if !ok {
		panic("balance record not found")
	}
	if acc.Balance < acc.Locked+amount {
		panic("overdrawn balance for lock")
	}

	applyLockDelta(ctx, assetID, owner, acc, amount)

	runtime.Notify("Lock", code, owner, amount)
	runtime.Log("funds locked")
}

// RequestUnlock files an intent to reduce the holder's locked amount after
// the asset's unlock delay. It can be invoked only by the holder. At most one
// request per (holder, asset) may be in flight. The locked amount itself is
// not changed: funds stay locked for the whole waiting period and are
// released only by Claim.
func RequestUnlock(owner interop.Hash160, code string, amount int) {
	ctx := storage.GetContext()
	checkAmount(amount)

	assetID := assetKey(code)
	asset := mustGetAsset(ctx, assetID)

	common.CheckOwnerWitness(owner)

	acc, ok := getAccount(ctx, accountKey(assetID, owner))
	if !ok {
		panic("balance record not found")
	}
	if acc.Locked < amount {
		panic("overdrawn locked balance")
	}

	reqKey := requestKey(assetID, owner)
	if storage.Get(ctx, reqKey) != nil {
		panic("unlock request already exists")
	}

	now := runtime.GetTime()
	req := UnlockRequest{
		RequestedAt: now,
		MaturesAt:   now + asset.UnlockDelay,
		Amount:      amount,
	}
	common.SetSerialized(ctx, reqKey, req)

	runtime.Log("unlock request filed")
}

// Claim consumes the holder's matured unlock request and reduces the locked
// amount by the requested value. It can be invoked only by the holder.
// Maturity is a predicate over the stored maturity time and the current
// block time, nothing is stored when a request matures. The raw balance is
// re-checked against the requested amount, it may have dropped since the
// request was filed.
//
// It produces Unlock notification.
func Claim(owner interop.Hash160, code string) {
	ctx := storage.GetContext()
	assetID := assetKey(code)
	mustGetAsset(ctx, assetID)

	common.CheckOwnerWitness(owner)

	reqKey := requestKey(assetID, owner)
	data := storage.Get(ctx, reqKey)
	if data == nil {
		panic("unlock request not found")
	}
	req := std.Deserialize(data.([]byte)).(UnlockRequest)
	if runtime.GetTime() < req.MaturesAt {
		panic("unlock request not matured yet")
	}

	acc, ok := getAccount(ctx, accountKey(assetID, owner))
	if !ok {
		panic("balance record not found")
	}
	if acc.Balance < req.Amount {
		panic("overdrawn balance")
	}

	applyLockDelta(ctx, assetID, owner, acc, -req.Amount)
	storage.Delete(ctx, reqKey)

	runtime.Notify("Unlock", code, owner, req.Amount)
	runtime.Log("unlock request claimed")
}

// CancelUnlock removes the holder's pending unlock request without changing
// any locked amounts, which is consistent since RequestUnlock never changed
// them either. It can be invoked only by the holder. There is no deferred
// claim to abort on this chain, removing the request is the whole
// cancellation.
func CancelUnlock(owner interop.Hash160, code string) {
	ctx := storage.GetContext()
	assetID := assetKey(code)

	common.CheckOwnerWitness(owner)

	reqKey := requestKey(assetID, owner)
	if storage.Get(ctx, reqKey) == nil {
		panic("unlock request not found")
	}
	storage.Delete(ctx, reqKey)

	runtime.Log("unlock request cancelled")
}

// Open creates zero balance record and zero lock cache entry for the holder
// at the expense of payer. It can be invoked only by the payer and does
// nothing for records that already exist.
func Open(owner interop.Hash160, code string, payer interop.Hash160) {
	ctx := storage.GetContext()
	if len(owner) != interop.Hash160Len {
		panic("incorrect length of owner script hash")
	}

	assetID := assetKey(code)
	mustGetAsset(ctx, assetID)

	common.CheckWitness(payer)

	accKey := accountKey(assetID, owner)
	if storage.Get(ctx, accKey) == nil {
		common.SetSerialized(ctx, accKey, Account{Balance: 0, Locked: 0})
	}

	entryKey := stakeKey(assetID, owner)
	if storage.Get(ctx, entryKey) == nil {
		common.SetSerialized(ctx, entryKey, LockEntry{Holder: owner, Locked: 0})
	}
}

// Close removes the holder's balance record and lock cache entry. It can be
// invoked only by the holder and only when both the balance and the locked
// amount are zero.
func Close(owner interop.Hash160, code string) {
	ctx := storage.GetContext()
	assetID := assetKey(code)

	common.CheckOwnerWitness(owner)

	accKey := accountKey(assetID, owner)
	data := storage.Get(ctx, accKey)
	if data == nil {
		panic("balance record not found")
	}
	acc := std.Deserialize(data.([]byte)).(Account)
	if acc.Balance != 0 || acc.Locked != 0 {
		panic("balance is not zero")
	}
	storage.Delete(ctx, accKey)

	entryKey := stakeKey(assetID, owner)
	if data := storage.Get(ctx, entryKey); data != nil {
		entry := std.Deserialize(data.([]byte)).(LockEntry)
		if entry.Locked != 0 {
			panic("locked balance is not zero")
		}
		storage.Delete(ctx, entryKey)
	}
}

// AssetOf returns the registry record of the asset.
func AssetOf(code string) Asset {
	ctx := storage.GetReadOnlyContext()
	return mustGetAsset(ctx, assetKey(code))
}

// SupplyOf returns the circulating supply of the asset.
func SupplyOf(code string) int {
	ctx := storage.GetReadOnlyContext()
	return mustGetAsset(ctx, assetKey(code)).Supply
}

// BalanceOf returns the balance of the holder's record for the asset. It is
// zero for records that do not exist.
func BalanceOf(owner interop.Hash160, code string) int {
	ctx := storage.GetReadOnlyContext()
	acc, _ := getAccount(ctx, accountKey(assetKey(code), owner))
	return acc.Balance
}

// LockedOf returns the locked portion of the holder's balance for the asset.
// It is zero for records that do not exist.
func LockedOf(owner interop.Hash160, code string) int {
	ctx := storage.GetReadOnlyContext()
	acc, _ := getAccount(ctx, accountKey(assetKey(code), owner))
	return acc.Locked
}

// TotalLockedOf returns the sum of locked amounts over all holders of the
// asset.
func TotalLockedOf(code string) int {
	ctx := storage.GetReadOnlyContext()
	raw := storage.Get(ctx, totalKey(assetKey(code)))
	if raw == nil {
		panic("asset not found")
	}
	return raw.(int)
}

// UnlockRequestOf returns the holder's live unlock request for the asset.
func UnlockRequestOf(owner interop.Hash160, code string) UnlockRequest {
	ctx := storage.GetReadOnlyContext()
	data := storage.Get(ctx, requestKey(assetKey(code), owner))
	if data == nil {
		panic("unlock request not found")
	}
	return std.Deserialize(data.([]byte)).(UnlockRequest)
}

// LockedAccounts returns an iterator over the asset's lock cache entries.
func LockedAccounts(code string) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	prefix := append([]byte{stakePrefix}, assetKey(code)...)
	return storage.Find(ctx, prefix, storage.ValuesOnly|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// subBalance debits the unlocked portion of the owner's record, the locked
// part of the balance is never spendable.
func subBalance(ctx storage.Context, assetID []byte, owner interop.Hash160, amount int) {
	key := accountKey(assetID, owner)
	acc, ok := getAccount(ctx, key)
	if !ok {
		panic("balance record not found")
	}
	if acc.Balance-acc.Locked < amount {
		panic("overdrawn balance")
	}

	acc.Balance -= amount
	common.SetSerialized(ctx, key, acc)
}

func addBalance(ctx storage.Context, assetID []byte, owner interop.Hash160, amount int) {
	key := accountKey(assetID, owner)
	acc, ok := getAccount(ctx, key)
	if !ok {
		acc = Account{Balance: amount, Locked: 0}
	} else {
		acc.Balance += amount
	}
	common.SetSerialized(ctx, key, acc)
}

// applyLockDelta changes the locked portion of the holder's balance record
// and keeps the lock cache entry and the per-asset lock total consistent
// with it. Every mutation of Account.Locked goes through here.
func applyLockDelta(ctx storage.Context, assetID []byte, holder interop.Hash160, acc Account, delta int) {
	totalRaw := storage.Get(ctx, totalKey(assetID))
	if totalRaw == nil {
		panic("asset not found")
	}

	acc.Locked += delta
	common.SetSerialized(ctx, accountKey(assetID, holder), acc)
	common.SetSerialized(ctx, stakeKey(assetID, holder), LockEntry{
		Holder: holder,
		Locked: acc.Locked,
	})
	storage.Put(ctx, totalKey(assetID), totalRaw.(int)+delta)
}

func mustGetAsset(ctx storage.Context, assetID []byte) Asset {
	data := storage.Get(ctx, registryKey(assetID))
	if data == nil {
		panic("asset not found")
	}
	return std.Deserialize(data.([]byte)).(Asset)
}

func getAccount(ctx storage.Context, key []byte) (Account, bool) {
	data := storage.Get(ctx, key)
	if data == nil {
		return Account{}, false
	}
	return std.Deserialize(data.([]byte)).(Account), true
}

// assetKey validates the asset code and pads it to assetIDSize.
func assetKey(code string) []byte {
	if !isValidCode(code) {
		panic("invalid asset code")
	}
	key := []byte(code)
	for len(key) < assetIDSize {
		key = append(key, 0)
	}
	return key
}

// isValidCode checks that the code is 1..7 uppercase ASCII letters.
func isValidCode(code string) bool {
	if len(code) == 0 || len(code) > maxAssetCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

func registryKey(assetID []byte) []byte {
	return append([]byte{registryPrefix}, assetID...)
}

func totalKey(assetID []byte) []byte {
	return append([]byte{totalPrefix}, assetID...)
}

func accountKey(assetID []byte, holder interop.Hash160) []byte {
	return append(append([]byte{accountPrefix}, assetID...), holder...)
}

func stakeKey(assetID []byte, holder interop.Hash160) []byte {
	return append(append([]byte{stakePrefix}, assetID...), holder...)
}

func requestKey(assetID []byte, holder interop.Hash160) []byte {
	return append(append([]byte{requestPrefix}, assetID...), holder...)
}

func checkAmount(amount int) {
	if amount <= 0 {
		panic("non-positive amount")
	}
}

func checkMemo(memo string) {
	if len(memo) > maxMemoLength {
		panic("memo exceeds 256 bytes")
	}
}

// isUsableAddress checks if the sender is either a correct NEO address or SC address.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}
