// Package token contains RPC wrappers for BoatWing Token contract.
package token

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// TokenAsset is a contract-specific token.Asset type used by its methods.
type TokenAsset struct {
	Symbol      string
	Decimals    *big.Int
	Supply      *big.Int
	MaxSupply   *big.Int
	Issuer      util.Uint160
	UnlockDelay *big.Int
	FeeRatio    *big.Int
	FeeReceiver util.Uint160
}

// TokenAccount is a contract-specific token.Account type used by its methods.
type TokenAccount struct {
	Balance *big.Int
	Locked  *big.Int
}

// TokenLockEntry is a contract-specific token.LockEntry type used by its methods.
type TokenLockEntry struct {
	Holder util.Uint160
	Locked *big.Int
}

// TokenUnlockRequest is a contract-specific token.UnlockRequest type used by its methods.
type TokenUnlockRequest struct {
	RequestedAt *big.Int
	MaturesAt   *big.Int
	Amount      *big.Int
}

// TransferEvent represents "Transfer" event emitted by the contract.
type TransferEvent struct {
	Code   string
	From   util.Uint160
	To     util.Uint160
	Amount *big.Int
}

// IssueEvent represents "Issue" event emitted by the contract.
type IssueEvent struct {
	Code   string
	Amount *big.Int
}

// RetireEvent represents "Retire" event emitted by the contract.
type RetireEvent struct {
	Code   string
	Amount *big.Int
}

// LockEvent represents "Lock" event emitted by the contract.
type LockEvent struct {
	Code   string
	Owner  util.Uint160
	Amount *big.Int
}

// UnlockEvent represents "Unlock" event emitted by the contract.
type UnlockEvent struct {
	Code   string
	Owner  util.Uint160
	Amount *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// AssetOf invokes `assetOf` method of contract.
func (c *ContractReader) AssetOf(code string) (*TokenAsset, error) {
	return itemToTokenAsset(unwrap.Item(c.invoker.Call(c.hash, "assetOf", code)))
}

// BalanceOf invokes `balanceOf` method of contract.
func (c *ContractReader) BalanceOf(owner util.Uint160, code string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "balanceOf", owner, code))
}

// LockedOf invokes `lockedOf` method of contract.
func (c *ContractReader) LockedOf(owner util.Uint160, code string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lockedOf", owner, code))
}

// SupplyOf invokes `supplyOf` method of contract.
func (c *ContractReader) SupplyOf(code string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "supplyOf", code))
}

// TotalLockedOf invokes `totalLockedOf` method of contract.
func (c *ContractReader) TotalLockedOf(code string) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalLockedOf", code))
}

// UnlockRequestOf invokes `unlockRequestOf` method of contract.
func (c *ContractReader) UnlockRequestOf(owner util.Uint160, code string) (*TokenUnlockRequest, error) {
	return itemToTokenUnlockRequest(unwrap.Item(c.invoker.Call(c.hash, "unlockRequestOf", owner, code)))
}

// LockedAccounts invokes `lockedAccounts` method of contract.
func (c *ContractReader) LockedAccounts(code string) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "lockedAccounts", code))
}

// LockedAccountsExpanded is similar to LockedAccounts (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for the transaction.
func (c *ContractReader) LockedAccountsExpanded(code string, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "lockedAccounts", _numOfIteratorItems, code))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// CancelUnlock creates a transaction invoking `cancelUnlock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CancelUnlock(owner util.Uint160, code string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "cancelUnlock", owner, code)
}

// CancelUnlockTransaction creates a transaction invoking `cancelUnlock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CancelUnlockTransaction(owner util.Uint160, code string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "cancelUnlock", owner, code)
}

// CancelUnlockUnsigned creates a transaction invoking `cancelUnlock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CancelUnlockUnsigned(owner util.Uint160, code string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "cancelUnlock", nil, owner, code)
}

// Claim creates a transaction invoking `claim` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Claim(owner util.Uint160, code string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "claim", owner, code)
}

// ClaimTransaction creates a transaction invoking `claim` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClaimTransaction(owner util.Uint160, code string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "claim", owner, code)
}

// ClaimUnsigned creates a transaction invoking `claim` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClaimUnsigned(owner util.Uint160, code string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "claim", nil, owner, code)
}

// Close creates a transaction invoking `close` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Close(owner util.Uint160, code string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "close", owner, code)
}

// CloseTransaction creates a transaction invoking `close` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CloseTransaction(owner util.Uint160, code string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "close", owner, code)
}

// CloseUnsigned creates a transaction invoking `close` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CloseUnsigned(owner util.Uint160, code string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "close", nil, owner, code)
}

// CreateAsset creates a transaction invoking `createAsset` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateAsset(issuer util.Uint160, code string, decimals *big.Int, maxSupply *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createAsset", issuer, code, decimals, maxSupply)
}

// CreateAssetTransaction creates a transaction invoking `createAsset` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateAssetTransaction(issuer util.Uint160, code string, decimals *big.Int, maxSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createAsset", issuer, code, decimals, maxSupply)
}

// CreateAssetUnsigned creates a transaction invoking `createAsset` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateAssetUnsigned(issuer util.Uint160, code string, decimals *big.Int, maxSupply *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createAsset", nil, issuer, code, decimals, maxSupply)
}

// Issue creates a transaction invoking `issue` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Issue(to util.Uint160, code string, amount *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "issue", to, code, amount, memo)
}

// IssueTransaction creates a transaction invoking `issue` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) IssueTransaction(to util.Uint160, code string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "issue", to, code, amount, memo)
}

// IssueUnsigned creates a transaction invoking `issue` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) IssueUnsigned(to util.Uint160, code string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "issue", nil, to, code, amount, memo)
}

// Lock creates a transaction invoking `lock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Lock(owner util.Uint160, code string, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "lock", owner, code, amount)
}

// LockTransaction creates a transaction invoking `lock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) LockTransaction(owner util.Uint160, code string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "lock", owner, code, amount)
}

// LockUnsigned creates a transaction invoking `lock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) LockUnsigned(owner util.Uint160, code string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "lock", nil, owner, code, amount)
}

// Open creates a transaction invoking `open` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Open(owner util.Uint160, code string, payer util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "open", owner, code, payer)
}

// OpenTransaction creates a transaction invoking `open` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) OpenTransaction(owner util.Uint160, code string, payer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "open", owner, code, payer)
}

// OpenUnsigned creates a transaction invoking `open` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) OpenUnsigned(owner util.Uint160, code string, payer util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "open", nil, owner, code, payer)
}

// RequestUnlock creates a transaction invoking `requestUnlock` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RequestUnlock(owner util.Uint160, code string, amount *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "requestUnlock", owner, code, amount)
}

// RequestUnlockTransaction creates a transaction invoking `requestUnlock` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RequestUnlockTransaction(owner util.Uint160, code string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "requestUnlock", owner, code, amount)
}

// RequestUnlockUnsigned creates a transaction invoking `requestUnlock` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RequestUnlockUnsigned(owner util.Uint160, code string, amount *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "requestUnlock", nil, owner, code, amount)
}

// Retire creates a transaction invoking `retire` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Retire(code string, amount *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "retire", code, amount, memo)
}

// RetireTransaction creates a transaction invoking `retire` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RetireTransaction(code string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "retire", code, amount, memo)
}

// RetireUnsigned creates a transaction invoking `retire` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RetireUnsigned(code string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "retire", nil, code, amount, memo)
}

// SetTransferFee creates a transaction invoking `setTransferFee` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetTransferFee(code string, ratio *big.Int, receiver util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setTransferFee", code, ratio, receiver)
}

// SetTransferFeeTransaction creates a transaction invoking `setTransferFee` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetTransferFeeTransaction(code string, ratio *big.Int, receiver util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setTransferFee", code, ratio, receiver)
}

// SetTransferFeeUnsigned creates a transaction invoking `setTransferFee` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetTransferFeeUnsigned(code string, ratio *big.Int, receiver util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setTransferFee", nil, code, ratio, receiver)
}

// SetUnlockDelay creates a transaction invoking `setUnlockDelay` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetUnlockDelay(code string, delayMillis *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setUnlockDelay", code, delayMillis)
}

// SetUnlockDelayTransaction creates a transaction invoking `setUnlockDelay` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetUnlockDelayTransaction(code string, delayMillis *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setUnlockDelay", code, delayMillis)
}

// SetUnlockDelayUnsigned creates a transaction invoking `setUnlockDelay` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetUnlockDelayUnsigned(code string, delayMillis *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setUnlockDelay", nil, code, delayMillis)
}

// Transfer creates a transaction invoking `transfer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Transfer(from util.Uint160, to util.Uint160, code string, amount *big.Int, memo string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "transfer", from, to, code, amount, memo)
}

// TransferTransaction creates a transaction invoking `transfer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) TransferTransaction(from util.Uint160, to util.Uint160, code string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "transfer", from, to, code, amount, memo)
}

// TransferUnsigned creates a transaction invoking `transfer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) TransferUnsigned(from util.Uint160, to util.Uint160, code string, amount *big.Int, memo string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "transfer", nil, from, to, code, amount, memo)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToTokenAsset converts stack item into *TokenAsset.
func itemToTokenAsset(item stackitem.Item, err error) (*TokenAsset, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenAsset)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenAsset from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenAsset) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Symbol, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Symbol: %w", err)
	}

	index++
	res.Decimals, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Decimals: %w", err)
	}

	index++
	res.Supply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Supply: %w", err)
	}

	index++
	res.MaxSupply, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaxSupply: %w", err)
	}

	index++
	res.Issuer, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Issuer: %w", err)
	}

	index++
	res.UnlockDelay, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field UnlockDelay: %w", err)
	}

	index++
	res.FeeRatio, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field FeeRatio: %w", err)
	}

	index++
	res.FeeReceiver, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field FeeReceiver: %w", err)
	}

	return nil
}

// itemToTokenAccount converts stack item into *TokenAccount.
func itemToTokenAccount(item stackitem.Item, err error) (*TokenAccount, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenAccount)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenAccount from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenAccount) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Balance, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Balance: %w", err)
	}

	index++
	res.Locked, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Locked: %w", err)
	}

	return nil
}

// itemToTokenLockEntry converts stack item into *TokenLockEntry.
func itemToTokenLockEntry(item stackitem.Item, err error) (*TokenLockEntry, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenLockEntry)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenLockEntry from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenLockEntry) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Holder, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Holder: %w", err)
	}

	index++
	res.Locked, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Locked: %w", err)
	}

	return nil
}

// itemToTokenUnlockRequest converts stack item into *TokenUnlockRequest.
func itemToTokenUnlockRequest(item stackitem.Item, err error) (*TokenUnlockRequest, error) {
	if err != nil {
		return nil, err
	}
	var res = new(TokenUnlockRequest)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of TokenUnlockRequest from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *TokenUnlockRequest) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.RequestedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field RequestedAt: %w", err)
	}

	index++
	res.MaturesAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field MaturesAt: %w", err)
	}

	index++
	res.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// TransferEventsFromApplicationLog retrieves a set of all emitted events
// with "Transfer" name from the provided [result.ApplicationLog].
func TransferEventsFromApplicationLog(log *result.ApplicationLog) ([]*TransferEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*TransferEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Transfer" {
				continue
			}
			event := new(TransferEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize TransferEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to TransferEvent or
// returns an error if it's not possible to do to so.
func (e *TransferEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Code, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	index++
	e.From, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field From: %w", err)
	}

	index++
	e.To, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field To: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// IssueEventsFromApplicationLog retrieves a set of all emitted events
// with "Issue" name from the provided [result.ApplicationLog].
func IssueEventsFromApplicationLog(log *result.ApplicationLog) ([]*IssueEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*IssueEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Issue" {
				continue
			}
			event := new(IssueEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize IssueEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to IssueEvent or
// returns an error if it's not possible to do to so.
func (e *IssueEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Code, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// RetireEventsFromApplicationLog retrieves a set of all emitted events
// with "Retire" name from the provided [result.ApplicationLog].
func RetireEventsFromApplicationLog(log *result.ApplicationLog) ([]*RetireEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RetireEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Retire" {
				continue
			}
			event := new(RetireEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RetireEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RetireEvent or
// returns an error if it's not possible to do to so.
func (e *RetireEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Code, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// LockEventsFromApplicationLog retrieves a set of all emitted events
// with "Lock" name from the provided [result.ApplicationLog].
func LockEventsFromApplicationLog(log *result.ApplicationLog) ([]*LockEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*LockEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Lock" {
				continue
			}
			event := new(LockEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize LockEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to LockEvent or
// returns an error if it's not possible to do to so.
func (e *LockEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Code, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	index++
	e.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}

// UnlockEventsFromApplicationLog retrieves a set of all emitted events
// with "Unlock" name from the provided [result.ApplicationLog].
func UnlockEventsFromApplicationLog(log *result.ApplicationLog) ([]*UnlockEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UnlockEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "Unlock" {
				continue
			}
			event := new(UnlockEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UnlockEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UnlockEvent or
// returns an error if it's not possible to do to so.
func (e *UnlockEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.Code, err = func(item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Code: %w", err)
	}

	index++
	e.Owner, err = func(item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	}(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	return nil
}
