package tests

import (
	"math/big"
	"path"
	"strings"
	"testing"

	"github.com/boatwingio/token-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const tokenPath = "../token"

func newTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	e := newExecutor(t)
	ctr := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, ctr, []interface{}{e.CommitteeHash})
	return e.CommitteeInvoker(ctr.Hash)
}

// newAsset registers an asset with the committee as both contract owner and
// issuer, which is the common arrangement in these tests.
func newAsset(t *testing.T, c *neotest.ContractInvoker, code string, maxSupply int64) {
	c.Invoke(t, stackitem.Null{}, "createAsset",
		c.CommitteeHash, code, int64(4), maxSupply)
}

func assetItem(code string, decimals, supply, maxSupply int64, issuer util.Uint160,
	delay, ratio int64, receiver util.Uint160) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray([]byte(code)),
		stackitem.Make(decimals),
		stackitem.Make(supply),
		stackitem.Make(maxSupply),
		stackitem.NewByteArray(issuer.BytesBE()),
		stackitem.Make(delay),
		stackitem.Make(ratio),
		stackitem.NewByteArray(receiver.BytesBE()),
	})
}

func TestTokenGeneric(t *testing.T) {
	c := newTokenInvoker(t)

	c.Invoke(t, int64(common.Version), "version")
}

func TestCreateAsset(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "only contract owner can register assets", "createAsset",
		acc.ScriptHash(), "BOAT", int64(4), int64(1000))

	c.InvokeFail(t, "invalid asset code", "createAsset",
		c.CommitteeHash, "", int64(4), int64(1000))
	c.InvokeFail(t, "invalid asset code", "createAsset",
		c.CommitteeHash, "boat", int64(4), int64(1000))
	c.InvokeFail(t, "invalid asset code", "createAsset",
		c.CommitteeHash, "TOOLONGX", int64(4), int64(1000))
	c.InvokeFail(t, "invalid decimals", "createAsset",
		c.CommitteeHash, "BOAT", int64(-1), int64(1000))
	c.InvokeFail(t, "invalid decimals", "createAsset",
		c.CommitteeHash, "BOAT", int64(19), int64(1000))
	c.InvokeFail(t, "max supply must be positive", "createAsset",
		c.CommitteeHash, "BOAT", int64(4), int64(0))

	newAsset(t, c, "BOAT", 1000)
	c.InvokeFail(t, "asset already exists", "createAsset",
		c.CommitteeHash, "BOAT", int64(4), int64(1000))

	c.Invoke(t, assetItem("BOAT", 4, 0, 1000, c.CommitteeHash, 0, 0, c.CommitteeHash),
		"assetOf", "BOAT")
	c.Invoke(t, int64(0), "supplyOf", "BOAT")
	c.Invoke(t, int64(0), "totalLockedOf", "BOAT")
	c.InvokeFail(t, "asset not found", "assetOf", "SHIP")
	c.InvokeFail(t, "asset not found", "totalLockedOf", "SHIP")
}

func TestSetUnlockDelay(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "setUnlockDelay", "BOAT", int64(5000))

	c.InvokeFail(t, "negative unlock delay", "setUnlockDelay", "BOAT", int64(-1))
	c.InvokeFail(t, "asset not found", "setUnlockDelay", "SHIP", int64(5000))

	c.Invoke(t, stackitem.Null{}, "setUnlockDelay", "BOAT", int64(5000))
	c.Invoke(t, assetItem("BOAT", 4, 0, 1000, c.CommitteeHash, 5000, 0, c.CommitteeHash),
		"assetOf", "BOAT")
}

func TestSetTransferFee(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "setTransferFee",
		"BOAT", int64(10), acc.ScriptHash())

	c.InvokeFail(t, "transfer fee ratio is out of bounds", "setTransferFee",
		"BOAT", int64(-1), c.CommitteeHash)
	c.InvokeFail(t, "transfer fee ratio is out of bounds", "setTransferFee",
		"BOAT", int64(101), c.CommitteeHash)

	c.Invoke(t, stackitem.Null{}, "setTransferFee", "BOAT", int64(10), acc.ScriptHash())
	c.Invoke(t, assetItem("BOAT", 4, 0, 1000, c.CommitteeHash, 0, 10, acc.ScriptHash()),
		"assetOf", "BOAT")

	// The fee configuration is inert, transfers move the full amount.
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(100), "")
	c.Invoke(t, stackitem.Null{}, "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(50), "")
	c.Invoke(t, int64(50), "balanceOf", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(50), "balanceOf", c.CommitteeHash, "BOAT")
}

func TestIssue(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "issue",
		acc.ScriptHash(), "BOAT", int64(100), "")

	c.InvokeFail(t, "non-positive amount", "issue", c.CommitteeHash, "BOAT", int64(0), "")
	c.InvokeFail(t, "memo exceeds 256 bytes", "issue",
		c.CommitteeHash, "BOAT", int64(100), strings.Repeat("m", 257))
	c.InvokeFail(t, "amount exceeds available supply", "issue",
		c.CommitteeHash, "BOAT", int64(1001), "")
	c.InvokeFail(t, "asset not found", "issue", c.CommitteeHash, "SHIP", int64(100), "")

	h := c.Invoke(t, stackitem.Null{}, "issue", acc.ScriptHash(), "BOAT", int64(500), "genesis")
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Issue", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray([]byte("BOAT")),
		stackitem.Make(500),
	}), aer.Events[0].Item)

	// Issued funds land on the issuer's record even when another recipient
	// is named, they are forwarded with a regular transfer.
	c.Invoke(t, int64(500), "balanceOf", c.CommitteeHash, "BOAT")
	c.Invoke(t, int64(0), "balanceOf", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(500), "supplyOf", "BOAT")

	c.InvokeFail(t, "amount exceeds available supply", "issue",
		c.CommitteeHash, "BOAT", int64(501), "")
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "")
	c.Invoke(t, int64(1000), "supplyOf", "BOAT")
}

func TestRetire(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "")

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "retire", "BOAT", int64(100), "")

	c.InvokeFail(t, "non-positive amount", "retire", "BOAT", int64(-1), "")
	c.InvokeFail(t, "amount exceeds circulating supply", "retire", "BOAT", int64(501), "")

	// Locked funds are not retirable.
	c.Invoke(t, stackitem.Null{}, "lock", c.CommitteeHash, "BOAT", int64(450))
	c.InvokeFail(t, "overdrawn balance", "retire", "BOAT", int64(100), "")

	h := c.Invoke(t, stackitem.Null{}, "retire", "BOAT", int64(50), "burn")
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Retire", aer.Events[0].Name)

	c.Invoke(t, int64(450), "supplyOf", "BOAT")
	c.Invoke(t, int64(450), "balanceOf", c.CommitteeHash, "BOAT")
}

func TestTransfer(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "")

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	c.InvokeFail(t, "cannot transfer to self", "transfer",
		c.CommitteeHash, c.CommitteeHash, "BOAT", int64(100), "")
	c.InvokeFail(t, "memo exceeds 256 bytes", "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(100), strings.Repeat("m", 257))
	cAcc.InvokeFail(t, "transfer is not signed by the sender", "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(100), "")
	c.InvokeFail(t, "overdrawn balance", "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(501), "")
	cAcc.InvokeFail(t, "balance record not found", "transfer",
		acc.ScriptHash(), c.CommitteeHash, "BOAT", int64(1), "")

	h := c.Invoke(t, stackitem.Null{}, "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(200), "hello")
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Transfer", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray([]byte("BOAT")),
		stackitem.NewByteArray(c.CommitteeHash.BytesBE()),
		stackitem.NewByteArray(acc.ScriptHash().BytesBE()),
		stackitem.Make(200),
	}), aer.Events[0].Item)

	c.Invoke(t, int64(300), "balanceOf", c.CommitteeHash, "BOAT")
	c.Invoke(t, int64(200), "balanceOf", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(500), "supplyOf", "BOAT")

	// The recipient record was created on first credit, spending from it
	// works straight away.
	cAcc.Invoke(t, stackitem.Null{}, "transfer",
		acc.ScriptHash(), c.CommitteeHash, "BOAT", int64(200), "")
	c.Invoke(t, int64(0), "balanceOf", acc.ScriptHash(), "BOAT")
}

func TestLock(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "")

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	c.Invoke(t, stackitem.Null{}, "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(200), "")

	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "lock",
		c.CommitteeHash, "BOAT", int64(100))
	cAcc.InvokeFail(t, "non-positive amount", "lock", acc.ScriptHash(), "BOAT", int64(0))
	cAcc.InvokeFail(t, "overdrawn balance for lock", "lock",
		acc.ScriptHash(), "BOAT", int64(201))
	cAcc.InvokeFail(t, "asset not found", "lock", acc.ScriptHash(), "SHIP", int64(100))

	other := c.NewAccount(t)
	cOther := c.WithSigners(other)
	cOther.InvokeFail(t, "balance record not found", "lock",
		other.ScriptHash(), "BOAT", int64(100))

	h := cAcc.Invoke(t, stackitem.Null{}, "lock", acc.ScriptHash(), "BOAT", int64(150))
	aer := cAcc.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Lock", aer.Events[0].Name)

	c.Invoke(t, int64(200), "balanceOf", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(150), "lockedOf", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(150), "totalLockedOf", "BOAT")

	// Locks stack until the whole balance is covered.
	cAcc.InvokeFail(t, "overdrawn balance for lock", "lock",
		acc.ScriptHash(), "BOAT", int64(51))
	cAcc.Invoke(t, stackitem.Null{}, "lock", acc.ScriptHash(), "BOAT", int64(50))
	c.Invoke(t, int64(200), "lockedOf", acc.ScriptHash(), "BOAT")

	// Only the unlocked portion is spendable.
	cAcc.InvokeFail(t, "overdrawn balance", "transfer",
		acc.ScriptHash(), c.CommitteeHash, "BOAT", int64(1), "")

	c.Invoke(t, stackitem.Null{}, "lock", c.CommitteeHash, "BOAT", int64(100))
	c.Invoke(t, int64(300), "totalLockedOf", "BOAT")
}

func TestLockedAccounts(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "")

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	c.Invoke(t, stackitem.Null{}, "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(200), "")

	s, err := c.TestInvoke(t, "lockedAccounts", "BOAT")
	require.NoError(t, err)
	iter, ok := s.Top().Value().(*storage.Iterator)
	require.True(t, ok)
	require.Equal(t, 0, len(iteratorToArray(iter)))

	cAcc.Invoke(t, stackitem.Null{}, "lock", acc.ScriptHash(), "BOAT", int64(150))
	c.Invoke(t, stackitem.Null{}, "lock", c.CommitteeHash, "BOAT", int64(100))

	s, err = c.TestInvoke(t, "lockedAccounts", "BOAT")
	require.NoError(t, err)
	iter, ok = s.Top().Value().(*storage.Iterator)
	require.True(t, ok)

	items := iteratorToArray(iter)
	require.Equal(t, 2, len(items))
	require.ElementsMatch(t, []stackitem.Item{
		stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray(acc.ScriptHash().BytesBE()),
			stackitem.Make(150),
		}),
		stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray(c.CommitteeHash.BytesBE()),
			stackitem.Make(100),
		}),
	}, items)
}

func TestRequestUnlock(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)
	c.Invoke(t, stackitem.Null{}, "setUnlockDelay", "BOAT", int64(10000))
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "")
	c.Invoke(t, stackitem.Null{}, "lock", c.CommitteeHash, "BOAT", int64(150))

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "requestUnlock",
		c.CommitteeHash, "BOAT", int64(100))
	cAcc.InvokeFail(t, "balance record not found", "requestUnlock",
		acc.ScriptHash(), "BOAT", int64(100))

	c.InvokeFail(t, "non-positive amount", "requestUnlock",
		c.CommitteeHash, "BOAT", int64(0))
	c.InvokeFail(t, "overdrawn locked balance", "requestUnlock",
		c.CommitteeHash, "BOAT", int64(151))
	c.InvokeFail(t, "unlock request not found", "unlockRequestOf",
		c.CommitteeHash, "BOAT")

	c.Invoke(t, stackitem.Null{}, "requestUnlock", c.CommitteeHash, "BOAT", int64(100))
	requestedAt := new(big.Int).SetUint64(c.TopBlock(t).Timestamp)
	maturesAt := new(big.Int).Add(requestedAt, big.NewInt(10000))

	c.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.NewBigInteger(requestedAt),
		stackitem.NewBigInteger(maturesAt),
		stackitem.Make(100),
	}), "unlockRequestOf", c.CommitteeHash, "BOAT")

	// Filing a request does not move any funds.
	c.Invoke(t, int64(150), "lockedOf", c.CommitteeHash, "BOAT")
	c.Invoke(t, int64(150), "totalLockedOf", "BOAT")
	c.Invoke(t, int64(500), "balanceOf", c.CommitteeHash, "BOAT")

	c.InvokeFail(t, "unlock request already exists", "requestUnlock",
		c.CommitteeHash, "BOAT", int64(10))

	// Requests already filed keep their maturity when the delay changes.
	c.Invoke(t, stackitem.Null{}, "setUnlockDelay", "BOAT", int64(99999))
	c.Invoke(t, stackitem.NewStruct([]stackitem.Item{
		stackitem.NewBigInteger(requestedAt),
		stackitem.NewBigInteger(maturesAt),
		stackitem.Make(100),
	}), "unlockRequestOf", c.CommitteeHash, "BOAT")
}

func TestClaim(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)
	c.Invoke(t, stackitem.Null{}, "setUnlockDelay", "BOAT", int64(100000))
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "")
	c.Invoke(t, stackitem.Null{}, "lock", c.CommitteeHash, "BOAT", int64(150))

	c.InvokeFail(t, "unlock request not found", "claim", c.CommitteeHash, "BOAT")

	c.Invoke(t, stackitem.Null{}, "requestUnlock", c.CommitteeHash, "BOAT", int64(100))
	maturesAt := c.TopBlock(t).Timestamp + 100000

	c.InvokeFail(t, "unlock request not matured yet", "claim", c.CommitteeHash, "BOAT")

	b := c.NewUnsignedBlock(t)
	b.Timestamp = maturesAt - 3 // the next invocation lands at -2
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
	c.InvokeFail(t, "unlock request not matured yet", "claim", c.CommitteeHash, "BOAT")

	b = c.NewUnsignedBlock(t)
	b.Timestamp = maturesAt - 1 // the next invocation lands exactly at maturity
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))

	h := c.Invoke(t, stackitem.Null{}, "claim", c.CommitteeHash, "BOAT")
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "Unlock", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray([]byte("BOAT")),
		stackitem.NewByteArray(c.CommitteeHash.BytesBE()),
		stackitem.Make(100),
	}), aer.Events[0].Item)

	// Claiming releases the lock without changing the balance.
	c.Invoke(t, int64(500), "balanceOf", c.CommitteeHash, "BOAT")
	c.Invoke(t, int64(50), "lockedOf", c.CommitteeHash, "BOAT")
	c.Invoke(t, int64(50), "totalLockedOf", "BOAT")

	// The request is consumed.
	c.InvokeFail(t, "unlock request not found", "unlockRequestOf",
		c.CommitteeHash, "BOAT")
	c.InvokeFail(t, "unlock request not found", "claim", c.CommitteeHash, "BOAT")
}

func TestCancelUnlock(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)
	c.Invoke(t, stackitem.Null{}, "setUnlockDelay", "BOAT", int64(100000))
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "")
	c.Invoke(t, stackitem.Null{}, "lock", c.CommitteeHash, "BOAT", int64(150))

	c.InvokeFail(t, "unlock request not found", "cancelUnlock", c.CommitteeHash, "BOAT")

	c.Invoke(t, stackitem.Null{}, "requestUnlock", c.CommitteeHash, "BOAT", int64(100))

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, common.ErrOwnerWitnessFailed, "cancelUnlock",
		c.CommitteeHash, "BOAT")

	c.Invoke(t, stackitem.Null{}, "cancelUnlock", c.CommitteeHash, "BOAT")
	c.InvokeFail(t, "unlock request not found", "unlockRequestOf",
		c.CommitteeHash, "BOAT")

	// Cancellation does not touch the locked amount and a fresh request can
	// be filed right away.
	c.Invoke(t, int64(150), "lockedOf", c.CommitteeHash, "BOAT")
	c.Invoke(t, stackitem.Null{}, "requestUnlock", c.CommitteeHash, "BOAT", int64(150))
}

func TestOpenClose(t *testing.T) {
	c := newTokenInvoker(t)
	newAsset(t, c, "BOAT", 1000)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	c.InvokeFail(t, "asset not found", "open", acc.ScriptHash(), "SHIP", c.CommitteeHash)
	cAcc.InvokeFail(t, common.ErrWitnessFailed, "open",
		acc.ScriptHash(), "BOAT", c.CommitteeHash)

	c.Invoke(t, stackitem.Null{}, "open", acc.ScriptHash(), "BOAT", c.CommitteeHash)
	c.Invoke(t, int64(0), "balanceOf", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(0), "lockedOf", acc.ScriptHash(), "BOAT")

	// Opening an existing record is a no-op.
	c.Invoke(t, stackitem.Null{}, "open", acc.ScriptHash(), "BOAT", c.CommitteeHash)

	// An opened record is spendable-from once funded and can be locked into.
	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(100), "")
	c.Invoke(t, stackitem.Null{}, "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(10), "")

	cAcc.InvokeFail(t, "balance is not zero", "close", acc.ScriptHash(), "BOAT")

	cAcc.Invoke(t, stackitem.Null{}, "lock", acc.ScriptHash(), "BOAT", int64(10))
	cAcc.InvokeFail(t, "balance is not zero", "close", acc.ScriptHash(), "BOAT")
	cAcc.Invoke(t, stackitem.Null{}, "requestUnlock", acc.ScriptHash(), "BOAT", int64(10))
	cAcc.Invoke(t, stackitem.Null{}, "claim", acc.ScriptHash(), "BOAT")
	cAcc.Invoke(t, stackitem.Null{}, "transfer",
		acc.ScriptHash(), c.CommitteeHash, "BOAT", int64(10), "")

	other := c.NewAccount(t)
	cOther := c.WithSigners(other)
	cOther.InvokeFail(t, common.ErrOwnerWitnessFailed, "close", acc.ScriptHash(), "BOAT")

	cAcc.Invoke(t, stackitem.Null{}, "close", acc.ScriptHash(), "BOAT")
	cAcc.InvokeFail(t, "balance record not found", "close", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(0), "balanceOf", acc.ScriptHash(), "BOAT")
}

// TestLockedLifecycle walks the whole lock lifecycle on a single asset:
// issuance up to the cap, funding a holder, locking, the delayed unlock
// round-trip and the spendability bound afterwards.
func TestLockedLifecycle(t *testing.T) {
	c := newTokenInvoker(t)

	c.Invoke(t, stackitem.Null{}, "createAsset",
		c.CommitteeHash, "BOAT", int64(4), int64(1000))
	c.Invoke(t, stackitem.Null{}, "setUnlockDelay", "BOAT", int64(10000))

	c.Invoke(t, stackitem.Null{}, "issue", c.CommitteeHash, "BOAT", int64(500), "genesis")
	c.Invoke(t, int64(500), "supplyOf", "BOAT")

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	c.Invoke(t, stackitem.Null{}, "transfer",
		c.CommitteeHash, acc.ScriptHash(), "BOAT", int64(200), "funding")

	cAcc.Invoke(t, stackitem.Null{}, "lock", acc.ScriptHash(), "BOAT", int64(150))
	c.Invoke(t, int64(150), "totalLockedOf", "BOAT")

	cAcc.Invoke(t, stackitem.Null{}, "requestUnlock", acc.ScriptHash(), "BOAT", int64(100))
	maturesAt := c.TopBlock(t).Timestamp + 10000

	cAcc.InvokeFail(t, "unlock request not matured yet", "claim", acc.ScriptHash(), "BOAT")

	b := c.NewUnsignedBlock(t)
	b.Timestamp = maturesAt - 1
	require.NoError(t, c.Chain.AddBlock(c.SignBlock(b)))
	cAcc.Invoke(t, stackitem.Null{}, "claim", acc.ScriptHash(), "BOAT")

	c.Invoke(t, int64(200), "balanceOf", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(50), "lockedOf", acc.ScriptHash(), "BOAT")
	c.Invoke(t, int64(50), "totalLockedOf", "BOAT")

	cAcc.InvokeFail(t, "overdrawn balance", "transfer",
		acc.ScriptHash(), c.CommitteeHash, "BOAT", int64(160), "")
	cAcc.Invoke(t, stackitem.Null{}, "transfer",
		acc.ScriptHash(), c.CommitteeHash, "BOAT", int64(150), "")
	c.Invoke(t, int64(500), "supplyOf", "BOAT")
}

func TestUpdate(t *testing.T) {
	c := newTokenInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, "only contract owner can update contract", "update",
		[]byte{}, []byte{}, nil)
}
