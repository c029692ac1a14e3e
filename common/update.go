package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// OwnerKey is a storage key of the contract owner account.
const OwnerKey = "contractOwner"

// HasUpdateAccess returns true if the carrier transaction is witnessed
// by the contract owner.
func HasUpdateAccess(ctx storage.Context) bool {
	owner := storage.Get(ctx, OwnerKey).(interop.Hash160)
	return runtime.CheckWitness(owner)
}
