package main

import (
	"context"
	"fmt"
	"time"

	"github.com/boatwingio/token-contract/rpc/token"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// iteratorBatchSize is the number of lock entries requested from the RPC
// server per traverseiterator call.
const iteratorBatchSize = 100

// remoteBlockchain provides read access to the token contract deployed on a
// remote Neo chain.
type remoteBlockchain struct {
	rpc   *rpcclient.Client
	inv   *invoker.Invoker
	token *token.ContractReader
}

// newRemoteBlockchain dials Neo RPC server and returns remoteBlockchain based
// on the opened connection. Connection and all requests are done within 15s
// timeout.
func newRemoteBlockchain(blockChainRPCEndpoint, contractAddress string) (*remoteBlockchain, error) {
	h, err := util.Uint160DecodeStringLE(contractAddress)
	if err != nil {
		return nil, fmt.Errorf("decode contract address: %w", err)
	}

	c, err := rpcclient.New(context.Background(), blockChainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	inv := invoker.New(c, nil)

	return &remoteBlockchain{
		rpc:   c,
		inv:   inv,
		token: token.NewReader(inv, h),
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// lockedAccounts collects all lock cache entries of the asset by traversing
// the server-side iterator session opened by the lockedAccounts contract
// method.
func (x *remoteBlockchain) lockedAccounts(assetCode string) ([]token.TokenLockEntry, error) {
	sessionID, iter, err := x.token.LockedAccounts(assetCode)
	if err != nil {
		return nil, fmt.Errorf("open lock entry iterator: %w", err)
	}

	if sessionID != (uuid.UUID{}) {
		defer func() {
			_ = x.inv.TerminateSession(sessionID)
		}()
	}

	var res []token.TokenLockEntry

	for {
		items, err := x.inv.TraverseIterator(sessionID, &iter, iteratorBatchSize)
		if err != nil {
			return nil, fmt.Errorf("traverse lock entry iterator: %w", err)
		}
		if len(items) == 0 {
			return res, nil
		}

		for i := range items {
			var e token.TokenLockEntry

			err = e.FromStackItem(items[i])
			if err != nil {
				return nil, fmt.Errorf("decode lock entry: %w", err)
			}

			res = append(res, e)
		}
	}
}
