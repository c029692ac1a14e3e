package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/mr-tron/base58"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddress := flag.String("contract", "", "Address of the token contract (LE hex)")
	assetCode := flag.String("asset", "", "Code of the asset to dump")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddress == "":
		log.Fatal("missing token contract address")
	case *assetCode == "":
		log.Fatal("missing asset code")
	}

	err := _dump(*neoRPCEndpoint, *contractAddress, *assetCode)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint, contractAddress, assetCode string) error {
	b, err := newRemoteBlockchain(neoBlockchainRPCEndpoint, contractAddress)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	asset, err := b.token.AssetOf(assetCode)
	if err != nil {
		return fmt.Errorf("get '%s' asset record: %w", assetCode, err)
	}

	totalLocked, err := b.token.TotalLockedOf(assetCode)
	if err != nil {
		return fmt.Errorf("get '%s' lock total: %w", assetCode, err)
	}

	fmt.Printf("asset %s: supply %s of %s, unlock delay %sms, total locked %s\n",
		asset.Symbol, asset.Supply, asset.MaxSupply, asset.UnlockDelay, totalLocked)

	entries, err := b.lockedAccounts(assetCode)
	if err != nil {
		return fmt.Errorf("iterate '%s' lock entries: %w", assetCode, err)
	}

	for _, e := range entries {
		fmt.Printf("%s locked %s\n", base58.Encode(e.Holder.BytesBE()), e.Locked)
	}

	log.Printf("dumped %d lock entries of '%s'\n", len(entries), assetCode)
	return nil
}
