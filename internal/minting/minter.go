package minting

import (
	"context"
)

// Minter is the external ledger capability that issues a uniquely owned
// collectible for a finished restoration. Mint is invoked inside the minting
// transaction, so implementations must only return once the asset is durably
// issued or definitively failed.
//
//go:generate mockgen -source=minter.go -destination=../mocks/minter.go -package=mocks -mock_names=Minter=MockMinter
type Minter interface {
	// Mint issues a collectible owned by owner carrying metadataRef and
	// returns the external asset id
	Mint(ctx context.Context, owner, metadataRef string) (string, error)
	// AssetOf returns the asset id minted for the given metadata reference,
	// or empty if none exists
	AssetOf(ctx context.Context, metadataRef string) (string, error)
	// Close releases the underlying connection
	Close()
}
