package ports

import (
	"context"

	"veryracing/internal/domain/garage"
)

// AssetStore serves the connected wallet's owned-vehicle snapshot. Owned
// returns the latest fetched set; Refetch re-reads it from the indexer so
// eligibility checks always see fresh ownership and staking flags.
type AssetStore interface {
	Owned(ctx context.Context) (garage.OwnedSet, error)
	Refetch(ctx context.Context) error
}

// WalletSession is the external wallet connection. Address reports the
// connected account, false when disconnected.
type WalletSession interface {
	Address() (string, bool)
}
