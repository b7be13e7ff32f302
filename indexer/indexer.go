// Package indexer reads game state from a Torii indexer through its SQL
// endpoint and returns typed rows.
package indexer

import "context"

//go:generate mockgen -destination=mocks/indexer.go -package=mocks . Indexer,AddressLeaderboard

/*
Indexer is the query surface the views are built from.

Every method is a single round trip. Implementations return typed rows with
missing fields left nil or zero; they never substitute view-level defaults.
*/
type Indexer interface {
	FetchStructuresByOwner(ctx context.Context, owner string) ([]Structure, error)
	FetchAllStructures(ctx context.Context) ([]Structure, error)
	FetchResourceBalances(ctx context.Context, entityIDs []uint64) ([]BalanceRow, error)
	FetchGuardsByStructure(ctx context.Context, entityID uint64) ([]Guard, error)
	FetchHyperstructures(ctx context.Context) ([]Hyperstructure, error)

	FetchAllArmies(ctx context.Context) ([]Army, error)

	// FetchExplorerOwner returns "" when the explorer has no known owner.
	FetchExplorerOwner(ctx context.Context, entityID uint64) (string, error)

	FetchAllTiles(ctx context.Context) ([]Tile, error)

	// FetchSwapEvents returns swaps newest first. An empty entityIDs means
	// every taker.
	FetchSwapEvents(ctx context.Context, entityIDs []uint64) ([]Swap, error)

	FetchLeaderboard(ctx context.Context, limit, offset int) ([]LeaderboardRow, error)

	FetchEvents(ctx context.Context, scope EventScope, limit, offset int) ([]Event, error)
	FetchEventsCount(ctx context.Context) (int, error)
}

/*
AddressLeaderboard is an optional capability: a direct leaderboard lookup for
one address. A nil row with a nil error means the address is not ranked.
*/
type AddressLeaderboard interface {
	FetchLeaderboardByAddress(ctx context.Context, address string) (*LeaderboardRow, error)
}

/*
Executor runs one SQL query and returns the rows as a JSON array of objects,
the shape Torii's /sql endpoint answers with.
*/
type Executor interface {
	Query(ctx context.Context, query string) ([]byte, error)
}
