package indexer

import (
	"encoding/json"

	"github.com/bibliothecadao/eternum-viewcache/resource"
)

// Structure is a realm, village, bank, mine or hyperstructure row.
// Pointer fields are nil when the indexer did not return them.
type Structure struct {
	EntityID uint64
	RealmID  *uint64
	Name     *string
	Owner    *string
	Category *string
	Level    *uint64
	X, Y     int64

	// Resources is nil when the row carries no resource list at all.
	Resources []ResourceAmount
}

// ResourceAmount is one entry of a structure's resource list, in whole units.
type ResourceAmount struct {
	ResourceID resource.ID
	Amount     uint64
}

// Troops is the troop payload of a guard slot or an army.
type Troops struct {
	Category string
	Tier     uint64
	Count    uint64
}

// Guard is one guard slot of a structure. Troops is nil for an empty slot.
type Guard struct {
	Slot   int
	Troops *Troops
}

// Army is an explorer on the map.
type Army struct {
	EntityID   uint64
	ExplorerID *uint64
	Owner      *string
	X, Y       int64
	Stamina    uint64
	InBattle   bool
	Troops     *Troops
}

// Tile is an explored (or known) hex of the world map.
type Tile struct {
	X, Y       int64
	Biome      *string
	Explored   *bool
	OccupierID uint64
}

// Hyperstructure is a hyperstructure row with its construction progress in percent.
type Hyperstructure struct {
	EntityID uint64
	X, Y     int64
	Owner    *string
	Progress float64
}

// BalanceRow holds the raw hex balances of one entity keyed by balance column.
type BalanceRow struct {
	EntityID uint64
	Balances map[string]string
}

// SwapLeg is one side of a bank swap in raw on-chain units.
type SwapLeg struct {
	ResourceID resource.ID
	Amount     uint64
}

// Swap is a bank swap. Given is what the taker paid, Taken what they received.
type Swap struct {
	TakerID      uint64
	TakerAddress string
	Given        SwapLeg
	Taken        SwapLeg
	Timestamp    int64
}

// LeaderboardRow is one ranked player.
type LeaderboardRow struct {
	Address    *string
	Name       *string
	Points     float64
	Rank       uint64
	RealmCount uint64
}

// Event is a story event.
type Event struct {
	ID               uint64
	Type             *string
	Timestamp        int64
	Data             json.RawMessage
	InvolvedEntities []uint64
}

// EventScope narrows an events query. EntityID wins over Owner; both zero
// means unscoped. Since, when positive, keeps events strictly after that
// unix time.
type EventScope struct {
	EntityID uint64
	Owner    string
	Since    int64
}
