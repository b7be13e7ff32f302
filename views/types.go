package views

import (
	"encoding/json"

	"github.com/bibliothecadao/eternum-viewcache/resource"
)

// Snapshots are plain values. Collections are never nil so they encode as
// [] rather than null; ones the indexer cannot populate stay empty.

type Position struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

type GuardSlot struct {
	TroopType string `json:"troopType"`
	Count     uint64 `json:"count"`
	Tier      uint64 `json:"tier"`
}

// GuardState aggregates guard slots. TotalTroops is the sum of counts and
// Strength the sum of count × tier.
type GuardState struct {
	TotalTroops uint64      `json:"totalTroops"`
	Slots       []GuardSlot `json:"slots"`
	Strength    uint64      `json:"strength"`
}

type ResourceState struct {
	ResourceID resource.ID `json:"resourceId"`
	Name       string      `json:"name"`
	Balance    uint64      `json:"balance"`
	RawBalance string      `json:"rawBalance"`
}

// ResourceTotal sums one resource over many structures.
type ResourceTotal struct {
	ResourceID      resource.ID `json:"resourceId"`
	Name            string      `json:"name"`
	TotalBalance    uint64      `json:"totalBalance"`
	TotalProduction uint64      `json:"totalProduction"`
	StructureCount  int         `json:"structureCount"`
}

type Production struct {
	ResourceID  resource.ID `json:"resourceId"`
	RatePerTick uint64      `json:"ratePerTick"`
}

type Building struct {
	Category string   `json:"category"`
	Position Position `json:"position"`
}

// Transfer is a resource shipment between two entities.
type Transfer struct {
	FromEntityID uint64          `json:"fromEntityId"`
	ToEntityID   uint64          `json:"toEntityId"`
	ArrivesAt    int64           `json:"arrivesAt"`
	Resources    []ResourceState `json:"resources"`
}

type Relic struct {
	ResourceID resource.ID `json:"resourceId"`
	Name       string      `json:"name"`
	ExpiresAt  int64       `json:"expiresAt"`
}

type Battle struct {
	AttackerID uint64   `json:"attackerId"`
	DefenderID uint64   `json:"defenderId"`
	Position   Position `json:"position"`
	Timestamp  int64    `json:"timestamp"`
}

type NearbyEntity struct {
	EntityID uint64   `json:"entityId"`
	Kind     string   `json:"kind"`
	Position Position `json:"position"`
}

type ExplorerSummary struct {
	EntityID         uint64          `json:"entityId"`
	ExplorerID       uint64          `json:"explorerId"`
	Owner            string          `json:"owner"`
	Position         Position        `json:"position"`
	Stamina          uint64          `json:"stamina"`
	MaxStamina       uint64          `json:"maxStamina"`
	Troops           []GuardSlot     `json:"troops"`
	Strength         uint64          `json:"strength"`
	IsInBattle       bool            `json:"isInBattle"`
	CarriedResources []ResourceState `json:"carriedResources"`
}

type RealmView struct {
	EntityID         uint64            `json:"entityId"`
	RealmID          uint64            `json:"realmId"`
	Name             string            `json:"name"`
	Owner            string            `json:"owner"`
	Position         Position          `json:"position"`
	Level            uint64            `json:"level"`
	Resources        []ResourceState   `json:"resources"`
	Productions      []Production      `json:"productions"`
	Buildings        []Building        `json:"buildings"`
	Guard            GuardState        `json:"guard"`
	Explorers        []ExplorerSummary `json:"explorers"`
	IncomingArrivals []Transfer        `json:"incomingArrivals"`
	OutgoingOrders   []Transfer        `json:"outgoingOrders"`
	Relics           []Relic           `json:"relics"`
	ActiveBattles    []Battle          `json:"activeBattles"`
	NearbyEntities   []NearbyEntity    `json:"nearbyEntities"`
}

type ExplorerView struct {
	EntityID         uint64          `json:"entityId"`
	ExplorerID       uint64          `json:"explorerId"`
	Owner            string          `json:"owner"`
	Position         Position        `json:"position"`
	Stamina          uint64          `json:"stamina"`
	MaxStamina       uint64          `json:"maxStamina"`
	Troops           GuardState      `json:"troops"`
	CarriedResources []ResourceState `json:"carriedResources"`
	IsInBattle       bool            `json:"isInBattle"`
	CurrentBattle    *Battle         `json:"currentBattle"`
	NearbyEntities   []NearbyEntity  `json:"nearbyEntities"`
	RecentEvents     []GameEvent     `json:"recentEvents"`
}

type MapStructure struct {
	EntityID      uint64   `json:"entityId"`
	StructureType string   `json:"structureType"`
	Position      Position `json:"position"`
	Owner         string   `json:"owner"`
	Name          string   `json:"name"`
	Level         uint64   `json:"level"`
}

type MapArmy struct {
	EntityID   uint64      `json:"entityId"`
	Owner      string      `json:"owner"`
	Position   Position    `json:"position"`
	Troops     []GuardSlot `json:"troops"`
	Strength   uint64      `json:"strength"`
	Stamina    uint64      `json:"stamina"`
	IsInBattle bool        `json:"isInBattle"`
}

type TileState struct {
	Position   Position `json:"position"`
	Biome      string   `json:"biome"`
	Explored   bool     `json:"explored"`
	OccupiedBy *uint64  `json:"occupiedBy"`
}

type MapAreaView struct {
	Center     Position       `json:"center"`
	Radius     int64          `json:"radius"`
	Tiles      []TileState    `json:"tiles"`
	Structures []MapStructure `json:"structures"`
	Armies     []MapArmy      `json:"armies"`
	Battles    []Battle       `json:"battles"`
}

type Pool struct {
	ResourceID      resource.ID `json:"resourceId"`
	LordsReserve    uint64      `json:"lordsReserve"`
	ResourceReserve uint64      `json:"resourceReserve"`
}

type LiquidityPosition struct {
	ResourceID resource.ID `json:"resourceId"`
	Shares     uint64      `json:"shares"`
}

type MarketOrder struct {
	OrderID    uint64      `json:"orderId"`
	MakerID    uint64      `json:"makerId"`
	ResourceID resource.ID `json:"resourceId"`
	Amount     uint64      `json:"amount"`
	Price      uint64      `json:"price"`
}

// SwapEvent is one bank swap from the trader's side. Amounts are raw
// on-chain units.
type SwapEvent struct {
	EventID        uint64      `json:"eventId"`
	ResourceID     resource.ID `json:"resourceId"`
	ResourceName   string      `json:"resourceName"`
	LordsAmount    uint64      `json:"lordsAmount"`
	ResourceAmount uint64      `json:"resourceAmount"`
	IsBuy          bool        `json:"isBuy"`
	Timestamp      int64       `json:"timestamp"`
	Trader         string      `json:"trader"`
}

type MarketView struct {
	Pools             []Pool              `json:"pools"`
	RecentSwaps       []SwapEvent         `json:"recentSwaps"`
	OpenOrders        []MarketOrder       `json:"openOrders"`
	PlayerLPPositions []LiquidityPosition `json:"playerLpPositions"`
}

type PlayerStructureSummary struct {
	EntityID      uint64   `json:"entityId"`
	StructureType string   `json:"structureType"`
	Name          string   `json:"name"`
	Position      Position `json:"position"`
	Level         uint64   `json:"level"`
	ResourceCount int      `json:"resourceCount"`
	GuardStrength uint64   `json:"guardStrength"`
}

type PlayerArmySummary struct {
	EntityID             uint64   `json:"entityId"`
	ExplorerID           uint64   `json:"explorerId"`
	Position             Position `json:"position"`
	Strength             uint64   `json:"strength"`
	Stamina              uint64   `json:"stamina"`
	IsInBattle           bool     `json:"isInBattle"`
	CarriedResourceCount int      `json:"carriedResourceCount"`
}

type PlayerView struct {
	Address        string                   `json:"address"`
	Name           string                   `json:"name"`
	Structures     []PlayerStructureSummary `json:"structures"`
	Armies         []PlayerArmySummary      `json:"armies"`
	TotalResources []ResourceTotal          `json:"totalResources"`
	Points         float64                  `json:"points"`
	Rank           uint64                   `json:"rank"`
}

type Contribution struct {
	Address    string      `json:"address"`
	ResourceID resource.ID `json:"resourceId"`
	Amount     uint64      `json:"amount"`
}

type HyperstructureView struct {
	EntityID      uint64         `json:"entityId"`
	Position      Position       `json:"position"`
	Owner         *string        `json:"owner"`
	Progress      float64        `json:"progress"`
	Contributions []Contribution `json:"contributions"`
	Guard         GuardState     `json:"guard"`
	ActiveBattles []Battle       `json:"activeBattles"`
	IsComplete    bool           `json:"isComplete"`
}

type LeaderboardEntry struct {
	Address    string  `json:"address"`
	Name       string  `json:"name"`
	Points     float64 `json:"points"`
	Rank       uint64  `json:"rank"`
	RealmCount uint64  `json:"realmCount"`
}

type LeaderboardView struct {
	Entries       []LeaderboardEntry `json:"entries"`
	TotalPlayers  int                `json:"totalPlayers"`
	LastUpdatedAt int64              `json:"lastUpdatedAt"`
}

type BankView struct {
	EntityID          uint64              `json:"entityId"`
	Position          Position            `json:"position"`
	Pools             []Pool              `json:"pools"`
	RecentSwaps       []SwapEvent         `json:"recentSwaps"`
	PlayerLPPositions []LiquidityPosition `json:"playerLpPositions"`
}

type GameEvent struct {
	EventID          uint64          `json:"eventId"`
	EventType        string          `json:"eventType"`
	Timestamp        int64           `json:"timestamp"`
	Data             json.RawMessage `json:"data"`
	InvolvedEntities []uint64        `json:"involvedEntities"`
}

type EventsView struct {
	Events     []GameEvent `json:"events"`
	TotalCount int         `json:"totalCount"`
	HasMore    bool        `json:"hasMore"`
}

// Query parameters.

type MapAreaQuery struct {
	X, Y   int64
	Radius int64
}

// LeaderboardQuery pages the leaderboard. Zero Limit means 10.
type LeaderboardQuery struct {
	Limit  int
	Offset int
}

// EventsQuery scopes the event feed. EntityID takes precedence over Owner.
// Zero Limit means 50; Since is a unix time, zero for no lower bound.
type EventsQuery struct {
	EntityID uint64
	Owner    string
	Since    int64
	Limit    int
	Offset   int
}
