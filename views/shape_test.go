package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
	"github.com/bibliothecadao/eternum-viewcache/resource"
)

func TestSameAddress(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0xABC", "0xabc", true},
		{" 0xabc\t", "0xABC", true},
		{"0xabc", "0xabd", false},
		{"", "", false},
		{"  ", "", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SameAddress(tc.a, tc.b), "%q vs %q", tc.a, tc.b)
	}
}

func TestBuildGuardState(t *testing.T) {
	g := BuildGuardState([]indexer.Guard{
		{Slot: 0, Troops: &indexer.Troops{Category: "Knight", Tier: 1, Count: 10}},
		{Slot: 1},
		{Slot: 2, Troops: &indexer.Troops{Category: "Paladin", Tier: 3, Count: 5}},
	})

	assert.Equal(t, uint64(15), g.TotalTroops)
	assert.Equal(t, uint64(25), g.Strength)
	assert.Equal(t, []GuardSlot{
		{TroopType: "Knight", Count: 10, Tier: 1},
		{TroopType: "Paladin", Count: 5, Tier: 3},
	}, g.Slots)
}

func TestParseBalancesKeepsPositiveOnly(t *testing.T) {
	got := parseBalances([]indexer.BalanceRow{{
		EntityID: 1,
		Balances: map[string]string{
			"WOOD_BALANCE":  "0x1bc16d674ec80000",
			"STONE_BALANCE": resource.ZeroHex,
			"LORDS_BALANCE": "0xde0b6b3a7640000",
			"COAL_BALANCE":  "0x10",
		},
	}})

	assert.Equal(t, []ResourceState{
		{ResourceID: resource.Wood, Name: "Wood", Balance: 2, RawBalance: "0x1bc16d674ec80000"},
		{ResourceID: resource.Lords, Name: "Lords", Balance: 1, RawBalance: "0xde0b6b3a7640000"},
	}, got)
}

func TestTotalsCountDistinctStructures(t *testing.T) {
	got := totalsFromStructures([]indexer.Structure{
		{EntityID: 1, Resources: []indexer.ResourceAmount{
			{ResourceID: resource.Wood, Amount: 1},
			{ResourceID: resource.Wood, Amount: 2},
		}},
		{EntityID: 2, Resources: []indexer.ResourceAmount{
			{ResourceID: resource.Wood, Amount: 4},
			{ResourceID: resource.Coal, Amount: 0},
		}},
	})

	assert.Equal(t, []ResourceTotal{
		{ResourceID: resource.Wood, Name: "Wood", TotalBalance: 7, StructureCount: 2},
	}, got)
}

func TestRecentSwapsCap(t *testing.T) {
	assert.Len(t, recentSwaps(testSwaps(5), 3), 3)
	assert.Len(t, recentSwaps(testSwaps(2), 3), 2)
	assert.Equal(t, []SwapEvent{}, recentSwaps(nil, 3))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "realm:42:0xabc", RealmKey(42, "0xabc"))
	assert.Equal(t, "realm:42:", RealmEntityPrefix(42))
	assert.Equal(t, "explorer:9:0x0", ExplorerKey(9, "0x0"))
	assert.Equal(t, "explorer:9:", ExplorerEntityPrefix(9))
	assert.NotContains(t, RealmKey(42, "0xabc"), RealmEntityPrefix(4))
	assert.Equal(t, "mapArea:-1:2:3", MapAreaKey(MapAreaQuery{X: -1, Y: 2, Radius: 3}))
	assert.Equal(t, "market", MarketKey())
	assert.Equal(t, "player:0xAbC", PlayerKey("0xAbC"))
	assert.Equal(t, "hyperstructure:60", HyperstructureKey(60))
	assert.Equal(t, "leaderboard:10:0", LeaderboardKey(LeaderboardQuery{Limit: 10}))
	assert.Equal(t, "bank:5", BankKey(5))
	assert.Equal(t, "events:1::7:50:0", EventsKey(EventsQuery{EntityID: 1, Since: 7, Limit: 50}))
}
