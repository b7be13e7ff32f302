package indexer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
	"github.com/bibliothecadao/eternum-viewcache/resource"
)

func newAPI(t *testing.T) *indexer.SQLAPI {
	return indexer.NewSQLAPI(newFixture(t))
}

func TestStructuresByOwnerMatchesCaseInsensitively(t *testing.T) {
	api := newAPI(t)

	got, err := api.FetchStructuresByOwner(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, got, 2)

	realm := got[0]
	assert.Equal(t, uint64(42), realm.EntityID)
	require.NotNil(t, realm.RealmID)
	assert.Equal(t, uint64(7), *realm.RealmID)
	require.NotNil(t, realm.Name)
	assert.Equal(t, "Test Realm", *realm.Name)
	require.NotNil(t, realm.Level)
	assert.Equal(t, uint64(3), *realm.Level)
	assert.Equal(t, int64(10), realm.X)
	assert.Equal(t, int64(20), realm.Y)
	assert.Equal(t, []indexer.ResourceAmount{
		{ResourceID: resource.Wood, Amount: 120},
		{ResourceID: resource.Lords, Amount: 5},
	}, realm.Resources)

	village := got[1]
	assert.Equal(t, uint64(43), village.EntityID)
	assert.Nil(t, village.Name)
	assert.Nil(t, village.RealmID)
	assert.Nil(t, village.Resources)
}

func TestAllStructures(t *testing.T) {
	got, err := newAPI(t).FetchAllStructures(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Nil(t, got[3].Owner)
}

func TestGuardsFlattenIntoFourSlots(t *testing.T) {
	guards, err := newAPI(t).FetchGuardsByStructure(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, guards, 4)

	assert.Equal(t, &indexer.Troops{Category: "Knight", Tier: 2, Count: 100}, guards[0].Troops)
	assert.Nil(t, guards[1].Troops)
	assert.Nil(t, guards[2].Troops)
	assert.Nil(t, guards[3].Troops, "zero-count slot carries no troops")
}

func TestGuardsForUnknownStructure(t *testing.T) {
	guards, err := newAPI(t).FetchGuardsByStructure(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, guards)
}

func TestResourceBalances(t *testing.T) {
	api := newAPI(t)

	rows, err := api.FetchResourceBalances(context.Background(), []uint64{42})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "0x1bc16d674ec80000", rows[0].Balances["WOOD_BALANCE"])
	assert.Equal(t, resource.ZeroHex, rows[0].Balances["STONE_BALANCE"])
	assert.NotContains(t, rows[0].Balances, "COAL_BALANCE")

	rows, err = api.FetchResourceBalances(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAllArmies(t *testing.T) {
	armies, err := newAPI(t).FetchAllArmies(context.Background())
	require.NoError(t, err)
	require.Len(t, armies, 2)

	a := armies[0]
	assert.Equal(t, uint64(99), a.EntityID)
	require.NotNil(t, a.Owner)
	assert.Equal(t, "0xABC", *a.Owner)
	assert.Equal(t, uint64(50), a.Stamina)
	assert.False(t, a.InBattle)
	assert.Equal(t, &indexer.Troops{Category: "Crossbowman", Tier: 3, Count: 10}, a.Troops)

	b := armies[1]
	assert.True(t, b.InBattle)
	assert.Nil(t, b.Troops)
}

func TestExplorerOwner(t *testing.T) {
	api := newAPI(t)

	owner, err := api.FetchExplorerOwner(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, "0xABC", owner)

	owner, err = api.FetchExplorerOwner(context.Background(), 12345)
	require.NoError(t, err)
	assert.Equal(t, "", owner)
}

func TestTiles(t *testing.T) {
	tiles, err := newAPI(t).FetchAllTiles(context.Background())
	require.NoError(t, err)
	require.Len(t, tiles, 3)

	assert.Equal(t, int64(10), tiles[0].X)
	assert.Equal(t, int64(20), tiles[0].Y)
	assert.Equal(t, uint64(42), tiles[0].OccupierID)
	require.NotNil(t, tiles[0].Explored)
	assert.True(t, *tiles[0].Explored)

	assert.Nil(t, tiles[2].Biome)
	assert.Nil(t, tiles[2].Explored)
}

func TestHyperstructures(t *testing.T) {
	hs, err := newAPI(t).FetchHyperstructures(context.Background())
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, indexer.Hyperstructure{EntityID: 60, X: 30, Y: 30, Progress: 100}, hs[0])
}

func TestSwapEventsOrientation(t *testing.T) {
	api := newAPI(t)

	swaps, err := api.FetchSwapEvents(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, swaps, 2)

	sell := swaps[0]
	assert.Equal(t, uint64(50), sell.TakerID)
	assert.Equal(t, indexer.SwapLeg{ResourceID: resource.Ironwood, Amount: 32}, sell.Given)
	assert.Equal(t, indexer.SwapLeg{ResourceID: resource.Lords, Amount: 16}, sell.Taken)

	buy := swaps[1]
	assert.Equal(t, "0xABC", buy.TakerAddress)
	assert.Equal(t, indexer.SwapLeg{ResourceID: resource.Lords, Amount: 100}, buy.Given)
	assert.Equal(t, indexer.SwapLeg{ResourceID: resource.Wood, Amount: 50}, buy.Taken)
	assert.Equal(t, int64(1000), buy.Timestamp)

	swaps, err = api.FetchSwapEvents(context.Background(), []uint64{42})
	require.NoError(t, err)
	require.Len(t, swaps, 1)
}

func TestLeaderboardPaging(t *testing.T) {
	api := newAPI(t)

	rows, err := api.FetchLeaderboard(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "0xdef", *rows[0].Address)
	assert.Equal(t, uint64(1), rows[0].Rank)
	assert.InDelta(t, 9.0, rows[0].Points, 1e-9)
	assert.Nil(t, rows[2].Name)

	rows, err = api.FetchLeaderboard(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", *rows[0].Name)
	assert.Equal(t, uint64(2), rows[0].Rank)
	assert.Equal(t, uint64(1), rows[0].RealmCount)
}

func TestLeaderboardByAddressKeepsGlobalRank(t *testing.T) {
	api := newAPI(t)

	row, err := api.FetchLeaderboardByAddress(context.Background(), "0xabc")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, uint64(2), row.Rank)

	row, err = api.FetchLeaderboardByAddress(context.Background(), "0xnobody")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestEventsScopes(t *testing.T) {
	api := newAPI(t)
	ctx := context.Background()

	ids := func(evs []indexer.Event) []uint64 {
		out := make([]uint64, 0, len(evs))
		for _, e := range evs {
			out = append(out, e.ID)
		}
		return out
	}

	tests := []struct {
		name  string
		scope indexer.EventScope
		want  []uint64
	}{
		{"unscoped", indexer.EventScope{}, []uint64{3, 2, 1}},
		{"entity", indexer.EventScope{EntityID: 42}, []uint64{1}},
		{"entity wins over owner", indexer.EventScope{EntityID: 50, Owner: "0xabc"}, []uint64{2}},
		{"owner", indexer.EventScope{Owner: "0xabc"}, []uint64{3, 1}},
		{"since", indexer.EventScope{Since: 150}, []uint64{3, 2}},
		{"owner since", indexer.EventScope{Owner: "0xABC", Since: 150}, []uint64{3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			evs, err := api.FetchEvents(ctx, tc.scope, 50, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(evs))
		})
	}

	evs, err := api.FetchEvents(ctx, indexer.EventScope{EntityID: 42}, 50, 0)
	require.NoError(t, err)
	assert.JSONEq(t, `{"winner":42}`, string(evs[0].Data))
	assert.Equal(t, []uint64{42, 99}, evs[0].InvolvedEntities)
	assert.Equal(t, "BattleEvent", *evs[0].Type)

	evs, err = api.FetchEvents(ctx, indexer.EventScope{}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, ids(evs))
	assert.Nil(t, evs[0].Data)

	total, err := api.FetchEventsCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

type failingExecutor struct{ err error }

func (f failingExecutor) Query(context.Context, string) ([]byte, error) { return nil, f.err }

func TestQueryErrorsNameTheQuery(t *testing.T) {
	api := indexer.NewSQLAPI(failingExecutor{err: &indexer.QueryError{Status: 503, Err: indexer.ErrUnavailable}})

	_, err := api.FetchAllTiles(context.Background())

	var qe *indexer.QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "all_tiles", qe.Query)
	assert.Equal(t, 503, qe.Status)
	assert.ErrorIs(t, err, indexer.ErrUnavailable)
}

type staticExecutor []byte

func (s staticExecutor) Query(context.Context, string) ([]byte, error) { return s, nil }

func TestMalformedBody(t *testing.T) {
	for _, body := range []string{`{"not":"rows"}`, `not json`} {
		_, err := indexer.NewSQLAPI(staticExecutor(body)).FetchAllArmies(context.Background())
		assert.ErrorIs(t, err, indexer.ErrMalformed, body)
	}
}
