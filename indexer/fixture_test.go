package indexer_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bibliothecadao/eternum-viewcache/indexer/sqlite"
	"github.com/bibliothecadao/eternum-viewcache/resource"
)

func balanceColumnsDDL() string {
	cols := make([]string, 0, len(resource.Columns))
	for _, c := range resource.Columns {
		cols = append(cols, c.Column+" TEXT")
	}
	return strings.Join(cols, ", ")
}

func guardColumnsDDL() string {
	var cols []string
	for _, slot := range []string{"delta", "charlie", "bravo", "alpha"} {
		cols = append(cols,
			fmt.Sprintf("`troop_guards.%s.category` TEXT", slot),
			fmt.Sprintf("`troop_guards.%s.tier` INTEGER", slot),
			fmt.Sprintf("`troop_guards.%s.count` TEXT", slot),
		)
	}
	return strings.Join(cols, ", ")
}

var schema = []string{
	"CREATE TABLE `s1_eternum-Structure` (entity_id INTEGER PRIMARY KEY, owner TEXT, category INTEGER, " +
		"`base.coord_x` INTEGER, `base.coord_y` INTEGER, `base.level` INTEGER, `metadata.realm_id` INTEGER, " +
		"resources TEXT, " + guardColumnsDDL() + ")",
	"CREATE TABLE `s1_eternum-StructureName` (entity_id INTEGER PRIMARY KEY, name TEXT)",
	"CREATE TABLE `s1_eternum-Resource` (entity_id INTEGER PRIMARY KEY, " + balanceColumnsDDL() + ")",
	"CREATE TABLE `s1_eternum-ExplorerTroops` (explorer_id INTEGER PRIMARY KEY, owner INTEGER, " +
		"`coord.x` INTEGER, `coord.y` INTEGER, `troops.category` TEXT, `troops.tier` INTEGER, " +
		"`troops.count` TEXT, `troops.stamina.amount` TEXT, is_in_battle INTEGER)",
	"CREATE TABLE `s1_eternum-Tile` (`col` INTEGER, `row` INTEGER, biome TEXT, explored INTEGER, occupier_id INTEGER)",
	"CREATE TABLE `s1_eternum-Hyperstructure` (hyperstructure_id INTEGER PRIMARY KEY, progress REAL)",
	"CREATE TABLE `s1_eternum-SwapEvent` (entity_id INTEGER, owner TEXT, resource_type INTEGER, " +
		"lords_amount TEXT, resource_amount TEXT, buy INTEGER, timestamp INTEGER)",
	"CREATE TABLE `s1_eternum-PlayerRegisteredPoints` (address TEXT PRIMARY KEY, name TEXT, registered_points INTEGER)",
	"CREATE TABLE `s1_eternum-StoryEvent` (id INTEGER PRIMARY KEY, event_type TEXT, timestamp INTEGER, " +
		"owner TEXT, entity_id INTEGER, data TEXT, involved_entities TEXT)",
}

var fixtures = []string{
	"INSERT INTO `s1_eternum-Structure` (entity_id, owner, category, `base.coord_x`, `base.coord_y`, `base.level`, `metadata.realm_id`, resources, " +
		"`troop_guards.delta.category`, `troop_guards.delta.tier`, `troop_guards.delta.count`, " +
		"`troop_guards.alpha.category`, `troop_guards.alpha.tier`, `troop_guards.alpha.count`) VALUES " +
		"(42, '0xABC', 1, 10, 20, 3, 7, '[{\"resource_id\":3,\"amount\":120},{\"resource_id\":37,\"amount\":5},{\"resource_id\":999,\"amount\":1}]', 'Knight', 2, '0x64', 'Paladin', 1, '0x0')",
	"INSERT INTO `s1_eternum-Structure` (entity_id, owner, category, `base.coord_x`, `base.coord_y`, `base.level`) VALUES " +
		"(43, '0xabc', 5, 12, 22, 1), (50, '0xdef', 1, 100, 100, 2), (60, NULL, 2, 30, 30, 1)",
	"INSERT INTO `s1_eternum-StructureName` VALUES (42, 'Test Realm')",
	"INSERT INTO `s1_eternum-Resource` (entity_id, WOOD_BALANCE, LORDS_BALANCE, STONE_BALANCE) VALUES " +
		"(42, '0x1bc16d674ec80000', '0xde0b6b3a7640000', '0x00000000000000000000000000000000')",
	"INSERT INTO `s1_eternum-ExplorerTroops` VALUES " +
		"(99, 42, 11, 21, 'Crossbowman', 3, '0xa', '0x32', 0), (100, 50, 101, 99, 'Knight', 1, '0x0', '0x5', 1)",
	"INSERT INTO `s1_eternum-Tile` VALUES (10, 20, 'Grassland', 1, 42), (11, 21, 'Forest', 1, 0), (200, 200, NULL, NULL, NULL)",
	"INSERT INTO `s1_eternum-Hyperstructure` VALUES (60, 100.0)",
	"INSERT INTO `s1_eternum-SwapEvent` VALUES " +
		"(42, '0xABC', 3, '0x64', '0x32', 1, 1000), (50, '0xdef', 5, '0x10', '0x20', 0, 2000)",
	"INSERT INTO `s1_eternum-PlayerRegisteredPoints` VALUES " +
		"('0xABC', 'alice', 5000000), ('0xdef', 'bob', 9000000), ('0x123', NULL, 1000000)",
	"INSERT INTO `s1_eternum-StoryEvent` VALUES " +
		"(1, 'BattleEvent', 100, '0xABC', 42, '{\"winner\":42}', '[42,99]'), " +
		"(2, 'SwapEvent', 200, '0xdef', 50, NULL, NULL), " +
		"(3, 'BuildEvent', 300, '0xABC', 43, '{}', '[43]')",
}

func newFixture(t *testing.T) *sqlite.Executor {
	t.Helper()

	exec, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { exec.Close() })

	ctx := context.Background()
	require.NoError(t, exec.Exec(ctx, schema...))
	require.NoError(t, exec.Exec(ctx, fixtures...))
	return exec
}
