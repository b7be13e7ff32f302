package indexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bibliothecadao/eternum-viewcache/resource"
)

// Table names follow the indexer's namespace-model convention.
const (
	tableStructure       = "`s1_eternum-Structure`"
	tableStructureName   = "`s1_eternum-StructureName`"
	tableResource        = "`s1_eternum-Resource`"
	tableExplorerTroops  = "`s1_eternum-ExplorerTroops`"
	tableTile            = "`s1_eternum-Tile`"
	tableHyperstructure  = "`s1_eternum-Hyperstructure`"
	tableSwapEvent       = "`s1_eternum-SwapEvent`"
	tableRegisteredPoint = "`s1_eternum-PlayerRegisteredPoints`"
	tableStoryEvent      = "`s1_eternum-StoryEvent`"
)

// realmCategory is the structure category of realms.
const realmCategory = 1

const structureColumns = `
    s.entity_id,
    s.owner,
    s.category,
    s.` + "`base.coord_x`" + ` AS coord_x,
    s.` + "`base.coord_y`" + ` AS coord_y,
    s.` + "`base.level`" + ` AS level,
    s.` + "`metadata.realm_id`" + ` AS realm_id,
    n.name AS name,
    s.resources AS resources`

var (
	queryStructuresByOwner = `
SELECT` + structureColumns + `
FROM ` + tableStructure + ` s
LEFT JOIN ` + tableStructureName + ` n ON n.entity_id = s.entity_id
WHERE lower(s.owner) = lower(%s)
ORDER BY s.category, s.entity_id;`

	queryAllStructures = `
SELECT` + structureColumns + `
FROM ` + tableStructure + ` s
LEFT JOIN ` + tableStructureName + ` n ON n.entity_id = s.entity_id
ORDER BY s.entity_id;`

	queryGuardsByStructure = `
SELECT
    entity_id,
    ` + guardColumns() + `
FROM ` + tableStructure + `
WHERE entity_id = %d;`

	queryAllArmies = `
SELECT
    et.explorer_id AS entity_id,
    et.explorer_id AS explorer_id,
    et.` + "`coord.x`" + ` AS coord_x,
    et.` + "`coord.y`" + ` AS coord_y,
    et.` + "`troops.category`" + ` AS category,
    et.` + "`troops.tier`" + ` AS tier,
    et.` + "`troops.count`" + ` AS count,
    et.` + "`troops.stamina.amount`" + ` AS stamina,
    et.is_in_battle AS is_in_battle,
    s.owner AS owner_address
FROM ` + tableExplorerTroops + ` et
LEFT JOIN ` + tableStructure + ` s ON s.entity_id = et.owner
ORDER BY et.explorer_id;`

	queryExplorerOwner = `
SELECT s.owner AS address_owner
FROM ` + tableExplorerTroops + ` et
JOIN ` + tableStructure + ` s ON s.entity_id = et.owner
WHERE et.explorer_id = %d
LIMIT 1;`

	queryAllTiles = `
SELECT ` + "`col`" + ` AS col, ` + "`row`" + ` AS row_index, biome, explored, occupier_id
FROM ` + tableTile + `
ORDER BY ` + "`col`, `row`" + `;`

	queryHyperstructures = `
SELECT
    h.hyperstructure_id AS entity_id,
    s.` + "`base.coord_x`" + ` AS coord_x,
    s.` + "`base.coord_y`" + ` AS coord_y,
    s.owner AS owner,
    h.progress AS progress
FROM ` + tableHyperstructure + ` h
LEFT JOIN ` + tableStructure + ` s ON s.entity_id = h.hyperstructure_id
ORDER BY h.hyperstructure_id;`

	querySwapEvents = `
SELECT entity_id, owner, resource_type, lords_amount, resource_amount, buy, timestamp
FROM ` + tableSwapEvent + `
%s
ORDER BY timestamp DESC;`

	queryLeaderboard = `
SELECT * FROM (
    SELECT
        p.address AS player_address,
        p.name AS player_name,
        p.registered_points AS registered_points,
        RANK() OVER (ORDER BY p.registered_points DESC) AS player_rank,
        (SELECT COUNT(*) FROM ` + tableStructure + ` s
            WHERE lower(s.owner) = lower(p.address) AND s.category = ` + strconv.Itoa(realmCategory) + `) AS realm_count
    FROM ` + tableRegisteredPoint + ` p
) ranked
%s
ORDER BY player_rank, player_address
LIMIT %d OFFSET %d;`

	queryEvents = `
SELECT id AS event_id, event_type, timestamp, data, involved_entities
FROM ` + tableStoryEvent + `
%s
ORDER BY timestamp DESC, id DESC
LIMIT %d OFFSET %d;`

	queryEventsCount = `
SELECT COUNT(*) AS total
FROM ` + tableStoryEvent + `;`
)

var guardSlotNames = []string{"delta", "charlie", "bravo", "alpha"}

func guardColumns() string {
	cols := make([]string, 0, len(guardSlotNames)*3)
	for _, slot := range guardSlotNames {
		for _, field := range []string{"category", "tier", "count"} {
			cols = append(cols, fmt.Sprintf("`troop_guards.%s.%s` AS %s_%s", slot, field, slot, field))
		}
	}
	return strings.Join(cols, ",\n    ")
}

func balanceQuery(entityIDs []uint64) string {
	cols := make([]string, 0, len(resource.Columns)+1)
	cols = append(cols, "entity_id")
	for _, c := range resource.Columns {
		cols = append(cols, c.Column)
	}
	return fmt.Sprintf("SELECT %s\nFROM %s\nWHERE entity_id IN (%s);",
		strings.Join(cols, ", "), tableResource, idList(entityIDs))
}

func swapQuery(entityIDs []uint64) string {
	where := ""
	if len(entityIDs) > 0 {
		where = fmt.Sprintf("WHERE entity_id IN (%s)", idList(entityIDs))
	}
	return fmt.Sprintf(querySwapEvents, where)
}

func leaderboardQuery(address string, limit, offset int) string {
	where := ""
	if address != "" {
		where = fmt.Sprintf("WHERE lower(player_address) = lower(%s)", quote(address))
	}
	return fmt.Sprintf(queryLeaderboard, where, limit, offset)
}

func eventsQuery(scope EventScope, limit, offset int) string {
	var conds []string
	switch {
	case scope.EntityID != 0:
		conds = append(conds, fmt.Sprintf("entity_id = %d", scope.EntityID))
	case scope.Owner != "":
		conds = append(conds, fmt.Sprintf("lower(owner) = lower(%s)", quote(scope.Owner)))
	}
	if scope.Since > 0 {
		conds = append(conds, fmt.Sprintf("timestamp > %d", scope.Since))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	return fmt.Sprintf(queryEvents, where, limit, offset)
}

func idList(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}

// quote renders s as a SQL string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
