package indexer

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	_ Indexer            = (*SQLAPI)(nil)
	_ AddressLeaderboard = (*SQLAPI)(nil)
)

/*
SQLAPI implements Indexer over any Executor: Torii's HTTP endpoint in
production, a local SQLite database offline and in tests.

It owns the query text and row decoding. Errors from the executor come back
as *QueryError carrying the logical query name.
*/
type SQLAPI struct {
	exec Executor
}

func NewSQLAPI(exec Executor) *SQLAPI {
	return &SQLAPI{exec: exec}
}

func (a *SQLAPI) run(ctx context.Context, name, query string) ([]gjson.Result, error) {
	body, err := a.exec.Query(ctx, query)
	if err != nil {
		var qe *QueryError
		if errors.As(err, &qe) {
			return nil, &QueryError{Query: name, Status: qe.Status, Err: qe.Err}
		}
		return nil, &QueryError{Query: name, Err: err}
	}

	rows, err := parseRows(body)
	if err != nil {
		return nil, &QueryError{Query: name, Err: err}
	}
	return rows, nil
}

func decodeAll[T any](rows []gjson.Result, decode func(gjson.Result) T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, decode(r))
	}
	return out
}

func (a *SQLAPI) FetchStructuresByOwner(ctx context.Context, owner string) ([]Structure, error) {
	rows, err := a.run(ctx, "structures_by_owner", fmt.Sprintf(queryStructuresByOwner, quote(owner)))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeStructure), nil
}

func (a *SQLAPI) FetchAllStructures(ctx context.Context) ([]Structure, error) {
	rows, err := a.run(ctx, "all_structures", queryAllStructures)
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeStructure), nil
}

func (a *SQLAPI) FetchResourceBalances(ctx context.Context, entityIDs []uint64) ([]BalanceRow, error) {
	if len(entityIDs) == 0 {
		return nil, nil
	}
	rows, err := a.run(ctx, "resource_balances", balanceQuery(entityIDs))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeBalanceRow), nil
}

func (a *SQLAPI) FetchGuardsByStructure(ctx context.Context, entityID uint64) ([]Guard, error) {
	rows, err := a.run(ctx, "guards_by_structure", fmt.Sprintf(queryGuardsByStructure, entityID))
	if err != nil {
		return nil, err
	}
	return decodeGuards(rows), nil
}

func (a *SQLAPI) FetchHyperstructures(ctx context.Context) ([]Hyperstructure, error) {
	rows, err := a.run(ctx, "hyperstructures", queryHyperstructures)
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeHyperstructure), nil
}

func (a *SQLAPI) FetchAllArmies(ctx context.Context) ([]Army, error) {
	rows, err := a.run(ctx, "all_armies", queryAllArmies)
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeArmy), nil
}

func (a *SQLAPI) FetchExplorerOwner(ctx context.Context, entityID uint64) (string, error) {
	rows, err := a.run(ctx, "explorer_owner", fmt.Sprintf(queryExplorerOwner, entityID))
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Get("address_owner").String(), nil
}

func (a *SQLAPI) FetchAllTiles(ctx context.Context) ([]Tile, error) {
	rows, err := a.run(ctx, "all_tiles", queryAllTiles)
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeTile), nil
}

func (a *SQLAPI) FetchSwapEvents(ctx context.Context, entityIDs []uint64) ([]Swap, error) {
	rows, err := a.run(ctx, "swap_events", swapQuery(entityIDs))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeSwap), nil
}

func (a *SQLAPI) FetchLeaderboard(ctx context.Context, limit, offset int) ([]LeaderboardRow, error) {
	rows, err := a.run(ctx, "leaderboard", leaderboardQuery("", max(limit, 0), max(offset, 0)))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeLeaderboardRow), nil
}

func (a *SQLAPI) FetchLeaderboardByAddress(ctx context.Context, address string) (*LeaderboardRow, error) {
	rows, err := a.run(ctx, "leaderboard_by_address", leaderboardQuery(address, 1, 0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	row := decodeLeaderboardRow(rows[0])
	return &row, nil
}

func (a *SQLAPI) FetchEvents(ctx context.Context, scope EventScope, limit, offset int) ([]Event, error) {
	rows, err := a.run(ctx, "events", eventsQuery(scope, max(limit, 0), max(offset, 0)))
	if err != nil {
		return nil, err
	}
	return decodeAll(rows, decodeEvent), nil
}

func (a *SQLAPI) FetchEventsCount(ctx context.Context) (int, error) {
	rows, err := a.run(ctx, "events_count", queryEventsCount)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return int(rows[0].Get("total").Int()), nil
}
