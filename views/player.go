package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

// leaderboardScan is the page scanned for a player when the indexer has no
// direct address lookup.
const leaderboardScan = 100

// Player returns what address owns and where it ranks.
func (c *Client) Player(ctx context.Context, address string) PlayerView {
	return c.player(ctx, address).View
}

func (c *Client) player(ctx context.Context, address string) outcome[PlayerView] {
	return read(ctx, c, "player", PlayerKey(address),
		map[string]any{"address": address},
		func(ctx context.Context) (PlayerView, error) {
			var (
				structures []indexer.Structure
				armies     []indexer.Army
				entry      *indexer.LeaderboardRow
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				structures, err = c.idx.FetchStructuresByOwner(gctx, address)
				return err
			})
			g.Go(func() (err error) {
				armies, err = c.idx.FetchAllArmies(gctx)
				return err
			})
			g.Go(func() error {
				entry = c.leaderboardEntry(gctx, address)
				return nil
			})
			if err := g.Wait(); err != nil {
				return PlayerView{}, err
			}

			resources, err := c.playerTotals(ctx, structures)
			if err != nil {
				return PlayerView{}, err
			}

			view := emptyPlayer(address)
			view.TotalResources = resources
			for _, s := range structures {
				view.Structures = append(view.Structures, PlayerStructureSummary{
					EntityID:      s.EntityID,
					StructureType: strOr(s.Category, "unknown"),
					Name:          strOr(s.Name, ""),
					Position:      structurePosition(s),
					Level:         uintOr(s.Level, 1),
					ResourceCount: len(s.Resources),
				})
			}
			for _, a := range armies {
				if !ownedBy(a.Owner, address) {
					continue
				}
				view.Armies = append(view.Armies, PlayerArmySummary{
					EntityID:   a.EntityID,
					ExplorerID: uintOr(a.ExplorerID, a.EntityID),
					Position:   armyPosition(a),
					Strength:   armyGuard(a).Strength,
					Stamina:    a.Stamina,
					IsInBattle: a.InBattle,
				})
			}
			if entry != nil {
				view.Name = strOr(entry.Name, "")
				view.Points = entry.Points
				view.Rank = entry.Rank
			}
			return view, nil
		},
		func() PlayerView { return emptyPlayer(address) },
	)
}

// leaderboardEntry tries the direct address lookup first and falls back to
// scanning the top of the leaderboard. Lookup failures only cost the rank.
func (c *Client) leaderboardEntry(ctx context.Context, address string) *indexer.LeaderboardRow {
	if lb, ok := c.idx.(indexer.AddressLeaderboard); ok {
		if row, err := lb.FetchLeaderboardByAddress(ctx, address); err == nil && row != nil {
			return row
		}
	}

	rows, err := c.idx.FetchLeaderboard(ctx, leaderboardScan, 0)
	if err != nil {
		return nil
	}
	for i := range rows {
		if ownedBy(rows[i].Address, address) {
			return &rows[i]
		}
	}
	return nil
}

// playerTotals sums the structures' resource lists. Rows without any list
// fall back to the decoded balance table of the owned structures.
func (c *Client) playerTotals(ctx context.Context, structures []indexer.Structure) ([]ResourceTotal, error) {
	ids := make([]uint64, 0, len(structures))
	for _, s := range structures {
		if s.Resources != nil {
			return totalsFromStructures(structures), nil
		}
		if s.EntityID != 0 {
			ids = append(ids, s.EntityID)
		}
	}
	if len(ids) == 0 {
		return []ResourceTotal{}, nil
	}

	rows, err := c.idx.FetchResourceBalances(ctx, ids)
	if err != nil {
		return nil, err
	}
	return totalsFromBalances(rows), nil
}

func emptyPlayer(address string) PlayerView {
	return PlayerView{
		Address:        address,
		Structures:     []PlayerStructureSummary{},
		Armies:         []PlayerArmySummary{},
		TotalResources: []ResourceTotal{},
	}
}
