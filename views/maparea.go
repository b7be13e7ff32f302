package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

// MapArea returns everything within the square of half-width Radius around
// (X, Y).
func (c *Client) MapArea(ctx context.Context, q MapAreaQuery) MapAreaView {
	return c.mapArea(ctx, q).View
}

func (c *Client) mapArea(ctx context.Context, q MapAreaQuery) outcome[MapAreaView] {
	return read(ctx, c, "mapArea", MapAreaKey(q),
		map[string]any{"x": q.X, "y": q.Y, "radius": q.Radius},
		func(ctx context.Context) (MapAreaView, error) {
			var (
				structures []indexer.Structure
				armies     []indexer.Army
				tiles      []indexer.Tile
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				structures, err = c.idx.FetchAllStructures(gctx)
				return err
			})
			g.Go(func() (err error) {
				armies, err = c.idx.FetchAllArmies(gctx)
				return err
			})
			g.Go(func() (err error) {
				tiles, err = c.idx.FetchAllTiles(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return MapAreaView{}, err
			}

			view := emptyMapArea(q)
			for _, s := range structures {
				if !q.contains(s.X, s.Y) {
					continue
				}
				view.Structures = append(view.Structures, MapStructure{
					EntityID:      s.EntityID,
					StructureType: strOr(s.Category, "unknown"),
					Position:      structurePosition(s),
					Owner:         strOr(s.Owner, noOwner),
					Name:          strOr(s.Name, ""),
					Level:         uintOr(s.Level, 1),
				})
			}
			for _, a := range armies {
				if !q.contains(a.X, a.Y) {
					continue
				}
				guard := armyGuard(a)
				view.Armies = append(view.Armies, MapArmy{
					EntityID:   a.EntityID,
					Owner:      strOr(a.Owner, noOwner),
					Position:   armyPosition(a),
					Troops:     guard.Slots,
					Strength:   guard.Strength,
					Stamina:    a.Stamina,
					IsInBattle: a.InBattle,
				})
			}
			for _, t := range tiles {
				if !q.contains(t.X, t.Y) {
					continue
				}
				tile := TileState{
					Position: Position{X: t.X, Y: t.Y},
					Biome:    strOr(t.Biome, "unknown"),
					Explored: t.Explored == nil || *t.Explored,
				}
				if t.OccupierID != 0 {
					id := t.OccupierID
					tile.OccupiedBy = &id
				}
				view.Tiles = append(view.Tiles, tile)
			}
			return view, nil
		},
		func() MapAreaView { return emptyMapArea(q) },
	)
}

// contains is the square (Chebyshev) radius test.
func (q MapAreaQuery) contains(x, y int64) bool {
	return abs(x-q.X) <= q.Radius && abs(y-q.Y) <= q.Radius
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func emptyMapArea(q MapAreaQuery) MapAreaView {
	return MapAreaView{
		Center:     Position{X: q.X, Y: q.Y},
		Radius:     q.Radius,
		Tiles:      []TileState{},
		Structures: []MapStructure{},
		Armies:     []MapArmy{},
		Battles:    []Battle{},
	}
}
