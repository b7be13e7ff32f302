package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

const completeProgress = 100

// Hyperstructure returns a hyperstructure's construction state and guard.
func (c *Client) Hyperstructure(ctx context.Context, entityID uint64) HyperstructureView {
	return c.hyperstructure(ctx, entityID).View
}

func (c *Client) hyperstructure(ctx context.Context, entityID uint64) outcome[HyperstructureView] {
	return read(ctx, c, "hyperstructure", HyperstructureKey(entityID),
		map[string]any{"entityId": entityID},
		func(ctx context.Context) (HyperstructureView, error) {
			var (
				rows   []indexer.Hyperstructure
				guards []indexer.Guard
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				rows, err = c.idx.FetchHyperstructures(gctx)
				return err
			})
			g.Go(func() (err error) {
				guards, err = c.idx.FetchGuardsByStructure(gctx, entityID)
				return err
			})
			if err := g.Wait(); err != nil {
				return HyperstructureView{}, err
			}

			view := emptyHyperstructure(entityID)
			view.Guard = BuildGuardState(guards)
			for _, h := range rows {
				if h.EntityID != entityID {
					continue
				}
				view.Position = Position{X: h.X, Y: h.Y}
				if h.Owner != nil && *h.Owner != "" {
					owner := *h.Owner
					view.Owner = &owner
				}
				view.Progress = h.Progress
				view.IsComplete = h.Progress >= completeProgress
				break
			}
			return view, nil
		},
		func() HyperstructureView { return emptyHyperstructure(entityID) },
	)
}

func emptyHyperstructure(entityID uint64) HyperstructureView {
	return HyperstructureView{
		EntityID:      entityID,
		Contributions: []Contribution{},
		Guard:         emptyGuard(),
		ActiveBattles: []Battle{},
	}
}
