package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

// Explorer returns the snapshot of one explorer army.
func (c *Client) Explorer(ctx context.Context, entityID uint64) ExplorerView {
	return c.explorer(ctx, entityID).View
}

func (c *Client) explorer(ctx context.Context, entityID uint64) outcome[ExplorerView] {
	account := c.owner()

	return read(ctx, c, "explorer", ExplorerKey(entityID, account),
		map[string]any{"entityId": entityID},
		func(ctx context.Context) (ExplorerView, error) {
			var (
				armies []indexer.Army
				owner  string
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				armies, err = c.idx.FetchAllArmies(gctx)
				return err
			})
			g.Go(func() (err error) {
				owner, err = c.idx.FetchExplorerOwner(gctx, entityID)
				return err
			})
			if err := g.Wait(); err != nil {
				return ExplorerView{}, err
			}

			view := emptyExplorer(entityID, account)
			if owner != "" {
				view.Owner = owner
			}

			for _, a := range armies {
				if a.EntityID != entityID {
					continue
				}
				view.ExplorerID = uintOr(a.ExplorerID, a.EntityID)
				view.Position = armyPosition(a)
				view.Stamina = a.Stamina
				view.Troops = armyGuard(a)
				view.IsInBattle = a.InBattle
				break
			}
			return view, nil
		},
		func() ExplorerView { return emptyExplorer(entityID, account) },
	)
}

func emptyExplorer(entityID uint64, owner string) ExplorerView {
	return ExplorerView{
		EntityID:         entityID,
		ExplorerID:       entityID,
		Owner:            owner,
		MaxStamina:       maxStamina,
		Troops:           emptyGuard(),
		CarriedResources: []ResourceState{},
		NearbyEntities:   []NearbyEntity{},
		RecentEvents:     []GameEvent{},
	}
}
