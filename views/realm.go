package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
)

const (
	maxRealmExplorers = 20
	maxStamina        = 100
)

// Realm returns the realm snapshot of entityID as seen by the connected account.
func (c *Client) Realm(ctx context.Context, entityID uint64) RealmView {
	return c.realm(ctx, entityID).View
}

func (c *Client) realm(ctx context.Context, entityID uint64) outcome[RealmView] {
	owner := c.owner()

	return read(ctx, c, "realm", RealmKey(entityID, owner),
		map[string]any{"entityId": entityID},
		func(ctx context.Context) (RealmView, error) {
			var (
				structures []indexer.Structure
				guards     []indexer.Guard
				balances   []indexer.BalanceRow
				armies     []indexer.Army
			)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() (err error) {
				structures, err = c.idx.FetchStructuresByOwner(gctx, owner)
				return err
			})
			g.Go(func() (err error) {
				guards, err = c.idx.FetchGuardsByStructure(gctx, entityID)
				return err
			})
			g.Go(func() (err error) {
				balances, err = c.idx.FetchResourceBalances(gctx, []uint64{entityID})
				return err
			})
			g.Go(func() (err error) {
				armies, err = c.idx.FetchAllArmies(gctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return RealmView{}, err
			}

			view := emptyRealm(entityID, owner)
			view.Resources = parseBalances(balances)
			view.Guard = BuildGuardState(guards)
			view.Explorers = ownedExplorers(armies, owner)

			// Best effort: with no exact match the first owned structure
			// describes the realm.
			if s := pickStructure(structures, entityID); s != nil {
				view.RealmID = uintOr(s.RealmID, entityID)
				view.Name = strOr(s.Name, view.Name)
				view.Owner = strOr(s.Owner, owner)
				view.Position = structurePosition(*s)
				view.Level = uintOr(s.Level, 1)
			}
			return view, nil
		},
		func() RealmView { return emptyRealm(entityID, owner) },
	)
}

func pickStructure(structures []indexer.Structure, entityID uint64) *indexer.Structure {
	for i := range structures {
		if structures[i].EntityID == entityID {
			return &structures[i]
		}
	}
	if len(structures) > 0 {
		return &structures[0]
	}
	return nil
}

func ownedExplorers(armies []indexer.Army, owner string) []ExplorerSummary {
	out := []ExplorerSummary{}
	for _, a := range armies {
		if len(out) == maxRealmExplorers {
			break
		}
		if !ownedBy(a.Owner, owner) {
			continue
		}
		guard := armyGuard(a)
		out = append(out, ExplorerSummary{
			EntityID:         a.EntityID,
			ExplorerID:       uintOr(a.ExplorerID, a.EntityID),
			Owner:            *a.Owner,
			Position:         armyPosition(a),
			Stamina:          a.Stamina,
			MaxStamina:       maxStamina,
			Troops:           guard.Slots,
			Strength:         guard.Strength,
			IsInBattle:       a.InBattle,
			CarriedResources: []ResourceState{},
		})
	}
	return out
}

func emptyRealm(entityID uint64, owner string) RealmView {
	return RealmView{
		EntityID:         entityID,
		RealmID:          entityID,
		Name:             fmt.Sprintf("Realm #%d", entityID),
		Owner:            owner,
		Level:            1,
		Resources:        []ResourceState{},
		Productions:      []Production{},
		Buildings:        []Building{},
		Guard:            emptyGuard(),
		Explorers:        []ExplorerSummary{},
		IncomingArrivals: []Transfer{},
		OutgoingOrders:   []Transfer{},
		Relics:           []Relic{},
		ActiveBattles:    []Battle{},
		NearbyEntities:   []NearbyEntity{},
	}
}
