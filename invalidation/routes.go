package invalidation

import "github.com/bibliothecadao/eternum-viewcache/views"

// Update is one entity change reported by the indexer.
type Update struct {
	Model    string
	EntityID uint64
}

// Route maps an update to the views it makes stale. Unknown models map to an
// empty Target.
func Route(u Update) Target {
	switch u.Model {
	case "s1_eternum-Structure", "s1_eternum-StructureName", "s1_eternum-Resource":
		return Target{
			Keys:     []string{views.BankKey(u.EntityID), views.HyperstructureKey(u.EntityID)},
			Prefixes: []string{views.RealmEntityPrefix(u.EntityID), views.PrefixPlayer, views.PrefixMapArea},
		}

	case "s1_eternum-ExplorerTroops":
		return Target{
			// Realms list their explorers and players list their armies.
			Prefixes: []string{views.ExplorerEntityPrefix(u.EntityID), views.PrefixRealm, views.PrefixPlayer, views.PrefixMapArea},
		}

	case "s1_eternum-Tile":
		return Target{Prefixes: []string{views.PrefixMapArea}}

	case "s1_eternum-Hyperstructure":
		return Target{Keys: []string{views.HyperstructureKey(u.EntityID)}}

	case "s1_eternum-SwapEvent":
		return Target{Prefixes: []string{views.PrefixMarket, views.PrefixBank}}

	case "s1_eternum-PlayerRegisteredPoints":
		return Target{Prefixes: []string{views.PrefixLeaderboard, views.PrefixPlayer}}

	case "s1_eternum-StoryEvent":
		return Target{Prefixes: []string{views.PrefixEvents}}
	}
	return Target{}
}
