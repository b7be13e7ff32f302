package views

import "slices"

// clone methods deep-copy a snapshot. slices.Clone keeps nil as nil and an
// empty slice as empty, so copies encode exactly like the original.

func (g GuardState) clone() GuardState {
	g.Slots = slices.Clone(g.Slots)
	return g
}

func (t Transfer) clone() Transfer {
	t.Resources = slices.Clone(t.Resources)
	return t
}

func (s ExplorerSummary) clone() ExplorerSummary {
	s.Troops = slices.Clone(s.Troops)
	s.CarriedResources = slices.Clone(s.CarriedResources)
	return s
}

func (a MapArmy) clone() MapArmy {
	a.Troops = slices.Clone(a.Troops)
	return a
}

func (t TileState) clone() TileState {
	if t.OccupiedBy != nil {
		id := *t.OccupiedBy
		t.OccupiedBy = &id
	}
	return t
}

func (e GameEvent) clone() GameEvent {
	e.Data = slices.Clone(e.Data)
	e.InvolvedEntities = slices.Clone(e.InvolvedEntities)
	return e
}

// cloneEach copies s and clones every element.
func cloneEach[S ~[]E, E interface{ clone() E }](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	for i, e := range s {
		out[i] = e.clone()
	}
	return out
}

func (v RealmView) clone() RealmView {
	v.Resources = slices.Clone(v.Resources)
	v.Productions = slices.Clone(v.Productions)
	v.Buildings = slices.Clone(v.Buildings)
	v.Guard = v.Guard.clone()
	v.Explorers = cloneEach(v.Explorers)
	v.IncomingArrivals = cloneEach(v.IncomingArrivals)
	v.OutgoingOrders = cloneEach(v.OutgoingOrders)
	v.Relics = slices.Clone(v.Relics)
	v.ActiveBattles = slices.Clone(v.ActiveBattles)
	v.NearbyEntities = slices.Clone(v.NearbyEntities)
	return v
}

func (v ExplorerView) clone() ExplorerView {
	v.Troops = v.Troops.clone()
	v.CarriedResources = slices.Clone(v.CarriedResources)
	if v.CurrentBattle != nil {
		b := *v.CurrentBattle
		v.CurrentBattle = &b
	}
	v.NearbyEntities = slices.Clone(v.NearbyEntities)
	v.RecentEvents = cloneEach(v.RecentEvents)
	return v
}

func (v MapAreaView) clone() MapAreaView {
	v.Tiles = cloneEach(v.Tiles)
	v.Structures = slices.Clone(v.Structures)
	v.Armies = cloneEach(v.Armies)
	v.Battles = slices.Clone(v.Battles)
	return v
}

func (v MarketView) clone() MarketView {
	v.Pools = slices.Clone(v.Pools)
	v.RecentSwaps = slices.Clone(v.RecentSwaps)
	v.OpenOrders = slices.Clone(v.OpenOrders)
	v.PlayerLPPositions = slices.Clone(v.PlayerLPPositions)
	return v
}

func (v PlayerView) clone() PlayerView {
	v.Structures = slices.Clone(v.Structures)
	v.Armies = slices.Clone(v.Armies)
	v.TotalResources = slices.Clone(v.TotalResources)
	return v
}

func (v HyperstructureView) clone() HyperstructureView {
	if v.Owner != nil {
		owner := *v.Owner
		v.Owner = &owner
	}
	v.Contributions = slices.Clone(v.Contributions)
	v.Guard = v.Guard.clone()
	v.ActiveBattles = slices.Clone(v.ActiveBattles)
	return v
}

func (v LeaderboardView) clone() LeaderboardView {
	v.Entries = slices.Clone(v.Entries)
	return v
}

func (v BankView) clone() BankView {
	v.Pools = slices.Clone(v.Pools)
	v.RecentSwaps = slices.Clone(v.RecentSwaps)
	v.PlayerLPPositions = slices.Clone(v.PlayerLPPositions)
	return v
}

func (v EventsView) clone() EventsView {
	v.Events = cloneEach(v.Events)
	return v
}
