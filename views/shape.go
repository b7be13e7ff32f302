package views

import (
	"sort"
	"strings"

	"github.com/bibliothecadao/eternum-viewcache/indexer"
	"github.com/bibliothecadao/eternum-viewcache/resource"
)

// SameAddress reports whether two addresses are equal after trimming and
// case folding. Empty addresses match nothing, not even each other.
func SameAddress(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))
	return na != "" && na == nb
}

func ownedBy(owner *string, address string) bool {
	return owner != nil && SameAddress(*owner, address)
}

// Strength is the fighting value of count troops of the given tier.
func Strength(count, tier uint64) uint64 {
	return count * tier
}

// troopSlot converts an optional troop payload. ok is false when there is
// no payload.
func troopSlot(t *indexer.Troops) (GuardSlot, bool) {
	if t == nil {
		return GuardSlot{}, false
	}
	return GuardSlot{TroopType: t.Category, Count: t.Count, Tier: t.Tier}, true
}

func aggregateSlots(slots []GuardSlot) GuardState {
	g := GuardState{Slots: slots}
	for _, s := range slots {
		g.TotalTroops += s.Count
		g.Strength += Strength(s.Count, s.Tier)
	}
	return g
}

// BuildGuardState drops slots without troops and aggregates the rest.
func BuildGuardState(guards []indexer.Guard) GuardState {
	slots := make([]GuardSlot, 0, len(guards))
	for _, g := range guards {
		if s, ok := troopSlot(g.Troops); ok {
			slots = append(slots, s)
		}
	}
	return aggregateSlots(slots)
}

func armyGuard(a indexer.Army) GuardState {
	slots := []GuardSlot{}
	if s, ok := troopSlot(a.Troops); ok {
		slots = append(slots, s)
	}
	return aggregateSlots(slots)
}

func emptyGuard() GuardState {
	return GuardState{Slots: []GuardSlot{}}
}

// parseBalances lists the strictly positive balances of the rows, ordered by
// resource id.
func parseBalances(rows []indexer.BalanceRow) []ResourceState {
	out := []ResourceState{}
	for _, row := range rows {
		for _, col := range resource.Columns {
			raw, ok := row.Balances[col.Column]
			if !ok {
				continue
			}
			if bal := resource.DecodeBalance(raw); bal > 0 {
				out = append(out, ResourceState{
					ResourceID: col.ID,
					Name:       col.Name,
					Balance:    bal,
					RawBalance: raw,
				})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ResourceID < out[j].ResourceID })
	return out
}

// totals accumulates per-resource sums and the distinct structures behind them.
type totals map[resource.ID]*struct {
	balance    uint64
	structures map[uint64]struct{}
}

func (t totals) add(id resource.ID, entityID, amount uint64) {
	if amount == 0 {
		return
	}
	cur, ok := t[id]
	if !ok {
		cur = &struct {
			balance    uint64
			structures map[uint64]struct{}
		}{structures: map[uint64]struct{}{}}
		t[id] = cur
	}
	cur.balance += amount
	if entityID > 0 {
		cur.structures[entityID] = struct{}{}
	}
}

func (t totals) list() []ResourceTotal {
	ids := make([]resource.ID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	resource.SortByID(ids)

	out := make([]ResourceTotal, 0, len(ids))
	for _, id := range ids {
		out = append(out, ResourceTotal{
			ResourceID:     id,
			Name:           resource.Name(id),
			TotalBalance:   t[id].balance,
			StructureCount: len(t[id].structures),
		})
	}
	return out
}

// totalsFromStructures sums every structure's resource list.
func totalsFromStructures(structures []indexer.Structure) []ResourceTotal {
	t := totals{}
	for _, s := range structures {
		for _, r := range s.Resources {
			t.add(r.ResourceID, s.EntityID, r.Amount)
		}
	}
	return t.list()
}

// totalsFromBalances sums decoded balance rows.
func totalsFromBalances(rows []indexer.BalanceRow) []ResourceTotal {
	t := totals{}
	for _, row := range rows {
		for _, col := range resource.Columns {
			if raw, ok := row.Balances[col.Column]; ok {
				t.add(col.ID, row.EntityID, resource.DecodeBalance(raw))
			}
		}
	}
	return t.list()
}

// swapEvent reads a swap from the trader's side: a buy pays Lords for a
// resource, a sell pays a resource for Lords.
func swapEvent(s indexer.Swap) SwapEvent {
	ev := SwapEvent{
		EventID:   s.TakerID,
		IsBuy:     s.Given.ResourceID == resource.Lords,
		Timestamp: s.Timestamp,
		Trader:    s.TakerAddress,
	}
	if ev.Trader == "" {
		ev.Trader = noOwner
	}

	if ev.IsBuy {
		ev.ResourceID = s.Taken.ResourceID
		ev.LordsAmount = s.Given.Amount
		ev.ResourceAmount = s.Taken.Amount
	} else {
		ev.ResourceID = s.Given.ResourceID
		ev.LordsAmount = s.Taken.Amount
		ev.ResourceAmount = s.Given.Amount
	}
	ev.ResourceName = resource.Name(ev.ResourceID)
	return ev
}

func recentSwaps(swaps []indexer.Swap, n int) []SwapEvent {
	if len(swaps) > n {
		swaps = swaps[:n]
	}
	out := make([]SwapEvent, 0, len(swaps))
	for _, s := range swaps {
		out = append(out, swapEvent(s))
	}
	return out
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func uintOr(p *uint64, def uint64) uint64 {
	if p == nil {
		return def
	}
	return *p
}

func structurePosition(s indexer.Structure) Position {
	return Position{X: s.X, Y: s.Y}
}

func armyPosition(a indexer.Army) Position {
	return Position{X: a.X, Y: a.Y}
}
