package views

import "fmt"

// Key prefixes, one per view kind. Writers pass them to InvalidateByPrefix.
const (
	PrefixRealm          = "realm:"
	PrefixExplorer       = "explorer:"
	PrefixMapArea        = "mapArea:"
	PrefixMarket         = "market"
	PrefixPlayer         = "player:"
	PrefixHyperstructure = "hyperstructure:"
	PrefixLeaderboard    = "leaderboard:"
	PrefixBank           = "bank:"
	PrefixEvents         = "events:"
)

// RealmKey includes the account the realm is viewed as, since the snapshot
// is assembled from that account's structures.
func RealmKey(entityID uint64, account string) string {
	return RealmEntityPrefix(entityID) + account
}

// RealmEntityPrefix matches every account's snapshot of one realm.
func RealmEntityPrefix(entityID uint64) string {
	return fmt.Sprintf("%s%d:", PrefixRealm, entityID)
}

// ExplorerKey includes the account because an unowned explorer reports the
// connected account as its owner.
func ExplorerKey(entityID uint64, account string) string {
	return ExplorerEntityPrefix(entityID) + account
}

func ExplorerEntityPrefix(entityID uint64) string {
	return fmt.Sprintf("%s%d:", PrefixExplorer, entityID)
}

func MapAreaKey(q MapAreaQuery) string {
	return fmt.Sprintf("%s%d:%d:%d", PrefixMapArea, q.X, q.Y, q.Radius)
}

func MarketKey() string {
	return PrefixMarket
}

func PlayerKey(address string) string {
	return PrefixPlayer + address
}

func HyperstructureKey(entityID uint64) string {
	return fmt.Sprintf("%s%d", PrefixHyperstructure, entityID)
}

// LeaderboardKey expects defaults already applied.
func LeaderboardKey(q LeaderboardQuery) string {
	return fmt.Sprintf("%s%d:%d", PrefixLeaderboard, q.Limit, q.Offset)
}

func BankKey(entityID uint64) string {
	return fmt.Sprintf("%s%d", PrefixBank, entityID)
}

// EventsKey expects defaults already applied. Unset filters render empty.
func EventsKey(q EventsQuery) string {
	entity, since := "", ""
	if q.EntityID != 0 {
		entity = fmt.Sprint(q.EntityID)
	}
	if q.Since != 0 {
		since = fmt.Sprint(q.Since)
	}
	return fmt.Sprintf("%s%s:%s:%s:%d:%d", PrefixEvents, entity, q.Owner, since, q.Limit, q.Offset)
}
