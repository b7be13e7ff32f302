package indexer

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/bibliothecadao/eternum-viewcache/resource"
)

// Row decoding is lenient: a missing or malformed field becomes nil or zero
// so one bad row never fails a whole query.

// registeredPointsPrecision scales stored leaderboard points to display points.
const registeredPointsPrecision = 1_000_000

func parseRows(body []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformed
	}
	res := gjson.ParseBytes(body)
	if !res.IsArray() {
		return nil, ErrMalformed
	}
	return res.Array(), nil
}

func optString(r gjson.Result, key string) *string {
	v := r.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	return &s
}

func optUint(r gjson.Result, key string) *uint64 {
	v := r.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	n := count(v)
	return &n
}

func optBool(r gjson.Result, key string) *bool {
	v := r.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	b := v.Bool()
	return &b
}

// count reads a non-negative integer that may be a JSON number, a decimal
// string or a hex string.
func count(v gjson.Result) uint64 {
	switch v.Type {
	case gjson.Number:
		if v.Num <= 0 {
			return 0
		}
		return v.Uint()
	case gjson.String:
		return resource.ParseCount(v.Str)
	}
	return 0
}

func decodeStructure(r gjson.Result) Structure {
	return Structure{
		EntityID:  r.Get("entity_id").Uint(),
		RealmID:   optUint(r, "realm_id"),
		Name:      optString(r, "name"),
		Owner:     optString(r, "owner"),
		Category:  optString(r, "category"),
		Level:     optUint(r, "level"),
		X:         r.Get("coord_x").Int(),
		Y:         r.Get("coord_y").Int(),
		Resources: decodeResourceList(r.Get("resources")),
	}
}

// decodeResourceList accepts the list inline or as a JSON-encoded string
// column. Entries with unknown resource ids are skipped. It returns nil when no
// list is present.
func decodeResourceList(v gjson.Result) []ResourceAmount {
	if v.Type == gjson.String {
		v = gjson.Parse(v.Str)
	}
	if !v.IsArray() {
		return nil
	}

	out := []ResourceAmount{}
	v.ForEach(func(_, item gjson.Result) bool {
		id := resource.ID(item.Get("resource_id").Uint())
		if !resource.Known(id) {
			return true
		}
		out = append(out, ResourceAmount{ResourceID: id, Amount: count(item.Get("amount"))})
		return true
	})
	return out
}

func decodeTroops(r gjson.Result, prefix string) *Troops {
	n := count(r.Get(prefix + "count"))
	if n == 0 {
		return nil
	}
	category := r.Get(prefix + "category").String()
	if category == "" {
		category = "unknown"
	}
	tier := uint64(1)
	if t := r.Get(prefix + "tier"); t.Exists() && t.Type != gjson.Null {
		tier = count(t)
	}
	return &Troops{Category: category, Tier: tier, Count: n}
}

// decodeGuards flattens the single guard row of a structure into its four
// slots. Slots without troops keep a nil payload.
func decodeGuards(rows []gjson.Result) []Guard {
	if len(rows) == 0 {
		return nil
	}
	r := rows[0]
	guards := make([]Guard, 0, len(guardSlotNames))
	for i, slot := range guardSlotNames {
		guards = append(guards, Guard{Slot: i, Troops: decodeTroops(r, slot+"_")})
	}
	return guards
}

func decodeArmy(r gjson.Result) Army {
	return Army{
		EntityID:   r.Get("entity_id").Uint(),
		ExplorerID: optUint(r, "explorer_id"),
		Owner:      optString(r, "owner_address"),
		X:          r.Get("coord_x").Int(),
		Y:          r.Get("coord_y").Int(),
		Stamina:    count(r.Get("stamina")),
		InBattle:   r.Get("is_in_battle").Bool(),
		Troops:     decodeTroops(r, ""),
	}
}

func decodeTile(r gjson.Result) Tile {
	return Tile{
		X:          r.Get("col").Int(),
		Y:          r.Get("row_index").Int(),
		Biome:      optString(r, "biome"),
		Explored:   optBool(r, "explored"),
		OccupierID: count(r.Get("occupier_id")),
	}
}

func decodeHyperstructure(r gjson.Result) Hyperstructure {
	return Hyperstructure{
		EntityID: r.Get("entity_id").Uint(),
		X:        r.Get("coord_x").Int(),
		Y:        r.Get("coord_y").Int(),
		Owner:    optString(r, "owner"),
		Progress: r.Get("progress").Float(),
	}
}

func decodeBalanceRow(r gjson.Result) BalanceRow {
	row := BalanceRow{
		EntityID: r.Get("entity_id").Uint(),
		Balances: make(map[string]string, len(resource.Columns)),
	}
	for _, c := range resource.Columns {
		if v := r.Get(c.Column); v.Type == gjson.String {
			row.Balances[c.Column] = v.Str
		}
	}
	return row
}

// decodeSwap orients a swap from the taker's side: a buy pays Lords for the
// resource, a sell pays the resource for Lords.
func decodeSwap(r gjson.Result) Swap {
	lords := SwapLeg{ResourceID: resource.Lords, Amount: count(r.Get("lords_amount"))}
	res := SwapLeg{
		ResourceID: resource.ID(r.Get("resource_type").Uint()),
		Amount:     count(r.Get("resource_amount")),
	}

	s := Swap{
		TakerID:      r.Get("entity_id").Uint(),
		TakerAddress: r.Get("owner").String(),
		Timestamp:    r.Get("timestamp").Int(),
	}
	if r.Get("buy").Bool() {
		s.Given, s.Taken = lords, res
	} else {
		s.Given, s.Taken = res, lords
	}
	return s
}

func decodeLeaderboardRow(r gjson.Result) LeaderboardRow {
	return LeaderboardRow{
		Address:    optString(r, "player_address"),
		Name:       optString(r, "player_name"),
		Points:     float64(count(r.Get("registered_points"))) / registeredPointsPrecision,
		Rank:       r.Get("player_rank").Uint(),
		RealmCount: r.Get("realm_count").Uint(),
	}
}

func decodeEvent(r gjson.Result) Event {
	ev := Event{
		ID:        r.Get("event_id").Uint(),
		Type:      optString(r, "event_type"),
		Timestamp: r.Get("timestamp").Int(),
	}

	data := r.Get("data")
	if data.Type == gjson.String && gjson.Valid(data.Str) {
		data = gjson.Parse(data.Str)
	}
	if data.IsObject() {
		ev.Data = json.RawMessage(data.Raw)
	}

	involved := r.Get("involved_entities")
	if involved.Type == gjson.String {
		involved = gjson.Parse(involved.Str)
	}
	if involved.IsArray() {
		involved.ForEach(func(_, id gjson.Result) bool {
			ev.InvolvedEntities = append(ev.InvolvedEntities, id.Uint())
			return true
		})
	}
	return ev
}
