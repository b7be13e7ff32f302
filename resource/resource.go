// Package resource holds the resource id table and the on-chain balance
// decoding shared by every view that reports balances.
package resource

import "sort"

// ID identifies a resource kind.
type ID uint32

const (
	Stone ID = iota + 1
	Coal
	Wood
	Copper
	Ironwood
	Obsidian
	Gold
	Silver
	Mithral
	AlchemicalSilver
	ColdIron
	DeepCrystal
	Ruby
	Diamonds
	Hartwood
	Ignium
	TwilightQuartz
	TrueIce
	Adamantine
	Sapphire
	EtherealSilica
	Dragonhide
	Labor
	AncientFragment
	Donkey
	Knight
	KnightT2
	KnightT3
	Crossbowman
	CrossbowmanT2
	CrossbowmanT3
	Paladin
	PaladinT2
	PaladinT3
	Wheat
	Fish
	Lords
)

// Column maps a resource to its balance column in the indexer's resource table.
type Column struct {
	ID     ID
	Name   string
	Column string
}

// Columns lists every balance column, ordered by resource id.
var Columns = []Column{
	{Stone, "Stone", "STONE_BALANCE"},
	{Coal, "Coal", "COAL_BALANCE"},
	{Wood, "Wood", "WOOD_BALANCE"},
	{Copper, "Copper", "COPPER_BALANCE"},
	{Ironwood, "Ironwood", "IRONWOOD_BALANCE"},
	{Obsidian, "Obsidian", "OBSIDIAN_BALANCE"},
	{Gold, "Gold", "GOLD_BALANCE"},
	{Silver, "Silver", "SILVER_BALANCE"},
	{Mithral, "Mithral", "MITHRAL_BALANCE"},
	{AlchemicalSilver, "Alchemical Silver", "ALCHEMICAL_SILVER_BALANCE"},
	{ColdIron, "Cold Iron", "COLD_IRON_BALANCE"},
	{DeepCrystal, "Deep Crystal", "DEEP_CRYSTAL_BALANCE"},
	{Ruby, "Ruby", "RUBY_BALANCE"},
	{Diamonds, "Diamonds", "DIAMONDS_BALANCE"},
	{Hartwood, "Hartwood", "HARTWOOD_BALANCE"},
	{Ignium, "Ignium", "IGNIUM_BALANCE"},
	{TwilightQuartz, "Twilight Quartz", "TWILIGHT_QUARTZ_BALANCE"},
	{TrueIce, "True Ice", "TRUE_ICE_BALANCE"},
	{Adamantine, "Adamantine", "ADAMANTINE_BALANCE"},
	{Sapphire, "Sapphire", "SAPPHIRE_BALANCE"},
	{EtherealSilica, "Ethereal Silica", "ETHEREAL_SILICA_BALANCE"},
	{Dragonhide, "Dragonhide", "DRAGONHIDE_BALANCE"},
	{Labor, "Labor", "LABOR_BALANCE"},
	{AncientFragment, "Ancient Fragment", "EARTHEN_SHARD_BALANCE"},
	{Donkey, "Donkey", "DONKEY_BALANCE"},
	{Knight, "Knight", "KNIGHT_T1_BALANCE"},
	{KnightT2, "KnightT2", "KNIGHT_T2_BALANCE"},
	{KnightT3, "KnightT3", "KNIGHT_T3_BALANCE"},
	{Crossbowman, "Crossbowman", "CROSSBOWMAN_T1_BALANCE"},
	{CrossbowmanT2, "CrossbowmanT2", "CROSSBOWMAN_T2_BALANCE"},
	{CrossbowmanT3, "CrossbowmanT3", "CROSSBOWMAN_T3_BALANCE"},
	{Paladin, "Paladin", "PALADIN_T1_BALANCE"},
	{PaladinT2, "PaladinT2", "PALADIN_T2_BALANCE"},
	{PaladinT3, "PaladinT3", "PALADIN_T3_BALANCE"},
	{Wheat, "Wheat", "WHEAT_BALANCE"},
	{Fish, "Fish", "FISH_BALANCE"},
	{Lords, "Lords", "LORDS_BALANCE"},
}

var byID = func() map[ID]Column {
	m := make(map[ID]Column, len(Columns))
	for _, c := range Columns {
		m[c.ID] = c
	}
	return m
}()

// Name returns the display name of id, or "" for unknown ids.
func Name(id ID) string {
	return byID[id].Name
}

// Known reports whether id is in the table.
func Known(id ID) bool {
	_, ok := byID[id]
	return ok
}

// SortByID sorts ids ascending in place.
func SortByID(ids []ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
