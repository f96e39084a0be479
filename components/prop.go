package components

import "github.com/yohamta/donburi"

// Category identifies a destructible prop kind.
type Category string

const (
	CategoryCrate      Category = "crate"
	CategoryReinforced Category = "reinforced_crate"
	CategoryBarrel     Category = "barrel"
)

// LootDescriptor is an optional drop configured at registration time.
type LootDescriptor struct {
	Type   string
	Amount int
}

// PropData is a registered destructible prop. Health only ever decreases;
// once it crosses zero the prop is destroyed exactly once and removed.
type PropData struct {
	Category  Category
	Health    float64
	MaxHealth float64
	Loot      *LootDescriptor

	// Destroyed guards against re-entrant destruction while the entity is
	// still being torn down within the same frame.
	Destroyed bool
}

var Prop = donburi.NewComponentType[PropData]()
