package components

import "github.com/yohamta/donburi"

// ExplosionData is a one-shot area damage tick tied to a borrowed VFX pool
// slot. Slot is -1 when the pool was exhausted at spawn time; the damage
// still applies, only the visual is dropped.
type ExplosionData struct {
	Slot     int
	Radius   float64
	Damage   float64
	Elapsed  float64
	Duration float64

	// DamageDealt guarantees the area damage fires exactly once no matter
	// how many frames the sprite plays.
	DamageDealt bool

	// Flash-only explosions (barrel visuals) skip the damage tick; the
	// chain-reaction queue carries the barrel's damage instead.
	FlashOnly bool
}

var Explosion = donburi.NewComponentType[ExplosionData]()
