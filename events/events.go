// Package events is the outward boundary of the destruction engine. Each
// event kind has exactly one intended subscriber (combat, loot, audio or
// network sync), wired once at scene build; the engine publishes and never
// reads anything back.
package events

import (
	"github.com/sleepysdevin/demolition-mp/components"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi/features/events"
)

// PropDestroyedData announces any prop reaching zero health.
type PropDestroyedData struct {
	Category components.Category
	Pos      gamemath.Vec3
}

// PropSnapshotData is the full prop state, published before any teardown so
// network consumers replicate a consistent record.
type PropSnapshotData struct {
	Category components.Category
	Pos      gamemath.Vec3
	Health   float64
	Loot     *components.LootDescriptor
}

// BarrelExplodedData carries the fixed barrel blast parameters for
// consumers that damage entities the registry does not track.
type BarrelExplodedData struct {
	Pos    gamemath.Vec3
	Radius float64
	Damage float64
}

type LootDroppedData struct {
	Type   string
	Amount int
	Pos    gamemath.Vec3
}

// GrenadeThrownData fires at launch, before the first integration step.
type GrenadeThrownData struct {
	Pos  gamemath.Vec3
	Dir  gamemath.Vec3
	Kind components.GrenadeKind
}

type GrenadeLandedData struct {
	Pos  gamemath.Vec3
	Kind components.GrenadeKind
}

// ExplosionTriggeredData fires on a frag explosion's single damage tick.
type ExplosionTriggeredData struct {
	Pos    gamemath.Vec3
	Radius float64
	Damage float64
}

// PlayerInGasData fires each frame the player stands inside a live cloud.
// Mask/protection mitigation is the subscriber's call; the engine always
// reports exposure.
type PlayerInGasData struct {
	Damage float64
}

type DestructionSoundData struct {
	Sound string
	Pos   gamemath.Vec3
}

var (
	PropDestroyed      = events.NewEventType[PropDestroyedData]()
	PropDestroyedFull  = events.NewEventType[PropSnapshotData]()
	BarrelExploded     = events.NewEventType[BarrelExplodedData]()
	LootDropped        = events.NewEventType[LootDroppedData]()
	GrenadeThrown      = events.NewEventType[GrenadeThrownData]()
	GrenadeLanded      = events.NewEventType[GrenadeLandedData]()
	ExplosionTriggered = events.NewEventType[ExplosionTriggeredData]()
	PlayerInGas        = events.NewEventType[PlayerInGasData]()
	DestructionSound   = events.NewEventType[DestructionSoundData]()
)
