package archetypes

import (
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Demolition = newArchetype(
		components.Demolition,
	)
	Time = newArchetype(
		components.Time,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Ground,
		components.Object,
	)
	Prop = newArchetype(
		tags.Prop,
		components.Prop,
		components.Transform,
		components.Object,
		components.Sprite,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Health,
		components.Object,
	)
	Grenade = newArchetype(
		tags.Grenade,
		components.Grenade,
		components.Transform,
		components.Object,
	)
	GasCloud = newArchetype(
		tags.GasCloud,
		components.GasCloud,
		components.Transform,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.Transform,
	)
	Debris = newArchetype(
		tags.Debris,
		components.Debris,
		components.Transform,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
