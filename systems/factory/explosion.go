package factory

import (
	"github.com/sleepysdevin/demolition-mp/archetypes"
	"github.com/sleepysdevin/demolition-mp/components"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion spawns an area damage tick plus a borrowed VFX slot.
// When the pool is exhausted the slot index is -1 and the explosion runs
// without a visual; damage is never dropped.
func CreateExplosion(ecs *ecs.ECS, pos gamemath.Vec3, radius, damage, duration float64, flashOnly bool) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(ecs)

	demo := components.MustDemolition(ecs.World)
	slot := demo.Pool.Acquire()
	if slot >= 0 {
		demo.Pool.Slots[slot].Pos = pos
	}

	components.Explosion.Set(explosion, &components.ExplosionData{
		Slot:      slot,
		Radius:    radius,
		Damage:    damage,
		Duration:  duration,
		FlashOnly: flashOnly,
	})
	components.Transform.Set(explosion, &components.TransformData{
		Pos: pos,
	})

	return explosion
}
