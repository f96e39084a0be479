package systems

import (
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExplosions runs each explosion's single damage tick, advances the
// borrowed pool slot's playback and releases the slot when the sprite
// finishes.
func UpdateExplosions(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)
	demo := components.MustDemolition(ecs.World)

	var finished []*donburi.Entry
	components.Explosion.Each(ecs.World, func(e *donburi.Entry) {
		ex := components.Explosion.Get(e)
		pos := components.Transform.Get(e).Pos

		if !ex.DamageDealt && !ex.FlashOnly {
			ex.DamageDealt = true
			DamagePropsInRadius(ecs, pos, ex.Radius, ex.Damage)
			events.ExplosionTriggered.Publish(ecs.World, events.ExplosionTriggeredData{
				Pos:    pos,
				Radius: ex.Radius,
				Damage: ex.Damage,
			})
		}

		ex.Elapsed += dt

		progress := ex.Elapsed / ex.Duration
		if progress > 1 {
			progress = 1
		}
		if ex.Slot >= 0 {
			slot := &demo.Pool.Slots[ex.Slot]
			slot.Pos = pos
			slot.FrameIndex = int(progress * float64(cfg.Explosion.FrameCount))
			if slot.FrameIndex >= cfg.Explosion.FrameCount {
				slot.FrameIndex = cfg.Explosion.FrameCount - 1
			}
			slot.Opacity = 1 - progress*0.7
			slot.Scale = 0.6 + progress*0.8
		}

		if ex.Elapsed >= ex.Duration {
			finished = append(finished, e)
		}
	})

	for _, e := range finished {
		ex := components.Explosion.Get(e)
		demo.Pool.Release(ex.Slot)
		e.Remove()
	}
}
