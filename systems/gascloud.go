package systems

import (
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/events"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGasClouds ticks hazard damage and animates puffs. Damage inside the
// radius is flat (no falloff); player exposure is published instead of
// applied so the subscriber can factor in protection.
func UpdateGasClouds(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)

	var expired []*donburi.Entry
	components.GasCloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.GasCloud.Get(e)
		center := components.Transform.Get(e).Pos

		cloud.Remaining -= dt
		if cloud.Remaining <= 0 {
			expired = append(expired, e)
			return
		}

		tick := cfg.Gas.DamageRate * dt
		flat := gamemath.Vec3{X: center.X, Z: center.Z}
		components.Health.Each(ecs.World, func(target *donburi.Entry) {
			if !target.HasComponent(components.Transform) {
				return
			}
			pos := components.Transform.Get(target).Pos
			if gamemath.Dist(flat, gamemath.Vec3{X: pos.X, Z: pos.Z}) > cloud.Radius {
				return
			}
			if target.HasComponent(tags.Player) {
				events.PlayerInGas.Publish(ecs.World, events.PlayerInGasData{
					Damage: tick,
				})
				return
			}
			health := components.Health.Get(target)
			health.Current -= tick
		})

		for i := range cloud.Puffs {
			p := &cloud.Puffs[i]
			p.Pos.X += p.Drift.X * dt
			p.Pos.Z += p.Drift.Z * dt
			p.Pos.Y += p.Rise * dt
			p.Rot += p.RotSpeed * dt
		}
	})

	for _, e := range expired {
		e.Remove()
	}
}

// PuffOpacity computes a puff's current alpha from the cloud's remaining
// life. Puffs hold full opacity until their personal fade delay, then fade
// out linearly over the rest of the cloud's life.
func PuffOpacity(cloud *components.GasCloudData, puff *components.SmokePuff) float64 {
	elapsed := cloud.Duration - cloud.Remaining
	if elapsed <= puff.FadeDelay {
		return 1
	}
	fadeSpan := cloud.Duration - puff.FadeDelay
	if fadeSpan <= 0 {
		return 0
	}
	o := 1 - (elapsed-puff.FadeDelay)/fadeSpan
	if o < 0 {
		return 0
	}
	return o
}

// PuffScale grows a puff over the cloud's life up to the configured bonus.
func PuffScale(cloud *components.GasCloudData, puff *components.SmokePuff) float64 {
	progress := 1 - cloud.Remaining/cloud.Duration
	return puff.BaseScale * (1 + cfg.Gas.PuffGrowth*progress)
}
