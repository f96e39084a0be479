package systems

import (
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebris integrates fragment motion: gravity, damped floor bounces,
// spin and the final fade. Expired particles are removed after iteration.
func UpdateDebris(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)

	var expired []*donburi.Entry
	components.Debris.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Debris.Get(e)
		t := components.Transform.Get(e)

		d.Life -= dt
		if d.Life <= 0 {
			expired = append(expired, e)
			return
		}

		d.Vel.Y += cfg.Debris.Gravity * dt
		t.Pos = t.Pos.Add(d.Vel.Scale(dt))

		if t.Pos.Y <= d.FloorY && d.Vel.Y < 0 {
			t.Pos.Y = d.FloorY
			d.Vel.Y = -d.Vel.Y * cfg.Debris.BounceDamping
			d.Vel.X *= cfg.Debris.SlideDamping
			d.Vel.Z *= cfg.Debris.SlideDamping
			for i := range d.Spin {
				d.Spin[i] *= cfg.Debris.SpinDamping
			}
		}

		for i := range d.Rot {
			d.Rot[i] += d.Spin[i] * dt
		}

		// Hold full opacity until the final portion of life, then fade.
		fadeWindow := d.MaxLife * cfg.Debris.FadePortion
		if d.Life < fadeWindow {
			d.Opacity = d.Life / fadeWindow
		} else {
			d.Opacity = 1
		}
	})

	for _, e := range expired {
		e.Remove()
	}
}
