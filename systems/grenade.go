package systems

import (
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/events"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
	"github.com/sleepysdevin/demolition-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrenades integrates grenade arcs and resolves ground contact.
// Landed grenades are collected first and resolved after iteration because
// resolution spawns and removes entities.
func UpdateGrenades(ecs *ecs.ECS) {
	dt := DeltaTime(ecs)

	var landed []*donburi.Entry
	components.Grenade.Each(ecs.World, func(e *donburi.Entry) {
		g := components.Grenade.Get(e)
		t := components.Transform.Get(e)
		obj := components.Object.Get(e).Object

		t.Pos, g.Vel = gamemath.IntegrateBallistic(t.Pos, g.Vel, cfg.Grenade.Gravity, dt)

		obj.X = t.Pos.X - obj.W/2
		obj.Y = t.Pos.Z - obj.H/2
		obj.Update()

		groundY := groundHeightAt(obj, g)
		if t.Pos.Y <= groundY+cfg.Grenade.GroundEpsilon && g.Vel.Y <= 0 {
			t.Pos.Y = groundY
			landed = append(landed, e)
		}
	})

	for _, e := range landed {
		if !e.Valid() {
			continue
		}
		g := components.Grenade.Get(e)
		pos := components.Transform.Get(e).Pos

		// Remote grenades only fly here; their detonation is replicated
		// separately, so landing just despawns them.
		if g.Remote {
			removeGrenade(e)
			continue
		}

		events.GrenadeLanded.Publish(ecs.World, events.GrenadeLandedData{
			Pos:  pos,
			Kind: g.Kind,
		})

		switch g.Kind {
		case components.GrenadeGas:
			factory.CreateGasCloud(ecs, pos)
		default:
			factory.CreateExplosion(ecs, pos,
				cfg.Explosion.Radius,
				cfg.Explosion.Damage,
				cfg.Explosion.Duration,
				false)
		}

		removeGrenade(e)
	}
}

func removeGrenade(e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	if obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
	e.Remove()
}

// groundHeightAt finds the floor height under a grenade: the highest
// elevation among overlapping ground regions, excluding the thrower's
// collider, defaulting to zero off any region.
func groundHeightAt(obj *resolv.Object, g *components.GrenadeData) float64 {
	height := 0.0
	if check := obj.Check(0, 0, tags.ResolvGround); check != nil {
		for _, other := range check.Objects {
			if other == g.Thrower {
				continue
			}
			entry, ok := other.Data.(*donburi.Entry)
			if !ok || !entry.Valid() || !entry.HasComponent(components.Ground) {
				continue
			}
			if elev := components.Ground.Get(entry).Elevation; elev > height {
				height = elev
			}
		}
	}
	return height
}
