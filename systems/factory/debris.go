package factory

import (
	"math"
	"math/rand"

	"github.com/sleepysdevin/demolition-mp/archetypes"
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// SpawnDebris scatters fragment particles from a destroyed prop. Particles
// reference shared geometry variants by index and carry only their own
// motion state.
func SpawnDebris(ecs *ecs.ECS, pos, size gamemath.Vec3, category components.Category) {
	demo := components.MustDemolition(ecs.World)
	floorY := pos.Y - size.Y/2
	if floorY < 0 {
		floorY = 0
	}

	for i := 0; i < cfg.Debris.CountPerProp; i++ {
		d := archetypes.Debris.Spawn(ecs)

		angle := rand.Float64() * 2 * math.Pi
		speed := cfg.Debris.LaunchSpeed * (0.4 + rand.Float64()*0.6)
		life := cfg.Debris.MinLife + rand.Float64()*(cfg.Debris.MaxLife-cfg.Debris.MinLife)

		components.Debris.Set(d, &components.DebrisData{
			Vel: gamemath.Vec3{
				X: math.Cos(angle) * speed,
				Y: cfg.Debris.LaunchLift * (0.5 + rand.Float64()*0.5),
				Z: math.Sin(angle) * speed,
			},
			Spin: [3]float64{
				(rand.Float64() - 0.5) * 2 * cfg.Debris.MaxSpin,
				(rand.Float64() - 0.5) * 2 * cfg.Debris.MaxSpin,
				(rand.Float64() - 0.5) * 2 * cfg.Debris.MaxSpin,
			},
			Life:    life,
			MaxLife: life,
			FloorY:  floorY,
			Opacity: 1,
			Variant: rand.Intn(len(demo.DebrisSizes)),
			Tint:    category,
		})
		components.Transform.Set(d, &components.TransformData{
			Pos: gamemath.Vec3{
				X: pos.X + (rand.Float64()-0.5)*size.X*0.5,
				Y: pos.Y,
				Z: pos.Z + (rand.Float64()-0.5)*size.Z*0.5,
			},
		})
	}
}
