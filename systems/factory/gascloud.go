package factory

import (
	"math"
	"math/rand"

	"github.com/sleepysdevin/demolition-mp/archetypes"
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGasCloud spawns a lingering hazard centered at pos. Puffs are
// scattered inside the damage radius with randomized drift and fade so the
// cloud dissipates unevenly.
func CreateGasCloud(ecs *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	cloud := archetypes.GasCloud.Spawn(ecs)

	puffs := make([]components.SmokePuff, cfg.Gas.PuffCount)
	for i := range puffs {
		angle := rand.Float64() * 2 * math.Pi
		r := rand.Float64() * cfg.Gas.Radius * 0.7
		puffs[i] = components.SmokePuff{
			Pos: gamemath.Vec3{
				X: pos.X + math.Cos(angle)*r,
				Y: pos.Y + rand.Float64()*0.4,
				Z: pos.Z + math.Sin(angle)*r,
			},
			Drift: gamemath.Vec3{
				X: (rand.Float64() - 0.5) * 2 * cfg.Gas.PuffDriftSpeed,
				Z: (rand.Float64() - 0.5) * 2 * cfg.Gas.PuffDriftSpeed,
			},
			Rise:      cfg.Gas.PuffRiseSpeed * (0.5 + rand.Float64()),
			FadeDelay: cfg.Gas.Duration * (0.4 + rand.Float64()*0.5),
			BaseScale: 0.6 + rand.Float64()*0.6,
			Rot:       rand.Float64() * 2 * math.Pi,
			RotSpeed:  (rand.Float64() - 0.5) * 1.2,
		}
	}

	components.GasCloud.Set(cloud, &components.GasCloudData{
		Radius:    cfg.Gas.Radius,
		Remaining: cfg.Gas.Duration,
		Duration:  cfg.Gas.Duration,
		Puffs:     puffs,
	})
	components.Transform.Set(cloud, &components.TransformData{
		Pos: pos,
	})

	return cloud
}
