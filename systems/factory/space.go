package factory

import (
	"github.com/sleepysdevin/demolition-mp/archetypes"
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the singleton collision space covering the ground
// plane. Dimensions are in world units; one cell per unit.
func CreateSpace(ecs *ecs.ECS, width, height int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, 1, 1)
	components.Space.Set(space, spaceData)
	return space
}

// CreateTime creates the singleton step clock at the nominal tick rate.
func CreateTime(ecs *ecs.ECS) *donburi.Entry {
	t := archetypes.Time.Spawn(ecs)
	components.Time.Set(t, &components.TimeData{DT: 1.0 / float64(cfg.TickRate)})
	return t
}

// CreateDemolition creates the destruction singleton with its queues and
// pools pre-allocated.
func CreateDemolition(ecs *ecs.ECS) *donburi.Entry {
	d := archetypes.Demolition.Spawn(ecs)
	components.Demolition.Set(d, components.NewDemolitionData(
		cfg.Explosion.PoolSize,
		cfg.Debris.VariantCount,
	))
	return d
}
