package factory

import (
	"github.com/sleepysdevin/demolition-mp/archetypes"
	"github.com/sleepysdevin/demolition-mp/components"
	"github.com/sleepysdevin/demolition-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a floor region on the plane. Downward ground queries
// over the region return its elevation; grenades landing outside any region
// fall back to height zero.
func CreateGround(ecs *ecs.ECS, x, z, w, d, elevation float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(x, z, w, d, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, w, d))
	obj.Data = ground // Link for O(1) lookup

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	components.Ground.Set(ground, &components.GroundData{Elevation: elevation})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return ground
}
