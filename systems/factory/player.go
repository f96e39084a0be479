package factory

import (
	"github.com/sleepysdevin/demolition-mp/archetypes"
	"github.com/sleepysdevin/demolition-mp/components"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.Set(player, &components.PlayerData{
		MoveSpeed: 4.0,
	})
	components.Health.Set(player, &components.HealthData{
		Current: 100,
		Max:     100,
	})
	components.Transform.Set(player, &components.TransformData{
		Pos:  gamemath.Vec3{X: x, Y: 0, Z: z},
		Size: gamemath.Vec3{X: 0.8, Y: 1.8, Z: 0.8},
	})

	obj := resolv.NewObject(x-0.4, z-0.4, 0.8, 0.8, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, 0.8, 0.8))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
