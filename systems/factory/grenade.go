package factory

import (
	"github.com/sleepysdevin/demolition-mp/archetypes"
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/events"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ThrowGrenade launches a grenade from origin along dir. dir is normalized
// here; its Y component gives the throw its arc. thrower may be nil for
// scripted throws.
func ThrowGrenade(ecs *ecs.ECS, origin, dir gamemath.Vec3, kind components.GrenadeKind, thrower *resolv.Object) *donburi.Entry {
	grenade := spawnGrenade(ecs, origin, dir, kind, thrower, false)

	demo := components.MustDemolition(ecs.World)
	demo.Stats.GrenadesThrown++
	demo.StatsDirty = true

	events.GrenadeThrown.Publish(ecs.World, events.GrenadeThrownData{
		Pos:  origin,
		Dir:  dir,
		Kind: kind,
	})

	return grenade
}

// SpawnRemoteGrenade replays another peer's throw. The grenade flies the
// same arc but despawns on landing without detonating, counting toward no
// local stats and publishing no throw event.
func SpawnRemoteGrenade(ecs *ecs.ECS, origin, dir gamemath.Vec3, kind components.GrenadeKind) *donburi.Entry {
	return spawnGrenade(ecs, origin, dir, kind, nil, true)
}

func spawnGrenade(ecs *ecs.ECS, origin, dir gamemath.Vec3, kind components.GrenadeKind, thrower *resolv.Object, remote bool) *donburi.Entry {
	grenade := archetypes.Grenade.Spawn(ecs)

	components.Grenade.Set(grenade, &components.GrenadeData{
		Kind:    kind,
		Vel:     dir.Normalize().Scale(cfg.Grenade.ThrowSpeed),
		Thrower: thrower,
		Remote:  remote,
	})
	components.Transform.Set(grenade, &components.TransformData{
		Pos:  origin,
		Size: gamemath.Vec3{X: 0.2, Y: 0.2, Z: 0.2},
	})

	obj := resolv.NewObject(origin.X-0.1, origin.Z-0.1, 0.2, 0.2)
	obj.Data = grenade
	components.Object.SetValue(grenade, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return grenade
}
