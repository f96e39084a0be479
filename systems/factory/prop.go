package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sleepysdevin/demolition-mp/archetypes"
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PropOptions carry the optional registration parameters. Zero values fall
// back to the category defaults.
type PropOptions struct {
	Health float64
	Size   gamemath.Vec3
	Loot   *components.LootDescriptor
}

// CreateProp registers a destructible prop at (x, z) on the ground plane.
// The returned entry is the stable reference used by damage lookups.
func CreateProp(ecs *ecs.ECS, x, z float64, category components.Category, opts PropOptions) *donburi.Entry {
	prop := archetypes.Prop.Spawn(ecs)

	health := opts.Health
	if health <= 0 {
		health = defaultHealth(category)
	}
	size := opts.Size
	if size == (gamemath.Vec3{}) {
		size = gamemath.Vec3{X: 1, Y: 1, Z: 1}
	}

	components.Prop.Set(prop, &components.PropData{
		Category:  category,
		Health:    health,
		MaxHealth: health,
		Loot:      opts.Loot,
	})
	components.Transform.Set(prop, &components.TransformData{
		Pos:  gamemath.Vec3{X: x, Y: size.Y / 2, Z: z},
		Size: size,
	})

	obj := resolv.NewObject(x-size.X/2, z-size.Z/2, size.X, size.Z, tags.ResolvProp)
	obj.SetShape(resolv.NewRectangle(0, 0, size.X, size.Z))
	obj.Data = prop // Link for O(1) hit lookup
	components.Object.SetValue(prop, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Sprite.Set(prop, &components.SpriteData{
		Image: newPropImage(category),
		Scale: size.X,
	})

	return prop
}

func defaultHealth(category components.Category) float64 {
	switch category {
	case components.CategoryReinforced:
		return cfg.Destructible.ReinforcedHealth
	case components.CategoryBarrel:
		return cfg.Destructible.BarrelHealth
	default:
		return cfg.Destructible.CrateHealth
	}
}

// newPropImage builds the per-prop tinted sprite. Each prop owns its image;
// destruction hands it to the frame-budgeted disposal queue.
func newPropImage(category components.Category) *ebiten.Image {
	if !cfg.C.Visuals {
		return nil
	}
	img := ebiten.NewImage(16, 16)
	img.Fill(cfg.CategoryTints[string(category)])
	return img
}
