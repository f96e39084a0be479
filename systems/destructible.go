package systems

import (
	"log"

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

// DestroyOptions tune a single destruction call. The zero value is the
// normal local path with full effects and events.
type DestroyOptions struct {
	// Silent suppresses destruction effects and the PropDestroyed family
	// of events. Used when replicating a destruction that already played
	// out on another peer.
	Silent bool

	// SkipFullEvent suppresses only the full-snapshot event, breaking the
	// publish loop when the destruction itself originated from the network.
	SkipFullEvent bool
}

// UpdateDestructibles drains the frame-budgeted queues: at most one chain
// blast and at most one sprite disposal per update. Clustered barrel
// cascades therefore spread over several frames instead of spiking one.
func UpdateDestructibles(ecs *ecs.ECS) {
	demo := components.MustDemolition(ecs.World)

	if len(demo.ChainQueue) > 0 {
		blast := demo.ChainQueue[0]
		demo.ChainQueue = demo.ChainQueue[1:]
		DamagePropsInRadius(ecs, blast.Center, blast.Radius, blast.Damage)
	}

	if len(demo.DisposalQueue) > 0 {
		img := demo.DisposalQueue[0]
		demo.DisposalQueue = demo.DisposalQueue[1:]
		if img != nil {
			img.Deallocate()
		}
	}
}

// DamageProp applies flat damage to a prop. Hits on an already-destroyed or
// invalid entry are dropped. Non-lethal hits flash the prop unless it is a
// barrel.
func DamageProp(ecs *ecs.ECS, entry *donburi.Entry, damage float64) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Prop) {
		return
	}
	prop := components.Prop.Get(entry)
	if prop.Destroyed {
		return
	}

	prop.Health -= damage
	if prop.Health <= 0 {
		DestroyProp(ecs, entry, DestroyOptions{})
		return
	}
	if prop.Category != components.CategoryBarrel {
		TriggerHitFlash(entry)
	}
}

// DamagePropsInRadius applies linearly attenuated damage to every live prop
// within radius of center. Distance is measured to the prop's collider
// extent, not its center, so a blast grazing a wide prop still bites. The
// candidate list is snapshotted first because destruction can spawn and
// remove entities mid-iteration.
func DamagePropsInRadius(ecs *ecs.ECS, center gamemath.Vec3, radius, damage float64) {
	var targets []*donburi.Entry
	tags.Prop.Each(ecs.World, func(e *donburi.Entry) {
		targets = append(targets, e)
	})

	for _, e := range targets {
		if !e.Valid() {
			continue
		}
		prop := components.Prop.Get(e)
		if prop.Destroyed {
			continue
		}
		t := components.Transform.Get(e)
		dist := gamemath.Dist(center, t.Pos) - propExtent(t.Size)
		if dist < 0 {
			dist = 0
		}
		if dist >= radius {
			continue
		}
		DamageProp(ecs, e, gamemath.FalloffDamage(damage, dist, radius))
	}
}

// propExtent is a prop's horizontal bounding radius.
func propExtent(size gamemath.Vec3) float64 {
	extent := size.X
	if size.Z > extent {
		extent = size.Z
	}
	return extent / 2
}

// DestroyProp tears a prop down exactly once: events fire before removal so
// subscribers see a consistent snapshot, effects go through the budgeted
// queues, and barrels enqueue their chain blast instead of applying it
// inline.
func DestroyProp(ecs *ecs.ECS, entry *donburi.Entry, opts DestroyOptions) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.Prop) {
		return
	}
	prop := components.Prop.Get(entry)
	if prop.Destroyed {
		return
	}
	prop.Destroyed = true

	transform := components.Transform.Get(entry)
	pos := transform.Pos
	size := transform.Size
	demo := components.MustDemolition(ecs.World)

	if !opts.SkipFullEvent {
		events.PropDestroyedFull.Publish(ecs.World, events.PropSnapshotData{
			Category: prop.Category,
			Pos:      pos,
			Health:   prop.Health,
			Loot:     prop.Loot,
		})
	}

	if !opts.Silent {
		events.PropDestroyed.Publish(ecs.World, events.PropDestroyedData{
			Category: prop.Category,
			Pos:      pos,
		})
	}

	// Sprite teardown goes through the disposal queue. Barrel sprites are
	// dropped instead so the flash has nothing competing for its slot in
	// the same frame; the leak is counted, not hidden.
	if entry.HasComponent(components.Sprite) {
		sprite := components.Sprite.Get(entry)
		if sprite.Image != nil {
			if prop.Category == components.CategoryBarrel {
				demo.Stats.BarrelVisualsLeaked++
			} else {
				demo.DisposalQueue = append(demo.DisposalQueue, sprite.Image)
			}
			sprite.Image = nil
		}
	}

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}

	demo.Stats.PropsDestroyed[prop.Category]++
	demo.StatsDirty = true

	if prop.Category == components.CategoryBarrel && !opts.Silent {
		factory.CreateExplosion(ecs, pos,
			cfg.Destructible.BarrelBlastRadius,
			cfg.Destructible.BarrelBlastDamage,
			cfg.Explosion.BarrelFlashDuration,
			true)
		events.BarrelExploded.Publish(ecs.World, events.BarrelExplodedData{
			Pos:    pos,
			Radius: cfg.Destructible.BarrelBlastRadius,
			Damage: cfg.Destructible.BarrelBlastDamage,
		})
		demo.ChainQueue = append(demo.ChainQueue, components.ChainBlast{
			Center: pos,
			Radius: cfg.Destructible.BarrelBlastRadius,
			Damage: cfg.Destructible.BarrelBlastDamage,
		})
		demo.Stats.ChainReactions++
	}

	if prop.Category != components.CategoryBarrel && !opts.Silent {
		factory.SpawnDebris(ecs, pos, size, prop.Category)
	}

	if !opts.Silent {
		if prop.Loot != nil {
			events.LootDropped.Publish(ecs.World, events.LootDroppedData{
				Type:   prop.Loot.Type,
				Amount: prop.Loot.Amount,
				Pos:    pos,
			})
		}
		events.DestructionSound.Publish(ecs.World, events.DestructionSoundData{
			Sound: destructionSound(prop.Category),
			Pos:   pos,
		})
	}

	entry.Remove()
}

func destructionSound(category components.Category) string {
	if category == components.CategoryBarrel {
		return "explosion"
	}
	return "wood_break"
}

// DestroyByPositionAndType destroys the nearest live prop of the given
// category within tolerance of pos. This is the replication entry point:
// remote destructions arrive as position+category records, never entity
// references. Returns false when no prop matched; misses are expected when
// the local blast already consumed the prop.
func DestroyByPositionAndType(ecs *ecs.ECS, pos gamemath.Vec3, category components.Category, tolerance float64, skipCallback, silent bool) bool {
	var best *donburi.Entry
	bestDist := tolerance

	tags.Prop.Each(ecs.World, func(e *donburi.Entry) {
		prop := components.Prop.Get(e)
		if prop.Destroyed || prop.Category != category {
			return
		}
		d := gamemath.Dist(pos, components.Transform.Get(e).Pos)
		if d <= bestDist {
			best = e
			bestDist = d
		}
	})

	if best == nil {
		log.Printf("[destruction] no %s within %.2f of (%.1f, %.1f, %.1f)",
			category, tolerance, pos.X, pos.Y, pos.Z)
		return false
	}

	DestroyProp(ecs, best, DestroyOptions{
		Silent:        silent,
		SkipFullEvent: skipCallback,
	})
	return true
}

// GetPropByCollider resolves a collision object back to its prop entry.
// The Data backlink is the fast path; the scan covers objects created
// before the link existed.
func GetPropByCollider(ecs *ecs.ECS, obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	if entry, ok := obj.Data.(*donburi.Entry); ok {
		if entry.Valid() && entry.HasComponent(components.Prop) {
			return entry
		}
		return nil
	}

	var found *donburi.Entry
	tags.Prop.Each(ecs.World, func(e *donburi.Entry) {
		if found != nil {
			return
		}
		if components.Object.Get(e).Object == obj {
			found = e
		}
	})
	return found
}
