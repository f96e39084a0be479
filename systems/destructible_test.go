package systems

import (
	"math"
	"testing"

	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/events"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
	"github.com/sleepysdevin/demolition-mp/tags"
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

func livePropCount(w donburi.World) int {
	n := 0
	tags.Prop.Each(w, func(entry *donburi.Entry) {
		if !components.Prop.Get(entry).Destroyed {
			n++
		}
	})
	return n
}

func TestDamagePropDestroysAtZero(t *testing.T) {
	e := newTestECS()
	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})

	DamageProp(e, crate, cfg.Destructible.CrateHealth)

	if crate.Valid() {
		t.Error("crate entry still valid after lethal damage")
	}
	if livePropCount(e.World) != 0 {
		t.Error("live prop remains after destruction")
	}

	demo := components.MustDemolition(e.World)
	if demo.Stats.PropsDestroyed[components.CategoryCrate] != 1 {
		t.Errorf("destroyed crates = %d, want 1",
			demo.Stats.PropsDestroyed[components.CategoryCrate])
	}
}

func TestDamagePropIgnoresDeadEntries(t *testing.T) {
	e := newTestECS()
	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})

	DamageProp(e, crate, 1000)
	// Hitting the removed entry again must be a no-op, not a panic.
	DamageProp(e, crate, 1000)
	DamageProp(e, nil, 10)

	demo := components.MustDemolition(e.World)
	if demo.Stats.PropsDestroyed[components.CategoryCrate] != 1 {
		t.Errorf("destroyed crates = %d, want exactly 1",
			demo.Stats.PropsDestroyed[components.CategoryCrate])
	}
}

func TestNonLethalHitFlashes(t *testing.T) {
	e := newTestECS()
	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})
	barrel := factory.CreateProp(e, 20, 10, components.CategoryBarrel, factory.PropOptions{})

	DamageProp(e, crate, 5)
	DamageProp(e, barrel, 5)

	if !crate.HasComponent(components.Flash) {
		t.Error("crate has no flash after non-lethal hit")
	}
	if barrel.HasComponent(components.Flash) {
		t.Error("barrel flashed; barrels must not flash")
	}
}

func TestRadiusDamageFalloff(t *testing.T) {
	e := newTestECS()
	near := factory.CreateProp(e, 11, 10, components.CategoryReinforced, factory.PropOptions{})
	far := factory.CreateProp(e, 13, 10, components.CategoryReinforced, factory.PropOptions{})
	outside := factory.CreateProp(e, 15, 10, components.CategoryReinforced, factory.PropOptions{})

	center := gamemath.Vec3{X: 10, Y: 0.5, Z: 10}
	DamagePropsInRadius(e, center, 4, 40)

	nearHealth := components.Prop.Get(near).Health
	farHealth := components.Prop.Get(far).Health
	outsideHealth := components.Prop.Get(outside).Health

	if outsideHealth != cfg.Destructible.ReinforcedHealth {
		t.Errorf("prop outside radius lost health: %f", outsideHealth)
	}
	if nearHealth >= farHealth {
		t.Errorf("near prop (%f) kept more health than far prop (%f)", nearHealth, farHealth)
	}

	// Unit props have a 0.5 bounding extent, so center distances 1 and 3
	// attenuate as 0.5 and 2.5.
	wantNear := cfg.Destructible.ReinforcedHealth - gamemath.FalloffDamage(40, 0.5, 4)
	if math.Abs(nearHealth-wantNear) > 1e-9 {
		t.Errorf("near health = %f, want %f", nearHealth, wantNear)
	}
	wantFar := cfg.Destructible.ReinforcedHealth - gamemath.FalloffDamage(40, 2.5, 4)
	if math.Abs(farHealth-wantFar) > 1e-9 {
		t.Errorf("far health = %f, want %f", farHealth, wantFar)
	}
}

func TestDestroyByPositionAndTypeTolerance(t *testing.T) {
	e := newTestECS()

	// Probe both sides of the 0.5 boundary.
	factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})
	hit := DestroyByPositionAndType(e,
		gamemath.Vec3{X: 10.49, Y: 0.5, Z: 10},
		components.CategoryCrate, 0.5, true, true)
	if !hit {
		t.Error("destruction 0.49 away did not match a 0.5 tolerance")
	}

	factory.CreateProp(e, 20, 10, components.CategoryCrate, factory.PropOptions{})
	hit = DestroyByPositionAndType(e,
		gamemath.Vec3{X: 20.51, Y: 0.5, Z: 10},
		components.CategoryCrate, 0.5, true, true)
	if hit {
		t.Error("destruction 0.51 away matched a 0.5 tolerance")
	}
}

func TestDestroyByPositionAndTypeCategoryMismatch(t *testing.T) {
	e := newTestECS()
	factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})

	hit := DestroyByPositionAndType(e,
		gamemath.Vec3{X: 10, Y: 0.5, Z: 10},
		components.CategoryBarrel, 0.5, true, true)
	if hit {
		t.Error("crate matched a barrel record")
	}
}

func TestSilentDestructionSuppressesEffects(t *testing.T) {
	e := newTestECS()
	barrel := factory.CreateProp(e, 10, 10, components.CategoryBarrel, factory.PropOptions{})

	destroyed := 0
	events.PropDestroyed.Subscribe(e.World, func(_ donburi.World, _ events.PropDestroyedData) {
		destroyed++
	})

	DestroyProp(e, barrel, DestroyOptions{Silent: true, SkipFullEvent: true})
	devents.ProcessAllEvents(e.World)

	if destroyed != 0 {
		t.Errorf("silent destruction published %d events", destroyed)
	}

	demo := components.MustDemolition(e.World)
	if len(demo.ChainQueue) != 0 {
		t.Error("silent barrel destruction queued a chain blast")
	}

	debris := 0
	tags.Debris.Each(e.World, func(_ *donburi.Entry) { debris++ })
	if debris != 0 {
		t.Errorf("silent destruction spawned %d debris", debris)
	}
}

func TestFullSnapshotPublishedBeforeTeardown(t *testing.T) {
	e := newTestECS()
	loot := &components.LootDescriptor{Type: "ammo", Amount: 3}
	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{Loot: loot})

	var got *events.PropSnapshotData
	events.PropDestroyedFull.Subscribe(e.World, func(_ donburi.World, data events.PropSnapshotData) {
		got = &data
	})

	DamageProp(e, crate, 1000)
	devents.ProcessAllEvents(e.World)

	if got == nil {
		t.Fatal("no full snapshot published")
	}
	if got.Category != components.CategoryCrate {
		t.Errorf("snapshot category = %s", got.Category)
	}
	if got.Loot == nil || got.Loot.Type != "ammo" {
		t.Error("snapshot lost the loot descriptor")
	}
}

func TestBarrelChainSpreadsOverFrames(t *testing.T) {
	e := newTestECS()

	// Second barrel 1.5 units away, inside the 2.0 blast radius. Third is
	// 3 units from the first and over 3 from the second, out of reach of
	// the whole cascade.
	first := factory.CreateProp(e, 10, 10, components.CategoryBarrel, factory.PropOptions{})
	second := factory.CreateProp(e, 11.5, 10, components.CategoryBarrel, factory.PropOptions{})
	third := factory.CreateProp(e, 10, 13, components.CategoryBarrel, factory.PropOptions{})

	DamageProp(e, first, 1000)

	demo := components.MustDemolition(e.World)
	if len(demo.ChainQueue) != 1 {
		t.Fatalf("chain queue = %d entries, want 1", len(demo.ChainQueue))
	}
	// The first barrel's blast must not resolve inside the same frame.
	if second.Valid() && components.Prop.Get(second).Destroyed {
		t.Fatal("second barrel destroyed in the same frame as the first")
	}

	// Within two frames the drained blast must take the second barrel:
	// 35*(1-1/2) = 17.5 against 12 health at 1 unit of collider distance.
	UpdateDestructibles(e)
	UpdateDestructibles(e)
	if second.Valid() {
		t.Error("second barrel survived the chained blast")
	}

	for i := 0; i < 5; i++ {
		UpdateDestructibles(e)
	}
	if !third.Valid() {
		t.Error("barrel outside every blast radius was destroyed")
	}
}

func TestBarrelChainLethalCascade(t *testing.T) {
	e := newTestECS()

	first := factory.CreateProp(e, 10, 10, components.CategoryBarrel, factory.PropOptions{})
	second := factory.CreateProp(e, 10.5, 10, components.CategoryBarrel, factory.PropOptions{})

	DamageProp(e, first, 1000)
	UpdateDestructibles(e) // drains first blast, kills second barrel

	if second.Valid() {
		t.Fatal("second barrel survived a near-direct blast")
	}

	demo := components.MustDemolition(e.World)
	if demo.Stats.ChainReactions != 2 {
		t.Errorf("chain reactions = %d, want 2", demo.Stats.ChainReactions)
	}
	// The second barrel's own blast is queued for the next frame.
	if len(demo.ChainQueue) != 1 {
		t.Errorf("chain queue = %d entries, want 1", len(demo.ChainQueue))
	}
}

func TestChainQueueDrainsOnePerFrame(t *testing.T) {
	e := newTestECS()
	demo := components.MustDemolition(e.World)

	demo.ChainQueue = append(demo.ChainQueue,
		components.ChainBlast{Center: gamemath.Vec3{X: 5, Z: 5}, Radius: 2, Damage: 35},
		components.ChainBlast{Center: gamemath.Vec3{X: 6, Z: 5}, Radius: 2, Damage: 35},
	)

	UpdateDestructibles(e)
	if len(demo.ChainQueue) != 1 {
		t.Errorf("chain queue after one frame = %d, want 1", len(demo.ChainQueue))
	}
	UpdateDestructibles(e)
	if len(demo.ChainQueue) != 0 {
		t.Errorf("chain queue after two frames = %d, want 0", len(demo.ChainQueue))
	}
}

func TestGetPropByCollider(t *testing.T) {
	e := newTestECS()
	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})
	obj := components.Object.Get(crate).Object

	if got := GetPropByCollider(e, obj); got != crate {
		t.Error("collider did not resolve to its prop")
	}
	if got := GetPropByCollider(e, nil); got != nil {
		t.Error("nil collider resolved to a prop")
	}

	DamageProp(e, crate, 1000)
	if got := GetPropByCollider(e, obj); got != nil {
		t.Error("collider of destroyed prop still resolves")
	}
}
