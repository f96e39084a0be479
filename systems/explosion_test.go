package systems

import (
	"testing"

	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
)

func TestExplosionDamagesExactlyOnce(t *testing.T) {
	e := newTestECS()
	crate := factory.CreateProp(e, 12, 10, components.CategoryReinforced, factory.PropOptions{})

	factory.CreateExplosion(e, gamemath.Vec3{X: 10, Y: 0.5, Z: 10},
		cfg.Explosion.Radius, cfg.Explosion.Damage, cfg.Explosion.Duration, false)

	// Run well past the sprite duration.
	for i := 0; i < 60; i++ {
		UpdateExplosions(e)
	}

	// 2 units to center, 1.5 to the collider: one tick of 80*(1-1.5/4) = 50.
	want := cfg.Destructible.ReinforcedHealth - 50
	if got := components.Prop.Get(crate).Health; got != want {
		t.Errorf("health = %f, want %f (single damage tick)", got, want)
	}
}

func TestExplosionReleasesPoolSlot(t *testing.T) {
	e := newTestECS()
	demo := components.MustDemolition(e.World)

	factory.CreateExplosion(e, gamemath.Vec3{X: 10, Z: 10},
		cfg.Explosion.Radius, cfg.Explosion.Damage, cfg.Explosion.Duration, false)

	if demo.Pool.InUseCount() != 1 {
		t.Fatalf("pool in use = %d, want 1", demo.Pool.InUseCount())
	}

	for i := 0; i < 60; i++ {
		UpdateExplosions(e)
	}

	if demo.Pool.InUseCount() != 0 {
		t.Errorf("pool in use after playback = %d, want 0", demo.Pool.InUseCount())
	}
}

func TestExplosionDamageSurvivesPoolExhaustion(t *testing.T) {
	e := newTestECS()
	demo := components.MustDemolition(e.World)

	// Exhaust every visual slot.
	for i := 0; i < cfg.Explosion.PoolSize; i++ {
		if demo.Pool.Acquire() < 0 {
			t.Fatal("pool exhausted early")
		}
	}

	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})
	ex := factory.CreateExplosion(e, gamemath.Vec3{X: 10, Y: 0.5, Z: 10},
		cfg.Explosion.Radius, cfg.Explosion.Damage, cfg.Explosion.Duration, false)

	if components.Explosion.Get(ex).Slot != -1 {
		t.Error("explosion got a slot from an exhausted pool")
	}

	UpdateExplosions(e)

	if crate.Valid() {
		t.Error("point-blank explosion without a visual slot dealt no damage")
	}
}

func TestFlashOnlyExplosionDealsNoDamage(t *testing.T) {
	e := newTestECS()
	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})

	factory.CreateExplosion(e, gamemath.Vec3{X: 10, Y: 0.5, Z: 10},
		2, 35, cfg.Explosion.BarrelFlashDuration, true)

	for i := 0; i < 30; i++ {
		UpdateExplosions(e)
	}

	if got := components.Prop.Get(crate).Health; got != cfg.Destructible.CrateHealth {
		t.Errorf("flash-only explosion damaged prop: health = %f", got)
	}
}
