package network

import (
	"os"
	"testing"

	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/shared/messages"
	"github.com/sleepysdevin/demolition-mp/systems"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestMain(m *testing.M) {
	// Headless: no render backend is available under test.
	cfg.C.Visuals = false
	os.Exit(m.Run())
}

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateTime(e)
	factory.CreateDemolition(e)
	factory.CreateSpace(e, 40, 30)
	factory.CreateGround(e, 0, 0, 40, 30, 0)
	return e
}

func TestApplyRemoteThrowSpawnsRemoteGrenade(t *testing.T) {
	e := newTestECS()
	client := NewClient()

	client.thrownCh <- messages.GrenadeThrownEvent{
		Kind: string(components.GrenadeFrag),
		X:    10, Y: 1, Z: 10,
		DirX: 1, DirY: 0.5, DirZ: 0,
	}
	ApplyRemoteEffects(e, client)

	grenades := 0
	components.Grenade.Each(e.World, func(entry *donburi.Entry) {
		grenades++
		if !components.Grenade.Get(entry).Remote {
			t.Error("replicated grenade not marked remote")
		}
	})
	if grenades != 1 {
		t.Fatalf("grenades = %d, want 1", grenades)
	}

	// A second apply with nothing queued must not spawn more.
	ApplyRemoteEffects(e, client)
	grenades = 0
	components.Grenade.Each(e.World, func(_ *donburi.Entry) { grenades++ })
	if grenades != 1 {
		t.Errorf("grenades after empty drain = %d, want 1", grenades)
	}
}

func TestApplyRemoteLandingSpawnsEffects(t *testing.T) {
	e := newTestECS()
	client := NewClient()
	crate := factory.CreateProp(e, 11, 10, components.CategoryCrate, factory.PropOptions{})

	client.landedCh <- messages.GrenadeLandedEvent{
		Kind: string(components.GrenadeGas), X: 20, Z: 20,
	}
	client.landedCh <- messages.GrenadeLandedEvent{
		Kind: string(components.GrenadeFrag), X: 10, Z: 10,
	}
	ApplyRemoteEffects(e, client)

	clouds := 0
	components.GasCloud.Each(e.World, func(_ *donburi.Entry) { clouds++ })
	if clouds != 1 {
		t.Errorf("gas clouds = %d, want 1", clouds)
	}

	flashOnly := 0
	components.Explosion.Each(e.World, func(entry *donburi.Entry) {
		if components.Explosion.Get(entry).FlashOnly {
			flashOnly++
		}
	})
	if flashOnly != 1 {
		t.Errorf("flash-only explosions = %d, want 1", flashOnly)
	}

	// The replicated landing is visual; the prop damage travels as a
	// destruction record instead.
	for i := 0; i < 60; i++ {
		systems.UpdateExplosions(e)
	}
	if got := components.Prop.Get(crate).Health; got != cfg.Destructible.CrateHealth {
		t.Errorf("replicated landing damaged prop: health = %f", got)
	}
}

func TestApplyRemoteBlastDamagesLocalPlayerOnly(t *testing.T) {
	e := newTestECS()
	client := NewClient()
	player := factory.CreatePlayer(e, 10, 10)
	crate := factory.CreateProp(e, 10.5, 10, components.CategoryCrate, factory.PropOptions{})
	pos := components.Transform.Get(player).Pos

	client.explosionCh <- messages.ExplosionEvent{
		X: pos.X, Y: pos.Y, Z: pos.Z, Radius: 4, Damage: 40,
	}
	ApplyRemoteEffects(e, client)

	health := components.Health.Get(player)
	if health.Current != 60 {
		t.Errorf("player health = %f, want 60 after a point-blank 40 blast", health.Current)
	}
	if got := components.Prop.Get(crate).Health; got != cfg.Destructible.CrateHealth {
		t.Errorf("remote blast damaged prop: health = %f", got)
	}

	client.explosionCh <- messages.ExplosionEvent{
		X: 30, Z: 10, Radius: 2, Damage: 40,
	}
	ApplyRemoteEffects(e, client)
	if health.Current != 60 {
		t.Error("out-of-range blast damaged player")
	}
}
