package systems

import (
	"testing"

	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
)

func TestHitFlashLifecycle(t *testing.T) {
	e := newTestECS()
	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})

	TriggerHitFlash(crate)
	if !crate.HasComponent(components.Flash) {
		t.Fatal("no flash after trigger")
	}
	if got := components.Flash.Get(crate).Strength; got != 1 {
		t.Errorf("initial strength = %f, want 1", got)
	}

	dt := DeltaTime(e)
	frames := int(float64(cfg.Destructible.FlashDuration)/dt) + 3
	for i := 0; i < frames; i++ {
		UpdateFlashes(e)
	}

	if crate.HasComponent(components.Flash) {
		t.Error("flash survived past its duration")
	}
}

func TestHitFlashRestarts(t *testing.T) {
	e := newTestECS()
	crate := factory.CreateProp(e, 10, 10, components.CategoryCrate, factory.PropOptions{})

	TriggerHitFlash(crate)
	for i := 0; i < 5; i++ {
		UpdateFlashes(e)
	}
	mid := components.Flash.Get(crate).Strength

	// A second hit snaps the tint back to full.
	TriggerHitFlash(crate)
	if got := components.Flash.Get(crate).Strength; got <= mid {
		t.Errorf("strength after restart = %f, want above %f", got, mid)
	}
}
