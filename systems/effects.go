package systems

import (
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TriggerHitFlash starts (or restarts) the brief tint on a damaged prop.
func TriggerHitFlash(entry *donburi.Entry) {
	tween := gween.New(1, 0, cfg.Destructible.FlashDuration, ease.OutQuad)
	if entry.HasComponent(components.Flash) {
		flash := components.Flash.Get(entry)
		flash.Tween = tween
		flash.Strength = 1
		return
	}
	entry.AddComponent(components.Flash)
	components.Flash.Set(entry, &components.FlashData{
		Tween:    tween,
		Strength: 1,
	})
}

// UpdateFlashes advances hit tints and strips finished ones.
func UpdateFlashes(ecs *ecs.ECS) {
	dt := float32(DeltaTime(ecs))

	var done []*donburi.Entry
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		value, finished := flash.Tween.Update(dt)
		flash.Strength = value
		if finished {
			done = append(done, e)
		}
	})

	for _, e := range done {
		if e.Valid() {
			e.RemoveComponent(components.Flash)
		}
	}
}
