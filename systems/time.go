package systems

import (
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/yohamta/donburi/ecs"
)

// DeltaTime reads the simulation step from the clock singleton. Falls back
// to the nominal tick when the scene has not created one (bare test worlds).
func DeltaTime(ecs *ecs.ECS) float64 {
	if entry, ok := components.Time.First(ecs.World); ok {
		return components.Time.Get(entry).DT
	}
	return 1.0 / float64(cfg.TickRate)
}
