package systems

import (
	"github.com/sleepysdevin/demolition-mp/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes every collision object's cell placement after the
// movement systems have run.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		if obj != nil && obj.Space != nil {
			obj.Update()
		}
	})
}
