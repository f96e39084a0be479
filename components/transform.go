package components

import (
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the world-space position and approximate size of an
// entity. X/Z are mirrored into the entity's resolv object when it has one;
// Y (height) is simulated analytically.
type TransformData struct {
	Pos  gamemath.Vec3
	Size gamemath.Vec3
}

var Transform = donburi.NewComponentType[TransformData]()
