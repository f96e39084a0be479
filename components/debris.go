package components

import (
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DebrisData is a transient destruction fragment. Geometry and tint are
// shared pool variants selected by index, never owned per particle.
type DebrisData struct {
	Vel     gamemath.Vec3
	Spin    [3]float64 // independent angular rates, rad/s
	Rot     [3]float64
	Life    float64
	MaxLife float64
	FloorY  float64
	Opacity float64
	Variant int
	Tint    Category
}

var Debris = donburi.NewComponentType[DebrisData]()
