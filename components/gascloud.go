package components

import (
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi"
)

// SmokePuff is one sub-particle of a gas cloud. Drift/rise/fade parameters
// are seeded at spawn time so the cloud dissipates unevenly.
type SmokePuff struct {
	Pos       gamemath.Vec3
	Drift     gamemath.Vec3
	Rise      float64
	FadeDelay float64 // seconds into the cloud's life before this puff fades
	BaseScale float64
	Rot       float64
	RotSpeed  float64
}

// GasCloudData is a persistent area hazard. The cloud as a whole is removed
// only when Remaining reaches zero; puffs fade individually before that.
type GasCloudData struct {
	Radius    float64
	Remaining float64
	Duration  float64
	Puffs     []SmokePuff
}

var GasCloud = donburi.NewComponentType[GasCloudData]()
