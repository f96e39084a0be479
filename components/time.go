package components

import "github.com/yohamta/donburi"

// TimeData carries the simulation step in seconds. The scene writes it once
// per frame; every system reads it instead of assuming a tick rate.
type TimeData struct {
	DT float64
}

var Time = donburi.NewComponentType[TimeData]()
