package components

import "github.com/yohamta/donburi"

// HealthData is for damageable actors (the player); destructible props track
// health on PropData instead so registry teardown stays self-contained.
type HealthData struct {
	Current float64
	Max     float64
}

var Health = donburi.NewComponentType[HealthData]()
