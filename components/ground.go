package components

import "github.com/yohamta/donburi"

// GroundData is a walkable floor region on the plane. Elevation is the
// height returned by downward ground queries over this region.
type GroundData struct {
	Elevation float64
}

var Ground = donburi.NewComponentType[GroundData]()
