package netcomponents

import "github.com/yohamta/donburi"

// NetPropData is the replicated record for one destructible prop. The
// server owns the authoritative set; clients reconcile destroyed flags
// against their local registries by category and position.
type NetPropData struct {
	ID        uint
	Category  string
	X, Z      float64
	Destroyed bool
}

var NetProp = donburi.NewComponentType[NetPropData]()
