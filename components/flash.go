package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData is the brief emissive tint applied to a prop when it takes a
// non-lethal hit. Barrels never get one; their hits feed chain reactions
// and must stay cheap.
type FlashData struct {
	Tween    *gween.Tween
	Strength float32
}

var Flash = donburi.NewComponentType[FlashData]()
