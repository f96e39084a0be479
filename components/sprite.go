package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a per-entity procedural image. Prop sprites are owned by
// the registry and handed to the disposal queue on destruction; debris and
// puffs render from shared images and carry no SpriteData.
type SpriteData struct {
	Image *ebiten.Image
	Scale float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
