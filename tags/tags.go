package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Prop      = donburi.NewTag().SetName("Prop")
	Ground    = donburi.NewTag().SetName("Ground")
	Grenade   = donburi.NewTag().SetName("Grenade")
	GasCloud  = donburi.NewTag().SetName("GasCloud")
	Explosion = donburi.NewTag().SetName("Explosion")
	Debris    = donburi.NewTag().SetName("Debris")
)

// Resolv tags for collision objects on the ground plane
const (
	ResolvPlayer = "Player"
	ResolvProp   = "Prop"
	ResolvGround = "ground"
)
