package components

import (
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GrenadeKind selects what a grenade spawns on ground contact.
type GrenadeKind string

const (
	GrenadeGas  GrenadeKind = "gas"
	GrenadeFrag GrenadeKind = "frag"
)

type GrenadeData struct {
	Kind GrenadeKind
	Vel  gamemath.Vec3

	// Thrower is excluded from ground-contact queries so a grenade never
	// detonates against the collider of the player who threw it.
	Thrower *resolv.Object

	// Remote marks a grenade replicated from another peer. It flies the
	// same arc but despawns on landing; the detonation arrives over the
	// wire as its own event.
	Remote bool
}

var Grenade = donburi.NewComponentType[GrenadeData]()
