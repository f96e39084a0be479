package messages

// JoinRequest is the first message a client sends after connecting.
type JoinRequest struct {
	Version    string
	PlayerName string
	Level      string
}

// JoinAccepted confirms a join and carries the session parameters.
type JoinAccepted struct {
	NetworkID      uint
	ReconnectToken string
	ServerName     string
	TickRate       int
	Level          string
}

// JoinRejected explains a refused join.
type JoinRejected struct {
	Reason string
}

// PropDestroyedEvent replicates one prop destruction. Props are addressed
// by category and position because peers never share entity identifiers.
type PropDestroyedEvent struct {
	Category string
	X, Y, Z  float64
}

// GrenadeThrownEvent is broadcast when a player lobs a grenade, so remote
// clients can show the arc.
type GrenadeThrownEvent struct {
	OwnerNetworkID   uint
	Kind             string // "frag" or "gas"
	X, Y, Z          float64
	DirX, DirY, DirZ float64
}

// GrenadeLandedEvent is broadcast at detonation so remote effects line up
// even when arcs desync.
type GrenadeLandedEvent struct {
	Kind    string
	X, Y, Z float64
}

// ExplosionEvent replicates a blast's damage area so remote players take
// falloff damage. Prop damage never rides it; prop state is replicated as
// destruction records.
type ExplosionEvent struct {
	X, Y, Z float64
	Radius  float64
	Damage  float64
}
