package protocol

import (
	"github.com/leap-fish/necs/esync"
	"github.com/sleepysdevin/demolition-mp/shared/netcomponents"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetProp uint = 10
)

// RegisterComponents registers all network components with necs for
// serialization. Both server and client call this before any network
// operations. Prop state is discrete, so no interpolation is registered.
func RegisterComponents() error {
	return esync.RegisterComponent(
		SyncIDNetProp,
		netcomponents.NetPropData{},
		netcomponents.NetProp,
	)
}
