package core

import (
	"log"
	"sync"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/sleepysdevin/demolition-mp/shared/messages"
	"github.com/sleepysdevin/demolition-mp/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// Server owns the authoritative destructible set and relays destruction
// events between clients. It never simulates blasts itself; each client's
// local engine does, and the server reconciles the survivor records.
type Server struct {
	world     donburi.World
	loop      *GameLoop
	transport *transports.WsServerTransport

	name     string
	version  string
	level    string
	tickRate int

	mu        sync.RWMutex
	clients   map[*router.NetworkClient]uint
	nextID    uint
	propsByID map[uint]donburi.Entity
}

// NewServer creates a relay server for the given level.
func NewServer(tickRate int, name, version, level string) *Server {
	world := donburi.NewWorld()

	s := &Server{
		world:     world,
		name:      name,
		version:   version,
		level:     level,
		tickRate:  tickRate,
		clients:   make(map[*router.NetworkClient]uint),
		nextID:    1,
		propsByID: make(map[uint]donburi.Entity),
	}
	s.loop = NewGameLoop(s, tickRate)

	srvsync.UseEsync(world)
	s.setupRouterCallbacks()

	return s
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("Client connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		s.onDisconnect(client, err)
	})

	router.On(func(client *router.NetworkClient, msg messages.JoinRequest) {
		s.onJoinRequest(client, msg)
	})

	router.On(func(client *router.NetworkClient, evt messages.PropDestroyedEvent) {
		s.onPropDestroyed(client, evt)
	})

	router.On(func(client *router.NetworkClient, evt messages.GrenadeThrownEvent) {
		s.broadcastEvent(evt, client)
	})

	router.On(func(client *router.NetworkClient, evt messages.GrenadeLandedEvent) {
		s.broadcastEvent(evt, client)
	})

	router.On(func(client *router.NetworkClient, evt messages.ExplosionEvent) {
		s.broadcastEvent(evt, client)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) onJoinRequest(client *router.NetworkClient, msg messages.JoinRequest) {
	if s.version != "" && msg.Version != s.version {
		s.sendTo(client, messages.JoinRejected{
			Reason: "version mismatch, server wants " + s.version,
		})
		return
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.clients[client] = id
	s.mu.Unlock()

	s.sendTo(client, messages.JoinAccepted{
		NetworkID:  id,
		ServerName: s.name,
		TickRate:   s.tickRate,
		Level:      s.level,
	})

	log.Printf("Client %s joined as %d (player %q)", client.Id(), id, msg.PlayerName)
}

func (s *Server) onDisconnect(client *router.NetworkClient, err error) {
	if err != nil {
		log.Printf("Client %s disconnected with error: %v", client.Id(), err)
	} else {
		log.Printf("Client %s disconnected", client.Id())
	}

	s.mu.Lock()
	delete(s.clients, client)
	s.mu.Unlock()
}

// onPropDestroyed applies a client-reported destruction to the
// authoritative record and fans it out to every other client. Duplicate
// reports for an already-destroyed prop are dropped so two near-
// simultaneous blasts produce one broadcast.
func (s *Server) onPropDestroyed(from *router.NetworkClient, evt messages.PropDestroyedEvent) {
	if prop := s.matchProp(evt); prop != nil {
		if prop.Destroyed {
			return
		}
		prop.Destroyed = true
	}

	s.broadcastEvent(evt, from)
}

// matchProp finds the authoritative record nearest the reported position,
// same category, within the shared match tolerance.
func (s *Server) matchProp(evt messages.PropDestroyedEvent) *netcomponents.NetPropData {
	const tolerance = 0.5

	var best *netcomponents.NetPropData
	bestDist := tolerance * tolerance

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, entity := range s.propsByID {
		if !s.world.Valid(entity) {
			continue
		}
		prop := netcomponents.NetProp.Get(s.world.Entry(entity))
		if prop.Category != evt.Category {
			continue
		}
		dx := prop.X - evt.X
		dz := prop.Z - evt.Z
		if d := dx*dx + dz*dz; d <= bestDist {
			best = prop
			bestDist = d
		}
	}
	return best
}

// broadcastEvent sends an event to every connected client except the
// originator.
func (s *Server) broadcastEvent(evt any, except *router.NetworkClient) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for client := range s.clients {
		if client == except {
			continue
		}
		if err := client.SendMessage(evt); err != nil {
			log.Printf("Failed to send to %s: %v", client.Id(), err)
		}
	}
}

func (s *Server) sendTo(client *router.NetworkClient, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("Failed to send to %s: %v", client.Id(), err)
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}
