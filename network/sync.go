package network

import (
	"log"

	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/events"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/shared/messages"
	"github.com/sleepysdevin/demolition-mp/systems"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyRemoteDestructions reconciles destructions that played out on other
// peers: silent teardown with no events, no effects and no chain damage.
// The remote peer already simulated the blast; replaying it here would
// double every barrel cascade.
func ApplyRemoteDestructions(e *ecs.ECS, client *Client) {
	for _, evt := range client.DrainDestroyedEvents() {
		matched := systems.DestroyByPositionAndType(e,
			gamemath.Vec3{X: evt.X, Y: evt.Y, Z: evt.Z},
			components.Category(evt.Category),
			cfg.Destructible.MatchTolerance,
			true, // skip the full-snapshot event, the record came from the network
			true, // silent
		)
		if !matched {
			// Expected when the local simulation destroyed it first.
			log.Printf("[client] stale destruction for %s at (%.1f, %.1f)",
				evt.Category, evt.X, evt.Z)
		}
	}
}

// ApplyRemoteEffects replays throw, landing and blast reports from other
// peers. Remote grenades fly as marked entities that never detonate
// locally; landings spawn the matching effect with no prop damage, and
// blast reports apply falloff damage to the local player only. Prop state
// never comes through here, it arrives as destruction records.
func ApplyRemoteEffects(e *ecs.ECS, client *Client) {
	for _, evt := range client.DrainThrownEvents() {
		factory.SpawnRemoteGrenade(e,
			gamemath.Vec3{X: evt.X, Y: evt.Y, Z: evt.Z},
			gamemath.Vec3{X: evt.DirX, Y: evt.DirY, Z: evt.DirZ},
			components.GrenadeKind(evt.Kind))
	}

	for _, evt := range client.DrainLandedEvents() {
		pos := gamemath.Vec3{X: evt.X, Y: evt.Y, Z: evt.Z}
		switch components.GrenadeKind(evt.Kind) {
		case components.GrenadeGas:
			factory.CreateGasCloud(e, pos)
		default:
			factory.CreateExplosion(e, pos,
				cfg.Explosion.Radius,
				cfg.Explosion.Damage,
				cfg.Explosion.Duration,
				true)
		}
	}

	for _, evt := range client.DrainExplosionEvents() {
		blastLocalPlayer(e.World,
			gamemath.Vec3{X: evt.X, Y: evt.Y, Z: evt.Z},
			evt.Radius, evt.Damage)
	}
}

// blastLocalPlayer applies a replicated blast's falloff damage to the local
// player. Each peer is authoritative over its own player's health.
func blastLocalPlayer(w donburi.World, center gamemath.Vec3, radius, damage float64) {
	entry, ok := components.Player.First(w)
	if !ok {
		return
	}
	dist := gamemath.Dist(center, components.Transform.Get(entry).Pos)
	if dist >= radius {
		return
	}
	health := components.Health.Get(entry)
	health.Current -= gamemath.FalloffDamage(damage, dist, radius)
	if health.Current < 0 {
		health.Current = 0
	}
}

// PublishLocalDestructions forwards local full-snapshot destructions to the
// server. Subscribing to the snapshot event (rather than the plain one)
// means network-applied teardowns never echo back.
func PublishLocalDestructions(w donburi.World, client *Client) {
	events.PropDestroyedFull.Subscribe(w, func(_ donburi.World, data events.PropSnapshotData) {
		sendEvent(client, messages.PropDestroyedEvent{
			Category: string(data.Category),
			X:        data.Pos.X,
			Y:        data.Pos.Y,
			Z:        data.Pos.Z,
		})
	})
}

// PublishLocalEffects forwards local throws, landings and blast areas so
// other peers can replay the visuals and take player damage. Barrel blasts
// go out as plain explosion records; the barrel itself is already covered
// by its destruction record.
func PublishLocalEffects(w donburi.World, client *Client) {
	events.GrenadeThrown.Subscribe(w, func(_ donburi.World, data events.GrenadeThrownData) {
		sendEvent(client, messages.GrenadeThrownEvent{
			OwnerNetworkID: uint(client.NetworkID()),
			Kind:           string(data.Kind),
			X:              data.Pos.X,
			Y:              data.Pos.Y,
			Z:              data.Pos.Z,
			DirX:           data.Dir.X,
			DirY:           data.Dir.Y,
			DirZ:           data.Dir.Z,
		})
	})

	events.GrenadeLanded.Subscribe(w, func(_ donburi.World, data events.GrenadeLandedData) {
		sendEvent(client, messages.GrenadeLandedEvent{
			Kind: string(data.Kind),
			X:    data.Pos.X,
			Y:    data.Pos.Y,
			Z:    data.Pos.Z,
		})
	})

	events.ExplosionTriggered.Subscribe(w, func(_ donburi.World, data events.ExplosionTriggeredData) {
		sendEvent(client, messages.ExplosionEvent{
			X:      data.Pos.X,
			Y:      data.Pos.Y,
			Z:      data.Pos.Z,
			Radius: data.Radius,
			Damage: data.Damage,
		})
	})

	events.BarrelExploded.Subscribe(w, func(_ donburi.World, data events.BarrelExplodedData) {
		sendEvent(client, messages.ExplosionEvent{
			X:      data.Pos.X,
			Y:      data.Pos.Y,
			Z:      data.Pos.Z,
			Radius: data.Radius,
			Damage: data.Damage,
		})
	})
}

func sendEvent(client *Client, msg any) {
	if err := client.SendMessage(msg); err != nil {
		log.Printf("[client] failed to send event: %v", err)
	}
}
