package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	devents "github.com/sleepysdevin/demolition-mp/events"
	"github.com/sleepysdevin/demolition-mp/network"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/shared/leveldata"
	"github.com/sleepysdevin/demolition-mp/systems"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ArenaConfig selects the level and optional multiplayer session.
type ArenaConfig struct {
	LevelFS   fs.FS  // nil = built-in arena
	LevelPath string
	Client    *network.Client // nil = offline
}

// ArenaScene owns the destruction sandbox: one ECS world, the engine
// systems in simulation order and the event subscribers that close the
// loop back into gameplay.
type ArenaScene struct {
	ecs    *ecs.ECS
	config ArenaConfig
	once   sync.Once
}

func NewArenaScene(config ArenaConfig) *ArenaScene {
	return &ArenaScene{config: config}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	if entry, ok := components.Time.First(as.ecs.World); ok {
		components.Time.Get(entry).DT = 1.0 / float64(cfg.TickRate)
	}

	if as.config.Client != nil {
		network.ApplyRemoteDestructions(as.ecs, as.config.Client)
		network.ApplyRemoteEffects(as.ecs, as.config.Client)
	}

	as.ecs.Update()

	events.ProcessAllEvents(as.ecs.World)
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateGrenades)
	e.AddSystem(systems.UpdateGasClouds)
	e.AddSystem(systems.UpdateExplosions)
	e.AddSystem(systems.UpdateDestructibles)
	e.AddSystem(systems.UpdateDebris)
	e.AddSystem(systems.UpdateFlashes)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdatePersistence)

	e.AddRenderer(cfg.Default, systems.DrawGround)
	e.AddRenderer(cfg.Default, systems.DrawProps)
	e.AddRenderer(cfg.Default, systems.DrawDebris)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawGrenades)
	e.AddRenderer(cfg.Default, systems.DrawGasClouds)
	e.AddRenderer(cfg.Default, systems.DrawExplosions)

	as.ecs = e

	factory.CreateTime(e)
	factory.CreateDemolition(e)

	arena := as.loadArena()
	factory.CreateSpace(e, int(arena.Width), int(arena.Height))
	buildArena(e, arena)

	if saved, err := systems.LoadStats(); err == nil && saved != nil {
		components.MustDemolition(e.World).Stats = *saved
	}

	as.subscribe()

	if as.config.Client != nil {
		network.PublishLocalDestructions(e.World, as.config.Client)
		network.PublishLocalEffects(e.World, as.config.Client)
	}
}

func (as *ArenaScene) loadArena() *leveldata.ArenaData {
	if as.config.LevelFS == nil || as.config.LevelPath == "" {
		return leveldata.DefaultArena()
	}
	arena, err := leveldata.LoadArena(as.config.LevelFS, as.config.LevelPath)
	if err != nil {
		log.Printf("[client] failed to load level %s, using built-in arena: %v",
			as.config.LevelPath, err)
		return leveldata.DefaultArena()
	}
	return arena
}

func buildArena(e *ecs.ECS, arena *leveldata.ArenaData) {
	for _, g := range arena.Grounds {
		factory.CreateGround(e, g.X, g.Z, g.W, g.D, g.Elevation)
	}
	for _, p := range arena.Props {
		opts := factory.PropOptions{Health: p.Health}
		if p.LootType != "" {
			opts.Loot = &components.LootDescriptor{Type: p.LootType, Amount: p.LootAmount}
		}
		factory.CreateProp(e, p.X, p.Z, components.Category(p.Category), opts)
	}
	factory.CreatePlayer(e, arena.Spawn.X, arena.Spawn.Z)
}

// subscribe wires the engine's outbound events to gameplay: blast and gas
// damage to the player, loot and audio hooks.
func (as *ArenaScene) subscribe() {
	w := as.ecs.World

	damagePlayer := func(amount float64) {
		entry, ok := components.Player.First(w)
		if !ok {
			return
		}
		health := components.Health.Get(entry)
		health.Current -= amount
		if health.Current < 0 {
			health.Current = 0
		}
	}

	blastPlayer := func(pos gamemath.Vec3, radius, damage float64) {
		entry, ok := components.Player.First(w)
		if !ok {
			return
		}
		dist := gamemath.Dist(pos, components.Transform.Get(entry).Pos)
		if dist >= radius {
			return
		}
		damagePlayer(gamemath.FalloffDamage(damage, dist, radius))
	}

	devents.BarrelExploded.Subscribe(w, func(_ donburi.World, data devents.BarrelExplodedData) {
		blastPlayer(data.Pos, data.Radius, data.Damage)
	})

	devents.ExplosionTriggered.Subscribe(w, func(_ donburi.World, data devents.ExplosionTriggeredData) {
		blastPlayer(data.Pos, data.Radius, data.Damage)
	})

	devents.PlayerInGas.Subscribe(w, func(_ donburi.World, data devents.PlayerInGasData) {
		damagePlayer(data.Damage)
	})

	devents.LootDropped.Subscribe(w, func(_ donburi.World, data devents.LootDroppedData) {
		log.Printf("[client] loot: %dx %s at (%.1f, %.1f)", data.Amount, data.Type, data.Pos.X, data.Pos.Z)
	})

	devents.DestructionSound.Subscribe(w, func(_ donburi.World, data devents.DestructionSoundData) {
		log.Printf("[client] sfx: %s", data.Sound)
	})
}
