package main

import (
	"embed"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/network"
	"github.com/sleepysdevin/demolition-mp/scenes"
	"github.com/sleepysdevin/demolition-mp/shared/protocol"
	"github.com/sleepysdevin/demolition-mp/systems"
)

//go:embed levels
var levelsFS embed.FS

const clientVersion = "0.1.0"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	server := flag.String("server", "", "Server address to join (empty = offline)")
	level := flag.String("level", "levels/arena.tmx", "Level TMX path (empty = built-in arena)")
	playerName := flag.String("name", "player", "Player display name")
	flag.Parse()

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	if err := systems.InitPersistence(); err == nil {
		log.Println("[client] persistence ready")
	}

	sceneConfig := scenes.ArenaConfig{}
	if *level != "" {
		sceneConfig.LevelFS = levelsFS
		sceneConfig.LevelPath = *level
	}

	if *server != "" {
		client := network.NewClient()
		client.Connect(*server, clientVersion, *playerName, *level)
		sceneConfig.Client = client
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Demolition")

	game := &Game{scene: scenes.NewArenaScene(sceneConfig)}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
