package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file into arena data. It takes an fs.FS so callers
// can pass embed.FS (client) or os.DirFS (server). TMX coordinates are in
// pixels; everything is divided by the map's tile width to get world units.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	unit := float64(levelMap.TileWidth)
	if unit == 0 {
		return nil, fmt.Errorf("TMX %s has zero tile width", tmxPath)
	}

	data := &ArenaData{
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "ground":
			for _, o := range og.Objects {
				data.Grounds = append(data.Grounds, GroundRegion{
					X:         o.X / unit,
					Z:         o.Y / unit,
					W:         o.Width / unit,
					D:         o.Height / unit,
					Elevation: o.Properties.GetFloat("elevation"),
				})
			}
		case "props":
			for _, o := range og.Objects {
				category := o.Properties.GetString("category")
				if category == "" {
					category = o.Type
				}
				if category == "" {
					continue
				}
				data.Props = append(data.Props, PropPlacement{
					X:          o.X / unit,
					Z:          o.Y / unit,
					Category:   category,
					Health:     o.Properties.GetFloat("health"),
					LootType:   o.Properties.GetString("lootType"),
					LootAmount: o.Properties.GetInt("lootAmount"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				data.Spawn = SpawnPoint{X: o.X / unit, Z: o.Y / unit}
				break
			}
		}
	}

	return data, nil
}

// DefaultArena is the built-in layout used when no level file is given: a
// flat floor, crate clusters, a reinforced crate and a barrel chain.
func DefaultArena() *ArenaData {
	arena := &ArenaData{
		Width:  40,
		Height: 30,
		Grounds: []GroundRegion{
			{X: 0, Z: 0, W: 40, D: 30, Elevation: 0},
			{X: 28, Z: 4, W: 8, D: 6, Elevation: 0.5},
		},
		Spawn: SpawnPoint{X: 6, Z: 15},
	}

	// Crate cluster
	for i := 0; i < 3; i++ {
		arena.Props = append(arena.Props, PropPlacement{
			X: 14 + float64(i)*1.4, Z: 8, Category: "crate",
		})
	}
	arena.Props = append(arena.Props,
		PropPlacement{X: 15, Z: 10, Category: "crate"},
		PropPlacement{X: 20, Z: 20, Category: "reinforced_crate", LootType: "ammo", LootAmount: 5},
	)

	// Barrel chain, spaced inside blast range of each other
	for i := 0; i < 4; i++ {
		arena.Props = append(arena.Props, PropPlacement{
			X: 26 + float64(i)*1.6, Z: 22, Category: "barrel",
		})
	}

	return arena
}
