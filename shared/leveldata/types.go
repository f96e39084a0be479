package leveldata

// GroundRegion is a walkable floor rectangle in world units.
type GroundRegion struct {
	X, Z      float64
	W, D      float64
	Elevation float64
}

// PropPlacement is one destructible prop position. Category matches the
// registry categories ("crate", "reinforced_crate", "barrel"). Health and
// loot are optional overrides; zero values fall back to category defaults.
type PropPlacement struct {
	X, Z     float64
	Category string

	Health     float64
	LootType   string
	LootAmount int
}

// SpawnPoint is a player start position.
type SpawnPoint struct {
	X, Z float64
}

// ArenaData is the parsed level: dimensions in world units, floor regions,
// prop placements and the player spawn.
type ArenaData struct {
	Width  float64
	Height float64

	Grounds []GroundRegion
	Props   []PropPlacement
	Spawn   SpawnPoint
}
