package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// Config holds global window values.
type Config struct {
	Width  int
	Height int

	// Visuals gates procedural sprite allocation so headless simulations
	// (tests, dedicated server) never touch the render backend.
	Visuals bool
}

var C *Config

// Default is the single ECS layer used by all entities and renderers.
const Default ecs.LayerID = 0

// TickRate is the nominal simulation rate; Time.DT defaults to 1/TickRate.
const TickRate = 60

// DestructibleConfig contains destructible-prop tuning.
type DestructibleConfig struct {
	// Default health per category
	CrateHealth      float64
	ReinforcedHealth float64
	BarrelHealth     float64

	// Barrel chain explosion
	BarrelBlastRadius float64
	BarrelBlastDamage float64

	// Hit flash (skipped for barrels)
	FlashDuration float32 // seconds

	// Network-sync destruction matching
	MatchTolerance float64
}

// DebrisConfig contains destruction-fragment tuning.
type DebrisConfig struct {
	CountPerProp  int
	MinLife       float64 // seconds
	MaxLife       float64
	LaunchSpeed   float64 // horizontal speed scale
	LaunchLift    float64 // initial upward speed
	Gravity       float64
	BounceDamping float64 // vertical velocity retained per floor hit
	SlideDamping  float64 // horizontal velocity retained per floor hit
	SpinDamping   float64 // spin retained per floor hit
	MaxSpin       float64 // rad/s per axis
	FadePortion   float64 // final fraction of life spent fading
	VariantCount  int     // shared geometry variants per category
}

// GrenadeConfig contains thrown-projectile tuning.
type GrenadeConfig struct {
	ThrowSpeed    float64
	Gravity       float64
	GroundEpsilon float64
}

// GasConfig contains gas-cloud hazard tuning.
type GasConfig struct {
	Radius     float64
	Duration   float64 // seconds
	DamageRate float64 // damage per second to entities in radius

	PuffCount      int
	PuffRiseSpeed  float64
	PuffDriftSpeed float64
	PuffGrowth     float64 // max extra scale over cloud life (0.4 = +40%)
}

// ExplosionConfig contains frag-explosion tuning.
type ExplosionConfig struct {
	Radius     float64
	Damage     float64
	Duration   float64 // seconds of sprite playback
	FrameCount int     // frames in the atlas strip
	PoolSize   int     // simultaneous visual slots

	// Barrel flash reuses the pool with a shorter playback
	BarrelFlashDuration float64
}

var (
	Destructible DestructibleConfig
	Debris       DebrisConfig
	Grenade      GrenadeConfig
	Gas          GasConfig
	Explosion    ExplosionConfig
)

// CategoryTints are the prop/debris tints per destructible category.
var CategoryTints = map[string]color.RGBA{
	"crate":            colornames.Burlywood,
	"reinforced_crate": colornames.Slategray,
	"barrel":           colornames.Firebrick,
}

func init() {
	C = &Config{
		Width:   960,
		Height:  540,
		Visuals: true,
	}

	Destructible = DestructibleConfig{
		CrateHealth:      30,
		ReinforcedHealth: 70,
		BarrelHealth:     12,

		BarrelBlastRadius: 2.0,
		BarrelBlastDamage: 35,

		FlashDuration: 0.15,

		MatchTolerance: 0.5,
	}

	Debris = DebrisConfig{
		CountPerProp:  6,
		MinLife:       1.2,
		MaxLife:       1.8,
		LaunchSpeed:   3.5,
		LaunchLift:    4.0,
		Gravity:       -9.8,
		BounceDamping: 0.45,
		SlideDamping:  0.6,
		SpinDamping:   0.5,
		MaxSpin:       8.0,
		FadePortion:   0.3,
		VariantCount:  4,
	}

	Grenade = GrenadeConfig{
		ThrowSpeed:    9.0,
		Gravity:       -9.8,
		GroundEpsilon: 0.05,
	}

	Gas = GasConfig{
		Radius:     2.5,
		Duration:   6.0,
		DamageRate: 8.0,

		PuffCount:      10,
		PuffRiseSpeed:  0.35,
		PuffDriftSpeed: 0.25,
		PuffGrowth:     0.4,
	}

	Explosion = ExplosionConfig{
		Radius:     4.0,
		Damage:     80,
		Duration:   0.5,
		FrameCount: 8,
		PoolSize:   6,

		BarrelFlashDuration: 0.3,
	}
}
