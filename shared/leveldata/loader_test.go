package leveldata

import (
	"os"
	"testing"
)

func TestDefaultArena(t *testing.T) {
	arena := DefaultArena()

	if arena.Width <= 0 || arena.Height <= 0 {
		t.Fatalf("bad dimensions %f x %f", arena.Width, arena.Height)
	}
	if len(arena.Grounds) == 0 {
		t.Fatal("no floor regions")
	}
	if len(arena.Props) == 0 {
		t.Fatal("no props")
	}

	barrels := 0
	for _, p := range arena.Props {
		switch p.Category {
		case "crate", "reinforced_crate", "barrel":
		default:
			t.Errorf("unknown category %q", p.Category)
		}
		if p.Category == "barrel" {
			barrels++
		}
		if p.X < 0 || p.X > arena.Width || p.Z < 0 || p.Z > arena.Height {
			t.Errorf("prop at (%f, %f) outside arena", p.X, p.Z)
		}
	}
	if barrels < 2 {
		t.Errorf("barrels = %d, want a chain of at least 2", barrels)
	}

	lootProps := 0
	for _, p := range arena.Props {
		if p.LootType != "" {
			lootProps++
			if p.LootAmount <= 0 {
				t.Errorf("loot prop %q has amount %d", p.LootType, p.LootAmount)
			}
		}
	}
	if lootProps == 0 {
		t.Error("built-in arena carries no loot prop")
	}
}

func TestLoadArenaTMX(t *testing.T) {
	arena, err := LoadArena(os.DirFS("../.."), "levels/arena.tmx")
	if err != nil {
		t.Fatalf("load arena: %v", err)
	}

	if arena.Width != 40 || arena.Height != 30 {
		t.Errorf("dimensions = %f x %f, want 40 x 30", arena.Width, arena.Height)
	}
	if len(arena.Grounds) != 2 {
		t.Errorf("floor regions = %d, want 2", len(arena.Grounds))
	}
	if len(arena.Props) != 9 {
		t.Errorf("props = %d, want 9", len(arena.Props))
	}
	if arena.Spawn.X == 0 && arena.Spawn.Z == 0 {
		t.Error("player spawn missing")
	}

	// Object pixel coordinates divide down by the 16px tile size.
	found := false
	for _, g := range arena.Grounds {
		if g.Elevation == 0.5 && g.W == 8 && g.D == 6 {
			found = true
		}
	}
	if !found {
		t.Error("elevated platform not parsed")
	}

	var loot *PropPlacement
	weakened := false
	for i, p := range arena.Props {
		if p.LootType != "" {
			loot = &arena.Props[i]
		}
		if p.Category == "crate" && p.Health == 45 {
			weakened = true
		}
	}
	if loot == nil {
		t.Fatal("loot-bearing prop not parsed")
	}
	if loot.Category != "reinforced_crate" || loot.LootType != "ammo" || loot.LootAmount != 5 {
		t.Errorf("loot prop = %s %q x%d, want reinforced_crate \"ammo\" x5",
			loot.Category, loot.LootType, loot.LootAmount)
	}
	if !weakened {
		t.Error("health override on crate not parsed")
	}
}
