package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sleepysdevin/demolition-mp/components"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/sleepysdevin/demolition-mp/systems/factory"
	"github.com/sleepysdevin/demolition-mp/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls keyboard and mouse for the local player: WASD movement,
// F/G to lob frag/gas grenades at the cursor, left click to hit the prop
// under the cursor. Must run before the simulation systems.
func UpdateInput(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}

	dt := DeltaTime(e)
	player := components.Player.Get(playerEntry)
	t := components.Transform.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	var dx, dz float64
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dz -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dz += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += 1
	}
	if dx != 0 || dz != 0 {
		move := gamemath.Vec3{X: dx, Z: dz}.Normalize().Scale(player.MoveSpeed * dt)
		t.Pos.X += move.X
		t.Pos.Z += move.Z
		obj.X = t.Pos.X - obj.W/2
		obj.Y = t.Pos.Z - obj.H/2
		obj.Update()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		throwAtCursor(e, components.GrenadeFrag)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		throwAtCursor(e, components.GrenadeGas)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		hitPropAtCursor(e)
	}
}

// throwAtCursor lobs a grenade from the player toward the cursor's point on
// the ground plane, with a fixed upward bias for the arc.
func throwAtCursor(e *ecs.ECS, kind components.GrenadeKind) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	t := components.Transform.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	target := cursorWorldPos()
	dir := target.Sub(t.Pos)
	dir.Y = 0
	dir = dir.Normalize()
	dir.Y = 0.6 // throw arc

	origin := t.Pos
	origin.Y += 1.2 // shoulder height
	factory.ThrowGrenade(e, origin, dir, kind, obj)
}

// hitPropAtCursor applies a melee-strength hit to the prop whose footprint
// contains the cursor.
func hitPropAtCursor(e *ecs.ECS) {
	target := cursorWorldPos()

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	cx, cy := space.WorldToSpace(target.X, target.Z)
	cell := space.Cell(cx, cy)
	if cell == nil {
		return
	}
	for _, obj := range cell.Objects {
		if !obj.HasTags(tags.ResolvProp) {
			continue
		}
		if entry := GetPropByCollider(e, obj); entry != nil {
			DamageProp(e, entry, 10)
			return
		}
	}
}

// cursorWorldPos maps the cursor from screen pixels to ground-plane world
// units. The view is a fixed top-down projection with the world origin in
// the top-left corner.
func cursorWorldPos() gamemath.Vec3 {
	mx, my := ebiten.CursorPosition()
	return gamemath.Vec3{
		X: float64(mx) / PixelsPerUnit,
		Z: float64(my) / PixelsPerUnit,
	}
}
