package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sleepysdevin/demolition-mp/components"
	cfg "github.com/sleepysdevin/demolition-mp/config"
	"github.com/sleepysdevin/demolition-mp/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// PixelsPerUnit converts ground-plane world units to screen pixels.
const PixelsPerUnit = 16.0

// Shared 1x1 pixel stretched for untextured quads. Lazy so headless code
// paths never touch the render backend.
var pixelImage *ebiten.Image

func pixel() *ebiten.Image {
	if pixelImage == nil {
		pixelImage = ebiten.NewImage(1, 1)
		pixelImage.Fill(color.White)
	}
	return pixelImage
}

// project maps a world position to screen pixels. Height lifts the sprite
// up the screen for a cheap 2.5D read of arcs and floating debris.
func project(pos gamemath.Vec3) (float64, float64) {
	return pos.X * PixelsPerUnit, (pos.Z - pos.Y) * PixelsPerUnit
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, c color.RGBA, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(pixel(), op)
}

func DrawGround(e *ecs.ECS, screen *ebiten.Image) {
	components.Ground.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		elev := components.Ground.Get(entry).Elevation

		c := colornames.Darkolivegreen
		if elev > 0 {
			c = colornames.Olivedrab
		}
		fillRect(screen,
			obj.X*PixelsPerUnit, (obj.Y-elev)*PixelsPerUnit,
			obj.W*PixelsPerUnit, obj.H*PixelsPerUnit,
			c, 1)
	})
}

func DrawProps(e *ecs.ECS, screen *ebiten.Image) {
	components.Prop.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Sprite) {
			return
		}
		sprite := components.Sprite.Get(entry)
		if sprite.Image == nil {
			return
		}
		t := components.Transform.Get(entry)
		sx, sy := project(t.Pos)
		w := t.Size.X * PixelsPerUnit
		h := t.Size.Y * PixelsPerUnit

		op := &ebiten.DrawImageOptions{}
		bounds := sprite.Image.Bounds()
		op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
		op.GeoM.Translate(sx-w/2, sy-h/2)
		if entry.HasComponent(components.Flash) {
			flash := components.Flash.Get(entry)
			op.ColorScale.Scale(1+flash.Strength, 1+flash.Strength, 1+flash.Strength, 1)
		}
		screen.DrawImage(sprite.Image, op)
	})
}

func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	t := components.Transform.Get(playerEntry)
	sx, sy := project(t.Pos)
	w := t.Size.X * PixelsPerUnit
	h := t.Size.Y * PixelsPerUnit
	fillRect(screen, sx-w/2, sy-h, w, h, colornames.Steelblue, 1)
}

func DrawGrenades(e *ecs.ECS, screen *ebiten.Image) {
	components.Grenade.Each(e.World, func(entry *donburi.Entry) {
		t := components.Transform.Get(entry)
		sx, sy := project(t.Pos)
		g := components.Grenade.Get(entry)
		c := colornames.Darkslategray
		if g.Kind == components.GrenadeGas {
			c = colornames.Yellowgreen
		}
		fillRect(screen, sx-3, sy-3, 6, 6, c, 1)
	})
}

func DrawDebris(e *ecs.ECS, screen *ebiten.Image) {
	demo := components.MustDemolition(e.World)
	components.Debris.Each(e.World, func(entry *donburi.Entry) {
		d := components.Debris.Get(entry)
		t := components.Transform.Get(entry)
		sx, sy := project(t.Pos)

		size := demo.DebrisSizes[d.Variant] * PixelsPerUnit
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(-size/2, -size/2)
		op.GeoM.Rotate(d.Rot[1])
		op.GeoM.Translate(sx, sy)
		op.ColorScale.ScaleWithColor(cfg.CategoryTints[string(d.Tint)])
		op.ColorScale.ScaleAlpha(float32(d.Opacity))
		screen.DrawImage(pixel(), op)
	})
}

func DrawGasClouds(e *ecs.ECS, screen *ebiten.Image) {
	components.GasCloud.Each(e.World, func(entry *donburi.Entry) {
		cloud := components.GasCloud.Get(entry)
		for i := range cloud.Puffs {
			p := &cloud.Puffs[i]
			sx, sy := project(p.Pos)
			size := PuffScale(cloud, p) * PixelsPerUnit

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(size, size)
			op.GeoM.Translate(-size/2, -size/2)
			op.GeoM.Rotate(p.Rot)
			op.GeoM.Translate(sx, sy)
			op.ColorScale.ScaleWithColor(colornames.Yellowgreen)
			op.ColorScale.ScaleAlpha(float32(PuffOpacity(cloud, p)) * 0.5)
			screen.DrawImage(pixel(), op)
		}
	})
}

// DrawExplosions renders directly from the pool slots; explosions whose
// acquire failed simply have no slot and draw nothing.
func DrawExplosions(e *ecs.ECS, screen *ebiten.Image) {
	demo := components.MustDemolition(e.World)
	for i := range demo.Pool.Slots {
		slot := &demo.Pool.Slots[i]
		if !slot.InUse {
			continue
		}
		sx, sy := project(slot.Pos)

		// Brightness steps down across the frame strip.
		fade := 1 - float64(slot.FrameIndex)/float64(cfg.Explosion.FrameCount)
		size := slot.Scale * cfg.Explosion.Radius * PixelsPerUnit
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(sx-size/2, sy-size/2)
		op.ColorScale.Scale(1, float32(0.4+0.6*fade), float32(0.2*fade), 1)
		op.ColorScale.ScaleAlpha(float32(slot.Opacity))
		screen.DrawImage(pixel(), op)
	}
}
