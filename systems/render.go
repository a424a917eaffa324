package systems

import (
	"image/color"
	"log"

	"github.com/automoto/tovra/assets"
	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// view is the camera transform for one frame.
type view struct {
	offX, offY float64
	minX, maxX float64
	minY, maxY float64
}

// Culling keeps a small padding so boxes don't pop at the edges.
func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	camX := camera.Position.X + camera.Shake.X
	camY := camera.Position.Y + camera.Shake.Y
	padding := 64.0
	return view{
		offX: width/2 - camX,
		offY: height/2 - camY,
		minX: camX - width/2 - padding,
		maxX: camX + width/2 + padding,
		minY: camY - height/2 - padding,
		maxY: camY + height/2 + padding,
	}, true
}

func (v view) visible(o *resolv.Object) bool {
	return o.X+o.W >= v.minX && o.X <= v.maxX && o.Y+o.H >= v.minY && o.Y <= v.maxY
}

func (v view) fill(screen *ebiten.Image, o *resolv.Object, c color.Color) {
	vector.FillRect(screen, float32(o.X+v.offX), float32(o.Y+v.offY), float32(o.W), float32(o.H), c, false)
}

func currentWorlds(ecs *ecs.ECS) (*components.WorldsData, bool) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Worlds.Get(levelEntry), true
}

func sideColor(s dimension.Side) color.RGBA {
	if s == dimension.Ra {
		return cfg.World.RaColor
	}
	return cfg.World.TovColor
}

// withAlpha scales c, which is premultiplied, by a.
func withAlpha(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

// DrawBackground clears to the current world's sky and draws the level's
// decoration.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	worlds, ok := currentWorlds(ecs)
	if !ok {
		return
	}
	bg := cfg.World.TovBackground
	if worlds.Pair.Current() == dimension.Ra {
		bg = cfg.World.RaBackground
	}
	screen.Fill(bg)

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	levelEntry, _ := components.Level.First(ecs.World)
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}
	img, err := assets.Background(level)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	if img == nil {
		return
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(v.offX, v.offY)
	screen.DrawImage(img, drawOp)
}

// DrawWorld renders shared geometry and the active layer. The inactive
// layer shows through while peeking.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	worlds, ok := currentWorlds(ecs)
	if !ok {
		return
	}
	current := worlds.Pair.Current()

	if worlds.PeekAlpha > 0 {
		ghost := withAlpha(sideColor(current.Other()), worlds.PeekAlpha)
		for _, o := range worlds.Pair.Inactive().Regions() {
			if v.visible(o) {
				v.fill(screen, o, ghost)
			}
		}
	}

	tags.Tile.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if !o.HasTags(tags.ResolvCommon) || !v.visible(o) {
			return
		}
		v.fill(screen, o, cfg.World.CommonColor)
	})

	solid := sideColor(current)
	for _, o := range worlds.Pair.Active().Regions() {
		if v.visible(o) {
			v.fill(screen, o, solid)
		}
	}

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if !v.visible(o) {
			return
		}
		switch {
		case hazardActive(o, current):
			v.fill(screen, o, cfg.World.HazardColor)
		case worlds.PeekAlpha > 0:
			v.fill(screen, o, withAlpha(cfg.World.HazardColor, worlds.PeekAlpha))
		}
	})

	tags.Waypoint.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if !v.visible(o) {
			return
		}
		c := cfg.World.WaypointColor
		if components.Waypoint.Get(e).Reached {
			c = withAlpha(c, 0.5)
		}
		v.fill(screen, o, c)
	})
}

// DrawPlayer renders the player box, tinted toward the world's color by
// evolution and deformed by squash/stretch around its feet.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	worlds, ok := currentWorlds(ecs)
	if !ok {
		return
	}
	levelEntry, _ := components.Level.First(ecs.World)
	evo := components.Evolution.Get(levelEntry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if player.IsDead() {
			return
		}
		o := components.Object.Get(e).Object

		sx, sy := playerScale(e)
		w := o.W * sx
		h := o.H * sy
		x := o.X + (o.W-w)/2 + v.offX
		y := o.Y + o.H - h + v.offY

		c := evolutionTint(sideColor(worlds.Pair.Current()), evo.Value)
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)

		// Eye on the facing side.
		eyeX := x + w*0.7
		if player.Facing < 0 {
			eyeX = x + w*0.3 - 2
		}
		vector.FillRect(screen, float32(eyeX), float32(y+h*0.25), 2, 2, color.Black, false)
	})
}

// evolutionTint blends white toward target by t in [0, 1].
func evolutionTint(target color.RGBA, t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		R: lerp(255, target.R),
		G: lerp(255, target.G),
		B: lerp(255, target.B),
		A: 255,
	}
}

// DrawFlash covers the screen with the new world's color after a switch.
func DrawFlash(ecs *ecs.ECS, screen *ebiten.Image) {
	worlds, ok := currentWorlds(ecs)
	if !ok || worlds.FlashAlpha <= 0 {
		return
	}
	c := withAlpha(sideColor(worlds.Pair.Current()), worlds.FlashAlpha)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
