package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and prints the player state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !v.visible(obj) {
				continue
			}
			x := obj.X + v.offX
			y := obj.Y + v.offY

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			case obj.HasTags(tags.ResolvDamage):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvWaypoint):
				c = color.RGBA{0, 255, 0, 255}
			case obj.HasTags(dimension.SolidTag):
				c = color.RGBA{100, 100, 100, 255}
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	s := player.Sensors
	msg := fmt.Sprintf("%s %s  pos %.1f,%.1f  vel %.1f,%.1f\ncontacts D%t L%t R%t U%t hazard %t\ndash armed %t  switch lock %.2f  TPS %.0f",
		player.State, player.World, player.Position.X, player.Position.Y, player.Velocity.X, player.Velocity.Y,
		s.Down, s.Left, s.Right, s.Up, s.Hazard,
		player.DashArmed, player.SwitchLock, ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-48)
}
