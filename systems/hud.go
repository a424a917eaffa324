package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/fonts"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 14
	hudBarWidth   = 60
	hudBarHeight  = 4
)

// DrawHUD renders the level title, the run counters and the switch cooldown
// in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	worlds := components.Worlds.Get(levelEntry)
	face := fonts.Regular.Get()

	title := fmt.Sprintf("%d/%d", levelData.LevelIndex+1, levelData.LevelCount)
	if levelData.CurrentLevel != nil && levelData.CurrentLevel.Title != "" {
		title += "  " + levelData.CurrentLevel.Title
	}
	y := hudMargin + hudLineHeight
	text.Draw(screen, title, face, hudMargin, y, cfg.White)

	if sess := currentSession(ecs); sess != nil {
		y += hudLineHeight
		counters := fmt.Sprintf("Deaths %d   Switches %d", sess.Deaths, sess.Switches)
		text.Draw(screen, counters, face, hudMargin, y, cfg.Gray)
	}

	current := worlds.Pair.Current()
	y += hudLineHeight
	text.Draw(screen, strings.ToUpper(current.String()), fonts.Bold.Get(), hudMargin, y+4, sideColor(current))

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	drawCooldownBar(screen, float32(hudMargin), float32(y+10), cooldownRatio(player.SwitchLock, cfg.Player.SwitchCooldown), sideColor(current.Other()))
}

// cooldownRatio is the charged fraction of a cooldown, 1 when ready.
func cooldownRatio(remaining, total float64) float32 {
	if total <= 0 || remaining <= 0 {
		return 1
	}
	if remaining >= total {
		return 0
	}
	return float32(1 - remaining/total)
}

func drawCooldownBar(screen *ebiten.Image, x, y, ratio float32, fill color.Color) {
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.FillRect(screen, x, y, hudBarWidth*ratio, hudBarHeight, fill, false)
}

// DrawNarration renders the active narration line centered at the top, in
// the text of the current world.
func DrawNarration(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	narration := components.Narration.Get(levelEntry)
	if narration.Active < 0 || narration.Active >= len(narration.Lines) || narration.Alpha <= 0 {
		return
	}
	current := components.Worlds.Get(levelEntry).Pair.Current()
	line := narration.Lines[narration.Active]
	msg, textColor := line.Tov, cfg.Narration.TovTextColor
	if current == dimension.Ra {
		msg, textColor = line.Ra, cfg.Narration.RaTextColor
	}
	if msg == "" {
		return
	}

	face := fonts.Regular.Get()
	width := float64(screen.Bounds().Dx())
	pad := cfg.Narration.BoxPadding
	textWidth := float64(fonts.Width(face, msg))
	boxW := textWidth + pad*2
	boxH := float64(hudLineHeight) + pad*2
	boxX := (width - boxW) / 2
	boxY := cfg.Narration.TopMargin

	vector.FillRect(screen, float32(boxX), float32(boxY), float32(boxW), float32(boxH),
		withAlpha(cfg.Narration.BoxColor, narration.Alpha), false)
	text.Draw(screen, msg, face, int(boxX+pad), int(boxY+pad)+hudLineHeight-3,
		withAlpha(textColor, narration.Alpha))
}
