package systems

import (
	"image/color"

	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// moveSelection steps a wrapping cursor over n entries with the menu up and
// down actions.
func moveSelection(e *ecs.ECS, input *components.InputData, selected, n int) int {
	if n <= 0 {
		return 0
	}
	step := 0
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		step--
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		step++
	}
	if step == 0 {
		return selected
	}
	PlaySFX(e, cfg.SoundMenuNavigate)
	return wrapIndex(selected+step, n)
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// menuList lays out a vertical list of labels.
type menuList struct {
	top, itemHeight, gap float64
	normal, selected     color.Color
}

func (l menuList) draw(screen *ebiten.Image, labels []string, current int) {
	face := fonts.Bold.Get()
	for i, label := range labels {
		clr := l.normal
		if i == current {
			clr = l.selected
		}
		y := l.top + float64(i)*(l.itemHeight+l.gap) + l.itemHeight
		drawCentered(screen, label, face, int(y), clr)
	}
}

func (l menuList) height(count int) float64 {
	return float64(count) * (l.itemHeight + l.gap)
}

// drawCentered draws s centered horizontally with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	x := (screen.Bounds().Dx() - fonts.Width(face, s)) / 2
	text.Draw(screen, s, face, x, y, clr)
}

// controlHints holds one line of help text per input method.
type controlHints struct {
	keyboard, playStation, xbox string
}

func (h controlHints) forMethod(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return h.playStation
	case components.InputXbox:
		return h.xbox
	}
	return h.keyboard
}
