package systems

import (
	"fmt"

	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var menuHints = controlHints{
	keyboard:    "Arrows: Navigate   Left/Right: Volume   Enter: Select",
	playStation: "Left Stick/D-Pad: Navigate   Cross: Select",
	xbox:        "Left Stick/D-Pad: Navigate   A: Select",
}

// UpdateMenu handles main menu navigation. Starting and quitting are
// requested as scene transitions.
func UpdateMenu(e *ecs.ECS) {
	menu := GetOrCreateMenu(e)
	input := getOrCreateInput(e)
	if len(menu.Options) == 0 {
		return
	}

	menu.SelectedIndex = moveSelection(e, input, menu.SelectedIndex, len(menu.Options))
	selected := menu.Options[menu.SelectedIndex]

	if selected == components.MainMenuVolume {
		step := 0.0
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			step = -cfg.Menu.VolumeStep
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			step = cfg.Menu.VolumeStep
		}
		if step != 0 {
			SetMasterVolume(stepVolume(GetMasterVolume(), step))
			SaveCurrentSettings()
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(e, cfg.SoundMenuSelect)
		switch selected {
		case components.MainMenuPlay:
			FadeOutMusic(e)
			RequestTransition(e, components.TransitionNewGame)
		case components.MainMenuVolume:
			SetMuted(!IsMuted())
			SaveCurrentSettings()
		case components.MainMenuQuit:
			RequestTransition(e, components.TransitionQuit)
		}
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		RequestTransition(e, components.TransitionQuit)
	}
}

// stepVolume moves v by step, snapped to tenths and clamped to [0, 1].
func stepVolume(v, step float64) float64 {
	v = clampVolume(v + step)
	return float64(int(v*10+0.5)) / 10
}

// DrawMenu renders the title, the options and the best saved run.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Menu.BackgroundColor, false)
	drawCentered(screen, cfg.C.Title, fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	labels := make([]string, len(menu.Options))
	for i, option := range menu.Options {
		labels[i] = getOptionLabel(option)
	}
	menuList{
		top:        cfg.Menu.MenuStartY,
		itemHeight: cfg.Menu.MenuItemHeight,
		gap:        cfg.Menu.MenuItemGap,
		normal:     cfg.Menu.TextColorNormal,
		selected:   cfg.Menu.TextColorSelected,
	}.draw(screen, labels, menu.SelectedIndex)

	small := fonts.Small.Get()
	if record := LoadRecord(); record != nil {
		best := fmt.Sprintf("Best run: %d deaths, %d switches", record.Deaths, record.Switches)
		drawCentered(screen, best, small, h-30, cfg.Menu.HintColor)
	}
	drawCentered(screen, menuHints.forMethod(getOrCreateInput(e).LastInputMethod), small, h-12, cfg.Menu.TextColorNormal)
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuPlay:
		return "Play"
	case components.MainMenuVolume:
		if IsMuted() {
			return "Volume: muted"
		}
		return fmt.Sprintf("Volume: %d%%", int(GetMasterVolume()*100+0.5))
	case components.MainMenuQuit:
		return "Quit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Options: []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuVolume,
				components.MainMenuQuit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
