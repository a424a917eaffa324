package systems

import (
	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseHints = controlHints{
	keyboard:    "Arrows: Navigate   Enter: Select   Esc: Resume",
	playStation: "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume",
	xbox:        "Left Stick/D-Pad: Navigate   A: Select   Start: Resume",
}

// UpdatePause toggles the pause overlay and runs its menu. It runs after
// UpdateInput and before every system wrapped with WithPauseCheck.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPause).JustPressed {
		setPaused(e, pause, !pause.IsPaused)
	}
	if !pause.IsPaused {
		return
	}

	count := int(components.MenuQuit) + 1
	pause.SelectedOption = components.PauseMenuOption(moveSelection(e, input, int(pause.SelectedOption), count))

	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	PlaySFX(e, cfg.SoundMenuSelect)
	switch pause.SelectedOption {
	case components.MenuResume:
		setPaused(e, pause, false)
	case components.MenuMainMenu:
		RequestTransition(e, components.TransitionMainMenu)
	case components.MenuQuit:
		RequestTransition(e, components.TransitionQuit)
	}
}

func setPaused(e *ecs.ECS, pause *components.PauseData, paused bool) {
	pause.IsPaused = paused
	if paused {
		pause.SelectedOption = components.MenuResume
		// The player system is skipped while paused and would never clear it.
		SetRunning(e, false)
		PauseMusic(e)
		return
	}
	ResumeMusic(e)
}

// DrawPause dims the level and draws the pause menu over it.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Pause.OverlayColor, false)

	list := menuList{
		itemHeight: cfg.Pause.MenuItemHeight,
		gap:        cfg.Pause.MenuItemGap,
		normal:     cfg.Pause.TextColorNormal,
		selected:   cfg.Pause.TextColorSelected,
	}
	list.top = (float64(h) - list.height(len(cfg.Pause.MenuOptions))) / 2
	list.draw(screen, cfg.Pause.MenuOptions, int(pause.SelectedOption))

	hint := pauseHints.forMethod(getOrCreateInput(e).LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), h-12, cfg.Pause.TextColorNormal)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks also skips the system once the level is finished.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if levelEntry, ok := components.Level.First(e.World); ok && components.Level.Get(levelEntry).Complete {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(entry, components.PauseData{SelectedOption: components.MenuResume})
	}
	return components.Pause.Get(entry)
}
