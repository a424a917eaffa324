package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs    *ecs.ECS
	loader Loader
	once   sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(loader Loader) *MenuScene {
	return &MenuScene{loader: loader}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	apply(ms.loader, systems.TakeTransition(ms.ecs))
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	systems.PreloadAllSFX()
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateMenu)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.PlayMusic(ms.ecs, cfg.Sound.Music)
}
