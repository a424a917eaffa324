package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/shared/leveldata"
	"github.com/automoto/tovra/shared/session"
	"github.com/automoto/tovra/systems"
	"github.com/automoto/tovra/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays one level.
type PlatformerScene struct {
	ecs     *ecs.ECS
	loader  Loader
	level   *leveldata.Level
	index   int
	count   int
	session *session.Session
	once    sync.Once
	failed  bool
}

func NewPlatformerScene(loader Loader, level *leveldata.Level, index, count int, sess *session.Session) *PlatformerScene {
	return &PlatformerScene{
		loader:  loader,
		level:   level,
		index:   index,
		count:   count,
		session: sess,
	}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.failed {
		ps.loader.LoadMainMenu()
		return
	}
	ps.ecs.Update()
	apply(ps.loader, systems.TakeTransition(ps.ecs))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil || ps.failed {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Player step, then movement against the active world, then everything
	// that reacts to where the player ended up.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWaypoints))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEvolution))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateNarration))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWorlds))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawFlash)
	ecs.AddRenderer(cfg.Default, systems.DrawNarration)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs

	_, err := factory.CreateLevel(ps.ecs, factory.LevelSetup{
		Level:      ps.level,
		Index:      ps.index,
		Count:      ps.count,
		Session:    ps.session,
		Feedback:   systems.NewSwitchFeedback(ps.ecs),
		StartWorld: dimension.Tov,
	})
	if err != nil {
		log.Printf("Error: %v", err)
		ps.failed = true
		return
	}

	spawn, _ := ps.level.SpawnPoint()
	systems.SnapCamera(ps.ecs, spawn.X, spawn.Y)
	systems.PlayMusic(ps.ecs, ps.level.Music)
}
