package scenes

import (
	"fmt"
	"image/color"
	"sync"

	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/session"
	"github.com/automoto/tovra/systems"
	"github.com/automoto/tovra/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResultsScene shows the counters of a finished run.
type ResultsScene struct {
	ecs       *ecs.ECS
	loader    Loader
	session   *session.Session
	resultsUI *ui.ResultsUI
	once      sync.Once

	next func()
}

func NewResultsScene(loader Loader, sess *session.Session) *ResultsScene {
	return &ResultsScene{loader: loader, session: sess}
}

func (s *ResultsScene) Update() {
	s.once.Do(s.configure)

	s.ecs.Update()
	s.resultsUI.Update()

	if s.next == nil && systems.ActionJustPressed(s.ecs, cfg.ActionMenuSelect) {
		systems.PlaySFX(s.ecs, cfg.SoundMenuSelect)
		s.next = s.loader.LoadMainMenu
	}

	// Button handlers only record the choice; the scene changes here so the
	// UI is not torn down from inside its own update.
	if s.next != nil {
		next := s.next
		s.next = nil
		next()
	}
}

func (s *ResultsScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.resultsUI == nil {
		return
	}
	s.resultsUI.UI.Draw(screen)
}

func (s *ResultsScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	s.ecs.AddSystem(systems.UpdateAudio)
	s.ecs.AddSystem(systems.UpdateInput)

	record := ""
	if r := systems.LoadRecord(); r != nil {
		record = fmt.Sprintf("Best run: %d deaths, %d switches (%d finished)", r.Deaths, r.Switches, r.Completions)
	}

	style := ui.ResultsStyle{
		Background:    cfg.Results.BackgroundColor,
		Panel:         cfg.Results.PanelColor,
		Title:         cfg.Results.TitleColor,
		Text:          cfg.Results.TextColor,
		ButtonIdle:    cfg.Results.ButtonIdle,
		ButtonHover:   cfg.Results.ButtonHover,
		ButtonPressed: cfg.Results.ButtonPressed,
	}
	s.resultsUI = ui.NewResultsUI(style, cfg.Results.Title, s.session.Summary(), record,
		func() {
			systems.PlaySFX(s.ecs, cfg.SoundMenuSelect)
			s.next = s.loader.LoadNewGame
		},
		func() {
			systems.PlaySFX(s.ecs, cfg.SoundMenuSelect)
			s.next = s.loader.LoadMainMenu
		},
		func() {
			s.next = s.loader.Quit
		},
	)

	systems.PlayMusic(s.ecs, cfg.Sound.Music)
}
