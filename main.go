package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tovra/assets"
	"github.com/automoto/tovra/config"
	"github.com/automoto/tovra/fonts"
	"github.com/automoto/tovra/scenes"
	"github.com/automoto/tovra/shared/session"
	"github.com/automoto/tovra/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds   image.Rectangle
	scene    Scene
	director *scenes.Director
	tuning   *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}

	levels, err := assets.LoadLevels()
	if err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.director = scenes.NewDirector(g, levels, session.New(systems.GetMasterVolume()))

	if config.Debug.StartLevel >= 0 {
		g.director.LoadLevel(config.Debug.StartLevel)
	} else {
		g.director.LoadMainMenu()
	}

	return g, nil
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	if g.director.Quitting() {
		if g.tuning != nil {
			_ = g.tuning.Close()
		}
		return ebiten.Termination
	}
	return nil
}

// reloadTuning applies edits to the tuning file between frames.
func (g *Game) reloadTuning() {
	if g.tuning == nil {
		return
	}
	select {
	case path := <-g.tuning.Events:
		if err := config.LoadTuning(path); err != nil {
			log.Printf("Warning: tuning reload failed: %v", err)
			return
		}
		log.Printf("Reloaded tuning from %s", path)
	case err := <-g.tuning.Errors:
		log.Printf("Warning: tuning watcher: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.Enabled, "debug", false, "draw hitboxes and player state, reload -tuning on change")
	flag.IntVar(&config.Debug.StartLevel, "level", -1, "start at this level index instead of the menu")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "read movement tuning from this YAML file")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "start with audio muted")
	flag.Parse()

	if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.ApplySavedSettings(systems.LoadSettings())
	if config.Debug.Mute {
		systems.SetMuted(true)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if config.Debug.Enabled && config.Debug.TuningPath != "" {
		w, err := config.WatchTuning(config.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", config.Debug.TuningPath, err)
		} else {
			game.tuning = w
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
