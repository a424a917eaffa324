package scenes

import (
	"log"

	"github.com/automoto/tovra/components"
	"github.com/automoto/tovra/shared/leveldata"
	"github.com/automoto/tovra/shared/session"
	"github.com/automoto/tovra/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Loader moves the game between its scenes.
type Loader interface {
	LoadNewGame()
	LoadNextLevel()
	LoadMainMenu()
	ShowResults()
	Quit()
}

// Director owns the level list and the session of a run, and builds the
// scene for each step.
type Director struct {
	changer SceneChanger
	levels  []*leveldata.Level
	session *session.Session
	index   int
	quit    bool
}

func NewDirector(changer SceneChanger, levels []*leveldata.Level, sess *session.Session) *Director {
	return &Director{
		changer: changer,
		levels:  levels,
		session: sess,
		index:   -1,
	}
}

// Session returns the counters of the current run.
func (d *Director) Session() *session.Session {
	return d.session
}

// LoadNewGame resets the counters and starts the first level.
func (d *Director) LoadNewGame() {
	d.session.Reset()
	d.session.SetVolume(systems.GetMasterVolume())
	d.LoadLevel(0)
}

// LoadLevel starts the level at index, or the results when index is past
// the last level.
func (d *Director) LoadLevel(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(d.levels) {
		log.Printf("Warning: level %d does not exist, %d levels loaded", index, len(d.levels))
		d.ShowResults()
		return
	}
	d.index = index
	d.changer.ChangeScene(NewPlatformerScene(d, d.levels[index], index, len(d.levels), d.session))
}

func (d *Director) LoadNextLevel() {
	d.LoadLevel(d.index + 1)
}

func (d *Director) LoadMainMenu() {
	d.index = -1
	d.changer.ChangeScene(NewMenuScene(d))
}

func (d *Director) ShowResults() {
	d.index = -1
	d.changer.ChangeScene(NewResultsScene(d, d.session))
}

// Quit asks the game loop to stop.
func (d *Director) Quit() {
	d.quit = true
}

// Quitting reports whether Quit was called.
func (d *Director) Quitting() bool {
	return d.quit
}

// apply performs a transition requested by a system.
func apply(l Loader, t components.Transition) {
	switch t {
	case components.TransitionNewGame:
		l.LoadNewGame()
	case components.TransitionNextLevel:
		l.LoadNextLevel()
	case components.TransitionMainMenu:
		l.LoadMainMenu()
	case components.TransitionResults:
		l.ShowResults()
	case components.TransitionQuit:
		l.Quit()
	}
}
