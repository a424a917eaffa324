package components

import "github.com/yohamta/donburi"

// Transition is a scene change requested by a system. The scene applies it
// after the frame's systems have run.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionNewGame
	TransitionNextLevel
	TransitionMainMenu
	TransitionResults
	TransitionQuit
)

type TransitionData struct {
	Request Transition
}

var SceneTransition = donburi.NewComponentType[TransitionData]()
