package components

import (
	cfg "github.com/automoto/tovra/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	PendingSFX []cfg.SoundID
	// Running keeps the run loop playing while set.
	Running bool
}

var Audio = donburi.NewComponentType[AudioData]()
