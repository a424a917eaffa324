package components

import (
	"github.com/automoto/tovra/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EvolutionData tracks how far the player got since the last switch.
// Origin is the x of the waypoint that was active when they switched.
type EvolutionData struct {
	Origin   float64
	Farthest float64
	Value    float64 // 0..1, drives the tint
}

var Evolution = donburi.NewComponentType[EvolutionData]()

// NarrationData is the narration state of a level.
type NarrationData struct {
	Lines []leveldata.NarrationLine
	Fired []bool

	Active    int // index into Lines, -1 when nothing is shown
	Remaining float64
	Fade      *gween.Tween
	Alpha     float32
}

var Narration = donburi.NewComponentType[NarrationData]()
