package components

import (
	"github.com/automoto/tovra/shared/dimension"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WorldsData holds the two layouts of the current level.
type WorldsData struct {
	Pair      *dimension.Pair
	Validator *dimension.Validator

	// Flash runs after a granted switch, from FlashAlpha down to 0.
	Flash      *gween.Tween
	FlashAlpha float32

	// PeekAlpha is the opacity of the inactive layer, eased by Peek.
	Peek      *gween.Tween
	PeekAlpha float32
	Peeking   bool
}

var Worlds = donburi.NewComponentType[WorldsData]()

// HazardData marks a damage zone. An empty World hurts in both worlds.
type HazardData struct {
	World string
}

var Hazard = donburi.NewComponentType[HazardData]()
