package components

import (
	"github.com/automoto/tovra/shared/movement"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	movement.Player

	// Input is the snapshot fed to the last step, kept for the debug overlay.
	Input movement.Input
	// Events are the results of the last step.
	Events movement.Events
	// Sensors from the last probe.
	Sensors movement.Sensors
}

var Player = donburi.NewComponentType[PlayerData]()
