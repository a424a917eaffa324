package components

import (
	"github.com/automoto/tovra/shared/session"
	"github.com/yohamta/donburi"
)

// SessionData points at the run's counters, which outlive the scene.
type SessionData struct {
	*session.Session
}

var Session = donburi.NewComponentType[SessionData]()
