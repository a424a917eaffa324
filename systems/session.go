package systems

import (
	"github.com/automoto/tovra/components"
	"github.com/automoto/tovra/shared/session"
	"github.com/yohamta/donburi/ecs"
)

// currentSession returns the run's counters, nil outside a level.
func currentSession(ecs *ecs.ECS) *session.Session {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry).Session
}
