package systems

import (
	"github.com/automoto/tovra/components"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateTransition(ecs *ecs.ECS) *components.TransitionData {
	entry, ok := components.SceneTransition.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.SceneTransition))
	}
	return components.SceneTransition.Get(entry)
}

// RequestTransition asks the scene to change after this frame. The first
// request of a frame wins.
func RequestTransition(ecs *ecs.ECS, t components.Transition) {
	tr := getOrCreateTransition(ecs)
	if tr.Request == components.TransitionNone {
		tr.Request = t
	}
}

// TakeTransition returns the pending request and clears it.
func TakeTransition(ecs *ecs.ECS) components.Transition {
	tr := getOrCreateTransition(ecs)
	t := tr.Request
	tr.Request = components.TransitionNone
	return t
}
