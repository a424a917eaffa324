package systems

import (
	"github.com/automoto/tovra/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of everything that moved.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// frameTime is the fixed simulation step in seconds.
func frameTime() float64 {
	return 1 / float64(ebiten.TPS())
}
