package factory

import (
	"github.com/automoto/tovra/archetypes"
	"github.com/automoto/tovra/components"
	"github.com/automoto/tovra/shared/leveldata"
	"github.com/automoto/tovra/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWaypoint creates a waypoint trigger with collision detection
func CreateWaypoint(ecs *ecs.ECS, index int, w leveldata.Waypoint) *donburi.Entry {
	waypoint := archetypes.Waypoint.Spawn(ecs)

	width, height := w.W, w.H
	if width <= 0 || height <= 0 {
		// Point objects in Tiled get a tile-sized trigger.
		width, height = 16, 32
	}

	obj := resolv.NewObject(w.X, w.Y, width, height, tags.ResolvWaypoint)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = waypoint

	components.Object.SetValue(waypoint, components.ObjectData{Object: obj})
	components.Waypoint.SetValue(waypoint, components.WaypointData{
		Index: index,
		Final: w.Final,
	})
	addToSpace(ecs, obj)

	return waypoint
}
