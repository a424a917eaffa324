package components

import (
	"github.com/automoto/tovra/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	LevelCount   int

	// ActiveWaypoint indexes CurrentLevel.Waypoints, -1 before the first one.
	ActiveWaypoint int
	Complete       bool
}

var Level = donburi.NewComponentType[LevelData]()

// WaypointData is attached to each waypoint trigger entity.
type WaypointData struct {
	Index   int
	Final   bool
	Reached bool
}

var Waypoint = donburi.NewComponentType[WaypointData]()
