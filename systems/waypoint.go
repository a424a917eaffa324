package systems

import (
	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateWaypoints activates waypoints the player walks into. Waypoints only
// advance: touching an earlier one again does nothing.
func UpdateWaypoints(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Complete {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.IsDead() {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvWaypoint)
	if check == nil {
		return
	}

	box := dimension.RectOf(playerObj.Object)
	for _, o := range check.ObjectsByTags(tags.ResolvWaypoint) {
		if !box.Overlaps(dimension.RectOf(o)) {
			continue
		}
		waypointEntry, ok := o.Data.(*donburi.Entry)
		if !ok || waypointEntry == nil {
			continue
		}
		waypoint := components.Waypoint.Get(waypointEntry)
		if !advanceWaypoint(levelData, waypoint) {
			continue
		}

		// Respawn standing on the waypoint's base.
		player.Spawn = math.Vec2{X: o.X + (o.W-playerObj.W)/2, Y: o.Y + o.H - playerObj.H}
		PlaySFX(ecs, cfg.SoundWaypoint)

		if waypoint.Final {
			completeLevel(ecs, levelData)
			return
		}
	}
}

// advanceWaypoint marks w active when it lies ahead of the current one.
func advanceWaypoint(level *components.LevelData, w *components.WaypointData) bool {
	if w.Reached || w.Index <= level.ActiveWaypoint {
		return false
	}
	w.Reached = true
	level.ActiveWaypoint = w.Index
	return true
}

func completeLevel(ecs *ecs.ECS, level *components.LevelData) {
	level.Complete = true
	SetRunning(ecs, false)
	StopRunLoop()
	FadeOutMusic(ecs)

	if level.LevelIndex+1 < level.LevelCount {
		RequestTransition(ecs, components.TransitionNextLevel)
		return
	}
	if sess := currentSession(ecs); sess != nil {
		SaveRecord(sess.Deaths, sess.Switches)
	}
	RequestTransition(ecs, components.TransitionResults)
}
