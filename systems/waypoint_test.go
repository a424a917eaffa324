package systems

import (
	"testing"

	"github.com/automoto/tovra/components"
)

func TestAdvanceWaypoint(t *testing.T) {
	level := &components.LevelData{ActiveWaypoint: -1}
	first := &components.WaypointData{Index: 0}
	second := &components.WaypointData{Index: 1}
	third := &components.WaypointData{Index: 2}

	if !advanceWaypoint(level, second) || level.ActiveWaypoint != 1 {
		t.Fatalf("skipping ahead: active = %d, want 1", level.ActiveWaypoint)
	}
	if advanceWaypoint(level, first) {
		t.Fatal("an earlier waypoint must not become active")
	}
	if advanceWaypoint(level, second) {
		t.Fatal("a reached waypoint must not fire twice")
	}
	if !advanceWaypoint(level, third) || level.ActiveWaypoint != 2 || !third.Reached {
		t.Fatalf("third: active = %d reached = %v", level.ActiveWaypoint, third.Reached)
	}
}
