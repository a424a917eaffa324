package systems

import (
	"github.com/automoto/tovra/components"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// placeAtSpawn moves the player's box to its spawn after a respawn. When the
// spawn is blocked in the current world (the player switched since the
// waypoint was reached) the nearest safe ground is used instead.
func placeAtSpawn(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)

	spawnX, spawnY := player.Spawn.X, player.Spawn.Y
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry).Space
		if !isPositionSafe(space, player.World, spawnX, spawnY, obj.W, obj.H) {
			if x, y, found := findNearestSafeGround(space, player.World, spawnX, spawnY, obj.W, obj.H); found {
				spawnX, spawnY = x, y
			}
		}
	}

	obj.X = spawnX
	obj.Y = spawnY
	obj.Update()
	player.Position = math.Vec2{X: spawnX, Y: spawnY}
}

// isPositionSafe reports whether a box at x,y is clear of active solids and
// hazards and stands on something.
func isPositionSafe(space *resolv.Space, world dimension.Side, x, y, w, h float64) bool {
	tempObj := resolv.NewObject(x, y, w, h)
	space.Add(tempObj)
	defer space.Remove(tempObj)

	return safeAt(tempObj, world)
}

func safeAt(obj *resolv.Object, world dimension.Side) bool {
	if inHazard(obj, world) {
		return false
	}
	box := dimension.RectOf(obj)
	if check := obj.Check(0, 0, dimension.SolidTag); check != nil {
		for _, solid := range check.ObjectsByTags(dimension.SolidTag) {
			if box.Overlaps(dimension.RectOf(solid)) {
				return false
			}
		}
	}
	return probeContacts(obj).Down
}

func findNearestSafeGround(space *resolv.Space, world dimension.Side, startX, startY, w, h float64) (x, y float64, found bool) {
	const searchStep = 16.0
	const maxSearchDist = 256.0

	// Reuse a single object for all checks to avoid allocations
	tempObj := resolv.NewObject(startX, startY, w, h)
	space.Add(tempObj)
	defer space.Remove(tempObj)

	checkSafe := func(checkX, checkY float64) bool {
		tempObj.X = checkX
		tempObj.Y = checkY
		return safeAt(tempObj, world)
	}

	// Search outwards, behind the spawn first so the player does not skip ahead.
	for dist := 0.0; dist <= maxSearchDist; dist += searchStep {
		for _, dir := range []float64{-1, 1} {
			checkX := startX + dist*dir
			for checkY := startY - 64; checkY <= startY+128; checkY += 4 {
				if checkSafe(checkX, checkY) {
					return checkX, checkY, true
				}
			}
		}
	}

	return 0, 0, false
}

