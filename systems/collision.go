package systems

import (
	"math"

	"github.com/automoto/tovra/components"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/shared/movement"
	"github.com/automoto/tovra/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves the player by the velocity the step produced,
// stopping at active solids, and writes the position back.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := frameTime()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)
		if player.IsDead() {
			return
		}

		if blockedX := resolveHorizontal(obj.Object, player.Velocity.X*dt); blockedX && !player.IsDashing() {
			player.Velocity.X = 0
		}
		if blockedY := resolveVertical(obj.Object, player.Velocity.Y*dt); blockedY && !player.IsDashing() {
			player.Velocity.Y = 0
		}

		player.Position.X = obj.X
		player.Position.Y = obj.Y
	})
}

// resolveHorizontal moves obj by dx or up to the nearest solid in the way.
// It reports whether a solid stopped the move.
func resolveHorizontal(obj *resolv.Object, dx float64) bool {
	if dx == 0 {
		return false
	}

	check := obj.Check(dx, 0, dimension.SolidTag)
	if check == nil {
		obj.X += dx
		return false
	}

	dest := dimension.Rect{X: obj.X + dx, Y: obj.Y, W: obj.W, H: obj.H}
	blocked := false
	for _, solid := range check.ObjectsByTags(dimension.SolidTag) {
		if !dest.Overlaps(dimension.RectOf(solid)) {
			continue
		}
		dx = clampContact(dx, check.ContactWithObject(solid).X())
		blocked = true
	}

	obj.X += dx
	return blocked
}

// resolveVertical moves obj by dy or up to the nearest floor or ceiling.
func resolveVertical(obj *resolv.Object, dy float64) bool {
	if dy == 0 {
		return false
	}

	check := obj.Check(0, dy, dimension.SolidTag)
	if check == nil {
		obj.Y += dy
		return false
	}

	dest := dimension.Rect{X: obj.X, Y: obj.Y + dy, W: obj.W, H: obj.H}
	blocked := false
	for _, solid := range check.ObjectsByTags(dimension.SolidTag) {
		if !dest.Overlaps(dimension.RectOf(solid)) {
			continue
		}
		dy = clampContact(dy, check.ContactWithObject(solid).Y())
		blocked = true
	}

	obj.Y += dy
	return blocked
}

// clampContact shortens a move to the contact distance. A contact pointing
// backwards means the box is already flush, so it does not move at all.
func clampContact(move, contact float64) float64 {
	if contact*move < 0 {
		return 0
	}
	if math.Abs(contact) < math.Abs(move) {
		return contact
	}
	return move
}

// contactEpsilon is how far the probes look for a touching solid.
const contactEpsilon = 1.0

// probeContacts reports which sides of obj touch an active solid.
func probeContacts(obj *resolv.Object) movement.Sensors {
	var s movement.Sensors
	s.Down = touching(obj, 0, contactEpsilon)
	s.Up = touching(obj, 0, -contactEpsilon)
	s.Left = touching(obj, -contactEpsilon, 0)
	s.Right = touching(obj, contactEpsilon, 0)
	return s
}

// touching reports an active solid within the probe offset. The box itself
// is assumed clear, so only solids on the probed side can match.
func touching(obj *resolv.Object, dx, dy float64) bool {
	check := obj.Check(dx, dy, dimension.SolidTag)
	if check == nil {
		return false
	}
	moved := dimension.Rect{X: obj.X + dx, Y: obj.Y + dy, W: obj.W, H: obj.H}
	for _, solid := range check.ObjectsByTags(dimension.SolidTag) {
		if moved.Overlaps(dimension.RectOf(solid)) {
			return true
		}
	}
	return false
}

// inHazard reports whether obj overlaps a damage zone of world.
func inHazard(obj *resolv.Object, world dimension.Side) bool {
	check := obj.Check(0, 0, tags.ResolvDamage)
	if check == nil {
		return false
	}
	box := dimension.RectOf(obj)
	for _, zone := range check.ObjectsByTags(tags.ResolvDamage) {
		if !box.Overlaps(dimension.RectOf(zone)) {
			continue
		}
		if hazardActive(zone, world) {
			return true
		}
	}
	return false
}

// hazardActive reports whether a damage zone hurts in world. Zones tagged
// with an unknown world hurt in both.
func hazardActive(zone *resolv.Object, world dimension.Side) bool {
	entry, ok := zone.Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.HasComponent(components.Hazard) {
		return true
	}
	side, known := dimension.ParseSide(components.Hazard.Get(entry).World)
	return !known || side == world
}
