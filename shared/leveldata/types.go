// Package leveldata parses TMX level files into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Tile layer names.
const (
	LayerCommon = "common-tiles"
	LayerTov    = "tov-tiles"
	LayerRa     = "ra-tiles"
)

// Object group names.
const (
	GroupSpawn     = "PlayerSpawn"
	GroupWaypoints = "Waypoints"
	GroupHazards   = "DamageZones"
	GroupNarration = "Narration"
)

// Level holds everything a scene needs to build one level.
type Level struct {
	Name       string
	Title      string
	Music      string
	Width      int // pixels
	Height     int // pixels
	TileWidth  int
	TileHeight int

	// Solid geometry, merged into horizontal runs of tiles.
	Common []Rect
	Tov    []Rect
	Ra     []Rect

	// Spawn is nil when the map has no PlayerSpawn object.
	Spawn     *Point
	Waypoints []Waypoint
	Hazards   []Hazard
	Narration []NarrationLine
}

// Rect is an axis-aligned box in pixels.
type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// Waypoint is a respawn anchor. Reaching the final one ends the level.
type Waypoint struct {
	Rect
	Final bool
}

// Hazard kills the player. World is "tov", "ra" or "" for both.
type Hazard struct {
	Rect
	World string
}

// NarrationLine is shown once the player has travelled Distance pixels to the
// right of the waypoint they last switched at. The text depends on the world.
type NarrationLine struct {
	Distance float64
	Tov      string
	Ra       string
}
