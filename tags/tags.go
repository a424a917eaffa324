package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Tile     = donburi.NewTag().SetName("Tile")
	Hazard   = donburi.NewTag().SetName("Hazard")
	Waypoint = donburi.NewTag().SetName("Waypoint")
)

// Resolv tags for physics collision. The world tags come from
// dimension.Side.Tag and the solid tag from dimension.SolidTag.
const (
	ResolvPlayer   = "player"
	ResolvCommon   = "common"
	ResolvDamage   = "damage"
	ResolvWaypoint = "waypoint"
)
