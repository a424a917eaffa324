package factory

import (
	"github.com/automoto/tovra/archetypes"
	"github.com/automoto/tovra/components"
	"github.com/automoto/tovra/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile creates a run of solid tiles. World tiles get their side and
// solid tags from their dimension.Layer; common tiles are tagged by the caller.
func CreateTile(ecs *ecs.ECS, r leveldata.Rect, resolvTags ...string) *donburi.Entry {
	tile := archetypes.Tile.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, resolvTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = tile // Link for O(1) lookup

	components.Object.SetValue(tile, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return tile
}
