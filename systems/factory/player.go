package factory

import (
	"github.com/automoto/tovra/archetypes"
	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/shared/movement"
	"github.com/automoto/tovra/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64, world dimension.Side) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Player: movement.NewPlayer(math.Vec2{X: x, Y: y}, world),
	})
	addToSpace(ecs, obj)

	return player
}
