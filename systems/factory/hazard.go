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

// CreateHazard creates a damage zone. It never carries a world tag so the
// switch check ignores it.
func CreateHazard(ecs *ecs.ECS, h leveldata.Hazard) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	obj := resolv.NewObject(h.X, h.Y, h.W, h.H, tags.ResolvDamage)
	obj.SetShape(resolv.NewRectangle(0, 0, h.W, h.H))
	obj.Data = hazard

	components.Object.SetValue(hazard, components.ObjectData{Object: obj})
	components.Hazard.SetValue(hazard, components.HazardData{World: h.World})
	addToSpace(ecs, obj)

	return hazard
}
