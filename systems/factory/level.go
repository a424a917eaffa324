package factory

import (
	"fmt"

	"github.com/automoto/tovra/archetypes"
	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/shared/leveldata"
	"github.com/automoto/tovra/shared/session"
	"github.com/automoto/tovra/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelSetup is what a scene needs to build one level.
type LevelSetup struct {
	Level      *leveldata.Level
	Index      int
	Count      int
	Session    *session.Session
	Feedback   dimension.Feedback
	StartWorld dimension.Side
}

// CreateLevel builds the collision space, both world layers, hazards,
// waypoints and the player. The level entry is returned.
func CreateLevel(ecs *ecs.ECS, setup LevelSetup) (*donburi.Entry, error) {
	level := setup.Level
	if level == nil {
		return nil, fmt.Errorf("create level %d: no level data", setup.Index)
	}

	tileW, tileH := level.TileWidth, level.TileHeight
	if tileW <= 0 || tileH <= 0 {
		tileW, tileH = cfg.World.TileSize, cfg.World.TileSize
	}
	CreateSpace(ecs, level.Width, level.Height, tileW, tileH)

	for _, r := range level.Common {
		CreateTile(ecs, r, tags.ResolvCommon, dimension.SolidTag)
	}
	tov := dimension.NewLayer(dimension.Tov, createRegions(ecs, level.Tov)...)
	ra := dimension.NewLayer(dimension.Ra, createRegions(ecs, level.Ra)...)

	pair, err := dimension.NewPair(tov, ra, setup.StartWorld)
	if err != nil {
		return nil, fmt.Errorf("create level %s: %w", level.Name, err)
	}

	var counter dimension.Counter
	if setup.Session != nil {
		counter = setup.Session
	}
	validator, err := dimension.NewValidator(pair, counter, setup.Feedback)
	if err != nil {
		return nil, fmt.Errorf("create level %s: %w", level.Name, err)
	}

	for _, h := range level.Hazards {
		CreateHazard(ecs, h)
	}
	for i, w := range level.Waypoints {
		CreateWaypoint(ecs, i, w)
	}

	spawn, err := level.SpawnPoint()
	if err != nil {
		// Validate already warned about this; the origin is the fallback.
		spawn = leveldata.Point{}
	}
	CreatePlayer(ecs, spawn.X, spawn.Y, setup.StartWorld)
	CreateCamera(ecs, spawn.X, spawn.Y)

	sessionEntry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(sessionEntry, components.SessionData{Session: setup.Session})

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel:   level,
		LevelIndex:     setup.Index,
		LevelCount:     setup.Count,
		ActiveWaypoint: -1,
	})
	components.Worlds.SetValue(entry, components.WorldsData{
		Pair:      pair,
		Validator: validator,
	})
	components.Evolution.SetValue(entry, components.EvolutionData{
		Origin: spawn.X,
	})
	components.Narration.SetValue(entry, components.NarrationData{
		Lines:  level.Narration,
		Fired:  make([]bool, len(level.Narration)),
		Active: -1,
	})

	return entry, nil
}

func createRegions(ecs *ecs.ECS, rects []leveldata.Rect) []*resolv.Object {
	objs := make([]*resolv.Object, 0, len(rects))
	for _, r := range rects {
		tile := CreateTile(ecs, r)
		objs = append(objs, components.Object.Get(tile).Object)
	}
	return objs
}
