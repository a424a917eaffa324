package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Title:      levelMap.Properties.GetString("title"),
		Music:      levelMap.Properties.GetString("music"),
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
	}

	for _, layer := range levelMap.Layers {
		var dst *[]Rect
		switch layer.Name {
		case LayerCommon:
			dst = &level.Common
		case LayerTov:
			dst = &level.Tov
		case LayerRa:
			dst = &level.Ra
		default:
			continue
		}
		*dst = append(*dst, tileRuns(levelMap, layer)...)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Spawn = &Point{X: o.X, Y: o.Y}
			}
		case GroupWaypoints:
			for _, o := range og.Objects {
				level.Waypoints = append(level.Waypoints, Waypoint{
					Rect:  Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Final: o.Properties.GetBool("final"),
				})
			}
		case GroupHazards:
			for _, o := range og.Objects {
				level.Hazards = append(level.Hazards, Hazard{
					Rect:  Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					World: strings.ToLower(o.Properties.GetString("world")),
				})
			}
		case GroupNarration:
			for _, o := range og.Objects {
				level.Narration = append(level.Narration, NarrationLine{
					Distance: o.Properties.GetFloat("distance"),
					Tov:      o.Properties.GetString("tov"),
					Ra:       o.Properties.GetString("ra"),
				})
			}
		}
	}

	// Waypoints are only ever reached left to right.
	sort.SliceStable(level.Waypoints, func(i, j int) bool {
		return level.Waypoints[i].X < level.Waypoints[j].X
	})
	sort.SliceStable(level.Narration, func(i, j int) bool {
		return level.Narration[i].Distance < level.Narration[j].Distance
	})

	return level, nil
}

// tileRuns merges each row's consecutive tiles into one rectangle.
func tileRuns(m *tiled.Map, layer *tiled.Layer) []Rect {
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)

	var rects []Rect
	for y := 0; y < m.Height; y++ {
		start := -1
		for x := 0; x <= m.Width; x++ {
			solid := x < m.Width && !layer.Tiles[y*m.Width+x].IsNil()
			if solid && start < 0 {
				start = x
			}
			if !solid && start >= 0 {
				rects = append(rects, Rect{
					X: float64(start) * tileW,
					Y: float64(y) * tileH,
					W: float64(x-start) * tileW,
					H: tileH,
				})
				start = -1
			}
		}
	}
	return rects
}

// LoadAllLevels loads every .tmx file in levelsDir, sorted by file name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]*Level, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]*Level, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// Validate lists the problems a level can be played around. None of them are
// fatal; the caller logs them and uses the fallbacks described in each.
func Validate(l *Level) []error {
	var warnings []error
	if l.Spawn == nil {
		if len(l.Waypoints) > 0 {
			warnings = append(warnings, fmt.Errorf("level %s: no %s object, spawning at the first waypoint", l.Name, GroupSpawn))
		} else {
			warnings = append(warnings, fmt.Errorf("level %s: no %s object, spawning at the map origin", l.Name, GroupSpawn))
		}
	}
	if len(l.Waypoints) == 0 {
		warnings = append(warnings, fmt.Errorf("level %s: no waypoints, respawning at the spawn point", l.Name))
	}
	final := false
	for _, w := range l.Waypoints {
		final = final || w.Final
	}
	if !final {
		warnings = append(warnings, fmt.Errorf("level %s: no final waypoint, the level cannot be completed", l.Name))
	}
	if len(l.Tov) == 0 {
		warnings = append(warnings, fmt.Errorf("level %s: %s layer is empty", l.Name, LayerTov))
	}
	if len(l.Ra) == 0 {
		warnings = append(warnings, fmt.Errorf("level %s: %s layer is empty", l.Name, LayerRa))
	}
	for i, h := range l.Hazards {
		if h.World != "" && h.World != "tov" && h.World != "ra" {
			warnings = append(warnings, fmt.Errorf("level %s: damage zone %d has unknown world %q, treating it as both", l.Name, i, h.World))
		}
	}
	for i, n := range l.Narration {
		if n.Tov == "" || n.Ra == "" {
			warnings = append(warnings, fmt.Errorf("level %s: narration line %d is missing text for a world", l.Name, i))
		}
	}
	return warnings
}

// ErrNoSpawn is returned by SpawnPoint when neither a spawn nor a waypoint
// exists.
var ErrNoSpawn = errors.New("leveldata: level has no spawn point")

// SpawnPoint returns the player's start, falling back to the first waypoint.
// The map origin is returned alongside ErrNoSpawn when neither exists.
func (l *Level) SpawnPoint() (Point, error) {
	if l.Spawn != nil {
		return *l.Spawn, nil
	}
	if len(l.Waypoints) > 0 {
		w := l.Waypoints[0]
		return Point{X: w.X, Y: w.Y}, nil
	}
	return Point{}, ErrNoSpawn
}
