package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="6" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="8" nextobjectid="10">
 <properties>
  <property name="title" value="Test Cave"/>
  <property name="music" value="audio/music/ambience.wav"/>
 </properties>
 <tileset firstgid="1" name="blocks" tilewidth="16" tileheight="16" tilecount="3" columns="3"/>
 <layer id="1" name="common-tiles" width="6" height="4">
  <data encoding="csv">
0,0,0,0,0,0,
0,0,0,0,0,0,
0,0,0,0,0,0,
1,1,1,0,1,1
</data>
 </layer>
 <layer id="2" name="tov-tiles" width="6" height="4">
  <data encoding="csv">
0,0,0,0,0,0,
0,0,0,0,0,0,
0,0,2,0,0,0,
0,0,0,0,0,0
</data>
 </layer>
 <layer id="3" name="ra-tiles" width="6" height="4">
  <data encoding="csv">
0,0,0,0,0,0,
0,3,3,0,0,0,
0,0,0,0,0,0,
0,0,0,3,0,0
</data>
 </layer>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="1" name="spawn" x="8" y="24">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Waypoints">
  <object id="3" name="end" x="80" y="16" width="16" height="32">
   <properties>
    <property name="final" type="bool" value="true"/>
   </properties>
  </object>
  <object id="2" name="start" x="0" y="16" width="16" height="32"/>
 </objectgroup>
 <objectgroup id="6" name="DamageZones">
  <object id="4" x="48" y="56" width="16" height="8">
   <properties>
    <property name="world" value="Tov"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="7" name="Narration">
  <object id="6" x="0" y="0">
   <properties>
    <property name="distance" type="float" value="64"/>
    <property name="ra" value="second below"/>
    <property name="tov" value="second above"/>
   </properties>
  </object>
  <object id="5" x="0" y="0">
   <properties>
    <property name="distance" type="float" value="16"/>
    <property name="ra" value="first below"/>
    <property name="tov" value="first above"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/level01.tmx": &fstest.MapFile{Data: []byte(testTMX)},
		"levels/level02.tmx": &fstest.MapFile{Data: []byte(testTMX)},
		"levels/readme.txt":  &fstest.MapFile{Data: []byte("not a level")},
	}
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/level01.tmx")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Name != "level01" || level.Title != "Test Cave" || level.Music != "audio/music/ambience.wav" {
		t.Fatalf("metadata = %q %q %q", level.Name, level.Title, level.Music)
	}
	if level.Width != 96 || level.Height != 64 {
		t.Fatalf("size = %dx%d, want 96x64", level.Width, level.Height)
	}

	wantCommon := []Rect{{X: 0, Y: 48, W: 48, H: 16}, {X: 64, Y: 48, W: 32, H: 16}}
	if len(level.Common) != len(wantCommon) {
		t.Fatalf("common = %+v, want %+v", level.Common, wantCommon)
	}
	for i := range wantCommon {
		if level.Common[i] != wantCommon[i] {
			t.Fatalf("common[%d] = %+v, want %+v", i, level.Common[i], wantCommon[i])
		}
	}
	if len(level.Tov) != 1 || level.Tov[0] != (Rect{X: 32, Y: 32, W: 16, H: 16}) {
		t.Fatalf("tov = %+v", level.Tov)
	}
	if len(level.Ra) != 2 || level.Ra[0] != (Rect{X: 16, Y: 16, W: 32, H: 16}) {
		t.Fatalf("ra = %+v", level.Ra)
	}

	if level.Spawn == nil || *level.Spawn != (Point{X: 8, Y: 24}) {
		t.Fatalf("spawn = %+v", level.Spawn)
	}
	if len(level.Waypoints) != 2 || level.Waypoints[0].X != 0 || level.Waypoints[0].Final || !level.Waypoints[1].Final {
		t.Fatalf("waypoints not sorted by x with final last: %+v", level.Waypoints)
	}
	if len(level.Hazards) != 1 || level.Hazards[0].World != "tov" {
		t.Fatalf("hazards = %+v", level.Hazards)
	}
	if len(level.Narration) != 2 || level.Narration[0].Distance != 16 || level.Narration[0].Tov != "first above" || level.Narration[1].Ra != "second below" {
		t.Fatalf("narration = %+v", level.Narration)
	}

	if warnings := Validate(level); len(warnings) != 0 {
		t.Fatalf("Validate = %v, want none", warnings)
	}
}

func TestLoadAllLevelsSorted(t *testing.T) {
	levels, err := LoadAllLevels(testFS(), "levels")
	if err != nil {
		t.Fatalf("LoadAllLevels: %v", err)
	}
	if len(levels) != 2 || levels[0].Name != "level01" || levels[1].Name != "level02" {
		t.Fatalf("levels = %d, names %v", len(levels), names(levels))
	}

	if _, err := LoadAllLevels(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected error for empty directory")
	}
}

func TestLoadLevelMissingFile(t *testing.T) {
	if _, err := LoadLevel(testFS(), "levels/missing.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateWarnings(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  []string
	}{
		{
			name:  "empty level",
			level: Level{Name: "empty"},
			want:  []string{"spawning at the map origin", "no waypoints", "no final waypoint", "tov-tiles layer is empty", "ra-tiles layer is empty"},
		},
		{
			name: "spawn from waypoint",
			level: Level{
				Name:      "nospawn",
				Tov:       []Rect{{W: 16, H: 16}},
				Ra:        []Rect{{W: 16, H: 16}},
				Waypoints: []Waypoint{{Rect: Rect{X: 4}, Final: true}},
			},
			want: []string{"spawning at the first waypoint"},
		},
		{
			name: "bad hazard and narration",
			level: Level{
				Name:      "bad",
				Spawn:     &Point{},
				Tov:       []Rect{{W: 16, H: 16}},
				Ra:        []Rect{{W: 16, H: 16}},
				Waypoints: []Waypoint{{Final: true}},
				Hazards:   []Hazard{{World: "lava"}},
				Narration: []NarrationLine{{Distance: 1, Tov: "only tov"}},
			},
			want: []string{"unknown world", "missing text"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := Validate(&tt.level)
			if len(warnings) != len(tt.want) {
				t.Fatalf("Validate = %v, want %d warnings", warnings, len(tt.want))
			}
			for i, w := range tt.want {
				if !strings.Contains(warnings[i].Error(), w) {
					t.Fatalf("warning %d = %q, want it to mention %q", i, warnings[i], w)
				}
			}
		})
	}
}

func TestSpawnPointFallbacks(t *testing.T) {
	l := &Level{Waypoints: []Waypoint{{Rect: Rect{X: 40, Y: 8}}}}
	p, err := l.SpawnPoint()
	if err != nil || p != (Point{X: 40, Y: 8}) {
		t.Fatalf("SpawnPoint = %+v, %v", p, err)
	}

	empty := &Level{}
	if _, err := empty.SpawnPoint(); err != ErrNoSpawn {
		t.Fatalf("SpawnPoint err = %v, want ErrNoSpawn", err)
	}
}

func names(levels []*Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.Name
	}
	return out
}
