package systems

import (
	"testing"

	"github.com/automoto/tovra/components"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// testSpace builds a 16px-grid space with a floor along y=64 and a wall
// at x=64.
func testSpace() (*resolv.Space, *resolv.Object) {
	space := resolv.NewSpace(256, 128, 16, 16)
	floor := resolv.NewObject(0, 64, 256, 16, dimension.SolidTag)
	wall := resolv.NewObject(64, 0, 16, 64, dimension.SolidTag)
	space.Add(floor, wall)

	player := resolv.NewObject(20, 44, 10, 20, tags.ResolvPlayer)
	space.Add(player)
	return space, player
}

func TestClampContact(t *testing.T) {
	tests := []struct {
		name          string
		move, contact float64
		want          float64
	}{
		{"short of contact", 2, 5, 2},
		{"stops at contact", 8, 3, 3},
		{"moving left", -8, -3, -3},
		{"already flush", 4, -1, 0},
		{"zero contact", 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampContact(tt.move, tt.contact); got != tt.want {
				t.Fatalf("clampContact(%v, %v) = %v, want %v", tt.move, tt.contact, got, tt.want)
			}
		})
	}
}

func TestResolveStopsAtSolids(t *testing.T) {
	_, player := testSpace()

	// Falling onto the floor lands flush.
	player.Y = 40
	player.Update()
	if blocked := resolveVertical(player, 10); !blocked || player.Y != 44 {
		t.Fatalf("vertical: blocked=%v y=%v, want true 44", blocked, player.Y)
	}
	player.Update()

	// Walking into the wall stops at its face; the floor underneath is
	// not in the way.
	if blocked := resolveHorizontal(player, 40); !blocked || player.X != 54 {
		t.Fatalf("horizontal: blocked=%v x=%v, want true 54", blocked, player.X)
	}
	player.Update()

	// Moving away is free.
	if blocked := resolveHorizontal(player, -5); blocked || player.X != 49 {
		t.Fatalf("retreat: blocked=%v x=%v, want false 49", blocked, player.X)
	}
}

func TestProbeContacts(t *testing.T) {
	_, player := testSpace()

	s := probeContacts(player)
	if !s.Down || s.Left || s.Right || s.Up {
		t.Fatalf("standing = %+v, want only Down", s)
	}

	player.X = 54
	player.Update()
	s = probeContacts(player)
	if !s.Down || !s.Right || s.Left {
		t.Fatalf("against wall = %+v, want Down and Right", s)
	}

	player.X, player.Y = 20, 10
	player.Update()
	if s := probeContacts(player); s.Touching() {
		t.Fatalf("mid air = %+v, want no contact", s)
	}
}

func TestHazardActive(t *testing.T) {
	world := donburi.NewWorld()
	newZone := func(side string) *resolv.Object {
		entry := world.Entry(world.Create(components.Hazard))
		components.Hazard.SetValue(entry, components.HazardData{World: side})
		zone := resolv.NewObject(0, 0, 16, 16, tags.ResolvDamage)
		zone.Data = entry
		return zone
	}

	tests := []struct {
		name  string
		zone  *resolv.Object
		world dimension.Side
		want  bool
	}{
		{"tov zone in tov", newZone("tov"), dimension.Tov, true},
		{"tov zone in ra", newZone("tov"), dimension.Ra, false},
		{"ra zone in ra", newZone("ra"), dimension.Ra, true},
		{"shared zone", newZone(""), dimension.Ra, true},
		{"unknown world hurts everywhere", newZone("lava"), dimension.Tov, true},
		{"no data", resolv.NewObject(0, 0, 16, 16, tags.ResolvDamage), dimension.Ra, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hazardActive(tt.zone, tt.world); got != tt.want {
				t.Fatalf("hazardActive = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInHazard(t *testing.T) {
	space, player := testSpace()
	world := donburi.NewWorld()
	entry := world.Entry(world.Create(components.Hazard))
	components.Hazard.SetValue(entry, components.HazardData{World: "ra"})
	zone := resolv.NewObject(16, 56, 32, 8, tags.ResolvDamage)
	zone.Data = entry
	space.Add(zone)

	if inHazard(player, dimension.Tov) {
		t.Fatal("ra zone should not hurt in tov")
	}
	if !inHazard(player, dimension.Ra) {
		t.Fatal("ra zone should hurt in ra")
	}

	player.X = 100
	player.Update()
	if inHazard(player, dimension.Ra) {
		t.Fatal("zone out of reach should not hurt")
	}
}

func TestFindNearestSafeGround(t *testing.T) {
	space, _ := testSpace()

	if !isPositionSafe(space, dimension.Tov, 20, 44, 10, 20) {
		t.Fatal("standing on the floor should be safe")
	}
	if isPositionSafe(space, dimension.Tov, 60, 44, 10, 20) {
		t.Fatal("inside the wall should not be safe")
	}

	x, y, found := findNearestSafeGround(space, dimension.Tov, 60, 44, 10, 20)
	if !found {
		t.Fatal("expected safe ground near the wall")
	}
	if !isPositionSafe(space, dimension.Tov, x, y, 10, 20) {
		t.Fatalf("found %v,%v is not safe", x, y)
	}
}
