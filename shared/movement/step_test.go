package movement

import (
	stdmath "math"
	"testing"

	"github.com/automoto/tovra/shared/dimension"
	"github.com/automoto/tovra/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60

func testTuning() Tuning {
	return Tuning{
		RunSpeed:        150,
		GroundSmoothing: 0.05,
		AirSmoothing:    0.2,
		JumpImpulse:     330,
		WallKickImpulse: 360,
		JumpCooldown:    0.1,
		Gravity:         900,
		MaxFallSpeed:    480,
		DashDistance:    64,
		DashDuration:    0.1,
		DashSpeed:       260,
		DashCooldown:    0.5,
		SwitchCooldown:  1,
		RespawnDelay:    0.75,
		RunThreshold:    10,
	}
}

var ground = Sensors{Down: true}

func TestStepGroundedAirborneTransitions(t *testing.T) {
	tn := testTuning()
	p := NewPlayer(math.Vec2{X: 10, Y: 10}, dimension.Tov)

	p, _ = Step(p, Input{}, Sensors{}, dt, tn)
	if p.State != Airborne {
		t.Fatalf("state without contact = %s, want airborne", p.State)
	}

	p, ev := Step(p, Input{}, ground, dt, tn)
	if p.State != Grounded || !p.Grounded() {
		t.Fatalf("state on ground = %s, want grounded", p.State)
	}
	if !ev.Landed {
		t.Fatal("landing not reported")
	}
}

func TestJumpOnlyWhenGrounded(t *testing.T) {
	tn := testTuning()

	p := NewPlayer(math.Vec2{}, dimension.Tov)
	p.State = Airborne
	p, ev := Step(p, Input{Jump: true}, Sensors{}, dt, tn)
	if ev.Jumped || ev.WallKicked {
		t.Fatal("jumped in the air")
	}

	p = NewPlayer(math.Vec2{}, dimension.Tov)
	p, ev = Step(p, Input{Jump: true}, ground, dt, tn)
	if !ev.Jumped {
		t.Fatal("grounded jump not reported")
	}
	if p.Velocity.Y >= 0 {
		t.Fatalf("velocity after jump = %v, want upward", p.Velocity.Y)
	}

	// The jump lock keeps a held button from firing again on the next frame.
	_, ev = Step(p, Input{Jump: true}, ground, dt, tn)
	if ev.Jumped {
		t.Fatal("jump fired again inside the jump cooldown")
	}
}

func TestWallKickDirection(t *testing.T) {
	tn := testTuning()
	tests := []struct {
		name    string
		sensors Sensors
		wantX   float64 // sign of horizontal velocity
		facing  Facing
	}{
		{"left wall kicks right", Sensors{Left: true}, 1, Right},
		{"right wall kicks left", Sensors{Right: true}, -1, Left},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(math.Vec2{}, dimension.Tov)
			p, ev := Step(p, Input{Jump: true}, tt.sensors, dt, tn)
			if !ev.WallKicked {
				t.Fatal("wall kick not reported")
			}
			if stdmath.Copysign(1, p.Velocity.X) != tt.wantX || p.Velocity.X == 0 {
				t.Fatalf("vx = %v, want sign %v", p.Velocity.X, tt.wantX)
			}
			if p.Velocity.Y >= 0 {
				t.Fatalf("vy = %v, want upward", p.Velocity.Y)
			}
			if stdmath.Abs(stdmath.Abs(p.Velocity.X)-tn.WallKickImpulse*diagonal) > 1e-9 {
				t.Fatalf("|vx| = %v, want 45 degree share of the impulse", p.Velocity.X)
			}
			if p.Facing != tt.facing {
				t.Fatalf("facing = %v, want %v", p.Facing, tt.facing)
			}
		})
	}
}

func TestFloorJumpWinsOverWall(t *testing.T) {
	p := NewPlayer(math.Vec2{}, dimension.Tov)
	p, ev := Step(p, Input{Jump: true}, Sensors{Down: true, Left: true}, dt, testTuning())
	if !ev.Jumped || ev.WallKicked {
		t.Fatalf("events = %+v, want a vertical jump", ev)
	}
	if p.Velocity.X != 0 {
		t.Fatalf("vx = %v, want 0", p.Velocity.X)
	}
}

func TestWallClingAndCeilingRelease(t *testing.T) {
	tn := testTuning()
	p := NewPlayer(math.Vec2{}, dimension.Tov)
	p.Velocity = math.Vec2{X: 20, Y: 100}

	p, _ = Step(p, Input{Horizontal: 1}, Sensors{Right: true}, dt, tn)
	if !p.Clinging || p.GravityScale != 0 {
		t.Fatalf("clinging=%v gravity=%v, want cling", p.Clinging, p.GravityScale)
	}
	if p.Velocity != (math.Vec2{}) {
		t.Fatalf("velocity while clinging = %+v, want zero", p.Velocity)
	}

	ceiling := Sensors{Up: true}
	p, _ = Step(p, Input{Vertical: 1}, ceiling, dt, tn)
	if !p.Clinging {
		t.Fatal("not clinging to ceiling")
	}
	p, _ = Step(p, Input{Vertical: 1, Jump: true}, ceiling, dt, tn)
	if p.Clinging || p.GravityScale != 1 {
		t.Fatalf("ceiling jump left clinging=%v gravity=%v", p.Clinging, p.GravityScale)
	}
	if p.Velocity.Y <= 0 {
		t.Fatalf("vy after letting go = %v, want falling", p.Velocity.Y)
	}
}

func TestHorizontalSmoothingGroundVsAir(t *testing.T) {
	tn := testTuning()

	g := NewPlayer(math.Vec2{}, dimension.Tov)
	a := NewPlayer(math.Vec2{}, dimension.Tov)
	a.State = Airborne
	for i := 0; i < 6; i++ {
		g, _ = Step(g, Input{Horizontal: 1}, ground, dt, tn)
		a, _ = Step(a, Input{Horizontal: 1}, Sensors{}, dt, tn)
	}
	if g.Velocity.X <= a.Velocity.X {
		t.Fatalf("ground vx %v not faster than air vx %v", g.Velocity.X, a.Velocity.X)
	}
	if g.Velocity.X >= tn.RunSpeed {
		t.Fatalf("ground vx %v overshot run speed", g.Velocity.X)
	}

	for i := 0; i < 120; i++ {
		g, _ = Step(g, Input{Horizontal: 1}, ground, dt, tn)
	}
	if stdmath.Abs(g.Velocity.X-tn.RunSpeed) > 0.01 {
		t.Fatalf("ground vx %v did not converge to %v", g.Velocity.X, tn.RunSpeed)
	}
}

// dashUntilDone steps with held dash input until the dash ends.
func dashUntilDone(t *testing.T, p Player, in Input, s Sensors, tn Tuning) (Player, int) {
	t.Helper()
	for i := 1; i < 100; i++ {
		var ev Events
		p, ev = Step(p, in, s, dt, tn)
		if ev.DashEnded {
			return p, i
		}
		if !p.IsDashing() {
			t.Fatalf("dash interrupted at step %d, state %s", i, p.State)
		}
	}
	t.Fatal("dash never ended")
	return p, 0
}

func TestDashCoversDistanceThenBursts(t *testing.T) {
	tn := testTuning()
	p := NewPlayer(math.Vec2{}, dimension.Tov)
	in := Input{Dash: true, Horizontal: 1}

	p, ev := Step(p, in, ground, dt, tn)
	if !ev.DashStarted || !p.IsDashing() {
		t.Fatalf("dash did not start: %+v state %s", ev, p.State)
	}
	if p.Velocity.Y != 0 {
		t.Fatalf("horizontal dash has vy = %v", p.Velocity.Y)
	}

	travelled := p.Velocity.X * dt
	steps := 0
	for !ev.DashEnded {
		steps++
		if steps > 100 {
			t.Fatal("dash never ended")
		}
		p, ev = Step(p, in, ground, dt, tn)
		travelled += p.Velocity.X * dt
	}
	wantSteps := int(stdmath.Ceil(tn.DashDuration/dt)) - 1
	if steps < wantSteps-1 || steps > wantSteps+1 {
		t.Fatalf("dash took %d more steps, want about %d", steps, wantSteps)
	}
	if stdmath.Abs(travelled-tn.DashDistance) > 1e-9 {
		t.Fatalf("dash travelled %v, want %v", travelled, tn.DashDistance)
	}
	if p.IsDashing() || !p.DashBurst {
		t.Fatalf("after the interval: state %s burst %v", p.State, p.DashBurst)
	}
	if p.DashCooldownUntil != p.Clock+tn.DashCooldown {
		t.Fatalf("cooldown until %v, want %v", p.DashCooldownUntil, p.Clock+tn.DashCooldown)
	}

	p, _ = Step(p, Input{Horizontal: 1}, ground, dt, tn)
	want := gamemath.SmoothToward(tn.DashSpeed, tn.RunSpeed, tn.GroundSmoothing, dt)
	if stdmath.Abs(p.Velocity.X-want) > 1e-9 || p.DashBurst {
		t.Fatalf("vx after burst = %v (burst %v), want %v", p.Velocity.X, p.DashBurst, want)
	}
}

func TestDashHeading(t *testing.T) {
	tests := []struct {
		name   string
		in     Input
		facing Facing
		want   math.Vec2
	}{
		{"no input uses facing right", Input{}, Right, math.Vec2{X: 1}},
		{"no input uses facing left", Input{}, Left, math.Vec2{X: -1}},
		{"up is negative y", Input{Vertical: 1}, Right, math.Vec2{Y: -1}},
		{"down right", Input{Horizontal: 1, Vertical: -1}, Left, math.Vec2{X: diagonal, Y: diagonal}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heading(tt.in, tt.facing)
			if stdmath.Abs(got.X-tt.want.X) > 1e-9 || stdmath.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Fatalf("heading = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDashCannotRetriggerBeforeCooldown(t *testing.T) {
	tn := testTuning()
	p := NewPlayer(math.Vec2{}, dimension.Tov)
	in := Input{Dash: true, Horizontal: 1}

	p, _ = Step(p, in, ground, dt, tn)
	p, _ = dashUntilDone(t, p, in, ground, tn)
	until := p.DashCooldownUntil

	restarted := false
	for i := 0; i < 120; i++ {
		var ev Events
		p, ev = Step(p, in, ground, dt, tn)
		if ev.DashStarted {
			if p.Clock < until {
				t.Fatalf("dash restarted at %v before cooldown %v", p.Clock, until)
			}
			restarted = true
			break
		}
	}
	if !restarted {
		t.Fatal("dash never re-armed on the ground after the cooldown")
	}
}

func TestDashRearmsOnlyWhenGrounded(t *testing.T) {
	tn := testTuning()
	p := NewPlayer(math.Vec2{}, dimension.Tov)
	in := Input{Dash: true, Horizontal: 1}

	p, _ = Step(p, in, ground, dt, tn)
	p, _ = dashUntilDone(t, p, in, Sensors{}, tn)

	for i := 0; i < 120; i++ {
		var ev Events
		p, ev = Step(p, in, Sensors{}, dt, tn)
		if ev.DashStarted {
			t.Fatalf("dash re-armed in the air at step %d", i)
		}
	}
	if p.Clock < p.DashCooldownUntil {
		t.Fatal("cooldown did not elapse during the test")
	}

	_, ev := Step(p, in, ground, dt, tn)
	if !ev.DashStarted {
		t.Fatal("dash did not start after landing")
	}
}

func TestHazardKillsAndRespawns(t *testing.T) {
	tn := testTuning()
	spawn := math.Vec2{X: 32, Y: 48}
	p := NewPlayer(spawn, dimension.Ra)
	p.Position = math.Vec2{X: 200, Y: 90}
	p.Velocity = math.Vec2{X: 100, Y: 50}

	p, ev := Step(p, Input{Horizontal: 1}, Sensors{Hazard: true}, dt, tn)
	if !ev.Died || p.State != Dead {
		t.Fatalf("state %s events %+v, want dead", p.State, ev)
	}
	if p.Deaths != 1 {
		t.Fatalf("deaths = %d, want 1", p.Deaths)
	}

	// Staying in the hazard while dead does not count again.
	diedAt := p.Clock
	var respawned bool
	for i := 0; i < 120 && !respawned; i++ {
		p, ev = Step(p, Input{Jump: true, Dash: true}, Sensors{Hazard: true}, dt, tn)
		if ev.Died {
			t.Fatal("died twice")
		}
		if ev.Respawned {
			respawned = true
			if p.Clock-diedAt < tn.RespawnDelay-1e-9 {
				t.Fatalf("respawned after %v, want %v", p.Clock-diedAt, tn.RespawnDelay)
			}
		} else if p.Velocity != (math.Vec2{}) {
			t.Fatalf("dead player moving: %+v", p.Velocity)
		}
	}
	if !respawned {
		t.Fatal("never respawned")
	}
	if p.Deaths != 1 {
		t.Fatalf("deaths after respawn = %d, want 1", p.Deaths)
	}
	if p.Position != spawn || p.State != Grounded {
		t.Fatalf("respawn at %+v state %s, want %+v grounded", p.Position, p.State, spawn)
	}
	if p.World != dimension.Ra {
		t.Fatalf("respawn changed world to %s", p.World)
	}
}

func TestHazardWaitsForDashToFinish(t *testing.T) {
	tn := testTuning()
	p := NewPlayer(math.Vec2{}, dimension.Tov)
	in := Input{Dash: true, Horizontal: 1}

	p, _ = Step(p, in, ground, dt, tn)
	p, ev := Step(p, in, Sensors{Down: true, Hazard: true}, dt, tn)
	if ev.Died || !p.IsDashing() {
		t.Fatalf("dash interrupted by hazard: state %s", p.State)
	}
	for i := 0; i < 100 && !p.IsDead(); i++ {
		p, ev = Step(p, in, Sensors{Down: true, Hazard: true}, dt, tn)
		if ev.Died && !ev.DashEnded {
			t.Fatal("death reported without the dash finishing")
		}
	}
	if !p.IsDead() {
		t.Fatal("hazard never applied after the dash")
	}
}

func TestHazardTouchedMidDashStillKills(t *testing.T) {
	tn := testTuning()
	p := NewPlayer(math.Vec2{}, dimension.Tov)
	in := Input{Dash: true, Horizontal: 1}

	p, _ = Step(p, in, ground, dt, tn)
	p, ev := Step(p, in, Sensors{Down: true, Hazard: true}, dt, tn)
	if ev.Died || !p.IsDashing() || !p.HazardPending {
		t.Fatalf("state %s pending %v died %v, want dash to continue with the hit held", p.State, p.HazardPending, ev.Died)
	}

	deaths := 0
	for i := 0; i < 100 && !p.IsDead(); i++ {
		p, ev = Step(p, in, ground, dt, tn)
		if ev.Died {
			deaths++
			if !ev.DashEnded {
				t.Fatal("death reported before the dash finished")
			}
		}
	}
	if !p.IsDead() || deaths != 1 || p.Deaths != 1 {
		t.Fatalf("state %s deaths %d/%d, want one death after leaving the region mid-dash", p.State, deaths, p.Deaths)
	}
	if p.HazardPending || p.DashBurst {
		t.Fatalf("kill left pending %v burst %v", p.HazardPending, p.DashBurst)
	}
}

func TestSwitchRequestRespectsCooldown(t *testing.T) {
	tn := testTuning()
	p := NewPlayer(math.Vec2{}, dimension.Tov)

	p, ev := Step(p, Input{Switch: true}, ground, dt, tn)
	if !ev.SwitchRequested {
		t.Fatal("switch not requested")
	}
	p.EnterWorld(dimension.Ra, tn)
	if p.World != dimension.Ra {
		t.Fatalf("world = %s, want ra", p.World)
	}

	p, ev = Step(p, Input{Switch: true}, ground, dt, tn)
	if ev.SwitchRequested {
		t.Fatal("switch requested inside the switch cooldown")
	}

	for i := 0; i < 70; i++ {
		p, _ = Step(p, Input{}, ground, dt, tn)
	}
	_, ev = Step(p, Input{Switch: true}, ground, dt, tn)
	if !ev.SwitchRequested {
		t.Fatal("switch not requested after the cooldown")
	}

	dead := NewPlayer(math.Vec2{}, dimension.Tov)
	dead.State = Dead
	dead.RespawnAt = 10
	if _, ev := Step(dead, Input{Switch: true}, ground, dt, tn); ev.SwitchRequested {
		t.Fatal("dead player requested a switch")
	}
}

func TestPeekIsCosmetic(t *testing.T) {
	tn := testTuning()
	a := NewPlayer(math.Vec2{}, dimension.Tov)
	b := a

	a, _ = Step(a, Input{Horizontal: 1, Peek: true}, ground, dt, tn)
	b, _ = Step(b, Input{Horizontal: 1}, ground, dt, tn)
	if !a.Peeking || b.Peeking {
		t.Fatalf("peeking a=%v b=%v", a.Peeking, b.Peeking)
	}
	a.Peeking = false
	if a != b {
		t.Fatalf("peek changed the simulation: %+v vs %+v", a, b)
	}
}
