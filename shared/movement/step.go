package movement

import (
	stdmath "math"

	"github.com/automoto/tovra/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Input is the snapshot of one frame of player intent. Axes are in [-1, 1];
// Vertical is positive for up.
type Input struct {
	Horizontal float64
	Vertical   float64
	Jump       bool // held
	Dash       bool // held
	Switch     bool // pressed this frame
	Peek       bool // held
}

// Sensors are the contact probes around the player's collision box.
type Sensors struct {
	Down, Left, Right, Up bool
	// Hazard is set while the box overlaps an active damage region.
	Hazard bool
}

// Touching reports any contact. Walls and ceilings count as ground for
// jumping and dash re-arm.
func (s Sensors) Touching() bool {
	return s.Down || s.Left || s.Right || s.Up
}

// Events reports what happened during a step.
type Events struct {
	Jumped          bool
	WallKicked      bool
	DashStarted     bool
	DashEnded       bool
	Landed          bool
	Died            bool
	Respawned       bool
	SwitchRequested bool
	Running         bool
}

var diagonal = stdmath.Sin(stdmath.Pi / 4)

// Step advances p by dt seconds.
func Step(p Player, in Input, s Sensors, dt float64, t Tuning) (Player, Events) {
	var ev Events
	p.Clock += dt
	p.JumpLock = gamemath.Approach(p.JumpLock, dt)
	p.SwitchLock = gamemath.Approach(p.SwitchLock, dt)

	if p.State == Dead {
		stepDead(&p, &ev)
		return p, ev
	}

	if p.State == Dashing {
		stepDash(&p, s, dt, t, &ev)
	} else {
		if p.DashBurst {
			p.Velocity = math.Vec2{X: p.Dash.Heading.X * t.DashSpeed, Y: p.Dash.Heading.Y * t.DashSpeed}
			p.DashBurst = false
		}
		stepControl(&p, in, s, dt, t, &ev)
		if p.State != Dashing && in.Dash && p.CanDash() {
			startDash(&p, in, s, dt, t, &ev)
		}
	}

	// A dash only ends by finishing its distance. Hazards it touches on the
	// way are held until then.
	if p.State == Dashing {
		p.HazardPending = p.HazardPending || s.Hazard
	} else if s.Hazard || p.HazardPending {
		kill(&p, t, &ev)
		return p, ev
	}

	if in.Switch && p.SwitchLock <= 0 {
		ev.SwitchRequested = true
	}
	p.Peeking = in.Peek
	return p, ev
}

func stepControl(p *Player, in Input, s Sensors, dt float64, t Tuning, ev *Events) {
	wasGrounded := p.State == Grounded
	if s.Touching() {
		p.State = Grounded
	} else {
		p.State = Airborne
	}
	if !wasGrounded && p.State == Grounded && s.Down {
		ev.Landed = true
	}

	if in.Horizontal > 0 {
		p.Facing = Right
	} else if in.Horizontal < 0 {
		p.Facing = Left
	}

	if !p.DashArmed && p.State == Grounded && p.Clock >= p.DashCooldownUntil {
		p.DashArmed = true
	}

	p.Clinging = p.State == Grounded && !s.Down && p.JumpLock <= 0 &&
		((s.Right && in.Horizontal > 0) || (s.Left && in.Horizontal < 0) || (s.Up && in.Vertical > 0))
	if p.Clinging {
		p.Velocity = math.Vec2{}
		p.GravityScale = 0
	} else {
		p.GravityScale = 1
	}

	if in.Jump && p.State == Grounded && p.JumpLock <= 0 {
		jump(p, s, t, ev)
	}

	if !p.Clinging && p.JumpLock <= 0 {
		tau := t.AirSmoothing
		if p.State == Grounded {
			tau = t.GroundSmoothing
		}
		p.Velocity.X = gamemath.SmoothToward(p.Velocity.X, in.Horizontal*t.RunSpeed, tau, dt)
	}

	p.Velocity.Y += t.Gravity * p.GravityScale * dt
	if p.Velocity.Y > t.MaxFallSpeed {
		p.Velocity.Y = t.MaxFallSpeed
	}

	ev.Running = s.Down && stdmath.Abs(p.Velocity.X) > t.RunThreshold && in.Horizontal != 0
}

// jump picks the variant by which side is touching. The floor wins over walls;
// a wall kicks the player away from it at 45 degrees; a ceiling only lets go.
func jump(p *Player, s Sensors, t Tuning, ev *Events) {
	switch {
	case s.Down:
		p.Velocity.Y = -t.JumpImpulse
		ev.Jumped = true
	case s.Left:
		p.Velocity.X = t.WallKickImpulse * diagonal
		p.Velocity.Y = -t.WallKickImpulse * diagonal
		p.Facing = Right
		ev.WallKicked = true
	case s.Right:
		p.Velocity.X = -t.WallKickImpulse * diagonal
		p.Velocity.Y = -t.WallKickImpulse * diagonal
		p.Facing = Left
		ev.WallKicked = true
	}
	p.GravityScale = 1
	p.Clinging = false
	p.JumpLock = t.JumpCooldown
}

// heading is the normalized input direction in screen space, or the facing
// direction when there is no input.
func heading(in Input, f Facing) math.Vec2 {
	x, y, ok := gamemath.Normalize(in.Horizontal, -in.Vertical)
	if !ok {
		return math.Vec2{X: float64(f)}
	}
	return math.Vec2{X: x, Y: y}
}

func startDash(p *Player, in Input, s Sensors, dt float64, t Tuning, ev *Events) {
	p.State = Dashing
	p.DashArmed = false
	p.Clinging = false
	p.GravityScale = 1
	p.Dash = Dash{Heading: heading(in, p.Facing)}
	ev.DashStarted = true
	stepDash(p, s, dt, t, ev)
}

// stepDash advances along the heading at the rate that covers DashDistance in
// DashDuration. The velocity carries only this step's share of the distance,
// so the dash covers exactly DashDistance and a blocked dash does not build
// up speed. The burst velocity takes over on the step after it finishes.
func stepDash(p *Player, s Sensors, dt float64, t Tuning, ev *Events) {
	rate := 1.0
	if t.DashDuration > 0 {
		rate = dt / t.DashDuration
	}
	prev := p.Dash.Progress
	p.Dash.Progress = stdmath.Min(prev+rate, 1)

	share := (p.Dash.Progress - prev) * t.DashDistance / dt
	p.Velocity = math.Vec2{X: p.Dash.Heading.X * share, Y: p.Dash.Heading.Y * share}
	if p.Dash.Progress < 1 {
		return
	}

	p.DashBurst = true
	p.DashCooldownUntil = p.Clock + t.DashCooldown
	if s.Touching() {
		p.State = Grounded
	} else {
		p.State = Airborne
	}
	ev.DashEnded = true
}

func kill(p *Player, t Tuning, ev *Events) {
	p.State = Dead
	p.Deaths++
	p.RespawnAt = p.Clock + t.RespawnDelay
	p.Velocity = math.Vec2{}
	p.Dash = Dash{}
	p.DashBurst = false
	p.HazardPending = false
	p.Clinging = false
	p.Peeking = false
	ev.Died = true
}

func stepDead(p *Player, ev *Events) {
	p.Velocity = math.Vec2{}
	if p.Clock >= p.RespawnAt {
		p.respawn()
		ev.Respawned = true
	}
}
