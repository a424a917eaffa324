// Package movement is the player state machine. It is a pure fixed-timestep
// function over a value Player, an input snapshot and contact sensors; the
// ECS systems own collision and apply the velocities it produces.
package movement

import (
	"github.com/automoto/tovra/shared/dimension"
	"github.com/yohamta/donburi/features/math"
)

// State of the player.
type State int

const (
	Grounded State = iota
	Airborne
	Dashing
	Dead
)

func (s State) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Airborne:
		return "airborne"
	case Dashing:
		return "dashing"
	case Dead:
		return "dead"
	}
	return "unknown"
}

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	Right Facing = 1
	Left  Facing = -1
)

// Dash is the active dash interval. It is only meaningful while the player
// is in the Dashing state.
type Dash struct {
	Heading  math.Vec2
	Progress float64 // 0..1 of the dash distance
}

// Tuning holds the movement constants. Speeds are in pixels per second,
// times in seconds.
type Tuning struct {
	RunSpeed        float64 `yaml:"run_speed"`
	GroundSmoothing float64 `yaml:"ground_smoothing"`
	AirSmoothing    float64 `yaml:"air_smoothing"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	WallKickImpulse float64 `yaml:"wall_kick_impulse"`
	JumpCooldown    float64 `yaml:"jump_cooldown"`
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	DashDistance    float64 `yaml:"dash_distance"`
	DashDuration    float64 `yaml:"dash_duration"`
	DashSpeed       float64 `yaml:"dash_speed"`
	DashCooldown    float64 `yaml:"dash_cooldown"`
	SwitchCooldown  float64 `yaml:"switch_cooldown"`
	RespawnDelay    float64 `yaml:"respawn_delay"`
	RunThreshold    float64 `yaml:"run_threshold"`
}

// Player is the simulated player. Step takes and returns it by value.
type Player struct {
	Position math.Vec2
	Velocity math.Vec2
	Facing   Facing
	State    State
	World    dimension.Side
	Peeking  bool

	Dash              Dash
	DashArmed         bool
	DashCooldownUntil float64
	// DashBurst is set on the step a dash finishes; the next step starts
	// from heading*DashSpeed.
	DashBurst bool
	// HazardPending records a damage region touched mid-dash. It is applied
	// once the dash ends.
	HazardPending bool

	Deaths    int
	Spawn     math.Vec2
	RespawnAt float64

	// GravityScale is 0 while clinging to a wall or ceiling.
	GravityScale float64
	JumpLock     float64
	SwitchLock   float64
	Clinging     bool

	// Clock is the simulated time in seconds since the player was created.
	Clock float64
}

// NewPlayer places a fresh player at spawn in world.
func NewPlayer(spawn math.Vec2, world dimension.Side) Player {
	return Player{
		Position:     spawn,
		Facing:       Right,
		State:        Grounded,
		World:        world,
		DashArmed:    true,
		Spawn:        spawn,
		GravityScale: 1,
	}
}

func (p Player) Grounded() bool  { return p.State == Grounded }
func (p Player) IsDashing() bool { return p.State == Dashing }
func (p Player) IsDead() bool    { return p.State == Dead }

// CanDash reports whether a dash would start on the next step.
func (p Player) CanDash() bool {
	return p.DashArmed && p.State != Dead && p.State != Dashing && p.Clock >= p.DashCooldownUntil
}

// EnterWorld records a granted switch.
func (p *Player) EnterWorld(side dimension.Side, t Tuning) {
	p.World = side
	p.SwitchLock = t.SwitchCooldown
}

// respawn resets everything a life owns. Deaths and world survive.
func (p *Player) respawn() {
	p.Position = p.Spawn
	p.Velocity = math.Vec2{}
	p.State = Grounded
	p.Dash = Dash{}
	p.DashBurst = false
	p.HazardPending = false
	p.DashArmed = true
	p.DashCooldownUntil = p.Clock
	p.GravityScale = 1
	p.JumpLock = 0
	p.Clinging = false
	p.Peeking = false
}
