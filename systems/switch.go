package systems

import (
	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/dimension"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SwitchFeedback reacts to switch attempts inside the running level.
type SwitchFeedback struct {
	ecs *ecs.ECS
}

func NewSwitchFeedback(ecs *ecs.ECS) *SwitchFeedback {
	return &SwitchFeedback{ecs: ecs}
}

// Switched plays the cue, starts the flash and restarts evolution and
// narration from the active waypoint.
func (f *SwitchFeedback) Switched(from, to dimension.Side) {
	PlaySFX(f.ecs, cfg.SoundSwitch)

	levelEntry, ok := components.Level.First(f.ecs.World)
	if !ok {
		return
	}
	worlds := components.Worlds.Get(levelEntry)
	worlds.FlashAlpha = cfg.World.FlashAlpha
	worlds.Flash = gween.New(cfg.World.FlashAlpha, 0, cfg.World.FlashSeconds, ease.OutQuad)

	origin := switchOrigin(f.ecs)
	evo := components.Evolution.Get(levelEntry)
	*evo = components.EvolutionData{Origin: origin}

	narration := components.Narration.Get(levelEntry)
	for i := range narration.Fired {
		narration.Fired[i] = false
	}
}

// SwitchDenied plays the denial cue with a small shake.
func (f *SwitchFeedback) SwitchDenied(target dimension.Side) {
	PlaySFX(f.ecs, cfg.SoundSwitchDenied)
	TriggerScreenShake(f.ecs, cfg.ScreenShake.DeniedIntensity, cfg.ScreenShake.DeniedDuration)
}

// switchOrigin is the x of the active waypoint, or the spawn before any
// waypoint was reached.
func switchOrigin(ecs *ecs.ECS) float64 {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return 0
	}
	level := components.Level.Get(levelEntry)
	if level.CurrentLevel == nil {
		return 0
	}
	if level.ActiveWaypoint >= 0 && level.ActiveWaypoint < len(level.CurrentLevel.Waypoints) {
		return level.CurrentLevel.Waypoints[level.ActiveWaypoint].X
	}
	spawn, _ := level.CurrentLevel.SpawnPoint()
	return spawn.X
}

// UpdateWorlds advances the switch flash and the peek fade.
func UpdateWorlds(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	worlds := components.Worlds.Get(levelEntry)
	dt := float32(frameTime())

	if worlds.Flash != nil {
		alpha, done := worlds.Flash.Update(dt)
		worlds.FlashAlpha = alpha
		if done {
			worlds.Flash = nil
			worlds.FlashAlpha = 0
		}
	}

	target := float32(0)
	if worlds.Peeking {
		target = cfg.World.PeekAlpha
	}
	if worlds.Peek == nil && worlds.PeekAlpha != target {
		worlds.Peek = gween.New(worlds.PeekAlpha, target, cfg.World.PeekFadeSeconds, ease.Linear)
	}
	if worlds.Peek != nil {
		alpha, done := worlds.Peek.Update(dt)
		worlds.PeekAlpha = alpha
		if done {
			worlds.Peek = nil
		}
	}
}
