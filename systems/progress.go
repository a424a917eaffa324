package systems

import (
	"math"

	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEvolution tracks the farthest point reached since the last switch.
func UpdateEvolution(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.IsDead() {
		return
	}
	evo := components.Evolution.Get(levelEntry)
	advanceEvolution(evo, player.Position.X, cfg.Evolution.Speed)
}

// advanceEvolution records x and recomputes the tint value in [0, 1].
// Walking back never lowers it.
func advanceEvolution(evo *components.EvolutionData, x, speed float64) {
	evo.Farthest = math.Max(evo.Farthest, x-evo.Origin)
	evo.Value = math.Min(math.Max(evo.Farthest*speed, 0), 1)
}

// UpdateNarration shows the next line once the player has travelled far
// enough from the switch origin, and fades it out again.
func UpdateNarration(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	narration := components.Narration.Get(levelEntry)
	dt := frameTime()

	if narration.Active >= 0 {
		narration.Remaining -= dt
		if narration.Remaining <= 0 && narration.Fade == nil {
			narration.Fade = gween.New(narration.Alpha, 0, cfg.Narration.FadeSeconds, ease.InQuad)
		}
		if narration.Fade != nil {
			alpha, done := narration.Fade.Update(float32(dt))
			narration.Alpha = alpha
			if done {
				narration.Fade = nil
				narration.Active = -1
			}
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.IsDead() {
		return
	}
	evo := components.Evolution.Get(levelEntry)
	if i := nextNarration(narration, player.Position.X-evo.Origin); i >= 0 {
		narration.Fired[i] = true
		narration.Active = i
		narration.Remaining = cfg.Narration.DisplaySeconds
		narration.Alpha = 1
		narration.Fade = nil
	}
}

// nextNarration returns the farthest unfired line within distance, or -1.
// Lines are sorted by distance; skipped lines are marked fired.
func nextNarration(n *components.NarrationData, distance float64) int {
	found := -1
	for i, line := range n.Lines {
		if line.Distance > distance {
			break
		}
		if n.Fired[i] {
			continue
		}
		if found >= 0 {
			n.Fired[found] = true
		}
		found = i
	}
	return found
}
