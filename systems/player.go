package systems

import (
	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/movement"
	"github.com/automoto/tovra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	if components.Level.Get(levelEntry).Complete {
		return
	}
	worlds := components.Worlds.Get(levelEntry)

	input := getOrCreateInput(ecs)
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry, input, worlds)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData, worlds *components.WorldsData) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object

	sensors := probeContacts(obj)
	sensors.Hazard = inHazard(obj, worlds.Pair.Current())

	in := MovementInput(input)
	next, ev := movement.Step(player.Player, in, sensors, frameTime(), cfg.Player.Tuning)
	player.Player = next
	player.Input = in
	player.Sensors = sensors
	player.Events = ev

	if ev.SwitchRequested {
		target := worlds.Pair.Current().Other()
		if _, granted := worlds.Validator.AttemptSwitch(obj, target); granted {
			player.EnterWorld(target, cfg.Player.Tuning)
		}
	}
	worlds.Peeking = player.Peeking

	handlePlayerEvents(ecs, playerEntry, player, ev)
}

// handlePlayerEvents turns the results of a step into sound, effects and
// bookkeeping.
func handlePlayerEvents(ecs *ecs.ECS, playerEntry *donburi.Entry, player *components.PlayerData, ev movement.Events) {
	switch {
	case ev.Jumped || ev.WallKicked:
		PlaySFX(ecs, cfg.SoundJump)
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.JumpX, cfg.SquashStretch.JumpY)
	case ev.Landed:
		PlaySFX(ecs, cfg.SoundLand)
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.LandX, cfg.SquashStretch.LandY)
	}

	if ev.DashStarted {
		PlaySFX(ecs, cfg.SoundDash)
		TriggerSquashStretch(playerEntry, cfg.SquashStretch.DashX, cfg.SquashStretch.DashY)
	}

	if ev.Died {
		PlaySFX(ecs, cfg.SoundDie)
		TriggerScreenShake(ecs, cfg.ScreenShake.DeathIntensity, cfg.ScreenShake.DeathDuration)
		if sess := currentSession(ecs); sess != nil {
			sess.RecordDeath()
		}
	}

	if ev.Respawned {
		placeAtSpawn(ecs, playerEntry)
		PlaySFX(ecs, cfg.SoundSpawn)
		SnapCamera(ecs, player.Position.X, player.Position.Y)
	}

	SetRunning(ecs, ev.Running)
}
