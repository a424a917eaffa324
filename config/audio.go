package config

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement
	SoundJump
	SoundDash
	SoundLand
	SoundRun
	// Life cycle
	SoundDie
	SoundSpawn
	// Worlds
	SoundSwitch
	SoundSwitchDenied
	SoundWaypoint
	// UI
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	MusicScale        float64 // music volume relative to the master volume
	SFXScale          float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound cues to their variants. One variant is picked at
// random each time a cue plays.
type SoundConfig struct {
	Music             string
	SFXPaths          map[SoundID][]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		MusicScale:        0.6,
		SFXScale:          1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		Music: "audio/music/ambience.wav",
		SFXPaths: map[SoundID][]string{
			SoundJump:         {"audio/sfx/jump_1.wav", "audio/sfx/jump_2.wav"},
			SoundDash:         {"audio/sfx/dash_1.wav", "audio/sfx/dash_2.wav"},
			SoundLand:         {"audio/sfx/land_1.wav"},
			SoundRun:          {"audio/sfx/run.wav"},
			SoundDie:          {"audio/sfx/die_1.wav", "audio/sfx/die_2.wav"},
			SoundSpawn:        {"audio/sfx/spawn_1.wav"},
			SoundSwitch:       {"audio/sfx/switch_1.wav", "audio/sfx/switch_2.wav"},
			SoundSwitchDenied: {"audio/sfx/denied_1.wav"},
			SoundWaypoint:     {"audio/sfx/waypoint_1.wav"},
			SoundMenuNavigate: {"audio/sfx/menu_navigate.wav"},
			SoundMenuSelect:   {"audio/sfx/menu_select.wav"},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundRun:  0.5,
			SoundLand: 0.7,
		},
	}
}
