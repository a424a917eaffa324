package systems

import (
	"math/rand"
	"sync"

	"github.com/automoto/tovra/assets"
	"github.com/automoto/tovra/components"
	cfg "github.com/automoto/tovra/config"
	"github.com/automoto/tovra/shared/session"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalRunPlayer    *audio.Player
	globalMasterVolume = session.DefaultVolume
	globalMuted        bool
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, paths := range cfg.Sound.SFXPaths {
		for _, path := range paths {
			_ = globalAudioLoader.PreloadSFX(path)
		}
	}
}

// UpdateAudio processes pending SFX and manages music transitions
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	// Handle music fade out
	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			if globalMusicPlayer != nil {
				globalMusicPlayer.SetVolume(globalFadeStart * progress)
			}
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
	updateRunLoop(audioData.Running)
}

func sfxVolume(soundID cfg.SoundID) float64 {
	if globalMuted {
		return 0
	}
	volume := globalMasterVolume * cfg.Audio.SFXScale
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	return volume
}

func musicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMasterVolume * cfg.Audio.MusicScale
}

// pickVariant returns one of the cue's clips at random.
func pickVariant(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	return paths[rand.Intn(len(paths))], true
}

func playSFX(soundID cfg.SoundID) {
	volume := sfxVolume(soundID)
	if volume <= 0 {
		return
	}

	path, ok := pickVariant(cfg.Sound.SFXPaths[soundID])
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	player.SetVolume(volume)
	player.Play()
}

// updateRunLoop keeps the run sound looping while the player runs.
func updateRunLoop(running bool) {
	if !running {
		if globalRunPlayer != nil && globalRunPlayer.IsPlaying() {
			globalRunPlayer.Pause()
		}
		return
	}

	if globalRunPlayer == nil {
		path, ok := pickVariant(cfg.Sound.SFXPaths[cfg.SoundRun])
		if !ok {
			return
		}
		player, err := globalAudioLoader.LoadLoop(path)
		if err != nil {
			return
		}
		globalRunPlayer = player
	}
	globalRunPlayer.SetVolume(sfxVolume(cfg.SoundRun))
	if !globalRunPlayer.IsPlaying() {
		globalRunPlayer.Play()
	}
}

// SetRunning starts or stops the run loop on the next audio update.
func SetRunning(e *ecs.ECS, running bool) {
	GetOrCreateAudio(e).Running = running
}

// PlayMusic starts playing music with the given path (looping)
func PlayMusic(e *ecs.ECS, musicPath string) {
	initGlobalAudio()

	if musicPath == "" {
		musicPath = cfg.Sound.Music
	}
	// Already playing this music
	if globalMusicKey == musicPath && globalFadeTimer == 0 {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadLoop(musicPath)
	if err != nil {
		globalMusicPlayer = nil
		globalMusicKey = ""
		return
	}

	player.SetVolume(musicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = musicVolume()
}

// StopRunLoop silences the run loop, used when a scene ends mid-run.
func StopRunLoop() {
	if globalRunPlayer != nil {
		globalRunPlayer.Pause()
	}
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
	StopRunLoop()
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMasterVolume changes the volume every sound is scaled by (0.0 - 1.0).
func SetMasterVolume(volume float64) {
	globalMasterVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

// GetMasterVolume returns the current master volume (0.0 - 1.0)
func GetMasterVolume() float64 {
	return globalMasterVolume
}

// SetMuted silences all audio without touching the master volume.
func SetMuted(muted bool) {
	globalMuted = muted
	SetMasterVolume(globalMasterVolume)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:    globalAudioContext,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// IsMuted reports whether audio is silenced.
func IsMuted() bool {
	return globalMuted
}
