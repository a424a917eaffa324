package config

import (
	"image/color"

	"github.com/automoto/tovra/shared/movement"
	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer every entity and renderer uses.
const Default ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig holds the movement tuning plus the player's box.
type PlayerConfig struct {
	movement.Tuning `yaml:",inline"`

	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// WorldConfig controls how the two layouts look and switch.
type WorldConfig struct {
	TileSize        int
	CommonColor     color.RGBA
	TovColor        color.RGBA
	RaColor         color.RGBA
	TovBackground   color.RGBA
	RaBackground    color.RGBA
	HazardColor     color.RGBA
	WaypointColor   color.RGBA
	PeekAlpha       float32 // opacity of the inactive layer while peeking
	PeekFadeSeconds float32
	FlashSeconds    float32
	FlashAlpha      float32
}

// EvolutionConfig drives the player tint.
type EvolutionConfig struct {
	Speed float64 `yaml:"speed"` // tint units per pixel travelled since the last switch
}

// NarrationConfig contains narration box configuration.
type NarrationConfig struct {
	DisplaySeconds float64
	FadeSeconds    float32
	BoxPadding     float64
	BoxColor       color.RGBA
	TovTextColor   color.RGBA
	RaTextColor    color.RGBA
	TopMargin      float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing    float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing float64
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	DeathIntensity  float64 // pixels
	DeathDuration   int     // frames
	DeniedIntensity float64
	DeniedDuration  int
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	LerpSpeed float64 // per frame, 0..1
	JumpX     float64
	JumpY     float64
	LandX     float64
	LandY     float64
	DashX     float64
	DashY     float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	HintColor         color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	VolumeStep        float64
}

// ResultsConfig styles the end-of-run screen.
type ResultsConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	Title           string
}

// LevelsConfig locates the level files.
type LevelsConfig struct {
	Dir string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled    bool   // hitboxes, state overlay, tuning hot reload
	StartLevel int    // -1 shows the menu
	TuningPath string // disk override for tuning.yaml
	Mute       bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var World WorldConfig
var Evolution EvolutionConfig
var Narration NarrationConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var SquashStretch SquashStretchConfig
var Pause PauseConfig
var Menu MenuConfig
var Results ResultsConfig
var Levels LevelsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Gray         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gold         = color.RGBA{R: 230, G: 190, B: 80, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Tov / Ra",
	}

	Player = PlayerConfig{
		Tuning: movement.Tuning{
			RunSpeed:        150,
			GroundSmoothing: 0.05,
			AirSmoothing:    0.18,
			JumpImpulse:     330,
			WallKickImpulse: 380,
			JumpCooldown:    0.1,
			Gravity:         900,
			MaxFallSpeed:    480,
			DashDistance:    64,
			DashDuration:    0.12,
			DashSpeed:       260,
			DashCooldown:    0.4,
			SwitchCooldown:  1.0,
			RespawnDelay:    0.75,
			RunThreshold:    20,
		},
		CollisionWidth:  10,
		CollisionHeight: 20,
	}

	World = WorldConfig{
		TileSize:        16,
		CommonColor:     color.RGBA{R: 70, G: 70, B: 85, A: 255},
		TovColor:        color.RGBA{R: 235, G: 200, B: 120, A: 255},
		RaColor:         color.RGBA{R: 90, G: 150, B: 230, A: 255},
		TovBackground:   color.RGBA{R: 40, G: 30, B: 25, A: 255},
		RaBackground:    color.RGBA{R: 15, G: 20, B: 40, A: 255},
		HazardColor:     color.RGBA{R: 200, G: 40, B: 60, A: 255},
		WaypointColor:   color.RGBA{R: 60, G: 115, B: 70, A: 120},
		PeekAlpha:       0.45,
		PeekFadeSeconds: 0.15,
		FlashSeconds:    0.25,
		FlashAlpha:      0.6,
	}

	Evolution = EvolutionConfig{
		Speed: 0.002,
	}

	Narration = NarrationConfig{
		DisplaySeconds: 4,
		FadeSeconds:    0.5,
		BoxPadding:     8,
		BoxColor:       color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TovTextColor:   color.RGBA{R: 250, G: 225, B: 170, A: 255},
		RaTextColor:    color.RGBA{R: 170, G: 205, B: 255, A: 255},
		TopMargin:      30,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 50,
		LookAheadSmoothing: 0.05,
	}

	ScreenShake = ScreenShakeConfig{
		DeathIntensity:  6,
		DeathDuration:   12,
		DeniedIntensity: 2,
		DeniedDuration:  6,
	}

	SquashStretch = SquashStretchConfig{
		LerpSpeed: 0.2,
		JumpX:     0.8,
		JumpY:     1.25,
		LandX:     1.25,
		LandY:     0.8,
		DashX:     1.3,
		DashY:     0.75,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu", "Quit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 18, B: 30, A: 255},
		TitleColor:        Gold,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		HintColor:         Gray,
		TitleY:            70,
		MenuStartY:        150,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Play", "Volume", "Quit"},
		VolumeStep:        0.1,
	}

	Results = ResultsConfig{
		BackgroundColor: color.RGBA{R: 20, G: 18, B: 30, A: 255},
		PanelColor:      color.RGBA{R: 40, G: 36, B: 60, A: 240},
		TitleColor:      Gold,
		TextColor:       White,
		ButtonIdle:      DarkBlue,
		ButtonHover:     LightBlue,
		ButtonPressed:   color.RGBA{R: 30, G: 60, B: 110, A: 255},
		Title:           "The worlds are quiet again",
	}

	Levels = LevelsConfig{
		Dir: "levels",
	}

	// Defaults, can be overridden by CLI flags
	Debug = DebugConfig{
		StartLevel: -1,
	}
}
