// Package config holds the compiled-in settings for the viewer and the
// simulation. There are no config files or flags; Default documents every
// value and FromEnv applies the two environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"virussim/internal/scene"
	"virussim/internal/sim"
)

// Environment overrides.
const (
	EnvSeed = "VIRUSSIM_SEED" // uint64 RNG seed, defaults to the clock
	EnvMute = "VIRUSSIM_MUTE" // any true-ish strconv.ParseBool value disables audio
)

// Config is everything the program needs to start.
type Config struct {
	// Window.
	Title        string
	WindowWidth  int
	WindowHeight int
	TargetFPS    int

	// Simulation.
	Seed            uint64
	NodeCount       int
	EdgeProbability float64
	LayoutExtent    float64
	StepInterval    time.Duration
	Sim             sim.Params

	// Camera.
	CameraDistance    float64
	CameraSensitivity float64
	ZoomSpeed         float64

	// Overlay.
	TextCacheSize int
	TextScale     int
	TextX         int
	TextY         int
	LineSpacing   int

	Audio bool
}

// DefenseNodes is the fixed set of nodes that resist infection.
var DefenseNodes = []int{
	2, 4, 6, 9, 11, 13, 15, 18, 20, 22, 25, 27, 29,
	32, 34, 36, 39, 41, 43, 46, 48, 50, 53, 55, 57,
	60, 62, 64, 67, 69, 71, 74, 76, 78, 81, 83, 85,
	88, 90, 92, 95, 97, 99, 100,
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Title:        "Virus Simulation 3D",
		WindowWidth:  900,
		WindowHeight: 700,
		TargetFPS:    60,

		Seed:            uint64(time.Now().UnixNano()),
		NodeCount:       1000,
		EdgeProbability: 0.01,
		LayoutExtent:    10,
		StepInterval:    2 * time.Second,
		Sim: sim.Params{
			DefenseNodes:    append([]int(nil), DefenseNodes...),
			DefenseStrength: 1.0,
			MutationChance:  0.1,
			MaxStrainID:     4,
			InitialInfected: []int{0},
		},

		CameraDistance:    scene.DefaultDistance,
		CameraSensitivity: scene.DefaultSensitivity,
		ZoomSpeed:         scene.DefaultZoomSpeed,

		TextCacheSize: scene.DefaultTextCacheSize,
		TextScale:     2,
		TextX:         10,
		TextY:         10,
		LineSpacing:   28,

		Audio: true,
	}
}

// FromEnv returns Default with environment overrides applied.
func FromEnv() (Config, error) {
	return applyEnv(Default(), os.Getenv)
}

func applyEnv(cfg Config, getenv func(string) string) (Config, error) {
	if s := getenv(EnvSeed); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = v
	}
	if s := getenv(EnvMute); s != "" {
		mute, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMute, err)
		}
		cfg.Audio = !mute
	}
	return cfg, nil
}
