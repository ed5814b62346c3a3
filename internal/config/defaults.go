package config

import (
	_ "embed"
)

//go:embed defaults/termfolio.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:      0.8,
			GroundOffset: 100,
		},
		Player: Player{
			Width:     48,
			Height:    72,
			StartX:    100,
			Speed:     5,
			JumpPower: 15,
		},
		World: World{
			Level:           "portfolio",
			LoopWidth:       2000,
			TouchBreakpoint: 768,
		},
		Display: Display{
			CellWidth:  8,
			CellHeight: 16,
			FPS:        60,
		},
		Input: Input{
			InitialHoldFrames: 24,
			RepeatHoldFrames:  4,
		},
		Proximity: Proximity{
			Trigger:   100,
			Milestone: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
