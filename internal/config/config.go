// Package config provides YAML-based configuration loading for the engine
// constants, terminal mapping and input emulation.
package config

import "github.com/vovakirdan/termfolio/internal/engine"

// Config contains everything tunable without touching a level file.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	World     World     `yaml:"world"`
	Display   Display   `yaml:"display"`
	Input     Input     `yaml:"input"`
	Proximity Proximity `yaml:"proximity"`
}

// Physics defines the global motion constants.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	GroundOffset float64 `yaml:"ground_offset"` // groundY = viewport height - offset
}

// Player defines the body size and movement.
type Player struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	StartX    float64 `yaml:"start_x"`
	Speed     float64 `yaml:"speed"`
	JumpPower float64 `yaml:"jump_power"`
}

// World defines stage selection and layout switches.
type World struct {
	Level           string  `yaml:"level"`            // Level played when none is given
	LoopWidth       float64 `yaml:"loop_width"`       // Used by levels that omit their own
	TouchBreakpoint float64 `yaml:"touch_breakpoint"` // Narrower viewports get on-screen buttons
}

// Display defines how world units map onto terminal cells.
type Display struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	FPS        int     `yaml:"fps"`
}

// Input defines how key repeats are turned into held actions. Terminals
// report presses only, so a key counts as held for a number of frames.
type Input struct {
	InitialHoldFrames int `yaml:"initial_hold_frames"` // Covers the OS repeat delay
	RepeatHoldFrames  int `yaml:"repeat_hold_frames"`  // Covers the gap between repeats
}

// Proximity defines the strict distance thresholds.
type Proximity struct {
	Trigger   float64 `yaml:"trigger"`
	Milestone float64 `yaml:"milestone"`
}

// EngineParams converts the config into session constants.
func (c Config) EngineParams() engine.Params {
	return engine.Params{
		Gravity:      c.Physics.Gravity,
		GroundOffset: c.Physics.GroundOffset,
		Body: engine.BodySpec{
			Width:     c.Player.Width,
			Height:    c.Player.Height,
			StartX:    c.Player.StartX,
			Speed:     c.Player.Speed,
			JumpPower: c.Player.JumpPower,
		},
		Proximity: engine.Proximity{
			Trigger:   c.Proximity.Trigger,
			Milestone: c.Proximity.Milestone,
		},
	}
}
