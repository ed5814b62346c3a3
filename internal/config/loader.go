package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "termfolio.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.termfolio/configs/termfolio.yaml ->
// ./configs/termfolio.yaml -> embedded default -> Default().
// Files are applied over Default(), so they only need the keys they change.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over Default() and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would make the simulation or the cell
// mapping meaningless.
func Validate(cfg Config) error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.gravity", cfg.Physics.Gravity)
	positive("player.width", cfg.Player.Width)
	positive("player.height", cfg.Player.Height)
	positive("player.speed", cfg.Player.Speed)
	positive("player.jump_power", cfg.Player.JumpPower)
	positive("world.loop_width", cfg.World.LoopWidth)
	positive("display.cell_width", cfg.Display.CellWidth)
	positive("display.cell_height", cfg.Display.CellHeight)
	positive("display.fps", float64(cfg.Display.FPS))
	positive("input.initial_hold_frames", float64(cfg.Input.InitialHoldFrames))
	positive("input.repeat_hold_frames", float64(cfg.Input.RepeatHoldFrames))
	positive("proximity.trigger", cfg.Proximity.Trigger)
	positive("proximity.milestone", cfg.Proximity.Milestone)

	if cfg.Physics.GroundOffset < 0 {
		errs = append(errs, fmt.Errorf("physics.ground_offset must not be negative, got %v", cfg.Physics.GroundOffset))
	}
	if cfg.Player.StartX < 0 {
		errs = append(errs, fmt.Errorf("player.start_x must not be negative, got %v", cfg.Player.StartX))
	}
	if cfg.World.Level == "" {
		errs = append(errs, errors.New("world.level must name a level"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Dir returns ~/.termfolio, or empty if home is unavailable.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termfolio")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
