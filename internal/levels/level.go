// Package levels loads stage definitions from YAML and registers the
// built-in ones.
package levels

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/termfolio/internal/engine"
	"github.com/vovakirdan/termfolio/internal/registry"
)

// ErrUnknownLevel is returned when a name is neither registered nor a
// readable level file.
var ErrUnknownLevel = registry.ErrUnknownLevel

// DefaultTriggerSize is the side of an info box when a file omits it.
const DefaultTriggerSize = 80

// Level is a stage loaded from YAML. Vertical positions are offsets above
// the ground line.
type Level struct {
	LevelID   string         `yaml:"id"`
	LevelName string         `yaml:"name"`
	Intro     string         `yaml:"title"`
	LoopWidth float64        `yaml:"loop_width"`
	Platforms []PlatformSpec `yaml:"platforms"`
	Triggers  []TriggerSpec  `yaml:"triggers"`
}

// PlatformSpec is one authored platform.
type PlatformSpec struct {
	X            float64 `yaml:"x"`
	GroundOffset float64 `yaml:"ground_offset"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// TriggerSpec is one authored info zone.
type TriggerSpec struct {
	ID           string   `yaml:"id"`
	X            float64  `yaml:"x"`
	GroundOffset float64  `yaml:"ground_offset"`
	Size         float64  `yaml:"size"`
	Label        string   `yaml:"label"`
	Color        string   `yaml:"color"`
	Title        string   `yaml:"title"`
	Content      []string `yaml:"content"`
}

var _ registry.Level = (*Level)(nil)

// ID implements registry.Level.
func (l *Level) ID() string { return l.LevelID }

// Name implements registry.Level.
func (l *Level) Name() string { return l.LevelName }

// Title implements registry.Level.
func (l *Level) Title() string { return l.Intro }

// Geometry places the level on a ground line.
func (l *Level) Geometry(groundY float64) engine.Geometry {
	g := engine.Geometry{
		LoopWidth: l.LoopWidth,
		Platforms: make([]engine.Platform, 0, len(l.Platforms)),
		Triggers:  make([]engine.Trigger, 0, len(l.Triggers)),
	}
	for _, p := range l.Platforms {
		g.Platforms = append(g.Platforms, engine.Platform{Rect: engine.Rect{
			X: p.X,
			Y: groundY - p.GroundOffset,
			W: p.Width,
			H: p.Height,
		}})
	}
	for _, t := range l.Triggers {
		g.Triggers = append(g.Triggers, engine.Trigger{
			Rect: engine.Rect{
				X: t.X,
				Y: groundY - t.GroundOffset,
				W: t.Size,
				H: t.Size,
			},
			ID:      t.ID,
			Label:   t.Label,
			Color:   t.Color,
			Title:   t.Title,
			Content: t.Content,
		})
	}
	return g
}

// Parse decodes and validates a level. loopWidth is used when the file
// does not set its own.
func Parse(data []byte, loopWidth float64) (*Level, error) {
	var l Level
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("levels: parse: %w", err)
	}
	if l.LoopWidth == 0 {
		l.LoopWidth = loopWidth
	}
	if l.LevelName == "" {
		l.LevelName = l.LevelID
	}
	if l.Intro == "" {
		l.Intro = l.LevelName
	}
	for i := range l.Triggers {
		if l.Triggers[i].Size == 0 {
			l.Triggers[i].Size = DefaultTriggerSize
		}
	}
	if err := Validate(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadFile reads a level from disk.
func LoadFile(path string, loopWidth float64) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	l, err := Parse(data, loopWidth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Validate checks that the level is one well-formed segment: everything
// lies in [0, loop_width) and has a positive size.
func Validate(l *Level) error {
	var errs []error
	if l.LevelID == "" {
		errs = append(errs, errors.New("id is required"))
	}
	if l.LoopWidth <= 0 {
		errs = append(errs, fmt.Errorf("loop_width must be positive, got %v", l.LoopWidth))
	}

	inSegment := func(x, w float64) bool {
		return x >= 0 && x+w <= l.LoopWidth
	}
	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			errs = append(errs, fmt.Errorf("platforms[%d]: size must be positive", i))
		}
		if !inSegment(p.X, p.Width) {
			errs = append(errs, fmt.Errorf("platforms[%d]: x=%v width=%v outside [0, %v)", i, p.X, p.Width, l.LoopWidth))
		}
	}

	seen := make(map[string]bool, len(l.Triggers))
	for i, t := range l.Triggers {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("triggers[%d]: id is required", i))
		} else if seen[t.ID] {
			errs = append(errs, fmt.Errorf("triggers[%d]: duplicate id %q", i, t.ID))
		}
		seen[t.ID] = true
		if t.Size <= 0 {
			errs = append(errs, fmt.Errorf("triggers[%d]: size must be positive", i))
		}
		if !inSegment(t.X, t.Size) {
			errs = append(errs, fmt.Errorf("triggers[%d]: x=%v outside [0, %v)", i, t.X, l.LoopWidth))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("levels: invalid level %q: %w", l.LevelID, err)
	}
	return nil
}

// Resolve returns the registered level with the given ID, or loads name as
// a level file.
func Resolve(name string, loopWidth float64) (registry.Level, error) {
	if registry.Exists(name) {
		return registry.Create(name)
	}
	if _, err := os.Stat(name); err == nil {
		return LoadFile(name, loopWidth)
	}
	return nil, fmt.Errorf("levels: %w %q", ErrUnknownLevel, name)
}
