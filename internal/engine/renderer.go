package engine

import "github.com/vovakirdan/termfolio/internal/core"

// Align selects how Text is anchored on x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Style is how a shape is painted: the rune filling each covered cell and
// its color.
type Style struct {
	Rune  rune
	Color core.Color
}

// Renderer is the drawing capability the engine consumes. Coordinates are
// screen-space world units (world x minus camera x). Nothing it does feeds
// back into the simulation.
type Renderer interface {
	Clear()
	FillRect(r Rect, s Style)
	StrokeRect(r Rect, s Style)
	FillCircle(cx, cy, radius float64, s Style)
	Text(x, y float64, text string, align Align, s Style)
	Size() Viewport
}
