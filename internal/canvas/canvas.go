// Package canvas draws engine shapes into a terminal cell buffer.
//
// World units map onto cells through a fixed cell size. A rectangle paints
// every cell it overlaps, so thin shapes (grass, poles) never vanish; a
// circle paints the cells whose centre lies inside it.
package canvas

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/engine"
)

// Canvas implements engine.Renderer over a core.Screen.
type Canvas struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
}

var _ engine.Renderer = (*Canvas)(nil)

// New wraps a screen. cellW and cellH are the world size of one cell.
func New(screen *core.Screen, cellW, cellH float64) *Canvas {
	return &Canvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// Size reports the screen in world units.
func (c *Canvas) Size() engine.Viewport {
	return engine.Viewport{
		W: float64(c.screen.Width()) * c.cellW,
		H: float64(c.screen.Height()) * c.cellH,
	}
}

// Clear blanks the buffer.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// ToCell returns the cell containing a world point.
func (c *Canvas) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

// ToWorld returns the world point at the centre of a cell.
func (c *Canvas) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

// CellRect returns the cells a world rectangle overlaps, clipped to the
// screen. Empty rectangles map to an empty cell rect.
func (c *Canvas) CellRect(r engine.Rect) core.Rect {
	if r.W <= 0 || r.H <= 0 {
		return core.Rect{}
	}
	x0 := int(math.Floor(r.X / c.cellW))
	y0 := int(math.Floor(r.Y / c.cellH))
	x1 := int(math.Ceil(r.Right() / c.cellW))
	y1 := int(math.Ceil(r.Bottom() / c.cellH))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect paints every cell the rectangle overlaps.
func (c *Canvas) FillRect(r engine.Rect, s engine.Style) {
	cr := c.CellRect(r).Clip(c.screen.Width(), c.screen.Height())
	if cr.Empty() {
		return
	}
	c.screen.DrawRect(cr, fillRune(s), s.Color)
}

// StrokeRect outlines the rectangle. A zero rune draws box-drawing edges.
func (c *Canvas) StrokeRect(r engine.Rect, s engine.Style) {
	cr := c.CellRect(r)
	if cr.Empty() {
		return
	}
	if s.Rune == 0 {
		c.screen.DrawBox(cr, s.Color)
		return
	}
	c.screen.DrawHLine(cr.X, cr.Y, cr.W, s.Rune, s.Color)
	c.screen.DrawHLine(cr.X, cr.Bottom()-1, cr.W, s.Rune, s.Color)
	for y := cr.Y + 1; y < cr.Bottom()-1; y++ {
		c.screen.SetColored(cr.X, y, s.Rune, s.Color)
		c.screen.SetColored(cr.Right()-1, y, s.Rune, s.Color)
	}
}

// FillCircle paints the cells whose centre lies within radius.
func (c *Canvas) FillCircle(cx, cy, radius float64, s engine.Style) {
	bounds := c.CellRect(engine.Rect{X: cx - radius, Y: cy - radius, W: 2 * radius, H: 2 * radius})
	bounds = bounds.Clip(c.screen.Width(), c.screen.Height())
	r2 := radius * radius
	for row := bounds.Y; row < bounds.Bottom(); row++ {
		for col := bounds.X; col < bounds.Right(); col++ {
			x, y := c.ToWorld(col, row)
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r2 {
				c.screen.SetColored(col, row, fillRune(s), s.Color)
			}
		}
	}
}

// Text writes one rune per cell on the row containing y.
func (c *Canvas) Text(x, y float64, text string, align engine.Align, s engine.Style) {
	col, row := c.ToCell(x, y)
	if align == engine.AlignCenter {
		col = int(math.Round(x/c.cellW)) - utf8.RuneCountInString(text)/2
	}
	c.screen.DrawText(col, row, text, s.Color)
}

func fillRune(s engine.Style) rune {
	if s.Rune == 0 {
		return '█'
	}
	return s.Rune
}
