package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termfolio/internal/canvas"
	"github.com/vovakirdan/termfolio/internal/core"
	"github.com/vovakirdan/termfolio/internal/engine"
)

// hud is the terminal side of the driver: the drawing surface and the
// overlay sink. Overlays are drawn straight into the cell buffer on top of
// the frame the engine just painted.
type hud struct {
	canvas  *canvas.Canvas
	touch   func() bool
	buttons []touchButton
	pressed core.Action
	last    engine.Overlay
}

var (
	_ engine.Surface     = (*hud)(nil)
	_ engine.OverlaySink = (*hud)(nil)
)

func newHUD(c *canvas.Canvas) *hud {
	h := &hud{canvas: c, touch: func() bool { return false }}
	h.layout()
	return h
}

// Context implements engine.Surface.
func (h *hud) Context() (engine.Renderer, error) {
	if h.canvas == nil {
		return nil, engine.ErrNoContext
	}
	return h.canvas, nil
}

// Size implements engine.Surface.
func (h *hud) Size() engine.Viewport {
	if h.canvas == nil {
		return engine.Viewport{}
	}
	return h.canvas.Size()
}

// Present implements engine.OverlaySink.
func (h *hud) Present(ov engine.Overlay) {
	h.last = ov
	s := h.canvas.Screen()
	if ov.Panel != nil {
		drawPanel(s, h.canvas, ov.Panel)
	}
	if h.touch() {
		drawTouchButtons(s, h.buttons, h.pressed)
	}
}

// layout recomputes button positions after a resize.
func (h *hud) layout() {
	s := h.canvas.Screen()
	h.buttons = layoutTouchButtons(s.Width(), s.Height())
}

// drawPanel draws a trigger's info box with its bottom edge on the panel's
// Y and its left edge on X, pushed back inside the screen when it would
// overflow.
func drawPanel(s *core.Screen, c *canvas.Canvas, p *engine.TriggerPanel) core.Rect {
	color := core.ParseHexColor(p.Color)
	if color == core.ColorDefault {
		color = core.ColorBrightWhite
	}

	width := lipgloss.Width(p.Title)
	for _, line := range p.Content {
		width = max(width, lipgloss.Width(line))
	}

	lines := 1
	if len(p.Content) > 0 {
		lines += 1 + len(p.Content)
	}
	box := core.NewRect(0, 0, width+4, lines+2)

	col, row := c.ToCell(p.X, p.Y)
	box.X = core.Clamp(col, 0, max(s.Width()-box.W, 0))
	box.Y = max(row-box.H, 0)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, color)
	s.DrawText(box.X+2, box.Y+1, p.Title, color)
	for i, line := range p.Content {
		s.DrawText(box.X+2, box.Y+3+i, line, core.ColorBrightWhite)
	}
	return box
}
