package engine

import (
	"fmt"
	"math"

	"github.com/vovakirdan/termfolio/internal/core"
)

// Sizes of the authored decorations, in world units.
const (
	poleHeight  = 200
	poleWidth   = 8
	groundDepth = 20
	grassDepth  = 5
	cloudCount  = 5
)

var (
	styleCloud    = Style{Rune: '░', Color: core.ColorBrightWhite}
	styleDirt     = Style{Rune: '▓', Color: core.ColorBrown}
	styleGrass    = Style{Rune: '▀', Color: core.ColorGreen}
	stylePole     = Style{Rune: '┃', Color: core.ColorGray}
	stylePoleTop  = Style{Rune: '●', Color: core.ColorGold}
	styleFlag     = Style{Rune: '█', Color: core.ColorBrightRed}
	styleBlank    = Style{Rune: ' '}
	styleGlow     = Style{Rune: '░', Color: core.ColorGold}
	styleText     = Style{Color: core.ColorBrightWhite}
	styleGoldText = Style{Color: core.ColorGold}
	styleFrame    = Style{Color: core.ColorBrightWhite}
	styleGoldEdge = Style{Color: core.ColorGold}
)

// The drawable variants form a closed set. Each has a pure screen transform
// below; paint enumerates them in a fixed order.

// CloudPositions returns the parallax cloud anchors for a camera offset.
// Odd clouds drift at 0.3 of the camera speed, even ones at 0.5.
func CloudPositions(viewportW, cameraX float64) [cloudCount]Vec {
	var out [cloudCount]Vec
	for i := range out {
		speed := 0.5
		if i%2 == 1 {
			speed = 0.3
		}
		out[i] = Vec{
			X: math.Mod(float64(i)*viewportW*0.4+cameraX*speed, viewportW),
			Y: 100 + float64(i)*50,
		}
	}
	return out
}

// PlatformScreen places a platform replica on screen.
func PlatformScreen(p Platform, replica int, loopWidth float64, cam Camera) Rect {
	r := p.Rect
	r.X = cam.ToScreen(WorldX(p.X, replica, loopWidth))
	return r
}

// TriggerScreen places a trigger replica's box on screen.
func TriggerScreen(t Trigger, replica int, loopWidth float64, cam Camera) Rect {
	r := t.Rect
	r.X = cam.ToScreen(WorldX(t.X, replica, loopWidth))
	return r
}

// MilestoneScreenX places a flag pole replica on screen, if it exists.
func MilestoneScreenX(replica int, loopWidth float64, cam Camera) (float64, bool) {
	x, ok := MilestoneX(replica, loopWidth)
	if !ok {
		return 0, false
	}
	return cam.ToScreen(x), true
}

// PlayerScreen places the body on screen.
func PlayerScreen(b *Body, cam Camera) Rect {
	r := b.Bounds()
	r.X = cam.ToScreen(r.X)
	return r
}

// IsTouchLayout reports whether on-screen buttons replace keyboard hints.
func IsTouchLayout(vp Viewport, forced bool, breakpoint float64) bool {
	return forced || vp.W < breakpoint
}

// paint draws a whole frame: world first, then the presentation layer.
func paint(r Renderer, s *Session, title string, touch bool) {
	vp := s.Viewport()
	cam := s.Camera()
	g := s.Geometry()
	segment := s.Resolution().Segment
	body := s.Body()

	for _, c := range CloudPositions(vp.W, cam.X) {
		drawCloud(r, c)
	}

	drawGround(r, Rect{X: 0, Y: s.GroundY(), W: vp.W, H: groundDepth})

	for _, replica := range VisibleCopies(segment) {
		for _, p := range g.Platforms {
			drawPlatform(r, PlatformScreen(p, replica, g.LoopWidth, cam))
		}
	}

	for _, replica := range VisibleCopies(segment) {
		for _, t := range g.Triggers {
			near := IsNear(body, WorldX(t.X, replica, g.LoopWidth), t.Y, s.params.Proximity.Trigger)
			drawTrigger(r, TriggerScreen(t, replica, g.LoopWidth, cam), t, near)
		}
	}

	for _, replica := range VisibleCopies(segment) {
		if x, ok := MilestoneScreenX(replica, g.LoopWidth, cam); ok {
			drawMilestone(r, x, s.GroundY())
		}
	}

	drawPlayer(r, body, PlayerScreen(body, cam))

	ov := s.Overlay()
	if ov.Phase == PhaseNotStarted {
		drawIntro(r, vp, title, touch)
		return
	}
	if !touch {
		drawControlHint(r)
	}
	if ov.StageComplete {
		drawStageBanner(r, vp, ov.Stage)
	}
}

func drawCloud(r Renderer, c Vec) {
	r.FillCircle(c.X, c.Y, 30, styleCloud)
	r.FillCircle(c.X+25, c.Y, 40, styleCloud)
	r.FillCircle(c.X+50, c.Y, 30, styleCloud)
}

func drawGround(r Renderer, rect Rect) {
	drawPlatform(r, rect)
}

func drawPlatform(r Renderer, rect Rect) {
	r.FillRect(rect, styleDirt)
	r.FillRect(Rect{X: rect.X, Y: rect.Y - grassDepth, W: rect.W, H: grassDepth}, styleGrass)
}

func drawTrigger(r Renderer, rect Rect, t Trigger, near bool) {
	if near {
		r.StrokeRect(Rect{X: rect.X - 8, Y: rect.Y - 8, W: rect.W + 16, H: rect.H + 16}, styleGlow)
	}
	r.FillRect(rect, Style{Rune: '█', Color: core.ParseHexColor(t.Color)})
	r.Text(rect.X+rect.W/2, rect.Y+rect.H/2+8, t.Label, AlignCenter, styleText)
}

func drawMilestone(r Renderer, x, groundY float64) {
	r.FillRect(Rect{X: x, Y: groundY - poleHeight, W: poleWidth, H: poleHeight}, stylePole)
	r.FillCircle(x+poleWidth/2, groundY-poleHeight, 8, stylePoleTop)
	r.FillRect(Rect{X: x + poleWidth, Y: groundY - 190, W: 52, H: 40}, styleFlag)
}

// playerPart is one rectangle of the sprite, authored facing right in a
// 48x72 box. swing selects which animation offset moves it.
type playerPart struct {
	rect  Rect
	style Style
	swing int // 0 none, +1/-1 arm swing, +2/-2 leg swing
}

var playerParts = []playerPart{
	{Rect{X: 9, Y: 0, W: 30, H: 30}, Style{Rune: '█', Color: core.ColorSkin}, 0},
	{Rect{X: 8, Y: 0, W: 32, H: 14}, Style{Rune: '▀', Color: core.ColorDarkGray}, 0},
	{Rect{X: 14, Y: 14, W: 8, H: 8}, Style{Rune: '◘', Color: core.ColorNavy}, 0},
	{Rect{X: 26, Y: 14, W: 8, H: 8}, Style{Rune: '◘', Color: core.ColorNavy}, 0},
	{Rect{X: 12, Y: 30, W: 24, H: 18}, Style{Rune: '█', Color: core.ColorBrightBlue}, 0},
	{Rect{X: 4, Y: 32, W: 8, H: 12}, Style{Rune: '▌', Color: core.ColorBrightBlue}, 1},
	{Rect{X: 36, Y: 32, W: 8, H: 12}, Style{Rune: '▐', Color: core.ColorBrightBlue}, -1},
	{Rect{X: 15, Y: 48, W: 8, H: 14}, Style{Rune: '█', Color: core.ColorNavy}, 0},
	{Rect{X: 25, Y: 48, W: 8, H: 14}, Style{Rune: '█', Color: core.ColorNavy}, 0},
	{Rect{X: 13, Y: 61, W: 11, H: 6}, Style{Rune: '▄', Color: core.ColorBrown}, 2},
	{Rect{X: 24, Y: 61, W: 11, H: 6}, Style{Rune: '▄', Color: core.ColorBrown}, -2},
}

func drawPlayer(r Renderer, b *Body, screen Rect) {
	arm, leg := ArmOffset(b.Frame), LegOffset(b.Frame)
	for _, part := range playerParts {
		pr := part.rect
		switch part.swing {
		case 1:
			pr.Y += arm
		case -1:
			pr.Y -= arm
		case 2:
			pr.Y += leg
		case -2:
			pr.Y -= leg
		}
		if b.Facing == FacingLeft {
			pr.X = b.Width - pr.X - pr.W
		}
		pr.X += screen.X
		pr.Y += screen.Y
		r.FillRect(pr, part.style)
	}
}

func drawIntro(r Renderer, vp Viewport, title string, touch bool) {
	cx, cy := vp.W/2, vp.H/2
	box := Rect{X: cx - 220, Y: cy - 100, W: 440, H: 250}
	r.FillRect(box, styleBlank)
	r.StrokeRect(box, styleFrame)

	r.Text(cx, cy-50, title, AlignCenter, styleGoldText)
	if touch {
		r.Text(cx, cy+20, "Use on-screen buttons", AlignCenter, styleText)
		r.Text(cx, cy+60, "Tap anywhere to start!", AlignCenter, styleText)
		return
	}
	r.Text(cx, cy+20, "Use Arrow Keys to move", AlignCenter, styleText)
	r.Text(cx, cy+60, "Space or Up to jump", AlignCenter, styleText)
	r.Text(cx, cy+120, "Press any key to start!", AlignCenter, styleText)
}

func drawControlHint(r Renderer) {
	box := Rect{X: 10, Y: 10, W: 150, H: 75}
	r.FillRect(box, styleBlank)
	r.StrokeRect(box, styleFrame)
	r.Text(20, 30, "Controls:", AlignLeft, styleText)
	r.Text(20, 50, "⇦ ⇨ : Move", AlignLeft, styleText)
	r.Text(20, 70, "Space / ⇧ : Jump", AlignLeft, styleText)
}

func drawStageBanner(r Renderer, vp Viewport, stage int) {
	cx, cy := vp.W/2, vp.H/2
	box := Rect{X: cx - 150, Y: cy - 50, W: 300, H: 100}
	r.FillRect(box, styleBlank)
	r.StrokeRect(box, styleGoldEdge)
	r.Text(cx, cy-10, "Stage Complete!", AlignCenter, styleGoldText)
	r.Text(cx, cy+20, fmt.Sprintf("Proceed to stage %d...", stage), AlignCenter, styleText)
}
