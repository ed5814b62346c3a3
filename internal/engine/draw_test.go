package engine

import (
	"math"
	"testing"
)

func TestCloudPositions(t *testing.T) {
	got := CloudPositions(1000, 0)
	wantX := []float64{0, 400, 800, 200, 600}
	for i, c := range got {
		if math.Abs(c.X-wantX[i]) > 1e-9 || c.Y != 100+float64(i)*50 {
			t.Errorf("cloud %d = %+v, want (%v, %v)", i, c, wantX[i], 100+float64(i)*50)
		}
	}

	moved := CloudPositions(1000, 100)
	if math.Abs(moved[0].X-50) > 1e-9 {
		t.Errorf("even cloud parallax: x = %v, want 50", moved[0].X)
	}
	if math.Abs(moved[1].X-430) > 1e-9 {
		t.Errorf("odd cloud parallax: x = %v, want 430", moved[1].X)
	}
}

func TestScreenTransforms(t *testing.T) {
	cam := Camera{X: 1500}

	p := Platform{Rect{X: 300, Y: 400, W: 150, H: 20}}
	if got := PlatformScreen(p, 1, 2000, cam); got != (Rect{X: 800, Y: 400, W: 150, H: 20}) {
		t.Errorf("PlatformScreen = %+v", got)
	}

	tr := Trigger{Rect: Rect{X: 400, Y: 300, W: 80, H: 80}}
	if got := TriggerScreen(tr, 0, 2000, cam); got != (Rect{X: -1100, Y: 300, W: 80, H: 80}) {
		t.Errorf("TriggerScreen = %+v", got)
	}

	if _, ok := MilestoneScreenX(0, 2000, cam); ok {
		t.Error("replica 0 has no milestone")
	}
	if x, ok := MilestoneScreenX(1, 2000, cam); !ok || x != 500 {
		t.Errorf("MilestoneScreenX(1) = %v, %v, want 500, true", x, ok)
	}

	b := newTestBody()
	b.Pos.X = 1700
	if got := PlayerScreen(&b, cam); got.X != 200 || got.W != 48 {
		t.Errorf("PlayerScreen = %+v", got)
	}
}

func TestDrawPlayerMirrors(t *testing.T) {
	const armPart = 5 // first arm in playerParts

	b := newTestBody()
	var right recorder
	drawPlayer(&right, &b, Rect{X: 100, Y: 0, W: 48, H: 72})

	b.Facing = FacingLeft
	var left recorder
	drawPlayer(&left, &b, Rect{X: 100, Y: 0, W: 48, H: 72})

	if len(right.rects) != len(playerParts) || len(left.rects) != len(playerParts) {
		t.Fatalf("drew %d/%d parts, want %d", len(right.rects), len(left.rects), len(playerParts))
	}
	if got := right.rects[armPart].rect.X; got != 104 {
		t.Errorf("right-facing arm x = %v, want 104", got)
	}
	if got := left.rects[armPart].rect.X; got != 136 {
		t.Errorf("left-facing arm x = %v, want 136", got)
	}
}

func TestIsTouchLayout(t *testing.T) {
	if !IsTouchLayout(Viewport{W: 767}, false, DefaultTouchBreakpoint) {
		t.Error("767 should be touch")
	}
	if IsTouchLayout(Viewport{W: 768}, false, DefaultTouchBreakpoint) {
		t.Error("768 should not be touch")
	}
	if !IsTouchLayout(Viewport{W: 2000}, true, DefaultTouchBreakpoint) {
		t.Error("forced touch should win")
	}
}

func TestPaintGlowsNearTrigger(t *testing.T) {
	s := NewSession(DefaultParams(), testViewport, triggerLayout())
	s.Start()
	s.Body().Pos = Vec{X: 420, Y: 320}
	s.Tick(Control{})

	var rec recorder
	paint(&rec, s, "t", false)

	glows := 0
	for _, r := range rec.rects {
		if r.style == styleGlow {
			glows++
		}
	}
	if glows != 1 {
		t.Errorf("glow outlines = %d, want 1", glows)
	}
	// Three puffs per cloud plus the pole top of replica 1.
	if want := cloudCount*3 + 1; rec.circles != want {
		t.Errorf("circles = %d, want %d", rec.circles, want)
	}
}
