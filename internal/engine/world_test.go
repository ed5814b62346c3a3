package engine

import "testing"

func TestSegmentIndex(t *testing.T) {
	tests := []struct {
		cameraX float64
		want    int
	}{
		{0, 0},
		{1999.9, 0},
		{2000, 1},
		{4500, 2},
	}
	for _, tt := range tests {
		if got := SegmentIndex(tt.cameraX, 2000); got != tt.want {
			t.Errorf("SegmentIndex(%v) = %d, want %d", tt.cameraX, got, tt.want)
		}
	}
}

func TestWorldXAndVisibleCopies(t *testing.T) {
	if got := WorldX(300, 0, 2000); got != 300 {
		t.Errorf("WorldX(300, 0) = %v, want 300", got)
	}
	if got := WorldX(300, 3, 2000); got != 6300 {
		t.Errorf("WorldX(300, 3) = %v, want 6300", got)
	}
	if got := VisibleCopies(4); got != [2]int{4, 5} {
		t.Errorf("VisibleCopies(4) = %v, want [4 5]", got)
	}
}

func TestMilestoneX(t *testing.T) {
	if _, ok := MilestoneX(0, 2000); ok {
		t.Error("replica 0 should have no flag pole")
	}
	x, ok := MilestoneX(2, 2000)
	if !ok || x != 4000 {
		t.Errorf("MilestoneX(2) = %v, %v, want 4000, true", x, ok)
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	moved := r.Translate(100)
	if moved != (Rect{X: 110, Y: 20, W: 30, H: 40}) {
		t.Errorf("Translate = %+v", moved)
	}
	if r.X != 10 {
		t.Error("Translate must not modify the receiver")
	}
	if moved.Right() != 140 || moved.Bottom() != 60 {
		t.Errorf("Right/Bottom = %v/%v, want 140/60", moved.Right(), moved.Bottom())
	}
}

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		playerX, viewportW, want float64
	}{
		{100, 800, 0},
		{300, 900, 0},
		{1000, 900, 700},
		{5000, 600, 4800},
	}
	for _, tt := range tests {
		var c Camera
		c.Follow(tt.playerX, tt.viewportW)
		if c.X != tt.want {
			t.Errorf("Follow(%v, %v) = %v, want %v", tt.playerX, tt.viewportW, c.X, tt.want)
		}
	}
}

func TestCameraToScreen(t *testing.T) {
	c := Camera{X: 250}
	if got := c.ToScreen(400); got != 150 {
		t.Errorf("ToScreen(400) = %v, want 150", got)
	}
}
