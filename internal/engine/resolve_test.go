package engine

import "testing"

func platformGeometry(p Rect) *Geometry {
	return &Geometry{LoopWidth: 2000, Platforms: []Platform{{p}}}
}

func TestResolvePlatformsLanding(t *testing.T) {
	g := platformGeometry(Rect{X: 0, Y: 400, W: 200, H: 20})

	tests := []struct {
		name         string
		y, vy        float64
		wantY        float64
		wantVY       float64
		wantAirborne bool
	}{
		{"falling into band lands", 405 - 72, 2, 400 - 72, 0, false},
		{"rising through band passes", 405 - 72, -2, 405 - 72, -2, true},
		{"bottom on top edge is not inside", 400 - 72, 2, 400 - 72, 2, true},
		{"bottom on lower edge is not inside", 420 - 72, 2, 420 - 72, 2, true},
		{"above platform stays airborne", 300 - 72, 3, 300 - 72, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBody()
			b.Pos = Vec{X: 50, Y: tt.y}
			b.Vel.Y = tt.vy
			ResolvePlatforms(&b, g, 0)

			if b.Pos.Y != tt.wantY {
				t.Errorf("y = %v, want %v", b.Pos.Y, tt.wantY)
			}
			if b.Vel.Y != tt.wantVY {
				t.Errorf("vy = %v, want %v", b.Vel.Y, tt.wantVY)
			}
			if b.Airborne != tt.wantAirborne {
				t.Errorf("airborne = %v, want %v", b.Airborne, tt.wantAirborne)
			}
		})
	}
}

func TestResolvePlatformsHorizontalOverlap(t *testing.T) {
	g := platformGeometry(Rect{X: 100, Y: 400, W: 100, H: 20})

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"touching left edge", 52, false},
		{"one unit over left edge", 53, true},
		{"one unit before right edge", 199, true},
		{"touching right edge", 200, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBody()
			b.Pos = Vec{X: tt.x, Y: 405 - 72}
			b.Vel.Y = 1
			ResolvePlatforms(&b, g, 0)
			if landed := !b.Airborne; landed != tt.want {
				t.Errorf("landed = %v, want %v", landed, tt.want)
			}
		})
	}
}

func TestResolvePlatformsUsesVisibleReplicas(t *testing.T) {
	g := platformGeometry(Rect{X: 0, Y: 400, W: 200, H: 20})

	b := newTestBody()
	b.Pos = Vec{X: 2050, Y: 405 - 72}
	b.Vel.Y = 1
	ResolvePlatforms(&b, g, 0)
	if b.Airborne {
		t.Error("segment 0 should see the replica at 2000 as its second copy")
	}

	b = newTestBody()
	b.Pos = Vec{X: 4050, Y: 405 - 72}
	b.Vel.Y = 1
	ResolvePlatforms(&b, g, 0)
	if !b.Airborne {
		t.Error("replica 2 is not visible from segment 0")
	}
}

func TestResolveGroundBackstop(t *testing.T) {
	b := newTestBody()
	b.Pos.Y = testGroundY
	b.Vel.Y = 30
	b.Airborne = true
	ResolveGround(&b, testGroundY)

	if b.Bottom() != testGroundY {
		t.Errorf("bottom = %v, want %v", b.Bottom(), testGroundY)
	}
	if b.Vel.Y != 0 || b.Airborne {
		t.Errorf("vy=%v airborne=%v, want 0, false", b.Vel.Y, b.Airborne)
	}
}

func TestResolveGroundRunsAfterPlatforms(t *testing.T) {
	g := &Geometry{LoopWidth: 2000}
	b := newTestBody()
	b.Pos.Y = testGroundY + 40
	b.Vel.Y = 12

	res := Resolve(&b, g, 0, testGroundY, DefaultProximity())
	if b.Airborne {
		t.Error("ground backstop should clear airborne set by platform pass")
	}
	if b.Bottom() > testGroundY {
		t.Errorf("bottom %v below ground %v", b.Bottom(), testGroundY)
	}
	if res.Near != nil || res.StageComplete {
		t.Errorf("unexpected resolution %+v", res)
	}
}

func TestIsNearStrictAndSymmetric(t *testing.T) {
	const tx, ty = 500.0, 300.0

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"dx 100 left", tx - 100, ty, false},
		{"dx 99 left", tx - 99, ty, true},
		{"dx 100 right", tx + 100, ty, false},
		{"dx 99 right", tx + 99, ty, true},
		{"dy 100 above", tx, ty - 100, false},
		{"dy 99 above", tx, ty - 99, true},
		{"dy 100 below", tx, ty + 100, false},
		{"dy 99 below", tx, ty + 99, true},
		{"exact", tx, ty, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBody()
			b.Pos = Vec{X: tt.x, Y: tt.y}
			if got := IsNear(&b, tx, ty, 100); got != tt.want {
				t.Errorf("IsNear = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindNearTrigger(t *testing.T) {
	g := &Geometry{
		LoopWidth: 2000,
		Triggers: []Trigger{
			{Rect: Rect{X: 400, Y: 300, W: 80, H: 80}, ID: "a"},
			{Rect: Rect{X: 450, Y: 300, W: 80, H: 80}, ID: "b"},
			{Rect: Rect{X: 1400, Y: 300, W: 80, H: 80}, ID: "c"},
		},
	}

	t.Run("first match wins", func(t *testing.T) {
		b := newTestBody()
		b.Pos = Vec{X: 430, Y: 300}
		hit, ok := FindNearTrigger(&b, g, 0, 100)
		if !ok || hit.Trigger.ID != "a" {
			t.Fatalf("hit = %+v, %v, want trigger a", hit, ok)
		}
		if hit.Replica != 0 || hit.WorldX != 400 {
			t.Errorf("replica=%d worldX=%v, want 0, 400", hit.Replica, hit.WorldX)
		}
	})

	t.Run("second replica", func(t *testing.T) {
		b := newTestBody()
		b.Pos = Vec{X: 3420, Y: 300}
		hit, ok := FindNearTrigger(&b, g, 1, 100)
		if !ok || hit.Trigger.ID != "c" || hit.Replica != 1 || hit.WorldX != 3400 {
			t.Errorf("hit = %+v, %v, want c in replica 1 at 3400", hit, ok)
		}
	})

	t.Run("none", func(t *testing.T) {
		b := newTestBody()
		b.Pos = Vec{X: 900, Y: 300}
		if _, ok := FindNearTrigger(&b, g, 0, 100); ok {
			t.Error("expected no trigger near x=900")
		}
	})
}

func TestMilestone(t *testing.T) {
	tests := []struct {
		x         float64
		wantOK    bool
		wantStage int
	}{
		{1900, true, 2},
		{2149, true, 2},
		{2150, false, 0},
		{1850, false, 0},
		{1851, true, 2},
		{50, false, 0},
		{3900, true, 3},
		{4100, true, 3},
	}
	for _, tt := range tests {
		stage, ok := Milestone(tt.x, 2000, 150)
		if ok != tt.wantOK || stage != tt.wantStage {
			t.Errorf("Milestone(%v) = %d, %v, want %d, %v", tt.x, stage, ok, tt.wantStage, tt.wantOK)
		}
	}
}
