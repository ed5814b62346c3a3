package engine

import "math"

// Proximity holds the strict thresholds for triggers and milestones.
type Proximity struct {
	Trigger   float64 // |dx| and |dy| must both be below this
	Milestone float64 // |dx| to the nearest flag pole must be below this
}

// DefaultProximity returns the thresholds the stage was authored for.
func DefaultProximity() Proximity {
	return Proximity{Trigger: 100, Milestone: 150}
}

// NearHit identifies the trigger replica the player is near.
type NearHit struct {
	Trigger Trigger
	Replica int
	WorldX  float64
}

// Resolution is what the resolver reports for one frame.
type Resolution struct {
	Segment       int
	Near          *NearHit
	StageComplete bool
	Stage         int
}

// Resolve runs collision and proximity for one frame against the two
// visible replicas of g. Order matters: platforms, then the ground
// backstop, then triggers and milestones on the corrected position.
func Resolve(b *Body, g *Geometry, segment int, groundY float64, p Proximity) Resolution {
	ResolvePlatforms(b, g, segment)
	ResolveGround(b, groundY)

	res := Resolution{Segment: segment}
	if hit, ok := FindNearTrigger(b, g, segment, p.Trigger); ok {
		res.Near = &hit
	}
	res.Stage, res.StageComplete = Milestone(b.Pos.X, g.LoopWidth, p.Milestone)
	return res
}

// ResolvePlatforms lands a falling body on any platform whose top band
// contains its feet. Airborne is assumed until a contact says otherwise.
// Later hits overwrite earlier ones.
func ResolvePlatforms(b *Body, g *Geometry, segment int) {
	b.Airborne = true
	for _, replica := range VisibleCopies(segment) {
		for _, p := range g.Platforms {
			if LandsOn(b, p.Translate(float64(replica)*g.LoopWidth)) {
				b.Pos.Y = p.Y - b.Height
				b.Vel.Y = 0
				b.Airborne = false
			}
		}
	}
}

// LandsOn reports a top-only contact between a falling body and r.
func LandsOn(b *Body, r Rect) bool {
	bottom := b.Bottom()
	return b.Pos.X+b.Width > r.X &&
		b.Pos.X < r.Right() &&
		bottom > r.Y &&
		bottom < r.Bottom() &&
		b.Vel.Y > 0
}

// ResolveGround is the backstop against tunnelling: nothing ends a frame
// below the ground line.
func ResolveGround(b *Body, groundY float64) {
	if b.Bottom() > groundY {
		b.Pos.Y = groundY - b.Height
		b.Vel.Y = 0
		b.Airborne = false
	}
}

// IsNear is the strict, symmetric proximity test used for triggers.
func IsNear(b *Body, x, y, threshold float64) bool {
	return math.Abs(b.Pos.X-x) < threshold && math.Abs(b.Pos.Y-y) < threshold
}

// FindNearTrigger returns the first trigger replica near the body, in
// replica-then-authored order.
func FindNearTrigger(b *Body, g *Geometry, segment int, threshold float64) (NearHit, bool) {
	for _, replica := range VisibleCopies(segment) {
		for _, t := range g.Triggers {
			x := WorldX(t.X, replica, g.LoopWidth)
			if IsNear(b, x, t.Y, threshold) {
				return NearHit{Trigger: t, Replica: replica, WorldX: x}, true
			}
		}
	}
	return NearHit{}, false
}

// Milestone reports whether x is close to a flag pole and which stage the
// player is proceeding to.
func Milestone(x, loopWidth, threshold float64) (stage int, ok bool) {
	nearest := math.Round(x/loopWidth) * loopWidth
	if nearest > 0 && math.Abs(x-nearest) < threshold {
		return int(math.Floor((x+threshold)/loopWidth)) + 1, true
	}
	return 0, false
}
