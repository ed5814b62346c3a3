// Package engine is the simulation and interaction core: per-frame physics,
// top-only platform collision, rigid camera tracking, looping world
// addressing, proximity triggers and the intro/playing presentation state.
//
// Everything here is frame-count based and single-threaded. Hosts provide a
// Scheduler, a Surface and an OverlaySink; see Driver.
package engine

import "math"

// Rect is an axis-aligned rectangle in world units. Authored once, never mutated.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Translate returns r shifted horizontally by dx.
func (r Rect) Translate(dx float64) Rect {
	r.X += dx
	return r
}

// Platform is a one-sided solid surface: only its top face collides, and
// only with a falling body.
type Platform struct {
	Rect
}

// Trigger is an info zone. Its payload is opaque to the engine and is
// forwarded untouched to the overlay sink.
type Trigger struct {
	Rect
	ID      string
	Label   string
	Color   string // "#RRGGBB"
	Title   string
	Content []string
}

// Geometry is one authored stage segment. Everything lies in [0, LoopWidth)
// and is logically replicated at every multiple of LoopWidth.
type Geometry struct {
	LoopWidth float64
	Platforms []Platform
	Triggers  []Trigger
}

// Layout builds the geometry for a given ground line. Levels are authored
// relative to the ground, which depends on viewport height.
type Layout interface {
	Geometry(groundY float64) Geometry
}

// LayoutFunc adapts a plain function to Layout.
type LayoutFunc func(groundY float64) Geometry

// Geometry implements Layout.
func (f LayoutFunc) Geometry(groundY float64) Geometry {
	return f(groundY)
}

// SegmentIndex returns which replica of the segment the camera is in.
func SegmentIndex(cameraX, loopWidth float64) int {
	return int(math.Floor(cameraX / loopWidth))
}

// WorldX maps an authored x-coordinate into the given replica.
func WorldX(authoredX float64, replica int, loopWidth float64) float64 {
	return authoredX + float64(replica)*loopWidth
}

// VisibleCopies returns the only two replicas considered in a frame.
func VisibleCopies(segment int) [2]int {
	return [2]int{segment, segment + 1}
}

// MilestoneX returns the flag pole position that belongs to the given replica.
// Flag poles only exist from the second replica on.
func MilestoneX(replica int, loopWidth float64) (float64, bool) {
	if replica < 1 {
		return 0, false
	}
	return float64(replica) * loopWidth, true
}
