package engine

import "math"

// Facing is the direction the player sprite looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns a human-readable name for the facing.
func (f Facing) String() string {
	if f == FacingLeft {
		return "Left"
	}
	return "Right"
}

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// BodySpec holds the authored player constants.
type BodySpec struct {
	Width     float64
	Height    float64
	StartX    float64
	Speed     float64
	JumpPower float64
}

// Body is the player: position, velocity and animation state.
// Mutated in place once per frame.
type Body struct {
	Pos       Vec
	Vel       Vec
	Width     float64
	Height    float64
	Speed     float64
	JumpPower float64
	Airborne  bool
	Facing    Facing
	RunTimer  int // Frames the player has been running, 0 when idle
	Frame     int // Animation frame in [0, 8)
}

// NewBody places a body standing on the ground at the authored start x.
func NewBody(spec BodySpec, groundY float64) Body {
	return Body{
		Pos:       Vec{X: spec.StartX, Y: groundY - spec.Height},
		Width:     spec.Width,
		Height:    spec.Height,
		Speed:     spec.Speed,
		JumpPower: spec.JumpPower,
		Facing:    FacingRight,
	}
}

// Bounds returns the body's rectangle in world units.
func (b *Body) Bounds() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Width, H: b.Height}
}

// Bottom returns the y-coordinate of the feet.
func (b *Body) Bottom() float64 {
	return b.Pos.Y + b.Height
}

// Step runs the whole integration for one frame, in order: horizontal
// intent, jump intent, integration, animation, horizontal clamp.
func (b *Body) Step(c Control, gravity float64) {
	b.ApplyIntent(c)
	b.Integrate(gravity)
	b.Animate()
	b.ClampX()
}

// ApplyIntent converts the control record into velocity. Right wins over
// left. Holding jump while airborne does nothing.
func (b *Body) ApplyIntent(c Control) {
	switch {
	case c.Right:
		b.Vel.X = b.Speed
		b.Facing = FacingRight
		b.RunTimer++
	case c.Left:
		b.Vel.X = -b.Speed
		b.Facing = FacingLeft
		b.RunTimer++
	default:
		b.Vel.X = 0
		b.RunTimer = 0
	}

	if c.Jump && !b.Airborne {
		b.Vel.Y = -b.JumpPower
		b.Airborne = true
	}
}

// Integrate advances position by one frame. Gravity has no terminal velocity.
func (b *Body) Integrate(gravity float64) {
	b.Pos.X += b.Vel.X
	b.Vel.Y += gravity
	b.Pos.Y += b.Vel.Y
}

// Animate derives the run-cycle frame from the run timer.
func (b *Body) Animate() {
	if b.RunTimer > 0 {
		b.Frame = (b.RunTimer / 5) % 8
	} else {
		b.Frame = 0
	}
}

// ClampX keeps the body at or right of the world origin.
func (b *Body) ClampX() {
	if b.Pos.X < 0 {
		b.Pos.X = 0
	}
}

// ArmOffset is the vertical arm swing for an animation frame.
func ArmOffset(frame int) float64 {
	return math.Sin(float64(frame)*0.3) * 3
}

// LegOffset is the vertical foot swing for an animation frame.
func LegOffset(frame int) float64 {
	return math.Sin(float64(frame)*0.3) * 4
}
