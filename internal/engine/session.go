package engine

// Params are the engine-level constants a session is built from.
type Params struct {
	Gravity      float64
	GroundOffset float64 // groundY = viewport height - GroundOffset
	Body         BodySpec
	Proximity    Proximity
}

// DefaultParams returns the constants the stage was authored for.
func DefaultParams() Params {
	return Params{
		Gravity:      0.8,
		GroundOffset: 100,
		Body: BodySpec{
			Width:     48,
			Height:    72,
			StartX:    100,
			Speed:     5,
			JumpPower: 15,
		},
		Proximity: DefaultProximity(),
	}
}

// Viewport is the host surface size in world units.
type Viewport struct {
	W, H float64
}

// Session bundles everything one play-through mutates. It is owned by a
// single Driver and discarded as a whole on reset.
type Session struct {
	params   Params
	viewport Viewport
	groundY  float64
	geometry Geometry

	body    Body
	camera  Camera
	phase   Phase
	res     Resolution
	overlay Overlay

	frames        int
	furthestStage int
}

// NewSession creates a session at the authored initial values.
func NewSession(p Params, vp Viewport, layout Layout) *Session {
	groundY := vp.H - p.GroundOffset
	return &Session{
		params:        p,
		viewport:      vp,
		groundY:       groundY,
		geometry:      layout.Geometry(groundY),
		body:          NewBody(p.Body, groundY),
		phase:         PhaseNotStarted,
		furthestStage: 1,
	}
}

// Start moves the session from the intro to play. Calling it again is a no-op.
func (s *Session) Start() {
	s.phase = PhasePlaying
}

// Tick simulates one frame with the given intent and returns the overlay.
func (s *Session) Tick(c Control) Overlay {
	s.body.Step(c, s.params.Gravity)
	s.camera.Follow(s.body.Pos.X, s.viewport.W)

	segment := SegmentIndex(s.camera.X, s.geometry.LoopWidth)
	s.res = Resolve(&s.body, &s.geometry, segment, s.groundY, s.params.Proximity)
	s.overlay = Project(s.phase, s.res, s.camera)

	s.frames++
	if stage := SegmentIndex(s.body.Pos.X, s.geometry.LoopWidth) + 1; stage > s.furthestStage {
		s.furthestStage = stage
	}
	return s.overlay
}

// Phase returns the presentation state.
func (s *Session) Phase() Phase { return s.phase }

// Body returns a pointer to the player body.
func (s *Session) Body() *Body { return &s.body }

// Camera returns the camera.
func (s *Session) Camera() Camera { return s.camera }

// Geometry returns the geometry the session was built with.
func (s *Session) Geometry() *Geometry { return &s.geometry }

// GroundY returns the y-coordinate of the ground line.
func (s *Session) GroundY() float64 { return s.groundY }

// Viewport returns the viewport the session was built for.
func (s *Session) Viewport() Viewport { return s.viewport }

// Resolution returns the last frame's resolver output.
func (s *Session) Resolution() Resolution { return s.res }

// Overlay returns the last projected overlay.
func (s *Session) Overlay() Overlay { return s.overlay }

// Frames returns how many frames the session has simulated.
func (s *Session) Frames() int { return s.frames }

// FurthestStage returns the highest stage number the player has entered.
func (s *Session) FurthestStage() int { return s.furthestStage }
