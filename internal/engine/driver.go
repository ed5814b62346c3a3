package engine

import (
	"errors"
	"fmt"
)

// ErrNoContext is returned when the host surface cannot provide a Renderer.
var ErrNoContext = errors.New("engine: surface has no drawing context")

// DefaultTouchBreakpoint is the viewport width below which on-screen
// buttons are shown.
const DefaultTouchBreakpoint = 768

// FrameID identifies a scheduled frame so it can be cancelled.
type FrameID uint64

// Scheduler runs fn once, at the host's next frame opportunity.
type Scheduler interface {
	Schedule(fn func()) FrameID
	Cancel(id FrameID)
}

// Surface is the host drawing area.
type Surface interface {
	Context() (Renderer, error)
	Size() Viewport
}

// OverlaySink receives the presentation overlay after every frame.
type OverlaySink interface {
	Present(ov Overlay)
}

// OverlaySinkFunc adapts a function to OverlaySink.
type OverlaySinkFunc func(Overlay)

// Present calls f(ov).
func (f OverlaySinkFunc) Present(ov Overlay) { f(ov) }

// Hooks let hosts observe the loop. All are optional.
type Hooks struct {
	// BeforeFrame runs before the control record is read.
	BeforeFrame func()
	// AfterFrame runs once the overlay has been presented.
	AfterFrame func(s *Session)
	// OnReset runs when a session is discarded by Resize or SetLayout.
	OnReset func(old *Session)
	// OnStageComplete runs on the frame a stage banner first appears.
	OnStageComplete func(stage int)
}

// Options configure a Driver.
type Options struct {
	Params          Params
	Layout          Layout
	Title           string
	Touch           bool
	TouchBreakpoint float64
	Hooks           Hooks
}

// Stats summarize everything a driver has run, across resets.
type Stats struct {
	Frames        int
	FurthestStage int
	Resets        int
}

// Driver owns one Session and steps it once per scheduled frame.
type Driver struct {
	opts     Options
	sched    Scheduler
	surface  Surface
	sink     OverlaySink
	renderer Renderer
	input    *Adapter
	session  *Session

	pending  FrameID
	running  bool
	bannerOn bool
	archived Stats
}

// NewDriver wires a driver to its host. Nothing runs until Start.
func NewDriver(opts Options, sched Scheduler, surface Surface, sink OverlaySink) *Driver {
	if opts.TouchBreakpoint == 0 {
		opts.TouchBreakpoint = DefaultTouchBreakpoint
	}
	if sink == nil {
		sink = OverlaySinkFunc(func(Overlay) {})
	}
	d := &Driver{
		opts:    opts,
		sched:   sched,
		surface: surface,
		sink:    sink,
		input:   NewAdapter(),
	}
	d.input.OnInput(d.StartSignal)
	return d
}

// Start acquires the drawing context, creates the session and schedules
// the first frame.
func (d *Driver) Start() error {
	if d.running {
		return nil
	}
	r, err := d.surface.Context()
	if err != nil {
		return fmt.Errorf("engine: start: %w", err)
	}
	if r == nil {
		return fmt.Errorf("engine: start: %w", ErrNoContext)
	}
	d.renderer = r
	d.session = d.newSession()
	d.running = true
	d.schedule()
	return nil
}

// Stop cancels the pending frame. No further frames run.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.sched.Cancel(d.pending)
	d.pending = 0
	d.running = false
}

// Resize discards the session and starts over at the new surface size.
func (d *Driver) Resize() {
	if !d.running {
		return
	}
	d.reset()
}

// SetLayout swaps the stage and resets the session.
func (d *Driver) SetLayout(l Layout, title string) {
	d.opts.Layout = l
	d.opts.Title = title
	if d.running {
		d.reset()
	}
}

// StartSignal is the host's direct-interaction edge out of the intro.
func (d *Driver) StartSignal() {
	if d.session != nil {
		d.session.Start()
	}
}

// Input returns the control adapter input sources write to.
func (d *Driver) Input() *Adapter { return d.input }

// Session returns the live session, or nil before Start.
func (d *Driver) Session() *Session { return d.session }

// Running reports whether frames are being scheduled.
func (d *Driver) Running() bool { return d.running }

// Touch reports whether the current surface uses on-screen buttons.
func (d *Driver) Touch() bool {
	return IsTouchLayout(d.surface.Size(), d.opts.Touch, d.opts.TouchBreakpoint)
}

// Stats returns totals across every session this driver has run.
func (d *Driver) Stats() Stats {
	st := d.archived
	if d.session != nil {
		st.Frames += d.session.Frames()
		st.FurthestStage = max(st.FurthestStage, d.session.FurthestStage())
	}
	return st
}

func (d *Driver) newSession() *Session {
	d.bannerOn = false
	return NewSession(d.opts.Params, d.surface.Size(), d.opts.Layout)
}

func (d *Driver) reset() {
	d.sched.Cancel(d.pending)
	d.pending = 0

	old := d.session
	d.archived.Frames += old.Frames()
	d.archived.FurthestStage = max(d.archived.FurthestStage, old.FurthestStage())
	d.archived.Resets++

	d.input.ReleaseAll()
	d.session = d.newSession()
	if h := d.opts.Hooks.OnReset; h != nil {
		h(old)
	}
	d.schedule()
}

func (d *Driver) schedule() {
	d.pending = d.sched.Schedule(d.frame)
}

func (d *Driver) frame() {
	d.pending = 0
	if !d.running {
		return
	}

	d.renderer.Clear()
	if h := d.opts.Hooks.BeforeFrame; h != nil {
		h()
	}
	ov := d.session.Tick(d.input.Snapshot())
	paint(d.renderer, d.session, d.opts.Title, d.Touch())
	d.sink.Present(ov)

	if ov.StageComplete && !d.bannerOn {
		if h := d.opts.Hooks.OnStageComplete; h != nil {
			h(ov.Stage)
		}
	}
	d.bannerOn = ov.StageComplete

	if h := d.opts.Hooks.AfterFrame; h != nil {
		h(d.session)
	}
	d.schedule()
}
