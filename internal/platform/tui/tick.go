// Package tui hosts the platformer engine inside a Bubble Tea program.
// It maps keys, mouse presses and resizes onto the engine driver and turns
// the cell buffer into styled terminal output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termfolio/internal/engine"
)

// TickMsg fires a scheduled frame.
type TickMsg struct {
	ID engine.FrameID
}

// frameScheduler implements engine.Scheduler on top of tea.Tick.
//
// Bubble Tea only accepts commands as Update return values, so Schedule
// records the next tick and Update collects it through Cmd. At most one
// frame is pending; a TickMsg for a cancelled or replaced frame is stale
// and ignored.
type frameScheduler struct {
	interval time.Duration
	next     engine.FrameID
	pending  engine.FrameID
	fn       func()
	cmd      tea.Cmd
}

var _ engine.Scheduler = (*frameScheduler)(nil)

func newFrameScheduler(fps int) *frameScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &frameScheduler{interval: time.Second / time.Duration(fps)}
}

// Schedule implements engine.Scheduler.
func (s *frameScheduler) Schedule(fn func()) engine.FrameID {
	s.next++
	id := s.next
	s.pending = id
	s.fn = fn
	s.cmd = tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
	return id
}

// Cancel implements engine.Scheduler.
func (s *frameScheduler) Cancel(id engine.FrameID) {
	if id == 0 || id != s.pending {
		return
	}
	s.pending = 0
	s.fn = nil
	s.cmd = nil
}

// Fire runs the frame a TickMsg refers to.
func (s *frameScheduler) Fire(id engine.FrameID) {
	if id == 0 || id != s.pending {
		return
	}
	fn := s.fn
	s.pending = 0
	s.fn = nil
	fn()
}

// Cmd hands over the tick command for the pending frame, once.
func (s *frameScheduler) Cmd() tea.Cmd {
	cmd := s.cmd
	s.cmd = nil
	return cmd
}
