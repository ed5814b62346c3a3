package engine

import "github.com/vovakirdan/termfolio/internal/core"

// Control is the persistent intent record read at the top of each frame.
type Control struct {
	Left  bool
	Right bool
	Jump  bool
}

// Adapter normalizes press/release events from any source (keyboard, touch
// buttons, pointer) into a single Control.
//
// Only one flag per logical action is kept: releasing an action from one
// source clears it even if another source still holds it.
type Adapter struct {
	state   Control
	onInput []func()
}

// NewAdapter creates an adapter with every action released.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// OnInput registers a callback fired on every press, before the intent
// record is read by the next frame.
func (a *Adapter) OnInput(fn func()) {
	a.onInput = append(a.onInput, fn)
}

// Press marks a movement action as held. Any press counts as an interaction.
func (a *Adapter) Press(action core.Action) {
	a.set(action, true)
	for _, fn := range a.onInput {
		fn()
	}
}

// Release marks a movement action as no longer held.
func (a *Adapter) Release(action core.Action) {
	a.set(action, false)
}

func (a *Adapter) set(action core.Action, held bool) {
	switch action {
	case core.ActionLeft:
		a.state.Left = held
	case core.ActionRight:
		a.state.Right = held
	case core.ActionJump:
		a.state.Jump = held
	}
}

// Snapshot returns the current intent record.
func (a *Adapter) Snapshot() Control {
	return a.state
}

// ReleaseAll clears every held action.
func (a *Adapter) ReleaseAll() {
	a.state = Control{}
}
