package tui

import "github.com/vovakirdan/termfolio/internal/core"

// keyHold models held keys on terminals, which report presses and
// auto-repeats but never releases. A first press holds an action for the
// initial window, long enough to bridge the terminal's repeat delay. Each
// repeat extends it by the shorter repeat window. When a window runs out
// the action is released.
type keyHold struct {
	initial int
	repeat  int
	left    map[core.Action]int
}

func newKeyHold(initial, repeat int) *keyHold {
	return &keyHold{
		initial: max(initial, 1),
		repeat:  max(repeat, 1),
		left:    make(map[core.Action]int),
	}
}

// Press starts or extends the hold for a movement action.
func (h *keyHold) Press(a core.Action) {
	if !a.IsMovement() {
		return
	}
	if _, held := h.left[a]; held {
		h.left[a] = max(h.left[a], h.repeat)
		return
	}
	h.left[a] = h.initial
}

// Drop forgets an action without waiting for it to expire.
func (h *keyHold) Drop(a core.Action) {
	delete(h.left, a)
}

// Held reports whether an action is currently held.
func (h *keyHold) Held(a core.Action) bool {
	_, ok := h.left[a]
	return ok
}

// Tick counts one frame down and calls release for every expired action.
func (h *keyHold) Tick(release func(core.Action)) {
	for a, n := range h.left {
		n--
		if n > 0 {
			h.left[a] = n
			continue
		}
		delete(h.left, a)
		release(a)
	}
}

// Reset forgets every hold.
func (h *keyHold) Reset() {
	clear(h.left)
}

// opposite returns the direction that a horizontal press cancels.
func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	}
	return core.ActionNone, false
}
