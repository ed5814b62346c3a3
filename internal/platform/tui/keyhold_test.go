package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termfolio/internal/core"
)

func TestKeyHoldInitialAndRepeatWindows(t *testing.T) {
	h := newKeyHold(5, 2)
	var released []core.Action
	release := func(a core.Action) { released = append(released, a) }

	h.Press(core.ActionRight)
	for range 4 {
		h.Tick(release)
	}
	if !h.Held(core.ActionRight) || len(released) != 0 {
		t.Fatalf("released before the initial window ran out: %v", released)
	}

	// A repeat tops the hold up to the repeat window.
	h.Press(core.ActionRight)
	h.Tick(release)
	if !h.Held(core.ActionRight) {
		t.Fatal("repeat did not extend the hold")
	}
	h.Tick(release)
	if len(released) != 1 || released[0] != core.ActionRight {
		t.Fatalf("released = %v, want [Right]", released)
	}

	// After a release the next press is a first press again.
	h.Press(core.ActionRight)
	for range 4 {
		h.Tick(release)
	}
	if len(released) != 1 {
		t.Errorf("released = %v, want the initial window again", released)
	}
	h.Tick(release)
	if len(released) != 2 {
		t.Errorf("released = %v, want a second release", released)
	}
}

func TestKeyHoldIgnoresNonMovement(t *testing.T) {
	h := newKeyHold(3, 1)
	h.Press(core.ActionAny)
	h.Press(core.ActionScreenshot)
	if len(h.left) != 0 {
		t.Errorf("held %v, want nothing", h.left)
	}
}

func TestKeyHoldDropAndReset(t *testing.T) {
	h := newKeyHold(3, 1)
	h.Press(core.ActionLeft)
	h.Press(core.ActionJump)

	h.Drop(core.ActionLeft)
	if h.Held(core.ActionLeft) {
		t.Error("Drop() kept the action")
	}
	h.Reset()
	if h.Held(core.ActionJump) {
		t.Error("Reset() kept the action")
	}
}

func TestOpposite(t *testing.T) {
	tests := []struct {
		in   core.Action
		want core.Action
		ok   bool
	}{
		{core.ActionLeft, core.ActionRight, true},
		{core.ActionRight, core.ActionLeft, true},
		{core.ActionJump, core.ActionNone, false},
		{core.ActionAny, core.ActionNone, false},
	}
	for _, tt := range tests {
		got, ok := opposite(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("opposite(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionJump, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, false},
		{"esc without menu", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionAny, false},
		{"other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionAny, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isQuit := keys.MapKey(tt.msg)
			if got != tt.want || isQuit != tt.isQuit {
				t.Errorf("MapKey() = %v, %v; want %v, %v", got, isQuit, tt.want, tt.isQuit)
			}
		})
	}

	keys.Back.SetEnabled(true)
	if got, _ := keys.MapKey(tea.KeyMsg{Type: tea.KeyEsc}); got != core.ActionBack {
		t.Errorf("esc with menu = %v, want Back", got)
	}
}
