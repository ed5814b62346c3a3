package tui

import (
	"github.com/vovakirdan/termfolio/internal/core"
)

const (
	buttonW = 7
	buttonH = 3
)

// touchButton is an on-screen control for the pointer source.
type touchButton struct {
	action core.Action
	label  string
	rect   core.Rect
}

// layoutTouchButtons places left and right at the bottom-left corner and
// jump at the bottom-right, one row above the bottom edge.
func layoutTouchButtons(w, h int) []touchButton {
	y := max(h-buttonH-1, 0)
	return []touchButton{
		{action: core.ActionLeft, label: "◀", rect: core.NewRect(1, y, buttonW, buttonH)},
		{action: core.ActionRight, label: "▶", rect: core.NewRect(2+buttonW, y, buttonW, buttonH)},
		{action: core.ActionJump, label: "▲", rect: core.NewRect(max(w-buttonW-1, 0), y, buttonW, buttonH)},
	}
}

// hitTouchButton returns the action of the button under a cell.
func hitTouchButton(buttons []touchButton, x, y int) (core.Action, bool) {
	for _, b := range buttons {
		if b.rect.Contains(x, y) {
			return b.action, true
		}
	}
	return core.ActionNone, false
}

func drawTouchButtons(s *core.Screen, buttons []touchButton, pressed core.Action) {
	for _, b := range buttons {
		c := core.ColorGray
		if b.action == pressed {
			c = core.ColorGold
		}
		s.DrawRect(b.rect, ' ', core.ColorDefault)
		s.DrawBox(b.rect, c)
		s.SetColored(b.rect.X+b.rect.W/2, b.rect.Y+b.rect.H/2, []rune(b.label)[0], c)
	}
}
