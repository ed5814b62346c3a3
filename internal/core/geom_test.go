package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3)},
		{"overhang left/top", NewRect(-2, -1, 5, 4), NewRect(0, 0, 3, 3)},
		{"overhang right/bottom", NewRect(8, 8, 5, 5), NewRect(8, 8, 2, 2)},
		{"fully outside", NewRect(20, 20, 3, 3), NewRect(20, 20, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Clip(10, 10)
			if got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}

	if !NewRect(20, 20, 3, 3).Clip(10, 10).Empty() {
		t.Error("clipped rect outside the screen should be empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex      string
		expected Color
	}{
		{"#4CAF50", ColorBrightGreen},
		{"#2156A3", ColorBlue},
		{"#FF9800", ColorOrange},
		{"#FFD700", ColorGold},
		{"#fff", ColorBrightWhite},
		{"not-a-color", ColorDefault},
		{"", ColorDefault},
	}

	for _, tc := range tests {
		t.Run(tc.hex, func(t *testing.T) {
			if got := ParseHexColor(tc.hex); got != tc.expected {
				t.Errorf("ParseHexColor(%q) = %d, expected %d", tc.hex, got, tc.expected)
			}
		})
	}
}

func TestActionIsMovement(t *testing.T) {
	for _, a := range []Action{ActionLeft, ActionRight, ActionJump} {
		if !a.IsMovement() {
			t.Errorf("%s should be a movement action", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionAny, ActionQuit, ActionScreenshot} {
		if a.IsMovement() {
			t.Errorf("%s should not be a movement action", a)
		}
	}
}
