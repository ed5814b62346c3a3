package engine

import "math"

// Camera is a single horizontal offset. Vertical offset is always 0.
type Camera struct {
	X float64
}

// Follow snaps the camera so the player sits a third into the viewport.
// No smoothing: the camera is a pure function of the player position.
func (c *Camera) Follow(playerX, viewportW float64) {
	c.X = math.Max(0, playerX-viewportW/3)
}

// ToScreen converts a world x-coordinate into a screen x-coordinate.
func (c Camera) ToScreen(worldX float64) float64 {
	return worldX - c.X
}
