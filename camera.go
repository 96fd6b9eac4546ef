package eventsystem

import "math"

// Camera maps between screen space and the world space a raycaster tests in.
// Raycasters expose their camera through EventCamera so hits from different
// cameras can be ordered by Depth.
type Camera struct {
	Name string
	// Depth orders cameras; hits seen through a higher-depth camera win.
	Depth float64
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect
}

// NewCamera creates a camera looking at the center of viewport, so screen
// and world coordinates coincide until the camera is moved.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		X:        viewport.X + viewport.Width/2,
		Y:        viewport.Y + viewport.Height/2,
		Viewport: viewport,
	}
}

// viewMatrix computes the world-to-screen matrix.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) viewMatrix() [6]float64 {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	return [6]float64{a, cc, b, d, tx, ty}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.viewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return transformPoint(invertAffine(c.viewMatrix()), sx, sy)
}

// ContainsScreen reports whether a screen point falls inside the viewport.
func (c *Camera) ContainsScreen(sx, sy float64) bool {
	return c.Viewport.Contains(sx, sy)
}
