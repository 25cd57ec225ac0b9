package render

import "github.com/jakecoffman/cp"

// Camera maps between screen and world coordinates for a 2D view
// centered on Pos with a zoom factor. It plays the plane-projection role
// for pads whose output drives world-space objects: the plane is the 2D
// canvas itself.
type Camera struct {
	Pos cp.Vector

	screenW float64
	screenH float64
	zoom    float64
}

// NewCamera creates a camera for the given logical screen size.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: float64(screenW), screenH: float64(screenH), zoom: zoom}
	c.Pos = cp.Vector{X: c.screenW / 2, Y: c.screenH / 2}
	return c
}

// SetZoom updates the zoom factor; non-positive values are ignored.
func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// viewTopLeft is the world-space top-left of the current view.
func (c *Camera) viewTopLeft() cp.Vector {
	viewW := c.screenW / c.zoom
	viewH := c.screenH / c.zoom
	return cp.Vector{X: c.Pos.X - viewW/2, Y: c.Pos.Y - viewH/2}
}

// ScreenToWorld projects a screen point into world space. It reports
// false when the camera is degenerate (zero zoom) and no projection
// exists.
func (c *Camera) ScreenToWorld(p cp.Vector) (cp.Vector, bool) {
	if c == nil || c.zoom <= 0 {
		return cp.Vector{}, false
	}
	tl := c.viewTopLeft()
	return cp.Vector{X: tl.X + p.X/c.zoom, Y: tl.Y + p.Y/c.zoom}, true
}

// WorldToScreen maps a world point onto the screen.
func (c *Camera) WorldToScreen(p cp.Vector) cp.Vector {
	tl := c.viewTopLeft()
	return cp.Vector{X: (p.X - tl.X) * c.zoom, Y: (p.Y - tl.Y) * c.zoom}
}
