package input

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned hit area in screen coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p falls inside the rect.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}
