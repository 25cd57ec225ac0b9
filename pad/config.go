package pad

const (
	defaultFadeAlphaMin = 0.25
	defaultFadeAlphaMax = 1.0

	// tapWindow is how long after a touch-down further downs keep
	// incrementing the tap counter.
	tapWindow = 0.25

	// minRadius floors the computed touch radius so normalization never
	// divides by zero, even for a zero-size pad.
	minRadius = 1e-4
)

// Config holds per-pad behavior settings.
type Config struct {
	// Size is the pad diameter in screen units. The touch radius is half
	// of it, clamped against the screen bounds.
	Size float64

	// FixedInSpace keeps the drag origin at the visual anchor. When false
	// the pad jumps to wherever the finger first lands.
	FixedInSpace bool

	// FadeEnabled cross-fades the visuals between FadeAlphaMin and
	// FadeAlphaMax on latch and release instead of resetting them in place.
	FadeEnabled  bool
	FadeAlphaMin float64
	FadeAlphaMax float64
}

// normalize fills fade defaults, each bound independently, and keeps the
// range ordered. Size is left alone: a zero size is degenerate geometry
// handled by the radius floor, not a config default.
func (c Config) normalize() Config {
	if c.FadeAlphaMax <= 0 {
		c.FadeAlphaMax = defaultFadeAlphaMax
	}
	if c.FadeAlphaMin <= 0 {
		c.FadeAlphaMin = defaultFadeAlphaMin
	}
	if c.FadeAlphaMin > c.FadeAlphaMax {
		c.FadeAlphaMin = c.FadeAlphaMax
	}
	return c
}
