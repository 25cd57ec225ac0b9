// Package pad implements a virtual on-screen joystick for touch input.
//
// A Joystick latches onto a single pointer id on touch-down, converts
// subsequent drag positions into a direction vector normalized to
// [-1,1] on each axis, and releases on touch-up. A Registry shared by
// sibling pads guarantees that a finger is latched by at most one pad
// at a time. All calls are synchronous; the host delivers events from
// its own update loop.
package pad

import (
	"github.com/jakecoffman/cp"

	"github.com/jennydvr/virtualpad/common"
)

// DefaultSize is the pad diameter in screen units used by config loaders
// when a spec omits one.
const DefaultSize = 200.0

// noFinger marks the idle state.
const noFinger = -1

// Screen reports the host's current screen size, used to clamp the touch
// radius so the pad never normalizes against space it cannot cover.
type Screen interface {
	Bounds() cp.Vector
}

// Visual is the rendering collaborator a pad drives. A nil Visual is
// legal; the pad then runs headless and only its vector output is live.
type Visual interface {
	// Anchor is the pad's resting center in screen space.
	Anchor() cp.Vector
	// SetAnchor moves the resting center (non-fixed pads follow the finger).
	SetAnchor(p cp.Vector)
	// SetKnob places the knob at a screen position.
	SetKnob(p cp.Vector)
	// FadeIn and FadeOut cross-fade the pad's alpha; Reset snaps the knob
	// back to the anchor without fading. Restart uses exactly one of them.
	FadeIn()
	FadeOut()
	Reset()
}

// Joystick tracks one pad's touch state. The zero value is not usable;
// construct with New.
type Joystick struct {
	cfg      Config
	registry *Registry
	screen   Screen
	visual   Visual

	activeFinger int
	origin       cp.Vector
	radius       float64
	position     cp.Vector

	tapCount     int
	tapRemaining float64
}

// New builds an idle pad and registers it with the registry. Registry,
// screen, and visual may each be nil for standalone or headless use.
func New(cfg Config, registry *Registry, screen Screen, visual Visual) *Joystick {
	j := &Joystick{
		cfg:          cfg.normalize(),
		registry:     registry,
		screen:       screen,
		visual:       visual,
		activeFinger: noFinger,
	}
	registry.Register(j)
	return j
}

// OnTouchDown latches the pad onto a pointer. A pad tracks exactly one
// finger, so a down while already latched is ignored.
func (j *Joystick) OnTouchDown(id int, pos cp.Vector) {
	if j.activeFinger != noFinger {
		return
	}

	j.activeFinger = id
	j.origin = pos
	if j.cfg.FixedInSpace && j.visual != nil {
		j.origin = j.visual.Anchor()
	}
	j.radius = j.touchRadius()

	if j.tapRemaining > 0 {
		j.tapCount++
	} else {
		j.tapCount = 1
	}
	j.tapRemaining = tapWindow

	// Claim the finger from siblings before applying the drag, so a
	// same-frame re-latch elsewhere cannot clobber this pad afterwards.
	if j.registry != nil {
		j.registry.NotifyLatch(id, j)
	}

	// Process the down as a drag too; the knob snaps to the finger with
	// no frame of lag.
	j.OnTouchDrag(id, pos)

	if j.visual != nil {
		if !j.cfg.FixedInSpace {
			j.visual.SetAnchor(j.origin)
		}
		if j.cfg.FadeEnabled {
			j.visual.FadeIn()
		}
	}
}

// OnTouchDrag updates the normalized position from an absolute pointer
// position. Events for other pointer ids are dropped.
func (j *Joystick) OnTouchDrag(id int, pos cp.Vector) {
	if j.activeFinger == noFinger || id != j.activeFinger {
		return
	}

	// Vector clamp: magnitude capped at the radius, direction preserved.
	delta := pos.Sub(j.origin).Clamp(j.radius)
	j.position = cp.Vector{
		X: common.Clamp(delta.X/j.radius, -1, 1),
		Y: common.Clamp(delta.Y/j.radius, -1, 1),
	}

	if j.visual != nil {
		j.visual.SetKnob(j.origin.Add(delta))
	}
}

// OnTouchUp releases the pad if the pointer is the latched one; releases
// for other pointers are dropped.
func (j *Joystick) OnTouchUp(id int) {
	if j.activeFinger == noFinger || id != j.activeFinger {
		return
	}
	j.Restart()
}

// Restart forces the pad back to idle, zeroing its output. With fading
// enabled the visuals fade out and re-center hidden; otherwise they reset
// in place.
func (j *Joystick) Restart() {
	j.activeFinger = noFinger
	j.position = cp.Vector{}
	j.origin = cp.Vector{}

	if j.visual == nil {
		return
	}
	if j.cfg.FadeEnabled {
		j.visual.FadeOut()
	} else {
		j.visual.Reset()
	}
}

// ReleaseFinger restarts the pad iff it currently holds the given pointer
// id. The registry calls this when another pad claims the finger.
func (j *Joystick) ReleaseFinger(id int) {
	if j.activeFinger == noFinger || id != j.activeFinger {
		return
	}
	j.Restart()
}

// Advance decays the tap window by the elapsed time in seconds. When the
// window expires the tap counter resets to zero.
func (j *Joystick) Advance(dt float64) {
	if j.tapRemaining <= 0 {
		return
	}
	j.tapRemaining -= dt
	if j.tapRemaining <= 0 {
		j.tapRemaining = 0
		j.tapCount = 0
	}
}

// Position is the pad's output direction, each axis in [-1,1]. It is
// (0,0) while idle.
func (j *Joystick) Position() cp.Vector {
	return j.position
}

// TapCount is the number of touch-downs within the rolling tap window.
func (j *Joystick) TapCount() int {
	return j.tapCount
}

// IsFingerDown reports whether a pointer is latched.
func (j *Joystick) IsFingerDown() bool {
	return j.activeFinger != noFinger
}

// Config returns the pad's current settings.
func (j *Joystick) Config() Config {
	return j.cfg
}

// SetConfig swaps the pad's settings. A latched pad keeps its current
// origin and radius until the next touch-down.
func (j *Joystick) SetConfig(cfg Config) {
	j.cfg = cfg.normalize()
}

// touchRadius is half the configured size, clamped on both axes so the
// pad plus a half-size margin fits the screen, and floored so it is safe
// to divide by.
func (j *Joystick) touchRadius() float64 {
	half := j.cfg.Size / 2
	r := half
	if j.screen != nil {
		b := j.screen.Bounds()
		if m := b.X/2 - half; m < r {
			r = m
		}
		if m := b.Y/2 - half; m < r {
			r = m
		}
	}
	if r < minRadius {
		r = minRadius
	}
	return r
}
