// Package render draws a pad's base and knob on an ebiten screen and
// animates the cross-fade the pad core requests through the pad.Visual
// contract.
package render

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// Missing sub-element errors are fatal at setup; a pad is never run with
// partial visuals.
var (
	ErrMissingBase = errors.New("render: pad visual requires a base image")
	ErrMissingKnob = errors.New("render: pad visual requires a knob image")
)

// knobRatio is the knob diameter relative to the pad size.
const knobRatio = 0.45

const defaultFadeDuration = 0.2

// Options configure a pad visual.
type Options struct {
	// Anchor is the pad's resting center in screen coordinates.
	Anchor cp.Vector
	// Size is the drawn base diameter in screen units.
	Size float64
	// AlphaMin and AlphaMax bound the cross-fade. Zero values mean 0 and 1.
	AlphaMin float64
	AlphaMax float64
	// FadeDuration is the fade time in seconds; zero picks a default.
	FadeDuration float64
}

// Visual renders one pad. It implements pad.Visual.
type Visual struct {
	base *ebiten.Image
	knob *ebiten.Image

	anchor  cp.Vector
	knobPos cp.Vector
	size    float64

	alphaMin float64
	alphaMax float64
	fadeDur  float64
	fade     crossFade

	// recenter the knob once a fade-out finishes, so the snap back to
	// the anchor happens while the pad is dim.
	recenterOnFade bool
}

// NewVisual builds a pad visual from its two sub-element images. Missing
// images are a fatal configuration error.
func NewVisual(base, knob *ebiten.Image, opts Options) (*Visual, error) {
	if base == nil {
		return nil, ErrMissingBase
	}
	if knob == nil {
		return nil, ErrMissingKnob
	}
	if opts.Size <= 0 {
		opts.Size = float64(base.Bounds().Dx())
	}
	if opts.AlphaMax <= 0 {
		opts.AlphaMax = 1
	}
	if opts.FadeDuration <= 0 {
		opts.FadeDuration = defaultFadeDuration
	}
	v := &Visual{
		base:     base,
		knob:     knob,
		anchor:   opts.Anchor,
		knobPos:  opts.Anchor,
		size:     opts.Size,
		alphaMin: opts.AlphaMin,
		alphaMax: opts.AlphaMax,
		fadeDur:  opts.FadeDuration,
	}
	v.fade.alpha = opts.AlphaMax
	return v, nil
}

// Anchor returns the pad's resting center.
func (v *Visual) Anchor() cp.Vector {
	return v.anchor
}

// SetAnchor moves the resting center; the knob follows.
func (v *Visual) SetAnchor(p cp.Vector) {
	v.anchor = p
	v.knobPos = p
}

// SetKnob places the knob at a screen position.
func (v *Visual) SetKnob(p cp.Vector) {
	v.knobPos = p
}

// FadeIn animates toward the maximum alpha.
func (v *Visual) FadeIn() {
	v.recenterOnFade = false
	v.fade.start(v.alphaMax, v.fadeDur)
}

// FadeOut animates toward the minimum alpha and re-centers the knob when
// the fade completes.
func (v *Visual) FadeOut() {
	v.recenterOnFade = true
	v.fade.start(v.alphaMin, v.fadeDur)
}

// Reset snaps the knob back to the anchor with no fade.
func (v *Visual) Reset() {
	v.fade.active = false
	v.knobPos = v.anchor
}

// Alpha is the current fade alpha, mainly for tests and debug overlays.
func (v *Visual) Alpha() float64 {
	return v.fade.alpha
}

// Size is the drawn base diameter.
func (v *Visual) Size() float64 {
	return v.size
}

// Update advances the fade animation by dt seconds.
func (v *Visual) Update(dt float64) {
	if v.fade.update(dt) && v.recenterOnFade {
		v.knobPos = v.anchor
		v.recenterOnFade = false
	}
}

// Draw renders the base and knob centered on their positions.
func (v *Visual) Draw(screen *ebiten.Image) {
	alpha := float32(v.fade.alpha)
	drawCentered(screen, v.base, v.anchor, v.size, alpha)
	drawCentered(screen, v.knob, v.knobPos, v.size*knobRatio, alpha)
}

func drawCentered(screen, img *ebiten.Image, center cp.Vector, size float64, alpha float32) {
	w := img.Bounds().Dx()
	if w == 0 || size <= 0 {
		return
	}
	scale := size / float64(w)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(center.X-size/2, center.Y-size/2)
	op.ColorScale.Scale(1, 1, 1, alpha)
	screen.DrawImage(img, op)
}
