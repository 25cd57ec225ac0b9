package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CircleImages builds filled-circle base and knob images at the given
// pixel diameter, so hosts can run pads without shipping art assets.
func CircleImages(diameter int, baseColor, knobColor color.Color) (base, knob *ebiten.Image) {
	if diameter <= 0 {
		diameter = 128
	}
	base = circleImage(diameter, baseColor)
	knob = circleImage(diameter, knobColor)
	return base, knob
}

func circleImage(d int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(d, d)
	r := float32(d) / 2
	vector.FillCircle(img, r, r, r, c, true)
	return img
}
