package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

func TestNewVisualMissingSubElements(t *testing.T) {
	base := ebiten.NewImage(8, 8)

	if _, err := NewVisual(nil, nil, Options{}); !errors.Is(err, ErrMissingBase) {
		t.Fatalf("missing base: err = %v", err)
	}
	if _, err := NewVisual(base, nil, Options{}); !errors.Is(err, ErrMissingKnob) {
		t.Fatalf("missing knob: err = %v", err)
	}
}

func TestFadeOutRecentersKnobOnCompletion(t *testing.T) {
	base, knob := CircleImages(32, color.White, color.White)
	anchor := cp.Vector{X: 100, Y: 100}
	v, err := NewVisual(base, knob, Options{Anchor: anchor, AlphaMin: 0.25, AlphaMax: 1, FadeDuration: 0.1})
	if err != nil {
		t.Fatalf("NewVisual: %v", err)
	}

	dragged := cp.Vector{X: 150, Y: 100}
	v.SetKnob(dragged)
	v.FadeOut()

	// mid-fade the knob stays where the finger left it
	v.Update(0.05)
	if v.knobPos != dragged {
		t.Fatalf("knob moved before fade completed: %v", v.knobPos)
	}

	v.Update(0.1)
	if v.knobPos != anchor {
		t.Fatalf("knob should recenter after fade-out, got %v", v.knobPos)
	}
	if v.Alpha() != 0.25 {
		t.Fatalf("alpha = %v, want fade minimum 0.25", v.Alpha())
	}
}

func TestResetSnapsWithoutFade(t *testing.T) {
	base, knob := CircleImages(32, color.White, color.White)
	anchor := cp.Vector{X: 100, Y: 100}
	v, err := NewVisual(base, knob, Options{Anchor: anchor})
	if err != nil {
		t.Fatalf("NewVisual: %v", err)
	}

	v.SetKnob(cp.Vector{X: 160, Y: 140})
	v.Reset()
	if v.knobPos != anchor {
		t.Fatalf("reset should snap the knob to the anchor, got %v", v.knobPos)
	}
	if v.fade.active {
		t.Fatalf("reset must not start a fade")
	}
}
