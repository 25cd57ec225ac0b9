package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jennydvr/virtualpad/pad"
)

func writeSpec(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pads.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

func TestLoadLayout(t *testing.T) {
	path := writeSpec(t, `
pads:
  - name: move
    size: 240
    anchor: {x: 0.18, y: 0.75}
    fade:
      enabled: true
      min: 0.3
      max: 0.9
      duration: 0.15
  - name: aim
    anchor: {x: 0.82, y: 0.75}
    fixed_in_space: true
`)

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if len(layout.Pads) != 2 {
		t.Fatalf("pads = %d, want 2", len(layout.Pads))
	}

	move := layout.Pads[0]
	if move.Name != "move" || move.Size != 240 || !move.Fade.Enabled {
		t.Fatalf("move pad parsed wrong: %+v", move)
	}
	if move.Fade.Min != 0.3 || move.Fade.Max != 0.9 || move.Fade.Duration != 0.15 {
		t.Fatalf("move fade parsed wrong: %+v", move.Fade)
	}

	// the aim pad relies on defaults
	aim := layout.Pads[1]
	if aim.Size != pad.DefaultSize {
		t.Fatalf("aim size = %v, want default %v", aim.Size, pad.DefaultSize)
	}
	if !aim.FixedInSpace {
		t.Fatalf("aim should be fixed in space")
	}
	if aim.Fade.Min != 0.25 || aim.Fade.Max != 1 || aim.Fade.Duration != 0.2 {
		t.Fatalf("aim fade defaults wrong: %+v", aim.Fade)
	}

	cfg := aim.Config()
	want := pad.Config{Size: pad.DefaultSize, FixedInSpace: true, FadeAlphaMin: 0.25, FadeAlphaMax: 1}
	if cfg != want {
		t.Fatalf("Config() = %+v, want %+v", cfg, want)
	}
}

func TestLoadLayoutKeepsPartialFadeBounds(t *testing.T) {
	path := writeSpec(t, `
pads:
  - name: move
    fade:
      enabled: true
      min: 0.1
`)

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	fade := layout.Pads[0].Fade
	if fade.Min != 0.1 {
		t.Fatalf("explicit fade min overwritten: %v", fade.Min)
	}
	if fade.Max != 1 {
		t.Fatalf("fade max default = %v, want 1", fade.Max)
	}
}

func TestLoadLayoutErrors(t *testing.T) {
	t.Run("missing_file", func(t *testing.T) {
		if _, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("bad_yaml", func(t *testing.T) {
		path := writeSpec(t, "pads: [:::")
		if _, err := LoadLayout(path); err == nil {
			t.Fatalf("expected error for malformed yaml")
		}
	})

	t.Run("no_pads", func(t *testing.T) {
		path := writeSpec(t, "pads: []")
		if _, err := LoadLayout(path); err == nil {
			t.Fatalf("expected error for empty layout")
		}
	})
}

func TestIsSpecFile(t *testing.T) {
	cases := map[string]bool{
		"pads.yaml":    true,
		"pads.YML":     true,
		"pads.json":    false,
		"pads.yaml~":   false,
		"pads":         false,
		"dir/sub.yaml": true,
	}
	for path, want := range cases {
		if got := isSpecFile(path); got != want {
			t.Errorf("isSpecFile(%q) = %v, want %v", path, got, want)
		}
	}
}
