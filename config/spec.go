// Package config loads pad layouts from YAML spec files and can watch
// them for live reload.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jennydvr/virtualpad/pad"
)

// AnchorSpec positions a pad's resting center as fractions of the screen
// size, so layouts are resolution independent.
type AnchorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// FadeSpec configures the pad cross-fade.
type FadeSpec struct {
	Enabled  bool    `yaml:"enabled"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Duration float64 `yaml:"duration"`
}

// PadSpec describes one pad.
type PadSpec struct {
	Name         string     `yaml:"name"`
	Size         float64    `yaml:"size"`
	Anchor       AnchorSpec `yaml:"anchor"`
	FixedInSpace bool       `yaml:"fixed_in_space"`
	Fade         FadeSpec   `yaml:"fade"`
}

// LayoutSpec is the top-level pad layout document.
type LayoutSpec struct {
	Pads []PadSpec `yaml:"pads"`
}

// LoadSpec reads and unmarshals any YAML spec file.
func LoadSpec[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", path, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return spec, nil
}

// LoadLayout reads a pad layout and fills in defaults.
func LoadLayout(path string) (*LayoutSpec, error) {
	layout, err := LoadSpec[LayoutSpec](path)
	if err != nil {
		return nil, err
	}
	if len(layout.Pads) == 0 {
		return nil, fmt.Errorf("config: %s declares no pads", path)
	}
	for i := range layout.Pads {
		layout.Pads[i].applyDefaults()
	}
	return &layout, nil
}

func (s *PadSpec) applyDefaults() {
	if s.Size <= 0 {
		s.Size = pad.DefaultSize
	}
	if s.Fade.Max <= 0 {
		s.Fade.Max = 1
	}
	if s.Fade.Min <= 0 {
		s.Fade.Min = 0.25
	}
	if s.Fade.Min > s.Fade.Max {
		s.Fade.Min = s.Fade.Max
	}
	if s.Fade.Duration <= 0 {
		s.Fade.Duration = 0.2
	}
}

// Config maps the spec onto the pad core's settings.
func (s PadSpec) Config() pad.Config {
	return pad.Config{
		Size:         s.Size,
		FixedInSpace: s.FixedInSpace,
		FadeEnabled:  s.Fade.Enabled,
		FadeAlphaMin: s.Fade.Min,
		FadeAlphaMax: s.Fade.Max,
	}
}
