package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/jennydvr/virtualpad/common"
	"github.com/jennydvr/virtualpad/config"
	"github.com/jennydvr/virtualpad/input"
	"github.com/jennydvr/virtualpad/pad"
	"github.com/jennydvr/virtualpad/render"
	"github.com/jennydvr/virtualpad/single"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	playerRadius = 16
	playerSpeed  = 260
	aimReach     = 120
)

// screenSize satisfies pad.Screen with the game's logical resolution.
type screenSize struct{}

func (screenSize) Bounds() cp.Vector {
	return cp.Vector{X: baseWidth, Y: baseHeight}
}

// padEntry ties one joystick to its visual and layout name.
type padEntry struct {
	name     string
	joystick *pad.Joystick
	visual   *render.Visual
}

type Game struct {
	registry   *pad.Registry
	dispatcher *input.Dispatcher
	pads       []*padEntry

	camera *render.Camera
	space  *cp.Space
	body   *cp.Body

	specPath string
	watcher  *config.Watcher

	settings     *single.Holder[*ebitenui.UI]
	showSettings bool
}

// NewGame builds the demo: pads from the layout spec, a chipmunk body the
// move pad drives, and an optional spec watcher for live reload.
func NewGame(specPath string, watch bool) (*Game, error) {
	g := &Game{
		registry:   pad.NewRegistry(),
		dispatcher: input.NewDispatcher(),
		camera:     render.NewCamera(baseWidth, baseHeight, 1),
		specPath:   specPath,
	}
	g.settings = single.NewHolder(func() (*ebitenui.UI, error) {
		return newSettingsUI(g), nil
	})

	layout, err := g.loadLayout()
	if err != nil {
		return nil, err
	}
	if err := g.buildPads(layout); err != nil {
		return nil, err
	}

	g.space = cp.NewSpace()
	body := cp.NewBody(1, cp.MomentForCircle(1, 0, playerRadius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: baseWidth / 2, Y: baseHeight / 2})
	g.space.AddBody(body)
	g.space.AddShape(cp.NewCircle(body, playerRadius, cp.Vector{}))
	g.body = body

	if watch && specPath != "" {
		w, err := config.NewWatcher(filepath.Dir(specPath))
		if err != nil {
			return nil, fmt.Errorf("demo: watch pad specs: %w", err)
		}
		g.watcher = w
	}
	return g, nil
}

// Close releases the spec watcher, if any.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) loadLayout() (*config.LayoutSpec, error) {
	if g.specPath == "" {
		return defaultLayout(), nil
	}
	return config.LoadLayout(g.specPath)
}

// defaultLayout is used when no spec file is given: a floating move pad
// bottom-left and a fixed aim pad bottom-right.
func defaultLayout() *config.LayoutSpec {
	return &config.LayoutSpec{Pads: []config.PadSpec{
		{
			Name:   "move",
			Size:   220,
			Anchor: config.AnchorSpec{X: 0.16, Y: 0.78},
			Fade:   config.FadeSpec{Enabled: true, Min: 0.3, Max: 1, Duration: 0.2},
		},
		{
			Name:         "aim",
			Size:         180,
			Anchor:       config.AnchorSpec{X: 0.84, Y: 0.78},
			FixedInSpace: true,
			Fade:         config.FadeSpec{Min: 0.25, Max: 1, Duration: 0.2},
		},
	}}
}

func (g *Game) buildPads(layout *config.LayoutSpec) error {
	for _, spec := range layout.Pads {
		anchor := cp.Vector{X: spec.Anchor.X * baseWidth, Y: spec.Anchor.Y * baseHeight}
		base, knob := render.CircleImages(int(spec.Size),
			color.NRGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xb0},
			color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd8, A: 0xff})
		visual, err := render.NewVisual(base, knob, render.Options{
			Anchor:       anchor,
			Size:         spec.Size,
			AlphaMin:     spec.Fade.Min,
			AlphaMax:     spec.Fade.Max,
			FadeDuration: spec.Fade.Duration,
		})
		if err != nil {
			return fmt.Errorf("demo: build pad %s: %w", spec.Name, err)
		}

		j := pad.New(spec.Config(), g.registry, screenSize{}, visual)
		g.pads = append(g.pads, &padEntry{name: spec.Name, joystick: j, visual: visual})

		// the pad claims touch-downs in a square around its anchor
		hit := input.Rect{
			X:      anchor.X - spec.Size,
			Y:      anchor.Y - spec.Size,
			Width:  spec.Size * 2,
			Height: spec.Size * 2,
		}
		g.dispatcher.Register(j, hit)
	}
	return nil
}

// reloadLayout re-reads the spec and applies matching pad configs in
// place. Pads added to the file after startup are ignored; the registry
// snapshot is frozen by then anyway.
func (g *Game) reloadLayout() {
	layout, err := config.LoadLayout(g.specPath)
	if err != nil {
		log.Printf("demo: reload pad specs: %v", err)
		return
	}
	for _, spec := range layout.Pads {
		for _, entry := range g.pads {
			if entry.name == spec.Name {
				entry.joystick.SetConfig(spec.Config())
			}
		}
	}
	log.Printf("demo: reloaded %s", g.specPath)
}

func (g *Game) Update() error {
	if g.watcher != nil {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
			} else {
				g.reloadLayout()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
			} else {
				log.Printf("demo: spec watcher: %v", err)
			}
		default:
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showSettings = !g.showSettings
	}

	dt := 1.0 / float64(ebiten.TPS())

	g.dispatcher.Update()
	for _, entry := range g.pads {
		entry.joystick.Advance(dt)
		entry.visual.Update(dt)
	}

	if move := g.padByName("move"); move != nil {
		g.body.SetVelocityVector(move.Position().Mult(playerSpeed))
	}
	g.space.Step(dt)

	// keep the player on screen
	p := g.body.Position()
	p.X = common.Clamp(p.X, playerRadius, baseWidth-playerRadius)
	p.Y = common.Clamp(p.Y, playerRadius, baseHeight-playerRadius)
	g.body.SetPosition(p)

	if g.showSettings {
		ui, err := g.settings.Get()
		if err != nil {
			return err
		}
		ui.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff})

	// player
	pos := g.camera.WorldToScreen(g.body.Position())
	vector.FillCircle(screen, float32(pos.X), float32(pos.Y), playerRadius, color.NRGBA{R: 0x58, G: 0xa8, B: 0xff, A: 0xff}, true)

	// aim marker, projected through the camera like any world object
	if aim := g.padByName("aim"); aim != nil && aim.IsFingerDown() {
		target := g.body.Position().Add(aim.Position().Mult(aimReach))
		sp := g.camera.WorldToScreen(target)
		vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(sp.X), float32(sp.Y), 2, color.NRGBA{R: 0xff, G: 0x90, B: 0x40, A: 0xff}, true)
		vector.FillCircle(screen, float32(sp.X), float32(sp.Y), 6, color.NRGBA{R: 0xff, G: 0x90, B: 0x40, A: 0xff}, true)
	}

	for _, entry := range g.pads {
		entry.visual.Draw(screen)
	}

	msg := fmt.Sprintf("FPS: %.0f  TAB: settings", ebiten.ActualFPS())
	for _, entry := range g.pads {
		p := entry.joystick.Position()
		msg += fmt.Sprintf("\n%s: (%.2f, %.2f) taps=%d down=%v",
			entry.name, p.X, p.Y, entry.joystick.TapCount(), entry.joystick.IsFingerDown())
	}
	ebitenutil.DebugPrint(screen, msg)

	if g.showSettings {
		if ui, err := g.settings.Get(); err == nil {
			ui.Draw(screen)
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) padByName(name string) *pad.Joystick {
	for _, entry := range g.pads {
		if entry.name == name {
			return entry.joystick
		}
	}
	return nil
}
