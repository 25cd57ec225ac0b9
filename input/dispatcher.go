// Package input routes pointer events from the host's update loop to
// registered handlers. Touch-downs are delivered only to the handler
// whose hit area contains the point; drags and releases go to every
// handler, which filter by their own latched pointer id.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// MousePointerID is the synthetic pointer id used for the left mouse
// button, kept clear of the id range ebiten assigns to touches.
const MousePointerID = 1 << 30

// Handler receives pointer events. All delivery is synchronous on the
// caller's goroutine.
type Handler interface {
	OnTouchDown(id int, pos cp.Vector)
	OnTouchUp(id int)
	OnTouchDrag(id int, pos cp.Vector)
}

// Pointer is one pointer's position during a frame.
type Pointer struct {
	ID  int
	Pos cp.Vector
}

// Frame is everything that happened to the pointers in one tick.
type Frame struct {
	// Pressed are pointers that went down this frame.
	Pressed []Pointer
	// Held are pointers currently down, just-pressed ones included.
	Held []Pointer
	// Released are pointer ids that went up this frame.
	Released []int
}

type registration struct {
	handler Handler
	hit     Rect
}

// Dispatcher polls ebiten's mouse and touch state once per tick and
// fans the events out to registered handlers.
type Dispatcher struct {
	regs []registration

	// scratch buffers reused across frames
	justPressed  []ebiten.TouchID
	active       []ebiten.TouchID
	justReleased []ebiten.TouchID
	frame        Frame
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a handler with the hit area that claims its touch-downs.
func (d *Dispatcher) Register(h Handler, hit Rect) {
	if d == nil || h == nil {
		return
	}
	d.regs = append(d.regs, registration{handler: h, hit: hit})
}

// Update polls ebiten and dispatches the resulting frame. Call once per
// game tick, before reading pad output.
func (d *Dispatcher) Update() {
	if d == nil {
		return
	}

	f := &d.frame
	f.Pressed = f.Pressed[:0]
	f.Held = f.Held[:0]
	f.Released = f.Released[:0]

	// Mouse doubles as a pointer so the pads work on desktop too.
	mx, my := ebiten.CursorPosition()
	mouse := cp.Vector{X: float64(mx), Y: float64(my)}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Pressed = append(f.Pressed, Pointer{ID: MousePointerID, Pos: mouse})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		f.Held = append(f.Held, Pointer{ID: MousePointerID, Pos: mouse})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		f.Released = append(f.Released, MousePointerID)
	}

	d.justPressed = inpututil.AppendJustPressedTouchIDs(d.justPressed[:0])
	for _, id := range d.justPressed {
		x, y := ebiten.TouchPosition(id)
		f.Pressed = append(f.Pressed, Pointer{ID: int(id), Pos: cp.Vector{X: float64(x), Y: float64(y)}})
	}

	d.active = ebiten.AppendTouchIDs(d.active[:0])
	for _, id := range d.active {
		x, y := ebiten.TouchPosition(id)
		f.Held = append(f.Held, Pointer{ID: int(id), Pos: cp.Vector{X: float64(x), Y: float64(y)}})
	}

	d.justReleased = inpututil.AppendJustReleasedTouchIDs(d.justReleased[:0])
	for _, id := range d.justReleased {
		f.Released = append(f.Released, int(id))
	}

	d.Dispatch(*f)
}

// Dispatch delivers one frame of pointer events: downs routed by hit
// area (first matching registration wins), then drags for every held
// pointer, then releases. The order matches how a pad consumes them.
func (d *Dispatcher) Dispatch(f Frame) {
	if d == nil {
		return
	}

	for _, p := range f.Pressed {
		for _, reg := range d.regs {
			if reg.hit.Contains(p.Pos) {
				reg.handler.OnTouchDown(p.ID, p.Pos)
				break
			}
		}
	}

	for _, p := range f.Held {
		for _, reg := range d.regs {
			reg.handler.OnTouchDrag(p.ID, p.Pos)
		}
	}

	for _, id := range f.Released {
		for _, reg := range d.regs {
			reg.handler.OnTouchUp(id)
		}
	}
}
