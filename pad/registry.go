package pad

// Registry arbitrates finger ownership across a group of sibling pads.
// It is owned by the host and handed to each pad at construction; there
// is no process-wide instance.
//
// The broadcast set is captured lazily, exactly once, on the first
// NotifyLatch call. Pads registered after that never receive latch
// broadcasts. This mirrors the one-shot enumeration the widget was
// designed around and is deliberate; there is no refresh.
type Registry struct {
	pads     []*Joystick
	snapshot []*Joystick
	frozen   bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a pad to the roster. Registration after the snapshot has
// been frozen still succeeds, but the pad is excluded from broadcasts.
func (r *Registry) Register(j *Joystick) {
	if r == nil || j == nil {
		return
	}
	r.pads = append(r.pads, j)
}

// Freeze captures the broadcast snapshot from the current roster. It runs
// at most once; later calls are no-ops. NotifyLatch calls it lazily, so
// hosts only need Freeze to pin the snapshot at a known point.
func (r *Registry) Freeze() {
	if r == nil || r.frozen {
		return
	}
	r.frozen = true
	r.snapshot = append([]*Joystick(nil), r.pads...)
}

// Frozen reports whether the broadcast snapshot has been captured.
func (r *Registry) Frozen() bool {
	return r != nil && r.frozen
}

// NotifyLatch tells every other pad in the snapshot that a finger is now
// latched by from; any pad holding that finger releases it synchronously,
// so two pads never claim the same pointer id at once.
func (r *Registry) NotifyLatch(fingerID int, from *Joystick) {
	if r == nil {
		return
	}
	r.Freeze()
	for _, p := range r.snapshot {
		if p != from {
			p.ReleaseFinger(fingerID)
		}
	}
}
