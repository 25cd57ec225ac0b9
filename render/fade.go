package render

import "github.com/jennydvr/virtualpad/common"

// crossFade animates an alpha value toward a target over a fixed duration.
type crossFade struct {
	alpha   float64
	from    float64
	target  float64
	dur     float64
	elapsed float64
	active  bool
}

// start begins a fade from the current alpha toward target. A non-positive
// duration applies the target immediately.
func (f *crossFade) start(target, duration float64) {
	if duration <= 0 {
		f.alpha = target
		f.active = false
		return
	}
	f.from = f.alpha
	f.target = target
	f.dur = duration
	f.elapsed = 0
	f.active = true
}

// update advances the fade and reports true on the tick it completes.
func (f *crossFade) update(dt float64) bool {
	if !f.active {
		return false
	}
	f.elapsed += dt
	t := f.elapsed / f.dur
	if t >= 1 {
		f.alpha = f.target
		f.active = false
		return true
	}
	f.alpha = common.Lerp(f.from, f.target, t)
	return false
}
