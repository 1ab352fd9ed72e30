package zoom

import (
	ebimath "github.com/edwinsyarief/ebi-math"

	"github.com/edwinsyarief/zoomframe/ease"
)

// Residual differences below this are snapped instead of blended, so
// the state settles on the target instead of approaching it forever.
const settleEpsilon = 0.0001

// Smoother blends freshly resolved target states toward the previously
// rendered one. It owns the single piece of cross-tick mutable state in
// the compositor: the last state it produced. The blend factor is
// chosen per tick by the render loop, not by the smoother.
type Smoother struct {
	prev    State
	hasPrev bool
}

// Smooth blends each field of target toward the previous output
// independently: prev + (target - prev) * factor. Factor 1 snaps to
// the target and factor 0 holds the previous state. The very first
// call after construction or [Smoother.Reset] passes the target
// through unchanged. The result is stored as the previous state for
// the next call.
func (self *Smoother) Smooth(target State, factor float64) State {
	if !self.hasPrev {
		self.prev = target
		self.hasPrev = true
		return target
	}

	// stabilization
	if ebimath.Abs(target.Zoom-self.prev.Zoom) < settleEpsilon &&
		ebimath.Abs(target.CenterX-self.prev.CenterX) < settleEpsilon &&
		ebimath.Abs(target.CenterY-self.prev.CenterY) < settleEpsilon {
		self.prev = target
		return target
	}

	self.prev = State{
		Zoom:    ease.Lerp(self.prev.Zoom, target.Zoom, factor),
		CenterX: ease.Lerp(self.prev.CenterX, target.CenterX, factor),
		CenterY: ease.Lerp(self.prev.CenterY, target.CenterY, factor),
	}
	return self.prev
}

// Reset empties the previous-state cell, so the next [Smoother.Smooth]
// call snaps to its target instead of blending from stale state. Called
// whenever the compositor's source or effect collection is replaced.
func (self *Smoother) Reset() {
	self.hasPrev = false
}

// Current returns the last state produced by [Smoother.Smooth], and
// whether one exists at all.
func (self *Smoother) Current() (State, bool) {
	return self.prev, self.hasPrev
}
