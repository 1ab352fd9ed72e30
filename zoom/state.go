// Package zoom computes the per-frame zoom parameters: the resolver
// turns the active effect and the playback time into an instantaneous
// target state, and the [Smoother] blends successive targets so the
// rendered zoom never pops between frames.
package zoom

import (
	"github.com/edwinsyarief/zoomframe/ease"
	"github.com/edwinsyarief/zoomframe/timeline"
)

// State holds the zoom parameters for one rendered frame. Zoom is the
// uniform scale factor (1 = no zoom) and the centers are the normalized
// focal point in [0, 1] frame fractions.
type State struct {
	Zoom    float64
	CenterX float64
	CenterY float64
}

// Identity returns the no-zoom state: scale 1, centered focal point.
func Identity() State {
	return State{Zoom: 1, CenterX: 0.5, CenterY: 0.5}
}

// Resolve computes the instantaneous target zoom for the given effect
// at playback time t. A nil effect resolves to [Identity] with
// active = false. Only the scale is eased; the focal point passes
// through unchanged from the effect. Pure function: same inputs always
// produce the same output.
func Resolve(effect *timeline.Effect, t float64) (state State, active bool) {
	if effect == nil {
		return Identity(), false
	}

	progress := ease.Clamp01((t - effect.Start) / effect.Duration)
	var zoomProgress float64
	switch effect.Style {
	case timeline.StyleInOut:
		// bell curve: 0 at both window ends, 1 at the midpoint
		if progress < 0.5 {
			zoomProgress = ease.InOutCubic(progress * 2)
		} else {
			zoomProgress = ease.InOutCubic((1 - progress) * 2)
		}
	case timeline.StyleIn:
		zoomProgress = ease.InOutCubic(progress)
	case timeline.StyleOut:
		zoomProgress = ease.InOutCubic(1 - progress)
	default:
		panic("invalid timeline.Style")
	}

	return State{
		Zoom:    1 + (effect.Level-1)*zoomProgress,
		CenterX: effect.CenterX,
		CenterY: effect.CenterY,
	}, true
}
