package zoomframe

import "github.com/edwinsyarief/zoomframe/timeline"

// See [Timeline]().
type AccessorTimeline struct{}

// Provides access to the effect collection in a structured manner.
// Use through method chaining, e.g.:
//
//	zoomframe.Timeline().Set(effects)
func Timeline() AccessorTimeline { return AccessorTimeline{} }

// Set snapshots a new effect collection for the compositor to read.
// The slice is copied; the editor keeps ownership of its own list and
// can keep mutating it, publishing each revision with another Set.
//
// Replacing the collection is a structural change: the smoothing state
// resets, so the next frame snaps to its freshly resolved target.
//
// The compositor does not validate the collection. Collections with
// overlapping windows render the first match in slice order; use
// [timeline.Validate] at the editing layer to rule overlaps out.
func (AccessorTimeline) Set(effects []timeline.Effect) {
	pkgCompositor.setEffects(effects)
}

// Get returns a copy of the current effect collection.
func (AccessorTimeline) Get() []timeline.Effect {
	return pkgCompositor.getEffects()
}

// Clear removes all effects.
func (AccessorTimeline) Clear() {
	pkgCompositor.setEffects(nil)
}

// Active returns the effect covering the current playback time, nil
// when none is active.
func (AccessorTimeline) Active() *timeline.Effect {
	return timeline.FindActive(pkgCompositor.clock.Current(), pkgCompositor.effects)
}
