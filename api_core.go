// Package zoomframe is a real-time zoom compositor for video preview.
// Given an effect collection built by an editing layer and a playback
// clock it does not control, it renders every display frame with a
// temporally smoothed zoom transform applied, staying glitch-free
// across seeks, pauses and effect changes.
//
// The compositor runs as an [ebiten.Game]; the embedding application
// provides input handling and overlays through the [Game] interface
// and talks to the compositor through accessors, e.g.:
//
//	zoomframe.Timeline().Set(effects)
//	zoomframe.Transport().Play()
//	zoomframe.Run(myOverlay)
package zoomframe

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/edwinsyarief/zoomframe/source"

// The embedding application's hooks into the render loop. Update runs
// once per tick before the compositing pipeline; Draw runs after the
// video frame has been composited, on top of it.
type Game interface {
	// Updates the application logic: transport input, effect edits,
	// overlay state. Returning an error stops the loop ([ebiten.Termination]
	// stops it cleanly).
	Update() error

	// Draws overlays onto the already-composited canvas. The canvas
	// is sized to the source's native resolution (see [SetSource]).
	Draw(canvas *ebiten.Image)
}

// Run starts the render loop and blocks until it terminates. The loop
// keeps rendering regardless of the transport state — a paused video
// still gets composited every frame — and only the host window closing
// or the game callback returning an error stops it. A nil game runs
// the bare compositor without overlays.
func Run(game Game) error {
	return pkgCompositor.run(game)
}

// SetSource installs the frame source to composite from. Passing nil
// detaches the current source; the loop then renders nothing but keeps
// running. Swapping sources resets the smoothing state, so the first
// frame of the new source snaps instead of blending from stale data.
//
// If the source already knows its duration, the transport clock
// adopts it.
func SetSource(src source.Source) {
	pkgCompositor.setSource(src)
}

// GetSource returns the currently installed frame source, nil if none.
func GetSource() source.Source {
	return pkgCompositor.src
}
