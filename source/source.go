// Package source provides the frame sources the compositor draws from.
// A source is a live handle to video material: it exposes metadata once
// known and serves the frame matching a playback time. Sources never
// block the render loop; when no frame is available yet they return nil
// and the compositor skips compositing for that tick.
package source

import "github.com/hajimehoshi/ebiten/v2"

// Source is the compositor's view of video material.
type Source interface {
	// Ready reports whether metadata (dimensions, duration) is available.
	Ready() bool

	// Size returns the native pixel dimensions of the served frames,
	// or (0, 0) before Ready.
	Size() (width, height int)

	// Duration returns the total duration in seconds, 0 if unknown
	// or unbounded.
	Duration() float64

	// FrameAt returns the frame to display at playback time t, or nil
	// when no frame is available yet. The returned image is reused
	// across calls and must not be retained past the current frame.
	FrameAt(t float64) *ebiten.Image

	// Close releases decoding resources. The source must not be used
	// afterwards.
	Close() error
}
