package zoomframe

import "github.com/edwinsyarief/zoomframe/playback"

// See [Transport]().
type AccessorTransport struct{}

// Provides access to transport commands in a structured manner. Use
// through method chaining, e.g.:
//
//	zoomframe.Transport().SeekTo(12.5)
//
// The compositor itself only ever reads the clock; all transport
// commands come from the embedding application.
func Transport() AccessorTransport { return AccessorTransport{} }

// Play starts or resumes playback.
func (AccessorTransport) Play() { pkgCompositor.clock.Play() }

// Pause freezes the playback position.
func (AccessorTransport) Pause() { pkgCompositor.clock.Pause() }

// Toggle switches between playing and paused.
func (AccessorTransport) Toggle() { pkgCompositor.clock.Toggle() }

// IsPlaying reports whether the playback clock is advancing.
func (AccessorTransport) IsPlaying() bool { return pkgCompositor.clock.IsPlaying() }

// Current returns the playback position in seconds.
func (AccessorTransport) Current() float64 { return pkgCompositor.clock.Current() }

// Duration returns the clip duration in seconds, 0 if unknown.
func (AccessorTransport) Duration() float64 { return pkgCompositor.clock.Duration() }

// SeekTo jumps to the given position. The compositor detects the
// resulting clock discontinuity on its next tick and snaps its
// smoothing accordingly.
func (AccessorTransport) SeekTo(position float64) { pkgCompositor.clock.SeekTo(position) }

// SeekBy jumps by the given offset in seconds.
func (AccessorTransport) SeekBy(offset float64) { pkgCompositor.clock.SeekBy(offset) }

// SetRate changes the playback rate multiplier (1 = real time).
func (AccessorTransport) SetRate(rate float64) { pkgCompositor.clock.SetRate(rate) }

// Clock exposes the underlying playback clock, for collaborators that
// need to read it directly (e.g. a decode pipeline).
func (AccessorTransport) Clock() *playback.Clock { return pkgCompositor.clock }
