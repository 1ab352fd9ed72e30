package zoomframe

import (
	"time"

	"github.com/edwinsyarief/zoomframe/zoom"
)

// See [Metrics]().
type AccessorMetrics struct{}

// Provides access to the compositor's diagnostics in a structured
// manner. All figures are observational; none affect compositing.
func Metrics() AccessorMetrics { return AccessorMetrics{} }

// FPS returns the number of frames composited during the last full
// one-second window.
func (AccessorMetrics) FPS() int { return pkgCompositor.fps }

// UpdateDelta returns the wall-clock time between the two most recent
// pipeline ticks.
func (AccessorMetrics) UpdateDelta() time.Duration { return pkgCompositor.tickDelta }

// Rendered returns the smoothed zoom state of the last tick — the
// parameters actually drawn, after temporal smoothing.
func (AccessorMetrics) Rendered() zoom.State { return pkgCompositor.rendered }

// TargetActive reports whether the last tick resolved an active
// effect, before smoothing.
func (AccessorMetrics) TargetActive() bool { return pkgCompositor.targetActive }

// See [Debug]().
type AccessorDebug struct{}

// Provides access to debugging functionality in a structured manner.
// Use through method chaining, e.g.:
//
//	zoomframe.Debug().Drawf("fps: %d", zoomframe.Metrics().FPS())
func Debug() AccessorDebug { return AccessorDebug{} }

// Similar to printf debugging, but drawing the text on the top left
// of the canvas instead of printing to the terminal. Lines queue up
// and render at the end of the next draw, one per call.
func (AccessorDebug) Drawf(format string, args ...any) {
	pkgCompositor.debugDrawf(format, args...)
}

// Similar to [fmt.Printf], but only prints every N ticks. With the
// default 60 ticks per second, N = 60 prints roughly once per second.
func (AccessorDebug) Printfe(everyNTicks uint64, format string, args ...any) {
	pkgCompositor.debugPrintfe(everyNTicks, format, args...)
}
