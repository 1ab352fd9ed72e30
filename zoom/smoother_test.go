package zoom

import (
	"math"
	"testing"
)

func TestSmootherFirstCallPassesThrough(t *testing.T) {
	target := State{Zoom: 1.8, CenterX: 0.2, CenterY: 0.9}
	for _, factor := range []float64{0.0, 0.3, 0.8, 1.0} {
		var smoother Smoother
		if got := smoother.Smooth(target, factor); got != target {
			t.Errorf("factor %g: first call should pass target through, got %+v", factor, got)
		}
	}
}

func TestSmootherExtremeFactors(t *testing.T) {
	previous := State{Zoom: 1.0, CenterX: 0.5, CenterY: 0.5}
	target := State{Zoom: 2.0, CenterX: 0.1, CenterY: 0.8}

	var snap Smoother
	snap.Smooth(previous, 1.0)
	if got := snap.Smooth(target, 1.0); got != target {
		t.Errorf("factor 1 should snap to target, got %+v", got)
	}

	var hold Smoother
	hold.Smooth(previous, 1.0)
	if got := hold.Smooth(target, 0.0); got != previous {
		t.Errorf("factor 0 should hold previous state, got %+v", got)
	}
}

func TestSmootherBlend(t *testing.T) {
	var smoother Smoother
	smoother.Smooth(State{Zoom: 1.0, CenterX: 0.5, CenterY: 0.5}, 1.0)

	target := State{Zoom: 2.0, CenterX: 0.7, CenterY: 0.3}
	got := smoother.Smooth(target, 0.3)
	if math.Abs(got.Zoom-1.3) > tolerance {
		t.Errorf("expected blended zoom 1.3, got %g", got.Zoom)
	}
	if math.Abs(got.CenterX-0.56) > tolerance || math.Abs(got.CenterY-0.44) > tolerance {
		t.Errorf("unexpected blended centers: (%g, %g)", got.CenterX, got.CenterY)
	}

	// the output becomes the new previous state
	second := smoother.Smooth(target, 0.3)
	if math.Abs(second.Zoom-(1.3+(2.0-1.3)*0.3)) > tolerance {
		t.Errorf("second blend should continue from first output, got %g", second.Zoom)
	}
}

func TestSmootherScrubVsPlaybackFactors(t *testing.T) {
	// A seek tick (factor 0.8) must move further toward the target
	// than a playback tick (factor 0.3) would.
	start := State{Zoom: 1.0, CenterX: 0.5, CenterY: 0.5}
	target := State{Zoom: 3.0, CenterX: 0.5, CenterY: 0.5}

	var scrub Smoother
	scrub.Smooth(start, 1.0)
	afterSeek := scrub.Smooth(target, 0.8)

	playbackPrediction := start.Zoom + (target.Zoom-start.Zoom)*0.3
	if afterSeek.Zoom <= playbackPrediction {
		t.Errorf("seek blend (%g) should exceed playback prediction (%g)", afterSeek.Zoom, playbackPrediction)
	}
	if math.Abs(afterSeek.Zoom-2.6) > tolerance {
		t.Errorf("expected seek blend 2.6, got %g", afterSeek.Zoom)
	}

	afterPlayback := scrub.Smooth(target, 0.3)
	if math.Abs(afterPlayback.Zoom-(2.6+(3.0-2.6)*0.3)) > tolerance {
		t.Errorf("expected playback blend 2.72, got %g", afterPlayback.Zoom)
	}
}

func TestSmootherSettlesOnTarget(t *testing.T) {
	var smoother Smoother
	smoother.Smooth(State{Zoom: 1.0, CenterX: 0.5, CenterY: 0.5}, 1.0)

	target := State{Zoom: 2.0, CenterX: 0.5, CenterY: 0.5}
	var got State
	for i := 0; i < 200; i++ {
		got = smoother.Smooth(target, 0.3)
	}
	if got != target {
		t.Errorf("smoother should settle exactly on the target, got %+v", got)
	}
}

func TestSmootherReset(t *testing.T) {
	var smoother Smoother
	smoother.Smooth(State{Zoom: 5.0, CenterX: 0.1, CenterY: 0.1}, 1.0)
	smoother.Reset()

	if _, ok := smoother.Current(); ok {
		t.Error("Current should report no state after Reset")
	}

	target := State{Zoom: 1.2, CenterX: 0.6, CenterY: 0.4}
	if got := smoother.Smooth(target, 0.3); got != target {
		t.Errorf("first call after Reset should snap to target, got %+v", got)
	}
}
