package source

import "github.com/hajimehoshi/ebiten/v2"

// Still serves a single fixed image for every playback time. Useful
// for previewing an effect against a frame grab, and as a trivial
// source in harnesses.
type Still struct {
	frame    *ebiten.Image
	duration float64
}

// NewStill wraps the given image as a source. A duration of 0 leaves
// the playback clock unbounded.
func NewStill(frame *ebiten.Image, duration float64) *Still {
	return &Still{frame: frame, duration: duration}
}

func (self *Still) Ready() bool { return true }

func (self *Still) Size() (width, height int) {
	bounds := self.frame.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (self *Still) Duration() float64 { return self.duration }

func (self *Still) FrameAt(t float64) *ebiten.Image { return self.frame }

func (self *Still) Close() error { return nil }
