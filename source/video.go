package source

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	vidio "github.com/AlexEidt/Vidio"
	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultPreviewCap bounds the longer dimension of served frames.
	// Decoding 4K material for an editor preview wastes both the
	// decoder and the GPU; frames above the cap are downscaled.
	DefaultPreviewCap = 1920

	ringCapacity  = 48
	aheadWindow   = 2.0  // seconds decoded ahead of the requested time
	behindWindow  = 0.5  // seconds kept behind the requested time
	backwardSlack = 0.25 // backward request slack before the decoder repositions
)

type decodedFrame struct {
	at  float64
	pix *image.RGBA
}

// Video decodes a video file through ffmpeg (Vidio) on a background
// goroutine and serves the frame matching the requested playback time.
// ffmpeg piping is strictly sequential, so seeks are implemented by
// repositioning the decoder: forward jumps skip ahead in the stream
// and backward jumps reopen it. The ring of decoded frames keeps the
// render loop from ever waiting on the decoder.
type Video struct {
	path     string
	width    int // served dimensions, after the preview cap
	height   int
	fps      float64
	duration float64

	mu      sync.Mutex
	frames  []decodedFrame
	request float64
	restart bool

	cancel context.CancelFunc
	group  *errgroup.Group

	display     *ebiten.Image
	displayTime float64
	hasDisplay  bool
}

// NewVideo probes the file's metadata and starts the decode pipeline.
// previewCap bounds the longer frame dimension; pass 0 for
// [DefaultPreviewCap].
func NewVideo(path string, previewCap int) (*Video, error) {
	probe, err := vidio.NewVideo(path)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", path, err)
	}
	fps := probe.FPS()
	if fps <= 0 {
		fps = 30
	}
	width, height := fitDimensions(probe.Width(), probe.Height(), previewCap)
	self := &Video{
		path:     path,
		width:    width,
		height:   height,
		fps:      fps,
		duration: probe.Duration(),
	}
	probe.Close()

	ctx, cancel := context.WithCancel(context.Background())
	self.cancel = cancel
	self.group, ctx = errgroup.WithContext(ctx)
	self.group.Go(func() error { return self.decodeLoop(ctx) })
	return self, nil
}

func (self *Video) Ready() bool { return true }

func (self *Video) Size() (width, height int) { return self.width, self.height }

func (self *Video) Duration() float64 { return self.duration }

// FrameAt serves the newest decoded frame at or before t. The request
// time also steers the decoder: it decodes a couple of seconds ahead
// of it and repositions when t jumps backward out of the ring.
func (self *Video) FrameAt(t float64) *ebiten.Image {
	self.mu.Lock()
	self.request = t
	if len(self.frames) > 0 && t < self.frames[0].at-backwardSlack {
		self.restart = true
		self.frames = self.frames[:0]
	}
	frame, ok := self.pickLocked(t)
	self.mu.Unlock()
	if !ok {
		if self.hasDisplay {
			return self.display // keep showing the last frame while repositioning
		}
		return nil
	}

	if self.display == nil {
		self.display = ebiten.NewImage(self.width, self.height)
	}
	if !self.hasDisplay || frame.at != self.displayTime {
		self.display.WritePixels(frame.pix.Pix)
		self.displayTime = frame.at
		self.hasDisplay = true
	}
	return self.display
}

// pickLocked finds the newest frame with at <= t (allowing half a
// frame of slack), falling back to the oldest one when the ring only
// has later frames. Callers must hold mu.
func (self *Video) pickLocked(t float64) (decodedFrame, bool) {
	if len(self.frames) == 0 {
		return decodedFrame{}, false
	}
	slack := 0.5 / self.fps
	best := -1
	for i := range self.frames {
		if self.frames[i].at <= t+slack {
			best = i
		} else {
			break
		}
	}
	if best < 0 {
		return self.frames[0], true
	}
	return self.frames[best], true
}

// Close stops the decode pipeline and waits for it to exit.
func (self *Video) Close() error {
	self.cancel()
	if err := self.group.Wait(); err != nil {
		return fmt.Errorf("decode pipeline: %w", err)
	}
	return nil
}

// decodeLoop runs decode passes until cancelled. Each pass ends when a
// backward seek asks for repositioning, in which case the stream is
// reopened at the newly requested time.
func (self *Video) decodeLoop(ctx context.Context) error {
	for ctx.Err() == nil {
		self.mu.Lock()
		start := self.request
		self.restart = false
		self.mu.Unlock()

		if err := self.decodePass(ctx, start); err != nil {
			return err
		}
	}
	return nil
}

// decodePass decodes sequentially from the start of the stream,
// skipping conversion for frames before the start time, and returns
// once cancelled or once a reposition is requested.
func (self *Video) decodePass(ctx context.Context, start float64) error {
	video, err := vidio.NewVideo(self.path)
	if err != nil {
		return fmt.Errorf("reopen video %s: %w", self.path, err)
	}
	defer video.Close()

	startIndex := int(start * self.fps)
	for index := 0; video.Read(); index++ {
		if ctx.Err() != nil {
			return nil
		}
		if index < startIndex {
			continue // no random access through the pipe; skip-decode to the target
		}
		at := frameTime(index, self.fps)
		if wait := self.throttle(ctx, at); !wait {
			return nil // repositioning or cancelled
		}
		self.push(at, video.FrameBuffer(), video.Width(), video.Height())
	}

	// end of stream: idle until a reposition or teardown
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(50 * time.Millisecond):
		}
		self.mu.Lock()
		restart := self.restart
		self.mu.Unlock()
		if restart {
			return nil
		}
	}
}

// throttle blocks while the decoder is far enough ahead of the request.
// Returns false when the pass should end instead of pushing more frames.
func (self *Video) throttle(ctx context.Context, at float64) bool {
	for {
		self.mu.Lock()
		request, restart := self.request, self.restart
		self.mu.Unlock()
		if restart {
			return false
		}
		if at <= request+aheadWindow {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// push converts the raw RGBA buffer into an owned (and possibly
// downscaled) frame and appends it to the ring.
func (self *Video) push(at float64, buffer []byte, srcWidth, srcHeight int) {
	src := &image.RGBA{
		Pix:    buffer,
		Stride: srcWidth * 4,
		Rect:   image.Rect(0, 0, srcWidth, srcHeight),
	}
	frame := decodedFrame{at: at, pix: scaleFrame(src, self.width, self.height)}

	self.mu.Lock()
	defer self.mu.Unlock()
	self.frames = append(self.frames, frame)
	for len(self.frames) > 0 && self.frames[0].at < self.request-behindWindow {
		self.frames = self.frames[1:]
	}
	if len(self.frames) > ringCapacity {
		self.frames = self.frames[len(self.frames)-ringCapacity:]
	}
}

// frameTime maps a frame index to its presentation time.
func frameTime(index int, fps float64) float64 {
	return float64(index) / fps
}

// fitDimensions bounds (width, height) so the longer dimension does
// not exceed limit, preserving aspect ratio. A limit of 0 or less
// selects [DefaultPreviewCap].
func fitDimensions(width, height, limit int) (int, int) {
	if limit <= 0 {
		limit = DefaultPreviewCap
	}
	longer := max(width, height)
	if longer <= limit || longer == 0 {
		return width, height
	}
	scale := float64(limit) / float64(longer)
	scaledW := max(1, int(float64(width)*scale))
	scaledH := max(1, int(float64(height)*scale))
	return scaledW, scaledH
}

// scaleFrame copies src, downscaling it to (width, height) when the
// sizes differ. The source buffer is reused by the decoder, so the
// result always owns its pixels.
func scaleFrame(src *image.RGBA, width, height int) *image.RGBA {
	bounds := src.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		clone := image.NewRGBA(bounds)
		copy(clone.Pix, src.Pix)
		return clone
	}
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, bounds, xdraw.Src, nil)
	return scaled
}
