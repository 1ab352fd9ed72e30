package zoomframe

import (
	"fmt"
	"time"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/edwinsyarief/zoomframe/playback"
	"github.com/edwinsyarief/zoomframe/source"
	"github.com/edwinsyarief/zoomframe/timeline"
	"github.com/edwinsyarief/zoomframe/zoom"
)

// Smoothing factor policy. A video-clock jump larger than the scrub
// threshold is treated as a seek: the compositor blends hard so it
// snaps to the correct state within a frame or two, while continuous
// playback keeps the softer factor.
const (
	playbackFactor = 0.3
	scrubFactor    = 0.8
	scrubThreshold = 0.1 // seconds of video-clock jump treated as a seek
)

// Render surface size before source metadata is available.
const (
	fallbackWidth  = 640
	fallbackHeight = 360
)

var pkgCompositor compositor

func init() {
	pkgCompositor.clock = playback.NewClock(0)
	pkgCompositor.rendered = zoom.Identity()
}

type compositor struct {
	// collaborators
	game    Game
	src     source.Source
	clock   *playback.Clock
	effects []timeline.Effect

	// per-tick pipeline state
	smoother      zoom.Smoother
	rendered      zoom.State
	targetActive  bool
	prevTick      time.Time
	prevVideoTime float64
	hasTiming     bool
	tickDelta     time.Duration

	// throughput diagnostics
	frameCount  int
	windowStart time.Time
	fps         int

	// ticks
	currentTick uint64
	inDraw      bool

	// debug
	debugLines []string
}

// --- ebiten.Game implementation ---

func (self *compositor) Update() error {
	self.currentTick += 1
	if self.game != nil {
		if err := self.game.Update(); err != nil {
			return err
		}
	}
	self.advance(time.Now())
	return nil
}

// advance runs the per-tick pipeline: read the clocks, classify the
// tick as playback or scrub, look up the active effect, resolve the
// target zoom and blend it toward the previously rendered state. The
// effect collection is re-derived from scratch every tick; nothing
// about it is cached across ticks.
func (self *compositor) advance(now time.Time) {
	videoTime := self.clock.Current()

	factor := playbackFactor
	if self.hasTiming {
		self.tickDelta = now.Sub(self.prevTick)
		if ebimath.Abs(videoTime-self.prevVideoTime) > scrubThreshold {
			factor = scrubFactor
		}
	}
	self.prevTick = now
	self.prevVideoTime = videoTime
	self.hasTiming = true

	active := timeline.FindActive(videoTime, self.effects)
	target, isActive := zoom.Resolve(active, videoTime)
	self.rendered = self.smoother.Smooth(target, factor)
	self.targetActive = isActive
}

func (self *compositor) Draw(screen *ebiten.Image) {
	self.inDraw = true
	self.countFrame(time.Now())
	screen.Clear()

	if frame := self.currentFrame(); frame != nil {
		self.compose(screen, frame)
	}
	if self.game != nil {
		self.game.Draw(screen)
	}
	self.debugDrawAll(screen)
	self.inDraw = false
}

// currentFrame returns the frame for the current playback time, or
// nil when the source or its frames are not available yet. A missing
// frame never stops the loop; the tick degrades to a no-op compositing
// pass and the next tick polls again.
func (self *compositor) currentFrame() *ebiten.Image {
	if self.src == nil {
		return nil
	}
	return self.src.FrameAt(self.clock.Current())
}

// compose draws the frame with the smoothed zoom transform applied:
// scale about the focal point, in surface pixel coordinates. When the
// resolved target was inactive the frame is drawn untransformed, even
// if the smoothed state has not fully settled back to identity.
func (self *compositor) compose(screen, frame *ebiten.Image) {
	var opts ebiten.DrawImageOptions
	opts.Filter = ebiten.FilterLinear

	surfaceBounds := screen.Bounds()
	frameBounds := frame.Bounds()
	surfaceW := float64(surfaceBounds.Dx())
	surfaceH := float64(surfaceBounds.Dy())

	// fit the frame to the surface; a no-op once Layout has adopted
	// the source resolution
	if frameBounds.Dx() != surfaceBounds.Dx() || frameBounds.Dy() != surfaceBounds.Dy() {
		opts.GeoM.Scale(
			surfaceW/float64(frameBounds.Dx()),
			surfaceH/float64(frameBounds.Dy()),
		)
	}

	if self.targetActive {
		focalX := self.rendered.CenterX * surfaceW
		focalY := self.rendered.CenterY * surfaceH
		opts.GeoM.Translate(-focalX, -focalY)
		opts.GeoM.Scale(self.rendered.Zoom, self.rendered.Zoom)
		opts.GeoM.Translate(focalX, focalY)
	}
	screen.DrawImage(frame, &opts)
}

// countFrame tracks frames rendered per one-second window. Diagnostic
// only; has no effect on compositing.
func (self *compositor) countFrame(now time.Time) {
	if self.windowStart.IsZero() {
		self.windowStart = now
	}
	self.frameCount += 1
	if now.Sub(self.windowStart) >= time.Second {
		self.fps = self.frameCount
		self.frameCount = 0
		self.windowStart = now
	}
}

func (self *compositor) Layout(winWidth, winHeight int) (int, int) {
	if self.src != nil && self.src.Ready() {
		if width, height := self.src.Size(); width > 0 && height > 0 {
			return width, height
		}
	}
	return fallbackWidth, fallbackHeight
}

// --- run ---

func (self *compositor) run(game Game) error {
	self.game = game
	return ebiten.RunGame(self)
}

// --- source ---

// setSource swaps the frame source. Smoothing state resets so the
// first frame against the new source snaps instead of blending from
// the previous session.
func (self *compositor) setSource(src source.Source) {
	if self.inDraw {
		panic("can't change the frame source during draw stage")
	}
	self.src = src
	self.smoother.Reset()
	self.hasTiming = false
	if src != nil {
		if duration := src.Duration(); duration > 0 {
			self.clock.SetDuration(duration)
		}
	}
}

// --- effects ---

// setEffects snapshots a new effect collection. Like a source swap,
// this is a structural change: smoothing state resets.
func (self *compositor) setEffects(effects []timeline.Effect) {
	if self.inDraw {
		panic("can't change the effect collection during draw stage")
	}
	self.effects = append(self.effects[:0:0], effects...)
	self.smoother.Reset()
	self.hasTiming = false
}

func (self *compositor) getEffects() []timeline.Effect {
	return append([]timeline.Effect(nil), self.effects...)
}

// --- debug ---

func (self *compositor) debugDrawf(format string, args ...any) {
	self.debugLines = append(self.debugLines, fmt.Sprintf(format, args...))
}

func (self *compositor) debugDrawAll(screen *ebiten.Image) {
	for i, line := range self.debugLines {
		ebitenutil.DebugPrintAt(screen, line, 4, 4+14*i)
	}
	self.debugLines = self.debugLines[:0]
}

func (self *compositor) debugPrintfe(everyNTicks uint64, format string, args ...any) {
	if everyNTicks == 0 || self.currentTick%everyNTicks == 0 {
		fmt.Printf(format, args...)
	}
}
