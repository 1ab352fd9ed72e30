// Preview player for zoomframe projects. Loads a project file, opens
// its video and runs the compositor with keyboard transport:
//
//	space       play / pause
//	left/right  seek 5 seconds
//	r           back to the start
//	tab         toggle the stats overlay
//	esc         quit
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/edwinsyarief/zoomframe"
	"github.com/edwinsyarief/zoomframe/internal/stats"
	"github.com/edwinsyarief/zoomframe/project"
	"github.com/edwinsyarief/zoomframe/source"
	"github.com/edwinsyarief/zoomframe/utils"
)

const seekStep = 5.0 // seconds

type player struct {
	sampler    *stats.Sampler
	pauseGlyph *ebiten.Image
	showStats  bool
}

func newPlayer() *player {
	return &player{
		sampler: stats.NewSampler(time.Second),
		pauseGlyph: utils.MaskToImage(7, []uint8{
			1, 1, 0, 0, 0, 1, 1,
			1, 1, 0, 0, 0, 1, 1,
			1, 1, 0, 0, 0, 1, 1,
			1, 1, 0, 0, 0, 1, 1,
			1, 1, 0, 0, 0, 1, 1,
			1, 1, 0, 0, 0, 1, 1,
			1, 1, 0, 0, 0, 1, 1,
		}, utils.RGB(240, 240, 240)),
		showStats: true,
	}
}

func (self *player) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		zoomframe.Transport().Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		zoomframe.Transport().SeekBy(seekStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		zoomframe.Transport().SeekBy(-seekStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		zoomframe.Transport().SeekTo(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		self.showStats = !self.showStats
	}

	if self.showStats {
		self.queueStats()
	}
	return nil
}

func (self *player) queueStats() {
	transport := zoomframe.Transport()
	metrics := zoomframe.Metrics()
	zoomframe.Debug().Drawf("%6.2fs / %.2fs   fps %d", transport.Current(), transport.Duration(), metrics.FPS())

	sample := self.sampler.Latest()
	zoomframe.Debug().Drawf("cpu %.1f%%   rss %.0f MiB", sample.CPUPercent, sample.RSSMiB)

	if effect := zoomframe.Timeline().Active(); effect != nil {
		rendered := metrics.Rendered()
		zoomframe.Debug().Drawf("effect %s (%s)   zoom %.2f @ (%.2f, %.2f)",
			effect.ID, effect.Style, rendered.Zoom, rendered.CenterX, rendered.CenterY)
	}
}

func (self *player) Draw(canvas *ebiten.Image) {
	if zoomframe.Transport().IsPlaying() {
		return
	}
	// pause glyph in the bottom-left corner
	bounds := canvas.Bounds()
	var opts ebiten.DrawImageOptions
	opts.GeoM.Scale(3, 3)
	opts.GeoM.Translate(8, float64(bounds.Dy())-8-21)
	canvas.DrawImage(self.pauseGlyph, &opts)
}

func main() {
	projectPath := flag.String("project", "project.yaml", "path to the project file")
	flag.Parse()

	proj, err := project.Load(*projectPath)
	if err != nil {
		log.Fatalf("load project: %v", err)
	}

	src, err := source.NewVideo(proj.Video, proj.PreviewCap)
	if err != nil {
		log.Fatalf("open video: %v", err)
	}
	defer src.Close()

	zoomframe.SetSource(src)
	zoomframe.Timeline().Set(proj.Effects)

	width, height := src.Size()
	ebiten.SetWindowSize(windowSize(width, height))
	ebiten.SetWindowTitle(fmt.Sprintf("zoomframe — %s", proj.Video))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := zoomframe.Run(newPlayer()); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// windowSize halves oversized sources so the window fits on common
// desktops; the render surface itself stays at source resolution.
func windowSize(width, height int) (int, int) {
	for width > 1600 || height > 1000 {
		width, height = width/2, height/2
	}
	if width < 320 {
		width, height = 320, 320*height/max(width, 1)
	}
	return width, height
}
