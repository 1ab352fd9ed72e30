package source

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFrameTime(t *testing.T) {
	tests := []struct {
		index    int
		fps      float64
		expected float64
	}{
		{0, 30, 0},
		{30, 30, 1.0},
		{45, 30, 1.5},
		{24, 24, 1.0},
		{1, 60, 1.0 / 60},
	}
	for _, tt := range tests {
		if got := frameTime(tt.index, tt.fps); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("frameTime(%d, %g): expected %g, got %g", tt.index, tt.fps, tt.expected, got)
		}
	}
}

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		w, h, limit    int
		expW, expH     int
	}{
		{1280, 720, 1920, 1280, 720},   // under the cap, untouched
		{3840, 2160, 1920, 1920, 1080}, // 4K halved
		{2160, 3840, 1920, 1080, 1920}, // portrait orientation
		{3840, 2160, 0, 1920, 1080},    // zero selects the default cap
		{800, 600, 400, 400, 300},
		{0, 0, 1920, 0, 0}, // degenerate metadata passes through
	}
	for _, tt := range tests {
		w, h := fitDimensions(tt.w, tt.h, tt.limit)
		if w != tt.expW || h != tt.expH {
			t.Errorf("fitDimensions(%d, %d, %d): expected (%d, %d), got (%d, %d)",
				tt.w, tt.h, tt.limit, tt.expW, tt.expH, w, h)
		}
	}
}

func TestScaleFrameCopies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 1, color.RGBA{R: 200, A: 255})

	clone := scaleFrame(src, 4, 4)
	if &clone.Pix[0] == &src.Pix[0] {
		t.Fatal("same-size scale must copy the pixel buffer")
	}
	if got := clone.RGBAAt(1, 1); got.R != 200 {
		t.Errorf("pixel not copied: %+v", got)
	}

	// mutating the source must not affect the copy
	src.SetRGBA(1, 1, color.RGBA{G: 99, A: 255})
	if got := clone.RGBAAt(1, 1); got.R != 200 {
		t.Errorf("copy aliases the source buffer: %+v", got)
	}
}

func TestScaleFrameDownscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 128, G: 64, B: 32, A: 255})
		}
	}

	scaled := scaleFrame(src, 4, 4)
	if bounds := scaled.Bounds(); bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Fatalf("expected 4x4 result, got %v", bounds)
	}
	// uniform input stays uniform through the bilinear kernel
	if got := scaled.RGBAAt(2, 2); got.R != 128 || got.G != 64 || got.B != 32 {
		t.Errorf("unexpected downscaled pixel: %+v", got)
	}
}
