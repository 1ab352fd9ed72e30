// Small drawing helpers shared by the compositor and the preview
// player. Nothing here is specific to zoom compositing.
package utils

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Alias for image.Rectangle.
type Rectangle = image.Rectangle

// Alias for [image.Rect]().
func Rect(minX, minY, maxX, maxY int) image.Rectangle {
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Returns [color.RGBA]{r, g, b, a} after checking that the given
// values constitute a valid premultiplied-alpha color (a >= r,g,b).
// On invalid colors, the function panics.
func RGBA(r, g, b, a uint8) color.RGBA {
	if r > a || g > a || b > a {
		panic("invalid color.RGBA values: premultiplied-alpha requires a >= r,g,b")
	}
	return color.RGBA{r, g, b, a}
}

// Create a small image from a simple mask, handy for transport glyphs
// and other tiny UI markers. The value 0 is always reserved for
// transparent, and higher values index the given colors. If no colors
// are given, 1 will be white by default. Example usage:
//
//	pauseGlyph := utils.MaskToImage(7, []uint8{
//	    1, 1, 0, 0, 0, 1, 1,
//	    1, 1, 0, 0, 0, 1, 1,
//	    1, 1, 0, 0, 0, 1, 1,
//	    1, 1, 0, 0, 0, 1, 1,
//	    1, 1, 0, 0, 0, 1, 1,
//	}, utils.RGB(255, 255, 255))
func MaskToImage(width int, mask []uint8, colors ...color.RGBA) *ebiten.Image {
	if width <= 0 {
		panic("expected width > 0")
	}
	height := len(mask) / width
	if height*width != len(mask) {
		panic("given width can't split given mask into rows of equal length")
	}

	if len(colors) == 0 {
		colors = []color.RGBA{{255, 255, 255, 255}}
	}

	rgba := image.NewRGBA(Rect(0, 0, width, height))
	for index, value := range mask {
		if value == 0 {
			continue
		}
		clr := colors[value-1]
		pixelIndex := index << 2
		rgba.Pix[pixelIndex+0] = clr.R
		rgba.Pix[pixelIndex+1] = clr.G
		rgba.Pix[pixelIndex+2] = clr.B
		rgba.Pix[pixelIndex+3] = clr.A
	}
	return ebiten.NewImageFromImage(rgba)
}
