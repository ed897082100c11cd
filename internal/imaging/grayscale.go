package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// Grayscale converts any image to single-channel grayscale.
//
// The matcher's correlation core is defined on single-channel data; this is
// the conversion every color input goes through before it becomes a plane.
// Images that are already *image.Gray are returned as-is.
func Grayscale(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}

	// effect.Grayscale returns an RGBA image with the luminance replicated
	// across the color channels; collapse it to one channel.
	rgba := effect.Grayscale(img)
	bounds := rgba.Bounds()
	gray := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		src := rgba.PixOffset(bounds.Min.X, y)
		dst := gray.PixOffset(bounds.Min.X, y)
		for x := 0; x < bounds.Dx(); x++ {
			gray.Pix[dst+x] = rgba.Pix[src+x*4]
		}
	}
	return gray
}
