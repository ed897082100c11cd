package match

import (
	"image"
)

// Plane is a single-channel 2-D array of float64 samples in row-major order.
//
// Planes are the only pixel representation the detector understands: callers
// convert whatever they have (color images, binary masks, 16-bit scans) into
// a Plane before matching. All arithmetic is done in float64 regardless of
// the source sample type.
//
// A Plane handed to the detector is treated as read-only; the detector never
// writes into its inputs.
type Plane struct {
	// Data holds Height*Width samples, row 0 first.
	Data []float64

	// Width is the number of columns.
	Width int

	// Height is the number of rows.
	Height int
}

// NewPlane allocates a zero-filled plane of the given dimensions.
func NewPlane(width, height int) *Plane {
	return &Plane{
		Data:   make([]float64, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the sample at (row, col). No bounds checking is performed;
// callers must stay inside the plane.
func (p *Plane) At(row, col int) float64 {
	return p.Data[row*p.Width+col]
}

// Set stores a sample at (row, col). No bounds checking is performed.
func (p *Plane) Set(row, col int, v float64) {
	p.Data[row*p.Width+col] = v
}

// PlaneFromImage converts any image to a grayscale plane using ITU-R BT.601
// luminance weights (0.299*R + 0.587*G + 0.114*B), with samples scaled to
// [0, 1].
//
// For images that are already grayscale, PlaneFromGray avoids the per-pixel
// color conversion and is faster.
func PlaneFromImage(img image.Image) *Plane {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	p := NewPlane(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns 16-bit components
			lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
			p.Data[y*width+x] = lum / 65535.0
		}
	}
	return p
}

// PlaneFromGray converts a grayscale image to a plane with samples scaled
// to [0, 1]. It reads the pixel buffer directly instead of going through
// the color interface.
func PlaneFromGray(img *image.Gray) *Plane {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	p := NewPlane(width, height)
	for y := 0; y < height; y++ {
		rowStart := (y+bounds.Min.Y-img.Rect.Min.Y)*img.Stride + (bounds.Min.X - img.Rect.Min.X)
		for x := 0; x < width; x++ {
			p.Data[y*width+x] = float64(img.Pix[rowStart+x]) / 255.0
		}
	}
	return p
}

// mean returns the arithmetic mean of all samples. Returns 0 for an empty
// plane.
func (p *Plane) mean() float64 {
	if len(p.Data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range p.Data {
		sum += v
	}
	return sum / float64(len(p.Data))
}
