package match

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

// varianceEpsilon is the energy below which a window is considered flat.
// Windows this close to uniform produce denominators dominated by floating
// point noise, so they are scored 0 instead.
const varianceEpsilon = 1e-12

// Correlate computes the full normalized cross-correlation surface between
// template and parent.
//
// The surface has (parent.Height+template.Height-1) rows and
// (parent.Width+template.Width-1) columns, one score per alignment of the
// template against the zero-padded parent. Scores are in [-1, 1]; see the
// package documentation for the coordinate convention.
//
// For each alignment, both the template and the overlapping parent window
// are mean-subtracted and normalized by their energy:
//
//	NCC = Σ (T - mean(T)) * (W - mean(W)) / sqrt(Σ(T-mean(T))² * Σ(W-mean(W))²)
//
// Parent samples outside the image count as zero, matching the full
// convolution convention.
//
// Errors:
//   - *DimensionError if the template is larger than the parent in either
//     axis
//   - ErrDegenerateTemplate if the template has zero variance
//
// A zero-variance parent window (flat region, or a window fully inside the
// zero padding) is scored 0 at that alignment rather than failing the call.
//
// Surface rows are computed in parallel across goroutines; the result is
// deterministic regardless.
func Correlate(template, parent *Plane) (*Plane, error) {
	if template.Width > parent.Width || template.Height > parent.Height {
		return nil, &DimensionError{
			TemplateWidth:  template.Width,
			TemplateHeight: template.Height,
			ParentWidth:    parent.Width,
			ParentHeight:   parent.Height,
		}
	}

	th, tw := template.Height, template.Width
	ph, pw := parent.Height, parent.Width

	// Mean-subtract the template once; it is reused at every alignment.
	tMean := template.mean()
	tDelta := make([]float64, len(template.Data))
	var tEnergy float64
	for i, v := range template.Data {
		d := v - tMean
		tDelta[i] = d
		tEnergy += d * d
	}
	if tEnergy < varianceEpsilon {
		return nil, ErrDegenerateTemplate
	}

	outH := ph + th - 1
	outW := pw + tw - 1
	surface := NewPlane(outW, outH)

	windowSize := float64(th * tw)

	parallel.Line(outH, func(start, end int) {
		// Scratch window buffer per worker.
		window := make([]float64, th*tw)

		for row := start; row < end; row++ {
			for col := 0; col < outW; col++ {
				// Parent coordinates of the window's top-left pixel. May be
				// negative or run past the parent; the padding is zero.
				py0 := row - (th - 1)
				px0 := col - (tw - 1)

				var wSum float64
				for ty := 0; ty < th; ty++ {
					py := py0 + ty
					for tx := 0; tx < tw; tx++ {
						px := px0 + tx
						var v float64
						if py >= 0 && py < ph && px >= 0 && px < pw {
							v = parent.Data[py*pw+px]
						}
						window[ty*tw+tx] = v
						wSum += v
					}
				}
				wMean := wSum / windowSize

				var num, wEnergy float64
				for i, v := range window {
					d := v - wMean
					num += tDelta[i] * d
					wEnergy += d * d
				}

				if wEnergy < varianceEpsilon {
					continue // flat window, surface stays 0
				}
				surface.Data[row*outW+col] = num / math.Sqrt(tEnergy*wEnergy)
			}
		}
	})

	return surface, nil
}
