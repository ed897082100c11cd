package match

import "math"

// BoundingBox is a rectangle in parent-image pixel coordinates.
//
// (X, Y) is the top-left corner, 0-based. Width and Height equal the
// template dimensions. Boxes near the edge of the correlation surface may
// extend partially outside the parent image; MapToBoxes does not clip them,
// clipping is a caller policy (the annotation layer clips for drawing, for
// example). Silent clipping here would hide where the match actually is.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MapToBoxes converts correlation-surface peaks into parent-image bounding
// boxes for a template of the given dimensions.
//
// A surface cell (row, col) marks the alignment where the template's
// bottom-right pixel covers parent pixel (row, col), so the box's top-left
// corner is offset back by the template size minus one:
//
//	x = col - (templateWidth - 1)
//	y = row - (templateHeight - 1)
//
// Peak coordinates are integers, so the rounding below only guards against
// floating accumulation if a caller ever feeds interpolated peaks; it is
// half-away-from-zero (math.Round).
//
// Output order follows the input peak order one-to-one.
func MapToBoxes(peaks []Peak, templateHeight, templateWidth int) []BoundingBox {
	boxes := make([]BoundingBox, len(peaks))
	for i, p := range peaks {
		x := math.Round(float64(p.Col - (templateWidth - 1)))
		y := math.Round(float64(p.Row - (templateHeight - 1)))
		boxes[i] = BoundingBox{
			X:      int(x),
			Y:      int(y),
			Width:  templateWidth,
			Height: templateHeight,
		}
	}
	return boxes
}
