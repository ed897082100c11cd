package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/template-match-mcp/internal/match"
)

// AnnotateResult contains a copy of the parent image with match boxes drawn
// on it.
type AnnotateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	BoxCount    int    `json:"box_count"`
}

// Annotate draws match bounding boxes onto a copy of the parent image and
// returns it as base64 PNG. The original image is not modified.
//
// colorHex is a CSS-style hex color ("#ff0000"); an unparseable value falls
// back to red. Boxes that extend outside the image (the matcher does not
// clip, see match.MapToBoxes) are clipped here for drawing only; the
// reported match coordinates are unaffected.
func Annotate(img image.Image, boxes []match.BoundingBox, colorHex string, lineWidth int) (*AnnotateResult, error) {
	bounds := img.Bounds()

	boxColor := color.RGBA{255, 0, 0, 255}
	if c, err := colorful.Hex(colorHex); err == nil {
		r, g, b := c.RGB255()
		boxColor = color.RGBA{r, g, b, 255}
	}
	if lineWidth < 1 {
		lineWidth = 1
	}

	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	for _, box := range boxes {
		rect := image.Rect(box.X, box.Y, box.X+box.Width, box.Y+box.Height).
			Add(bounds.Min).
			Intersect(bounds)
		if rect.Empty() {
			continue
		}
		drawBox(out, rect, boxColor, lineWidth)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode annotated image: %w", err)
	}

	return &AnnotateResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		BoxCount:    len(boxes),
	}, nil
}

// drawBox strokes the outline of rect, growing inward by lineWidth pixels.
func drawBox(img *image.RGBA, rect image.Rectangle, c color.RGBA, lineWidth int) {
	for i := 0; i < lineWidth; i++ {
		r := rect.Inset(i)
		if r.Empty() {
			return
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, r.Min.Y, c)
			img.SetRGBA(x, r.Max.Y-1, c)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			img.SetRGBA(r.Min.X, y, c)
			img.SetRGBA(r.Max.X-1, y, c)
		}
	}
}
