package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// TemplateResult contains an extracted template image.
type TemplateResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// SavedPath is set when the template was also written to disk.
	SavedPath string `json:"saved_path,omitempty"`
}

// ExtractTemplate cuts a rectangular template out of a parent image.
//
// This is the non-interactive half of template selection: the client picks
// the rectangle (by eye, by UI, however), and this produces the template the
// matcher consumes. (x1, y1) is inclusive, (x2, y2) exclusive. An optional
// scale resizes the template with Lanczos resampling; pass 1.0 (or 0) for
// no scaling. If savePath is non-empty the template is also written there
// as PNG.
func ExtractTemplate(img image.Image, x1, y1, x2, y2 int, scale float64, savePath string) (*TemplateResult, error) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("template region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid template region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if scale != 0 && scale != 1.0 {
		if scale < 0 {
			return nil, fmt.Errorf("invalid scale %v: must be positive", scale)
		}
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}

	res := &TemplateResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}

	if savePath != "" {
		if err := imaging.Save(cropped, savePath); err != nil {
			return nil, fmt.Errorf("failed to save template: %w", err)
		}
		res.SavedPath = savePath
	}

	return res, nil
}
