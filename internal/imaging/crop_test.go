package imaging

import (
	"encoding/base64"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func gradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x * 5), uint8(y * 5), 0, 255})
		}
	}
	return img
}

func TestExtractTemplate(t *testing.T) {
	img := gradientImage(50, 40)

	res, err := ExtractTemplate(img, 10, 5, 30, 25, 1.0, "")
	if err != nil {
		t.Fatalf("ExtractTemplate failed: %v", err)
	}

	if res.Width != 20 || res.Height != 20 {
		t.Errorf("dimensions: got %dx%d, want 20x20", res.Width, res.Height)
	}
	if res.MimeType != "image/png" {
		t.Errorf("mime type: got %s, want image/png", res.MimeType)
	}
	if _, err := base64.StdEncoding.DecodeString(res.ImageBase64); err != nil {
		t.Errorf("image_base64 is not valid base64: %v", err)
	}
	if res.SavedPath != "" {
		t.Errorf("saved_path should be empty, got %q", res.SavedPath)
	}
}

func TestExtractTemplate_WithScale(t *testing.T) {
	img := gradientImage(50, 40)

	res, err := ExtractTemplate(img, 0, 0, 20, 10, 2.0, "")
	if err != nil {
		t.Fatalf("ExtractTemplate failed: %v", err)
	}
	if res.Width != 40 || res.Height != 20 {
		t.Errorf("scaled dimensions: got %dx%d, want 40x20", res.Width, res.Height)
	}
}

func TestExtractTemplate_SavesToDisk(t *testing.T) {
	img := gradientImage(30, 30)
	savePath := filepath.Join(t.TempDir(), "template.png")

	res, err := ExtractTemplate(img, 5, 5, 15, 15, 1.0, savePath)
	if err != nil {
		t.Fatalf("ExtractTemplate failed: %v", err)
	}
	if res.SavedPath != savePath {
		t.Errorf("saved_path: got %q, want %q", res.SavedPath, savePath)
	}
	if _, err := os.Stat(savePath); err != nil {
		t.Errorf("saved template missing: %v", err)
	}
}

func TestExtractTemplate_InvalidRegions(t *testing.T) {
	img := gradientImage(50, 40)

	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"outside bounds", 10, 10, 60, 20},
		{"negative origin", -1, 0, 10, 10},
		{"inverted x", 30, 10, 10, 20},
		{"zero height", 10, 10, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExtractTemplate(img, tt.x1, tt.y1, tt.x2, tt.y2, 1.0, ""); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
