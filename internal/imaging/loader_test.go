package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a solid-color PNG into the test's temp dir and returns
// its path.
func writeTestPNG(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, 40, 30, color.RGBA{0, 128, 255, 255})

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 40x30", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Second load must come from the cache even if the file disappears.
	os.Remove(path)
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached load failed: %v", err)
	}

	cache.Evict(path)
	if _, err := cache.Load(path); err == nil {
		t.Error("load after eviction of a deleted file should fail")
	}
}

func TestImageCache_Load_MissingFile(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImageCache_Clear(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, 10, 10, color.White)

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	os.Remove(path)
	cache.Clear()
	if _, err := cache.Load(path); err == nil {
		t.Error("load after Clear of a deleted file should fail")
	}
}

func TestImageCache_LoadGray(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, 8, 8, color.RGBA{255, 0, 0, 255})

	gray, err := cache.LoadGray(path)
	if err != nil {
		t.Fatalf("LoadGray failed: %v", err)
	}
	if gray.Bounds().Dx() != 8 || gray.Bounds().Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 8x8", gray.Bounds().Dx(), gray.Bounds().Dy())
	}
	// Pure red has luminance well below white and above black.
	v := gray.GrayAt(0, 0).Y
	if v == 0 || v == 255 {
		t.Errorf("red luminance: got %d, want mid-range", v)
	}
}

func TestLoadImageInfo(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, 25, 15, color.Black)

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 25 || info.Height != 15 {
		t.Errorf("dimensions: got %dx%d, want 25x15", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
}

func TestGetDimensions(t *testing.T) {
	cache := NewImageCache()
	path := writeTestPNG(t, 123, 45, color.White)

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 123 || dims.Height != 45 {
		t.Errorf("dimensions: got %dx%d, want 123x45", dims.Width, dims.Height)
	}
}
