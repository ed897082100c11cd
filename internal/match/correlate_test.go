package match

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

// noisePlane builds a deterministic pseudo-random plane with samples in [0, 1).
func noisePlane(width, height int, seed int64) *Plane {
	rng := rand.New(rand.NewSource(seed))
	p := NewPlane(width, height)
	for i := range p.Data {
		p.Data[i] = rng.Float64()
	}
	return p
}

// extractPatch copies a region of parent into a new plane. (x, y) is the
// top-left corner of the region in parent coordinates.
func extractPatch(parent *Plane, x, y, width, height int) *Plane {
	patch := NewPlane(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			patch.Set(row, col, parent.At(y+row, x+col))
		}
	}
	return patch
}

// insertPatch writes patch into parent with its top-left corner at (x, y).
func insertPatch(parent, patch *Plane, x, y int) {
	for row := 0; row < patch.Height; row++ {
		for col := 0; col < patch.Width; col++ {
			parent.Set(y+row, x+col, patch.At(row, col))
		}
	}
}

func TestCorrelate_SurfaceDimensions(t *testing.T) {
	tests := []struct {
		name           string
		pw, ph, tw, th int
	}{
		{"typical", 100, 80, 10, 8},
		{"template equals parent", 20, 20, 20, 20},
		{"single pixel parent margin", 11, 11, 10, 10},
		{"wide template", 50, 50, 50, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := noisePlane(tt.pw, tt.ph, 7)
			template := noisePlane(tt.tw, tt.th, 13)

			surface, err := Correlate(template, parent)
			if err != nil {
				t.Fatalf("Correlate failed: %v", err)
			}

			wantW := tt.pw + tt.tw - 1
			wantH := tt.ph + tt.th - 1
			if surface.Width != wantW || surface.Height != wantH {
				t.Errorf("surface: got %dx%d, want %dx%d", surface.Width, surface.Height, wantW, wantH)
			}
		})
	}
}

func TestCorrelate_ExactSubRegionScoresOne(t *testing.T) {
	parent := noisePlane(60, 60, 42)
	template := extractPatch(parent, 25, 17, 12, 9)

	surface, err := Correlate(template, parent)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	// The template's bottom-right pixel sits at parent (25+11, 17+8), which
	// is where the surface peak must be.
	peakRow := 17 + 9 - 1
	peakCol := 25 + 12 - 1
	got := surface.At(peakRow, peakCol)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("score at true location: got %v, want 1.0", got)
	}
}

func TestCorrelate_ScoresWithinRange(t *testing.T) {
	parent := noisePlane(40, 30, 3)
	template := noisePlane(6, 5, 9)

	surface, err := Correlate(template, parent)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	for i, v := range surface.Data {
		if v < -1.0-1e-9 || v > 1.0+1e-9 {
			t.Fatalf("surface[%d] = %v outside [-1, 1]", i, v)
		}
	}
}

func TestCorrelate_InvertedTemplateScoresMinusOne(t *testing.T) {
	parent := noisePlane(40, 40, 11)
	template := extractPatch(parent, 10, 10, 8, 8)
	// Invert around the sample range; NCC is invariant to the linear map
	// v -> 1-v except for the sign.
	for i, v := range template.Data {
		template.Data[i] = 1 - v
	}

	surface, err := Correlate(template, parent)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	got := surface.At(10+8-1, 10+8-1)
	if math.Abs(got+1.0) > 1e-9 {
		t.Errorf("score at true location: got %v, want -1.0", got)
	}
}

func TestCorrelate_TemplateLargerThanParent(t *testing.T) {
	tests := []struct {
		name           string
		pw, ph, tw, th int
	}{
		{"wider", 10, 10, 11, 5},
		{"taller", 10, 10, 5, 11},
		{"both", 10, 10, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := noisePlane(tt.pw, tt.ph, 1)
			template := noisePlane(tt.tw, tt.th, 2)

			_, err := Correlate(template, parent)
			var dimErr *DimensionError
			if !errors.As(err, &dimErr) {
				t.Fatalf("error: got %v, want *DimensionError", err)
			}
			if dimErr.TemplateWidth != tt.tw || dimErr.ParentHeight != tt.ph {
				t.Errorf("error detail: got %+v", dimErr)
			}
		})
	}
}

func TestCorrelate_DegenerateTemplate(t *testing.T) {
	parent := noisePlane(20, 20, 5)

	uniform := NewPlane(4, 4)
	for i := range uniform.Data {
		uniform.Data[i] = 0.7
	}

	_, err := Correlate(uniform, parent)
	if !errors.Is(err, ErrDegenerateTemplate) {
		t.Fatalf("error: got %v, want ErrDegenerateTemplate", err)
	}
}

func TestCorrelate_FlatParentWindowScoresZero(t *testing.T) {
	// A fully flat parent makes every window zero-variance. The documented
	// policy is a 0 score at those alignments, not NaN and not an error.
	parent := NewPlane(20, 20)
	for i := range parent.Data {
		parent.Data[i] = 0.5
	}
	template := noisePlane(5, 5, 21)

	surface, err := Correlate(template, parent)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	// Interior alignments see a perfectly flat window. Padding-edge windows
	// mix 0.5 with zero padding and are not flat, so check an interior cell.
	if got := surface.At(10, 10); got != 0 {
		t.Errorf("flat window score: got %v, want 0", got)
	}
	for i, v := range surface.Data {
		if math.IsNaN(v) {
			t.Fatalf("surface[%d] is NaN", i)
		}
	}
}

func TestCorrelate_TemplateEqualsParent(t *testing.T) {
	parent := noisePlane(15, 15, 33)
	template := extractPatch(parent, 0, 0, 15, 15)

	surface, err := Correlate(template, parent)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	if surface.Width != 29 || surface.Height != 29 {
		t.Fatalf("surface: got %dx%d, want 29x29", surface.Width, surface.Height)
	}

	center := surface.At(14, 14)
	if math.Abs(center-1.0) > 1e-9 {
		t.Errorf("center score: got %v, want 1.0", center)
	}

	// The exact alignment must dominate every other cell.
	for i, v := range surface.Data {
		if i == 14*29+14 {
			continue
		}
		if math.Abs(v) >= center {
			t.Fatalf("surface[%d] = %v not below center score %v", i, v, center)
		}
	}
}

func TestCorrelate_Deterministic(t *testing.T) {
	parent := noisePlane(50, 40, 17)
	template := noisePlane(7, 6, 19)

	first, err := Correlate(template, parent)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}
	second, err := Correlate(template, parent)
	if err != nil {
		t.Fatalf("Correlate failed: %v", err)
	}

	for i := range first.Data {
		if first.Data[i] != second.Data[i] {
			t.Fatalf("surface[%d] differs between runs: %v vs %v", i, first.Data[i], second.Data[i])
		}
	}
}
