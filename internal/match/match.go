package match

// Config controls a single detection run. The zero value is best-match mode
// without diagnostics.
//
// Config is passed by value and never retained; there is no ambient or
// global configuration anywhere in the detector.
type Config struct {
	// Policy selects single-best vs threshold-filtered matching.
	Policy SelectionPolicy

	// IncludeSurface attaches the raw correlation surface to the result for
	// diagnostics. The surface is an O(parent) allocation, so leave this off
	// unless you need it.
	IncludeSurface bool
}

// Result holds the detections of one Find call.
//
// Boxes and Scores are parallel: Scores[i] is the match metric of Boxes[i].
// len(Boxes) == len(Scores) always. Both are empty (never nil) when no
// location meets the threshold; an empty result is a valid outcome, not an
// error.
type Result struct {
	// Boxes are the matched regions in parent pixel coordinates, in
	// row-major order of their correlation peaks.
	Boxes []BoundingBox `json:"boxes"`

	// Scores are the absolute NCC values of the peaks, in [0, 1].
	Scores []float64 `json:"scores"`

	// Surface is the raw correlation surface. Nil unless
	// Config.IncludeSurface was set.
	Surface *Plane `json:"-"`
}

// Find locates the template inside the parent and returns bounding boxes
// with their match metrics.
//
// It composes the three pipeline stages: Correlate builds the NCC surface,
// SelectPeaks suppresses duplicate responses and applies cfg.Policy, and
// MapToBoxes translates the surviving peaks into parent coordinates.
//
// Errors come from Correlate only: *DimensionError when the template does
// not fit inside the parent, ErrDegenerateTemplate when the template is
// uniform. Everything past correlation always succeeds.
//
// Find is a pure function: identical inputs produce identical results,
// including the tie-break in best-match mode.
func Find(template, parent *Plane, cfg Config) (*Result, error) {
	surface, err := Correlate(template, parent)
	if err != nil {
		return nil, err
	}

	peaks := SelectPeaks(surface, cfg.Policy)

	res := &Result{
		Boxes:  MapToBoxes(peaks, template.Height, template.Width),
		Scores: make([]float64, len(peaks)),
	}
	for i, p := range peaks {
		res.Scores[i] = p.Score
	}
	if cfg.IncludeSurface {
		res.Surface = surface
	}
	return res, nil
}
