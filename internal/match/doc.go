// Package match locates occurrences of a template sub-image inside a larger
// parent image using normalized cross-correlation (NCC).
//
// The detector is a straight three-stage pipeline:
//
//  1. Correlate: compute the full NCC surface between template and parent
//     (grayscale planes in, signed correlation surface out)
//  2. SelectPeaks: suppress non-maximal neighbors on the surface so a single
//     true match cannot show up as several adjacent detections, then pick
//     the peak(s) the selection policy asks for
//  3. MapToBoxes: convert each surviving peak's surface coordinate into a
//     bounding box in parent-image pixel coordinates
//
// Find composes the three stages and is the entry point most callers want.
//
// # Coordinate System
//
// All coordinates are 0-based. Planes and surfaces are indexed (row, col)
// with row 0 at the top; bounding boxes are {x, y, width, height} in parent
// pixel coordinates with (0, 0) at the top-left corner.
//
// The correlation surface follows the "full" convention: for a Ph×Pw parent
// and Th×Tw template it has (Ph+Th-1) rows and (Pw+Tw-1) columns, one score
// per possible alignment of the template against the zero-padded parent.
// Surface cell (row, col) corresponds to the template's bottom-right pixel
// sitting at parent pixel (row, col), so the matched region's top-left
// corner is (col-(Tw-1), row-(Th-1)).
//
// # Scores
//
// NCC scores are in [-1, 1] and are invariant to linear brightness and
// contrast changes. A score of 1.0 means the window is an exact (up to
// linear scaling) copy of the template. Peak selection works on absolute
// values, so strong inverted matches are found too; the reported metric is
// the absolute score.
//
// # Degenerate Inputs
//
// A zero-variance (uniform) template has no defined correlation with
// anything; Correlate fails with ErrDegenerateTemplate. A zero-variance
// parent window under an otherwise fine template is scored 0 at that
// alignment rather than propagating NaN, which keeps the detector usable
// on images with flat regions.
//
// # Purity
//
// Everything in this package is a pure function of its inputs: no I/O, no
// shared state, no caching across calls. Correlate parallelizes surface
// rows across goroutines internally, but results are deterministic and
// identical inputs always produce identical output, including the tie-break
// in best-match mode (first qualifying cell in row-major order wins).
package match
