package match

import "math"

// Peak is a candidate match location on a correlation surface.
type Peak struct {
	// Row and Col index the correlation surface (0-based).
	Row int
	Col int

	// Score is the absolute correlation value at this location (0 to 1).
	Score float64
}

// SelectionPolicy decides which regional maxima of the correlation surface
// become reported matches. Construct one with BestMatch or
// ThresholdFiltered.
type SelectionPolicy struct {
	threshold float64
	filtered  bool
}

// BestMatch returns the policy that selects exactly one peak: the global
// maximum of the suppressed surface. When several cells share the maximum
// value, the first one in row-major scan order wins, which keeps repeated
// runs on identical inputs deterministic.
func BestMatch() SelectionPolicy {
	return SelectionPolicy{}
}

// ThresholdFiltered returns the policy that selects every regional maximum
// whose absolute correlation is at or above threshold. Sensible thresholds
// live in [0.5, 1.0] but any value is accepted; an aggressive threshold
// simply yields an empty result, which is not an error.
func ThresholdFiltered(threshold float64) SelectionPolicy {
	return SelectionPolicy{threshold: threshold, filtered: true}
}

// SelectPeaks reduces a correlation surface to its qualifying peaks.
//
// The surface is first reduced to its regional maxima: the element-wise
// absolute value is taken, and every cell that is not part of an 8-connected
// flat plateau strictly greater than all of the plateau's outside neighbors
// is suppressed. This guarantees at most one candidate per contiguous peak
// region, so one true match cannot be reported as several adjacent
// detections.
//
// The policy then picks from the surviving maxima. Results are in row-major
// scan order of the surface and the ordering is stable.
//
// SelectPeaks does not modify the surface.
func SelectPeaks(surface *Plane, policy SelectionPolicy) []Peak {
	w, h := surface.Width, surface.Height

	abs := make([]float64, len(surface.Data))
	for i, v := range surface.Data {
		abs[i] = math.Abs(v)
	}

	maxima := regionalMaxima(abs, w, h)

	if policy.filtered {
		peaks := make([]Peak, 0)
		for i, ok := range maxima {
			if ok && abs[i] >= policy.threshold {
				peaks = append(peaks, Peak{Row: i / w, Col: i % w, Score: abs[i]})
			}
		}
		return peaks
	}

	// Single-best mode: global maximum of the suppressed surface. A strict
	// comparison keeps the first cell on ties.
	best := -1
	for i, ok := range maxima {
		if !ok {
			continue
		}
		if best < 0 || abs[i] > abs[best] {
			best = i
		}
	}
	if best < 0 {
		// Cannot happen on a non-empty surface: at least one plateau always
		// survives. Guards the empty-surface case.
		return nil
	}
	return []Peak{{Row: best / w, Col: best % w, Score: abs[best]}}
}

// regionalMaxima returns a mask of the regional maxima of a surface.
//
// A regional maximum is a flat plateau of equal-valued cells none of whose
// 8-connected outside neighbors has a strictly greater value. Plateaus are
// traced with an iterative flood fill; every cell of a winning plateau is
// marked in the mask.
func regionalMaxima(data []float64, width, height int) []bool {
	mask := make([]bool, len(data))
	visited := make([]bool, len(data))

	plateau := make([]int, 0, 64)
	stack := make([]int, 0, 64)

	for start := range data {
		if visited[start] {
			continue
		}

		value := data[start]
		isMax := true
		plateau = plateau[:0]
		stack = append(stack[:0], start)
		visited[start] = true

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			plateau = append(plateau, idx)

			row, col := idx/width, idx%width
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := row+dr, col+dc
					if nr < 0 || nr >= height || nc < 0 || nc >= width {
						continue
					}
					n := nr*width + nc
					switch {
					case data[n] > value:
						isMax = false
					case data[n] == value && !visited[n]:
						visited[n] = true
						stack = append(stack, n)
					}
				}
			}
		}

		if isMax {
			for _, idx := range plateau {
				mask[idx] = true
			}
		}
	}

	return mask
}
