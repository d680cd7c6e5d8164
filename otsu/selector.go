package otsu

import "math"

// SelectThreshold finds the intensity level that minimizes the weighted
// intra-class variance of the two pixel populations split at that level.
// The lower class is levels <= t. Candidates where either class carries no
// probability mass are skipped; among equal minima the smallest level wins.
//
// ok is false when every candidate was skipped, which happens exactly when
// the histogram has at most one occupied bin. The caller decides what a
// region without a valid split means (see NoThreshold).
func SelectThreshold(hist Histogram) (level int, ok bool) {
	total := hist.Total()
	if total == 0 {
		return 0, false
	}

	invTotal := 1.0 / float64(total)

	// Totals of probability mass, level-weighted mass and squared-level-
	// weighted mass; the upper-class sums at each candidate are these minus
	// the running lower-class sums.
	var totalP, totalS, totalQ float64
	for l, count := range hist {
		p := float64(count) * invTotal
		totalP += p
		totalS += float64(l) * p
		totalQ += float64(l) * float64(l) * p
	}

	best := -1
	minVariance := math.Inf(1)

	var lowerP, lowerS, lowerQ float64
	for t := 0; t < 256; t++ {
		p := float64(hist[t]) * invTotal
		lowerP += p
		lowerS += float64(t) * p
		lowerQ += float64(t) * float64(t) * p

		upperP := totalP - lowerP
		if lowerP == 0 || upperP == 0 {
			continue
		}

		// Per class, P*var = Q - S*S/P, so the weighted intra-class
		// variance needs no explicit means.
		upperS := totalS - lowerS
		upperQ := totalQ - lowerQ
		intraclass := (lowerQ - lowerS*lowerS/lowerP) + (upperQ - upperS*upperS/upperP)

		if intraclass < minVariance {
			minVariance = intraclass
			best = t
		}
	}

	if best < 0 {
		return 0, false
	}
	return best, true
}

// regionLevel runs histogram construction and threshold selection for one
// rectangular region of the image.
func regionLevel(img *Image, r rect) (int, bool, error) {
	hist, err := buildHistogram(img, r)
	if err != nil {
		return 0, false, err
	}
	level, ok := SelectThreshold(hist)
	return level, ok, nil
}
