package otsu

import (
	"fmt"
	"math"
)

// SlidingWindowThreshold slides a winHeight x winLength window across the
// image at the given strides, computes an Otsu threshold per window, and
// averages the levels of all windows overlapping each pixel.
//
// Windows near the bottom and right edges are clipped to the image extent.
// Windows whose region has no valid split contribute neither to the running
// sum nor to the contribution count of the pixels they cover. Pixels no
// window covered (possible when a stride exceeds the window size) hold NaN.
func SlidingWindowThreshold(img *Image, winHeight, winLength, vStride, hStride int) (*FloatMask, error) {
	if winHeight < 1 {
		return nil, fmt.Errorf("%w: window height must be at least 1, got %d",
			ErrInvalidArgument, winHeight)
	}
	if winLength < 1 {
		return nil, fmt.Errorf("%w: window length must be at least 1, got %d",
			ErrInvalidArgument, winLength)
	}
	if vStride < 1 {
		return nil, fmt.Errorf("%w: vertical stride must be at least 1, got %d",
			ErrInvalidArgument, vStride)
	}
	if hStride < 1 {
		return nil, fmt.Errorf("%w: horizontal stride must be at least 1, got %d",
			ErrInvalidArgument, hStride)
	}
	if img == nil || img.height == 0 || img.width == 0 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrEmptyRegion)
	}

	sums := make([]float64, img.height*img.width)
	counts := make([]int, img.height*img.width)

	// The loop bounds extend one stride past the last full window placement
	// so clipped windows still reach the bottom and right edges.
	windows := 0
	degenerate := 0
	for yOffset := 0; yOffset < img.height-winHeight+vStride; yOffset += vStride {
		for xOffset := 0; xOffset < img.width-winLength+hStride; xOffset += hStride {
			window := rect{
				y0: yOffset,
				x0: xOffset,
				y1: min(yOffset+winHeight, img.height),
				x1: min(xOffset+winLength, img.width),
			}
			if window.empty() {
				// A stride larger than the window can step wholly past
				// the image edge.
				continue
			}
			windows++

			level, ok, err := regionLevel(img, window)
			if err != nil {
				return nil, err
			}
			if !ok {
				degenerate++
				continue
			}

			for y := window.y0; y < window.y1; y++ {
				base := y * img.width
				for x := window.x0; x < window.x1; x++ {
					sums[base+x] += float64(level)
					counts[base+x]++
				}
			}
		}
	}

	mask := newFloatMask(img.height, img.width)
	uncovered := 0
	for i, count := range counts {
		if count == 0 {
			mask.values[i] = math.NaN()
			uncovered++
			continue
		}
		mask.values[i] = sums[i] / float64(count)
	}

	if uncovered > 0 {
		logger.Warn().
			Int("uncovered_pixels", uncovered).
			Int("window_height", winHeight).
			Int("window_length", winLength).
			Int("vertical_stride", vStride).
			Int("horizontal_stride", hStride).
			Msg("stride/window combination left pixels without coverage")
	}

	logger.Debug().
		Int("width", img.width).
		Int("height", img.height).
		Int("windows", windows).
		Int("degenerate_windows", degenerate).
		Int("uncovered_pixels", uncovered).
		Msg("sliding window threshold computed")

	return mask, nil
}
