package otsu

import "fmt"

// Histogram holds the frequency of each 8-bit intensity level.
type Histogram [256]int

// Total returns the number of samples counted into the histogram.
func (h *Histogram) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

// BuildHistogram counts the intensity distribution of the whole image.
func BuildHistogram(img *Image) (Histogram, error) {
	if img == nil {
		return Histogram{}, fmt.Errorf("%w: nil image", ErrEmptyRegion)
	}
	return buildHistogram(img, img.bounds())
}

func buildHistogram(img *Image, r rect) (Histogram, error) {
	var hist Histogram
	if r.empty() {
		return hist, fmt.Errorf("%w: %dx%d region", ErrEmptyRegion, r.width(), r.height())
	}

	for y := r.y0; y < r.y1; y++ {
		row := img.pix[y*img.width+r.x0 : y*img.width+r.x1]
		for _, value := range row {
			hist[value]++
		}
	}

	return hist, nil
}
