package otsu

import "fmt"

// Threshold computes one global Otsu threshold for the whole image and
// broadcasts it into a mask of the same shape. Every cell holds the selected
// level, or NoThreshold when the image has no valid split.
func Threshold(img *Image) (*Mask, error) {
	if img == nil || img.height == 0 || img.width == 0 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrEmptyRegion)
	}

	level, ok, err := regionLevel(img, img.bounds())
	if err != nil {
		return nil, err
	}
	if !ok {
		level = NoThreshold
	}

	mask := newMask(img.height, img.width)
	mask.setRegion(img.bounds(), level)

	logger.Debug().
		Int("width", img.width).
		Int("height", img.height).
		Int("level", level).
		Msg("global threshold computed")

	return mask, nil
}
