package otsu

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SegmentedThreshold partitions the image into a grid of vSegments rows by
// hSegments columns of blocks and computes an independent Otsu threshold per
// block. Trailing blocks are clipped to the image bounds; together the
// blocks cover every pixel exactly once.
//
// Blocks are processed concurrently. Each writes a disjoint region of the
// mask, so the result is identical to processing them one by one.
func SegmentedThreshold(img *Image, vSegments, hSegments int) (*Mask, error) {
	if vSegments < 1 {
		return nil, fmt.Errorf("%w: vertical segments must be at least 1, got %d",
			ErrInvalidArgument, vSegments)
	}
	if hSegments < 1 {
		return nil, fmt.Errorf("%w: horizontal segments must be at least 1, got %d",
			ErrInvalidArgument, hSegments)
	}
	if img == nil || img.height == 0 || img.width == 0 {
		return nil, fmt.Errorf("%w: image has no pixels", ErrEmptyRegion)
	}

	// Integer division plus one guarantees the stride-by-block grid covers
	// the whole image even when the dimensions do not divide evenly.
	blockHeight := img.height/vSegments + 1
	blockWidth := img.width/hSegments + 1

	mask := newMask(img.height, img.width)

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())

	blocks := 0
	for yOffset := 0; yOffset < img.height; yOffset += blockHeight {
		for xOffset := 0; xOffset < img.width; xOffset += blockWidth {
			block := rect{
				y0: yOffset,
				x0: xOffset,
				y1: min(yOffset+blockHeight, img.height),
				x1: min(xOffset+blockWidth, img.width),
			}
			blocks++

			group.Go(func() error {
				level, ok, err := regionLevel(img, block)
				if err != nil {
					return err
				}
				if !ok {
					level = NoThreshold
				}
				mask.setRegion(block, level)
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("width", img.width).
		Int("height", img.height).
		Int("block_width", blockWidth).
		Int("block_height", blockHeight).
		Int("blocks", blocks).
		Msg("segmented threshold computed")

	return mask, nil
}
