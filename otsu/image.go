package otsu

import (
	"fmt"
	"image"
)

// Image is a single-channel grayscale image in row-major order. The
// algorithms in this package only ever read it.
type Image struct {
	pix    []uint8
	width  int
	height int
}

// NewImage wraps row-major 8-bit pixel data into an Image. The buffer length
// must equal height*width.
func NewImage(height, width int, pix []uint8) (*Image, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidArgument, width, height)
	}
	if len(pix) != height*width {
		return nil, fmt.Errorf("%w: pixel buffer length %d does not match %dx%d",
			ErrInvalidArgument, len(pix), width, height)
	}
	return &Image{pix: pix, width: width, height: height}, nil
}

// FromGray copies a stdlib grayscale image into an Image. Sub-images with
// non-zero bounds are handled.
func FromGray(src *image.Gray) *Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	pix := make([]uint8, height*width)
	for y := 0; y < height; y++ {
		offset := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(pix[y*width:(y+1)*width], src.Pix[offset:offset+width])
	}

	return &Image{pix: pix, width: width, height: height}
}

// Width returns the image width in pixels.
func (im *Image) Width() int { return im.width }

// Height returns the image height in pixels.
func (im *Image) Height() int { return im.height }

// At returns the intensity of the pixel at row y, column x.
func (im *Image) At(y, x int) uint8 { return im.pix[y*im.width+x] }

func (im *Image) bounds() rect {
	return rect{y1: im.height, x1: im.width}
}

// rect is a half-open pixel region [y0,y1) x [x0,x1).
type rect struct {
	y0, x0 int
	y1, x1 int
}

func (r rect) empty() bool { return r.y1 <= r.y0 || r.x1 <= r.x0 }

func (r rect) height() int { return r.y1 - r.y0 }

func (r rect) width() int { return r.x1 - r.x0 }
