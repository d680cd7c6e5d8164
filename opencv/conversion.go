// Package opencv converts between gocv Mats and the otsu package's image
// and mask types, so the threshold algorithms drop into gocv pipelines.
package opencv

import (
	"fmt"

	"gocv.io/x/gocv"

	"otsu-masker/otsu"
)

// FromMat copies a single-channel 8-bit Mat into an otsu.Image.
func FromMat(mat gocv.Mat) (*otsu.Image, error) {
	if mat.Empty() {
		return nil, fmt.Errorf("cannot convert empty Mat")
	}
	if mat.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("unsupported Mat type %d: grayscale conversion requires CV_8UC1", int(mat.Type()))
	}

	rows := mat.Rows()
	cols := mat.Cols()
	pix := make([]uint8, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pix[y*cols+x] = mat.GetUCharAt(y, x)
		}
	}

	return otsu.NewImage(rows, cols, pix)
}

// ToMat copies an otsu.Image into a new CV_8UC1 Mat. The caller owns the
// returned Mat and must Close it.
func ToMat(img *otsu.Image) (gocv.Mat, error) {
	if img == nil || img.Height() == 0 || img.Width() == 0 {
		return gocv.NewMat(), fmt.Errorf("cannot convert image with no pixels")
	}

	mat := gocv.NewMatWithSize(img.Height(), img.Width(), gocv.MatTypeCV8UC1)
	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			mat.SetUCharAt(y, x, img.At(y, x))
		}
	}

	return mat, nil
}

// MaskToMat copies an integer threshold mask into a new CV_8UC1 Mat. Masks
// containing NoThreshold cells are rejected: a region without a valid split
// has no uint8 representation, and the caller must handle it explicitly.
func MaskToMat(mask *otsu.Mask) (gocv.Mat, error) {
	if mask == nil || mask.Height() == 0 || mask.Width() == 0 {
		return gocv.NewMat(), fmt.Errorf("cannot convert mask with no cells")
	}

	mat := gocv.NewMatWithSize(mask.Height(), mask.Width(), gocv.MatTypeCV8UC1)
	for y := 0; y < mask.Height(); y++ {
		for x := 0; x < mask.Width(); x++ {
			level := mask.At(y, x)
			if level == otsu.NoThreshold {
				mat.Close()
				return gocv.NewMat(), fmt.Errorf("mask has no valid threshold at (%d,%d)", x, y)
			}
			mat.SetUCharAt(y, x, uint8(level))
		}
	}

	return mat, nil
}

// FloatMaskToMat copies an averaged threshold mask into a new CV_64FC1 Mat.
// NaN cells, marking pixels no window covered, pass through unchanged. The
// caller owns the returned Mat and must Close it.
func FloatMaskToMat(mask *otsu.FloatMask) (gocv.Mat, error) {
	if mask == nil || mask.Height() == 0 || mask.Width() == 0 {
		return gocv.NewMat(), fmt.Errorf("cannot convert mask with no cells")
	}

	mat := gocv.NewMatWithSize(mask.Height(), mask.Width(), gocv.MatTypeCV64FC1)
	for y := 0; y < mask.Height(); y++ {
		for x := 0; x < mask.Width(); x++ {
			mat.SetDoubleAt(y, x, mask.At(y, x))
		}
	}

	return mat, nil
}
