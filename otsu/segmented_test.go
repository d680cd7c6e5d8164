package otsu

import (
	"errors"
	"testing"
)

func TestSegmentedThreshold_SingleSegmentMatchesGlobal(t *testing.T) {
	img := halfHalfImage(t, 5, 8, 20, 210)

	global, err := Threshold(img)
	if err != nil {
		t.Fatalf("Threshold: %v", err)
	}
	segmented, err := SegmentedThreshold(img, 1, 1)
	if err != nil {
		t.Fatalf("SegmentedThreshold: %v", err)
	}

	for y := 0; y < img.Height(); y++ {
		for x := 0; x < img.Width(); x++ {
			if segmented.At(y, x) != global.At(y, x) {
				t.Fatalf("cell (%d,%d): segmented %d, global %d",
					y, x, segmented.At(y, x), global.At(y, x))
			}
		}
	}
}

func TestSegmentedThreshold_CellsUniformWithinBlock(t *testing.T) {
	// 8x8 split 2x2 uses 8/2+1 = 5 pixel blocks, so the grid rows cover
	// [0,5) and [5,8), same for columns.
	pix := make([]uint8, 64)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pix[y*8+x] = uint8(y*29 + x*13)
		}
	}
	img := mustImage(t, 8, 8, pix)

	mask, err := SegmentedThreshold(img, 2, 2)
	if err != nil {
		t.Fatalf("SegmentedThreshold: %v", err)
	}

	blocks := []rect{
		{0, 0, 5, 5}, {0, 5, 5, 8},
		{5, 0, 8, 5}, {5, 5, 8, 8},
	}
	for _, b := range blocks {
		want := mask.At(b.y0, b.x0)
		for y := b.y0; y < b.y1; y++ {
			for x := b.x0; x < b.x1; x++ {
				if got := mask.At(y, x); got != want {
					t.Fatalf("block %+v not uniform: cell (%d,%d) is %d, corner is %d",
						b, y, x, got, want)
				}
			}
		}
	}
}

func TestSegmentedThreshold_BlocksMatchStandaloneThreshold(t *testing.T) {
	pix := make([]uint8, 100)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			pix[y*10+x] = uint8((y*31 + x*17) % 251)
		}
	}
	img := mustImage(t, 10, 10, pix)

	mask, err := SegmentedThreshold(img, 3, 3)
	if err != nil {
		t.Fatalf("SegmentedThreshold: %v", err)
	}

	// 10/3+1 = 4 pixel blocks starting at 0, 4 and 8 on both axes.
	for y0 := 0; y0 < 10; y0 += 4 {
		for x0 := 0; x0 < 10; x0 += 4 {
			y1 := min(y0+4, 10)
			x1 := min(x0+4, 10)

			block := cropImage(t, img, y0, x0, y1, x1)
			want, err := Threshold(block)
			if err != nil {
				t.Fatalf("Threshold on block (%d,%d): %v", y0, x0, err)
			}

			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					if mask.At(y, x) != want.At(y-y0, x-x0) {
						t.Fatalf("cell (%d,%d): got %d, standalone block gives %d",
							y, x, mask.At(y, x), want.At(y-y0, x-x0))
					}
				}
			}
		}
	}
}

func TestSegmentedThreshold_FullCoverageWithUnevenDivision(t *testing.T) {
	// 7x5 split 3x2 gives 3 pixel rows per block (7/3+1) and 3 pixel
	// columns (5/2+1): offsets 0,3,6 and 0,3, trailing blocks clipped.
	// Every block of a checkerboard contains both values, so every cell
	// must come out 10 and none may be left unset.
	img := checkerboardImage(t, 7, 5, 10, 200)

	mask, err := SegmentedThreshold(img, 3, 2)
	if err != nil {
		t.Fatalf("SegmentedThreshold: %v", err)
	}
	for y := 0; y < 7; y++ {
		for x := 0; x < 5; x++ {
			if got := mask.At(y, x); got != 10 {
				t.Fatalf("cell (%d,%d): got %d, want 10", y, x, got)
			}
		}
	}
}

func TestSegmentedThreshold_UniformBlockGetsNoThreshold(t *testing.T) {
	img := uniformImage(t, 4, 4, 77)

	mask, err := SegmentedThreshold(img, 2, 2)
	if err != nil {
		t.Fatalf("SegmentedThreshold: %v", err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := mask.At(y, x); got != NoThreshold {
				t.Fatalf("cell (%d,%d): got %d, want NoThreshold", y, x, got)
			}
		}
	}
}

func TestSegmentedThreshold_InvalidSegmentCounts(t *testing.T) {
	img := uniformImage(t, 4, 4, 100)

	cases := []struct {
		name       string
		vSegs, hSegs int
	}{
		{"zero vertical", 0, 2},
		{"zero horizontal", 2, 0},
		{"negative vertical", -1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SegmentedThreshold(img, tc.vSegs, tc.hSegs)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestSegmentedThreshold_ParamCheckPrecedesEmptyCheck(t *testing.T) {
	img := mustImage(t, 0, 0, nil)

	_, err := SegmentedThreshold(img, 0, 1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	_, err = SegmentedThreshold(img, 1, 1)
	if !errors.Is(err, ErrEmptyRegion) {
		t.Fatalf("expected ErrEmptyRegion, got %v", err)
	}
}
