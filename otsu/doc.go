// Package otsu computes binarization threshold masks for grayscale images
// using Otsu's method: the gray level splitting the pixel population into
// two classes with minimal weighted intra-class variance.
//
// Three variations are provided, all sharing the same inner selection
// routine:
//
//   - Threshold computes one global level for the whole image.
//   - SegmentedThreshold partitions the image into a grid of blocks and
//     thresholds each block independently.
//   - SlidingWindowThreshold slides an overlapping window across the image
//     and averages the per-window levels contributed to each pixel.
//
// The resulting mask binarizes an image by comparing each pixel against its
// mask cell: foreground where pixel > mask, background otherwise. That
// comparison is left to the caller.
package otsu
