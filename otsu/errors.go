package otsu

import "errors"

// ErrInvalidArgument reports a parameter below its minimum. It is returned
// before any partition or histogram work is performed.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrEmptyRegion reports an image or derived region containing zero samples,
// for which no histogram can be built.
var ErrEmptyRegion = errors.New("empty region")
