package scaledraw

import (
	"errors"

	"github.com/gogpu/scaledraw/internal/scratch"
)

// Common errors for scaling operations.
var (
	// ErrInvalidArgument is returned when a draw call receives a source
	// rectangle outside the source image bounds, a negative span, or a
	// rectangle whose X+XSpan or Y+YSpan overflows int32.
	ErrInvalidArgument = errors.New("scaledraw: invalid argument")

	// ErrTooLarge is returned when an internal plane request (a staging
	// intermediate or the mixed-direction buffer) exceeds the engine's
	// element cap.
	ErrTooLarge = scratch.ErrTooLarge
)
