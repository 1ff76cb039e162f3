package scaledraw

import "math"

// Algo is a resampling algorithm driven chunk-by-chunk by the
// dispatcher, plus the constants that shape how the engine partitions
// and stages its work.
//
// Thread safety: DrawChunk is called concurrently on disjoint
// destination row bands; implementations must be safe for that and must
// not block on anything but their own computation.
type Algo interface {
	// SrcAreaThresholdForSplit returns the source-area contribution
	// (clipped destination area times the source/destination area
	// ratio) at or above which a chunk is worth splitting. math.MaxInt64
	// disables the source-side criterion.
	SrcAreaThresholdForSplit() int64

	// DstAreaThresholdForSplit returns the clipped destination area
	// at or above which a chunk is worth splitting.
	DstAreaThresholdForSplit() int64

	// IterationSpanShrinkFactor returns the per-iteration span
	// multiplier, in [0, 1), used to decompose a downscale into
	// stages. 0 means a single step.
	IterationSpanShrinkFactor() float64

	// IterationSpanGrowthFactor returns the per-iteration span
	// multiplier, > 1, used to decompose an upscale into stages.
	// +Inf means a single step.
	IterationSpanGrowthFactor() float64

	// DrawChunk renders destination rows yStart through yEnd
	// (inclusive, in destination coordinates) of the scaling of
	// srcRect onto dstRect, restricted to dstClipped, delivering rows
	// to rd.
	DrawChunk(h ColorTypeHelper, src SrcPixels, srcRect, dstRect, dstClipped Rect,
		yStart, yEnd int32, rd RowDrawer) error
}

// noSrcAreaThreshold disables the source-side split criterion.
const noSrcAreaThreshold = math.MaxInt64

// computeSrcIndex maps a destination pixel index to the source pixel
// offset whose center is nearest, for a span scaling of srcSpan source
// pixels onto the destination span behind ratio (= srcSpan/dstSpan).
//
// The mapping places samples at pixel centers: (di+0.5)*ratio - 0.5.
// Ties are resolved toward the lower index; the choice is locked by the
// tests. The result is clamped into [0, srcSpan).
func computeSrcIndex(di int32, ratio float64, srcSpan int32) int32 {
	sf := (float64(di)+0.5)*ratio - 0.5
	si := roundHalfDown(sf)
	if si < 0 {
		return 0
	}
	if si >= srcSpan {
		return srcSpan - 1
	}
	return si
}

// roundHalfDown rounds to the nearest integer, with halves going down.
func roundHalfDown(x float64) int32 {
	return int32(math.Ceil(x - 0.5))
}
