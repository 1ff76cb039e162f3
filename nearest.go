package scaledraw

import "math"

// DefaultNearestDstAreaThreshold is the clipped destination area at or
// above which a nearest-neighbor chunk is split for parallel execution.
const DefaultNearestDstAreaThreshold = 256 << 10

// NearestAlgo fills every destination pixel with the color of the
// source pixel whose center is closest under the engine's
// pixel-center mapping. Sampling is axis-independent and single-pass:
// nearest never stages.
//
// The zero value is not ready to use; call NewNearestAlgo.
//
// Thread safety: safe for concurrent DrawChunk calls.
type NearestAlgo struct {
	// DstAreaThreshold is the clipped destination area at or above
	// which a chunk is worth splitting.
	DstAreaThreshold int64

	// AliasSourceRows permits the unscaled-X fast path to hand the
	// source's own color array to the row drawer instead of copying
	// through a scratch row. Only enable it for sinks that treat the
	// buffer as read-only and do not retain it.
	AliasSourceRows bool
}

var _ Algo = (*NearestAlgo)(nil)

// NewNearestAlgo returns a NearestAlgo with the default split
// threshold.
func NewNearestAlgo() *NearestAlgo {
	return &NearestAlgo{DstAreaThreshold: DefaultNearestDstAreaThreshold}
}

// SrcAreaThresholdForSplit disables the source-side split criterion:
// nearest touches one source pixel per destination pixel.
func (a *NearestAlgo) SrcAreaThresholdForSplit() int64 { return noSrcAreaThreshold }

// DstAreaThresholdForSplit returns the configured destination-area
// threshold.
func (a *NearestAlgo) DstAreaThresholdForSplit() int64 { return a.DstAreaThreshold }

// IterationSpanShrinkFactor returns 0: nearest downscales in one step.
func (a *NearestAlgo) IterationSpanShrinkFactor() float64 { return 0 }

// IterationSpanGrowthFactor returns +Inf: nearest upscales in one step.
func (a *NearestAlgo) IterationSpanGrowthFactor() float64 { return math.Inf(1) }

// DrawChunk renders rows yStart..yEnd of the nearest-neighbor scaling.
func (a *NearestAlgo) DrawChunk(h ColorTypeHelper, src SrcPixels, srcRect, dstRect, dstClipped Rect,
	yStart, yEnd int32, rd RowDrawer) error {

	cx := dstClipped.X
	cw := dstClipped.XSpan
	yRatio := float64(srcRect.YSpan) / float64(dstRect.YSpan)

	srcArr := src.Color32Arr()
	srcBounds := src.Rect()
	stride := int(src.ScanlineStride())

	if srcRect.XSpan == dstRect.XSpan && srcArr != nil {
		// No X scaling: every destination row is a contiguous run of
		// the mapped source row.
		srcX0 := srcRect.X + (cx - dstRect.X)
		if a.AliasSourceRows {
			for y := yStart; y <= yEnd; y++ {
				sy := srcRect.Y + computeSrcIndex(y-dstRect.Y, yRatio, srcRect.YSpan)
				off := int(sy-srcBounds.Y)*stride + int(srcX0-srcBounds.X)
				rd.DrawRow(srcArr, off, cx, y, cw)
			}
			return nil
		}
		rowBuf := colorScratch.Get(int(cw))
		defer colorScratch.Put(rowBuf)
		var prevSy int32
		haveRow := false
		for y := yStart; y <= yEnd; y++ {
			sy := srcRect.Y + computeSrcIndex(y-dstRect.Y, yRatio, srcRect.YSpan)
			if !haveRow || sy != prevSy {
				off := int(sy-srcBounds.Y)*stride + int(srcX0-srcBounds.X)
				copy(rowBuf, srcArr[off:off+int(cw)])
				prevSy, haveRow = sy, true
			}
			rd.DrawRow(rowBuf, 0, cx, y, cw)
		}
		return nil
	}

	// General path: the mapped source X for each destination column is
	// the same on every row, so the index table is built once per chunk.
	xRatio := float64(srcRect.XSpan) / float64(dstRect.XSpan)
	xIdx := intScratch.Get(int(cw))
	defer intScratch.Put(xIdx)
	for j := int32(0); j < cw; j++ {
		di := (cx - dstRect.X) + j
		xIdx[j] = srcRect.X + computeSrcIndex(di, xRatio, srcRect.XSpan)
	}

	rowBuf := colorScratch.Get(int(cw))
	defer colorScratch.Put(rowBuf)

	// An upscaled Y axis maps several destination rows onto one source
	// row; the assembled row buffer is reused until the mapping moves.
	var prevSy int32
	haveRow := false
	for y := yStart; y <= yEnd; y++ {
		sy := srcRect.Y + computeSrcIndex(y-dstRect.Y, yRatio, srcRect.YSpan)
		if !haveRow || sy != prevSy {
			if srcArr != nil {
				rowOff := int(sy-srcBounds.Y) * stride
				for j := range rowBuf {
					rowBuf[j] = srcArr[rowOff+int(xIdx[j]-srcBounds.X)]
				}
			} else {
				for j := range rowBuf {
					rowBuf[j] = src.Color32At(xIdx[j], sy)
				}
			}
			prevSy, haveRow = sy, true
		}
		rd.DrawRow(rowBuf, 0, cx, y, cw)
	}
	return nil
}
