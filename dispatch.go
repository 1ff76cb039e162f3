package scaledraw

// worthSplitting decides whether a destination chunk of the given width
// and height pays for subdivision. rho is the source/destination area
// ratio of the pre-clip rectangles, so width*height*rho approximates
// the source area the chunk reads.
//
// The predicate is monotonically non-decreasing in width*height: a
// chunk that is worth splitting stays worth splitting as it grows.
func worthSplitting(srcAreaTh, dstAreaTh int64, rho float64, width, height int32) bool {
	if height < 2 {
		return false
	}
	area := int64(width) * int64(height)
	return float64(area)*rho >= float64(srcAreaTh) || area >= dstAreaTh
}

// splitBands recursively halves [yStart, yEnd] until the split
// predicate goes false, appending the resulting leaf bands to out in
// top-to-bottom order. Bands are disjoint and cover the input range.
func splitBands(out [][2]int32, yStart, yEnd, width int32, rho float64, srcAreaTh, dstAreaTh int64) [][2]int32 {
	if worthSplitting(srcAreaTh, dstAreaTh, rho, width, yEnd-yStart+1) {
		yMid := int32((int64(yStart) + int64(yEnd)) / 2)
		out = splitBands(out, yStart, yMid, width, rho, srcAreaTh, dstAreaTh)
		out = splitBands(out, yMid+1, yEnd, width, rho, srcAreaTh, dstAreaTh)
		return out
	}
	return append(out, [2]int32{yStart, yEnd})
}

// dispatchChunks partitions the clipped destination into disjoint row
// bands per the algorithm's thresholds and runs them on the
// parallelizer, returning only once every chunk has completed.
//
// The band set depends only on geometry and thresholds, never on worker
// count, so output is deterministic for a fixed input. The first chunk
// error in band order is returned after all chunks have terminated.
func dispatchChunks(par Parallelizer, h ColorTypeHelper, algo Algo, src SrcPixels,
	srcRect, dstRect, dstClipped Rect, rd RowDrawer) error {

	if dstClipped.IsEmpty() {
		return nil
	}

	rho := float64(srcRect.Area()) / float64(dstRect.Area())
	bands := splitBands(nil, dstClipped.Y, dstClipped.YMax(), dstClipped.XSpan, rho,
		algo.SrcAreaThresholdForSplit(), algo.DstAreaThresholdForSplit())

	if len(bands) == 1 {
		return algo.DrawChunk(h, src, srcRect, dstRect, dstClipped, bands[0][0], bands[0][1], rd)
	}

	errs := make([]error, len(bands))
	tasks := make([]func(), len(bands))
	for i, band := range bands {
		i, band := i, band
		tasks[i] = func() {
			errs[i] = algo.DrawChunk(h, src, srcRect, dstRect, dstClipped, band[0], band[1], rd)
		}
	}
	par.ExecuteAndWait(tasks)

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
