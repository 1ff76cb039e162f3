package scaledraw

import "math"

// nextStageSpan returns the span following cur on the way to target,
// under the algorithm's per-iteration shrink and growth factors.
//
// Downscales step to max(target, round(cur*shrink)); upscales to
// min(target, round(cur*growth)). A factor that would not move the span
// is forced to make one pixel of progress, so the sequence always
// terminates exactly at target.
func nextStageSpan(cur, target int32, shrink, growth float64) int32 {
	switch {
	case target < cur:
		if shrink <= 0 {
			return target
		}
		next := roundSpan(float64(cur) * shrink)
		if next >= cur {
			next = cur - 1
		}
		if next < target {
			next = target
		}
		return next
	case target > cur:
		if math.IsInf(growth, 1) {
			return target
		}
		next := roundSpan(float64(cur) * growth)
		if next <= cur {
			next = cur + 1
		}
		if next > target {
			next = target
		}
		return next
	default:
		return cur
	}
}

// roundSpan rounds a scaled span to the nearest integer.
func roundSpan(x float64) int32 {
	return int32(x + 0.5)
}

// stageRects decomposes the scaling of srcRect's spans onto dstRect's
// into a sequence of intermediate rectangles at the destination origin.
// Both axes advance together, one stage at a time; an axis that has
// reached its target span holds it. The last rectangle always has
// dstRect's spans.
//
// A single-element result means the scale needs no staging.
func stageRects(srcRect, dstRect Rect, shrink, growth float64) []Rect {
	curW, curH := srcRect.XSpan, srcRect.YSpan
	dstW, dstH := dstRect.XSpan, dstRect.YSpan

	var stages []Rect
	for curW != dstW || curH != dstH {
		curW = nextStageSpan(curW, dstW, shrink, growth)
		curH = nextStageSpan(curH, dstH, shrink, growth)
		stages = append(stages, dstRect.WithSpans(curW, curH))
	}
	if len(stages) == 0 {
		// Identity spans: a single direct stage.
		stages = append(stages, dstRect)
	}
	return stages
}

// drawStaged runs one logical scale step, decomposed into staging
// iterations when the algorithm's factors call for it. Every stage but
// the last renders into a pooled intermediate plane with a full-plane
// clip; the last renders to the caller's row drawer with the real clip.
func drawStaged(par Parallelizer, h ColorTypeHelper, algo Algo, src SrcPixels,
	srcRect, dstRect, dstClipped Rect, rd RowDrawer) error {

	stages := stageRects(srcRect, dstRect,
		algo.IterationSpanShrinkFactor(), algo.IterationSpanGrowthFactor())
	if len(stages) == 1 {
		return dispatchChunks(par, h, algo, src, srcRect, dstRect, dstClipped, rd)
	}

	Logger().Debug("scaledraw: staged scale",
		"src", srcRect.String(), "dst", dstRect.String(), "stages", len(stages))

	// The stage planes rotate: once a stage has rendered, the plane
	// backing its source is free and returns to the pool, typically to
	// be leased right back for the stage after next.
	curSrc := src
	curSrcRect := srcRect
	var leased []Color32
	var fail error
	for i, stageRect := range stages {
		if i == len(stages)-1 {
			fail = dispatchChunks(par, h, algo, curSrc, curSrcRect, dstRect, dstClipped, rd)
			break
		}
		buf, err := getPlaneBuf(stageRect.Area())
		if err != nil {
			fail = err
			break
		}
		plane := newPixelBufOver(stageRect, stageRect.XSpan, buf)
		if err := dispatchChunks(par, h, algo, curSrc, curSrcRect, stageRect, stageRect, plane); err != nil {
			planeScratch.Put(buf)
			fail = err
			break
		}
		if leased != nil {
			planeScratch.Put(leased)
		}
		leased = buf
		curSrc, curSrcRect = plane, stageRect
	}
	if leased != nil {
		planeScratch.Put(leased)
	}
	return fail
}
