package scaledraw

import "math"

// Defaults shaping how bicubic work is partitioned and staged.
const (
	// DefaultBicubicDstAreaThreshold is the clipped destination area
	// at or above which a bicubic chunk is split for parallel execution.
	// Bicubic does 16 weighted taps per destination pixel, so chunks
	// pay off much earlier than for nearest.
	DefaultBicubicDstAreaThreshold = 4 << 10

	// DefaultBicubicShrinkFactor halves spans per staging iteration on
	// downscales. A single bicubic jump from, say, 8192 to 64 would
	// skip almost every source pixel; iterated halving averages them
	// in.
	DefaultBicubicShrinkFactor = 0.5
)

// BicubicAlgo resamples with the Keys cubic-convolution kernel
// (parameter A = -0.5, the Catmull-Rom spline), sampling a 4x4
// neighborhood per destination pixel with edge-extend at the source
// rectangle's borders.
//
// Interpolation runs in premultiplied color space so that RGB from
// low-alpha neighbors cannot bleed into opaque regions with full
// weight.
//
// The zero value is not ready to use; call NewBicubicAlgo.
//
// Thread safety: safe for concurrent DrawChunk calls.
type BicubicAlgo struct {
	// DstAreaThreshold is the clipped destination area at or above
	// which a chunk is worth splitting.
	DstAreaThreshold int64

	// ShrinkFactor is the per-iteration span multiplier for staged
	// downscales, in [0, 1); 0 downscales in one step.
	ShrinkFactor float64

	// nearest handles the identity fast path, where nearest sampling
	// is exact and preserves alpha bit-for-bit.
	nearest *NearestAlgo
}

var _ Algo = (*BicubicAlgo)(nil)

// NewBicubicAlgo returns a BicubicAlgo with the default split threshold
// and shrink factor.
func NewBicubicAlgo() *BicubicAlgo {
	return &BicubicAlgo{
		DstAreaThreshold: DefaultBicubicDstAreaThreshold,
		ShrinkFactor:     DefaultBicubicShrinkFactor,
		nearest:          NewNearestAlgo(),
	}
}

// SrcAreaThresholdForSplit disables the source-side split criterion:
// the destination-side threshold is low enough to bound the 4x4 tap
// cost.
func (a *BicubicAlgo) SrcAreaThresholdForSplit() int64 { return noSrcAreaThreshold }

// DstAreaThresholdForSplit returns the configured destination-area
// threshold.
func (a *BicubicAlgo) DstAreaThresholdForSplit() int64 { return a.DstAreaThreshold }

// IterationSpanShrinkFactor returns the configured shrink factor.
func (a *BicubicAlgo) IterationSpanShrinkFactor() float64 { return a.ShrinkFactor }

// IterationSpanGrowthFactor returns +Inf: large growth in one jump is
// fine for a C1 kernel.
func (a *BicubicAlgo) IterationSpanGrowthFactor() float64 { return math.Inf(1) }

// cubicWeight computes the Keys cubic-convolution weight for distance t,
// with kernel parameter A = -0.5 (Catmull-Rom):
//
//	|t| <= 1: 1.5|t|^3 - 2.5|t|^2 + 1
//	1 < |t| <= 2: -0.5|t|^3 + 2.5|t|^2 - 4|t| + 2
//	|t| > 2: 0
//
// Weights are negative on (1, 2), so channel sums can leave [0, 255]
// and must be accumulated in floating point before clamping.
func cubicWeight(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t <= 1 {
		return 1.5*t*t*t - 2.5*t*t + 1.0
	}
	if t <= 2 {
		return -0.5*t*t*t + 2.5*t*t - 4.0*t + 2.0
	}
	return 0
}

// DrawChunk renders rows yStart..yEnd of the bicubic scaling.
func (a *BicubicAlgo) DrawChunk(h ColorTypeHelper, src SrcPixels, srcRect, dstRect, dstClipped Rect,
	yStart, yEnd int32, rd RowDrawer) error {

	if srcRect.XSpan == dstRect.XSpan && srcRect.YSpan == dstRect.YSpan {
		return a.nearest.DrawChunk(h, src, srcRect, dstRect, dstClipped, yStart, yEnd, rd)
	}

	cx := dstClipped.X
	cw := dstClipped.XSpan
	xRatio := float64(srcRect.XSpan) / float64(dstRect.XSpan)
	yRatio := float64(srcRect.YSpan) / float64(dstRect.YSpan)

	srcArr := src.Color32Arr()
	srcBounds := src.Rect()
	stride := int(src.ScanlineStride())

	rowBuf := colorScratch.Get(int(cw))
	defer colorScratch.Put(rowBuf)

	// Runs of equal source colors are common, so the native-to-premul
	// conversion is cached against the previously read source word.
	var cachedNative, cachedPremul Color32
	cacheValid := false

	var wx, wy [4]float64
	for y := yStart; y <= yEnd; y++ {
		syf := (float64(y-dstRect.Y)+0.5)*yRatio - 0.5
		syFloor := int32(math.Floor(syf))
		fy := syf - float64(syFloor)
		wy[0] = cubicWeight(1 + fy)
		wy[1] = cubicWeight(fy)
		wy[2] = cubicWeight(1 - fy)
		wy[3] = cubicWeight(2 - fy)

		for j := int32(0); j < cw; j++ {
			di := (cx - dstRect.X) + j
			sxf := (float64(di)+0.5)*xRatio - 0.5
			sxFloor := int32(math.Floor(sxf))
			fx := sxf - float64(sxFloor)
			wx[0] = cubicWeight(1 + fx)
			wx[1] = cubicWeight(fx)
			wx[2] = cubicWeight(1 - fx)
			wx[3] = cubicWeight(2 - fx)

			var aSum, rSum, gSum, bSum float64
			for ky := int32(-1); ky <= 2; ky++ {
				sy := srcRect.ClampY(srcRect.Y + syFloor + ky)
				wyv := wy[ky+1]
				if wyv == 0 {
					continue
				}
				for kx := int32(-1); kx <= 2; kx++ {
					wv := wx[kx+1] * wyv
					if wv == 0 {
						continue
					}
					sx := srcRect.ClampX(srcRect.X + sxFloor + kx)
					var c Color32
					if srcArr != nil {
						c = srcArr[int(sy-srcBounds.Y)*stride+int(sx-srcBounds.X)]
					} else {
						c = src.Color32At(sx, sy)
					}
					if !cacheValid || c != cachedNative {
						cachedNative = c
						cachedPremul = h.AsPremul32FromType(c)
						cacheValid = true
					}
					p := uint32(cachedPremul)
					aSum += wv * float64(p>>24)
					rSum += wv * float64((p>>16)&0xFF)
					gSum += wv * float64((p>>8)&0xFF)
					bSum += wv * float64(p&0xFF)
				}
			}

			premul := h.ToValidPremul32(
				int32(aSum+0.5), int32(rSum+0.5), int32(gSum+0.5), int32(bSum+0.5))
			rowBuf[j] = h.AsTypeFromPremul32(premul)
		}
		rd.DrawRow(rowBuf, 0, cx, y, cw)
	}
	return nil
}
